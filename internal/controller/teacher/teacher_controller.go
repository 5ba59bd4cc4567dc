package teacher

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hoangtm/classtrack/internal/controller"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/hoangtm/classtrack/internal/service"
	"github.com/rs/zerolog/log"
)

// TeacherController exposes the management surface: classes, quizzes and
// their question bank, assignments, and submission grading.
type TeacherController struct {
	domain *service.DomainManager
}

func NewTeacherController(domain *service.DomainManager) *TeacherController {
	return &TeacherController{domain: domain}
}

// CreateClass godoc
// @Summary Create a class
// @Tags Teacher - Classes
// @Accept json
// @Produce json
// @Param class body dto.ClassCreateDTO true "Class details"
// @Success 201 {object} dto.ClassDTO
// @Failure 400 {object} dto.ErrorResponse "Bad meet link or missing title"
// @Router /teacher/classes [post]
func (c *TeacherController) CreateClass(ctx *gin.Context) {
	var req dto.ClassCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	class, err := c.domain.AddClass(req.Title, req.MeetLink, req.TeacherID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, class)
}

// UpdateClass godoc
// @Summary Update a class identified by its old title
// @Tags Teacher - Classes
// @Accept json
// @Produce json
// @Param class body dto.ClassUpdateDTO true "Old title plus new values"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No class with that title for this teacher"
// @Router /teacher/classes [put]
func (c *TeacherController) UpdateClass(ctx *gin.Context) {
	var req dto.ClassUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	ok, err := c.domain.UpdateClass(req.OldTitle, req.NewTitle, req.MeetLink, req.TeacherID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Class not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteClass godoc
// @Summary Delete a class and everything referencing it
// @Tags Teacher - Classes
// @Produce json
// @Param title query string true "Class title"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/classes [delete]
func (c *TeacherController) DeleteClass(ctx *gin.Context) {
	title := ctx.Query("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "title query parameter is required"})
		return
	}
	ok, err := c.domain.DeleteClass(title)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Class not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListClasses godoc
// @Summary List all classes
// @Tags Teacher - Classes
// @Produce json
// @Success 200 {array} dto.ClassDTO
// @Router /teacher/classes [get]
func (c *TeacherController) ListClasses(ctx *gin.Context) {
	classes, err := c.domain.GetClasses()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// ClassAttendance godoc
// @Summary List attendance for a class on a date
// @Tags Teacher - Classes
// @Produce json
// @Param class_id path int true "Class ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {array} dto.AttendanceDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/classes/{class_id}/attendance [get]
func (c *TeacherController) ClassAttendance(ctx *gin.Context) {
	classID, err := strconv.ParseUint(ctx.Param("class_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid class ID format"})
		return
	}
	rows, err := c.domain.GetAttendance(uint(classID), ctx.Query("date"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// CreateQuiz godoc
// @Summary Create a quiz for a class
// @Tags Teacher - Quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz details"
// @Success 201 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /teacher/quizzes [post]
func (c *TeacherController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	ok, err := c.domain.AddQuiz(req.Title, req.ClassID, req.DueDate, req.FilePath)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"created": ok})
}

// DeleteQuiz godoc
// @Summary Delete a quiz by title
// @Tags Teacher - Quizzes
// @Produce json
// @Param title query string true "Quiz title"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/quizzes [delete]
func (c *TeacherController) DeleteQuiz(ctx *gin.Context) {
	title := ctx.Query("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "title query parameter is required"})
		return
	}
	ok, err := c.domain.DeleteQuiz(title)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AddQuestion godoc
// @Summary Add a question to the shared question bank
// @Tags Teacher - Quizzes
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question with options and correct letter"
// @Success 201 {object} map[string]bool
// @Failure 400 {object} dto.ErrorResponse "Correct option not one of A-D"
// @Router /teacher/questions [post]
func (c *TeacherController) AddQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	ok, err := c.domain.AddQuizQuestion(req.Question, req.OptionA, req.OptionB, req.OptionC, req.OptionD, req.CorrectOption)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"created": ok})
}

// CreateAssignment godoc
// @Summary Create an assignment
// @Description ClassID may be omitted or -1 for an unassigned assignment.
// @Tags Teacher - Assignments
// @Accept json
// @Produce json
// @Param assignment body dto.AssignmentCreateDTO true "Assignment details"
// @Success 201 {object} map[string]bool
// @Router /teacher/assignments [post]
func (c *TeacherController) CreateAssignment(ctx *gin.Context) {
	var req dto.AssignmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	classID := model.UnassignedClass
	if req.ClassID != nil {
		classID = *req.ClassID
	}
	ok, err := c.domain.AddAssignment(req.Title, classID, req.DueDate, req.Description, req.FilePath)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"created": ok})
}

// DeleteAssignment godoc
// @Summary Delete an assignment by title
// @Tags Teacher - Assignments
// @Produce json
// @Param title query string true "Assignment title"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/assignments [delete]
func (c *TeacherController) DeleteAssignment(ctx *gin.Context) {
	title := ctx.Query("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "title query parameter is required"})
		return
	}
	ok, err := c.domain.DeleteAssignment(title)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	if !ok {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Assignment not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListSubmissions godoc
// @Summary List submissions for an assignment
// @Tags Teacher - Assignments
// @Produce json
// @Param assignment_id path int true "Assignment ID"
// @Success 200 {array} dto.SubmissionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/assignments/{assignment_id}/submissions [get]
func (c *TeacherController) ListSubmissions(ctx *gin.Context) {
	assignmentID, err := strconv.ParseUint(ctx.Param("assignment_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assignment ID format"})
		return
	}
	submissions, err := c.domain.GetSubmissions(uint(assignmentID))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GradeSubmission godoc
// @Summary Grade a submission
// @Tags Teacher - Assignments
// @Accept json
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Param grade body dto.GradeDTO true "Grade value"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/submissions/{submission_id}/grade [put]
func (c *TeacherController) GradeSubmission(ctx *gin.Context) {
	submissionID, err := strconv.ParseUint(ctx.Param("submission_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission ID format"})
		return
	}
	var req dto.GradeDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.domain.GradeSubmission(uint(submissionID), req.Grade); err != nil {
		log.Warn().Err(err).Uint64("submissionID", submissionID).Msg("GradeSubmission failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"graded": true})
}
