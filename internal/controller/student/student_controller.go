package student

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hoangtm/classtrack/internal/controller"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/service"
	"github.com/rs/zerolog/log"
)

// StudentController exposes the student-facing surface: browsing classes,
// joining sessions, taking quizzes, and submitting assignments.
type StudentController struct {
	domain *service.DomainManager
}

func NewStudentController(domain *service.DomainManager) *StudentController {
	return &StudentController{domain: domain}
}

// ListClasses godoc
// @Summary List all classes
// @Tags Student
// @Produce json
// @Success 200 {array} dto.ClassDTO
// @Router /classes [get]
func (c *StudentController) ListClasses(ctx *gin.Context) {
	classes, err := c.domain.GetClasses()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classes)
}

// Enroll godoc
// @Summary Enroll in a class
// @Description Establishes membership. Re-enrolling is a no-op success.
// @Tags Student
// @Accept json
// @Produce json
// @Param class_id path int true "Class ID"
// @Param body body dto.EnrollDTO true "Student ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse "Class or user not found"
// @Router /classes/{class_id}/enroll [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	classID, err := strconv.ParseUint(ctx.Param("class_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid class ID format"})
		return
	}
	var req dto.EnrollDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.domain.EnrollStudent(req.StudentID, uint(classID)); err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"enrolled": true})
}

// JoinClass godoc
// @Summary Join a class session
// @Description Records today's attendance (idempotent) and returns the validated meeting link.
// @Tags Student
// @Accept json
// @Produce json
// @Param class_id path int true "Class ID"
// @Param body body dto.JoinClassDTO true "Student ID"
// @Success 200 {object} dto.JoinClassResultDTO
// @Failure 400 {object} dto.ErrorResponse "Class link is not joinable"
// @Failure 404 {object} dto.ErrorResponse "Class or user not found"
// @Router /classes/{class_id}/join [post]
func (c *StudentController) JoinClass(ctx *gin.Context) {
	classID, err := strconv.ParseUint(ctx.Param("class_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid class ID format"})
		return
	}
	var req dto.JoinClassDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	result, err := c.domain.JoinClass(uint(classID), req.StudentID)
	if err != nil {
		log.Warn().Err(err).Uint64("classID", classID).Uint("studentID", req.StudentID).Msg("JoinClass failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Tags Student
// @Produce json
// @Success 200 {array} dto.QuizDTO
// @Router /quizzes [get]
func (c *StudentController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.domain.GetQuizzes()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizQuestions godoc
// @Summary Get the question set for a quiz
// @Tags Student
// @Produce json
// @Param title query string true "Quiz title"
// @Success 200 {array} dto.QuestionDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/questions [get]
func (c *StudentController) GetQuizQuestions(ctx *gin.Context) {
	title := ctx.Query("title")
	if title == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "title query parameter is required"})
		return
	}
	questions, err := c.domain.GetQuizQuestions(title)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitAttempt godoc
// @Summary Submit quiz answers for scoring
// @Description Scores the selected letters against the question bank and records the attempt. Repeat attempts are allowed.
// @Tags Student
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param attempt body dto.AttemptSubmitDTO true "Student ID and selected letters in bank order"
// @Success 201 {object} dto.AttemptDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz or user not found"
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *StudentController) SubmitAttempt(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	attempt, err := c.domain.ScoreAttempt(uint(quizID), req.StudentID, req.Selected)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// ListAttempts godoc
// @Summary List a student's attempts for a quiz
// @Tags Student
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param student_id query int true "Student ID"
// @Success 200 {array} dto.AttemptDTO
// @Router /quizzes/{quiz_id}/my-attempts [get]
func (c *StudentController) ListAttempts(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz ID format"})
		return
	}
	studentID, err := strconv.ParseUint(ctx.Query("student_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid student ID format"})
		return
	}
	attempts, err := c.domain.GetAttempts(uint(quizID), uint(studentID))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// ListAssignments godoc
// @Summary List all assignments
// @Tags Student
// @Produce json
// @Success 200 {array} dto.AssignmentDTO
// @Router /assignments [get]
func (c *StudentController) ListAssignments(ctx *gin.Context) {
	assignments, err := c.domain.GetAssignments()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// SubmitAssignment godoc
// @Summary Upload an assignment submission
// @Description Accepts a multipart file, copies it into managed storage, and records the submission.
// @Tags Student
// @Accept multipart/form-data
// @Produce json
// @Param assignment_id path int true "Assignment ID"
// @Param student_id formData int true "Student ID"
// @Param file formData file true "Submission file"
// @Success 201 {object} dto.SubmissionDTO
// @Failure 404 {object} dto.ErrorResponse "Assignment or user not found"
// @Failure 502 {object} dto.ErrorResponse "Managed storage failure"
// @Router /assignments/{assignment_id}/submissions [post]
func (c *StudentController) SubmitAssignment(ctx *gin.Context) {
	assignmentID, err := strconv.ParseUint(ctx.Param("assignment_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid assignment ID format"})
		return
	}
	studentID, err := strconv.ParseUint(ctx.PostForm("student_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid student ID format"})
		return
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "file is required", Details: []string{err.Error()}})
		return
	}

	// Stage the upload on disk; the service copies it into managed storage
	// under its own name and the row references that copy. The staging path
	// must be unique per request: concurrent uploads sharing a basename would
	// otherwise overwrite each other's staged content.
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(file.Filename))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to stage upload", Details: []string{err.Error()}})
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		os.Remove(tmpPath)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to stage upload", Details: []string{err.Error()}})
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			log.Warn().Err(err).Str("path", tmpPath).Msg("Failed to remove staged upload")
		}
	}()

	submission, err := c.domain.SubmitAssignment(uint(assignmentID), uint(studentID), tmpPath)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, submission)
}
