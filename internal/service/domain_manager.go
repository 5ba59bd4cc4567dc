package service

import (
	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/model"
)

// DomainManager is the single entry point the transport layer calls. It is
// stateless and routes every call to the owning sub-service; each call is one
// scoped unit of work with no cross-call transaction. An instance is injected
// where needed rather than held in a global.
type DomainManager struct {
	identity    IdentityService
	classes     ClassService
	attendance  AttendanceService
	assessments AssessmentService
	assignments AssignmentService
}

func NewDomainManager(
	identity IdentityService,
	classes ClassService,
	attendance AttendanceService,
	assessments AssessmentService,
	assignments AssignmentService,
) *DomainManager {
	return &DomainManager{
		identity:    identity,
		classes:     classes,
		attendance:  attendance,
		assessments: assessments,
		assignments: assignments,
	}
}

// Identity

func (m *DomainManager) Authenticate(username, credential string) (*dto.UserDTO, error) {
	return m.identity.Authenticate(username, credential)
}

func (m *DomainManager) Register(username, credential, role string) (*dto.UserDTO, error) {
	return m.identity.Register(username, credential, role)
}

// Classes

func (m *DomainManager) AddClass(title, meetLink string, teacherID uint) (*dto.ClassDTO, error) {
	return m.classes.CreateClass(title, meetLink, teacherID)
}

func (m *DomainManager) UpdateClass(oldTitle, newTitle, newMeetLink string, teacherID uint) (bool, error) {
	return m.classes.UpdateClass(oldTitle, newTitle, newMeetLink, teacherID)
}

func (m *DomainManager) DeleteClass(title string) (bool, error) {
	return m.classes.DeleteClass(title)
}

func (m *DomainManager) GetClasses() ([]dto.ClassDTO, error) {
	return m.classes.ListClasses()
}

func (m *DomainManager) GetClassesDisplay() ([]string, error) {
	return m.classes.ListClassesDisplay()
}

func (m *DomainManager) ResolveClassIDByDisplayTitle(displayTitle string) int {
	return m.classes.ResolveClassIDByDisplayTitle(displayTitle)
}

func (m *DomainManager) EnrollStudent(studentID, classID uint) error {
	return m.classes.EnrollStudent(studentID, classID)
}

// JoinClass records today's attendance for the student and hands back the
// class meeting link. The link is validated before the join is allowed; a
// class stored with a bad link cannot be joined. A repeat join on the same
// day is a benign success.
func (m *DomainManager) JoinClass(classID, studentID uint) (*dto.JoinClassResultDTO, error) {
	class, err := m.classes.GetClass(classID)
	if err != nil {
		return nil, err
	}
	if !ValidMeetLink(class.MeetLink) {
		return nil, apperr.Validation("class meet link is not joinable")
	}
	status, err := m.attendance.MarkAttendance(classID, studentID)
	if err != nil {
		return nil, err
	}
	return &dto.JoinClassResultDTO{MeetLink: class.MeetLink, Status: string(status)}, nil
}

// Attendance

func (m *DomainManager) MarkAttendance(classID, userID uint) (AttendanceStatus, error) {
	return m.attendance.MarkAttendance(classID, userID)
}

func (m *DomainManager) RecordAttendance(classID, userID uint, date string) (AttendanceStatus, error) {
	return m.attendance.RecordAttendance(classID, userID, date)
}

func (m *DomainManager) GetAttendance(classID uint, date string) ([]model.Attendance, error) {
	return m.attendance.AttendanceForClass(classID, date)
}

// Assessments

func (m *DomainManager) AddQuiz(title string, classID uint, dueDate string, filePath *string) (bool, error) {
	return m.assessments.AddQuiz(title, classID, dueDate, filePath)
}

func (m *DomainManager) DeleteQuiz(title string) (bool, error) {
	return m.assessments.DeleteQuiz(title)
}

func (m *DomainManager) GetQuizzes() ([]dto.QuizDTO, error) {
	return m.assessments.ListQuizzes()
}

func (m *DomainManager) GetQuizzesDisplay() ([]string, error) {
	return m.assessments.ListQuizzesDisplay()
}

func (m *DomainManager) AddQuizQuestion(question, optionA, optionB, optionC, optionD, correctOption string) (bool, error) {
	return m.assessments.AddQuizQuestion(question, optionA, optionB, optionC, optionD, correctOption)
}

func (m *DomainManager) GetQuizQuestions(quizTitle string) ([]dto.QuestionDTO, error) {
	return m.assessments.GetQuizQuestions(quizTitle)
}

func (m *DomainManager) ScoreAttempt(quizID, studentID uint, selected []string) (*dto.AttemptDTO, error) {
	return m.assessments.ScoreAttempt(quizID, studentID, selected)
}

func (m *DomainManager) GetAttempts(quizID, studentID uint) ([]dto.AttemptDTO, error) {
	return m.assessments.AttemptsForStudent(quizID, studentID)
}

// Assignments

func (m *DomainManager) AddAssignment(title string, classID int, dueDate, description string, filePath *string) (bool, error) {
	return m.assignments.AddAssignment(title, classID, dueDate, description, filePath)
}

func (m *DomainManager) DeleteAssignment(title string) (bool, error) {
	return m.assignments.DeleteAssignment(title)
}

func (m *DomainManager) GetAssignments() ([]dto.AssignmentDTO, error) {
	return m.assignments.ListAssignments()
}

func (m *DomainManager) GetAssignmentsDisplay() ([]string, error) {
	return m.assignments.ListAssignmentsDisplay()
}

func (m *DomainManager) SubmitAssignment(assignmentID, studentID uint, sourceFilePath string) (*dto.SubmissionDTO, error) {
	return m.assignments.SubmitAssignment(assignmentID, studentID, sourceFilePath)
}

func (m *DomainManager) GetSubmissions(assignmentID uint) ([]dto.SubmissionDTO, error) {
	return m.assignments.SubmissionsForAssignment(assignmentID)
}

func (m *DomainManager) GradeSubmission(submissionID uint, grade string) error {
	return m.assignments.GradeSubmission(submissionID, grade)
}
