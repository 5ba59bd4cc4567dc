package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/hoangtm/classtrack/internal/storage"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssignmentService manages assignments and student submissions. Submitted
// files go through the FileStore; the Submission row always references the
// managed copy.
type AssignmentService interface {
	AddAssignment(title string, classID int, dueDate, description string, filePath *string) (bool, error)
	DeleteAssignment(title string) (bool, error)
	ListAssignments() ([]dto.AssignmentDTO, error)
	ListAssignmentsDisplay() ([]string, error)
	SubmitAssignment(assignmentID, studentID uint, sourceFilePath string) (*dto.SubmissionDTO, error)
	SubmissionsForAssignment(assignmentID uint) ([]dto.SubmissionDTO, error)
	GradeSubmission(submissionID uint, grade string) error
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	submissionRepo repository.SubmissionRepository
	classRepo      repository.ClassRepository
	userRepo       repository.UserRepository
	store          storage.FileStore
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	submissionRepo repository.SubmissionRepository,
	classRepo repository.ClassRepository,
	userRepo repository.UserRepository,
	store storage.FileStore,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		classRepo:      classRepo,
		userRepo:       userRepo,
		store:          store,
	}
}

func (s *assignmentService) AddAssignment(title string, classID int, dueDate, description string, filePath *string) (bool, error) {
	if title == "" {
		return false, apperr.Validation("assignment title is required")
	}
	if _, err := time.Parse(time.DateOnly, dueDate); err != nil {
		return false, apperr.Validation("due date must be YYYY-MM-DD")
	}
	if classID != model.UnassignedClass {
		if classID < 0 {
			return false, apperr.Validation("class id must be positive or the unassigned sentinel")
		}
		ok, err := s.classRepo.Exists(uint(classID))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, apperr.NotFound("class")
		}
	}

	assignment := model.Assignment{
		Title:       title,
		ClassID:     classID,
		DueDate:     dueDate,
		Description: description,
		FilePath:    filePath,
	}
	if err := s.assignmentRepo.Create(&assignment); err != nil {
		log.Error().Err(err).Str("title", title).Msg("AddAssignment: insert failed")
		return false, err
	}
	return true, nil
}

func (s *assignmentService) DeleteAssignment(title string) (bool, error) {
	rows, err := s.assignmentRepo.DeleteByTitle(title)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *assignmentService) ListAssignments() ([]dto.AssignmentDTO, error) {
	assignments, err := s.assignmentRepo.FindAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		var d dto.AssignmentDTO
		if err := copier.Copy(&d, &a); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// ListAssignmentsDisplay reproduces the legacy "<Title> - Due: <date>" encoding.
func (s *assignmentService) ListAssignmentsDisplay() ([]string, error) {
	assignments, err := s.assignmentRepo.FindAll()
	if err != nil {
		return nil, err
	}
	rows := make([]string, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, fmt.Sprintf("%s%s%s", a.Title, displayDueSep, a.DueDate))
	}
	return rows, nil
}

// SubmitAssignment copies the student's file into managed storage, then
// inserts the submission row. Existence checks run before any file I/O, and
// the insert runs only after a successful copy; a failed insert removes the
// stored copy so neither side is left dangling.
func (s *assignmentService) SubmitAssignment(assignmentID, studentID uint, sourceFilePath string) (*dto.SubmissionDTO, error) {
	if _, err := s.assignmentRepo.FindByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("assignment")
		}
		return nil, err
	}
	ok, err := s.userRepo.Exists(studentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user")
	}

	storedPath, err := s.store.Store(sourceFilePath)
	if err != nil {
		log.Error().Err(err).Str("source", sourceFilePath).Msg("SubmitAssignment: file copy failed")
		return nil, err
	}

	submission := model.Submission{
		AssignmentID:   assignmentID,
		StudentID:      studentID,
		SubmissionDate: time.Now().Format(time.DateOnly),
		FilePath:       storedPath,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		if rmErr := s.store.Remove(storedPath); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", storedPath).Msg("SubmitAssignment: failed to remove orphaned copy")
		}
		log.Error().Err(err).Uint("assignmentID", assignmentID).Msg("SubmitAssignment: insert failed")
		return nil, err
	}
	log.Info().Uint("assignmentID", assignmentID).Uint("studentID", studentID).Str("path", storedPath).Msg("Assignment submitted")

	var resp dto.SubmissionDTO
	if err := copier.Copy(&resp, &submission); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *assignmentService) SubmissionsForAssignment(assignmentID uint) ([]dto.SubmissionDTO, error) {
	if _, err := s.assignmentRepo.FindByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("assignment")
		}
		return nil, err
	}
	submissions, err := s.submissionRepo.FindByAssignment(assignmentID)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.SubmissionDTO, 0, len(submissions))
	for _, sub := range submissions {
		var d dto.SubmissionDTO
		if err := copier.Copy(&d, &sub); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// GradeSubmission sets the grade on an existing submission. Grade is the only
// mutable field on a submission.
func (s *assignmentService) GradeSubmission(submissionID uint, grade string) error {
	if grade == "" {
		return apperr.Validation("grade is required")
	}
	rows, err := s.submissionRepo.UpdateGrade(submissionID, grade)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("submission")
	}
	return nil
}
