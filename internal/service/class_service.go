package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/hoangtm/classtrack/internal/storage"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// meetLinkPattern is the exact validation contract for class meeting links.
var meetLinkPattern = regexp.MustCompile(`^(https://)?meet\.google\.com/[a-zA-Z0-9\-]+$`)

// displayMeetSep joins title and link in the legacy list encoding
// "<Title> - Meet: <link>".
const displayMeetSep = " - Meet: "

// ClassService manages classes and enrollments.
type ClassService interface {
	CreateClass(title, meetLink string, teacherID uint) (*dto.ClassDTO, error)
	UpdateClass(oldTitle, newTitle, newMeetLink string, teacherID uint) (bool, error)
	DeleteClass(title string) (bool, error)
	GetClass(classID uint) (*dto.ClassDTO, error)
	ListClasses() ([]dto.ClassDTO, error)
	ListClassesDisplay() ([]string, error)
	ResolveClassIDByDisplayTitle(displayTitle string) int
	EnrollStudent(studentID, classID uint) error
}

type classService struct {
	classRepo      repository.ClassRepository
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
	store          storage.FileStore
	db             *gorm.DB
}

func NewClassService(
	classRepo repository.ClassRepository,
	userRepo repository.UserRepository,
	enrollmentRepo repository.EnrollmentRepository,
	store storage.FileStore,
	db *gorm.DB,
) ClassService {
	return &classService{
		classRepo:      classRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		store:          store,
		db:             db,
	}
}

// ValidMeetLink reports whether link satisfies the meeting-link contract.
func ValidMeetLink(link string) bool {
	return meetLinkPattern.MatchString(link)
}

func (s *classService) CreateClass(title, meetLink string, teacherID uint) (*dto.ClassDTO, error) {
	if title == "" {
		return nil, apperr.Validation("class title is required")
	}
	if !ValidMeetLink(meetLink) {
		return nil, apperr.Validation("meet link must match meet.google.com format")
	}

	class := model.Class{Title: title, MeetLink: meetLink, CreatedBy: teacherID}
	if err := s.classRepo.Create(&class); err != nil {
		log.Error().Err(err).Str("title", title).Msg("CreateClass: insert failed")
		return nil, err
	}

	var resp dto.ClassDTO
	if err := copier.Copy(&resp, &class); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *classService) UpdateClass(oldTitle, newTitle, newMeetLink string, teacherID uint) (bool, error) {
	if newTitle == "" {
		return false, apperr.Validation("class title is required")
	}
	if !ValidMeetLink(newMeetLink) {
		return false, apperr.Validation("meet link must match meet.google.com format")
	}
	rows, err := s.classRepo.UpdateByTitle(oldTitle, newTitle, newMeetLink, teacherID)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// DeleteClass removes the class and everything referencing it in one
// transaction: quizzes, assignments and their submissions, enrollments, and
// attendance rows. Cascade is the chosen policy for dependent records. The
// managed copies of deleted submissions are removed after the transaction
// commits; a failed file removal is logged, not rolled back.
func (s *classService) DeleteClass(title string) (bool, error) {
	class, err := s.classRepo.FindByTitle(title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	var submissionPaths []string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var assignmentIDs []uint
		if err := tx.Model(&model.Assignment{}).
			Where("class_id = ?", int(class.ID)).
			Pluck("id", &assignmentIDs).Error; err != nil {
			return err
		}
		if len(assignmentIDs) > 0 {
			if err := tx.Model(&model.Submission{}).
				Where("assignment_id IN ?", assignmentIDs).
				Pluck("file_path", &submissionPaths).Error; err != nil {
				return err
			}
			if err := tx.Where("assignment_id IN ?", assignmentIDs).
				Delete(&model.Submission{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("class_id = ?", int(class.ID)).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", class.ID).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", class.ID).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", class.ID).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Class{}, class.ID).Error
	})
	if err != nil {
		log.Error().Err(err).Str("title", title).Msg("DeleteClass: cascade failed")
		return false, err
	}

	for _, path := range submissionPaths {
		if err := s.store.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("DeleteClass: failed to remove managed copy")
		}
	}

	log.Info().Str("title", title).Uint("classID", class.ID).Msg("Deleted class with dependents")
	return true, nil
}

func (s *classService) GetClass(classID uint) (*dto.ClassDTO, error) {
	class, err := s.classRepo.FindByID(classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("class")
		}
		return nil, err
	}
	var resp dto.ClassDTO
	if err := copier.Copy(&resp, class); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *classService) ListClasses() ([]dto.ClassDTO, error) {
	classes, err := s.classRepo.FindAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.ClassDTO, 0, len(classes))
	for _, c := range classes {
		var d dto.ClassDTO
		if err := copier.Copy(&d, &c); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// ListClassesDisplay reproduces the legacy "<Title> - Meet: <link>" row
// encoding for callers that still render strings. New callers should use
// ListClasses and format at the rendering boundary.
func (s *classService) ListClassesDisplay() ([]string, error) {
	classes, err := s.classRepo.FindAll()
	if err != nil {
		return nil, err
	}
	rows := make([]string, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, fmt.Sprintf("%s%s%s", c.Title, displayMeetSep, c.MeetLink))
	}
	return rows, nil
}

// ResolveClassIDByDisplayTitle strips the " - Meet: <link>" suffix the UI
// appends to list rows and resolves the remaining title. Returns -1 when no
// class matches. Kept for compatibility with string-rendering callers.
func (s *classService) ResolveClassIDByDisplayTitle(displayTitle string) int {
	title := displayTitle
	if idx := strings.Index(displayTitle, displayMeetSep); idx >= 0 {
		title = displayTitle[:idx]
	}
	class, err := s.classRepo.FindByTitle(title)
	if err != nil {
		return -1
	}
	return int(class.ID)
}

// EnrollStudent establishes membership. Re-enrolling is a no-op success;
// membership is independent of attendance.
func (s *classService) EnrollStudent(studentID, classID uint) error {
	ok, err := s.classRepo.Exists(classID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("class")
	}
	ok, err = s.userRepo.Exists(studentID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("user")
	}
	return s.enrollmentRepo.Upsert(&model.Enrollment{StudentID: studentID, ClassID: classID})
}
