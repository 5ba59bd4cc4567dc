package service

import (
	"time"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/rs/zerolog/log"
)

// AttendanceStatus is the outcome of a recording call.
type AttendanceStatus string

const (
	// StatusRecorded means a fresh attendance row was written.
	StatusRecorded AttendanceStatus = "recorded"
	// StatusAlreadyMarked means the (class, user, date) key already existed.
	// Callers treat it as success.
	StatusAlreadyMarked AttendanceStatus = "already_marked"
)

// AttendanceService records that a student joined a class on a calendar day.
// Recording is idempotent per (class, user, date): the write is a single
// upsert against the store-level uniqueness constraint, so concurrent joins
// cannot double-insert.
type AttendanceService interface {
	MarkAttendance(classID, userID uint) (AttendanceStatus, error)
	RecordAttendance(classID, userID uint, date string) (AttendanceStatus, error)
	AttendanceForClass(classID uint, date string) ([]model.Attendance, error)
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	classRepo      repository.ClassRepository
	userRepo       repository.UserRepository
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	classRepo repository.ClassRepository,
	userRepo repository.UserRepository,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		classRepo:      classRepo,
		userRepo:       userRepo,
	}
}

// MarkAttendance records attendance for today.
func (s *attendanceService) MarkAttendance(classID, userID uint) (AttendanceStatus, error) {
	return s.RecordAttendance(classID, userID, time.Now().Format(time.DateOnly))
}

// RecordAttendance records attendance for an explicit calendar date. The
// join-class flow uses this before handing the meeting link to the caller.
// Enrollment is not checked; membership does not gate attendance.
func (s *attendanceService) RecordAttendance(classID, userID uint, date string) (AttendanceStatus, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "", apperr.Validation("date must be YYYY-MM-DD")
	}

	ok, err := s.classRepo.Exists(classID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperr.NotFound("class")
	}
	ok, err = s.userRepo.Exists(userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperr.NotFound("user")
	}

	rows, err := s.attendanceRepo.Insert(&model.Attendance{ClassID: classID, UserID: userID, Date: date})
	if err != nil {
		log.Error().Err(err).Uint("classID", classID).Uint("userID", userID).Msg("RecordAttendance: upsert failed")
		return "", err
	}
	if rows == 0 {
		return StatusAlreadyMarked, nil
	}
	log.Info().Uint("classID", classID).Uint("userID", userID).Str("date", date).Msg("Attendance recorded")
	return StatusRecorded, nil
}

func (s *attendanceService) AttendanceForClass(classID uint, date string) ([]model.Attendance, error) {
	ok, err := s.classRepo.Exists(classID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("class")
	}
	return s.attendanceRepo.FindByClassAndDate(classID, date)
}
