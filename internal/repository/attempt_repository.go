package repository

import (
	"github.com/hoangtm/classtrack/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	FindByQuizAndStudent(quizID, studentID uint) ([]model.QuizAttempt, error)
	FindByStudent(studentID uint) ([]model.QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByQuizAndStudent(quizID, studentID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		Order("id DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByStudent(studentID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("student_id = ?", studentID).Order("id DESC").Find(&attempts).Error
	return attempts, err
}
