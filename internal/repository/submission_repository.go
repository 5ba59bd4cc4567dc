package repository

import (
	"github.com/hoangtm/classtrack/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	FindByAssignment(assignmentID uint) ([]model.Submission, error)
	FindByStudent(studentID uint) ([]model.Submission, error)
	UpdateGrade(id uint, grade string) (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByAssignment(assignmentID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("assignment_id = ?", assignmentID).Order("id ASC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindByStudent(studentID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("student_id = ?", studentID).Order("id ASC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) UpdateGrade(id uint, grade string) (int64, error) {
	res := r.db.Model(&model.Submission{}).Where("id = ?", id).Update("grade", grade)
	return res.RowsAffected, res.Error
}
