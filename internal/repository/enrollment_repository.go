package repository

import (
	"github.com/hoangtm/classtrack/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository interface {
	// Upsert inserts the membership row if absent. A second enrollment for
	// the same (student, class) pair is a no-op.
	Upsert(enrollment *model.Enrollment) error
	FindByStudent(studentID uint) ([]model.Enrollment, error)
	FindByClass(classID uint) ([]model.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Upsert(enrollment *model.Enrollment) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(enrollment).Error
}

func (r *enrollmentRepository) FindByStudent(studentID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.Where("student_id = ?", studentID).Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) FindByClass(classID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.Where("class_id = ?", classID).Find(&enrollments).Error
	return enrollments, err
}
