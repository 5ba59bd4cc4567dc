package repository

import (
	"github.com/hoangtm/classtrack/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.Assignment) error
	FindByID(id uint) (*model.Assignment, error)
	FindByTitle(title string) (*model.Assignment, error)
	FindAll() ([]model.Assignment, error)
	FindByClassID(classID int) ([]model.Assignment, error)
	DeleteByTitle(title string) (int64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindByTitle(title string) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.db.Where("title = ?", title).First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindAll() ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := r.db.Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) FindByClassID(classID int) ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := r.db.Where("class_id = ?", classID).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) DeleteByTitle(title string) (int64, error) {
	res := r.db.Where("title = ?", title).Delete(&model.Assignment{})
	return res.RowsAffected, res.Error
}
