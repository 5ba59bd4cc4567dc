package repository

import (
	"github.com/hoangtm/classtrack/internal/model"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(class *model.Class) error
	FindByID(id uint) (*model.Class, error)
	FindByTitle(title string) (*model.Class, error)
	FindAll() ([]model.Class, error)
	UpdateByTitle(oldTitle, newTitle, newMeetLink string, teacherID uint) (int64, error)
	Exists(id uint) (bool, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(class *model.Class) error {
	return r.db.Create(class).Error
}

func (r *classRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	if err := r.db.First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindByTitle(title string) (*model.Class, error) {
	var class model.Class
	if err := r.db.Where("title = ?", title).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindAll() ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.Order("id ASC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// UpdateByTitle identifies the row by its old title, scoped to the owning
// teacher. Title is the natural key the callers use.
func (r *classRepository) UpdateByTitle(oldTitle, newTitle, newMeetLink string, teacherID uint) (int64, error) {
	res := r.db.Model(&model.Class{}).
		Where("title = ? AND created_by = ?", oldTitle, teacherID).
		Updates(map[string]interface{}{"title": newTitle, "meet_link": newMeetLink})
	return res.RowsAffected, res.Error
}

func (r *classRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Class{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
