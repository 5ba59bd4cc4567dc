package repository

import (
	"github.com/hoangtm/classtrack/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.QuizQuestion) error
	FindByID(id uint) (*model.QuizQuestion, error)
	// FindAll returns the whole question bank in id order. Questions are not
	// scoped to a quiz in the persisted schema.
	FindAll() ([]model.QuizQuestion, error)
	Delete(id uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.QuizQuestion) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	if err := r.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&model.QuizQuestion{}, id)
	return res.RowsAffected, res.Error
}
