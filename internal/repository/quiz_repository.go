package repository

import (
	"github.com/hoangtm/classtrack/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByTitle(title string) (*model.Quiz, error)
	FindAll() ([]model.Quiz, error)
	FindByClassID(classID uint) ([]model.Quiz, error)
	DeleteByTitle(title string) (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByTitle(title string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.Where("title = ?", title).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Order("id ASC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindByClassID(classID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := r.db.Where("class_id = ?", classID).Order("id ASC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) DeleteByTitle(title string) (int64, error) {
	res := r.db.Where("title = ?", title).Delete(&model.Quiz{})
	return res.RowsAffected, res.Error
}
