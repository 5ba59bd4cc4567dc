package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// displayDueSep joins title and due date in the legacy list encoding
// "<Title> - Due: <date>". Shared with assignments.
const displayDueSep = " - Due: "

// AssessmentService manages quizzes, the question bank, and attempt scoring.
type AssessmentService interface {
	AddQuiz(title string, classID uint, dueDate string, filePath *string) (bool, error)
	DeleteQuiz(title string) (bool, error)
	ListQuizzes() ([]dto.QuizDTO, error)
	ListQuizzesDisplay() ([]string, error)
	AddQuizQuestion(question, optionA, optionB, optionC, optionD, correctOption string) (bool, error)
	GetQuizQuestions(quizTitle string) ([]dto.QuestionDTO, error)
	ScoreAttempt(quizID, studentID uint, selected []string) (*dto.AttemptDTO, error)
	AttemptsForStudent(quizID, studentID uint) ([]dto.AttemptDTO, error)
}

type assessmentService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	classRepo    repository.ClassRepository
	userRepo     repository.UserRepository
}

func NewAssessmentService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	classRepo repository.ClassRepository,
	userRepo repository.UserRepository,
) AssessmentService {
	return &assessmentService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		classRepo:    classRepo,
		userRepo:     userRepo,
	}
}

func (s *assessmentService) AddQuiz(title string, classID uint, dueDate string, filePath *string) (bool, error) {
	if title == "" {
		return false, apperr.Validation("quiz title is required")
	}
	if _, err := time.Parse(time.DateOnly, dueDate); err != nil {
		return false, apperr.Validation("due date must be YYYY-MM-DD")
	}
	ok, err := s.classRepo.Exists(classID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.NotFound("class")
	}

	quiz := model.Quiz{Title: title, ClassID: classID, DueDate: dueDate, FilePath: filePath}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", title).Msg("AddQuiz: insert failed")
		return false, err
	}
	return true, nil
}

func (s *assessmentService) DeleteQuiz(title string) (bool, error) {
	rows, err := s.quizRepo.DeleteByTitle(title)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *assessmentService) ListQuizzes() ([]dto.QuizDTO, error) {
	quizzes, err := s.quizRepo.FindAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		var d dto.QuizDTO
		if err := copier.Copy(&d, &q); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// ListQuizzesDisplay reproduces the legacy "<Title> - Due: <date>" encoding.
func (s *assessmentService) ListQuizzesDisplay() ([]string, error) {
	quizzes, err := s.quizRepo.FindAll()
	if err != nil {
		return nil, err
	}
	rows := make([]string, 0, len(quizzes))
	for _, q := range quizzes {
		rows = append(rows, fmt.Sprintf("%s%s%s", q.Title, displayDueSep, q.DueDate))
	}
	return rows, nil
}

func (s *assessmentService) AddQuizQuestion(question, optionA, optionB, optionC, optionD, correctOption string) (bool, error) {
	if question == "" || optionA == "" || optionB == "" || optionC == "" || optionD == "" {
		return false, apperr.Validation("question and all four options are required")
	}
	correct := strings.ToUpper(strings.TrimSpace(correctOption))
	switch correct {
	case "A", "B", "C", "D":
	default:
		return false, apperr.Validation("correct option must be one of A, B, C, D")
	}

	q := model.QuizQuestion{
		Question:      question,
		OptionA:       optionA,
		OptionB:       optionB,
		OptionC:       optionC,
		OptionD:       optionD,
		CorrectOption: correct,
	}
	if err := s.questionRepo.Create(&q); err != nil {
		log.Error().Err(err).Msg("AddQuizQuestion: insert failed")
		return false, err
	}
	return true, nil
}

// GetQuizQuestions verifies the quiz exists by title, then returns the
// question bank. Questions are global, not scoped to the quiz; the schema has
// no quiz foreign key on them.
func (s *assessmentService) GetQuizQuestions(quizTitle string) ([]dto.QuestionDTO, error) {
	if _, err := s.quizRepo.FindByTitle(quizTitle); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz")
		}
		return nil, err
	}

	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		var d dto.QuestionDTO
		if err := copier.Copy(&d, &q); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

// ScoreAttempt counts the positions where the selected letter equals the
// stored correct letter, comparing against the bank in id order, and persists
// the result. Every call inserts a new attempt row; re-taking a quiz is
// allowed and history is kept.
func (s *assessmentService) ScoreAttempt(quizID, studentID uint, selected []string) (*dto.AttemptDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("quiz")
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

	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	score := 0
	for i, q := range questions {
		if i >= len(selected) {
			break
		}
		if strings.EqualFold(strings.TrimSpace(selected[i]), q.CorrectOption) {
			score++
		}
	}

	attempt := model.QuizAttempt{
		QuizID:      quizID,
		StudentID:   studentID,
		AttemptDate: time.Now().Format(time.DateOnly),
		Score:       score,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Uint("studentID", studentID).Msg("ScoreAttempt: insert failed")
		return nil, err
	}
	log.Info().Uint("quizID", quizID).Uint("studentID", studentID).Int("score", score).Msg("Scored quiz attempt")

	var resp dto.AttemptDTO
	if err := copier.Copy(&resp, &attempt); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *assessmentService) AttemptsForStudent(quizID, studentID uint) ([]dto.AttemptDTO, error) {
	attempts, err := s.attemptRepo.FindByQuizAndStudent(quizID, studentID)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.AttemptDTO, 0, len(attempts))
	for _, a := range attempts {
		var d dto.AttemptDTO
		if err := copier.Copy(&d, &a); err != nil {
			return nil, err
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
