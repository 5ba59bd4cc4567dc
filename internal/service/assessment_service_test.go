package service

import (
	"testing"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) addQuestion(t *testing.T, text, correct string) {
	t.Helper()
	ok, err := f.assessments.AddQuizQuestion(text, "opt a", "opt b", "opt c", "opt d", correct)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAddQuiz(t *testing.T) {
	f := newFixture(t)

	class, err := f.classes.CreateClass("Math", "https://meet.google.com/abc-defg-hij", f.teacherID(t))
	require.NoError(t, err)

	ok, err := f.assessments.AddQuiz("Quiz 1", class.ID, "2026-09-15", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.assessments.AddQuiz("Quiz 2", 999, "2026-09-15", nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.assessments.AddQuiz("Quiz 3", class.ID, "soon", nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.assessments.AddQuiz("", class.ID, "2026-09-15", nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAddQuizQuestionValidation(t *testing.T) {
	f := newFixture(t)

	ok, err := f.assessments.AddQuizQuestion("2+2?", "3", "4", "5", "6", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	// Lowercase input is stored as the canonical upper-case letter.
	var q model.QuizQuestion
	require.NoError(t, f.db.Where("question = ?", "2+2?").First(&q).Error)
	assert.Equal(t, "B", q.CorrectOption)

	_, err = f.assessments.AddQuizQuestion("bad", "a", "b", "c", "d", "E")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.assessments.AddQuizQuestion("", "a", "b", "c", "d", "A")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGetQuizQuestions(t *testing.T) {
	f := newFixture(t)

	class, err := f.classes.CreateClass("Math", "https://meet.google.com/abc-defg-hij", f.teacherID(t))
	require.NoError(t, err)
	_, err = f.assessments.AddQuiz("Quiz 1", class.ID, "2026-09-15", nil)
	require.NoError(t, err)

	f.addQuestion(t, "q1", "A")
	f.addQuestion(t, "q2", "B")

	questions, err := f.assessments.GetQuizQuestions("Quiz 1")
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	_, err = f.assessments.GetQuizQuestions("Nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestScoreAttempt(t *testing.T) {
	f := newFixture(t)
	studentID := f.studentID(t)

	class, err := f.classes.CreateClass("Math", "https://meet.google.com/abc-defg-hij", f.teacherID(t))
	require.NoError(t, err)
	_, err = f.assessments.AddQuiz("Quiz 1", class.ID, "2026-09-15", nil)
	require.NoError(t, err)

	var quiz model.Quiz
	require.NoError(t, f.db.Where("title = ?", "Quiz 1").First(&quiz).Error)

	f.addQuestion(t, "q1", "A")
	f.addQuestion(t, "q2", "B")
	f.addQuestion(t, "q3", "B")

	// Selected [A,B,A] against correct [A,B,B] scores 2.
	attempt, err := f.assessments.ScoreAttempt(quiz.ID, studentID, []string{"A", "B", "A"})
	require.NoError(t, err)
	assert.Equal(t, 2, attempt.Score)
	assert.NotZero(t, attempt.ID)

	// The attempt is persisted.
	assert.EqualValues(t, 1, f.count(t, &model.QuizAttempt{}, "quiz_id = ? AND student_id = ?", quiz.ID, studentID))

	// Repeat attempts are allowed; each one is a new row.
	attempt2, err := f.assessments.ScoreAttempt(quiz.ID, studentID, []string{"a", "b", "b"})
	require.NoError(t, err)
	assert.Equal(t, 3, attempt2.Score)
	assert.EqualValues(t, 2, f.count(t, &model.QuizAttempt{}, "quiz_id = ? AND student_id = ?", quiz.ID, studentID))

	history, err := f.assessments.AttemptsForStudent(quiz.ID, studentID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestScoreAttemptMissingQuizOrStudent(t *testing.T) {
	f := newFixture(t)

	_, err := f.assessments.ScoreAttempt(999, f.studentID(t), []string{"A"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	class, err := f.classes.CreateClass("Math", "https://meet.google.com/abc-defg-hij", f.teacherID(t))
	require.NoError(t, err)
	_, err = f.assessments.AddQuiz("Quiz 1", class.ID, "2026-09-15", nil)
	require.NoError(t, err)
	var quiz model.Quiz
	require.NoError(t, f.db.Where("title = ?", "Quiz 1").First(&quiz).Error)

	_, err = f.assessments.ScoreAttempt(quiz.ID, 999, []string{"A"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualValues(t, 0, f.count(t, &model.QuizAttempt{}, ""))
}

func TestDeleteQuiz(t *testing.T) {
	f := newFixture(t)

	class, err := f.classes.CreateClass("Math", "https://meet.google.com/abc-defg-hij", f.teacherID(t))
	require.NoError(t, err)
	_, err = f.assessments.AddQuiz("Quiz 1", class.ID, "2026-09-15", nil)
	require.NoError(t, err)

	ok, err := f.assessments.DeleteQuiz("Quiz 1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.assessments.DeleteQuiz("Quiz 1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListQuizzesDisplay(t *testing.T) {
	f := newFixture(t)

	class, err := f.classes.CreateClass("Math", "https://meet.google.com/abc-defg-hij", f.teacherID(t))
	require.NoError(t, err)
	_, err = f.assessments.AddQuiz("Quiz 1", class.ID, "2026-09-15", nil)
	require.NoError(t, err)

	rows, err := f.assessments.ListQuizzesDisplay()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Quiz 1 - Due: 2026-09-15", rows[0])
}
