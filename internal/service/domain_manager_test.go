package service

import (
	"testing"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinClass(t *testing.T) {
	f := newFixture(t)
	studentID := f.studentID(t)

	class, err := f.domain.AddClass("Math", "https://meet.google.com/abc-defg-hij", f.teacherID(t))
	require.NoError(t, err)

	result, err := f.domain.JoinClass(class.ID, studentID)
	require.NoError(t, err)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", result.MeetLink)
	assert.Equal(t, string(StatusRecorded), result.Status)

	// Joining again the same day is a benign success.
	result, err = f.domain.JoinClass(class.ID, studentID)
	require.NoError(t, err)
	assert.Equal(t, string(StatusAlreadyMarked), result.Status)

	assert.EqualValues(t, 1, f.count(t, &model.Attendance{}, "class_id = ? AND user_id = ?", class.ID, studentID))

	_, err = f.domain.JoinClass(999, studentID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestJoinClassRejectsBadStoredLink(t *testing.T) {
	f := newFixture(t)
	studentID := f.studentID(t)

	// A row with an invalid link can only exist from legacy data; it must
	// not be joinable.
	class := model.Class{Title: "Old", MeetLink: "http://zoom.us/123", CreatedBy: f.teacherID(t)}
	require.NoError(t, f.db.Create(&class).Error)

	_, err := f.domain.JoinClass(class.ID, studentID)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.EqualValues(t, 0, f.count(t, &model.Attendance{}, ""))
}

func TestDomainManagerRouting(t *testing.T) {
	f := newFixture(t)
	teacherID := f.teacherID(t)

	_, err := f.domain.Register("carol", "pwd123", model.RoleStudent)
	require.NoError(t, err)
	_, err = f.domain.Authenticate("carol", "pwd123")
	require.NoError(t, err)

	class, err := f.domain.AddClass("Math", "https://meet.google.com/abc-defg-hij", teacherID)
	require.NoError(t, err)

	classes, err := f.domain.GetClasses()
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, class.ID, classes[0].ID)

	rows, err := f.domain.GetClassesDisplay()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Math - Meet: https://meet.google.com/abc-defg-hij", rows[0])

	assert.EqualValues(t, class.ID, f.domain.ResolveClassIDByDisplayTitle(rows[0]))
}
