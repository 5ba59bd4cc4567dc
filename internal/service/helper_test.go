package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/hoangtm/classtrack/database"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/hoangtm/classtrack/internal/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture wires the full service stack over an in-memory database and an
// in-memory file store. EnsureSchema seeds the demo teacher and student
// accounts, which the tests reuse.
type fixture struct {
	db          *gorm.DB
	fs          afero.Fs
	identity    IdentityService
	classes     ClassService
	attendance  AttendanceService
	assessments AssessmentService
	assignments AssignmentService
	domain      *DomainManager
}

const managedDir = "/managed"

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))

	fs := afero.NewMemMapFs()
	store, err := storage.NewLocalStore(fs, managedDir)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	f := &fixture{
		db:          db,
		fs:          fs,
		identity:    NewIdentityService(userRepo),
		classes:     NewClassService(classRepo, userRepo, enrollmentRepo, store, db),
		attendance:  NewAttendanceService(attendanceRepo, classRepo, userRepo),
		assessments: NewAssessmentService(quizRepo, questionRepo, attemptRepo, classRepo, userRepo),
		assignments: NewAssignmentService(assignmentRepo, submissionRepo, classRepo, userRepo, store),
	}
	f.domain = NewDomainManager(f.identity, f.classes, f.attendance, f.assessments, f.assignments)
	return f
}

func (f *fixture) userID(t *testing.T, username string) uint {
	t.Helper()
	var user model.User
	require.NoError(t, f.db.Where("username = ?", username).First(&user).Error)
	return user.ID
}

func (f *fixture) teacherID(t *testing.T) uint { return f.userID(t, "teacher") }
func (f *fixture) studentID(t *testing.T) uint { return f.userID(t, "student") }

func (f *fixture) count(t *testing.T, value interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	tx := f.db.Model(value)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&n).Error)
	return n
}
