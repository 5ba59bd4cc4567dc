package student

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/hoangtm/classtrack/database"
	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/hoangtm/classtrack/internal/service"
	"github.com/hoangtm/classtrack/internal/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture serves the student routes over a file-backed database and a managed
// storage directory on the real filesystem, since the upload handler stages
// files through the OS temp dir.
type fixture struct {
	router *gin.Engine
	db     *gorm.DB
	dir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(afero.NewOsFs(), dir)
	require.NoError(t, err)
	return newFixtureWithStore(t, store, dir)
}

func newFixtureWithStore(t *testing.T, store storage.FileStore, dir string) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "classtrack.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.EnsureSchema(db))

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	domain := service.NewDomainManager(
		service.NewIdentityService(userRepo),
		service.NewClassService(classRepo, userRepo, enrollmentRepo, store, db),
		service.NewAttendanceService(attendanceRepo, classRepo, userRepo),
		service.NewAssessmentService(quizRepo, questionRepo, attemptRepo, classRepo, userRepo),
		service.NewAssignmentService(assignmentRepo, submissionRepo, classRepo, userRepo, store),
	)

	ctrl := NewStudentController(domain)
	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/classes", ctrl.ListClasses)
	api.POST("/classes/:class_id/enroll", ctrl.Enroll)
	api.POST("/classes/:class_id/join", ctrl.JoinClass)
	api.POST("/assignments/:assignment_id/submissions", ctrl.SubmitAssignment)

	return &fixture{router: router, db: db, dir: dir}
}

func (f *fixture) studentID(t *testing.T) uint {
	t.Helper()
	var user model.User
	require.NoError(t, f.db.Where("username = ?", "student").First(&user).Error)
	return user.ID
}

func (f *fixture) addAssignment(t *testing.T, title string) uint {
	t.Helper()
	assignment := model.Assignment{Title: title, ClassID: model.UnassignedClass, DueDate: "2026-09-20"}
	require.NoError(t, f.db.Create(&assignment).Error)
	return assignment.ID
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func uploadRequest(t *testing.T, assignmentID, studentID uint, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("student_id", fmt.Sprint(studentID)))
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/assignments/%d/submissions", assignmentID), &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmitAssignmentUpload(t *testing.T) {
	f := newFixture(t)
	assignmentID := f.addAssignment(t, "HW 1")
	studentID := f.studentID(t)

	rec := f.do(uploadRequest(t, assignmentID, studentID, "homework.pdf", "my homework"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var submission dto.SubmissionDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submission))
	assert.Equal(t, assignmentID, submission.AssignmentID)
	assert.Equal(t, studentID, submission.StudentID)
	assert.Equal(t, f.dir, filepath.Dir(submission.FilePath))
	assert.Equal(t, ".pdf", filepath.Ext(submission.FilePath))

	content, err := os.ReadFile(submission.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "my homework", string(content))
}

// Two in-flight uploads sharing a basename must not read each other's staged
// content: each submission row has to reference its own bytes.
func TestSubmitAssignmentUploadSameBasename(t *testing.T) {
	f := newFixture(t)
	assignmentID := f.addAssignment(t, "HW 1")
	studentID := f.studentID(t)

	contents := []string{"first student's work", "second student's work"}
	recs := make([]*httptest.ResponseRecorder, len(contents))

	var wg sync.WaitGroup
	for i, content := range contents {
		wg.Add(1)
		go func(i int, content string) {
			defer wg.Done()
			recs[i] = f.do(uploadRequest(t, assignmentID, studentID, "homework.pdf", content))
		}(i, content)
	}
	wg.Wait()

	paths := make(map[string]bool)
	for i, rec := range recs {
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var submission dto.SubmissionDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submission))
		stored, err := os.ReadFile(submission.FilePath)
		require.NoError(t, err)
		assert.Equal(t, contents[i], string(stored))
		paths[submission.FilePath] = true
	}
	assert.Len(t, paths, len(contents))
}

func TestSubmitAssignmentUploadUnknownAssignment(t *testing.T) {
	f := newFixture(t)
	studentID := f.studentID(t)

	rec := f.do(uploadRequest(t, 999, studentID, "homework.pdf", "my homework"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	require.NoError(t, f.db.Model(&model.Submission{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type failingStore struct{}

func (failingStore) Store(string) (string, error) {
	return "", apperr.Storage(errors.New("disk full"))
}

func (failingStore) Remove(string) error {
	return apperr.Storage(errors.New("disk full"))
}

func TestSubmitAssignmentUploadStorageFailure(t *testing.T) {
	f := newFixtureWithStore(t, failingStore{}, t.TempDir())
	assignmentID := f.addAssignment(t, "HW 1")
	studentID := f.studentID(t)

	rec := f.do(uploadRequest(t, assignmentID, studentID, "homework.pdf", "my homework"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var count int64
	require.NoError(t, f.db.Model(&model.Submission{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestJoinClassStatuses(t *testing.T) {
	f := newFixture(t)
	studentID := f.studentID(t)

	class := model.Class{Title: "Math", MeetLink: "https://meet.google.com/abc-defg-hij", CreatedBy: 1}
	require.NoError(t, f.db.Create(&class).Error)

	body := fmt.Sprintf(`{"student_id": %d}`, studentID)
	target := fmt.Sprintf("/api/v1/classes/%d/join", class.ID)

	rec := f.do(jsonRequest(http.MethodPost, target, body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result dto.JoinClassResultDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", result.MeetLink)
	assert.Equal(t, "recorded", result.Status)

	rec = f.do(jsonRequest(http.MethodPost, target, body))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "already_marked", result.Status)

	rec = f.do(jsonRequest(http.MethodPost, "/api/v1/classes/999/join", body))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A class row carrying an invalid link cannot be joined.
	legacy := model.Class{Title: "Old", MeetLink: "http://zoom.us/123", CreatedBy: 1}
	require.NoError(t, f.db.Create(&legacy).Error)
	rec = f.do(jsonRequest(http.MethodPost, fmt.Sprintf("/api/v1/classes/%d/join", legacy.ID), body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnroll(t *testing.T) {
	f := newFixture(t)
	studentID := f.studentID(t)

	class := model.Class{Title: "Math", MeetLink: "https://meet.google.com/abc-defg-hij", CreatedBy: 1}
	require.NoError(t, f.db.Create(&class).Error)

	body := fmt.Sprintf(`{"student_id": %d}`, studentID)
	rec := f.do(jsonRequest(http.MethodPost, fmt.Sprintf("/api/v1/classes/%d/enroll", class.ID), body))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(jsonRequest(http.MethodPost, "/api/v1/classes/999/enroll", body))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(jsonRequest(http.MethodPost, fmt.Sprintf("/api/v1/classes/%d/enroll", class.ID), `{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
