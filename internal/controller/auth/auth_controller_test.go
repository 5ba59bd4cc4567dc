package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/hoangtm/classtrack/database"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/hoangtm/classtrack/internal/service"
	"github.com/hoangtm/classtrack/internal/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.EnsureSchema(db))

	store, err := storage.NewLocalStore(afero.NewMemMapFs(), "/managed")
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	domain := service.NewDomainManager(
		service.NewIdentityService(userRepo),
		service.NewClassService(classRepo, userRepo, enrollmentRepo, store, db),
		service.NewAttendanceService(repository.NewAttendanceRepository(db), classRepo, userRepo),
		service.NewAssessmentService(repository.NewQuizRepository(db), repository.NewQuestionRepository(db),
			repository.NewAttemptRepository(db), classRepo, userRepo),
		service.NewAssignmentService(repository.NewAssignmentRepository(db), repository.NewSubmissionRepository(db),
			classRepo, userRepo, store),
	)

	ctrl := NewAuthController(domain)
	router := gin.New()
	api := router.Group("/api/v1/auth")
	api.POST("/register", ctrl.Register)
	api.POST("/login", ctrl.Login)
	return router
}

func post(router *gin.Engine, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	router := newRouter(t)

	rec := post(router, "/api/v1/auth/register",
		`{"username": "alice", "credential": "s3cret", "role": "student"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "student", user.Role)
	// The stored credential never appears in a response body.
	assert.NotContains(t, rec.Body.String(), "credential")
	assert.NotContains(t, rec.Body.String(), "s3cret")

	rec = post(router, "/api/v1/auth/login",
		`{"username": "alice", "credential": "s3cret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong credential and unknown user are the same failure.
	rec = post(router, "/api/v1/auth/login",
		`{"username": "alice", "credential": "wrong"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = post(router, "/api/v1/auth/login",
		`{"username": "nobody", "credential": "s3cret"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	router := newRouter(t)

	body := `{"username": "alice", "credential": "s3cret", "role": "student"}`
	rec := post(router, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(router, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	router := newRouter(t)

	rec := post(router, "/api/v1/auth/register",
		`{"username": "alice", "credential": "s3cret", "role": "admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(router, "/api/v1/auth/register", `{"username": "alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
