package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hoangtm/classtrack/config"
	_ "github.com/hoangtm/classtrack/docs"
	"github.com/hoangtm/classtrack/database"
	authctrl "github.com/hoangtm/classtrack/internal/controller/auth"
	studentctrl "github.com/hoangtm/classtrack/internal/controller/student"
	teacherctrl "github.com/hoangtm/classtrack/internal/controller/teacher"
	"github.com/hoangtm/classtrack/internal/logger"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/hoangtm/classtrack/internal/service"
	"github.com/hoangtm/classtrack/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Classtrack API
// @version 1.0
// @description Classroom-management backend: accounts, classes, attendance, quizzes, and assignment submissions.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			func(cfg *config.Config) (storage.FileStore, error) {
				return storage.NewLocalStore(afero.NewOsFs(), cfg.Storage.Dir)
			},
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewClassRepository,
			repository.NewEnrollmentRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewAssignmentRepository,
			repository.NewSubmissionRepository,
			repository.NewAttendanceRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewIdentityService,
			service.NewClassService,
			service.NewAttendanceService,
			service.NewAssessmentService,
			service.NewAssignmentService,
			service.NewDomainManager,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			teacherctrl.NewTeacherController,
			studentctrl.NewStudentController,
		),

		fx.Invoke(database.EnsureSchema),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the server
// lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *authctrl.AuthController,
	teacherCtrl *teacherctrl.TeacherController,
	studentCtrl *studentctrl.StudentController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)

		teacherGroup := api.Group("/teacher")
		{
			teacherGroup.GET("/classes", teacherCtrl.ListClasses)
			teacherGroup.POST("/classes", teacherCtrl.CreateClass)
			teacherGroup.PUT("/classes", teacherCtrl.UpdateClass)
			teacherGroup.DELETE("/classes", teacherCtrl.DeleteClass)
			teacherGroup.GET("/classes/:class_id/attendance", teacherCtrl.ClassAttendance)

			teacherGroup.POST("/quizzes", teacherCtrl.CreateQuiz)
			teacherGroup.DELETE("/quizzes", teacherCtrl.DeleteQuiz)
			teacherGroup.POST("/questions", teacherCtrl.AddQuestion)

			teacherGroup.POST("/assignments", teacherCtrl.CreateAssignment)
			teacherGroup.DELETE("/assignments", teacherCtrl.DeleteAssignment)
			teacherGroup.GET("/assignments/:assignment_id/submissions", teacherCtrl.ListSubmissions)
			teacherGroup.PUT("/submissions/:submission_id/grade", teacherCtrl.GradeSubmission)
		}

		api.GET("/classes", studentCtrl.ListClasses)
		api.POST("/classes/:class_id/enroll", studentCtrl.Enroll)
		api.POST("/classes/:class_id/join", studentCtrl.JoinClass)

		api.GET("/quizzes", studentCtrl.ListQuizzes)
		api.GET("/quizzes/questions", studentCtrl.GetQuizQuestions)
		api.POST("/quizzes/:quiz_id/attempts", studentCtrl.SubmitAttempt)
		api.GET("/quizzes/:quiz_id/my-attempts", studentCtrl.ListAttempts)

		api.GET("/assignments", studentCtrl.ListAssignments)
		api.POST("/assignments/:assignment_id/submissions", studentCtrl.SubmitAssignment)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Classtrack API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
