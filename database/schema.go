package database

import (
	"fmt"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo account credentials seeded on an empty users table.
const (
	demoTeacherUsername = "teacher"
	demoTeacherPassword = "teacher123"
	demoStudentUsername = "student"
	demoStudentPassword = "student123"
)

// EnsureSchema creates all tables if absent and seeds the two demo accounts
// when the users table is empty. A DDL failure is the one unrecoverable
// startup error in the system; callers should treat it as fatal.
func EnsureSchema(db *gorm.DB) error {
	log.Info().Msg("Ensuring database schema...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Enrollment{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.Assignment{},
		&model.Submission{},
		&model.QuizAttempt{},
		&model.Attendance{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Schema migration failed")
		return fmt.Errorf("%w: %v", apperr.ErrSchema, err)
	}

	if err := seedDemoAccounts(db); err != nil {
		return err
	}

	log.Info().Msg("Schema ensured")
	return nil
}

func seedDemoAccounts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: counting users: %v", apperr.ErrSchema, err)
	}
	if count > 0 {
		return nil
	}

	demos := []struct {
		username, password, role string
	}{
		{demoTeacherUsername, demoTeacherPassword, model.RoleTeacher},
		{demoStudentUsername, demoStudentPassword, model.RoleStudent},
	}
	for _, d := range demos {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("%w: hashing demo credential: %v", apperr.ErrSchema, err)
		}
		user := model.User{Username: d.username, Credential: string(hash), Role: d.role}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("%w: seeding demo account %q: %v", apperr.ErrSchema, d.username, err)
		}
		log.Info().Str("username", d.username).Str("role", d.role).Msg("Seeded demo account")
	}
	return nil
}
