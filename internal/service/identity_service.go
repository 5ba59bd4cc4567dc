package service

import (
	"errors"

	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/model"
	"github.com/hoangtm/classtrack/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityService authenticates and registers accounts. Credentials are
// stored as bcrypt hashes; the authenticate contract stays
// username+credential -> user or not-found.
type IdentityService interface {
	Authenticate(username, credential string) (*dto.UserDTO, error)
	Register(username, credential, role string) (*dto.UserDTO, error)
}

type identityService struct {
	userRepo repository.UserRepository
}

func NewIdentityService(userRepo repository.UserRepository) IdentityService {
	return &identityService{userRepo: userRepo}
}

// Authenticate looks up the account by username (no case normalization) and
// verifies the credential. A missing user and a wrong credential are both
// reported as not-found so the response does not reveal which failed.
func (s *identityService) Authenticate(username, credential string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		log.Error().Err(err).Str("username", username).Msg("Authenticate: lookup failed")
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Credential), []byte(credential)) != nil {
		return nil, apperr.NotFound("user")
	}

	var resp dto.UserDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *identityService) Register(username, credential, role string) (*dto.UserDTO, error) {
	if username == "" || credential == "" {
		return nil, apperr.Validation("username and credential are required")
	}
	if role != model.RoleTeacher && role != model.RoleStudent {
		return nil, apperr.Validation("role must be teacher or student")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{Username: username, Credential: string(hash), Role: role}
	if err := s.userRepo.Create(&user); err != nil {
		// The unique index on username is the authority; a concurrent
		// registration of the same name still lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("username")
		}
		log.Error().Err(err).Str("username", username).Msg("Register: insert failed")
		return nil, err
	}
	log.Info().Str("username", username).Str("role", role).Msg("Registered account")

	var resp dto.UserDTO
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, err
	}
	return &resp, nil
}
