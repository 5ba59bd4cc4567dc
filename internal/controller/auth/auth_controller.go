package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoangtm/classtrack/internal/controller"
	"github.com/hoangtm/classtrack/internal/dto"
	"github.com/hoangtm/classtrack/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	domain *service.DomainManager
}

func NewAuthController(domain *service.DomainManager) *AuthController {
	return &AuthController{domain: domain}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a teacher or student account. Usernames are globally unique.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body dto.RegisterDTO true "Account details"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.domain.Register(req.Username, req.Credential, req.Role)
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("Register failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Authenticate an account
// @Description Verifies username and credential. Wrong username and wrong credential are indistinguishable.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Login credentials"
// @Success 200 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Unknown user or wrong credential"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.domain.Authenticate(req.Username, req.Credential)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
