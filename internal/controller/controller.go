package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoangtm/classtrack/internal/apperr"
	"github.com/hoangtm/classtrack/internal/dto"
)

// WriteError maps a domain error to its HTTP status and writes the JSON
// error body. Errors outside the taxonomy are treated as database failures.
func WriteError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrStorage):
		status = http.StatusBadGateway
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}
