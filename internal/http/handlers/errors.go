package handlers

import (
	"net/http"

	"pipas/internal/domain"
	"pipas/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
		Message:   message,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Store failures
// keep their cause out of the body; the request log has it.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsViajeCerrado(err):
		respondError(c, http.StatusConflict, "viaje_cerrado", err.Error(), nil)
	case domain.IsWriteFailure(err):
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "write_failed", "no se pudo guardar el cambio", nil)
	case domain.IsReadFailure(err):
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "read_failed", "no se pudieron leer los datos", nil)
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "ocurrió un error", nil)
	}
}
