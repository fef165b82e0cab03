package handlers

import (
	"errors"
	"net/http"

	"busticket/internal/domain"
	"busticket/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error":   message,
		"code":    code,
		"details": details,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. The "code"
// field carries the stable error kind so clients can branch on it.
func RespondDomainError(c *gin.Context, err error) {
	kind := domain.Kind(err)
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, kind, err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, kind, err.Error(), nil)
	case domain.IsSeatUnavailable(err):
		var su domain.SeatUnavailableError
		errors.As(err, &su)
		respondError(c, http.StatusConflict, kind, err.Error(), gin.H{"available_seats": su.Available})
	default:
		respondError(c, http.StatusInternalServerError, domain.KindInternal, "internal error", nil)
	}
}
