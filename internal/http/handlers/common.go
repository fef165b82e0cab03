package handlers

import (
	"net/http"
	"strconv"

	"busticket/internal/domain"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "no_data", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "request payload is not valid JSON", nil)
		return false
	}
	return true
}

// ticketIDParam parses the :id route param into a ticket identity.
func ticketIDParam(c *gin.Context) (domain.TicketID, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, domain.KindValidation, "ticket id must be a positive integer", nil)
		return 0, false
	}
	return domain.TicketID(id), true
}
