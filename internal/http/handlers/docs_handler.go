package handlers

import (
	"net/http"

	"busticket/internal/http/middleware"
	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

// DocsHandler serves the printable e-ticket PDF.
type DocsHandler struct {
	Booking *services.BookingService
}

// GET /api/tickets/:id/e-ticket
func (h DocsHandler) ETicket(c *gin.Context) {
	id, ok := ticketIDParam(c)
	if !ok {
		return
	}

	svc := services.DocsService{Booking: h.Booking, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
