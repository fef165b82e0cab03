package handlers

import (
	"fmt"
	"net/http"

	"busticket/internal/domain"
	"busticket/internal/http/middleware"
	"busticket/internal/monitoring"
	"busticket/internal/services"
	"busticket/internal/utils"

	"github.com/gin-gonic/gin"
)

// TicketHandler exposes the ticket lifecycle over HTTP. Input is
// sanitized and normalized here (the adapter's job); the engine
// re-validates everything regardless.
type TicketHandler struct {
	Booking *services.BookingService
}

type createTicketRequest struct {
	Name string `json:"name"`
	Bus  string `json:"bus"`
	Seat string `json:"seat"`
}

type updateTicketRequest struct {
	Name string `json:"name"`
}

// POST /api/tickets
func (h TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	name := utils.SanitizeInput(req.Name)
	bus := utils.FormatBusCode(req.Bus)
	seat := utils.FormatSeatCode(req.Seat, h.Booking.SeatsPerBus())

	ticket, err := h.Booking.CreateTicket(name, bus, seat)
	if err != nil {
		monitoring.TrackOperation("create", bus, domain.Kind(err))
		RespondDomainError(c, err)
		return
	}

	monitoring.TrackOperation("create", bus, "success")
	utils.LogEvent(middleware.GetRequestID(c), "ticket", "create",
		fmt.Sprintf("ticket_id=%d bus=%s seat=%s", ticket.ID, ticket.Bus, ticket.Seat))
	c.JSON(http.StatusCreated, gin.H{
		"message": "ticket booked successfully",
		"ticket":  ticket,
	})
}

// GET /api/tickets/:id
func (h TicketHandler) Get(c *gin.Context) {
	id, ok := ticketIDParam(c)
	if !ok {
		return
	}
	ticket, err := h.Booking.GetTicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// GET /api/tickets?bus=BUS001&status=confirmed
func (h TicketHandler) List(c *gin.Context) {
	busFilter := c.Query("bus")
	if busFilter != "" {
		busFilter = utils.FormatBusCode(busFilter)
	}
	statusFilter := c.DefaultQuery("status", string(domain.StatusConfirmed))

	tickets := h.Booking.ListTickets(busFilter, statusFilter)
	c.JSON(http.StatusOK, gin.H{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// PUT /api/tickets/:id
func (h TicketHandler) Update(c *gin.Context) {
	id, ok := ticketIDParam(c)
	if !ok {
		return
	}
	var req updateTicketRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	ticket, err := h.Booking.UpdateTicket(id, utils.SanitizeInput(req.Name))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "ticket", "update", fmt.Sprintf("ticket_id=%d", id))
	c.JSON(http.StatusOK, gin.H{
		"message": "ticket updated successfully",
		"ticket":  ticket,
	})
}

// DELETE /api/tickets/:id
func (h TicketHandler) Cancel(c *gin.Context) {
	id, ok := ticketIDParam(c)
	if !ok {
		return
	}
	if !h.Booking.CancelTicket(id) {
		RespondDomainError(c, domain.NotFoundError{Resource: "ticket"})
		return
	}

	monitoring.TrackOperation("cancel", "", "success")
	utils.LogEvent(middleware.GetRequestID(c), "ticket", "cancel", fmt.Sprintf("ticket_id=%d", id))
	c.JSON(http.StatusOK, gin.H{"message": "ticket cancelled successfully"})
}
