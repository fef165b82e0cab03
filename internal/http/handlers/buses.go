package handlers

import (
	"net/http"

	"busticket/internal/services"
	"busticket/internal/utils"

	"github.com/gin-gonic/gin"
)

// BusHandler serves the fleet read views.
type BusHandler struct {
	Booking *services.BookingService
}

// GET /api/buses
func (h BusHandler) List(c *gin.Context) {
	buses := h.Booking.AllBuses()
	c.JSON(http.StatusOK, gin.H{
		"buses": buses,
		"count": len(buses),
	})
}

// GET /api/buses/:code
func (h BusHandler) Get(c *gin.Context) {
	code := utils.FormatBusCode(c.Param("code"))
	info, err := h.Booking.GetBusInfo(code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": info})
}

// GET /api/buses/:code/seats
func (h BusHandler) AvailableSeats(c *gin.Context) {
	code := utils.FormatBusCode(c.Param("code"))
	seats := h.Booking.GetAvailableSeats(code)
	c.JSON(http.StatusOK, gin.H{
		"bus":             code,
		"available_seats": seats,
		"count":           len(seats),
	})
}
