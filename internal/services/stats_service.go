package services

import (
	"busticket/internal/domain/models"
	"busticket/internal/utils"
)

// StatsService derives read-only rollups from the engine's state. It
// never mutates; each figure is taken from a point-in-time snapshot, so
// totals may trail concurrent writers by a moment. That staleness is a
// documented trade-off, not a bug.
type StatsService struct {
	Booking *BookingService
}

func (s StatsService) SystemStats() models.SystemStats {
	stats := models.SystemStats{}
	for _, bus := range s.Booking.AllBuses() {
		stats.TotalBuses++
		stats.TotalSeats += bus.TotalSeats
		stats.BookedSeats += bus.BookedCount
	}
	stats.AvailableSeats = stats.TotalSeats - stats.BookedSeats
	if stats.TotalSeats > 0 {
		stats.OverallOccupancy = utils.Round2(float64(stats.BookedSeats) / float64(stats.TotalSeats) * 100)
	}

	var revenue float64
	for _, t := range s.Booking.ListTickets("", "") {
		stats.TotalTickets++
		revenue += t.Fare
	}
	stats.TotalRevenue = utils.Round2(revenue)
	return stats
}
