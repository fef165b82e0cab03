package models

import (
	"time"

	"busticket/internal/domain"
)

// Ticket is the booking record. Bus, seat, fare, seat class and booking
// time are frozen at creation; only the passenger name may change.
type Ticket struct {
	ID          domain.TicketID     `json:"id"`
	Name        string              `json:"name"`
	Bus         string              `json:"bus"`
	Seat        string              `json:"seat"`
	SeatClass   domain.SeatClass    `json:"seat_type"`
	Fare        float64             `json:"fare"`
	Reference   string              `json:"reference"`
	Status      domain.TicketStatus `json:"status"`
	BookingTime time.Time           `json:"booking_time"`
}

// BusSummary is the read-only view of one bus returned by GetBusInfo.
type BusSummary struct {
	Code           string   `json:"bus_number"`
	TotalSeats     int      `json:"total_seats"`
	BookedCount    int      `json:"booked_seats"`
	AvailableCount int      `json:"available_seats"`
	OccupancyRate  float64  `json:"occupancy_rate"`
	AvailableList  []string `json:"available_seats_list,omitempty"`
}

// SystemStats is the system-wide rollup returned by GetSystemStats.
type SystemStats struct {
	TotalTickets     int     `json:"total_tickets"`
	TotalBuses       int     `json:"total_buses"`
	TotalSeats       int     `json:"total_seats"`
	BookedSeats      int     `json:"booked_seats"`
	AvailableSeats   int     `json:"available_seats"`
	OverallOccupancy float64 `json:"overall_occupancy"`
	TotalRevenue     float64 `json:"total_revenue"`
}

// AuditRecord captures one ticket mutation for the audit trail. Sinks
// receive it fire-and-forget; a failing sink never fails the booking.
type AuditRecord struct {
	Action    string            `json:"action"`
	TicketID  domain.TicketID   `json:"ticket_id"`
	Before    map[string]string `json:"old_values,omitempty"`
	After     map[string]string `json:"new_values,omitempty"`
	Actor     string            `json:"actor"`
	Timestamp time.Time         `json:"timestamp"`
}
