package monitoring

import (
	"testing"

	"busticket/internal/services"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTrackOperation(t *testing.T) {
	before := testutil.ToFloat64(bookingOps.WithLabelValues("create", "BUS001", "success"))
	TrackOperation("create", "BUS001", "success")
	TrackOperation("create", "BUS001", "success")
	after := testutil.ToFloat64(bookingOps.WithLabelValues("create", "BUS001", "success"))

	if after-before != 2 {
		t.Fatalf("counter moved by %v, want 2", after-before)
	}
}

func TestMonitorScrape(t *testing.T) {
	booking := services.NewBookingService([]string{"BUS001", "BUS002"}, 40, services.DefaultFarePolicy())
	if _, err := booking.CreateTicket("Alice", "BUS001", "S01"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := booking.CreateTicket("Bob", "BUS001", "S02"); err != nil {
		t.Fatalf("create: %v", err)
	}

	m := &Monitor{booking: booking, stop: make(chan struct{})}
	m.scrape()

	if got := testutil.ToFloat64(bookedSeats); got != 2 {
		t.Fatalf("booked_seats_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(activeTickets); got != 2 {
		t.Fatalf("active_tickets_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(busOccupancy.WithLabelValues("BUS001")); got != 5.0 {
		t.Fatalf("bus_occupancy_percent{BUS001} = %v, want 5.0", got)
	}
	if got := testutil.ToFloat64(busOccupancy.WithLabelValues("BUS002")); got != 0 {
		t.Fatalf("bus_occupancy_percent{BUS002} = %v, want 0", got)
	}
}
