package monitoring

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"busticket/internal/services"
)

var (
	bookingOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_operations_total",
			Help: "Total ticket operations by outcome",
		},
		[]string{"operation", "bus", "status"},
	)

	busOccupancy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bus_occupancy_percent",
			Help: "Current occupancy percentage per bus",
		},
		[]string{"bus"},
	)

	bookedSeats = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "booked_seats_total",
			Help: "Currently booked seats across the fleet",
		},
	)

	activeTickets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_tickets_total",
			Help: "Currently confirmed tickets",
		},
	)

	goroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_goroutines_total",
			Help: "Current number of active goroutines",
		},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Monitor periodically exports engine snapshots as gauges. It reads
// through the engine's public snapshot methods only; it never touches
// ledgers or the store directly.
type Monitor struct {
	booking *services.BookingService
	stop    chan struct{}
}

func NewMonitor(booking *services.BookingService) *Monitor {
	m := &Monitor{booking: booking, stop: make(chan struct{})}
	go m.collect()
	return m
}

func (m *Monitor) Stop() { close(m.stop) }

func (m *Monitor) collect() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	m.scrape()
	for {
		select {
		case <-ticker.C:
			m.scrape()
		case <-m.stop:
			return
		}
	}
}

func (m *Monitor) scrape() {
	booked := 0
	for _, bus := range m.booking.AllBuses() {
		busOccupancy.WithLabelValues(bus.Code).Set(bus.OccupancyRate)
		booked += bus.BookedCount
	}
	bookedSeats.Set(float64(booked))
	activeTickets.Set(float64(len(m.booking.ListTickets("", ""))))
	goroutineCount.Set(float64(runtime.NumGoroutine()))
}

// TrackOperation counts one ticket operation outcome, e.g.
// ("create", "BUS001", "success") or ("create", "BUS001", "seat_unavailable").
func TrackOperation(operation, bus, status string) {
	bookingOps.WithLabelValues(operation, bus, status).Inc()
}
