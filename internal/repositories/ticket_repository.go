package repositories

import (
	"database/sql"
	"fmt"

	intconfig "busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

// TicketRepository persists tickets to MySQL. It satisfies the booking
// engine's TicketRepository interface; the engine treats it as
// best-effort and stays authoritative in memory.
type TicketRepository struct {
	DB *sql.DB
}

func (r TicketRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// EnsureSchema creates the tickets table when missing.
func (r TicketRepository) EnsureSchema() error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tickets (
			id BIGINT PRIMARY KEY,
			passenger_name VARCHAR(120) NOT NULL,
			bus_number VARCHAR(16) NOT NULL,
			seat_number VARCHAR(8) NOT NULL,
			seat_type VARCHAR(16) NOT NULL DEFAULT 'standard',
			fare DOUBLE NOT NULL DEFAULT 0,
			booking_reference VARCHAR(32) NOT NULL DEFAULT '',
			status VARCHAR(16) NOT NULL DEFAULT 'confirmed',
			booking_time DATETIME NOT NULL,
			INDEX idx_tickets_bus (bus_number),
			INDEX idx_tickets_status (status)
		)`)
	return err
}

// Save inserts or refreshes a ticket row. Only the mutable fields are
// updated on conflict; identity columns never change.
func (r TicketRepository) Save(t models.Ticket) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	_, err := db.Exec(`
		INSERT INTO tickets (id, passenger_name, bus_number, seat_number, seat_type, fare, booking_reference, status, booking_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE passenger_name = VALUES(passenger_name), status = VALUES(status)`,
		int64(t.ID), t.Name, t.Bus, t.Seat, string(t.SeatClass), t.Fare, t.Reference, string(t.Status), t.BookingTime,
	)
	return err
}

func (r TicketRepository) Remove(id domain.TicketID) error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	_, err := db.Exec(`DELETE FROM tickets WHERE id = ?`, int64(id))
	return err
}

// LoadAll returns every persisted ticket, oldest first.
func (r TicketRepository) LoadAll() ([]models.Ticket, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	rows, err := db.Query(`
		SELECT id, passenger_name, bus_number, seat_number, seat_type, fare, booking_reference, status, booking_time
		FROM tickets ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		var (
			t    models.Ticket
			id   int64
			cls  string
			stat string
		)
		if err := rows.Scan(&id, &t.Name, &t.Bus, &t.Seat, &cls, &t.Fare, &t.Reference, &stat, &t.BookingTime); err != nil {
			return out, err
		}
		t.ID = domain.TicketID(id)
		t.SeatClass = domain.SeatClass(cls)
		t.Status = domain.TicketStatus(stat)
		out = append(out, t)
	}
	return out, rows.Err()
}
