package repositories

import (
	"testing"
	"time"

	intconfig "busticket/internal/config"
	"busticket/internal/domain"
	"busticket/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTicketRepositorySaveAndRemove(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := TicketRepository{DB: db}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS tickets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema error: %v", err)
	}

	bookedAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	ticket := models.Ticket{
		ID:          1,
		Name:        "Alice",
		Bus:         "BUS001",
		Seat:        "S05",
		SeatClass:   domain.ClassPremium,
		Fare:        97.5,
		Reference:   "BKG12AB34CD",
		Status:      domain.StatusConfirmed,
		BookingTime: bookedAt,
	}

	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(int64(1), "Alice", "BUS001", "S05", "premium", 97.5, "BKG12AB34CD", "confirmed", bookedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	if err := repo.Save(ticket); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	mock.ExpectExec("DELETE FROM tickets").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Remove(1); err != nil {
		t.Fatalf("Remove error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketRepositoryLoadAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	bookedAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	cols := []string{"id", "passenger_name", "bus_number", "seat_number", "seat_type", "fare", "booking_reference", "status", "booking_time"}
	mock.ExpectQuery("SELECT id, passenger_name").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Alice", "BUS001", "S05", "premium", 97.5, "BKGAAAA1111", "confirmed", bookedAt).
			AddRow(4, "Bob", "BUS003", "S35", "sleeper", 75.0, "BKGBBBB2222", "confirmed", bookedAt))

	repo := TicketRepository{DB: db}
	tickets, err := repo.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll error: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("loaded %d tickets, want 2", len(tickets))
	}
	if tickets[0].ID != 1 || tickets[0].SeatClass != domain.ClassPremium {
		t.Fatalf("first ticket mapped wrong: %+v", tickets[0])
	}
	if tickets[1].ID != 4 || tickets[1].Status != domain.StatusConfirmed || tickets[1].Fare != 75.0 {
		t.Fatalf("second ticket mapped wrong: %+v", tickets[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTicketRepositoryFallsBackToGlobalDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectExec("DELETE FROM tickets").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := TicketRepository{}
	if err := repo.Remove(9); err != nil {
		t.Fatalf("Remove via global DB error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
