package services

import (
	"fmt"
	"sync"
	"testing"

	"busticket/internal/domain"
)

func TestSeatLedgerBookAndRelease(t *testing.T) {
	l := NewSeatLedger("BUS001", 40)

	booked, err := l.Book("S05")
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if !booked {
		t.Fatalf("first booking of S05 should succeed")
	}

	booked, err = l.Book("S05")
	if err != nil {
		t.Fatalf("double booking should not error, got %v", err)
	}
	if booked {
		t.Fatalf("second booking of S05 should be refused")
	}
	if l.IsAvailable("S05") {
		t.Fatalf("S05 should be reported as taken")
	}

	l.Release("S05")
	if !l.IsAvailable("S05") {
		t.Fatalf("S05 should be free after release")
	}

	// releasing an already-free seat is a no-op
	l.Release("S05")
	if got := l.BookedCount(); got != 0 {
		t.Fatalf("booked count should be 0 after release, got %d", got)
	}
}

func TestSeatLedgerRejectsOutOfRangeSeat(t *testing.T) {
	l := NewSeatLedger("BUS001", 40)

	for _, seat := range []string{"S00", "S41", "S99"} {
		booked, err := l.Book(seat)
		if booked {
			t.Fatalf("seat %s outside [1,40] must not be bookable", seat)
		}
		if !domain.IsValidation(err) {
			t.Fatalf("seat %s should yield a validation error, got %v", seat, err)
		}
	}
}

func TestSeatLedgerAvailableSeatsOrdered(t *testing.T) {
	l := NewSeatLedger("BUS001", 5)
	if _, err := l.Book("S02"); err != nil {
		t.Fatalf("Book S02: %v", err)
	}
	if _, err := l.Book("S04"); err != nil {
		t.Fatalf("Book S04: %v", err)
	}

	got := l.AvailableSeats()
	want := []string{"S01", "S03", "S05"}
	if len(got) != len(want) {
		t.Fatalf("available seats = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("available seats = %v, want %v", got, want)
		}
	}

	bookedSeats := l.BookedSeats()
	if len(bookedSeats) != 2 || bookedSeats[0] != "S02" || bookedSeats[1] != "S04" {
		t.Fatalf("booked seats = %v, want [S02 S04]", bookedSeats)
	}
}

func TestSeatLedgerOccupancyRoundTrip(t *testing.T) {
	l := NewSeatLedger("BUS001", 40)

	for i := 1; i <= 10; i++ {
		booked, err := l.Book(fmt.Sprintf("S%02d", i))
		if err != nil || !booked {
			t.Fatalf("booking seat %d failed: booked=%v err=%v", i, booked, err)
		}
	}
	if got := l.OccupancyRate(); got != 25.0 {
		t.Fatalf("occupancy after 10/40 bookings = %v, want 25.0", got)
	}

	for i := 1; i <= 10; i++ {
		l.Release(fmt.Sprintf("S%02d", i))
	}
	if got := l.OccupancyRate(); got != 0.0 {
		t.Fatalf("occupancy after releasing all = %v, want 0.0", got)
	}
}

func TestSeatLedgerConcurrentBookSingleWinner(t *testing.T) {
	l := NewSeatLedger("BUS001", 40)

	const attempts = 64
	var wg sync.WaitGroup
	wins := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			booked, err := l.Book("S01")
			if err != nil {
				t.Errorf("Book returned error: %v", err)
				return
			}
			if booked {
				wins <- true
			}
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for range wins {
		winners++
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner for S01, got %d", winners)
	}
}
