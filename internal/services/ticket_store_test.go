package services

import (
	"sync"
	"testing"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

func TestTicketStoreIDsMonotonic(t *testing.T) {
	s := NewTicketStore()

	var prev domain.TicketID
	for i := 0; i < 10; i++ {
		id := s.NextID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestTicketStoreIDsNeverReusedAfterRemove(t *testing.T) {
	s := NewTicketStore()

	first := s.NextID()
	s.Insert(models.Ticket{ID: first, Name: "Alice"})
	if _, ok := s.Remove(first); !ok {
		t.Fatalf("remove of existing ticket failed")
	}

	next := s.NextID()
	if next <= first {
		t.Fatalf("id %d after cancellation should exceed retired id %d", next, first)
	}
}

func TestTicketStoreAdvanceTo(t *testing.T) {
	s := NewTicketStore()
	s.AdvanceTo(7)
	if id := s.NextID(); id != 8 {
		t.Fatalf("NextID after AdvanceTo(7) = %d, want 8", id)
	}

	// advancing backwards never lowers the counter
	s.AdvanceTo(3)
	if id := s.NextID(); id != 9 {
		t.Fatalf("NextID after AdvanceTo(3) = %d, want 9", id)
	}
}

func TestTicketStoreMutateUpdatesCopy(t *testing.T) {
	s := NewTicketStore()
	s.Insert(models.Ticket{ID: 1, Name: "Alice", Bus: "BUS001", Seat: "S01"})

	updated, ok := s.Mutate(1, func(tk *models.Ticket) { tk.Name = "Bob" })
	if !ok {
		t.Fatalf("Mutate of existing ticket failed")
	}
	if updated.Name != "Bob" {
		t.Fatalf("mutated name = %q, want Bob", updated.Name)
	}
	if updated.Bus != "BUS001" || updated.Seat != "S01" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}

	if _, ok := s.Mutate(99, func(*models.Ticket) {}); ok {
		t.Fatalf("Mutate of missing ticket should report false")
	}
}

func TestTicketStoreConcurrentNextIDUnique(t *testing.T) {
	s := NewTicketStore()

	const n = 200
	var wg sync.WaitGroup
	ids := make(chan domain.TicketID, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.NextID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[domain.TicketID]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d allocated twice", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("allocated %d unique ids, want %d", len(seen), n)
	}
}
