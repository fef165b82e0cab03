package services

import (
	"sync"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

// TicketStore indexes ticket records by identity and owns the global
// ID counter. Identities start at 1, strictly increase and are never
// reused, including across cancellations. All methods are safe for
// concurrent use.
type TicketStore struct {
	mu      sync.RWMutex
	tickets map[domain.TicketID]models.Ticket
	lastID  int64
}

func NewTicketStore() *TicketStore {
	return &TicketStore{tickets: make(map[domain.TicketID]models.Ticket)}
}

// NextID allocates the next ticket identity.
func (s *TicketStore) NextID() domain.TicketID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return domain.TicketID(s.lastID)
}

// AdvanceTo bumps the counter so future IDs stay above id. Used when
// rehydrating persisted tickets at startup.
func (s *TicketStore) AdvanceTo(id domain.TicketID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int64(id) > s.lastID {
		s.lastID = int64(id)
	}
}

func (s *TicketStore) Insert(t models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[t.ID] = t
}

func (s *TicketStore) Get(id domain.TicketID) (models.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[id]
	return t, ok
}

// Mutate applies fn to the ticket under the store lock and returns the
// updated copy. The closure must not call back into the store.
func (s *TicketStore) Mutate(id domain.TicketID, fn func(*models.Ticket)) (models.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok {
		return models.Ticket{}, false
	}
	fn(&t)
	s.tickets[id] = t
	return t, true
}

// Remove deletes the ticket from the active index and returns it. The
// identity is retired, never reassigned.
func (s *TicketStore) Remove(id domain.TicketID) (models.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok {
		return models.Ticket{}, false
	}
	delete(s.tickets, id)
	return t, true
}

// All returns a copy of the active ticket set.
func (s *TicketStore) All() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}
	return out
}

func (s *TicketStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}
