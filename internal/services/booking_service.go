package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/utils"
)

// TicketRepository persists tickets across restarts. It is optional:
// the in-memory engine is authoritative within a process lifetime, and
// persistence failures are logged, never surfaced to the caller.
type TicketRepository interface {
	Save(t models.Ticket) error
	Remove(id domain.TicketID) error
	LoadAll() ([]models.Ticket, error)
}

// BookingService is the booking engine. It owns one SeatLedger per bus
// and the TicketStore; nothing outside the engine mutates either.
// Locking is per bus: Book/Release claims are serialized inside the
// ledger, ID allocation is a global atomic counter, and reads work on
// copied snapshots that may trail concurrent writers slightly.
type BookingService struct {
	Audit AuditSink        // optional, fire-and-forget
	Repo  TicketRepository // optional

	fare  FarePolicy
	buses map[string]*SeatLedger
	codes []string
	seats int
	store *TicketStore
	now   func() time.Time
}

func NewBookingService(busCodes []string, seatsPerBus int, fare FarePolicy) *BookingService {
	s := &BookingService{
		fare:  fare,
		buses: make(map[string]*SeatLedger, len(busCodes)),
		seats: seatsPerBus,
		store: NewTicketStore(),
		now:   utils.NowUTC,
	}
	for _, code := range busCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, dup := s.buses[code]; dup {
			continue
		}
		s.buses[code] = NewSeatLedger(code, seatsPerBus)
		s.codes = append(s.codes, code)
	}
	sort.Strings(s.codes)
	return s
}

// SeatsPerBus is the fixed seat count every bus was constructed with.
func (s *BookingService) SeatsPerBus() int { return s.seats }

// CreateTicket validates, claims the seat and records the ticket. The
// ledger's Book is the serialization point: of two concurrent calls for
// the same (bus, seat), exactly one passes it.
func (s *BookingService) CreateTicket(name, busCode, seat string) (models.Ticket, error) {
	busCode = strings.ToUpper(strings.TrimSpace(busCode))
	seat = strings.ToUpper(strings.TrimSpace(seat))
	name = strings.TrimSpace(name)

	if !utils.ValidBusCode(busCode) {
		return models.Ticket{}, domain.NotFoundError{Resource: "bus"}
	}
	ledger, ok := s.buses[busCode]
	if !ok {
		return models.Ticket{}, domain.NotFoundError{Resource: "bus"}
	}
	if !utils.ValidSeatCode(seat) {
		return models.Ticket{}, domain.ValidationError{Field: "seat", Msg: "seat must be in S## form"}
	}
	if !utils.ValidPassengerName(name) {
		return models.Ticket{}, domain.ValidationError{Field: "name", Msg: "passenger name must be at least 2 letters (letters, spaces, -, ', . only)"}
	}

	booked, err := ledger.Book(seat)
	if err != nil {
		return models.Ticket{}, err
	}
	if !booked {
		return models.Ticket{}, domain.SeatUnavailableError{
			Bus:       busCode,
			Seat:      seat,
			Available: ledger.AvailableSeats(),
		}
	}

	id := s.store.NextID()
	bookedAt := s.now()
	class := s.fare.SeatClassFor(seat)
	ticket := models.Ticket{
		ID:          id,
		Name:        name,
		Bus:         busCode,
		Seat:        seat,
		SeatClass:   class,
		Fare:        s.fare.Fare(busCode, class),
		Reference:   utils.BookingReference(int64(id), name, bookedAt),
		Status:      domain.StatusConfirmed,
		BookingTime: bookedAt,
	}
	s.store.Insert(ticket)

	s.persistSave(ticket)
	s.audit(models.AuditRecord{
		Action:   domain.AuditCreate,
		TicketID: id,
		After: map[string]string{
			"name": ticket.Name,
			"bus":  ticket.Bus,
			"seat": ticket.Seat,
			"fare": utils.FormatMoney(ticket.Fare),
		},
		Actor:     "system",
		Timestamp: bookedAt,
	})
	return ticket, nil
}

func (s *BookingService) GetTicket(id domain.TicketID) (models.Ticket, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
	}
	return t, nil
}

// UpdateTicket changes the passenger name, the only mutable field.
// Bus, seat, fare, status and booking time are frozen at creation.
func (s *BookingService) UpdateTicket(id domain.TicketID, newName string) (models.Ticket, error) {
	newName = strings.TrimSpace(newName)
	if !utils.ValidPassengerName(newName) {
		return models.Ticket{}, domain.ValidationError{Field: "name", Msg: "passenger name must be at least 2 letters (letters, spaces, -, ', . only)"}
	}

	var oldName string
	updated, ok := s.store.Mutate(id, func(t *models.Ticket) {
		oldName = t.Name
		t.Name = newName
	})
	if !ok {
		return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
	}

	s.persistSave(updated)
	s.audit(models.AuditRecord{
		Action:    domain.AuditUpdate,
		TicketID:  id,
		Before:    map[string]string{"name": oldName},
		After:     map[string]string{"name": newName},
		Actor:     "system",
		Timestamp: s.now(),
	})
	return updated, nil
}

// CancelTicket removes the ticket and frees its seat. Removal happens
// first: it is the atomic claim of the cancellation, so a racing
// CreateTicket can only grab the seat after release, by which point the
// old ticket is gone. Cancelled tickets are no longer queryable by ID;
// their history lives in the audit trail.
func (s *BookingService) CancelTicket(id domain.TicketID) bool {
	t, ok := s.store.Remove(id)
	if !ok {
		return false
	}

	ledger, ok := s.buses[t.Bus]
	if !ok {
		// Store and ledgers disagree: the concurrency contract was
		// broken somewhere. Fail loudly rather than auto-correct.
		panic(fmt.Sprintf("ticket %d references unknown bus %s", id, t.Bus))
	}
	ledger.Release(t.Seat)

	s.persistRemove(id)
	s.audit(models.AuditRecord{
		Action:   domain.AuditCancel,
		TicketID: id,
		Before: map[string]string{
			"name": t.Name,
			"bus":  t.Bus,
			"seat": t.Seat,
		},
		After:     map[string]string{"status": string(domain.StatusCancelled)},
		Actor:     "system",
		Timestamp: s.now(),
	})
	return true
}

// ListTickets returns active tickets, optionally filtered by bus code
// and status, ordered by ID. The active index only holds confirmed
// tickets, so a cancelled-status filter yields an empty result.
func (s *BookingService) ListTickets(busFilter, statusFilter string) []models.Ticket {
	busFilter = strings.ToUpper(strings.TrimSpace(busFilter))
	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))

	all := s.store.All()
	out := make([]models.Ticket, 0, len(all))
	for _, t := range all {
		if busFilter != "" && t.Bus != busFilter {
			continue
		}
		if statusFilter != "" && string(t.Status) != statusFilter {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetAvailableSeats returns the free seats of a bus in ascending order.
// An unknown bus yields an empty list, not an error: callers commonly
// probe before they have a known-good bus list.
func (s *BookingService) GetAvailableSeats(busCode string) []string {
	ledger, ok := s.buses[strings.ToUpper(strings.TrimSpace(busCode))]
	if !ok {
		return []string{}
	}
	return ledger.AvailableSeats()
}

func (s *BookingService) GetBusInfo(busCode string) (models.BusSummary, error) {
	ledger, ok := s.buses[strings.ToUpper(strings.TrimSpace(busCode))]
	if !ok {
		return models.BusSummary{}, domain.NotFoundError{Resource: "bus"}
	}
	return s.summarize(ledger, true), nil
}

// AllBuses returns summaries for the whole fleet, sorted by code.
func (s *BookingService) AllBuses() []models.BusSummary {
	out := make([]models.BusSummary, 0, len(s.codes))
	for _, code := range s.codes {
		out = append(out, s.summarize(s.buses[code], false))
	}
	return out
}

func (s *BookingService) summarize(ledger *SeatLedger, withSeats bool) models.BusSummary {
	booked := ledger.BookedCount()
	sum := models.BusSummary{
		Code:           ledger.Code(),
		TotalSeats:     ledger.TotalSeats(),
		BookedCount:    booked,
		AvailableCount: ledger.TotalSeats() - booked,
		OccupancyRate:  ledger.OccupancyRate(),
	}
	if withSeats {
		sum.AvailableList = ledger.AvailableSeats()
	}
	return sum
}

// Restore rehydrates the engine from the repository: confirmed tickets
// get their seats rebooked and the ID counter continues above the
// highest persisted identity. Call once at startup, before serving.
func (s *BookingService) Restore() error {
	if s.Repo == nil {
		return nil
	}
	tickets, err := s.Repo.LoadAll()
	if err != nil {
		return err
	}
	for _, t := range tickets {
		s.store.AdvanceTo(t.ID)
		if t.Status != domain.StatusConfirmed {
			continue
		}
		ledger, ok := s.buses[t.Bus]
		if !ok {
			utils.LogEvent("", "booking", "restore_skip", fmt.Sprintf("ticket_id=%d unknown bus %s", t.ID, t.Bus))
			continue
		}
		booked, err := ledger.Book(t.Seat)
		if err != nil || !booked {
			utils.LogEvent("", "booking", "restore_conflict", fmt.Sprintf("ticket_id=%d seat %s on %s not restorable", t.ID, t.Seat, t.Bus))
			continue
		}
		s.store.Insert(t)
	}
	utils.LogEvent("", "booking", "restore", fmt.Sprintf("restored %d tickets", s.store.Len()))
	return nil
}

// VerifyConsistency cross-checks ledgers against the store: every
// booked seat must map to exactly one confirmed ticket and vice versa.
// A mismatch means the concurrency contract was violated.
func (s *BookingService) VerifyConsistency() error {
	bySeat := make(map[string]domain.TicketID)
	for _, t := range s.store.All() {
		key := t.Bus + "/" + t.Seat
		if prev, dup := bySeat[key]; dup {
			return domain.InternalError{Msg: fmt.Sprintf("tickets %d and %d both hold %s", prev, t.ID, key)}
		}
		bySeat[key] = t.ID
	}
	booked := 0
	for _, code := range s.codes {
		for _, seat := range s.buses[code].BookedSeats() {
			booked++
			if _, ok := bySeat[code+"/"+seat]; !ok {
				return domain.InternalError{Msg: fmt.Sprintf("seat %s on %s is booked with no ticket", seat, code)}
			}
		}
	}
	if booked != len(bySeat) {
		return domain.InternalError{Msg: fmt.Sprintf("%d tickets for %d booked seats", len(bySeat), booked)}
	}
	return nil
}

func (s *BookingService) persistSave(t models.Ticket) {
	if s.Repo == nil {
		return
	}
	if err := s.Repo.Save(t); err != nil {
		utils.LogEvent("", "booking", "persist_save_failed", fmt.Sprintf("ticket_id=%d err=%v", t.ID, err))
	}
}

func (s *BookingService) persistRemove(id domain.TicketID) {
	if s.Repo == nil {
		return
	}
	if err := s.Repo.Remove(id); err != nil {
		utils.LogEvent("", "booking", "persist_remove_failed", fmt.Sprintf("ticket_id=%d err=%v", id, err))
	}
}

func (s *BookingService) audit(rec models.AuditRecord) {
	if s.Audit == nil {
		return
	}
	s.Audit.Record(rec)
}
