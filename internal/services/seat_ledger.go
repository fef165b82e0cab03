package services

import (
	"sort"
	"sync"

	"busticket/internal/domain"
	"busticket/internal/utils"
)

// SeatLedger owns the booked-seat set for one bus. It is the unit of
// mutual exclusion: Book claims a seat atomically, so two concurrent
// bookings for the same seat can never both succeed. Operations on
// different buses never contend.
type SeatLedger struct {
	mu     sync.Mutex
	code   string
	total  int
	booked map[string]struct{}
}

func NewSeatLedger(busCode string, totalSeats int) *SeatLedger {
	return &SeatLedger{
		code:   busCode,
		total:  totalSeats,
		booked: make(map[string]struct{}),
	}
}

func (l *SeatLedger) Code() string    { return l.code }
func (l *SeatLedger) TotalSeats() int { return l.total }

// IsAvailable reports whether the seat is currently free. The answer
// may be stale by the time the caller acts on it; Book is the only
// authoritative claim.
func (l *SeatLedger) IsAvailable(seat string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, taken := l.booked[seat]
	return !taken
}

// Book claims the seat. It returns false when the seat is already
// taken; losing that race is a normal outcome, not an error. Seats
// outside [1, total] are rejected with InvalidSeat.
func (l *SeatLedger) Book(seat string) (bool, error) {
	pos := utils.SeatPosition(seat)
	if pos < 1 || pos > l.total {
		return false, domain.ValidationError{Field: "seat", Msg: "seat " + seat + " is outside the valid range"}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.booked[seat]; taken {
		return false, nil
	}
	l.booked[seat] = struct{}{}
	return true, nil
}

// Release frees a seat. Releasing a seat that is not booked is a no-op.
func (l *SeatLedger) Release(seat string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.booked, seat)
}

// AvailableSeats returns free seat codes in ascending position order.
func (l *SeatLedger) AvailableSeats() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, l.total-len(l.booked))
	for i := 1; i <= l.total; i++ {
		code := utils.SeatCode(i)
		if _, taken := l.booked[code]; !taken {
			out = append(out, code)
		}
	}
	return out
}

// BookedSeats returns booked seat codes in ascending position order.
func (l *SeatLedger) BookedSeats() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.booked))
	for code := range l.booked {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func (l *SeatLedger) BookedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.booked)
}

// OccupancyRate is booked/total*100 rounded to two decimals.
func (l *SeatLedger) OccupancyRate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.total == 0 {
		return 0
	}
	return utils.Round2(float64(len(l.booked)) / float64(l.total) * 100)
}
