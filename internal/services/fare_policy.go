package services

import (
	"strings"

	"busticket/internal/domain"
	"busticket/internal/utils"
)

// FarePolicy maps (bus, seat position) to seat class and fare. It is
// pure: identical inputs always yield identical output, so results can
// be cached or frozen onto tickets without invalidation concerns.
type FarePolicy struct {
	BaseFare      float64
	PremiumBuses  map[string]bool
	BusMultiplier float64

	// Partition boundaries. Positions 1..PremiumMax are premium,
	// PremiumMax+1..StandardMax standard, the rest sleeper. Together
	// they must cover [1, seats-per-bus] with no gaps.
	PremiumMax  int
	StandardMax int
}

func DefaultFarePolicy() FarePolicy {
	return FarePolicy{
		BaseFare:      50.0,
		PremiumBuses:  map[string]bool{"BUS001": true, "BUS002": true},
		BusMultiplier: 1.5,
		PremiumMax:    10,
		StandardMax:   30,
	}
}

// SeatClassFor classifies a seat code. Unparseable codes fall back to
// standard; callers validating input beforehand never hit that path.
func (p FarePolicy) SeatClassFor(seat string) domain.SeatClass {
	pos := utils.SeatPosition(seat)
	switch {
	case pos == 0:
		return domain.ClassStandard
	case pos <= p.PremiumMax:
		return domain.ClassPremium
	case pos <= p.StandardMax:
		return domain.ClassStandard
	default:
		return domain.ClassSleeper
	}
}

// Fare is base fare x bus multiplier x class multiplier.
func (p FarePolicy) Fare(busCode string, class domain.SeatClass) float64 {
	fare := p.BaseFare
	if p.PremiumBuses[strings.ToUpper(busCode)] {
		fare *= p.BusMultiplier
	}
	switch class {
	case domain.ClassPremium:
		fare *= 1.3
	case domain.ClassSleeper:
		fare *= 1.5
	}
	return fare
}
