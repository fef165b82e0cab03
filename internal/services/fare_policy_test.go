package services

import (
	"testing"

	"busticket/internal/domain"
)

func TestSeatClassPartition(t *testing.T) {
	p := DefaultFarePolicy()

	cases := []struct {
		seat string
		want domain.SeatClass
	}{
		{"S01", domain.ClassPremium},
		{"S10", domain.ClassPremium},
		{"S11", domain.ClassStandard},
		{"S30", domain.ClassStandard},
		{"S31", domain.ClassSleeper},
		{"S40", domain.ClassSleeper},
		{"bogus", domain.ClassStandard},
		{"", domain.ClassStandard},
	}
	for _, tc := range cases {
		if got := p.SeatClassFor(tc.seat); got != tc.want {
			t.Fatalf("SeatClassFor(%q) = %s, want %s", tc.seat, got, tc.want)
		}
	}
}

func TestFareDeterministic(t *testing.T) {
	p := DefaultFarePolicy()

	cases := []struct {
		bus   string
		class domain.SeatClass
		want  float64
	}{
		{"BUS001", domain.ClassPremium, 97.5},  // 50 * 1.5 * 1.3
		{"BUS002", domain.ClassSleeper, 112.5}, // 50 * 1.5 * 1.5
		{"BUS002", domain.ClassStandard, 75.0},
		{"BUS003", domain.ClassSleeper, 75.0}, // 50 * 1.5
		{"BUS003", domain.ClassPremium, 65.0},
		{"BUS005", domain.ClassStandard, 50.0},
	}
	for _, tc := range cases {
		if got := p.Fare(tc.bus, tc.class); got != tc.want {
			t.Fatalf("Fare(%s, %s) = %v, want %v", tc.bus, tc.class, got, tc.want)
		}
		// same inputs, same output, every time
		if again := p.Fare(tc.bus, tc.class); again != tc.want {
			t.Fatalf("Fare(%s, %s) not deterministic: %v then %v", tc.bus, tc.class, tc.want, again)
		}
	}
}

func TestFareCaseInsensitiveBusCode(t *testing.T) {
	p := DefaultFarePolicy()
	if got := p.Fare("bus001", domain.ClassStandard); got != 75.0 {
		t.Fatalf("Fare(bus001, standard) = %v, want 75.0", got)
	}
}
