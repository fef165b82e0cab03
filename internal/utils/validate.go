package utils

import (
	"regexp"
	"strings"
)

var (
	nameRe = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)
	busRe  = regexp.MustCompile(`^BUS\d{3}$`)
	seatRe = regexp.MustCompile(`^S\d{2}$`)
)

// ValidPassengerName accepts letters, spaces, hyphens, apostrophes and
// periods, at least two characters after trimming.
func ValidPassengerName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return false
	}
	return nameRe.MatchString(trimmed)
}

// ValidBusCode accepts the canonical BUS### form.
func ValidBusCode(code string) bool {
	return busRe.MatchString(strings.ToUpper(code))
}

// ValidSeatCode accepts the canonical S## form.
func ValidSeatCode(code string) bool {
	return seatRe.MatchString(strings.ToUpper(code))
}
