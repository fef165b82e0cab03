package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsRe = regexp.MustCompile(`\d+`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	quoteRe  = regexp.MustCompile(`[<>"']`)
)

// FormatSeatCode normalizes free-form seat input ("1", "s01", "seat 7")
// into the canonical S## form. Inputs whose number falls outside
// [1, maxSeats] are returned uppercased as-is so validation rejects them
// with the right message instead of silently clamping.
func FormatSeatCode(input string, maxSeats int) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if m := digitsRe.FindString(input); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n >= 1 && n <= maxSeats {
			return fmt.Sprintf("S%02d", n)
		}
	}
	return strings.ToUpper(input)
}

// FormatBusCode normalizes free-form bus input ("1", "bus 3") into the
// canonical BUS### form.
func FormatBusCode(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if m := digitsRe.FindString(input); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n >= 1 && n <= 999 {
			return fmt.Sprintf("BUS%03d", n)
		}
	}
	return strings.ToUpper(input)
}

// SanitizeInput strips HTML tags and quote characters from user input.
// The engine still validates the result; this only de-fangs payloads
// before they reach logs or responses.
func SanitizeInput(input string) string {
	clean := tagRe.ReplaceAllString(input, "")
	clean = quoteRe.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// SeatPosition parses the numeric position out of a canonical seat
// code. Returns 0 when the code is not in the S## form.
func SeatPosition(seat string) int {
	seat = strings.ToUpper(strings.TrimSpace(seat))
	if !ValidSeatCode(seat) {
		return 0
	}
	n, err := strconv.Atoi(seat[1:])
	if err != nil {
		return 0
	}
	return n
}

// SeatCode renders a 1-based position as the canonical S## identifier.
func SeatCode(position int) string {
	return fmt.Sprintf("S%02d", position)
}
