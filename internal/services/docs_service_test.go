package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	loader := func(id domain.TicketID) (models.Ticket, error) {
		return models.Ticket{
			ID:          id,
			Name:        "Alice Smith",
			Bus:         "BUS001",
			Seat:        "S05",
			SeatClass:   domain.ClassPremium,
			Fare:        97.5,
			Reference:   "BKG12AB34CD",
			Status:      domain.StatusConfirmed,
			BookingTime: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket(1)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if filename != "ETICKET_1_Alice_Smith_S05.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceMissingTicket(t *testing.T) {
	svc := DocsService{Loader: func(domain.TicketID) (models.Ticket, error) {
		return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
	}}

	if _, _, err := svc.GenerateETicket(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := map[string]string{
		"Alice Smith_S05": "Alice_Smith_S05",
		"  O'Connor  ":    "O_Connor",
		"__weird__":       "weird",
	}
	for in, want := range cases {
		if got := safeFilenamePart(in); got != want {
			t.Fatalf("safeFilenamePart(%q) = %q, want %q", in, got, want)
		}
	}
	if strings.ContainsAny(safeFilenamePart(`a<b>"c'`), `<>"'`) {
		t.Fatalf("unsafe characters survived sanitization")
	}
}
