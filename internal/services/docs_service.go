package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
	"busticket/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable e-ticket for a booking.
type DocsService struct {
	Booking   *BookingService
	RequestID string
	// Loader overrides ticket lookup in tests.
	Loader func(domain.TicketID) (models.Ticket, error)
}

func (s DocsService) GenerateETicket(id domain.TicketID) ([]byte, string, error) {
	ticket, err := s.loadTicket(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("ticket_id=%d", id))
	return buildETicketPDF(ticket)
}

func (s DocsService) loadTicket(id domain.TicketID) (models.Ticket, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	if s.Booking == nil {
		return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
	}
	return s.Booking.GetTicket(id)
}

func buildETicketPDF(t models.Ticket) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(t.Name, "-")),
		fmt.Sprintf("Bus          : %s", safe(t.Bus, "-")),
		fmt.Sprintf("Seat         : %s (%s)", safe(t.Seat, "-"), t.SeatClass),
		fmt.Sprintf("Fare         : %s", utils.FormatMoney(t.Fare)),
		fmt.Sprintf("Booked at    : %s", utils.FormatDateTime(t.BookingTime)),
		fmt.Sprintf("Status       : %s", t.Status),
		fmt.Sprintf("Reference    : %s", safe(t.Reference, "-")),
		fmt.Sprintf("Ticket no.   : TCK-%d", t.ID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger on the stated seat. Please present it at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", t.ID, safeFilenamePart(t.Name+"_"+t.Seat))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	s = unsafeFilenameRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
