package domain

// TicketID is the global monotonic ticket identity.
type TicketID int64

// TicketStatus is the ticket lifecycle state. Confirmed -> Cancelled is
// the only transition; cancelled is terminal.
type TicketStatus string

const (
	StatusConfirmed TicketStatus = "confirmed"
	StatusCancelled TicketStatus = "cancelled"
)

// SeatClass is derived from seat position and frozen onto the ticket.
type SeatClass string

const (
	ClassPremium  SeatClass = "premium"
	ClassStandard SeatClass = "standard"
	ClassSleeper  SeatClass = "sleeper"
)

// Audit actions recorded against tickets.
const (
	AuditCreate = "CREATE_TICKET"
	AuditUpdate = "UPDATE_TICKET"
	AuditCancel = "CANCEL_TICKET"
)
