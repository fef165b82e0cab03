// Package queue publishes ticket lifecycle events to RabbitMQ.
// Publishing is fire-and-forget: errors are logged and swallowed so a
// broker outage never fails a booking.
package queue

// TicketEvent is the payload published for every ticket mutation. It
// carries enough for downstream consumers to notify or aggregate
// without querying the service.
type TicketEvent struct {
	Action    string            `json:"action"`
	TicketID  int64             `json:"ticket_id"`
	OldValues map[string]string `json:"old_values,omitempty"`
	NewValues map[string]string `json:"new_values,omitempty"`
	Actor     string            `json:"actor"`
	Timestamp string            `json:"timestamp"`
}
