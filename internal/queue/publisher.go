package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"busticket/internal/domain/models"
)

const ticketQueue = "ticket.events"

// Publisher is an audit sink backed by RabbitMQ. A connection is
// dialed per publish; at booking-desk volumes that is simpler than
// managing channel reconnects.
type Publisher struct {
	URL string
}

// Record implements services.AuditSink.
func (p Publisher) Record(rec models.AuditRecord) {
	event := TicketEvent{
		Action:    rec.Action,
		TicketID:  int64(rec.TicketID),
		OldValues: rec.Before,
		NewValues: rec.After,
		Actor:     rec.Actor,
		Timestamp: rec.Timestamp.UTC().Format(time.RFC3339),
	}
	if err := p.publish(context.Background(), event); err != nil {
		log.Printf("rabbitmq: publish ticket event failed: %v", err)
	}
}

func (p Publisher) publish(ctx context.Context, event TicketEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(ticketQueue, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, "", ticketQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}
