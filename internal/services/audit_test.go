package services

import (
	"testing"

	"busticket/internal/domain"
	"busticket/internal/domain/models"
)

type panicSink struct{}

func (panicSink) Record(models.AuditRecord) { panic("sink exploded") }

func TestMultiSinkContainsPanics(t *testing.T) {
	var got []models.AuditRecord
	sinks := MultiSink{
		panicSink{},
		sinkFunc(func(rec models.AuditRecord) { got = append(got, rec) }),
	}

	rec := models.AuditRecord{Action: domain.AuditCreate, TicketID: 1}
	sinks.Record(rec) // must not panic

	if len(got) != 1 {
		t.Fatalf("sink after the panicking one received %d records, want 1", len(got))
	}
	if got[0].Action != domain.AuditCreate {
		t.Fatalf("record mangled: %+v", got[0])
	}
}

func TestLogSinkNeverFails(t *testing.T) {
	LogSink{}.Record(models.AuditRecord{
		Action:   domain.AuditCancel,
		TicketID: 7,
		Before:   map[string]string{"name": "Alice"},
		After:    map[string]string{"status": "cancelled"},
	})
}
