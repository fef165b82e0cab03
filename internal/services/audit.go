package services

import (
	"encoding/json"
	"fmt"

	"busticket/internal/domain/models"
	"busticket/internal/utils"
)

// AuditSink receives ticket mutation records. Sinks are write-only and
// fire-and-forget: they log their own failures and never return an
// error to the booking path.
type AuditSink interface {
	Record(rec models.AuditRecord)
}

// LogSink writes audit records to the process log.
type LogSink struct{}

func (LogSink) Record(rec models.AuditRecord) {
	payload, err := json.Marshal(rec)
	if err != nil {
		utils.LogEvent("", "audit", "marshal_failed", err.Error())
		return
	}
	utils.LogEvent("", "audit", rec.Action, fmt.Sprintf("ticket_id=%d %s", rec.TicketID, payload))
}

// MultiSink fans one record out to several sinks. A panicking sink is
// contained so the remaining sinks still receive the record.
type MultiSink []AuditSink

func (m MultiSink) Record(rec models.AuditRecord) {
	for _, sink := range m {
		func() {
			defer func() {
				if r := recover(); r != nil {
					utils.LogEvent("", "audit", "sink_panic", fmt.Sprintf("%v", r))
				}
			}()
			sink.Record(rec)
		}()
	}
}
