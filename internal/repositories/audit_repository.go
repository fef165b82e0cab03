package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	intconfig "busticket/internal/config"
	"busticket/internal/domain/models"
	"busticket/internal/utils"
)

// AuditRepository writes ticket mutation records to the audit_log
// table and lists recent entries for the admin endpoint. As an audit
// sink it is fire-and-forget: Record logs failures instead of
// propagating them.
type AuditRepository struct {
	DB *sql.DB
}

func (r AuditRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AuditRepository) EnsureSchema() error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS audit_log (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			action VARCHAR(32) NOT NULL,
			ticket_id BIGINT NOT NULL,
			old_values TEXT,
			new_values TEXT,
			actor VARCHAR(64) NOT NULL DEFAULT 'system',
			created_at DATETIME NOT NULL,
			INDEX idx_audit_ticket (ticket_id)
		)`)
	return err
}

// Record implements services.AuditSink.
func (r AuditRepository) Record(rec models.AuditRecord) {
	db := r.db()
	if db == nil {
		return
	}
	before, _ := json.Marshal(rec.Before)
	after, _ := json.Marshal(rec.After)
	_, err := db.Exec(`
		INSERT INTO audit_log (action, ticket_id, old_values, new_values, actor, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Action, int64(rec.TicketID), string(before), string(after), rec.Actor, rec.Timestamp,
	)
	if err != nil {
		utils.LogEvent("", "audit", "db_record_failed", err.Error())
	}
}

// AuditEntry is one row of the audit trail as served to admins.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	TicketID  int64     `json:"ticket_id"`
	OldValues string    `json:"old_values"`
	NewValues string    `json:"new_values"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// Recent returns the newest entries, capped at limit.
func (r AuditRepository) Recent(limit int) ([]AuditEntry, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("db not available")
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	rows, err := db.Query(`
		SELECT id, action, ticket_id, COALESCE(old_values,''), COALESCE(new_values,''), actor, created_at
		FROM audit_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []AuditEntry{}
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.TicketID, &e.OldValues, &e.NewValues, &e.Actor, &e.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
