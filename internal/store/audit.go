package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Action identifies what a console user did.
type Action string

const (
	ActionWebhookCreate Action = "webhook_create"
	ActionWebhookUpdate Action = "webhook_update"
	ActionWebhookDelete Action = "webhook_delete"
	ActionWebhookPing   Action = "webhook_ping"
	ActionRuleCreate    Action = "rule_create"
	ActionRuleUpdate    Action = "rule_update"
	ActionRuleDelete    Action = "rule_delete"
	ActionRuleToggle    Action = "rule_toggle"
	ActionSettingsSave  Action = "settings_save"
	ActionViewCreate    Action = "view_create"
	ActionViewDelete    Action = "view_delete"
)

// AuditEntry is one recorded console action.
type AuditEntry struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor,omitempty"`
	Action    Action    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entityId,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecordAudit writes one audit entry. The request's IP and user agent
// travel in the context (see WithRequestMetadata). Audit failures are
// logged, never surfaced — a missing trail must not block the action
// that succeeded.
func (s *Store) RecordAudit(ctx context.Context, action Action, entity, entityID, detail string) {
	_, err := s.db.Exec(ctx,
		`INSERT INTO console_audit (id, actor, action, entity, entity_id, detail, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.NewString(),
		ActorFromContext(ctx),
		string(action),
		entity,
		entityID,
		detail,
		IPFromContext(ctx),
		UserAgentFromContext(ctx),
	)
	if err != nil {
		slog.Error("audit write failed",
			"action", action,
			"entity", entity,
			"entity_id", entityID,
			"error", err,
		)
	}
}

// ListAudit returns up to limit recent entries, newest first.
func (s *Store) ListAudit(ctx context.Context, limit int) ([]AuditEntry, error) {
	if limit <= 0 || limit > 1000 {
		limit = 200
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, actor, action, entity, entity_id, detail, ip_address, user_agent, created_at
		 FROM console_audit
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var action string
		if err := rows.Scan(&e.ID, &e.Actor, &action, &e.Entity, &e.EntityID,
			&e.Detail, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Action = Action(action)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	return entries, nil
}
