package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AuditEntry is one audit row to be written.
type AuditEntry struct {
	ActorID      uuid.UUID
	Action       string
	ResourceType string
	ResourceID   string
	Changes      JSONB
	IPAddress    string
}

const sqlInsertAuditLog = `
INSERT INTO audit_logs (actor_id, action, resource_type, resource_id, changes, ip_address)
VALUES ($1, $2, $3, $4, $5, $6)
`

func insertAuditLog(ctx context.Context, ex sqlx.ExecerContext, entry AuditEntry) error {
	var actor *uuid.UUID
	if entry.ActorID != uuid.Nil {
		actor = &entry.ActorID
	}
	var ip *string
	if entry.IPAddress != "" {
		ip = &entry.IPAddress
	}
	changes := entry.Changes
	if changes == nil {
		changes = JSONB{}
	}
	_, err := ex.ExecContext(ctx, sqlInsertAuditLog, actor, entry.Action, entry.ResourceType, entry.ResourceID, changes, ip)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

// CreateAuditLog records a mutation outside of any other transaction.
func (s *Store) CreateAuditLog(ctx context.Context, entry AuditEntry) error {
	return insertAuditLog(ctx, s.db, entry)
}

// ListAuditLogsParams filters the audit log listing.
type ListAuditLogsParams struct {
	ResourceType string
	ResourceID   string
	ActorID      *uuid.UUID
	Limit        int
	Offset       int
}

const sqlSelectAuditLogs = `
SELECT id, actor_id, action, resource_type, resource_id, changes, ip_address, created_at
FROM audit_logs`

// ListAuditLogs returns one page of audit rows, newest first, and the total
// number matching.
func (s *Store) ListAuditLogs(ctx context.Context, params ListAuditLogsParams) ([]AuditLog, int, error) {
	var f filter
	if params.ResourceType != "" {
		f.add("resource_type = ?", params.ResourceType)
	}
	if params.ResourceID != "" {
		f.add("resource_id = ?", params.ResourceID)
	}
	if params.ActorID != nil {
		f.add("actor_id = ?", *params.ActorID)
	}

	var total int
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM audit_logs"+f.where(), f.args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	pageClause, args := f.page(params.Limit, params.Offset)
	logs := []AuditLog{}
	err := s.db.SelectContext(ctx, &logs, sqlSelectAuditLogs+f.where()+" ORDER BY created_at DESC, id"+pageClause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, total, nil
}
