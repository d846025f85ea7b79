package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/support-desk/ticket-dashboard/internal/domain"
)

// AuditLogRepository persists the append-only audit trail. The interface
// deliberately exposes no update or delete: entries are immutable once
// written.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]domain.AuditLog, error)
	ListAll(ctx context.Context) ([]domain.AuditLog, error)
}

type auditLogRepository struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepository instantiates repository.
func NewAuditLogRepository(pool *pgxpool.Pool) AuditLogRepository {
	return &auditLogRepository{pool: pool}
}

func (r *auditLogRepository) Append(ctx context.Context, entry *domain.AuditLog) error {
	const query = `
        INSERT INTO audit_logs (ticket_id, action, user_id, details)
        VALUES ($1, $2, $3, $4)
        RETURNING id, timestamp`
	return r.pool.QueryRow(ctx, query,
		entry.TicketID,
		entry.Action,
		entry.UserID,
		entry.Details,
	).Scan(&entry.ID, &entry.Timestamp)
}

func (r *auditLogRepository) List(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, ticket_id, action, user_id, timestamp, details
        FROM audit_logs ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuditLogs(rows)
}

// ListAll returns the entire collection, used for snapshot reloads.
func (r *auditLogRepository) ListAll(ctx context.Context) ([]domain.AuditLog, error) {
	const query = `
        SELECT id, ticket_id, action, user_id, timestamp, details
        FROM audit_logs ORDER BY timestamp DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuditLogs(rows)
}

func scanAuditLogs(rows pgx.Rows) ([]domain.AuditLog, error) {
	var result []domain.AuditLog
	for rows.Next() {
		var entry domain.AuditLog
		if err := rows.Scan(
			&entry.ID,
			&entry.TicketID,
			&entry.Action,
			&entry.UserID,
			&entry.Timestamp,
			&entry.Details,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
