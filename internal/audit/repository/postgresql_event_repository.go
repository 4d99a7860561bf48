// Package repository implements data persistence for recognition audit
// events. Repositories support both PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"time"

	auditDomain "github.com/pointward/gateway/internal/audit/domain"
	apperrors "github.com/pointward/gateway/internal/errors"
)

// PostgreSQLEventRepository implements Event persistence for PostgreSQL databases.
type PostgreSQLEventRepository struct {
	db *sql.DB
}

// Create inserts a new audit event into the PostgreSQL database.
func (p *PostgreSQLEventRepository) Create(ctx context.Context, event *auditDomain.Event) error {
	query := `INSERT INTO recognition_events (id, type, created_at)
			  VALUES ($1, $2, $3)`

	_, err := p.db.ExecContext(
		ctx,
		query,
		event.ID,
		event.Type,
		event.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create recognition event")
	}
	return nil
}

// List retrieves audit events ordered by created_at descending with pagination.
func (p *PostgreSQLEventRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.Event, error) {
	query := `SELECT id, type, created_at
			  FROM recognition_events
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := p.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list recognition events")
	}
	defer func() {
		_ = rows.Close()
	}()

	events := []*auditDomain.Event{}
	for rows.Next() {
		var event auditDomain.Event
		if err := rows.Scan(&event.ID, &event.Type, &event.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan recognition event")
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate recognition events")
	}

	return events, nil
}

// CountOlderThan counts audit events created before the cutoff timestamp.
func (p *PostgreSQLEventRepository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM recognition_events WHERE created_at < $1`

	var count int64
	if err := p.db.QueryRowContext(ctx, query, cutoff).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count old recognition events")
	}
	return count, nil
}

// DeleteOlderThan removes audit events created before the cutoff timestamp and
// returns the number of deleted rows.
func (p *PostgreSQLEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM recognition_events WHERE created_at < $1`

	result, err := p.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete old recognition events")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read deleted rows count")
	}
	return count, nil
}

// NewPostgreSQLEventRepository creates a new PostgreSQL Event repository instance.
func NewPostgreSQLEventRepository(db *sql.DB) *PostgreSQLEventRepository {
	return &PostgreSQLEventRepository{db: db}
}
