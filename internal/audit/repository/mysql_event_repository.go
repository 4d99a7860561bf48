package repository

import (
	"context"
	"database/sql"
	"time"

	auditDomain "github.com/pointward/gateway/internal/audit/domain"
	apperrors "github.com/pointward/gateway/internal/errors"
)

// MySQLEventRepository implements Event persistence for MySQL databases.
type MySQLEventRepository struct {
	db *sql.DB
}

// Create inserts a new audit event into the MySQL database.
func (m *MySQLEventRepository) Create(ctx context.Context, event *auditDomain.Event) error {
	query := `INSERT INTO recognition_events (id, type, created_at)
			  VALUES (?, ?, ?)`

	id, err := event.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal event id")
	}

	_, err = m.db.ExecContext(
		ctx,
		query,
		id,
		event.Type,
		event.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create recognition event")
	}

	return nil
}

// List retrieves audit events ordered by created_at descending with pagination.
func (m *MySQLEventRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.Event, error) {
	query := `SELECT id, type, created_at
			  FROM recognition_events
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list recognition events")
	}
	defer func() {
		_ = rows.Close()
	}()

	events := []*auditDomain.Event{}
	for rows.Next() {
		var event auditDomain.Event
		var id []byte
		if err := rows.Scan(&id, &event.Type, &event.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan recognition event")
		}
		if err := event.ID.UnmarshalBinary(id); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal event id")
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate recognition events")
	}

	return events, nil
}

// CountOlderThan counts audit events created before the cutoff timestamp.
func (m *MySQLEventRepository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM recognition_events WHERE created_at < ?`

	var count int64
	if err := m.db.QueryRowContext(ctx, query, cutoff).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count old recognition events")
	}
	return count, nil
}

// DeleteOlderThan removes audit events created before the cutoff timestamp and
// returns the number of deleted rows.
func (m *MySQLEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM recognition_events WHERE created_at < ?`

	result, err := m.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete old recognition events")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read deleted rows count")
	}
	return count, nil
}

// NewMySQLEventRepository creates a new MySQL Event repository instance.
func NewMySQLEventRepository(db *sql.DB) *MySQLEventRepository {
	return &MySQLEventRepository{db: db}
}
