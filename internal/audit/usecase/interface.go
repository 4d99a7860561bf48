// Package usecase implements the recording of durable recognition audit
// events.
package usecase

import (
	"context"
	"time"

	auditDomain "github.com/pointward/gateway/internal/audit/domain"
)

// EventRepository defines the interface for Event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *auditDomain.Event) error
	List(ctx context.Context, offset, limit int) ([]*auditDomain.Event, error)
	CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Recorder defines the interface for appending and reading audit events.
//
// Record never fails the calling flow: the backend call a flow just made is
// its commit point, and losing one audit row is preferable to reporting a
// completed operation as failed. Persistence errors are logged instead.
type Recorder interface {
	Record(ctx context.Context, eventType auditDomain.EventType)
	List(ctx context.Context, offset, limit int) ([]*auditDomain.Event, error)
	DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error)
}
