package ports

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// ErrStatusChanged is returned by OrderRepository.UpdateStatus when the
// conditional write found the row already moved past the status the caller
// read. Exactly one of two racing transitions observes this; the loser must
// re-read and fail as if it had seen the post-transition state.
var ErrStatusChanged = errors.New("order status changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are stored as a single atomic unit: either all rows
// exist or none do.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its lines in their original order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the aggregate's status conditioned on the
	// previously read status still holding at write time (optimistic check).
	// Returns ErrStatusChanged when the condition fails, and no row changes.
	// No field other than status is written.
	UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error

	// GetPendingOlderThan retrieves orders still pending whose start
	// timestamp is before the cutoff. Used by the stale-order job.
	GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
