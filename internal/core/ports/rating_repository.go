package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for order ratings.
type RatingRepository interface {
	// Add persists a new rating. The one-rating-per-order invariant is
	// enforced by a unique constraint on the order reference; a violation
	// surfaces as rating.ErrAlreadyRated so concurrent duplicates are
	// rejected even when the prior existence check passed.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// ExistsForOrder reports whether a rating already exists for the order.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
