// Package rating implements the numeric score a customer may attach to a
// completed order. A rating binds to exactly one order, is created once,
// and is never updated or deleted.
package rating

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const (
	// ScoreMin is the lowest permitted rating score.
	ScoreMin = 1
	// ScoreMax is the highest permitted rating score.
	ScoreMax = 5
)

var (
	// ErrRatingIsNotConstructed is returned when a Rating was not created via NewRating.
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

	// ErrAlreadyRated classifies the uniqueness violation: at most one rating
	// may ever exist per order.
	ErrAlreadyRated = errors.New("order has already been rated")

	// ErrOrderNotCompleted is returned when rating an order outside the
	// completed subset of its lifecycle.
	ErrOrderNotCompleted = errors.New("only completed orders can be rated")
)

// Rating is a numeric score (1-5) a customer attaches to a completed order.
// The one-to-one link to the order is enforced both here and by a unique
// constraint in storage.
type Rating struct {
	id      kernel.UUID
	orderID kernel.UUID
	score   int

	isConstructed bool
}

// NewRating creates a validated Rating for the given order.
// Score must be an integer in [ScoreMin, ScoreMax].
func NewRating(id kernel.UUID, orderID kernel.UUID, score int) (*Rating, error) {
	rating := &Rating{
		isConstructed: true,
	}

	if err := errors.Join(
		rating.setID(id),
		rating.setOrderID(orderID),
		rating.setScore(score),
	); err != nil {
		return nil, err
	}

	return rating, nil
}

// Validate ensures the Rating was created through NewRating.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the rated order's identifier.
func (r *Rating) OrderID() kernel.UUID {
	return r.orderID
}

// Score returns the numeric score in [ScoreMin, ScoreMax].
func (r *Rating) Score() int {
	return r.score
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < ScoreMin || score > ScoreMax {
		return errs.NewValueIsOutOfRangeError("score", score, ScoreMin, ScoreMax)
	}
	r.score = score
	return nil
}
