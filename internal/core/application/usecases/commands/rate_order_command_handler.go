package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rating"
	"foodorder/internal/pkg/errs"
)

// RateOrderCommandHandler attaches a one-time score to a completed order.
//
// The uniqueness invariant is enforced twice: an existence check here gives
// the common case a clean error, and the storage unique constraint catches
// two concurrent first ratings, of which exactly one commits.
type RateOrderCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewRateOrderCommandHandler creates a handler for rating attachment.
func NewRateOrderCommandHandler(uowFactory RatingUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command and returns the created rating.
// An order not owned by the acting customer is reported as not found.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) (*rating.Rating, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsCustomer() {
		return nil, ErrCustomerRoleRequired
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ratedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !ratedOrder.OwnedBy(cmd.Actor()) {
		// The order exists but is not this customer's; do not reveal it.
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	if !ratedOrder.Status().IsCompleted() {
		return nil, rating.ErrOrderNotCompleted
	}

	exists, err := uow.RatingRepository().ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, rating.ErrAlreadyRated
	}

	newRating, err := rating.NewRating(kernel.NewUUID(), cmd.OrderID(), cmd.Score())
	if err != nil {
		return nil, err
	}

	if err = uow.RatingRepository().Add(ctx, newRating); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newRating, nil
}
