package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// FailStaleOrdersCommandHandler fails orders that have sat pending past the
// acceptance window. The sweep acts on behalf of each order's restaurant,
// so it uses the same pending-to-failed transition a restaurant would.
//
// Each stale order is written with the optimistic status condition. An order
// that a restaurant accepts (or a customer cancels) between the sweep's read
// and its write is simply skipped.
type FailStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
	publisher  ports.OrderEventPublisher
}

// NewFailStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewFailStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
	publisher ports.OrderEventPublisher,
) FailStaleOrdersCommandHandler {
	return FailStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
	}
}

// Handle processes the sweep and returns how many orders were failed.
func (h *FailStaleOrdersCommandHandler) Handle(ctx context.Context, cmd FailStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-cmd.MaxPendingAge())

	stale, err := uow.OrderRepository().GetPendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	failed := make([]*order.Order, 0, len(stale))

	for _, staleOrder := range stale {
		previous := staleOrder.Status()

		actor := kernel.ActorRestaurant(staleOrder.RestaurantID())
		if err = staleOrder.Transition(actor, order.StatusFailed, h.policy); err != nil {
			return 0, err
		}

		err = uow.OrderRepository().UpdateStatus(ctx, staleOrder, previous)
		if errors.Is(err, ports.ErrStatusChanged) {
			// Someone moved the order first; leave it alone.
			continue
		}
		if err != nil {
			return 0, err
		}

		failed = append(failed, staleOrder)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, failedOrder := range failed {
		_ = h.publisher.PublishOrderChanged(ctx, failedOrder)
	}

	return len(failed), nil
}
