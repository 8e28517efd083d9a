package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies role-scoped status transitions to
// orders, enforcing ownership, the injected transition policy, and
// terminal-state immutability.
//
// The status write is conditioned on the status the handler read still
// holding at write time. When two requests race on the same order, exactly
// one succeeds; the loser re-reads and fails with the same invalid-transition
// error it would have received had it read the winner's state in the first
// place.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     order.TransitionPolicy
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions
// governed by the given policy.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy order.TransitionPolicy,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
	}
}

// Handle processes the transition command and returns the updated order.
//
// Ownership mismatches are reported as not-found: callers can never
// distinguish "exists but not yours" from "does not exist".
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.OwnedBy(cmd.Actor()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	previous := aggregate.Status()
	if err = aggregate.Transition(cmd.Actor(), cmd.Requested(), h.policy); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, previous); err != nil {
		if errors.Is(err, ports.ErrStatusChanged) {
			return nil, h.lostRace(ctx, orderRepo, cmd)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.PublishOrderChanged(ctx, aggregate)

	return aggregate, nil
}

// lostRace converts a failed conditional write into the invalid-transition
// error the caller would have received had it read the winner's state.
func (h *UpdateOrderStatusCommandHandler) lostRace(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	cmd UpdateOrderStatusCommand,
) error {
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	return &order.InvalidTransitionError{
		Current:   current.Status(),
		Requested: cmd.Requested(),
		Allowed:   h.policy.AllowedNext(cmd.Actor().Role(), current.Status()),
	}
}
