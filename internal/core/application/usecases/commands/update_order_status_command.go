package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// status on behalf of an actor. The transition itself is validated by the
// order state machine; the command only validates the inputs.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	orderID   kernel.UUID
	requested order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
// Role-less actors are rejected here, before any repository or transition
// table is consulted.
func NewUpdateOrderStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	requested order.Status,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setRequested(requested),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the party requesting the transition.
func (c UpdateOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the status the actor wants the order moved to.
func (c UpdateOrderStatusCommand) Requested() order.Status {
	return c.requested
}

func (c *UpdateOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsCustomer() && !actor.IsRestaurant() {
		return order.ErrActorHasNoRole
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setRequested(requested order.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	c.requested = requested
	return nil
}
