package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// CreateOrderCommand represents a request to create a new order: the acting
// party, the target restaurant, the requested line items, and the customer's
// coordinates for travel-time estimation.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, restaurantID, lines, location)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	restaurantID kernel.UUID
	lines        []services.LineRequest
	location     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the actor and restaurant id, requires at least one line with
// quantity >= 1, and accepts the unknown-location sentinel for customers
// who did not share their position.
func NewCreateOrderCommand(
	actor kernel.Actor,
	restaurantID kernel.UUID,
	lines []services.LineRequest,
	location kernel.GeoPoint,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setLocation(location),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the party placing the order.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// RestaurantID returns the target restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the requested line items.
func (c CreateOrderCommand) Lines() []services.LineRequest {
	return append([]services.LineRequest(nil), c.lines...)
}

// Location returns the customer's coordinates, possibly the unknown sentinel.
func (c CreateOrderCommand) Location() kernel.GeoPoint {
	return c.location
}

// MenuItemIDs returns the distinct menu item ids referenced by the lines.
func (c CreateOrderCommand) MenuItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.MenuItemID]; ok {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		ids = append(ids, line.MenuItemID)
	}
	return ids
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.LineRequest) error {
	if len(lines) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = append([]services.LineRequest(nil), lines...)
	return nil
}

func (c *CreateOrderCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
