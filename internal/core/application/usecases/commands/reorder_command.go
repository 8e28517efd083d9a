package commands

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrReorderCommandIsNotConstructed = errors.New(
		"ReorderCommand must be created via NewReorderCommand constructor",
	)

	// ErrRestaurantClosed is returned when the source order's restaurant is
	// not currently taking orders.
	ErrRestaurantClosed = errors.New("restaurant is closed")

	// ErrNothingAvailable is returned when every line of the source order
	// references a menu item that has since been deactivated.
	ErrNothingAvailable = errors.New("none of the original items are available")
)

// UnavailableItem identifies a source-order line whose menu item can no
// longer be ordered.
type UnavailableItem struct {
	MenuItemID kernel.UUID
	Name       string
}

// PartialUnavailableError is returned by a strict reorder (allowPartial
// false) when some of the original items are no longer available. It carries
// the unavailable items so the caller can show exactly what was dropped.
// Nothing is created when this error is returned.
type PartialUnavailableError struct {
	Items []UnavailableItem
}

func (e *PartialUnavailableError) Error() string {
	names := make([]string, len(e.Items))
	for i, item := range e.Items {
		names[i] = item.Name
	}
	return fmt.Sprintf("some items are no longer available: [%s]", strings.Join(names, ", "))
}

// ReorderCommand represents a request to re-create a past order under the
// current menu: the acting customer, the source order, fresh coordinates,
// and whether a partial re-creation is acceptable.
type ReorderCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	sourceOrderID kernel.UUID
	location      kernel.GeoPoint
	allowPartial  bool

	guard guard.ConstructorGuard
}

// NewReorderCommand creates a command to replay a past order against the
// current menu. allowPartial selects the partial-acceptance policy: when
// false, any unavailable item fails the whole reorder.
func NewReorderCommand(
	actor kernel.Actor,
	sourceOrderID kernel.UUID,
	location kernel.GeoPoint,
	allowPartial bool,
) (ReorderCommand, error) {
	cmd := ReorderCommand{
		allowPartial: allowPartial,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setSourceOrderID(sourceOrderID),
		cmd.setLocation(location),
	); err != nil {
		return ReorderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderCommand) Validate() error {
	return c.guard.Validate(ErrReorderCommandIsNotConstructed)
}

// Actor returns the party requesting the reorder.
func (c ReorderCommand) Actor() kernel.Actor {
	return c.actor
}

// SourceOrderID returns the identifier of the order being replayed.
func (c ReorderCommand) SourceOrderID() kernel.UUID {
	return c.sourceOrderID
}

// Location returns the customer's fresh coordinates, possibly the unknown sentinel.
func (c ReorderCommand) Location() kernel.GeoPoint {
	return c.location
}

// AllowPartial reports whether a partial re-creation is acceptable.
func (c ReorderCommand) AllowPartial() bool {
	return c.allowPartial
}

func (c *ReorderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ReorderCommand) setSourceOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sourceOrderID = id
	return nil
}

func (c *ReorderCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
