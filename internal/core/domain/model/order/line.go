package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// Line represents one menu item within an order: the item reference, the
// quantity requested, an optional free-text note for the kitchen, and the
// unit price captured at order time.
//
// Line is an immutable value object owned exclusively by its Order and
// created atomically with it. The captured unit price is what freezes the
// order's total: later menu price changes never affect an existing order.
type Line struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	unitPrice  int
	quantity   int
	note       string

	guard guard.ConstructorGuard
}

// NewLine creates a Line with validation. The menu item id must be valid,
// the name non-empty, the unit price non-negative (minor currency units),
// and the quantity at least 1. The note may be empty.
func NewLine(menuItemID kernel.UUID, name string, unitPrice int, quantity int, note string) (Line, error) {
	line := Line{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setName(name),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the menu item name as captured at order time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the per-unit price in minor currency units,
// captured at order time.
func (l Line) UnitPrice() int {
	return l.unitPrice
}

// Quantity returns the number of units ordered.
func (l Line) Quantity() int {
	return l.quantity
}

// Note returns the free-text preparation note. May be empty.
func (l Line) Note() string {
	return l.note
}

// Subtotal returns unit price times quantity for this line.
func (l Line) Subtotal() int {
	return l.unitPrice * l.quantity
}

func (l *Line) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line name")
	}
	l.name = name
	return nil
}

func (l *Line) setUnitPrice(unitPrice int) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
