package catalog

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created via NewMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is the read model of one dish on a restaurant's menu. The ordering
// core never manages menu items; it only reads them as a snapshot when an
// order is created, and assumes nothing about their stability over time.
// Prices and durations are copied onto the order at that instant.
type MenuItem struct {
	id               kernel.UUID
	restaurantID     kernel.UUID
	categoryID       kernel.UUID
	name             string
	price            int
	expectedDuration int
	active           bool

	isConstructed bool
}

// NewMenuItem creates a validated menu item snapshot.
// Price is in minor currency units; expectedDuration is in seconds.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	categoryID kernel.UUID,
	name string,
	price int,
	expectedDuration int,
	active bool,
) (*MenuItem, error) {
	item := &MenuItem{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setCategoryID(categoryID),
		item.setName(name),
		item.setPrice(price),
		item.setExpectedDuration(expectedDuration),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the MenuItem was created through NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// CategoryID returns the menu category the item belongs to.
func (m *MenuItem) CategoryID() kernel.UUID {
	return m.categoryID
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current price in minor currency units.
func (m *MenuItem) Price() int {
	return m.price
}

// ExpectedDuration returns the preparation time in seconds.
func (m *MenuItem) ExpectedDuration() int {
	return m.expectedDuration
}

// IsActive reports whether the item is currently orderable.
func (m *MenuItem) IsActive() bool {
	return m.active
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.categoryID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setExpectedDuration(seconds int) error {
	if seconds < 0 {
		return errs.NewValueIsInvalidErrorWithCause("expected duration",
			fmt.Errorf("%d is negative", seconds))
	}
	m.expectedDuration = seconds
	return nil
}
