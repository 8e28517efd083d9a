package catalog

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant was not created via NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the read model of a restaurant as the ordering core sees it:
// an identity, a location for travel-time estimation, and an open/closed flag
// consulted by reorder. Profile management lives outside this core.
type Restaurant struct {
	id       kernel.UUID
	name     string
	location kernel.GeoPoint
	open     bool

	isConstructed bool
}

// NewRestaurant creates a validated restaurant snapshot. The location may be
// the unknown sentinel when the restaurant has not completed its profile.
func NewRestaurant(id kernel.UUID, name string, location kernel.GeoPoint, open bool) (*Restaurant, error) {
	restaurant := &Restaurant{
		open:          open,
		isConstructed: true,
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setLocation(location),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Location returns the restaurant's coordinates, possibly the unknown sentinel.
func (r *Restaurant) Location() kernel.GeoPoint {
	return r.location
}

// IsOpen reports whether the restaurant currently takes orders.
func (r *Restaurant) IsOpen() bool {
	return r.open
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}
