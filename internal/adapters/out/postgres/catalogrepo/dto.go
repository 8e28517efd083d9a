// Package catalogrepo provides data transfer objects and mapping functions
// for the catalog read models. The ordering core only reads restaurants and
// menu items; their lifecycle is managed elsewhere.
package catalogrepo

import (
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure of a restaurant snapshot.
// Latitude and longitude default to the negative sentinel for restaurants
// that have not set their position yet.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Latitude  float64   `gorm:"type:double precision;default:-1"`
	Longitude float64   `gorm:"type:double precision;default:-1"`
	Open      bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure of a menu item snapshot.
type MenuItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID       uuid.UUID `gorm:"type:uuid;index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Price            int       `gorm:"type:int;not null"`
	ExpectedDuration int       `gorm:"type:int;not null"`
	Active           bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location := kernel.UnknownGeoPoint()
	if dto.Latitude >= 0 && dto.Longitude >= 0 {
		if location, err = kernel.NewGeoPoint(dto.Latitude, dto.Longitude); err != nil {
			return nil, err
		}
	}

	return catalog.NewRestaurant(id, dto.Name, location, dto.Open)
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewMenuItem(
		id,
		restaurantID,
		categoryID,
		dto.Name,
		dto.Price,
		dto.ExpectedDuration,
		dto.Active,
	)
}
