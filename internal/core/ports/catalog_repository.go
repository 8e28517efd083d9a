package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
)

// MenuItemRepository provides read-only access to menu item snapshots.
// The ordering core never writes menu data.
type MenuItemRepository interface {
	// GetByIDs retrieves the menu items matching the given ids, active or
	// not. Missing ids are simply absent from the result; eligibility
	// decisions belong to the caller.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.MenuItem, error)
}

// RestaurantRepository provides read-only access to restaurant snapshots.
type RestaurantRepository interface {
	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)
}
