package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventPublisher announces order lifecycle changes to interested
// consumers (notifications, analytics). Publishing is strictly best-effort:
// implementations log failures and never propagate them, so a broker outage
// cannot fail an order operation.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event for the order's current state.
	// Called after the owning transaction has committed.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
