package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler reads a restaurant's order queue straight
// from the orders table.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order
// queue queries.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of summaries, ordered by
// start time ascending so the oldest waiting order comes first.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderSummaryColumns + `
		FROM orders
		WHERE restaurant_id = ?
	`
	args := []any{query.RestaurantID().String()}

	switch query.Scope() {
	case ScopePending:
		sql += " AND status = ?"
		args = append(args, order.StatusPending.String())
	case ScopeActive:
		sql += " AND status IN (?, ?)"
		args = append(args, order.StatusPending.String(), order.StatusAccepted.String())
	case ScopeAll, ScopeUnknown:
		// no status predicate
	}

	sql += " ORDER BY start_time ASC LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
