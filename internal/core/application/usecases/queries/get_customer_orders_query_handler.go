package queries

import (
	"context"

	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history straight
// from the orders table, newest first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of summaries, ordered by
// start time descending.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderSummaryColumns + `
		FROM orders
		WHERE customer_id = ?
	`
	args := []any{query.CustomerID().String()}

	if query.StatusFilter() != order.StatusUnknown {
		sql += " AND status = ?"
		args = append(args, query.StatusFilter().String())
	}

	sql += " ORDER BY start_time DESC LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
