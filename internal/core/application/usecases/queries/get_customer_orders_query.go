package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

const (
	// DefaultPageSize is used when the caller does not specify a limit.
	DefaultPageSize = 20
	// MaxPageSize caps a single page regardless of what the caller asks for.
	MaxPageSize = 100
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest first.
// The status filter is optional: StatusUnknown means no filtering.
type GetCustomerOrdersQuery struct {
	customerID   kernel.UUID
	statusFilter order.Status
	limit        int
	offset       int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
// Pass order.StatusUnknown as statusFilter to return orders in any status.
// A non-positive limit selects DefaultPageSize.
func NewGetCustomerOrdersQuery(
	customerID kernel.UUID,
	statusFilter order.Status,
	limit int,
	offset int,
) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	if statusFilter != order.StatusUnknown {
		if err := statusFilter.Validate(); err != nil {
			return GetCustomerOrdersQuery{}, err
		}
	}

	if offset < 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	return GetCustomerOrdersQuery{
		customerID:   customerID,
		statusFilter: statusFilter,
		limit:        normalizeLimit(limit),
		offset:       offset,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are being listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// StatusFilter returns the requested status, or StatusUnknown for all.
func (q GetCustomerOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// Limit returns the page size.
func (q GetCustomerOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of leading rows to skip.
func (q GetCustomerOrdersQuery) Offset() int {
	return q.offset
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
