package queries

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// OrderScope selects which slice of a restaurant's orders a query covers.
type OrderScope int

const (
	ScopeUnknown OrderScope = iota
	// ScopePending covers only orders awaiting the restaurant's decision.
	ScopePending
	// ScopeActive covers pending and accepted orders, the restaurant's
	// current workload.
	ScopeActive
	// ScopeAll covers the full history including terminal orders.
	ScopeAll
)

// ScopeFromString parses the wire representation of an order scope.
func ScopeFromString(s string) (OrderScope, error) {
	switch s {
	case "pending":
		return ScopePending, nil
	case "active":
		return ScopeActive, nil
	case "all":
		return ScopeAll, nil
	}
	return ScopeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"scope", fmt.Errorf("%q is not a valid scope", s))
}

// GetRestaurantOrdersQuery retrieves the incoming orders of a restaurant,
// oldest first so the kitchen works the queue in arrival order.
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	scope        OrderScope
	limit        int
	offset       int

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for a restaurant's order queue.
// A non-positive limit selects DefaultPageSize.
func NewGetRestaurantOrdersQuery(
	restaurantID kernel.UUID,
	scope OrderScope,
	limit int,
	offset int,
) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	if scope != ScopePending && scope != ScopeActive && scope != ScopeAll {
		return GetRestaurantOrdersQuery{}, errs.NewValueIsRequiredError("scope")
	}

	if offset < 0 {
		return GetRestaurantOrdersQuery{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}

	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		scope:        scope,
		limit:        normalizeLimit(limit),
		offset:       offset,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are being listed.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Scope returns the requested order scope.
func (q GetRestaurantOrdersQuery) Scope() OrderScope {
	return q.scope
}

// Limit returns the page size.
func (q GetRestaurantOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of leading rows to skip.
func (q GetRestaurantOrdersQuery) Offset() int {
	return q.offset
}
