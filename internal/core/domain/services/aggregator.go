package services

import (
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// ErrInvalidLineItems is returned when a requested line set cannot be fully
// resolved: an item does not exist, is inactive, or belongs to a different
// restaurant. No partial aggregation is ever performed.
var ErrInvalidLineItems = errors.New("all items must belong to the restaurant and be active")

// LineRequest is one requested order line: a menu item reference, a quantity,
// and an optional preparation note.
type LineRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
	Note       string
}

// Aggregation is the frozen result of resolving a line request set against a
// menu snapshot: the total price, the kitchen-bound preparation duration,
// and the fully resolved order lines with captured unit prices.
type Aggregation struct {
	Total       int
	MaxDuration int
	Lines       []order.Line
}

// Aggregator is a domain service that computes an order's pricing and
// duration aggregates from a menu snapshot.
//
// Business rules:
//   - Every requested item must exist in the snapshot, be active, and belong
//     to the target restaurant; otherwise the whole call fails
//   - Total is the sum of unit price times quantity over all lines
//   - Duration is the maximum preparation time across lines, not a sum:
//     the model assumes parallel kitchen preparation bounded by the slowest
//     single item
//
// Aggregate is a pure function over its inputs; it performs no I/O and has
// no side effects, so the snapshot read and the eventual persistence can be
// managed entirely by the caller.
type Aggregator struct{}

// NewAggregator creates a new Aggregator instance.
func NewAggregator() Aggregator {
	return Aggregator{}
}

// Aggregate validates the requested lines against the menu snapshot and
// produces the frozen pricing and duration aggregates.
//
// The items slice is the snapshot read for this call; it may contain more
// items than requested (extras are ignored) but every distinct requested id
// must resolve to an active item of the given restaurant or the call fails
// with ErrInvalidLineItems.
func (a Aggregator) Aggregate(
	restaurant *catalog.Restaurant,
	requests []LineRequest,
	items []*catalog.MenuItem,
) (Aggregation, error) {
	if err := restaurant.Validate(); err != nil {
		return Aggregation{}, err
	}

	if len(requests) == 0 {
		return Aggregation{}, errs.NewValueIsRequiredError("order items")
	}

	eligible := make(map[kernel.UUID]*catalog.MenuItem, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Aggregation{}, err
		}
		if item.IsActive() && item.RestaurantID().IsEqual(restaurant.ID()) {
			eligible[item.ID()] = item
		}
	}

	distinct := make(map[kernel.UUID]struct{}, len(requests))
	matched := 0
	for _, request := range requests {
		if _, seen := distinct[request.MenuItemID]; seen {
			continue
		}
		distinct[request.MenuItemID] = struct{}{}
		if _, ok := eligible[request.MenuItemID]; ok {
			matched++
		}
	}

	if matched != len(distinct) {
		return Aggregation{}, ErrInvalidLineItems
	}

	result := Aggregation{
		Lines: make([]order.Line, 0, len(requests)),
	}

	for _, request := range requests {
		item := eligible[request.MenuItemID]

		line, err := order.NewLine(item.ID(), item.Name(), item.Price(), request.Quantity, request.Note)
		if err != nil {
			return Aggregation{}, err
		}

		result.Total += line.Subtotal()
		if item.ExpectedDuration() > result.MaxDuration {
			result.MaxDuration = item.ExpectedDuration()
		}

		result.Lines = append(result.Lines, line)
	}

	return result, nil
}
