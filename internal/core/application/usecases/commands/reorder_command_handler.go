package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// ReorderResult is the outcome of a successful reorder: the newly created
// order and the names of source items that were dropped because they are no
// longer on the menu. Dropped is empty for a full re-creation.
type ReorderResult struct {
	Order   *order.Order
	Dropped []string
}

// ReorderCommandHandler re-creates a past order against the current menu.
//
// Prices and durations are never copied from the source order: the new order
// is aggregated from the menu as it stands now, so a replayed order always
// reflects current pricing. Items that have been deactivated or removed are
// either dropped (partial mode) or fail the whole request (strict mode).
type ReorderCommandHandler struct {
	uowFactory      OrderingUoWFactory
	estimator       ports.TravelEstimator
	publisher       ports.OrderEventPublisher
	aggregator      services.Aggregator
	estimateTimeout time.Duration
}

// NewReorderCommandHandler creates a handler for order re-creation.
func NewReorderCommandHandler(
	uowFactory OrderingUoWFactory,
	estimator ports.TravelEstimator,
	publisher ports.OrderEventPublisher,
	estimateTimeout time.Duration,
) ReorderCommandHandler {
	return ReorderCommandHandler{
		uowFactory:      uowFactory,
		estimator:       estimator,
		publisher:       publisher,
		aggregator:      services.NewAggregator(),
		estimateTimeout: estimateTimeout,
	}
}

// Handle processes the reorder command. The source order is readable only by
// its owning customer; for anyone else it does not exist.
func (h *ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) (ReorderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReorderResult{}, err
	}

	if !cmd.Actor().IsCustomer() {
		return ReorderResult{}, ErrCustomerRoleRequired
	}

	uow := h.uowFactory.Create()

	source, err := uow.OrderRepository().Get(ctx, cmd.SourceOrderID())
	if err != nil {
		return ReorderResult{}, err
	}

	if !source.OwnedBy(cmd.Actor()) {
		// The order exists but is not this customer's; do not reveal it.
		return ReorderResult{}, errs.NewObjectNotFoundError("order", cmd.SourceOrderID())
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, source.RestaurantID())
	if err != nil {
		return ReorderResult{}, err
	}

	if !restaurant.IsOpen() {
		return ReorderResult{}, ErrRestaurantClosed
	}

	items, err := uow.MenuItemRepository().GetByIDs(ctx, sourceMenuItemIDs(source))
	if err != nil {
		return ReorderResult{}, err
	}

	requests, dropped := partitionSourceLines(source, restaurant.ID(), items)

	// Strict mode reports what is gone even when everything is gone, so the
	// caller always learns which items to remove.
	if len(dropped) > 0 && !cmd.AllowPartial() {
		return ReorderResult{}, &PartialUnavailableError{Items: dropped}
	}

	if len(requests) == 0 {
		return ReorderResult{}, ErrNothingAvailable
	}

	aggregation, err := h.aggregator.Aggregate(restaurant, requests, items)
	if err != nil {
		return ReorderResult{}, err
	}

	arrival := estimateArrival(ctx, h.estimator, h.estimateTimeout, cmd.Location(), restaurant.Location())

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().ID(),
		restaurant.ID(),
		aggregation.Lines,
		aggregation.Total,
		aggregation.MaxDuration,
		arrival,
		time.Now(),
	)
	if err != nil {
		return ReorderResult{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return ReorderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return ReorderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReorderResult{}, err
	}

	_ = h.publisher.PublishOrderChanged(ctx, newOrder)

	droppedNames := make([]string, len(dropped))
	for i, item := range dropped {
		droppedNames[i] = item.Name
	}

	return ReorderResult{Order: newOrder, Dropped: droppedNames}, nil
}

func sourceMenuItemIDs(source *order.Order) []kernel.UUID {
	lines := source.Lines()
	ids := make([]kernel.UUID, 0, len(lines))
	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.MenuItemID()]; ok {
			continue
		}
		seen[line.MenuItemID()] = struct{}{}
		ids = append(ids, line.MenuItemID())
	}
	return ids
}

// partitionSourceLines splits the source order's lines into requests that
// can be replayed under the current menu and items that no longer can. A
// line survives only if its menu item still exists, is active, and still
// belongs to the same restaurant. Dropped names come from the frozen line,
// since the current menu may no longer know the item at all.
func partitionSourceLines(
	source *order.Order,
	restaurantID kernel.UUID,
	items []*catalog.MenuItem,
) ([]services.LineRequest, []UnavailableItem) {
	available := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if item.IsActive() && item.RestaurantID().IsEqual(restaurantID) {
			available[item.ID()] = struct{}{}
		}
	}

	lines := source.Lines()
	requests := make([]services.LineRequest, 0, len(lines))
	var dropped []UnavailableItem
	droppedSeen := make(map[kernel.UUID]struct{})

	for _, line := range lines {
		if _, ok := available[line.MenuItemID()]; ok {
			requests = append(requests, services.LineRequest{
				MenuItemID: line.MenuItemID(),
				Quantity:   line.Quantity(),
				Note:       line.Note(),
			})
			continue
		}
		if _, ok := droppedSeen[line.MenuItemID()]; ok {
			continue
		}
		droppedSeen[line.MenuItemID()] = struct{}{}
		dropped = append(dropped, UnavailableItem{MenuItemID: line.MenuItemID(), Name: line.Name()})
	}

	return requests, dropped
}
