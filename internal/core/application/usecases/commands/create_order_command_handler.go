package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// it resolves the menu snapshot, freezes the pricing and duration aggregates,
// estimates the travel time, and persists the order atomically.
//
// The travel-time call is made before the transaction is opened, so outbound
// I/O never holds a database transaction. Estimation is best-effort: any
// estimator failure degrades the arrival estimate to zero and the order is
// still created.
type CreateOrderCommandHandler struct {
	uowFactory      OrderingUoWFactory
	estimator       ports.TravelEstimator
	publisher       ports.OrderEventPublisher
	aggregator      services.Aggregator
	estimateTimeout time.Duration
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// estimateTimeout bounds each travel-time call.
func NewCreateOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	estimator ports.TravelEstimator,
	publisher ports.OrderEventPublisher,
	estimateTimeout time.Duration,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		estimator:       estimator,
		publisher:       publisher,
		aggregator:      services.NewAggregator(),
		estimateTimeout: estimateTimeout,
	}
}

// Handle processes the order creation command and returns the fully
// populated order, including its generated id and initial pending status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsCustomer() {
		return nil, ErrCustomerRoleRequired
	}

	uow := h.uowFactory.Create()

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	items, err := uow.MenuItemRepository().GetByIDs(ctx, cmd.MenuItemIDs())
	if err != nil {
		return nil, err
	}

	aggregation, err := h.aggregator.Aggregate(restaurant, cmd.Lines(), items)
	if err != nil {
		return nil, err
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
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.PublishOrderChanged(ctx, newOrder)

	return newOrder, nil
}

// estimateArrival runs the best-effort travel-time estimation shared by the
// create and reorder flows. It returns zero when either coordinate is
// unknown or the estimator fails for any reason.
func estimateArrival(
	ctx context.Context,
	estimator ports.TravelEstimator,
	timeout time.Duration,
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
) int {
	if !origin.IsKnown() || !destination.IsKnown() {
		return 0
	}

	estimateCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	seconds, err := estimator.Estimate(estimateCtx, origin, destination)
	if err != nil || seconds < 0 {
		return 0
	}

	return seconds
}
