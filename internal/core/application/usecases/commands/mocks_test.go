package commands_test

import (
	"context"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/rating"
	"foodorder/internal/core/ports"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/mock"
)

var fake = faker.New()

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, previous order.Status) error {
	args := m.Called(ctx, o, previous)
	return args.Error(0)
}

func (m *MockOrderRepository) GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.MenuItem), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Restaurant), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderingUoW struct{ mock.Mock }

func (m *MockOrderingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderingUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

func (m *MockOrderingUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockOrderingUoWFactory struct{ mock.Mock }

func (m *MockOrderingUoWFactory) Create() commands.OrderingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderingUoW)
}

type MockRatingUoW struct{ mock.Mock }

func (m *MockRatingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockRatingUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

type MockTravelEstimator struct{ mock.Mock }

func (m *MockTravelEstimator) Estimate(ctx context.Context, origin kernel.GeoPoint, destination kernel.GeoPoint) (int, error) {
	args := m.Called(ctx, origin, destination)
	return args.Int(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// NoopPublisher ignores events; for tests that don't assert publishing.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderChanged(_ context.Context, _ *order.Order) error { return nil }

func mustGeoPoint(lat, lon float64) kernel.GeoPoint {
	point, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		panic(err)
	}
	return point
}

func newTestRestaurant(open bool) *catalog.Restaurant {
	restaurant, err := catalog.NewRestaurant(
		kernel.NewUUID(),
		fake.Company().Name(),
		mustGeoPoint(35.7, 51.4),
		open,
	)
	if err != nil {
		panic(err)
	}
	return restaurant
}

func newTestMenuItem(restaurantID kernel.UUID, price int, duration int, active bool) *catalog.MenuItem {
	item, err := catalog.NewMenuItem(
		kernel.NewUUID(),
		restaurantID,
		kernel.NewUUID(),
		fake.Lorem().Word(),
		price,
		duration,
		active,
	)
	if err != nil {
		panic(err)
	}
	return item
}

func newTestOrder(customerID, restaurantID kernel.UUID, status order.Status, lines []order.Line) *order.Order {
	total := 0
	for _, line := range lines {
		total += line.Subtotal()
	}

	restored, err := order.RestoreOrder(
		kernel.NewUUID(),
		customerID,
		restaurantID,
		lines,
		status,
		total,
		600,
		300,
		time.Now().Add(-time.Hour),
	)
	if err != nil {
		panic(err)
	}
	return restored
}

func mustLine(menuItemID kernel.UUID, name string, unitPrice, quantity int) order.Line {
	line, err := order.NewLine(menuItemID, name, unitPrice, quantity, "")
	if err != nil {
		panic(err)
	}
	return line
}
