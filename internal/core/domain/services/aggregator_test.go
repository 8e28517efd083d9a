package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
)

func testRestaurant(t *testing.T) *catalog.Restaurant {
	t.Helper()
	location, err := kernel.NewGeoPoint(35.6892, 51.3890)
	require.NoError(t, err)
	restaurant, err := catalog.NewRestaurant(kernel.NewUUID(), "Shila", location, true)
	require.NoError(t, err)
	return restaurant
}

func testMenuItem(t *testing.T, restaurantID kernel.UUID, name string, price, duration int, active bool) *catalog.MenuItem {
	t.Helper()
	item, err := catalog.NewMenuItem(
		kernel.NewUUID(), restaurantID, kernel.NewUUID(), name, price, duration, active)
	require.NoError(t, err)
	return item
}

func TestAggregator_Aggregate(t *testing.T) {
	aggregator := services.NewAggregator()

	t.Run("total is sum, duration is max", func(t *testing.T) {
		restaurant := testRestaurant(t)
		// Item A: $5.00, 10 min. Item B: $3.00, 15 min.
		itemA := testMenuItem(t, restaurant.ID(), "A", 500, 600, true)
		itemB := testMenuItem(t, restaurant.ID(), "B", 300, 900, true)

		result, err := aggregator.Aggregate(restaurant,
			[]services.LineRequest{
				{MenuItemID: itemA.ID(), Quantity: 2},
				{MenuItemID: itemB.ID(), Quantity: 1},
			},
			[]*catalog.MenuItem{itemA, itemB},
		)

		require.NoError(t, err)
		// 2 x 500 + 1 x 300 = 1300; duration is max(10, 15) minutes, never a sum.
		assert.Equal(t, 1300, result.Total)
		assert.Equal(t, 900, result.MaxDuration)
		require.Len(t, result.Lines, 2)
		assert.Equal(t, "A", result.Lines[0].Name())
		assert.Equal(t, 500, result.Lines[0].UnitPrice())
		assert.Equal(t, 2, result.Lines[0].Quantity())
	})

	t.Run("empty request set", func(t *testing.T) {
		restaurant := testRestaurant(t)

		_, err := aggregator.Aggregate(restaurant, nil, nil)

		require.Error(t, err)
	})

	t.Run("inactive item fails the whole call", func(t *testing.T) {
		restaurant := testRestaurant(t)
		active := testMenuItem(t, restaurant.ID(), "A", 500, 600, true)
		inactive := testMenuItem(t, restaurant.ID(), "B", 300, 900, false)

		_, err := aggregator.Aggregate(restaurant,
			[]services.LineRequest{
				{MenuItemID: active.ID(), Quantity: 1},
				{MenuItemID: inactive.ID(), Quantity: 1},
			},
			[]*catalog.MenuItem{active, inactive},
		)

		require.ErrorIs(t, err, services.ErrInvalidLineItems)
	})

	t.Run("item of another restaurant fails the whole call", func(t *testing.T) {
		restaurant := testRestaurant(t)
		mine := testMenuItem(t, restaurant.ID(), "A", 500, 600, true)
		foreign := testMenuItem(t, kernel.NewUUID(), "B", 300, 900, true)

		_, err := aggregator.Aggregate(restaurant,
			[]services.LineRequest{
				{MenuItemID: mine.ID(), Quantity: 1},
				{MenuItemID: foreign.ID(), Quantity: 1},
			},
			[]*catalog.MenuItem{mine, foreign},
		)

		require.ErrorIs(t, err, services.ErrInvalidLineItems)
	})

	t.Run("unresolved item id fails the whole call", func(t *testing.T) {
		restaurant := testRestaurant(t)
		item := testMenuItem(t, restaurant.ID(), "A", 500, 600, true)

		_, err := aggregator.Aggregate(restaurant,
			[]services.LineRequest{
				{MenuItemID: item.ID(), Quantity: 1},
				{MenuItemID: kernel.NewUUID(), Quantity: 1},
			},
			[]*catalog.MenuItem{item},
		)

		require.ErrorIs(t, err, services.ErrInvalidLineItems)
	})

	t.Run("invalid quantity propagates line validation", func(t *testing.T) {
		restaurant := testRestaurant(t)
		item := testMenuItem(t, restaurant.ID(), "A", 500, 600, true)

		_, err := aggregator.Aggregate(restaurant,
			[]services.LineRequest{{MenuItemID: item.ID(), Quantity: 0}},
			[]*catalog.MenuItem{item},
		)

		require.Error(t, err)
	})

	t.Run("notes are carried onto lines", func(t *testing.T) {
		restaurant := testRestaurant(t)
		item := testMenuItem(t, restaurant.ID(), "A", 500, 600, true)

		result, err := aggregator.Aggregate(restaurant,
			[]services.LineRequest{{MenuItemID: item.ID(), Quantity: 1, Note: "extra sauce"}},
			[]*catalog.MenuItem{item},
		)

		require.NoError(t, err)
		assert.Equal(t, "extra sauce", result.Lines[0].Note())
	})

	t.Run("extra snapshot items are ignored", func(t *testing.T) {
		restaurant := testRestaurant(t)
		wanted := testMenuItem(t, restaurant.ID(), "A", 500, 600, true)
		extra := testMenuItem(t, restaurant.ID(), "B", 300, 900, true)

		result, err := aggregator.Aggregate(restaurant,
			[]services.LineRequest{{MenuItemID: wanted.ID(), Quantity: 1}},
			[]*catalog.MenuItem{wanted, extra},
		)

		require.NoError(t, err)
		assert.Equal(t, 500, result.Total)
		assert.Len(t, result.Lines, 1)
	})
}
