package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery_Success(t *testing.T) {
	customerID := kernel.NewUUID()

	query, err := queries.NewGetCustomerOrdersQuery(customerID, order.StatusDone, 10, 20)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.Equal(t, customerID, query.CustomerID())
	require.Equal(t, order.StatusDone, query.StatusFilter())
	require.Equal(t, 10, query.Limit())
	require.Equal(t, 20, query.Offset())
}

func TestNewGetCustomerOrdersQuery_NoFilter(t *testing.T) {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), order.StatusUnknown, 0, 0)
	require.NoError(t, err)
	require.Equal(t, order.StatusUnknown, query.StatusFilter())
	require.Equal(t, queries.DefaultPageSize, query.Limit())
}

func TestNewGetCustomerOrdersQuery_LimitIsCapped(t *testing.T) {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), order.StatusUnknown, 10_000, 0)
	require.NoError(t, err)
	require.Equal(t, queries.MaxPageSize, query.Limit())
}

func TestNewGetCustomerOrdersQuery_NegativeOffset(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), order.StatusUnknown, 10, -1)
	require.Error(t, err)
}

func TestNewGetCustomerOrdersQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{}, order.StatusUnknown, 10, 0)
	require.Error(t, err)
}

func TestGetCustomerOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetCustomerOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}
