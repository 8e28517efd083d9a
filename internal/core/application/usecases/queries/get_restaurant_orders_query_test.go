package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestScopeFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    queries.OrderScope
		wantErr bool
	}{
		{input: "pending", want: queries.ScopePending},
		{input: "active", want: queries.ScopeActive},
		{input: "all", want: queries.ScopeAll},
		{input: "", wantErr: true},
		{input: "done", wantErr: true},
		{input: "Pending", wantErr: true},
	}

	for _, tt := range tests {
		scope, err := queries.ScopeFromString(tt.input)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, scope, "input %q", tt.input)
	}
}

func TestNewGetRestaurantOrdersQuery_Success(t *testing.T) {
	restaurantID := kernel.NewUUID()

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, queries.ScopeActive, 50, 0)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.Equal(t, restaurantID, query.RestaurantID())
	require.Equal(t, queries.ScopeActive, query.Scope())
}

func TestNewGetRestaurantOrdersQuery_UnknownScope(t *testing.T) {
	_, err := queries.NewGetRestaurantOrdersQuery(kernel.NewUUID(), queries.ScopeUnknown, 10, 0)
	require.Error(t, err)
}

func TestGetRestaurantOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetRestaurantOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetRestaurantOrdersQueryIsNotConstructed)
}
