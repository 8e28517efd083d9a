package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/rating"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubCreateOrder struct {
	fn func(cmd commands.CreateOrderCommand) (*order.Order, error)
}

func (s stubCreateOrder) Handle(_ context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	return s.fn(cmd)
}

type stubUpdateStatus struct {
	fn func(cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
}

func (s stubUpdateStatus) Handle(_ context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
	return s.fn(cmd)
}

type stubReorder struct {
	fn func(cmd commands.ReorderCommand) (commands.ReorderResult, error)
}

func (s stubReorder) Handle(_ context.Context, cmd commands.ReorderCommand) (commands.ReorderResult, error) {
	return s.fn(cmd)
}

type stubRateOrder struct {
	fn func(cmd commands.RateOrderCommand) (*rating.Rating, error)
}

func (s stubRateOrder) Handle(_ context.Context, cmd commands.RateOrderCommand) (*rating.Rating, error) {
	return s.fn(cmd)
}

type stubCustomerOrders struct {
	fn func(query queries.GetCustomerOrdersQuery) ([]queries.OrderSummaryResponse, error)
}

func (s stubCustomerOrders) Handle(_ context.Context, query queries.GetCustomerOrdersQuery) ([]queries.OrderSummaryResponse, error) {
	return s.fn(query)
}

type stubRestaurantOrders struct {
	fn func(query queries.GetRestaurantOrdersQuery) ([]queries.OrderSummaryResponse, error)
}

func (s stubRestaurantOrders) Handle(_ context.Context, query queries.GetRestaurantOrdersQuery) ([]queries.OrderSummaryResponse, error) {
	return s.fn(query)
}

// serverStubs bundles one stub per use case; nil funcs fail the test if hit.
type serverStubs struct {
	create           func(cmd commands.CreateOrderCommand) (*order.Order, error)
	updateStatus     func(cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	reorder          func(cmd commands.ReorderCommand) (commands.ReorderResult, error)
	rate             func(cmd commands.RateOrderCommand) (*rating.Rating, error)
	customerOrders   func(query queries.GetCustomerOrdersQuery) ([]queries.OrderSummaryResponse, error)
	restaurantOrders func(query queries.GetRestaurantOrdersQuery) ([]queries.OrderSummaryResponse, error)
}

func newTestServer(t *testing.T, stubs serverStubs) *echo.Echo {
	t.Helper()

	unexpected := func(name string) {
		t.Fatalf("unexpected call to %s", name)
	}

	if stubs.create == nil {
		stubs.create = func(commands.CreateOrderCommand) (*order.Order, error) {
			unexpected("create")
			return nil, nil
		}
	}
	if stubs.updateStatus == nil {
		stubs.updateStatus = func(commands.UpdateOrderStatusCommand) (*order.Order, error) {
			unexpected("updateStatus")
			return nil, nil
		}
	}
	if stubs.reorder == nil {
		stubs.reorder = func(commands.ReorderCommand) (commands.ReorderResult, error) {
			unexpected("reorder")
			return commands.ReorderResult{}, nil
		}
	}
	if stubs.rate == nil {
		stubs.rate = func(commands.RateOrderCommand) (*rating.Rating, error) {
			unexpected("rate")
			return nil, nil
		}
	}
	if stubs.customerOrders == nil {
		stubs.customerOrders = func(queries.GetCustomerOrdersQuery) ([]queries.OrderSummaryResponse, error) {
			unexpected("customerOrders")
			return nil, nil
		}
	}
	if stubs.restaurantOrders == nil {
		stubs.restaurantOrders = func(queries.GetRestaurantOrdersQuery) ([]queries.OrderSummaryResponse, error) {
			unexpected("restaurantOrders")
			return nil, nil
		}
	}

	server := adapter.NewServer(
		stubCreateOrder{fn: stubs.create},
		stubUpdateStatus{fn: stubs.updateStatus},
		stubReorder{fn: stubs.reorder},
		stubRateOrder{fn: stubs.rate},
		stubCustomerOrders{fn: stubs.customerOrders},
		stubRestaurantOrders{fn: stubs.restaurantOrders},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func testOrder(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	line, err := order.NewLine(kernel.NewUUID(), "kebab", 500, 2, "")
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(),
		[]order.Line{line}, status, 1000, 600, 420,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return aggregate
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) adapter.ErrorResponse {
	t.Helper()

	var body adapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_CreateOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	t.Run("Created", func(t *testing.T) {
		created := testOrder(t, customerID, order.StatusPending)

		e := newTestServer(t, serverStubs{
			create: func(cmd commands.CreateOrderCommand) (*order.Order, error) {
				require.True(t, cmd.Actor().IsCustomer())
				require.Equal(t, restaurantID, cmd.RestaurantID())
				require.Len(t, cmd.Lines(), 1)
				require.True(t, cmd.Location().IsKnown())
				return created, nil
			},
		})

		body := `{
			"restaurant_id": "` + restaurantID.String() + `",
			"items": [{"menu_item_id": "` + menuItemID.String() + `", "quantity": 2}],
			"location": {"latitude": 35.7, "longitude": 51.4}
		}`
		req := jsonRequest(http.MethodPost, "/api/v1/orders", body)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var response adapter.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Equal(t, created.ID().String(), response.ID)
		require.Equal(t, "pending", response.Status)
		require.Equal(t, 1000, response.Total)
		require.Len(t, response.Items, 1)
		require.Equal(t, 1000, response.Items[0].Subtotal)
	})

	t.Run("MissingIdentityIsForbidden", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			create: func(cmd commands.CreateOrderCommand) (*order.Order, error) {
				return nil, commands.ErrCustomerRoleRequired
			},
		})

		body := `{
			"restaurant_id": "` + restaurantID.String() + `",
			"items": [{"menu_item_id": "` + menuItemID.String() + `", "quantity": 1}]
		}`
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/v1/orders", body))

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("EmptyItemsIsBadRequest", func(t *testing.T) {
		e := newTestServer(t, serverStubs{})

		body := `{"restaurant_id": "` + restaurantID.String() + `", "items": []}`
		req := jsonRequest(http.MethodPost, "/api/v1/orders", body)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedRestaurantIDIsBadRequest", func(t *testing.T) {
		e := newTestServer(t, serverStubs{})

		body := `{"restaurant_id": "not-a-uuid", "items": [{"menu_item_id": "` +
			menuItemID.String() + `", "quantity": 1}]}`
		req := jsonRequest(http.MethodPost, "/api/v1/orders", body)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_UpdateOrderStatus(t *testing.T) {
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("Updated", func(t *testing.T) {
		updated := testOrder(t, customerID, order.StatusAccepted)

		e := newTestServer(t, serverStubs{
			updateStatus: func(cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
				require.Equal(t, orderID, cmd.OrderID())
				require.Equal(t, order.StatusAccepted, cmd.Requested())
				return updated, nil
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/status",
			`{"status": "accepted"}`)
		req.Header.Set(adapter.HeaderRestaurantID, kernel.NewUUID().String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response adapter.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Equal(t, "accepted", response.Status)
	})

	t.Run("InvalidTransitionCarriesAllowedNext", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			updateStatus: func(cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
				return nil, &order.InvalidTransitionError{
					Current:   order.StatusPending,
					Requested: order.StatusDone,
					Allowed:   []order.Status{order.StatusAccepted, order.StatusFailed},
				}
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/status",
			`{"status": "done"}`)
		req.Header.Set(adapter.HeaderRestaurantID, kernel.NewUUID().String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeError(t, rec)
		require.Equal(t, "pending", body.CurrentStatus)
		require.Equal(t, []string{"accepted", "failed"}, body.AllowedNext)
	})

	t.Run("ForeignOrderIsNotFound", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			updateStatus: func(cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
				return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/status",
			`{"status": "canceled"}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("UnknownStatusIsBadRequest", func(t *testing.T) {
		e := newTestServer(t, serverStubs{})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/status",
			`{"status": "teleported"}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Reorder(t *testing.T) {
	customerID := kernel.NewUUID()
	sourceID := kernel.NewUUID()

	t.Run("CreatedWithDroppedItems", func(t *testing.T) {
		replay := testOrder(t, customerID, order.StatusPending)

		e := newTestServer(t, serverStubs{
			reorder: func(cmd commands.ReorderCommand) (commands.ReorderResult, error) {
				require.Equal(t, sourceID, cmd.SourceOrderID())
				require.True(t, cmd.AllowPartial())
				return commands.ReorderResult{Order: replay, Dropped: []string{"pizza"}}, nil
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+sourceID.String()+"/reorder",
			`{"allow_partial": true}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var response adapter.ReorderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Equal(t, replay.ID().String(), response.Order.ID)
		require.Equal(t, []string{"pizza"}, response.UnavailableItems)
	})

	t.Run("StrictUnavailableIsBadRequest", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			reorder: func(cmd commands.ReorderCommand) (commands.ReorderResult, error) {
				return commands.ReorderResult{}, &commands.PartialUnavailableError{
					Items: []commands.UnavailableItem{
						{MenuItemID: kernel.NewUUID(), Name: "pizza"},
					},
				}
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+sourceID.String()+"/reorder",
			`{"allow_partial": false}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, []string{"pizza"}, decodeError(t, rec).UnavailableItems)
	})

	t.Run("RestaurantClosedIsBadRequest", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			reorder: func(cmd commands.ReorderCommand) (commands.ReorderResult, error) {
				return commands.ReorderResult{}, commands.ErrRestaurantClosed
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+sourceID.String()+"/reorder", `{}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_RateOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("Created", func(t *testing.T) {
		record, err := rating.NewRating(kernel.NewUUID(), orderID, 5)
		require.NoError(t, err)

		e := newTestServer(t, serverStubs{
			rate: func(cmd commands.RateOrderCommand) (*rating.Rating, error) {
				require.Equal(t, orderID, cmd.OrderID())
				require.Equal(t, 5, cmd.Score())
				return record, nil
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/rating",
			`{"score": 5}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var response adapter.RatingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Equal(t, orderID.String(), response.OrderID)
		require.Equal(t, 5, response.Score)
	})

	t.Run("DuplicateIsConflict", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			rate: func(cmd commands.RateOrderCommand) (*rating.Rating, error) {
				return nil, rating.ErrAlreadyRated
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/rating",
			`{"score": 4}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("NotCompletedIsBadRequest", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			rate: func(cmd commands.RateOrderCommand) (*rating.Rating, error) {
				return nil, rating.ErrOrderNotCompleted
			},
		})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/rating",
			`{"score": 3}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ScoreOutOfRangeIsBadRequest", func(t *testing.T) {
		e := newTestServer(t, serverStubs{})

		req := jsonRequest(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/rating",
			`{"score": 9}`)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetMyOrders(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("ReturnsSummaries", func(t *testing.T) {
		summary := queries.OrderSummaryResponse{
			ID:           kernel.NewUUID(),
			CustomerID:   customerID,
			RestaurantID: kernel.NewUUID(),
			Status:       order.StatusDone,
			Total:        1300,
			Start:        time.Now().UTC(),
		}

		e := newTestServer(t, serverStubs{
			customerOrders: func(query queries.GetCustomerOrdersQuery) ([]queries.OrderSummaryResponse, error) {
				require.Equal(t, customerID, query.CustomerID())
				require.Equal(t, order.StatusDone, query.StatusFilter())
				return []queries.OrderSummaryResponse{summary}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/orders?status=done", nil)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response []adapter.OrderSummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Len(t, response, 1)
		require.Equal(t, summary.ID.String(), response[0].ID)
		require.Equal(t, "done", response[0].Status)
		require.Equal(t, 1300, response[0].Total)
	})

	t.Run("RestaurantIdentityIsForbidden", func(t *testing.T) {
		e := newTestServer(t, serverStubs{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/orders", nil)
		req.Header.Set(adapter.HeaderRestaurantID, kernel.NewUUID().String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("MalformedLimitIsBadRequest", func(t *testing.T) {
		e := newTestServer(t, serverStubs{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me/orders?limit=ten", nil)
		req.Header.Set(adapter.HeaderCustomerID, customerID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetRestaurantOrders(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("DefaultsToPendingScope", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			restaurantOrders: func(query queries.GetRestaurantOrdersQuery) ([]queries.OrderSummaryResponse, error) {
				require.Equal(t, restaurantID, query.RestaurantID())
				require.Equal(t, queries.ScopePending, query.Scope())
				return nil, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurant/orders", nil)
		req.Header.Set(adapter.HeaderRestaurantID, restaurantID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ActiveScope", func(t *testing.T) {
		e := newTestServer(t, serverStubs{
			restaurantOrders: func(query queries.GetRestaurantOrdersQuery) ([]queries.OrderSummaryResponse, error) {
				require.Equal(t, queries.ScopeActive, query.Scope())
				return nil, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurant/orders?scope=active", nil)
		req.Header.Set(adapter.HeaderRestaurantID, restaurantID.String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CustomerIdentityIsForbidden", func(t *testing.T) {
		e := newTestServer(t, serverStubs{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurant/orders", nil)
		req.Header.Set(adapter.HeaderCustomerID, kernel.NewUUID().String())
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t, serverStubs{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
