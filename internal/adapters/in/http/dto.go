package http

import (
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/rating"
)

// LocationBody carries caller coordinates. A nil LocationBody means the
// position is not known and travel time cannot be estimated.
type LocationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	RestaurantID string            `json:"restaurant_id"`
	Items        []OrderItemBody   `json:"items"`
	Location     *LocationBody     `json:"location,omitempty"`
}

// OrderItemBody is one requested line in a create request.
type OrderItemBody struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

// UpdateStatusRequest is the body of POST /api/v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ReorderRequest is the body of POST /api/v1/orders/:id/reorder.
type ReorderRequest struct {
	Location     *LocationBody `json:"location,omitempty"`
	AllowPartial bool          `json:"allow_partial"`
}

// RateOrderRequest is the body of POST /api/v1/orders/:id/rating.
type RateOrderRequest struct {
	Score int `json:"score"`
}

// OrderLineResponse is one frozen line of an order.
type OrderLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  int    `json:"unit_price"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
	Subtotal   int    `json:"subtotal"`
}

// OrderResponse is the full order payload returned by the write endpoints.
type OrderResponse struct {
	ID                  string              `json:"id"`
	CustomerID          string              `json:"customer_id"`
	RestaurantID        string              `json:"restaurant_id"`
	Status              string              `json:"status"`
	Items               []OrderLineResponse `json:"items"`
	Total               int                 `json:"total"`
	ExpectedDuration    int                 `json:"expected_duration"`
	ExpectedArrivalTime int                 `json:"expected_arrival_time"`
	StartTime           time.Time           `json:"start_time"`
}

// ReorderResponse wraps the new order together with the names of source
// lines that could not be carried over.
type ReorderResponse struct {
	Order            OrderResponse `json:"order"`
	UnavailableItems []string      `json:"unavailable_items,omitempty"`
}

// RatingResponse is the payload returned after rating an order.
type RatingResponse struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Score   int    `json:"score"`
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID                  string    `json:"id"`
	CustomerID          string    `json:"customer_id"`
	RestaurantID        string    `json:"restaurant_id"`
	Status              string    `json:"status"`
	Total               int       `json:"total"`
	ExpectedDuration    int       `json:"expected_duration"`
	ExpectedArrivalTime int       `json:"expected_arrival_time"`
	StartTime           time.Time `json:"start_time"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// Transition failures carry enough context for the caller to
	// self-correct without another round trip.
	CurrentStatus string   `json:"current_status,omitempty"`
	AllowedNext   []string `json:"allowed_next,omitempty"`

	// Reorder failures list the source lines that are gone.
	UnavailableItems []string `json:"unavailable_items,omitempty"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	lines := aggregate.Lines()
	items := make([]OrderLineResponse, len(lines))
	for i, line := range lines {
		items[i] = OrderLineResponse{
			MenuItemID: line.MenuItemID().String(),
			Name:       line.Name(),
			UnitPrice:  line.UnitPrice(),
			Quantity:   line.Quantity(),
			Note:       line.Note(),
			Subtotal:   line.Subtotal(),
		}
	}

	return OrderResponse{
		ID:                  aggregate.ID().String(),
		CustomerID:          aggregate.CustomerID().String(),
		RestaurantID:        aggregate.RestaurantID().String(),
		Status:              aggregate.Status().String(),
		Items:               items,
		Total:               aggregate.Total(),
		ExpectedDuration:    aggregate.ExpectedDuration(),
		ExpectedArrivalTime: aggregate.ExpectedArrivalTime(),
		StartTime:           aggregate.Start(),
	}
}

func reorderToResponse(result commands.ReorderResult) ReorderResponse {
	return ReorderResponse{
		Order:            orderToResponse(result.Order),
		UnavailableItems: result.Dropped,
	}
}

func ratingToResponse(record *rating.Rating) RatingResponse {
	return RatingResponse{
		ID:      record.ID().String(),
		OrderID: record.OrderID().String(),
		Score:   record.Score(),
	}
}

func summariesToResponse(summaries []queries.OrderSummaryResponse) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = OrderSummaryResponse{
			ID:                  summary.ID.String(),
			CustomerID:          summary.CustomerID.String(),
			RestaurantID:        summary.RestaurantID.String(),
			Status:              summary.Status.String(),
			Total:               summary.Total,
			ExpectedDuration:    summary.ExpectedDuration,
			ExpectedArrivalTime: summary.ExpectedArrivalTime,
			StartTime:           summary.Start,
		}
	}
	return response
}
