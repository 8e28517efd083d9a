// Package queries contains read-only operations that bypass the domain
// aggregates and read the storage model directly. Implements the query side
// of the CQRS architecture: raw SQL projections with no transactions and no
// aggregate construction.
package queries

import (
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderSummaryResponse is the list projection of an order: enough for a
// history or dashboard screen without loading the lines.
type OrderSummaryResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	RestaurantID        kernel.UUID
	Status              order.Status
	Total               int
	ExpectedDuration    int
	ExpectedArrivalTime int
	Start               time.Time
}

const orderSummaryColumns = `
	id,
	customer_id,
	restaurant_id,
	status,
	total,
	expected_duration,
	expected_arrival_time,
	start_time
`

func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			customerID   uuid.UUID
			restaurantID uuid.UUID
			statusStr    string
			summary      OrderSummaryResponse
		)

		err := rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&statusStr,
			&summary.Total,
			&summary.ExpectedDuration,
			&summary.ExpectedArrivalTime,
			&summary.Start,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if summary.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if summary.Status, err = order.StatusFromString(statusStr); err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
