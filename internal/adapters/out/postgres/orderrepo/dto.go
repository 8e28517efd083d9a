// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order aggregate spans two tables, orders and
// order_lines, written and read as one unit.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its lowercase string form, the same representation the
// API exposes. StartTime carries the creation instant used by the stale-order
// sweep.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID        uuid.UUID `gorm:"type:uuid;index"`
	Status              string    `gorm:"type:varchar(16);index"`
	Total               int
	ExpectedDuration    int
	ExpectedArrivalTime int
	StartTime           time.Time
	Lines               []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one frozen order line. Position preserves the
// order in which the customer listed the lines.
type OrderLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	UnitPrice  int
	Quantity   int
	Note       string
	Position   int
}

// TableName overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			ID:         uuid.New(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Name:       line.Name(),
			UnitPrice:  line.UnitPrice(),
			Quantity:   line.Quantity(),
			Note:       line.Note(),
			Position:   i,
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		Status:              aggregate.Status().String(),
		Total:               aggregate.Total(),
		ExpectedDuration:    aggregate.ExpectedDuration(),
		ExpectedArrivalTime: aggregate.ExpectedArrivalTime(),
		StartTime:           aggregate.Start(),
		Lines:               lineDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		menuItemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(
			menuItemID, lineDTO.Name, lineDTO.UnitPrice, lineDTO.Quantity, lineDTO.Note)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		lines,
		status,
		dto.Total,
		dto.ExpectedDuration,
		dto.ExpectedArrivalTime,
		dto.StartTime,
	)
}
