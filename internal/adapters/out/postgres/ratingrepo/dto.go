// Package ratingrepo provides data transfer objects and mapping functions
// for rating persistence. The unique index on order_id is the storage-level
// enforcement of the one-rating-per-order rule.
package ratingrepo

import (
	"foodorder/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting ratings.
type RatingDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Score   int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "ratings".
func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(aggregate *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:      aggregate.ID().Bytes(),
		OrderID: aggregate.OrderID().Bytes(),
		Score:   aggregate.Score(),
	}
}
