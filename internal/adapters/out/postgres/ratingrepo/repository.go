package ratingrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rating"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
//
// Requires the connection to be opened with TranslateError enabled so a
// unique-index violation surfaces as gorm.ErrDuplicatedKey.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new rating. A duplicate for the same order is reported as
// rating.ErrAlreadyRated, which is how a lost first-rating race surfaces.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return rating.ErrAlreadyRated
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExistsForOrder reports whether a rating already exists for the order.
func (r *GormRatingRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
