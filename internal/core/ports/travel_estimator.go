package ports

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
)

// ErrEstimateUnavailable is returned by a TravelEstimator when no estimate
// could be produced: transport failure, timeout, non-success response, or a
// malformed body. Callers recover locally by degrading the arrival estimate
// to zero; this error never fails an order operation.
var ErrEstimateUnavailable = errors.New("travel time estimate unavailable")

// TravelEstimator estimates the travel duration between two coordinates.
// It is a pluggable strategy so the degraded-fallback policy can be tested
// with a fake implementation, decoupled from any geolocation provider.
//
// Implementations bound the call with their own short timeout; the returned
// duration is in seconds.
type TravelEstimator interface {
	Estimate(ctx context.Context, origin kernel.GeoPoint, destination kernel.GeoPoint) (int, error)
}
