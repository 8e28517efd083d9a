package http

import (
	"strconv"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers. Authentication itself is handled upstream; this adapter
// only resolves which profile the authenticated caller acts through.
const (
	HeaderCustomerID   = "X-Customer-ID"
	HeaderRestaurantID = "X-Restaurant-ID"
)

// resolveActor builds the closed actor variant from identity headers. A
// caller presenting neither header, or a malformed id, is unauthenticated;
// the commands reject such actors with a role error.
func resolveActor(ctx echo.Context) kernel.Actor {
	if raw := ctx.Request().Header.Get(HeaderCustomerID); raw != "" {
		if id, err := kernel.UUIDFromString(raw); err == nil {
			return kernel.ActorCustomer(id)
		}
	}

	if raw := ctx.Request().Header.Get(HeaderRestaurantID); raw != "" {
		if id, err := kernel.UUIDFromString(raw); err == nil {
			return kernel.ActorRestaurant(id)
		}
	}

	return kernel.UnauthenticatedActor()
}

// resolveLocation converts an optional coordinate body into a geo point.
// Absent coordinates become the unknown point, which skips travel
// estimation instead of failing the request.
func resolveLocation(body *LocationBody) (kernel.GeoPoint, error) {
	if body == nil {
		return kernel.UnknownGeoPoint(), nil
	}
	return kernel.NewGeoPoint(body.Latitude, body.Longitude)
}

// parsePage reads limit and offset query parameters. Zero values defer to
// the query-layer defaults.
func parsePage(ctx echo.Context) (limit int, offset int, err error) {
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
	}

	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("offset", err)
		}
	}

	return limit, offset, nil
}
