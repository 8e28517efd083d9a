package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/rating"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application and domain errors onto the HTTP surface.
//
// Not-found deliberately covers ownership mismatches, so a caller can never
// learn that somebody else's order exists.
func writeError(ctx echo.Context, err error) error {
	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		allowed := make([]string, len(transitionErr.Allowed))
		for i, status := range transitionErr.Allowed {
			allowed[i] = status.String()
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:          http.StatusBadRequest,
			Message:       transitionErr.Error(),
			CurrentStatus: transitionErr.Current.String(),
			AllowedNext:   allowed,
		})
	}

	var partialErr *commands.PartialUnavailableError
	if errors.As(err, &partialErr) {
		names := make([]string, len(partialErr.Items))
		for i, item := range partialErr.Items {
			names[i] = item.Name
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:             http.StatusBadRequest,
			Message:          partialErr.Error(),
			UnavailableItems: names,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return simpleError(ctx, http.StatusNotFound, err)
	case errors.Is(err, commands.ErrCustomerRoleRequired),
		errors.Is(err, order.ErrActorHasNoRole):
		return simpleError(ctx, http.StatusForbidden, err)
	case errors.Is(err, rating.ErrAlreadyRated):
		return simpleError(ctx, http.StatusConflict, err)
	case errors.Is(err, commands.ErrRestaurantClosed),
		errors.Is(err, commands.ErrNothingAvailable),
		errors.Is(err, commands.ErrOrderItemsAreRequired),
		errors.Is(err, services.ErrInvalidLineItems),
		errors.Is(err, rating.ErrOrderNotCompleted),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return simpleError(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func simpleError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
