package http

import (
	"errors"
	"net/http"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/serviceorder"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps the application error taxonomy onto HTTP status codes.
// Validation problems are 400, missing aggregates 404, and rejected state
// transitions or concurrent modifications 409.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusCodeFor(err), Error{
		Code:    statusCodeFor(err),
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest

	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderAlreadyFinalized),
		errors.Is(err, order.ErrCancellationWindowClosed),
		errors.Is(err, order.ErrPaymentNotConfirmed),
		errors.Is(err, serviceorder.ErrInvalidTransition),
		errors.Is(err, serviceorder.ErrServiceOrderAlreadyFinalized),
		errors.Is(err, serviceorder.ErrInvalidScheduleWindow),
		errors.Is(err, serviceorder.ErrPendingExpensesUnresolved),
		errors.Is(err, serviceorder.ErrExpenseAlreadyDecided),
		errors.Is(err, services.ErrEmptyCart):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
