package http

import (
	"errors"
	"net/http"

	"exchange/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCodeFor maps domain error kinds onto HTTP status codes.
// OverrideError is transparent here: errors.Is walks its cause, so an
// override that lost a status race still comes back as a conflict.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrAlreadyResolved), errors.Is(err, errs.ErrDuplicateRating):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrNotEligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
