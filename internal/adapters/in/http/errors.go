package http

import (
	"errors"
	"net/http"

	"restaurant/internal/pkg/errs"
)

// statusForError maps domain error kinds to HTTP status codes. Unknown
// errors deliberately map to 500 rather than being coerced into a
// business status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrBelowMinimumAmount),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorPayload(err error) (int, Error) {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return code, Error{Code: code, Message: message}
}
