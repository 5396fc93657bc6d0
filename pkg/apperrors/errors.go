package apperrors

import (
	"errors"
	"net/http"
)

// Error categories shared by all services. Domain errors wrap one of these
// so handlers can map any error to an HTTP status with errors.Is.
var (
	ErrValidation   = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrBusinessRule = errors.New("business rule violation")
	ErrInternal     = errors.New("internal error")
)

// StatusFor maps an error chain to the HTTP status the API contract defines:
// validation and business-rule failures are 400, authorization failures 403,
// missing entities 404, everything else 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBusinessRule):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
