package http

import (
	"inbox-triage/internal/extraction"
	pkgErrors "inbox-triage/pkg/errors"
	"inbox-triage/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case extraction.ErrEmptyInput:
		return pkgErrors.NewHTTPError(400, "no email text provided")
	case extraction.ErrExtractionInFlight:
		return pkgErrors.NewHTTPError(409, "an extraction is already running")
	default:
		return pkgErrors.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
