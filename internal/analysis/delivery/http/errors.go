package http

import (
	"errors"
	"net/http"

	"emotiai/internal/analysis"
	pkgErrors "emotiai/pkg/errors"
)

var errTextRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Text is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// It returns nil for errors that have no client-facing mapping.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrValidation):
		return errTextRequired
	default:
		return nil
	}
}
