package common

import (
	"errors"
	"net/http"
	"time"

	"github.com/goamaan/site/pkg/core"
)

// DateLayout is how dates are shown on the site.
const DateLayout = "Jan 2, 2006"

// FormatDate formats t with DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StatusFor maps a store or auth error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, core.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrEmptyEntityID),
		errors.Is(err, core.ErrInvalidEntityType),
		errors.Is(err, core.ErrEmptyComment):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NoStore marks a response as uncacheable.
func NoStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
}
