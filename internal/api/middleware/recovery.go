package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/cricle/internal/api/apierr"
	"github.com/mcoot/cricle/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// Panics become INTERNAL_ERROR JSON responses.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
