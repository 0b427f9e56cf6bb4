package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	sharedmw "github.com/mcoot/cricle/internal/middleware"
	"github.com/mcoot/cricle/internal/web/templates/pages"
)

// Recovery creates panic recovery middleware for the web interface.
// Page requests get an HTML error page, script requests a JSON error.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return sharedmw.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	})
}

// renderError writes an error in the form the client expects
func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = pages.Error(pages.ErrorData{Status: status, Message: message}).Render(r.Context(), w)
}

func wantsJSON(r *http.Request) bool {
	return r.Method != http.MethodGet ||
		strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
