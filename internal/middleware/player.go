package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/cricle/internal/model"
)

// PlayerCookieName is the cookie carrying the player ID for browsers
const PlayerCookieName = "player"

// PlayerCookieMaxAge matches the default player retention in storage
const PlayerCookieMaxAge = 30 * 24 * time.Hour

// PlayerToken returns the player token from the Authorization header,
// falling back to the player cookie
func PlayerToken(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	if cookie, err := r.Cookie(PlayerCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// SetPlayerCookie issues the player cookie
func SetPlayerCookie(w http.ResponseWriter, r *http.Request, id model.PlayerID) {
	http.SetCookie(w, &http.Cookie{
		Name:     PlayerCookieName,
		Value:    string(id),
		Path:     "/",
		MaxAge:   int(PlayerCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
