package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	sharedmw "github.com/mcoot/cricle/internal/middleware"
	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/player"
)

type contextKey string

const playerContextKey contextKey = "player"

// GetPlayer retrieves the player from the request context
// Returns nil outside the Player middleware
func GetPlayer(ctx context.Context) *model.Player {
	p, _ := ctx.Value(playerContextKey).(*model.Player)
	return p
}

// Player returns middleware that identifies the browser's player from the
// player cookie. First-time visitors, or those whose player has expired, get
// a new guest player and cookie.
func Player(playerService *player.Service, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := resolvePlayer(r, playerService)
			if err != nil {
				logger.Error("failed to identify player", slog.String("error", err.Error()))
				renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
				return
			}
			if p == nil {
				p, err = playerService.CreateGuest(r.Context())
				if err != nil {
					renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
					return
				}
				sharedmw.SetPlayerCookie(w, r, p.ID)
			}

			sharedmw.SetPlayer(r.Context(), p.ID)
			ctx := context.WithValue(r.Context(), playerContextKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolvePlayer returns nil without error when the request has no usable cookie
func resolvePlayer(r *http.Request, playerService *player.Service) (*model.Player, error) {
	cookie, err := r.Cookie(sharedmw.PlayerCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	p, err := playerService.Resolve(r.Context(), cookie.Value)
	if errors.Is(err, player.ErrInvalidPlayer) {
		return nil, nil
	}
	return p, err
}
