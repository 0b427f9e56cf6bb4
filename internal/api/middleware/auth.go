package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/cricle/internal/api/apierr"
	"github.com/mcoot/cricle/internal/middleware"
	"github.com/mcoot/cricle/internal/model"
	"github.com/mcoot/cricle/internal/services/player"
)

type contextKey string

const playerContextKey contextKey = "player"

// Auth creates middleware resolving the player from a bearer token or the
// player cookie
func Auth(playerService *player.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := middleware.PlayerToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			p, err := playerService.Resolve(r.Context(), token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			middleware.SetPlayer(r.Context(), p.ID)
			ctx := context.WithValue(r.Context(), playerContextKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPlayer returns the authenticated player from the request context
func GetPlayer(ctx context.Context) *model.Player {
	p, _ := ctx.Value(playerContextKey).(*model.Player)
	return p
}

// MustGetPlayer returns the authenticated player or panics
func MustGetPlayer(ctx context.Context) *model.Player {
	p := GetPlayer(ctx)
	if p == nil {
		panic("no player in context - auth middleware not applied?")
	}
	return p
}
