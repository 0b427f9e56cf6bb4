package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	sharedmw "github.com/mcoot/cricle/internal/middleware"
	"github.com/mcoot/cricle/internal/services/player"
	"github.com/mcoot/cricle/internal/services/session"
	"github.com/mcoot/cricle/internal/web/handler"
	"github.com/mcoot/cricle/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	PlayerService     *player.Service
	SessionController *session.Controller
	StaticDir         string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(sharedmw.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))

	gameHandler := handler.NewGameHandler(cfg.SessionController, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Name suggestions need no player
	r.HandleFunc("/autocomplete", gameHandler.Autocomplete).Methods(http.MethodGet)

	// Game routes identify the player, creating one on first visit
	game := r.NewRoute().Subrouter()
	game.Use(middleware.Player(cfg.PlayerService, cfg.Logger))
	game.HandleFunc("/", gameHandler.Page).Methods(http.MethodGet)
	game.HandleFunc("/guess", gameHandler.Guess).Methods(http.MethodPost)

	return r
}
