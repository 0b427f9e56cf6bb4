package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cricle/internal/api/handler"
	"github.com/mcoot/cricle/internal/api/middleware"
	sharedmw "github.com/mcoot/cricle/internal/middleware"
	"github.com/mcoot/cricle/internal/services/player"
	"github.com/mcoot/cricle/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	PlayerService     *player.Service
	SessionController *session.Controller
	// Pinger is checked by the health endpoint (optional)
	Pinger handler.Pinger
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	gameHandler := handler.NewGameHandler(cfg.SessionController)
	namesHandler := handler.NewNamesHandler(cfg.SessionController.Dataset())
	healthHandler := handler.NewHealthHandler(cfg.SessionController.Dataset(), cfg.Pinger)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.PlayerService)
	loggingMiddleware := sharedmw.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(loggingMiddleware)
	api.Use(recoveryMiddleware)

	// Public routes
	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/names", namesHandler.List).Methods(http.MethodGet)

	// Game routes (all require a player)
	game := api.PathPrefix("/game").Subrouter()
	game.Use(authMiddleware)
	game.HandleFunc("", gameHandler.Get).Methods(http.MethodGet)
	game.HandleFunc("/guess", gameHandler.Guess).Methods(http.MethodPost)

	return r
}
