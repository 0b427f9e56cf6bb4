package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/cricle/internal/api"
	"github.com/mcoot/cricle/internal/api/handler"
	"github.com/mcoot/cricle/internal/config"
	"github.com/mcoot/cricle/internal/factory"
	redisstorage "github.com/mcoot/cricle/internal/storage/redis"
	"github.com/mcoot/cricle/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "cricle-server",
		Short: "Serve the cricle daily cricketer game",
		Long: `Serves the cricle web game and its JSON API.

Settings are read from flags, CRICLE_* environment variables and an optional
cricle.yaml, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, "")
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := cfg.Logging.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	factoryCfg := factory.Config{
		DataPath:    cfg.Game.DataPath,
		Location:    loc,
		Logger:      logger,
		StorageType: cfg.Storage.Type,
	}

	// Configure Redis if storage type is redis
	if cfg.Storage.Type == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.PlayerTTL = cfg.Storage.PlayerTTL
		redisCfg.SessionTTL = cfg.Storage.SessionTTL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("closing storage", slog.String("error", err.Error()))
		}
	}()

	if app.DataErr != nil {
		logger.Warn("cricketer data unavailable, games will report an error",
			slog.String("path", cfg.Game.DataPath),
			slog.String("error", app.DataErr.Error()),
		)
	}

	// Redis health is part of the health check
	var pinger handler.Pinger
	if p, ok := app.Storage.(handler.Pinger); ok {
		pinger = p
	}

	staticDir := cfg.Server.StaticDir
	if staticDir == "" {
		staticDir = findStaticDir()
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		PlayerService:     app.PlayerService,
		SessionController: app.SessionController,
		Pinger:            pinger,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:            logger,
		PlayerService:     app.PlayerService,
		SessionController: app.SessionController,
		StaticDir:         staticDir,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port

	logger.Info("starting server",
		slog.String("addr", cfg.Addr()),
		slog.String("storage", cfg.Storage.Type),
		slog.String("timezone", loc.String()),
		slog.Int("cricketers", app.Dataset.Size()),
	)

	return api.NewServer(mux, serverConfig, logger).Run(ctx)
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	// Try common locations
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	// Default to relative path
	return "internal/web/static"
}
