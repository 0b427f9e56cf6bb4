package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"
	_ "time/tzdata" // zone database for minimal containers

	"github.com/mcoot/cricle/internal/dependencies/clock"
	"github.com/mcoot/cricle/internal/dependencies/random"
	"github.com/mcoot/cricle/internal/services/daily"
	"github.com/mcoot/cricle/internal/services/dataset"
	"github.com/mcoot/cricle/internal/services/player"
	"github.com/mcoot/cricle/internal/services/session"
	"github.com/mcoot/cricle/internal/storage"
	"github.com/mcoot/cricle/internal/storage/memory"
	redisstorage "github.com/mcoot/cricle/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Game data
	Dataset  *dataset.Dataset
	Selector *daily.Selector
	// DataErr is set when the dataset could not be loaded. The app still
	// runs; every game request reports the data as unavailable.
	DataErr error

	// Services
	PlayerService     *player.Service
	SessionController *session.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// DataPath is the path to the cricketer dataset (optional)
	// Ignored when Dataset is set
	DataPath string
	// Dataset is a preloaded dataset (optional)
	Dataset *dataset.Dataset
	// Location is the reference timezone for the daily game
	// If nil, defaults to Asia/Kolkata
	Location *time.Location
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	loc := cfg.Location
	if loc == nil {
		var err error
		loc, err = time.LoadLocation(daily.DefaultTimezone)
		if err != nil {
			return nil, err
		}
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Load game data; a missing or broken file is not fatal
	data := cfg.Dataset
	var dataErr error
	if data == nil {
		data, dataErr = dataset.Load(ctx, cfg.DataPath, logger)
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	app := newWithDependencies(store, clk, rnd, data, loc, logger)
	app.DataErr = dataErr
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	data *dataset.Dataset,
	loc *time.Location,
	logger *slog.Logger,
) *App {
	// Create services
	selector := daily.New(clk, loc)
	playerService := player.New(store, clk, rnd, logger)
	sessionController := session.NewController(store, data, selector, clk, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Dataset:           data,
		Selector:          selector,
		PlayerService:     playerService,
		SessionController: sessionController,
	}
}

// Close releases storage resources
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
