package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CRICLE_SERVER_PORT
const EnvPrefix = "CRICLE"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds all configuration for the cricle server
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Game    GameConfig    `mapstructure:"game"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

// GameConfig holds settings for the daily game
type GameConfig struct {
	DataPath string `mapstructure:"data_path"`
	Timezone string `mapstructure:"timezone"`
}

// StorageConfig selects and configures the session backend
type StorageConfig struct {
	Type       string        `mapstructure:"type"`
	RedisURL   string        `mapstructure:"redis_url"`
	PlayerTTL  time.Duration `mapstructure:"player_ttl"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command line flags to their config keys
var flagKeys = map[string]string{
	"config":      "config",
	"host":        "server.host",
	"port":        "server.port",
	"static-dir":  "server.static_dir",
	"data":        "game.data_path",
	"timezone":    "game.timezone",
	"storage":     "storage.type",
	"redis-url":   "storage.redis_url",
	"player-ttl":  "storage.player_ttl",
	"session-ttl": "storage.session_ttl",
	"log-level":   "logging.level",
	"log-format":  "logging.format",
}

// New returns a viper instance with defaults and environment binding applied
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_dir", "")

	v.SetDefault("game.data_path", "data/cricketers.json")
	v.SetDefault("game.timezone", "Asia/Kolkata")

	v.SetDefault("storage.type", StorageMemory)
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.player_ttl", 30*24*time.Hour)
	v.SetDefault("storage.session_ttl", 48*time.Hour)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags adds the server flags to fs. Flags override env and file values
// once bound with BindFlags.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (env: CRICLE_CONFIG)")
	fs.String("host", "0.0.0.0", "address to bind to (env: CRICLE_SERVER_HOST)")
	fs.IntP("port", "p", 8080, "port to listen on (env: CRICLE_SERVER_PORT)")
	fs.String("static-dir", "", "directory of static assets to serve under /static/ (env: CRICLE_SERVER_STATIC_DIR)")
	fs.String("data", "data/cricketers.json", "path to the cricketer dataset (env: CRICLE_GAME_DATA_PATH)")
	fs.String("timezone", "Asia/Kolkata", "IANA timezone that decides when the daily game rolls over (env: CRICLE_GAME_TIMEZONE)")
	fs.String("storage", StorageMemory, "session storage backend: memory or redis (env: CRICLE_STORAGE_TYPE)")
	fs.String("redis-url", "", "redis connection URL (env: CRICLE_STORAGE_REDIS_URL)")
	fs.Duration("player-ttl", 30*24*time.Hour, "how long idle players are kept in redis (env: CRICLE_STORAGE_PLAYER_TTL)")
	fs.Duration("session-ttl", 48*time.Hour, "how long game sessions are kept in redis (env: CRICLE_STORAGE_SESSION_TTL)")
	fs.String("log-level", "info", "log level: debug, info, warn or error (env: CRICLE_LOGGING_LEVEL)")
	fs.String("log-format", "json", "log format: json or text (env: CRICLE_LOGGING_FORMAT)")
}

// BindFlags binds the flags registered by RegisterFlags to their config keys
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads an optional config file then unmarshals and validates the result.
// An empty path searches for cricle.yaml in the working directory.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cricle")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required fields are set and consistent
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Game.DataPath == "" {
		return errors.New("game.data_path must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	switch c.Storage.Type {
	case StorageMemory:
	case StorageRedis:
		if c.Storage.RedisURL == "" {
			return errors.New("storage.redis_url is required when storage.type is redis")
		}
		if c.Storage.PlayerTTL < 0 || c.Storage.SessionTTL < 0 {
			return errors.New("storage TTLs must be >= 0")
		}
	default:
		return fmt.Errorf("storage.type must be %q or %q, got %q", StorageMemory, StorageRedis, c.Storage.Type)
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Location resolves the game timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Game.Timezone)
	if err != nil {
		return nil, fmt.Errorf("game.timezone %q: %w", c.Game.Timezone, err)
	}
	return loc, nil
}

// NewLogger builds the application logger writing to w
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if l.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("logging.level %q: %w", s, err)
	}
	return level, nil
}
