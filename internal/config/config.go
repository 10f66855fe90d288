package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	SQLite  SQLiteConfig
	Dice    DiceConfig
	DND5E   DND5EConfig
	Session SessionConfig
}

// RedisConfig holds Redis-specific configuration. An empty Addr keeps
// everything in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// SQLiteConfig points at the durable effect log
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH"`
}

// DiceConfig fixes the random roller's sequence. Zero seeds from the clock.
type DiceConfig struct {
	Seed int64 `env:"DICE_SEED" envDefault:"0"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	Enabled     bool          `env:"DND5E_API_ENABLED" envDefault:"false"`
	HTTPTimeout time.Duration `env:"DND5E_HTTP_TIMEOUT" envDefault:"10s"`
}

// SessionConfig holds session service settings
type SessionConfig struct {
	// WorldTTL expires stored worlds and their logs. Zero keeps them forever.
	WorldTTL time.Duration `env:"SESSION_WORLD_TTL" envDefault:"0s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeValidation, "failed to parse environment")
	}

	if cfg.Redis.DB < 0 {
		return nil, apperrors.Validationf("REDIS_DB must not be negative, got %d", cfg.Redis.DB)
	}
	if cfg.DND5E.HTTPTimeout <= 0 {
		return nil, apperrors.Validationf("DND5E_HTTP_TIMEOUT must be positive, got %s", cfg.DND5E.HTTPTimeout)
	}
	if cfg.Session.WorldTTL < 0 {
		return nil, apperrors.Validationf("SESSION_WORLD_TTL must not be negative, got %s", cfg.Session.WorldTTL)
	}

	return cfg, nil
}

// UseRedis reports whether a redis server is configured
func (c *Config) UseRedis() bool {
	return c.Redis.Addr != ""
}

// UseSQLite reports whether the effect log goes to a sqlite file
func (c *Config) UseSQLite() bool {
	return c.SQLite.Path != ""
}
