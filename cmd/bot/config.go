package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Snapshot backends
const (
	backendRedis  = "redis"
	backendSQLite = "sqlite"
)

// config is read from the environment, optionally seeded from a .env file
type config struct {
	DiscordToken      string   `env:"DISCORD_TOKEN,required"`
	ApplicationID     string   `env:"APPLICATION_ID"`
	GuildID           string   `env:"GUILD_ID"`
	AdminIDs          []string `env:"ADMIN_IDS" envSeparator:","`
	AnnounceChannelID string   `env:"ANNOUNCE_CHANNEL_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SnapshotBackend   string        `env:"SNAPSHOT_BACKEND" envDefault:"redis"`
	SnapshotNamespace string        `env:"SNAPSHOT_NAMESPACE" envDefault:"default"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"strike.db"`
	SnapshotInterval  time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"1m"`

	HistoryLimit  int           `env:"HISTORY_LIMIT" envDefault:"0"`
	HistoryMaxAge time.Duration `env:"HISTORY_MAX_AGE" envDefault:"24h"`
	PrizeCount    int           `env:"PRIZE_COUNT" envDefault:"5"`
	Timezone      string        `env:"TIMEZONE" envDefault:"Local"`
}

// loadConfig reads .env when present, then the process environment
func loadConfig() (*config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}

	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (*config, error) {
	cfg := &config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	switch cfg.SnapshotBackend {
	case backendRedis, backendSQLite:
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}

	if cfg.PrizeCount < 0 {
		return nil, fmt.Errorf("prize count cannot be negative: %d", cfg.PrizeCount)
	}

	if cfg.HistoryLimit < 0 {
		return nil, fmt.Errorf("history limit cannot be negative: %d", cfg.HistoryLimit)
	}

	if _, err := cfg.location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// location returns the time zone round windows are read in
func (c *config) location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
