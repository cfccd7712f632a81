package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Session stores
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds everything the binary reads from the environment
type Config struct {
	// Game settings
	Players  int   `env:"SCC_PLAYERS" envDefault:"2"`
	Dice     int   `env:"SCC_DICE" envDefault:"5"`
	MaxRolls int   `env:"SCC_MAX_ROLLS" envDefault:"3"`
	Seed     int64 `env:"SCC_SEED"`

	// Store is memory or redis
	Store      string        `env:"SCC_STORE" envDefault:"memory"`
	SessionTTL time.Duration `env:"SCC_SESSION_TTL" envDefault:"24h"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files, or .env when none are given, and then
// parses the environment. Missing files are skipped; values already in the
// environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values the game engine does not check itself
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("SCC_STORE must be %q or %q, got %q", StoreMemory, StoreRedis, c.Store)
	}

	if c.SessionTTL < 0 {
		return fmt.Errorf("SCC_SESSION_TTL cannot be negative, got %s", c.SessionTTL)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return nil
}

// Level returns the parsed log level, info when it cannot be parsed
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
