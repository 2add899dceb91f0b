// Package config holds the server settings and their environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidConfig indicates a setting that could not be parsed.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// Addr is the listen address passed to fiber.
	Addr string
	// AllowedOrigin is the browser origin allowed by CORS and the websocket
	// upgrade.
	AllowedOrigin string
	// OpponentDelay is how long the automated side "thinks" before moving.
	OpponentDelay time.Duration
	// DataDir is the badger directory; empty keeps games in memory.
	DataDir string
	// Seed seeds the opponents' random sources; 0 derives one from the clock.
	Seed uint64
}

func Default() Config {
	return Config{
		Addr:          ":3000",
		AllowedOrigin: "http://localhost:5173",
		OpponentDelay: 350 * time.Millisecond,
	}
}

// Load returns the defaults overridden by QUICKCHESS_* environment variables.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("QUICKCHESS_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("QUICKCHESS_ALLOWED_ORIGIN"); ok && v != "" {
		cfg.AllowedOrigin = v
	}
	if v, ok := lookup("QUICKCHESS_OPPONENT_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return cfg, fmt.Errorf("%w: QUICKCHESS_OPPONENT_DELAY=%q", ErrInvalidConfig, v)
		}
		cfg.OpponentDelay = d
	}
	if v, ok := lookup("QUICKCHESS_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := lookup("QUICKCHESS_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: QUICKCHESS_SEED=%q", ErrInvalidConfig, v)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}
