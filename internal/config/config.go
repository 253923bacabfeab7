package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/JKGam3r/CoinsInALine/internal/logger"

	"github.com/joho/godotenv"
)

const (
	// NumCoins is the fixed board size; it must stay even so both sides
	// claim the same number of coins.
	NumCoins = 10

	MinDifficulty     = 0
	MaxDifficulty     = 9
	DefaultDifficulty = 5
)

type Config struct {
	// Difficulty used when CUSTOM mode input is not a digit
	DefaultDifficulty int
	// RNG seed (0 => time-based)
	Seed int64
	// ANSI colours in the console renderer
	Color bool

	LogLevel    string
	LogJSON     bool
	MetricsDump bool
}

// Load reads the configuration from the environment (and an optional .env file).
func Load() *Config {
	_ = godotenv.Load()

	difficulty := DefaultDifficulty
	if v := os.Getenv("COINLINE_DIFFICULTY_DEFAULT"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			difficulty = ClampDifficulty(n)
		} else {
			logger.Warn("ignoring invalid COINLINE_DIFFICULTY_DEFAULT", "value", v)
		}
	}

	var seed int64
	if v := os.Getenv("COINLINE_SEED"); v != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			seed = n
		} else {
			logger.Warn("ignoring invalid COINLINE_SEED", "value", v)
		}
	}

	color := true
	if v := os.Getenv("COINLINE_COLOR"); v != "" {
		color = parseBool(v, true)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}

	return &Config{
		DefaultDifficulty: difficulty,
		Seed:              seed,
		Color:             color,
		LogLevel:          logLevel,
		LogJSON:           parseBool(os.Getenv("LOG_JSON"), false),
		MetricsDump:       parseBool(os.Getenv("COINLINE_METRICS_DUMP"), false),
	}
}

// ClampDifficulty forces d into [MinDifficulty, MaxDifficulty].
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

func parseBool(v string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}
