// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the server needs at startup.
type Config struct {
	Addr          string
	LogLevel      string
	TickRate      int
	SessionIdle   time.Duration
	SweepInterval time.Duration
	RateLimitRPS  int
	RateBurst     int
}

// Load reads .env if present, then the environment, falling back to
// defaults suitable for local play.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}
	return Config{
		Addr:          getEnv("ADDR", ":8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		TickRate:      getEnvInt("TICK_RATE", 60),
		SessionIdle:   getEnvDuration("SESSION_IDLE", 30*time.Minute),
		SweepInterval: getEnvDuration("SWEEP_INTERVAL", time.Minute),
		RateLimitRPS:  getEnvInt("RATE_LIMIT_RPS", 120),
		RateBurst:     getEnvInt("RATE_LIMIT_BURST", 240),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer, using default")
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return fallback
	}
	return d
}
