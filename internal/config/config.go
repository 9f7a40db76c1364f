// Package config reads the command-line tool's settings from the environment,
// optionally seeded from an env file.
package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Load reads the env file named by LVBAYES_ENV (or .env by default).
// A missing file is not an error; variables already set in the process
// environment take precedence over the file.
func Load() error {
	envFile := os.Getenv("LVBAYES_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Load(envFile)

	return nil
}

// Iterations returns the default belief-propagation iteration count.
// Defaults to 10.
func Iterations() int {
	return intEnv("LVBAYES_ITERATIONS", 10)
}

// Samples returns the default number of recorded Gibbs steps.
// Defaults to 10000.
func Samples() int {
	return intEnv("LVBAYES_SAMPLES", 10000)
}

// Burnin returns the default number of discarded Gibbs steps.
// Defaults to 1000.
func Burnin() int {
	return intEnv("LVBAYES_BURNIN", 1000)
}

// Seed returns the default random seed. Defaults to 1.
func Seed() uint64 {
	s, err := strconv.ParseUint(os.Getenv("LVBAYES_SEED"), 10, 64)
	if err != nil {
		return 1
	}
	return s
}

// LogFloor returns the log-weight used for zero table entries.
// Defaults to -1e6; values that are not finite and negative fall back to it.
func LogFloor() float64 {
	f, err := strconv.ParseFloat(os.Getenv("LVBAYES_LOG_FLOOR"), 64)
	if err != nil || !(f < 0) || math.IsInf(f, -1) {
		return -1e6
	}
	return f
}

// LogLevel returns the configured zap level.
// Defaults to info. Valid values: debug, info, warn, error.
func LogLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(os.Getenv("LVBAYES_LOG_LEVEL")))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func intEnv(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return n
}
