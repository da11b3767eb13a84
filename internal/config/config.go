package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds process-wide settings. Command-line flags override it.
type Config struct {
	LogLevel slog.Level
	Color    bool
	Metrics  bool
}

// Load reads the configuration from the environment.
//
//	TODO_LOG_LEVEL  debug|info|warn|error (default warn)
//	TODO_COLOR      enable coloured output (default true)
//	NO_COLOR        any non-empty value disables colour
//	TODO_METRICS    dump metrics to stderr on exit (default false)
func Load() Config {
	return Config{
		LogLevel: ParseLevel(getEnv("TODO_LOG_LEVEL", "warn")),
		Color:    getEnvBool("TODO_COLOR", true) && os.Getenv("NO_COLOR") == "",
		Metrics:  getEnvBool("TODO_METRICS", false),
	}
}

// ParseLevel maps a level name to a slog.Level, falling back to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns environment variable as bool or default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
