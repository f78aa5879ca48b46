// Package config reads witchertrack settings from the environment.
package config

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Config holds the settings a session starts with. Command-line flags
// override these after Load.
type Config struct {
	Environment string
	LogLevel    zapcore.Level
	LogFile     string
	Lore        string
	Prompt      string
}

// Load reads the environment, falling back to defaults.
func Load() *Config {
	return &Config{
		Environment: getEnv("WITCHER_ENV", "production"),
		LogLevel:    parseLogLevel(getEnv("WITCHER_LOG_LEVEL", "warn")),
		LogFile:     os.Getenv("WITCHER_LOG_FILE"),
		Lore:        os.Getenv("WITCHER_LORE"),
		Prompt:      getEnvRaw("WITCHER_PROMPT", ">> "),
	}
}

// Development reports whether logs should use the console encoder.
func (c *Config) Development() bool {
	return strings.EqualFold(c.Environment, "development")
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRaw is getEnv for values where a set-but-empty variable is
// meaningful, such as an empty prompt.
func getEnvRaw(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
