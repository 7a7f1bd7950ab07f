// Package config loads tgmarkup settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL     = "https://api.telegram.org"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultLogLevel   = "info"
)

var (
	ErrMissingToken  = errors.New("config: TGMARKUP_BOT_TOKEN is not set")
	ErrMissingChatID = errors.New("config: TGMARKUP_CHAT_ID is not set")
)

// Config holds the settings used by the CLI.
type Config struct {
	BotToken   string
	ChatID     int64
	APIURL     string
	Timeout    time.Duration
	MaxRetries int
	LogLevel   string
}

// Load reads the environment into a Config. When envPath is non-empty the
// file is loaded first; variables already set in the process win. A missing
// file is logged and ignored.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config: load %s: %w", envPath, err)
			}
			slog.Debug("env file not found, using environment", "component", "config", "path", envPath)
		}
	}

	cfg := &Config{
		BotToken:   getEnv("TGMARKUP_BOT_TOKEN", ""),
		ChatID:     getEnvInt64("TGMARKUP_CHAT_ID", 0),
		APIURL:     strings.TrimSuffix(getEnv("TGMARKUP_API_URL", DefaultAPIURL), "/"),
		Timeout:    getEnvDuration("TGMARKUP_TIMEOUT", DefaultTimeout),
		MaxRetries: getEnvInt("TGMARKUP_MAX_RETRIES", DefaultMaxRetries),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return cfg, nil
}

// ValidateSend checks the settings required to deliver a message.
func (c *Config) ValidateSend() error {
	var errs []error
	if c.BotToken == "" {
		errs = append(errs, ErrMissingToken)
	}
	if c.ChatID == 0 {
		errs = append(errs, ErrMissingChatID)
	}
	return errors.Join(errs...)
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
