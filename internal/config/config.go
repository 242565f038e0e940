package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultIDHost            = "https://id.twitch.tv"
	defaultAPIHost           = "https://api.twitch.tv"
	defaultDebugAddr         = "localhost:8084"
	defaultTokenSyncInterval = time.Minute * 5
)

type Config struct {
	TwitchClientID string
	TwitchSecret   string
	TwitchIDHost   string
	TwitchAPIHost  string

	DebugAddr string
	DBConn    string // optional, token is kept only in memory when empty

	LogLevel          logrus.Level
	TokenSyncInterval time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// .env is optional, real env wins
	_ = godotenv.Load()

	cfg := &Config{
		TwitchClientID:    strings.TrimSpace(os.Getenv("TWITCH_CLIENT_ID")),
		TwitchSecret:      strings.TrimSpace(os.Getenv("TWITCH_SECRET")),
		TwitchIDHost:      getEnv("TWITCH_ID_HOST", defaultIDHost),
		TwitchAPIHost:     getEnv("TWITCH_API_HOST", defaultAPIHost),
		DebugAddr:         getEnv("DEBUG_ADDR", defaultDebugAddr),
		DBConn:            strings.TrimSpace(os.Getenv("DB_CONN")),
		LogLevel:          logrus.InfoLevel,
		TokenSyncInterval: defaultTokenSyncInterval,
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, errors.Wrap(err, "LOG_LEVEL")
		}
		cfg.LogLevel = level
	}

	if interval := os.Getenv("TOKEN_SYNC_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return nil, errors.Wrap(err, "TOKEN_SYNC_INTERVAL")
		}
		cfg.TokenSyncInterval = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.TwitchClientID == "" {
		return errors.New("TWITCH_CLIENT_ID environment variable is required")
	}
	if c.TwitchSecret == "" {
		return errors.New("TWITCH_SECRET environment variable is required")
	}
	if c.TokenSyncInterval < 0 {
		return errors.Errorf("TOKEN_SYNC_INTERVAL must not be negative, got %s", c.TokenSyncInterval)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return strings.TrimSuffix(v, "/")
	}
	return fallback
}
