package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
)

// Config keeps runtime settings for both binaries. Values come from the
// environment; a local .env file is loaded by main before parsing.
type Config struct {
	TelegramToken     string `env:"TELEGRAM_BOT_TOKEN"`
	DatabaseURL       string `env:"DATABASE_URL,required,notEmpty"`
	Port              int    `env:"PORT" envDefault:"3000"`
	DashboardUser     string `env:"DASHBOARD_USER" envDefault:"pareja"`
	DashboardPassword string `env:"DASHBOARD_PASSWORD"`
	DailySummaryTime  string `env:"DAILY_SUMMARY_TIME" envDefault:"08:00"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"10"`
	Timezone          string `env:"TZ" envDefault:"America/Bogota"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.SessionTTLMinutes <= 0 {
		return cfg, fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", cfg.SessionTTLMinutes)
	}
	return cfg, nil
}

// SessionTTL is the conversation expiry as a duration.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Location resolves the configured timezone, falling back to UTC when the
// name is unknown on this system.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
