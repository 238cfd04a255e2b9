// Package config loads adjuster settings from the environment.
package config

import (
	"cmp"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go-simpler.org/env"

	"github.com/grindlemire/go-notch/internal/cutout"
)

type Config struct {
	Device    string
	RulesFile string
	Cutout    string
	Strict    bool
	DebugFile string
	LogLevel  string
	LogFormat string
}

// environment mirrors Config as read from the environment. Every field is a
// string so that a variable set to an empty value falls back to its default.
type environment struct {
	Device    string `env:"NOTCH_DEVICE"`
	RulesFile string `env:"NOTCH_RULES_FILE"`
	Cutout    string `env:"NOTCH_CUTOUT"`
	Strict    string `env:"NOTCH_STRICT"`
	DebugFile string `env:"NOTCH_DEBUG"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// Load reads a .env file when present, then the process environment.
// Blank values count as unset.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var raw environment
	if err := env.Load(&raw, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := Config{
		Device:    strings.TrimSpace(raw.Device),
		RulesFile: strings.TrimSpace(raw.RulesFile),
		Cutout:    strings.TrimSpace(raw.Cutout),
		DebugFile: strings.TrimSpace(raw.DebugFile),
		LogLevel:  cmp.Or(strings.TrimSpace(raw.LogLevel), "info"),
		LogFormat: cmp.Or(strings.TrimSpace(raw.LogFormat), "text"),
	}
	if v := strings.TrimSpace(raw.Strict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("NOTCH_STRICT must be a boolean: %w", err)
		}
		cfg.Strict = strict
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.Cutout != "" {
		if _, err := cutout.ParseRect(cfg.Cutout); err != nil {
			return fmt.Errorf("NOTCH_CUTOUT: %w", err)
		}
	}
	return nil
}

// CutoutProvider returns the provider described by NOTCH_CUTOUT.
func (c *Config) CutoutProvider() (cutout.Provider, error) {
	return cutout.FromString(c.Cutout)
}
