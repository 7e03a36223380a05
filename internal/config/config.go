// Package config loads runtime settings from the environment, after reading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/campusnav/core/internal/navigator"
	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "5000"
	DefaultAllowedOrigin  = "*"
	DefaultRequestTimeout = 5 * time.Second
)

type Config struct {
	Port           string
	AllowedOrigin  string
	CampusFile     string
	Validation     navigator.Validation
	RequestTimeout time.Duration
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads envFiles (or .env when none are given) and then the process
// environment. Missing env files are ignored; variables already set in the
// environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", DefaultPort),
		AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", DefaultAllowedOrigin),
		CampusFile:    os.Getenv("CAMPUSNAV_CAMPUS_FILE"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	validation, err := navigator.ParseValidation(os.Getenv("CAMPUSNAV_VALIDATION"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CAMPUSNAV_VALIDATION: %w", err)
	}
	cfg.Validation = validation

	cfg.RequestTimeout = DefaultRequestTimeout
	if raw := os.Getenv("CAMPUSNAV_REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CAMPUSNAV_REQUEST_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid CAMPUSNAV_REQUEST_TIMEOUT %q: must be positive", raw)
		}
		cfg.RequestTimeout = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
