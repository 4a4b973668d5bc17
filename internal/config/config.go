package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig aggregates runtime settings, injected via environment variables
// so nothing is hardcoded in the driver.
type AppConfig struct {
	HTTPAddr string
	DBPath   string

	// Simulation run length and RNG seed. A fixed seed reproduces a run exactly.
	Days int
	Seed int64

	// Pacing between simulated days. Presentation only, the engine never sleeps.
	DayDelay time.Duration

	// Date the simulation starts on, midnight UTC.
	StartDate time.Time
}

// Load reads and validates configuration, falling back to defaults.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		DBPath:    getEnv("DB_PATH", "file::memory:?cache=shared"),
		Days:      8,
		Seed:      time.Now().UnixNano(),
		DayDelay:  0,
		StartDate: time.Now().UTC().Truncate(24 * time.Hour),
	}

	days, err := getEnvInt("SIM_DAYS", cfg.Days)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid SIM_DAYS: %w", err)
	}
	if days <= 0 {
		return AppConfig{}, fmt.Errorf("SIM_DAYS must be > 0")
	}
	cfg.Days = days

	if raw := strings.TrimSpace(os.Getenv("SIM_SEED")); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return AppConfig{}, fmt.Errorf("invalid SIM_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	delayMS, err := getEnvInt("SIM_DAY_DELAY_MS", 0)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid SIM_DAY_DELAY_MS: %w", err)
	}
	if delayMS < 0 {
		return AppConfig{}, fmt.Errorf("SIM_DAY_DELAY_MS must be >= 0")
	}
	cfg.DayDelay = time.Duration(delayMS) * time.Millisecond

	if raw := strings.TrimSpace(os.Getenv("SIM_START_DATE")); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return AppConfig{}, fmt.Errorf("invalid SIM_START_DATE (want YYYY-MM-DD): %w", err)
		}
		cfg.StartDate = start
	}

	return cfg, nil
}

// getEnv reads a string variable, returning the fallback when unset or blank.
func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// getEnvInt reads an integer variable, returning the fallback when unset.
func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
