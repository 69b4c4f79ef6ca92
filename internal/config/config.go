package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything read from the environment at startup.
// Values are loaded once in main; nothing re-reads the environment later.
type Config struct {
	Port        string
	DetectorURL string
	DetectorKey string
	DatabaseURL string // empty means in-memory stores

	// Reporting
	ReportTimezone *time.Location
	TaxRate        float64

	// Cap on concurrent per-prediction crop/lookup work
	CropWorkers int
}

func Load() (*Config, error) {
	loc, err := time.LoadLocation(getEnv("REPORT_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE: %w", err)
	}

	taxRate, err := getEnvFloat("TAX_RATE", 0.06)
	if err != nil {
		return nil, err
	}

	workers, err := getEnvInt("CROP_WORKERS", 8)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("CROP_WORKERS must be positive, got %d", workers)
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DetectorURL:    os.Getenv("DETECTOR_URL"),
		DetectorKey:    os.Getenv("DETECTOR_KEY"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ReportTimezone: loc,
		TaxRate:        taxRate,
		CropWorkers:    workers,
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
