package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Backend   BackendConfig
	Reporting ReportingConfig
	Console   ConsoleConfig
}

// BackendConfig holds connection options for the cloth shop REST backend.
// The API client is always constructed from these values explicitly; there
// is no ambient base URL anywhere else.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ReportingConfig holds report sizing and scheduler settings.
type ReportingConfig struct {
	CronSchedule  string
	Timezone      string
	DashboardTopN int
	ReportTopN    int
}

// ConsoleConfig holds interactive console options.
type ConsoleConfig struct {
	Debug bool
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	timeout, err := getenvSeconds("CLOTHSHOP_API_TIMEOUT", 15)
	if err != nil {
		return nil, err
	}

	dashboardTopN, err := getenvInt("DASHBOARD_TOP_N", 5)
	if err != nil {
		return nil, err
	}

	reportTopN, err := getenvInt("REPORT_TOP_N", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Backend: BackendConfig{
			BaseURL: getenvWithDefault("CLOTHSHOP_API_URL", "http://127.0.0.1:8000"),
			Timeout: timeout,
		},
		Reporting: ReportingConfig{
			CronSchedule:  getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * *"),
			Timezone:      getenvWithDefault("TIMEZONE", "Asia/Karachi"),
			DashboardTopN: dashboardTopN,
			ReportTopN:    reportTopN,
		},
		Console: ConsoleConfig{
			Debug: os.Getenv("CLOTHSHOP_DEBUG") == "true",
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and sane.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Backend.BaseURL == "" {
		return errors.New("CLOTHSHOP_API_URL must be provided")
	}

	if c.Backend.Timeout <= 0 {
		return errors.New("CLOTHSHOP_API_TIMEOUT must be positive")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}

	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.Reporting.DashboardTopN <= 0 || c.Reporting.ReportTopN <= 0 {
		return errors.New("top-N sizes must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getenvSeconds(key string, fallback int) (time.Duration, error) {
	n, err := getenvInt(key, fallback)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}
