package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Run modes selected by Config.Mode.
const (
	ModeMenu  = "menu"
	ModeServe = "serve"
)

// Config captures the settings of the reservation engine process.
type Config struct {
	HTTPPort            int           `toml:"http_port"`
	Mode                string        `toml:"mode"`
	LogLevel            string        `toml:"log_level"`
	LogFormat           string        `toml:"log_format"`
	SeedDemoData        bool          `toml:"seed_demo_data"`
	DefaultSearchWindow int           `toml:"default_search_window"`
	AdminTokenHash      string        `toml:"admin_token_hash"`
	ShutdownTimeout     time.Duration `toml:"shutdown_timeout"`
	Metrics             MetricsConfig `toml:"metrics"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		HTTPPort:            8080,
		Mode:                ModeMenu,
		LogLevel:            "info",
		LogFormat:           "json",
		DefaultSearchWindow: 7,
		ShutdownTimeout:     10 * time.Second,
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      "/metrics",
			Namespace: "hotel",
		},
	}
}

// Load applies defaults, then the TOML file at path when it exists, then
// HOTEL_* environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	missing := make([]string, 0, 1)
	invalid := make([]string, 0, 4)

	if portValue := env("HOTEL_HTTP_PORT"); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil {
			invalid = append(invalid, "HOTEL_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if mode := env("HOTEL_MODE"); mode != "" {
		cfg.Mode = strings.ToLower(mode)
	}
	if level := env("HOTEL_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := env("HOTEL_LOG_FORMAT"); format != "" {
		cfg.LogFormat = strings.ToLower(format)
	}

	if seedValue := env("HOTEL_SEED_DEMO_DATA"); seedValue != "" {
		seed, err := strconv.ParseBool(seedValue)
		if err != nil {
			invalid = append(invalid, "HOTEL_SEED_DEMO_DATA")
		} else {
			cfg.SeedDemoData = seed
		}
	}

	if windowValue := env("HOTEL_DEFAULT_SEARCH_WINDOW"); windowValue != "" {
		window, err := strconv.Atoi(windowValue)
		if err != nil {
			invalid = append(invalid, "HOTEL_DEFAULT_SEARCH_WINDOW")
		} else {
			cfg.DefaultSearchWindow = window
		}
	}

	if hash := env("HOTEL_ADMIN_TOKEN_HASH"); hash != "" {
		cfg.AdminTokenHash = hash
	}

	if timeoutValue := env("HOTEL_SHUTDOWN_TIMEOUT"); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil {
			invalid = append(invalid, "HOTEL_SHUTDOWN_TIMEOUT")
		} else {
			cfg.ShutdownTimeout = timeout
		}
	}

	if enabledValue := env("HOTEL_METRICS_ENABLED"); enabledValue != "" {
		enabled, err := strconv.ParseBool(enabledValue)
		if err != nil {
			invalid = append(invalid, "HOTEL_METRICS_ENABLED")
		} else {
			cfg.Metrics.Enabled = enabled
		}
	}
	if metricsPath := env("HOTEL_METRICS_PATH"); metricsPath != "" {
		cfg.Metrics.Path = metricsPath
	}

	cfgMissing, cfgInvalid := cfg.problems()
	missing = append(missing, cfgMissing...)
	invalid = append(invalid, cfgInvalid...)

	if err := settingsError(missing, invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a configuration assembled or modified outside Load, such as
// after a command line mode override.
func (c Config) Validate() error {
	return settingsError(c.problems())
}

func (c Config) problems() (missing, invalid []string) {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		invalid = append(invalid, "http_port")
	}
	if c.Mode != ModeMenu && c.Mode != ModeServe {
		invalid = append(invalid, "mode")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		invalid = append(invalid, "log_format")
	}
	if c.DefaultSearchWindow < 1 || c.DefaultSearchWindow > 365 {
		invalid = append(invalid, "default_search_window")
	}
	if c.ShutdownTimeout <= 0 {
		invalid = append(invalid, "shutdown_timeout")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		invalid = append(invalid, "metrics.path")
	}
	if c.Mode == ModeServe && strings.TrimSpace(c.AdminTokenHash) == "" {
		missing = append(missing, "HOTEL_ADMIN_TOKEN_HASH")
	}
	return missing, invalid
}

func settingsError(missing, invalid []string) error {
	if len(missing) > 0 {
		return fmt.Errorf("required settings are missing: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return fmt.Errorf("settings have invalid values: %s", strings.Join(invalid, ", "))
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
