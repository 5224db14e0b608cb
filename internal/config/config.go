package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL       string  `yaml:"base_url"` // override for the provider endpoint
		DefaultSymbol string  `yaml:"default_symbol"`
		UseMock       bool    `yaml:"use_mock"`
		MockPrice     float64 `yaml:"mock_price"`
	} `yaml:"data_source"`
	Display struct {
		Timezone        string `yaml:"timezone"`
		Reference       string `yaml:"reference"` // "close" or "open"
		IndicatorWindow int    `yaml:"indicator_window"`
	} `yaml:"display"`
	Watchlist []string `yaml:"watchlist"`
	Proxy     string   `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DEFAULT_SYMBOL"); v != "" {
		cfg.DataSource.DefaultSymbol = v
	}
	if v := os.Getenv("DISPLAY_TIMEZONE"); v != "" {
		cfg.Display.Timezone = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist = splitSymbols(v)
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("USE_MOCK_DATA"); v == "true" {
		cfg.DataSource.UseMock = true
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.DataSource.DefaultSymbol == "" {
		cfg.DataSource.DefaultSymbol = "ADBE"
	}
	if cfg.DataSource.MockPrice == 0 {
		cfg.DataSource.MockPrice = 500
	}
	if cfg.Display.Timezone == "" {
		cfg.Display.Timezone = "America/New_York"
	}
	if cfg.Display.Reference == "" {
		cfg.Display.Reference = "close"
	}
	if cfg.Display.IndicatorWindow == 0 {
		cfg.Display.IndicatorWindow = 20
	}
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []string{"AAPL", "GOOGL", "AMZN", "MSFT"}
	}

	return cfg, nil
}

// Validate checks that all required fields are coherent.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Display.IndicatorWindow <= 0 {
		return fmt.Errorf("display.indicator_window must be positive")
	}
	if c.Display.Reference != "close" && c.Display.Reference != "open" {
		return fmt.Errorf("display.reference must be \"close\" or \"open\"")
	}
	for _, sym := range c.Watchlist {
		if strings.TrimSpace(sym) == "" {
			return fmt.Errorf("watchlist entries must be non-empty symbols")
		}
	}
	return nil
}

func splitSymbols(v string) []string {
	parts := strings.Split(v, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
