package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.DataSource.DefaultSymbol != "ADBE" {
		t.Errorf("expected default symbol ADBE, got %s", cfg.DataSource.DefaultSymbol)
	}
	if cfg.Display.Timezone != "America/New_York" {
		t.Errorf("expected default timezone, got %s", cfg.Display.Timezone)
	}
	if cfg.Display.IndicatorWindow != 20 {
		t.Errorf("expected window 20, got %d", cfg.Display.IndicatorWindow)
	}
	if len(cfg.Watchlist) == 0 {
		t.Error("expected a default watchlist")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  addr: \":9000\"\ndisplay:\n  reference: open\nwatchlist: [SPY]\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WATCHLIST", "AAPL, MSFT ,")
	t.Setenv("DEFAULT_SYMBOL", "NVDA")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected addr from file, got %s", cfg.Server.Addr)
	}
	if cfg.Display.Reference != "open" {
		t.Errorf("expected reference open, got %s", cfg.Display.Reference)
	}
	if cfg.DataSource.DefaultSymbol != "NVDA" {
		t.Errorf("env override lost: %s", cfg.DataSource.DefaultSymbol)
	}
	if len(cfg.Watchlist) != 2 || cfg.Watchlist[0] != "AAPL" || cfg.Watchlist[1] != "MSFT" {
		t.Errorf("unexpected watchlist: %v", cfg.Watchlist)
	}
}

func TestValidate_BadReference(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Display.Reference = "midpoint"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad reference mode")
	}
}
