package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockBoard/internal/calculator"
	"StockBoard/internal/collector"
	"StockBoard/internal/config"
	"StockBoard/internal/normalize"
	"StockBoard/internal/pipeline"
	"StockBoard/internal/telemetry"
	"StockBoard/internal/web"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockBoard starting...")

	// Load .env if present, then config
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.UseMock {
		fetcher = &collector.MockFetcher{Price: cfg.DataSource.MockPrice}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Display timezone
	zone, err := normalize.LoadZone(cfg.Display.Timezone)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	log.Printf("[INFO] display timezone: %s", zone)

	// Metrics and pipeline
	metrics := telemetry.NewMetrics()
	runner := pipeline.NewRunner(fetcher, zone, cfg.Display.IndicatorWindow, metrics)

	// HTTP boundary
	srv := web.NewServer(cfg.Server.Addr, runner, metrics,
		cfg.Watchlist, cfg.DataSource.DefaultSymbol,
		calculator.ReferenceMode(cfg.Display.Reference))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	log.Println("[INFO] StockBoard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("[INFO] shutdown signal received: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	log.Println("[INFO] StockBoard stopped")
}
