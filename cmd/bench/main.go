package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shortlink/internal/loadtest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadtest.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var slugs []string
	if cfg.BenchType != loadtest.TypeCreate {
		client := loadtest.NewHTTPClient(cfg.SeedConcurrency, cfg.SeedTimeout, cfg.InsecureSkipVerify)
		slugs, err = loadtest.Seed(ctx, client, cfg.BaseURL, cfg.SeedCount, cfg.SeedConcurrency, os.Stdout)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return loadtest.Attack(cfg, slugs, os.Stdout)
}
