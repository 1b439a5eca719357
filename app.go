package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shortlink/internal/analytics"
	"shortlink/internal/clicks"
	"shortlink/internal/config"
	"shortlink/internal/handler"
	"shortlink/internal/metrics"
	custommiddleware "shortlink/internal/middleware"
	"shortlink/internal/repository"
	"shortlink/internal/service"
	"shortlink/internal/shortener"
	"shortlink/internal/validation"
)

type store interface {
	service.Repository
	analytics.Store
	clicks.Store
	Close()
}

func openStore(ctx context.Context, cfg *config.Config, recorder *metrics.Recorder, logger *slog.Logger) (store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pg, err := repository.NewPostgresStore(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		recorder.WatchPool(pg.Pool())
		logger.Info("using postgres store",
			slog.String("host", cfg.Database.Host),
			slog.String("db", cfg.Database.DBName))
		return pg, nil
	default:
		logger.Info("using in-memory store")
		return repository.NewMemoryStore(), nil
	}
}

func newServer(cfg *config.Config, st store, recorder *metrics.Recorder, logger *slog.Logger) (*echo.Echo, error) {
	slugs, err := shortener.New(cfg.App.SlugMinLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create shortener: %w", err)
	}

	linkValidator, err := validation.NewLinkValidator(cfg.Validation.MaxURLLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}
	linkService := service.NewLinkService(st, slugs, clicks.NewRecorder(st), recorder, logger)
	aggregator := analytics.NewAggregator(st)

	h := handler.New(linkService, aggregator, linkValidator, logger, recorder)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
	}))
	e.Use(custommiddleware.Metrics(recorder))

	h.Register(e)

	if recorder.Enabled() {
		e.GET(cfg.Metrics.Path, echo.WrapHandler(recorder.Handler()))
	}

	return e, nil
}
