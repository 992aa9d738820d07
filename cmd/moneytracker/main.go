package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"money-tracker/internal/config"
	"money-tracker/internal/handlers"
	"money-tracker/internal/middleware"
	"money-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	slog.SetDefault(newLogger(cfg.Log))

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid time zone: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)

	if cfg.IsProduction() && cfg.Storage.Backend == config.StorageBackendMemory {
		slog.Warn("Memory storage loses every transaction on restart")
	}

	storage, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.Storage.Backend, err)
	}

	store := services.NewSynchronizedStore(services.NewTransactionStore(
		storage.persistence,
		services.WithMetricsRecorder(metrics),
		services.WithDiagnosticHook(func(operation string, err error) {
			slog.Error("Transaction persistence failed", "operation", operation, "backend", cfg.Storage.Backend, "error", err)
		}),
	))
	store.Initialize()

	if cfg.Seed.Enabled {
		seeded := seedIfEmpty(store, services.NewSampleDataGenerator(uint64(cfg.Seed.Seed)), time.Now().In(loc), cfg.Seed.Months)
		slog.Info("Sample data seeding finished", "added", seeded)
	}

	statistics := services.NewStatisticsService(store, services.StatisticsConfig{
		Location:    loc,
		TrendMonths: cfg.Statistics.TrendMonths,
		RecentLimit: cfg.Statistics.RecentLimit,
		Metrics:     metrics,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	e := newServer(cfg, registry, rateLimiter)
	handlers.RegisterRoutes(e,
		handlers.NewHealthCheckHandler(cfg.Storage.Backend, storage.checker),
		handlers.NewTransactionHandler(store, statistics),
		handlers.NewStatisticsHandler(statistics, loc, cfg.Statistics.TrendMonths),
		handlers.NewCategoryHandler(services.NewCategorySuggester()),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rateLimiter.Run(gctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("Starting server", "address", cfg.Server.Address(), "storage", cfg.Storage.Backend, "environment", cfg.Server.Environment)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server exited with error", "error", err)
	}

	if err := store.Close(); err != nil {
		slog.Error("Failed to close transaction store", "error", err)
	}
	if err := storage.Close(); err != nil {
		slog.Error("Failed to close storage", "error", err)
	}
}

func newServer(cfg *config.Config, registry *prometheus.Registry, rateLimiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(registry).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(rateLimiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return e
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// seedIfEmpty fills an empty store with generated history and returns how many records were added
func seedIfEmpty(store services.TransactionStoreInterface, generator services.SampleDataGeneratorInterface, now time.Time, months int) int {
	if len(store.All()) > 0 {
		return 0
	}

	transactions := generator.GenerateMonths(now, months)
	// Add persists the full collection each time, so seeding cost grows quadratically with the record count.
	slog.Info("Seeding sample data; each record rewrites the stored collection", "records", len(transactions), "months", months)
	for _, transaction := range transactions {
		store.Add(transaction)
	}
	return len(transactions)
}
