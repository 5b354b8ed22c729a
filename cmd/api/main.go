package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"customer-insights-service/internal/bootstrap"
	"customer-insights-service/internal/config"
	insightsHttp "customer-insights-service/internal/insights/adapters/http/fiber"
	insightsUsecase "customer-insights-service/internal/insights/core/usecase"
	"customer-insights-service/internal/platform/logging"
	"customer-insights-service/internal/platform/telemetry"

	_ "customer-insights-service/docs"
)

// @title Customer Insights API
// @version 1.0
// @description Filtered views and aggregates over the customer dataset.
// @host localhost:8080
// @BasePath /
func main() {
	configPath := flag.String("config", os.Getenv("INSIGHTS_CONFIG"), "path to YAML config file")
	flag.Parse()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	slog.SetDefault(logger)

	metrics := telemetry.New()

	// Dataset is loaded once and shared read-only by every request.
	ds, err := bootstrap.LoadDataset(context.Background(), cfg.Dataset, logger, metrics)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}

	queryUC := insightsUsecase.NewQueryInsightsUseCase(ds)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: true,
	})

	insightsHttp.Middleware(app, logger, metrics)

	handler := insightsHttp.NewInsightsHandler(queryUC, logger)
	insightsHttp.RegisterRoutes(app, handler)

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			logger.Error("fiber stopped", "error", err)
		}
	}()

	logger.Info("server started", "addr", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error", "error", err)
	}

	logger.Info("server exiting")
}
