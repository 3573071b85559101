package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yisus17-stack/digicar-sub001/internal/application/usecase"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/port"
	"github.com/yisus17-stack/digicar-sub001/internal/domain/service"
	"github.com/yisus17-stack/digicar-sub001/internal/infrastructure/adapter"
	"github.com/yisus17-stack/digicar-sub001/internal/infrastructure/cache"
	"github.com/yisus17-stack/digicar-sub001/internal/infrastructure/config"
	"github.com/yisus17-stack/digicar-sub001/internal/infrastructure/kafka"
	pgRepo "github.com/yisus17-stack/digicar-sub001/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/yisus17-stack/digicar-sub001/internal/presentation/grpc"
	"github.com/yisus17-stack/digicar-sub001/internal/presentation/rest"
	pkgkafka "github.com/yisus17-stack/digicar-sub001/pkg/kafka"
	"github.com/yisus17-stack/digicar-sub001/pkg/observability"
	pkgpostgres "github.com/yisus17-stack/digicar-sub001/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting vehicle-showcase",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort meter shutdown
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	migDSN := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}.DSN()
	if migErr := pkgpostgres.RunMigrations(migDSN, "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	vehicleRepo := pgRepo.NewVehicleRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	summaryCache := cache.NewRedisSummaryCache(cfg.Redis.Addr)
	defer summaryCache.Close()

	engine := service.NewDecisionEngine()

	// Wire use cases.
	browseUC := usecase.NewBrowseCatalogUseCase(vehicleRepo, engine)
	getVehicleUC := usecase.NewGetVehicleUseCase(vehicleRepo)
	compareUC := usecase.NewCompareVehiclesUseCase(
		vehicleRepo, engine, newSummarizer(cfg, logger), summaryCache, publisher, logger)
	quoteUC := usecase.NewQuoteLoanUseCase(vehicleRepo, engine, publisher, logger)

	// gRPC server.
	handler := grpcPresentation.NewShowcaseHandler(browseUC, getVehicleUC, compareUC, quoteUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("vehicle-showcase stopped")
}

// newSummarizer picks the live AI summarizer when an API key is configured,
// otherwise falls back to the deterministic stub.
func newSummarizer(cfg config.Config, logger *slog.Logger) port.ComparisonSummarizer {
	if cfg.Summarizer.APIKey == "" {
		logger.Info("no summarizer API key configured, using stub summarizer")
		return adapter.NewStubSummarizer()
	}
	sumCfg := adapter.DefaultSummarizerConfig()
	sumCfg.APIKey = cfg.Summarizer.APIKey
	sumCfg.BaseURL = cfg.Summarizer.BaseURL
	sumCfg.Model = cfg.Summarizer.Model
	logger.Info("AI summarizer enabled", "model", sumCfg.Model)
	return adapter.NewAISummarizer(sumCfg)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
