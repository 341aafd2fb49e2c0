package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luminahr/talentscope/internal/app"
	"github.com/luminahr/talentscope/internal/scoring/application/consumers"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/eventbus"
	"github.com/luminahr/talentscope/pkg/config"
	"github.com/luminahr/talentscope/pkg/observability"
)

func main() {
	// Setup logger; TALENTSCOPE_ENV=production switches to JSON output.
	logger := observability.LoggerFromEnv()

	logger.Info("starting talentscope worker")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup Prometheus metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewPrometheusMetrics("talentscope", registry)

	// Initialize the container
	container, err := app.NewContainer(ctx, cfg, logger, metrics)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	// Health checks
	health := observability.NewHealthRegistry()
	health.Register("database", observability.DatabaseHealthChecker(container.DBConn.Ping))
	if container.RedisClient != nil {
		health.Register("redis", observability.RedisHealthChecker(func(ctx context.Context) error {
			return container.RedisClient.Ping(ctx).Err()
		}))
	}

	// Serve metrics and health endpoints
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		overall := health.GetOverallHealth(r.Context())
		status := http.StatusOK
		if overall.Status == observability.HealthStatusUnhealthy {
			status = http.StatusServiceUnavailable
		}
		body, err := overall.ToJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	})

	server := &http.Server{
		Addr:              cfg.WorkerHealthAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("health endpoint listening", "addr", cfg.WorkerHealthAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("health server failed", "error", err)
			cancel()
		}
	}()

	// Register event consumers; registering also binds the queue.
	consumerRegistry := eventbus.NewConsumerRegistry(logger)
	consumer, err := eventbus.NewRabbitMQConsumer(eventbus.RabbitMQConsumerConfig{
		URL:       cfg.RabbitMQURL,
		QueueName: cfg.RecalculateQueue,
		Logger:    logger,
	}, consumerRegistry)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	consumer.RegisterConsumer(consumers.NewRecalculateConsumer(container.ScoringService, logger))

	logger.Info("consuming recalculation events",
		"queue", cfg.RecalculateQueue,
		"binding", consumers.RoutingKeyRecalculate,
	)

	// Start is a blocking call; it returns when the context is cancelled.
	if err := consumer.Start(ctx); err != nil {
		logger.Error("consumer stopped with error", "error", err)
	}

	// Give the health server a moment to drain
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("health server shutdown failed", "error", err)
	}

	logger.Info("worker stopped")
}
