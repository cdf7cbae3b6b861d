// Ingest worker entry point: consumes classified events from Kafka and
// persists them for the overview map pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/turtacn/GeoSignal-Intelligence/internal/config"
	pgconn "github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/database/postgres"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/prometheus"
)

const (
	defaultConfigPath = "configs/config.yaml"
	startupTimeout    = 15 * time.Second
	metricsSyncPeriod = 10 * time.Second
)

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	metricsPort := flag.Int("metrics-port", 9091, "port for /metrics and /healthz")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default configuration: %v\n", err)
		cfg = config.NewDefaultConfig()
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	logger.Info("starting GeoSignal-Intelligence ingest worker",
		logging.String("topic", cfg.Kafka.Topic),
		logging.String("group", cfg.Kafka.GroupID),
	)

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	conn, err := pgconn.NewConnection(startupCtx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("postgres connection failed", logging.Err(err))
	}
	defer conn.Close()

	events := repositories.NewEventRepository(conn.Pool(), logger.Named("repo"), cfg.Pipeline.UpstreamRowCap)
	consumer := kafka.NewConsumer(cfg.Kafka, events, logger.Named("ingest"))

	runCtx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := consumer.Start(runCtx); err != nil {
		logger.Fatal("consumer start failed", logging.Err(err))
	}

	metrics := prometheus.NewMetrics()
	go syncIngestMetrics(runCtx, consumer, metrics)

	// Probe endpoints for the scheduler.
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := conn.HealthCheck(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	probeSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", *metricsPort),
		Handler: mux,
	}
	go func() {
		logger.Info("worker probe server listening", logging.Int("port", *metricsPort))
		if err := probeSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("probe server error", logging.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("received shutdown signal", logging.String("signal", sig.String()))

	stop()
	if err := consumer.Stop(); err != nil {
		logger.Error("consumer shutdown error", logging.Err(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := probeSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("probe server shutdown error", logging.Err(err))
	}

	logger.Info("worker stopped")
}

// syncIngestMetrics mirrors consumer counters into the prometheus registry.
// The consumer tracks totals; the registry takes deltas.
func syncIngestMetrics(ctx context.Context, consumer *kafka.Consumer, metrics *prometheus.Metrics) {
	ticker := time.NewTicker(metricsSyncPeriod)
	defer ticker.Stop()

	var lastConsumed, lastFailed int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m := consumer.Metrics()
			consumed := m.MessagesConsumed.Load()
			failed := m.MessagesFailed.Load()
			metrics.ObserveIngest(consumed-lastConsumed, failed-lastFailed)
			lastConsumed, lastFailed = consumed, failed
		}
	}
}

// loadConfig loads configuration from file, returning an error if not found.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return config.Load(path)
}

//Personal.AI order the ending
