// API server entry point for GeoSignal-Intelligence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/turtacn/GeoSignal-Intelligence/internal/application/overview"
	"github.com/turtacn/GeoSignal-Intelligence/internal/config"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/geo"
	pgconn "github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/database/postgres"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/database/postgres/repositories"
	redisdb "github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/news"
	httpserver "github.com/turtacn/GeoSignal-Intelligence/internal/interfaces/http"
	"github.com/turtacn/GeoSignal-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/GeoSignal-Intelligence/internal/interfaces/http/middleware"
)

const (
	defaultConfigPath = "configs/config.yaml"
	version           = "0.1.0"
	startupTimeout    = 15 * time.Second
)

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("http-port", 0, "HTTP server port (overrides config)")
	skipMigrations := flag.Bool("skip-migrations", false, "do not run database migrations on startup")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default configuration: %v\n", err)
		cfg = config.NewDefaultConfig()
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
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

	logger.Info("starting GeoSignal-Intelligence API server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
	)

	if !*skipMigrations {
		if err := pgconn.RunMigrations(pgconn.BuildDSN(cfg.Database), cfg.Database.MigrationPath); err != nil {
			logger.Fatal("database migration failed", logging.Err(err))
		}
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	conn, err := pgconn.NewConnection(startupCtx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("postgres connection failed", logging.Err(err))
	}
	defer conn.Close()

	redisClient, err := redisdb.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Fatal("redis connection failed", logging.Err(err))
	}
	defer redisClient.Close()

	cache := redisdb.NewCache(redisClient, logger)

	pool := conn.Pool()
	repoLogger := logger.Named("repo")
	events := repositories.NewEventRepository(pool, repoLogger, cfg.Pipeline.UpstreamRowCap)
	watchlists := repositories.NewWatchlistRepository(pool, repoLogger)
	sources := repositories.NewSourceRepository(pool, repoLogger)
	impacts := repositories.NewImpactRepository(pool, repoLogger)

	metrics := prometheus.NewMetrics()

	// Enrichment providers are best-effort: an empty base URL disables one
	// without affecting the rest of the pipeline.
	var structured overview.StructuredNewsProvider
	if cfg.News.StructuredBaseURL != "" {
		structured = news.NewStructuredClient(cfg.News, cache, logger.Named("news.structured"))
	}
	var search overview.SearchNewsProvider
	if cfg.News.SearchBaseURL != "" {
		search = news.NewSearchClient(cfg.News, logger.Named("news.search"))
	}
	enricher := overview.NewNewsEnricher(structured, search, cfg.News.RequestTimeout, logger.Named("enricher"))

	aggregator := overview.NewAggregator(overview.Deps{
		Events:     events,
		Watchlists: watchlists,
		Sources:    sources,
		Impacts:    impacts,
		Resolver:   geo.NewStaticResolver(),
		Enricher:   enricher,
		Recorder:   metrics,
		Logger:     logger.Named("overview"),
	}, overview.Config{
		MaxSignals:     cfg.Pipeline.MaxSignals,
		UpstreamRowCap: cfg.Pipeline.UpstreamRowCap,
		TopEvents:      cfg.Pipeline.TopEvents,
		TopImpacts:     cfg.Pipeline.TopImpacts,
	})

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = []string{"*"}
	logCfg := middleware.DefaultLoggingConfig()
	logCfg.Recorder = metrics

	router := httpserver.NewRouter(httpserver.RouterConfig{
		OverviewHandler: handlers.NewOverviewHandler(aggregator, geo.NewStaticResolver(), logger.Named("http")),
		HealthHandler: handlers.NewHealthHandler(version,
			handlers.HealthCheckerFunc{ComponentName: "postgres", CheckFunc: conn.HealthCheck},
			handlers.HealthCheckerFunc{ComponentName: "redis", CheckFunc: redisClient.Ping},
		),
		CORS:           &corsCfg,
		Logging:        &logCfg,
		Logger:         logger.Named("http"),
		MetricsHandler: metrics.Handler(),
	})

	server := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP server failed", logging.Err(err))
		}
	}

	if err := server.Stop(context.Background()); err != nil {
		logger.Error("HTTP server shutdown error", logging.Err(err))
	}

	logger.Info("server stopped")
}

// loadConfig loads configuration from file, returning an error if not found.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return config.Load(path)
}

//Personal.AI order the ending
