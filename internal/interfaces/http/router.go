package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/GeoSignal-Intelligence/internal/interfaces/http/middleware"
)

// RouterConfig aggregates all handler and middleware dependencies required
// to construct the complete HTTP route tree.
type RouterConfig struct {
	// Handlers
	OverviewHandler *handlers.OverviewHandler
	HealthHandler   *handlers.HealthHandler

	// Middleware
	CORS    *middleware.CORSConfig
	Logging *middleware.LoggingConfig

	// Infrastructure
	Logger         logging.Logger
	MetricsHandler http.Handler
}

// NewRouter constructs the complete HTTP route tree from the given
// configuration.  It wires global middleware, public health endpoints, and
// the API v1 resource group into a single http.Handler suitable for use with
// http.Server.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// --- Global middleware (applied to every request) ---
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.CORS != nil {
		r.Use(middleware.CORS(*cfg.CORS))
	}
	if cfg.Logging != nil && cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, *cfg.Logging))
	}

	// --- Public health endpoints ---
	r.Group(func(pub chi.Router) {
		if cfg.HealthHandler != nil {
			pub.Get("/healthz", cfg.HealthHandler.Liveness)
			pub.Get("/readyz", cfg.HealthHandler.Readiness)
		}
	})

	// --- Metrics endpoint (expected to sit behind an internal firewall) ---
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// --- API v1 ---
	r.Route("/api/v1", func(api chi.Router) {
		registerOverviewRoutes(api, cfg.OverviewHandler)
	})

	return r
}

// registerOverviewRoutes mounts overview map endpoints under /overview.
func registerOverviewRoutes(r chi.Router, h *handlers.OverviewHandler) {
	if h == nil {
		return
	}
	r.Route("/overview", func(or chi.Router) {
		or.Get("/map", h.GetMap)
		or.Get("/resolve", h.Resolve)
	})
}

//Personal.AI order the ending
