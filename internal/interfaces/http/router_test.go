package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GeoSignal-Intelligence/internal/application/overview"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/geo"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/GeoSignal-Intelligence/internal/interfaces/http/middleware"
)

type stubAggregation struct{}

func (stubAggregation) Aggregate(context.Context, signal.AggregationParams) (*overview.Result, error) {
	return &overview.Result{
		Signals: []signal.OverviewSignal{},
		Stats:   signal.OverviewMapStats{EffectiveDateRange: signal.Range24h},
	}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNopLogger()
	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = []string{"*"}
	logCfg := middleware.DefaultLoggingConfig()

	return NewRouter(RouterConfig{
		OverviewHandler: handlers.NewOverviewHandler(stubAggregation{}, geo.NewStaticResolver(), logger),
		HealthHandler:   handlers.NewHealthHandler("test"),
		CORS:            &cors,
		Logging:         &logCfg,
		Logger:          logger,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("# metrics"))
		}),
	})
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "liveness", path: "/healthz", wantStatus: http.StatusOK},
		{name: "readiness", path: "/readyz", wantStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK},
		{name: "overview map", path: "/api/v1/overview/map", wantStatus: http.StatusOK},
		{name: "overview resolve", path: "/api/v1/overview/resolve?q=France", wantStatus: http.StatusOK},
		{name: "unknown route", path: "/api/v1/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_RequestIDPropagated(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/overview/map", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestRouter_CORSOnAPIRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview/map", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

//Personal.AI order the ending
