package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

func TestHealthHandler_Liveness(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	h.Liveness(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body LivenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alive", body.Status)
	assert.Equal(t, "1.2.3", body.Version)
}

func TestHealthHandler_Readiness_NoCheckers(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("test")

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	h.Readiness(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.Status)
}

func TestHealthHandler_Readiness_AllHealthy(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("test",
		HealthCheckerFunc{ComponentName: "postgres", CheckFunc: func(context.Context) error { return nil }},
		HealthCheckerFunc{ComponentName: "redis", CheckFunc: func(context.Context) error { return nil }},
	)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	h.Readiness(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.Status)
	require.Len(t, body.Components, 2)
	assert.Equal(t, "healthy", body.Components["postgres"].Status)
	assert.Equal(t, "healthy", body.Components["redis"].Status)
}

func TestHealthHandler_Readiness_OneUnhealthy(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("test",
		HealthCheckerFunc{ComponentName: "postgres", CheckFunc: func(context.Context) error { return nil }},
		HealthCheckerFunc{ComponentName: "redis", CheckFunc: func(context.Context) error {
			return errors.New(errors.ErrCodeCacheError, "connection refused")
		}},
	)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	h.Readiness(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_ready", body.Status)
	assert.Equal(t, "unhealthy", body.Components["redis"].Status)
	assert.NotEmpty(t, body.Components["redis"].Error)
	assert.Equal(t, "healthy", body.Components["postgres"].Status)
}

//Personal.AI order the ending
