package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GeoSignal-Intelligence/internal/application/overview"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/geo"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

type fakeAggregationService struct {
	gotParams signal.AggregationParams
	result    *overview.Result
	err       error
	calls     int
}

func (f *fakeAggregationService) Aggregate(_ context.Context, params signal.AggregationParams) (*overview.Result, error) {
	f.calls++
	f.gotParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func liveResult() *overview.Result {
	return &overview.Result{
		Signals: []signal.OverviewSignal{
			{
				ID:         "evt-1",
				Lat:        48.85,
				Lon:        2.35,
				Type:       signal.TypeGeopolitics,
				Scope:      "global",
				Importance: 80,
				Confidence: 90,
				OccurredAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
				LabelShort: "Sanctions package announced",
			},
		},
		Stats: signal.OverviewMapStats{TotalQueried: 1, GeoMatched: 1, FinalCount: 1},
	}
}

func newTestOverviewHandler(svc AggregationService) *OverviewHandler {
	return NewOverviewHandler(svc, geo.NewStaticResolver(), logging.NewNopLogger())
}

func TestOverviewHandler_GetMap(t *testing.T) {
	t.Parallel()

	svc := &fakeAggregationService{result: liveResult()}
	h := newTestOverviewHandler(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/overview/map?dateRange=7d&scope=regional&q=sanctions&countries=France,Germany&types=energy,markets&sources=reuters&minImportance=50&maxSignals=30&userId=u-42", nil)
	w := httptest.NewRecorder()

	h.GetMap(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body overview.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Signals, 1)
	assert.Equal(t, "evt-1", body.Signals[0].ID)
	assert.False(t, body.IsDemo)

	got := svc.gotParams
	assert.Equal(t, signal.Range7d, got.DateRange)
	assert.Equal(t, signal.ScopeMode("regional"), got.ScopeMode)
	assert.Equal(t, "sanctions", got.Search)
	assert.Equal(t, []string{"France", "Germany"}, got.Countries)
	assert.Equal(t, []signal.SignalType{signal.TypeEnergy, signal.TypeMarkets}, got.TypesEnabled)
	assert.Equal(t, []string{"reuters"}, got.SourcesEnabled)
	assert.Equal(t, 50, got.MinImportance)
	assert.Equal(t, 30, got.MaxSignals)
	assert.Equal(t, "u-42", got.UserID)
}

func TestOverviewHandler_GetMap_DefaultParams(t *testing.T) {
	t.Parallel()

	svc := &fakeAggregationService{result: liveResult()}
	h := newTestOverviewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview/map", nil)
	w := httptest.NewRecorder()

	h.GetMap(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	got := svc.gotParams
	assert.Empty(t, got.Countries)
	assert.Empty(t, got.TypesEnabled)
	assert.Zero(t, got.MinImportance)
	assert.Zero(t, got.MaxSignals)
}

func TestOverviewHandler_GetMap_InvalidMinImportance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "high"},
		{name: "negative", value: "-1"},
		{name: "above range", value: "101"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &fakeAggregationService{result: liveResult()}
			h := newTestOverviewHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/overview/map?minImportance="+tt.value, nil)
			w := httptest.NewRecorder()

			h.GetMap(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Zero(t, svc.calls, "service must not be called on validation failure")

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, string(errors.ErrCodeValidation), body.Code)
		})
	}
}

func TestOverviewHandler_GetMap_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &fakeAggregationService{err: errors.New(errors.ErrCodeMapQueryFailed, "event store unreachable")}
	h := newTestOverviewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview/map", nil)
	w := httptest.NewRecorder()

	h.GetMap(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(errors.ErrCodeMapQueryFailed), body.Code)
	// Server-side failure details must not leak to clients.
	assert.Equal(t, "internal server error", body.Message)
}

func TestOverviewHandler_Resolve(t *testing.T) {
	t.Parallel()

	h := newTestOverviewHandler(&fakeAggregationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview/resolve?q=Strait+of+Hormuz", nil)
	w := httptest.NewRecorder()

	h.Resolve(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body resolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Strait of Hormuz", body.Query)
	assert.NotZero(t, body.Lat)
	assert.NotZero(t, body.Lon)
}

func TestOverviewHandler_Resolve_MissingQuery(t *testing.T) {
	t.Parallel()

	h := newTestOverviewHandler(&fakeAggregationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview/resolve", nil)
	w := httptest.NewRecorder()

	h.Resolve(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestOverviewHandler_Resolve_UnknownPlace(t *testing.T) {
	t.Parallel()

	h := newTestOverviewHandler(&fakeAggregationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/overview/resolve?q=Atlantis", nil)
	w := httptest.NewRecorder()

	h.Resolve(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQueryList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "absent", query: "", want: nil},
		{name: "single", query: "countries=France", want: []string{"France"}},
		{name: "multiple with spaces", query: "countries=France,%20Germany%20,Japan", want: []string{"France", "Germany", "Japan"}},
		{name: "only commas", query: "countries=,,", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := "/x"
			if tt.query != "" {
				target += "?" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			assert.Equal(t, tt.want, queryList(req, "countries"))
		})
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x?n=12&bad=oops", nil)
	assert.Equal(t, 12, queryInt(req, "n", 0))
	assert.Equal(t, 7, queryInt(req, "bad", 7))
	assert.Equal(t, 7, queryInt(req, "missing", 7))
}

//Personal.AI order the ending
