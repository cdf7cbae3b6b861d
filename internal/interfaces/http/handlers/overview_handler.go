package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/turtacn/GeoSignal-Intelligence/internal/application/overview"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/geo"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

// AggregationService produces the overview map payload for a set of request
// parameters.  *overview.Aggregator satisfies it.
type AggregationService interface {
	Aggregate(ctx context.Context, params signal.AggregationParams) (*overview.Result, error)
}

// OverviewHandler serves the overview map endpoints.
type OverviewHandler struct {
	service  AggregationService
	resolver geo.Resolver
	logger   logging.Logger
}

// NewOverviewHandler creates an OverviewHandler.
func NewOverviewHandler(service AggregationService, resolver geo.Resolver, logger logging.Logger) *OverviewHandler {
	return &OverviewHandler{
		service:  service,
		resolver: resolver,
		logger:   logger,
	}
}

// GetMap handles GET /api/v1/overview/map.
func (h *OverviewHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	params, err := parseAggregationParams(r)
	if err != nil {
		writeAppError(w, err)
		return
	}

	result, err := h.service.Aggregate(r.Context(), params)
	if err != nil {
		h.logger.Error("overview aggregation failed", logging.Err(err))
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// resolveResponse is the body returned by the resolve endpoint.
type resolveResponse struct {
	Query string  `json:"query"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

// Resolve handles GET /api/v1/overview/resolve.  It maps a free-text place
// name onto coordinates using the static gazetteer.
func (h *OverviewHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeAppError(w, errors.NewValidation("query parameter q is required"))
		return
	}

	point := h.resolver.Resolve([]string{q})
	if point == nil {
		writeAppError(w, errors.NotFound("no coordinates found for "+strconv.Quote(q)))
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Query: q,
		Lat:   point.Lat,
		Lon:   point.Lon,
		Label: point.Label,
	})
}

// parseAggregationParams builds AggregationParams from query parameters.
// Malformed list or mode values are passed through as-is; the aggregator
// re-normalizes everything it receives.  Only minImportance rejects bad
// input, because a silently dropped threshold would widen results.
func parseAggregationParams(r *http.Request) (signal.AggregationParams, error) {
	q := r.URL.Query()

	params := signal.AggregationParams{
		UserID:         q.Get("userId"),
		DateRange:      signal.DateRange(q.Get("dateRange")),
		ScopeMode:      signal.ScopeMode(q.Get("scope")),
		Search:         q.Get("q"),
		Countries:      queryList(r, "countries"),
		SourcesEnabled: queryList(r, "sources"),
		MaxSignals:     queryInt(r, "maxSignals", 0),
	}

	for _, t := range queryList(r, "types") {
		params.TypesEnabled = append(params.TypesEnabled, signal.SignalType(t))
	}

	if v := q.Get("minImportance"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			return params, errors.NewValidation("minImportance must be an integer between 0 and 100")
		}
		params.MinImportance = n
	}

	return params, nil
}

//Personal.AI order the ending
