package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
)

func TestMetrics_ObserveAggregation(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveAggregation(signal.OverviewMapStats{
		TotalQueried:       10,
		GeoMatched:         7,
		GeoMissed:          3,
		FilteredOut:        2,
		FinalCount:         5,
		EffectiveDateRange: signal.Range7d,
	}, false, 40*time.Millisecond)
	m.ObserveAggregation(signal.OverviewMapStats{EffectiveDateRange: signal.Range30d}, true, 5*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.aggregationsTotal.WithLabelValues("live")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.aggregationsTotal.WithLabelValues("demo")))
	assert.Equal(t, float64(10), testutil.ToFloat64(m.rowsQueriedTotal))
	assert.Equal(t, float64(7), testutil.ToFloat64(m.geoMatchedTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.geoMissedTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.filteredOutTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.effectiveRangeTotal.WithLabelValues("7d")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.effectiveRangeTotal.WithLabelValues("30d")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/overview/map", http.StatusOK, 12*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/overview/map", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, float64(2),
		testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/overview/map", "200")))
}

func TestMetrics_HandlerServesScrape(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveIngest(4, 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "geosignal_ingest_messages_total 4")
	assert.Contains(t, body, "geosignal_ingest_failures_total 1")
}

//Personal.AI order the ending
