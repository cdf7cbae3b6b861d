// Package prometheus exposes the platform's metrics: HTTP request counters
// and the overview pipeline's per-request accounting.
package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
)

var defaultDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// Metrics holds every registered collector.  One instance per process,
// backed by its own registry so tests never collide on the global default.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	aggregationsTotal    *prometheus.CounterVec
	aggregationDuration  prometheus.Histogram
	rowsQueriedTotal     prometheus.Counter
	geoMatchedTotal      prometheus.Counter
	geoMissedTotal       prometheus.Counter
	filteredOutTotal     prometheus.Counter
	signalsServed        prometheus.Histogram
	effectiveRangeTotal  *prometheus.CounterVec
	ingestConsumedTotal  prometheus.Counter
	ingestFailedTotal    prometheus.Counter
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geosignal_http_requests_total",
			Help: "Total HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geosignal_http_request_duration_seconds",
			Help:    "HTTP request duration.",
			Buckets: defaultDurationBuckets,
		}, []string{"method", "path"}),

		aggregationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geosignal_overview_aggregations_total",
			Help: "Overview map builds, split by live vs demo payloads.",
		}, []string{"payload"}),
		aggregationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "geosignal_overview_aggregation_duration_seconds",
			Help:    "End-to-end overview pipeline duration.",
			Buckets: defaultDurationBuckets,
		}),
		rowsQueriedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geosignal_overview_rows_queried_total",
			Help: "Event rows fetched from the store.",
		}),
		geoMatchedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geosignal_overview_geo_matched_total",
			Help: "Rows successfully resolved to coordinates.",
		}),
		geoMissedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geosignal_overview_geo_missed_total",
			Help: "Rows dropped because no location resolved.",
		}),
		filteredOutTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geosignal_overview_filtered_out_total",
			Help: "Rows dropped by scope, collision, or attribute filters.",
		}),
		signalsServed: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "geosignal_overview_signals_served",
			Help:    "Final signal count per response.",
			Buckets: []float64{0, 1, 5, 10, 20, 40, 60, 100},
		}),
		effectiveRangeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geosignal_overview_effective_range_total",
			Help: "Which lookback window each response ended up using.",
		}, []string{"range"}),
		ingestConsumedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geosignal_ingest_messages_total",
			Help: "Classified-event messages consumed.",
		}),
		ingestFailedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "geosignal_ingest_failures_total",
			Help: "Classified-event messages that failed to persist.",
		}),
	}
}

// ObserveAggregation implements the pipeline's Recorder interface.
func (m *Metrics) ObserveAggregation(stats signal.OverviewMapStats, isDemo bool, took time.Duration) {
	payload := "live"
	if isDemo {
		payload = "demo"
	}
	m.aggregationsTotal.WithLabelValues(payload).Inc()
	m.aggregationDuration.Observe(took.Seconds())
	m.rowsQueriedTotal.Add(float64(stats.TotalQueried))
	m.geoMatchedTotal.Add(float64(stats.GeoMatched))
	m.geoMissedTotal.Add(float64(stats.GeoMissed))
	m.filteredOutTotal.Add(float64(stats.FilteredOut))
	m.signalsServed.Observe(float64(stats.FinalCount))
	m.effectiveRangeTotal.WithLabelValues(string(stats.EffectiveDateRange)).Inc()
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, took time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(took.Seconds())
}

// ObserveIngest records consumer counters.
func (m *Metrics) ObserveIngest(consumed, failed int64) {
	m.ingestConsumedTotal.Add(float64(consumed))
	m.ingestFailedTotal.Add(float64(failed))
}

// Registry exposes the underlying registry for custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

//Personal.AI order the ending
