// Package overview builds the world-map payload: a bounded, deduplicated,
// geolocated set of signals plus the top-events and corporate-impact rails.
// The pipeline never surfaces an error to its caller; it degrades through
// window widening and finally the demo fixture.
package overview

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/geo"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
)

// EventStore queries classified event rows.  Implementations sort by impact
// score descending with nulls last, then recency descending, and cap the
// result server-side.
type EventStore interface {
	QueryCreatedAfter(ctx context.Context, since time.Time) ([]signal.EventRow, error)
}

// WatchlistStore resolves a user's watchlist entities.
type WatchlistStore interface {
	GetEntities(ctx context.Context, userID string) (signal.WatchlistEntities, error)
}

// SourceStore cross-references event rows against their originating sources.
type SourceStore interface {
	EventIDsForSources(ctx context.Context, eventIDs, sources []string) ([]string, error)
}

// ImpactStore serves the corporate-impact rail.
type ImpactStore interface {
	RecentActive(ctx context.Context, limit int) ([]signal.CorporateImpact, error)
}

// Recorder receives per-request pipeline accounting for monitoring.
type Recorder interface {
	ObserveAggregation(stats signal.OverviewMapStats, isDemo bool, took time.Duration)
}

// Result is the full map payload.
type Result struct {
	Signals    []signal.OverviewSignal  `json:"signals"`
	TopEvents  []signal.EventSummary    `json:"top_events"`
	TopImpacts []signal.CorporateImpact `json:"top_impacts"`
	IsDemo     bool                     `json:"is_demo"`
	Stats      signal.OverviewMapStats  `json:"stats"`
}

// Config carries the pipeline caps.
type Config struct {
	MaxSignals     int
	UpstreamRowCap int
	TopEvents      int
	TopImpacts     int
}

func (c Config) withDefaults() Config {
	if c.MaxSignals <= 0 {
		c.MaxSignals = 60
	}
	if c.UpstreamRowCap <= 0 {
		c.UpstreamRowCap = 100
	}
	if c.TopEvents <= 0 {
		c.TopEvents = 3
	}
	if c.TopImpacts <= 0 {
		c.TopImpacts = 3
	}
	return c
}

// Deps bundles the aggregator's collaborators.  Events and Resolver are
// required; everything else is optional and skipped when nil.
type Deps struct {
	Events     EventStore
	Watchlists WatchlistStore
	Sources    SourceStore
	Impacts    ImpactStore
	Resolver   geo.Resolver
	Enricher   Enricher
	Recorder   Recorder
	Logger     logging.Logger
}

// Aggregator orchestrates one map build per call.  All per-request state
// (jitter set, counters) lives on the stack of Aggregate; the struct itself
// is safe for concurrent use.
type Aggregator struct {
	deps Deps
	cfg  Config
	now  func() time.Time
}

// NewAggregator wires the aggregation service.
func NewAggregator(deps Deps, cfg Config) *Aggregator {
	if deps.Logger == nil {
		deps.Logger = logging.NewNopLogger()
	}
	return &Aggregator{deps: deps, cfg: cfg.withDefaults(), now: time.Now}
}

// Aggregate runs the full pipeline.  It always returns a renderable payload;
// the error return is reserved for context cancellation surfaced by the
// transport layer.
func (a *Aggregator) Aggregate(ctx context.Context, params signal.AggregationParams) (*Result, error) {
	started := a.now()
	params = normalizeParams(params, a.cfg)

	rows, effective := a.fetchWithWidening(ctx, params.DateRange)

	stats := signal.OverviewMapStats{
		TotalQueried:       len(rows),
		EffectiveDateRange: effective,
	}

	rows = a.applyScopeFilters(ctx, rows, params, &stats)

	signals := a.convertRows(rows, params, &stats)
	signals = a.filterAttributes(signals, params, &stats)
	stats.FinalCount = len(signals)

	res := &Result{
		Signals:   signals,
		TopEvents: topEventsFrom(signals, a.cfg.TopEvents),
		Stats:     stats,
	}
	res.TopImpacts = a.fetchTopImpacts(ctx)

	if len(res.TopEvents) < a.cfg.TopEvents && a.deps.Enricher != nil {
		to := a.now()
		res.TopEvents = a.deps.Enricher.Enrich(ctx, res.TopEvents, to.Add(-effective.Duration()), to)
	}

	if len(res.Signals) == 0 {
		now := a.now()
		res.Signals = DemoSignals(now)
		res.TopEvents = DemoTopEvents(now)
		res.TopImpacts = DemoTopImpacts(now)
		res.IsDemo = true
		a.deps.Logger.Info("serving demo fixture, no live signals",
			logging.String("effective_range", string(effective)),
			logging.Int("total_queried", stats.TotalQueried))
	}

	if a.deps.Recorder != nil {
		a.deps.Recorder.ObserveAggregation(res.Stats, res.IsDemo, a.now().Sub(started))
	}
	return res, nil
}

// fetchWithWidening walks the window ladder starting at the requested range
// until a query yields rows.  Store failures count as an empty window so
// widening can continue.
func (a *Aggregator) fetchWithWidening(ctx context.Context, requested signal.DateRange) ([]signal.EventRow, signal.DateRange) {
	window := requested
	for {
		rows, err := a.deps.Events.QueryCreatedAfter(ctx, a.now().Add(-window.Duration()))
		if err != nil {
			a.deps.Logger.Warn("event query failed, treating window as empty",
				logging.String("window", string(window)), logging.Err(err))
			rows = nil
		}
		if len(rows) > a.cfg.UpstreamRowCap {
			rows = rows[:a.cfg.UpstreamRowCap]
		}
		if len(rows) > 0 {
			return rows, window
		}
		next, ok := window.Widen()
		if !ok {
			return nil, window
		}
		window = next
	}
}

// applyScopeFilters runs the pre-conversion row filters: watchlist scope,
// explicit country list, and source enablement.
func (a *Aggregator) applyScopeFilters(ctx context.Context, rows []signal.EventRow, params signal.AggregationParams, stats *signal.OverviewMapStats) []signal.EventRow {
	if params.ScopeMode == signal.ScopeModeWatchlist && a.deps.Watchlists != nil {
		rows = a.filterByWatchlist(ctx, rows, params.UserID, stats)
	}
	if len(params.Countries) > 0 {
		rows = filterByCountries(rows, params.Countries, stats)
	}
	if len(params.SourcesEnabled) > 0 && a.deps.Sources != nil {
		rows = a.filterBySources(ctx, rows, params.SourcesEnabled, stats)
	}
	return rows
}

// filterByWatchlist keeps rows matching any watchlist entity.  A missing or
// empty watchlist disables the filter entirely rather than emptying the map.
func (a *Aggregator) filterByWatchlist(ctx context.Context, rows []signal.EventRow, userID string, stats *signal.OverviewMapStats) []signal.EventRow {
	ents, err := a.deps.Watchlists.GetEntities(ctx, userID)
	if err != nil {
		a.deps.Logger.Warn("watchlist lookup failed, scope filter skipped", logging.Err(err))
		return rows
	}
	if ents.IsEmpty() {
		return rows
	}

	ids := toLowerSet(ents.EventIDs)
	sectors := toLowerSet(ents.Sectors)
	countries := toLowerSet(ents.Countries)

	kept := rows[:0]
	for _, r := range rows {
		if setHas(ids, r.ID) || setHas(sectors, r.Sector) || setHas(countries, r.Country) {
			kept = append(kept, r)
			continue
		}
		stats.FilteredOut++
	}
	return kept
}

func filterByCountries(rows []signal.EventRow, countries []string, stats *signal.OverviewMapStats) []signal.EventRow {
	want := toLowerSet(countries)
	kept := rows[:0]
	for _, r := range rows {
		if setHas(want, r.Country) {
			kept = append(kept, r)
			continue
		}
		stats.FilteredOut++
	}
	return kept
}

func (a *Aggregator) filterBySources(ctx context.Context, rows []signal.EventRow, sources []string, stats *signal.OverviewMapStats) []signal.EventRow {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	allowed, err := a.deps.Sources.EventIDsForSources(ctx, ids, sources)
	if err != nil {
		a.deps.Logger.Warn("source enablement lookup failed, treating as no matches", logging.Err(err))
		allowed = nil
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = struct{}{}
	}

	kept := rows[:0]
	for _, r := range rows {
		if _, ok := allowedSet[r.ID]; ok {
			kept = append(kept, r)
			continue
		}
		stats.FilteredOut++
	}
	return kept
}

// convertRows turns surviving rows into plotted signals: geo resolution then
// collision jitter, in row order, stopping at the signal cap.
func (a *Aggregator) convertRows(rows []signal.EventRow, params signal.AggregationParams, stats *signal.OverviewMapStats) []signal.OverviewSignal {
	signals := make([]signal.OverviewSignal, 0, minInt(len(rows), params.MaxSignals))
	jitter := newJitterState()

	for _, row := range rows {
		if len(signals) >= params.MaxSignals {
			break
		}
		point := a.deps.Resolver.Resolve(geoCandidates(row))
		if point == nil {
			stats.GeoMissed++
			continue
		}
		stats.GeoMatched++

		lat, lon, ok := jitter.place(point.Lat, point.Lon)
		if !ok {
			stats.FilteredOut++
			continue
		}
		signals = append(signals, buildSignal(row, lat, lon))
	}
	return signals
}

// filterAttributes applies the post-conversion filters: minimum importance,
// enabled types, and free-text search.
func (a *Aggregator) filterAttributes(signals []signal.OverviewSignal, params signal.AggregationParams, stats *signal.OverviewMapStats) []signal.OverviewSignal {
	typesEnabled := map[signal.SignalType]struct{}{}
	for _, t := range params.TypesEnabled {
		typesEnabled[t] = struct{}{}
	}
	search := strings.ToLower(strings.TrimSpace(params.Search))

	kept := signals[:0]
	for _, s := range signals {
		if s.Importance < params.MinImportance {
			stats.FilteredOut++
			continue
		}
		if len(typesEnabled) > 0 {
			if _, ok := typesEnabled[s.Type]; !ok {
				stats.FilteredOut++
				continue
			}
		}
		if search != "" && !matchesSearch(s, search) {
			stats.FilteredOut++
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func matchesSearch(s signal.OverviewSignal, search string) bool {
	return strings.Contains(strings.ToLower(s.LabelShort), search) ||
		strings.Contains(strings.ToLower(s.SubtitleShort), search) ||
		strings.Contains(strings.ToLower(s.ImpactOneLine), search)
}

func (a *Aggregator) fetchTopImpacts(ctx context.Context) []signal.CorporateImpact {
	if a.deps.Impacts == nil {
		return nil
	}
	impacts, err := a.deps.Impacts.RecentActive(ctx, a.cfg.TopImpacts)
	if err != nil {
		a.deps.Logger.Warn("corporate impact lookup failed", logging.Err(err))
		return nil
	}
	if len(impacts) > a.cfg.TopImpacts {
		impacts = impacts[:a.cfg.TopImpacts]
	}
	return impacts
}

func topEventsFrom(signals []signal.OverviewSignal, limit int) []signal.EventSummary {
	out := make([]signal.EventSummary, 0, limit)
	for _, s := range signals {
		if len(out) >= limit {
			break
		}
		out = append(out, signal.EventSummary{
			Title:      s.LabelShort,
			Summary:    s.SubtitleShort,
			OccurredAt: s.OccurredAt,
			Source:     signal.SummarySourceInternal,
		})
	}
	return out
}

// geoCandidates orders a row's location fields from most to least specific.
// The summary token is a best-effort extraction and deliberately last.
func geoCandidates(row signal.EventRow) []string {
	candidates := make([]string, 0, 3)
	if row.Country != "" {
		candidates = append(candidates, row.Country)
	}
	if row.Region != "" {
		candidates = append(candidates, row.Region)
	}
	if token := extractLocationToken(row.Summary); token != "" {
		candidates = append(candidates, token)
	}
	return candidates
}

// capitalizedRunPattern grabs runs of capitalised words, optionally joined
// by "of"/"the", e.g. "Democratic Republic of the Congo".
var capitalizedRunPattern = regexp.MustCompile(`[A-Z][a-z]+(?:(?: of the| of| the|,)? [A-Z][a-z]+)*`)

// extractLocationToken pulls the first capitalised run that does not open
// the text.  Sentence-initial words are usually ordinary prose, not places.
func extractLocationToken(summary string) string {
	matches := capitalizedRunPattern.FindAllStringIndex(summary, 2)
	for _, m := range matches {
		if m[0] == 0 {
			continue
		}
		return summary[m[0]:m[1]]
	}
	return ""
}

func buildSignal(row signal.EventRow, lat, lon float64) signal.OverviewSignal {
	return signal.OverviewSignal{
		ID:            row.ID,
		Lat:           lat,
		Lon:           lon,
		Type:          signal.Classify(row),
		Scope:         signal.ScopeOf(row.ImpactScore),
		Importance:    signal.ImportanceOf(row.ImpactScore),
		Confidence:    signal.ConfidenceOf(row.Confidence),
		OccurredAt:    row.CreatedAt,
		LabelShort:    truncate(firstNonEmpty(row.Summary, row.Country, row.ID), 60),
		SubtitleShort: truncate(firstNonEmpty(row.WhyItMatters, row.Sector), 90),
		ImpactOneLine: truncate(firstNonEmpty(row.FirstOrderEffect, row.WhyItMatters), 120),
		InvestigateID: firstNonEmpty(row.SourceEventID, row.ID),
	}
}

// jitterState is the per-request collision tracker.  Keys are coordinates
// rounded to 2 decimals; collisions get one deterministic ±0.5° nudge and a
// still-colliding point is dropped.
type jitterState struct {
	used    map[string]struct{}
	counter int
}

func newJitterState() *jitterState {
	return &jitterState{used: make(map[string]struct{})}
}

func (j *jitterState) place(lat, lon float64) (float64, float64, bool) {
	key := coordKey(lat, lon)
	if _, taken := j.used[key]; !taken {
		j.used[key] = struct{}{}
		return lat, lon, true
	}

	offset := 0.5
	if j.counter%2 == 1 {
		offset = -0.5
	}
	j.counter++

	lat += offset
	lon += offset
	key = coordKey(lat, lon)
	if _, taken := j.used[key]; taken {
		return 0, 0, false
	}
	j.used[key] = struct{}{}
	return lat, lon, true
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f:%.2f", lat, lon)
}

func normalizeParams(params signal.AggregationParams, cfg Config) signal.AggregationParams {
	if !params.DateRange.Valid() {
		params.DateRange = signal.Range24h
	}
	if params.ScopeMode != signal.ScopeModeWatchlist {
		params.ScopeMode = signal.ScopeModeGlobal
	}
	if params.MaxSignals <= 0 || params.MaxSignals > cfg.MaxSignals {
		params.MaxSignals = cfg.MaxSignals
	}
	if params.MinImportance < 0 {
		params.MinImportance = 0
	}
	return params
}

func toLowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func setHas(set map[string]struct{}, value string) bool {
	_, ok := set[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndexByte(cut, ' '); i > max/2 {
		cut = cut[:i]
	}
	return cut + "…"
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

//Personal.AI order the ending
