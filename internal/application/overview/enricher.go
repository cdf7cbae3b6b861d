package overview

import (
	"context"
	"strings"
	"time"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
)

// StructuredNewsProvider is the structured enrichment collaborator: events
// with titles, summaries and locations for a date window.
type StructuredNewsProvider interface {
	SearchRecentEvents(ctx context.Context, from, to time.Time) ([]signal.NewsEvent, error)
}

// SearchNewsProvider is the general-search enrichment collaborator.
type SearchNewsProvider interface {
	Search(ctx context.Context, query string, days int) ([]signal.SearchResult, error)
}

// Enricher pads a short top-events list from external sources.
type Enricher interface {
	Enrich(ctx context.Context, existing []signal.EventSummary, from, to time.Time) []signal.EventSummary
}

const (
	// perSourceFetchCap bounds how many candidates each provider may
	// contribute per call.
	perSourceFetchCap = 5
	// enrichedTotalCap bounds the merged top-events list.
	enrichedTotalCap = 3
	// dedupPrefixLen is the length of the lowercased title prefix used as
	// the duplicate key.  Long enough to separate distinct stories, short
	// enough to collapse re-reported headlines with trailing variations.
	dedupPrefixLen = 40

	defaultSearchQuery = "major geopolitical supply chain energy events"
)

// NewsEnricher merges provider results into an existing summary list.  Every
// provider failure is swallowed and logged; the worst case is returning the
// input unchanged.
type NewsEnricher struct {
	structured StructuredNewsProvider
	search     SearchNewsProvider
	timeout    time.Duration
	logger     logging.Logger
}

// NewNewsEnricher builds an enricher.  Either provider may be nil, in which
// case that source is skipped.
func NewNewsEnricher(structured StructuredNewsProvider, search SearchNewsProvider, timeout time.Duration, logger logging.Logger) *NewsEnricher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NewsEnricher{structured: structured, search: search, timeout: timeout, logger: logger}
}

// Enrich tries the structured provider first, then general search, stopping
// as soon as the list reaches its cap.  Dedup keys are shared across the
// existing entries and both providers within one call.
func (e *NewsEnricher) Enrich(ctx context.Context, existing []signal.EventSummary, from, to time.Time) []signal.EventSummary {
	out := make([]signal.EventSummary, 0, enrichedTotalCap)
	seen := make(map[string]struct{})
	for _, s := range existing {
		seen[dedupKey(s.Title)] = struct{}{}
		out = append(out, s)
	}
	if len(out) >= enrichedTotalCap {
		return out[:enrichedTotalCap]
	}

	if e.structured != nil {
		out = e.mergeStructured(ctx, out, seen, from, to)
	}
	if len(out) < enrichedTotalCap && e.search != nil {
		out = e.mergeSearch(ctx, out, seen, from, to)
	}
	return out
}

func (e *NewsEnricher) mergeStructured(ctx context.Context, out []signal.EventSummary, seen map[string]struct{}, from, to time.Time) []signal.EventSummary {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	events, err := e.structured.SearchRecentEvents(cctx, from, to)
	if err != nil {
		e.logger.Warn("structured news enrichment failed", logging.Err(err))
		return out
	}
	if len(events) > perSourceFetchCap {
		events = events[:perSourceFetchCap]
	}
	for _, ev := range events {
		if len(out) >= enrichedTotalCap {
			break
		}
		key := dedupKey(ev.Title)
		if _, dup := seen[key]; dup || key == "" {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, signal.EventSummary{
			Title:      ev.Title,
			Summary:    ev.Summary,
			OccurredAt: ev.Date,
			Source:     signal.SummarySourceStructured,
		})
	}
	return out
}

func (e *NewsEnricher) mergeSearch(ctx context.Context, out []signal.EventSummary, seen map[string]struct{}, from, to time.Time) []signal.EventSummary {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	days := int(to.Sub(from).Hours()/24 + 0.5)
	if days < 1 {
		days = 1
	}
	results, err := e.search.Search(cctx, defaultSearchQuery, days)
	if err != nil {
		e.logger.Warn("search news enrichment failed", logging.Err(err))
		return out
	}
	if len(results) > perSourceFetchCap {
		results = results[:perSourceFetchCap]
	}
	for _, res := range results {
		if len(out) >= enrichedTotalCap {
			break
		}
		key := dedupKey(res.Title)
		if _, dup := seen[key]; dup || key == "" {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, signal.EventSummary{
			Title:   res.Title,
			Summary: res.Content,
			Source:  signal.SummarySourceSearch,
		})
	}
	return out
}

// dedupKey lowercases and truncates a title so near-identical headlines
// collapse onto one key.
func dedupKey(title string) string {
	k := strings.ToLower(strings.TrimSpace(title))
	if len(k) > dedupPrefixLen {
		k = k[:dedupPrefixLen]
	}
	return k
}

//Personal.AI order the ending
