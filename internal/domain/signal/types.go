// Package signal holds the domain types and classification rules for
// overview map signals.  Everything here is pure: no I/O, no clocks, no
// collaborators, so the application layer can be exercised with plain
// fixtures.
package signal

import "time"

// SignalType is the map-facing category of an event.
type SignalType string

const (
	TypeGeopolitics  SignalType = "geopolitics"
	TypeSupplyChains SignalType = "supply-chains"
	TypeMarkets      SignalType = "markets"
	TypeEnergy       SignalType = "energy"
	TypeSecurity     SignalType = "security"
)

// AllTypes lists every signal type in display order.
var AllTypes = []SignalType{
	TypeGeopolitics,
	TypeSupplyChains,
	TypeMarkets,
	TypeEnergy,
	TypeSecurity,
}

// ImpactScope buckets an event's impact score for scope filtering.
type ImpactScope string

const (
	ScopeLocal    ImpactScope = "local"
	ScopeRegional ImpactScope = "regional"
	ScopeGlobal   ImpactScope = "global"
)

// EventRow is one classified event as stored upstream.  Pointer fields are
// nullable columns.
type EventRow struct {
	ID               string
	EventType        string
	Sector           string
	Country          string
	Region           string
	Summary          string
	WhyItMatters     string
	FirstOrderEffect string
	ImpactScore      *float64
	Confidence       *float64
	CreatedAt        time.Time
	SourceEventID    string
}

// OverviewSignal is one plotted marker on the world map.
type OverviewSignal struct {
	ID            string     `json:"id"`
	Lat           float64    `json:"lat"`
	Lon           float64    `json:"lon"`
	Type          SignalType `json:"type"`
	Scope         ImpactScope `json:"scope"`
	Importance    int        `json:"importance"`
	Confidence    int        `json:"confidence"`
	OccurredAt    time.Time  `json:"occurred_at"`
	LabelShort    string     `json:"label_short"`
	SubtitleShort string     `json:"subtitle_short"`
	ImpactOneLine string     `json:"impact_one_line"`
	InvestigateID string     `json:"investigate_id"`
}

// EventSummary is a headline entry in the "top events" rail.  Source tells
// the frontend where the entry came from: internal rows or one of the
// enrichment providers.
type EventSummary struct {
	Title      string    `json:"title"`
	Summary    string    `json:"summary,omitempty"`
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	Source     string    `json:"source"`
}

const (
	SummarySourceInternal   = "internal"
	SummarySourceStructured = "structured"
	SummarySourceSearch     = "search"
)

// CorporateImpact is a watchlisted-company impact headline.
type CorporateImpact struct {
	Company     string    `json:"company"`
	Headline    string    `json:"headline"`
	GeneratedAt time.Time `json:"generated_at"`
}

// WatchlistEntities groups a user's watchlist rows by entity kind, as used
// by the countries scope filter.
type WatchlistEntities struct {
	EventIDs  []string
	Sectors   []string
	Countries []string
}

// IsEmpty reports whether the watchlist carries no entities at all.
func (w WatchlistEntities) IsEmpty() bool {
	return len(w.EventIDs) == 0 && len(w.Sectors) == 0 && len(w.Countries) == 0
}

// NewsEvent is a structured-provider event used for top-events enrichment.
type NewsEvent struct {
	Title    string
	Summary  string
	Location string
	Date     time.Time
}

// SearchResult is a search-provider hit used for top-events enrichment.
type SearchResult struct {
	Title   string
	Content string
	URL     string
}

// DateRange is the requested lookback window.
type DateRange string

const (
	Range24h DateRange = "24h"
	Range7d  DateRange = "7d"
	Range30d DateRange = "30d"
)

// wideningLadder orders the windows the aggregator walks when a window
// yields no signals.
var wideningLadder = []DateRange{Range24h, Range7d, Range30d}

// Valid reports whether r is one of the supported windows.
func (r DateRange) Valid() bool {
	switch r {
	case Range24h, Range7d, Range30d:
		return true
	}
	return false
}

// Duration converts the window to a lookback duration.  Unknown values fall
// back to 24h, matching the request-parsing default.
func (r DateRange) Duration() time.Duration {
	switch r {
	case Range7d:
		return 7 * 24 * time.Hour
	case Range30d:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Widen returns the next wider window and true, or r and false when the
// ladder is exhausted.
func (r DateRange) Widen() (DateRange, bool) {
	for i, step := range wideningLadder {
		if step == r && i+1 < len(wideningLadder) {
			return wideningLadder[i+1], true
		}
	}
	return r, false
}

// ScopeMode selects which rows the aggregation considers.
type ScopeMode string

const (
	ScopeModeGlobal    ScopeMode = "global"
	ScopeModeWatchlist ScopeMode = "watchlist"
)

// AggregationParams is the normalised request for one overview map build.
type AggregationParams struct {
	UserID         string
	DateRange      DateRange
	ScopeMode      ScopeMode
	Search         string
	Countries      []string
	SourcesEnabled []string
	TypesEnabled   []SignalType
	MinImportance  int
	MaxSignals     int
}

// OverviewMapStats is the per-request pipeline accounting record.
type OverviewMapStats struct {
	TotalQueried       int       `json:"total_queried"`
	GeoMatched         int       `json:"geo_matched"`
	GeoMissed          int       `json:"geo_missed"`
	FilteredOut        int       `json:"filtered_out"`
	FinalCount         int       `json:"final_count"`
	EffectiveDateRange DateRange `json:"effective_date_range"`
}

//Personal.AI order the ending
