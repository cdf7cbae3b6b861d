// Overview map API: signals, top events, place resolution.

package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// OverviewClient accesses the overview map endpoints.
type OverviewClient struct {
	client *Client
}

// MapQuery describes an overview map request.  Zero values are omitted from
// the query string and the server applies its defaults.
type MapQuery struct {
	// DateRange is the lookback window: "24h", "7d", or "30d".
	DateRange string

	// Scope selects "global" or "watchlist" aggregation.
	Scope string

	// Search is a free-text filter over signal labels and impact lines.
	Search string

	// Countries restricts signals to the listed countries.
	Countries []string

	// Types restricts signals to the listed categories.
	Types []string

	// Sources restricts signals to rows from the listed providers.
	Sources []string

	// MinImportance drops signals below this importance (0-100).
	MinImportance int

	// MaxSignals caps the number of returned signals.
	MaxSignals int

	// UserID scopes watchlist lookups.
	UserID string
}

// MapSignal is one plotted marker on the world map.
type MapSignal struct {
	ID            string  `json:"id"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Type          string  `json:"type"`
	Scope         string  `json:"scope"`
	Importance    int     `json:"importance"`
	Confidence    int     `json:"confidence"`
	OccurredAt    string  `json:"occurred_at"`
	LabelShort    string  `json:"label_short"`
	SubtitleShort string  `json:"subtitle_short"`
	ImpactOneLine string  `json:"impact_one_line"`
	InvestigateID string  `json:"investigate_id"`
}

// MapEvent is a headline entry in the top-events rail.
type MapEvent struct {
	Title      string `json:"title"`
	Summary    string `json:"summary,omitempty"`
	OccurredAt string `json:"occurred_at,omitempty"`
	Source     string `json:"source"`
}

// MapImpact is a watchlisted-company impact headline.
type MapImpact struct {
	Company     string `json:"company"`
	Headline    string `json:"headline"`
	GeneratedAt string `json:"generated_at"`
}

// MapStats is the server's pipeline accounting for one request.
type MapStats struct {
	TotalQueried       int    `json:"total_queried"`
	GeoMatched         int    `json:"geo_matched"`
	GeoMissed          int    `json:"geo_missed"`
	FilteredOut        int    `json:"filtered_out"`
	FinalCount         int    `json:"final_count"`
	EffectiveDateRange string `json:"effective_date_range"`
}

// MapResponse is the complete overview map payload.
type MapResponse struct {
	Signals    []MapSignal `json:"signals"`
	TopEvents  []MapEvent  `json:"top_events"`
	TopImpacts []MapImpact `json:"top_impacts"`
	IsDemo     bool        `json:"is_demo"`
	Stats      MapStats    `json:"stats"`
}

// ResolveResponse is a single place resolution.
type ResolveResponse struct {
	Query string  `json:"query"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

// GetMap fetches the overview map for the given query.
func (oc *OverviewClient) GetMap(ctx context.Context, q MapQuery) (*MapResponse, error) {
	values := url.Values{}
	if q.DateRange != "" {
		values.Set("dateRange", q.DateRange)
	}
	if q.Scope != "" {
		values.Set("scope", q.Scope)
	}
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	if len(q.Countries) > 0 {
		values.Set("countries", strings.Join(q.Countries, ","))
	}
	if len(q.Types) > 0 {
		values.Set("types", strings.Join(q.Types, ","))
	}
	if len(q.Sources) > 0 {
		values.Set("sources", strings.Join(q.Sources, ","))
	}
	if q.MinImportance > 0 {
		values.Set("minImportance", strconv.Itoa(q.MinImportance))
	}
	if q.MaxSignals > 0 {
		values.Set("maxSignals", strconv.Itoa(q.MaxSignals))
	}
	if q.UserID != "" {
		values.Set("userId", q.UserID)
	}

	path := "/api/v1/overview/map"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp MapResponse
	if err := oc.client.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResolvePlace maps a free-text place name onto coordinates.
func (oc *OverviewClient) ResolvePlace(ctx context.Context, query string) (*ResolveResponse, error) {
	path := "/api/v1/overview/resolve?q=" + url.QueryEscape(query)

	var resp ResolveResponse
	if err := oc.client.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

//Personal.AI order the ending
