// Package news implements the two external enrichment collaborators: a
// structured events provider and a general-search provider.  Both are
// best-effort; callers swallow every error these clients return.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/turtacn/GeoSignal-Intelligence/internal/config"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

const (
	// fetchLimit matches the enricher's per-source candidate cap.
	fetchLimit = 5

	defaultTimeout  = 3 * time.Second
	defaultCacheTTL = 10 * time.Minute
)

// StructuredClient talks to the structured news-events API.
type StructuredClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      redis.Cache
	cacheTTL   time.Duration
	logger     logging.Logger
}

// NewStructuredClient builds the structured provider.  cache may be nil to
// disable response caching.
func NewStructuredClient(cfg config.NewsConfig, cache redis.Cache, log logging.Logger) *StructuredClient {
	if log == nil {
		log = logging.NewNopLogger()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &StructuredClient{
		baseURL:    cfg.StructuredBaseURL,
		apiKey:     cfg.StructuredAPIKey,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		cacheTTL:   ttl,
		logger:     log,
	}
}

type structuredEventDTO struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Location string `json:"location"`
	Date     string `json:"date"`
}

type structuredResponse struct {
	Events []structuredEventDTO `json:"events"`
}

// SearchRecentEvents fetches events in [from, to].  Responses are cached per
// hour-truncated window so repeated map loads within the TTL reuse one
// upstream call.
func (c *StructuredClient) SearchRecentEvents(ctx context.Context, from, to time.Time) ([]signal.NewsEvent, error) {
	if c.baseURL == "" {
		return nil, nil
	}

	if c.cache == nil {
		return c.fetch(ctx, from, to)
	}

	key := fmt.Sprintf("news:structured:%d:%d", from.Truncate(time.Hour).Unix(), to.Truncate(time.Hour).Unix())
	var events []signal.NewsEvent
	err := c.cache.GetOrSet(ctx, key, &events, c.cacheTTL, func(ctx context.Context) (interface{}, error) {
		return c.fetch(ctx, from, to)
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (c *StructuredClient) fetch(ctx context.Context, from, to time.Time) ([]signal.NewsEvent, error) {
	q := url.Values{}
	q.Set("date_start", from.UTC().Format(time.RFC3339))
	q.Set("date_end", to.UTC().Format(time.RFC3339))
	q.Set("limit", fmt.Sprintf("%d", fetchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/events?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeEnrichmentUnavailable, "failed to build structured news request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeEnrichmentUnavailable, "structured news request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, errors.New(errors.ErrCodeEnrichmentUnavailable,
			fmt.Sprintf("structured news returned status %d", resp.StatusCode))
	}

	var body structuredResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeEnrichmentParseError, "structured news response decode failed")
	}

	out := make([]signal.NewsEvent, 0, len(body.Events))
	for _, ev := range body.Events {
		item := signal.NewsEvent{Title: ev.Title, Summary: ev.Summary, Location: ev.Location}
		if ev.Date != "" {
			if t, perr := time.Parse(time.RFC3339, ev.Date); perr == nil {
				item.Date = t
			}
		}
		out = append(out, item)
	}
	return out, nil
}

//Personal.AI order the ending
