package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/turtacn/GeoSignal-Intelligence/internal/config"
	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
	"github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GeoSignal-Intelligence/pkg/errors"
)

// SearchClient talks to the general web-search API.
type SearchClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
}

// NewSearchClient builds the search provider.
func NewSearchClient(cfg config.NewsConfig, log logging.Logger) *SearchClient {
	if log == nil {
		log = logging.NewNopLogger()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SearchClient{
		baseURL:    cfg.SearchBaseURL,
		apiKey:     cfg.SearchAPIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

type searchRequest struct {
	Query      string `json:"query"`
	Days       int    `json:"days"`
	MaxResults int    `json:"max_results"`
}

type searchResultDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

type searchResponse struct {
	Results []searchResultDTO `json:"results"`
}

// Search runs one query over the last days days.  Search results are not
// cached: the query text varies too much for reuse to pay off.
func (c *SearchClient) Search(ctx context.Context, query string, days int) ([]signal.SearchResult, error) {
	if c.baseURL == "" {
		return nil, nil
	}
	if days < 1 {
		days = 1
	}

	payload, err := json.Marshal(searchRequest{Query: query, Days: days, MaxResults: fetchLimit})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeEnrichmentUnavailable, "failed to build search request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Wrap(err, errors.ErrCodeEnrichmentTimeout, "search request timed out")
		}
		return nil, errors.Wrap(err, errors.ErrCodeEnrichmentUnavailable, "search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, errors.New(errors.ErrCodeEnrichmentUnavailable,
			fmt.Sprintf("search returned status %d", resp.StatusCode))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeEnrichmentParseError, "search response decode failed")
	}

	out := make([]signal.SearchResult, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, signal.SearchResult{Title: r.Title, Content: r.Content, URL: r.URL})
	}
	return out, nil
}

//Personal.AI order the ending
