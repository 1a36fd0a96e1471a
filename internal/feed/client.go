package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultFeedURL is the provider's live-match feed endpoint.
const DefaultFeedURL = "http://synd.cricbuzz.com/j2me/1.0/livematches.xml"

const (
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerMinute = 30
)

// Client fetches the raw live-match XML document. One blocking GET per
// call, rate limited via a token bucket. No retries.
type Client struct {
	httpClient *http.Client
	feedURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a feed client with rate limiting. Zero values fall back
// to the provider defaults.
func NewClient(feedURL string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		feedURL:    feedURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// FeedURL returns the configured feed endpoint.
func (c *Client) FeedURL() string { return c.feedURL }

// Fetch performs a rate-limited GET of the feed and returns the raw XML
// document. Any response other than 200 is a *FetchError carrying the
// observed status.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: c.feedURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	c.logger.Debug("feed fetched", "bytes", len(body))
	return body, nil
}
