// Package feed fetches the N0NBH solar XML feed and extracts the single
// solar record from it.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxBodySize caps the response read. The feed is a few KB of XML; anything
// larger indicates a misbehaving endpoint.
const maxBodySize = 1 << 20

// Client fetches the solar feed with a bounded timeout.
type Client struct {
	httpClient *http.Client
	userAgent  string
	log        *zap.Logger
}

// NewClient creates a feed client. The timeout bounds the whole request,
// including body read; it is the only time-based abort in the pipeline.
func NewClient(timeout time.Duration, userAgent string, log *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		log:        log,
	}
}

// Fetch issues a single GET to the feed URL and returns the raw body.
// There are no retries; the external scheduler re-runs failed invocations.
// Transport errors, timeouts and non-2xx responses wrap ErrFeedUnavailable.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFeedUnavailable, err)
	}
	req.Header.Set("Accept", "application/xml, text/xml")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d %s", ErrFeedUnavailable, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFeedUnavailable, err)
	}

	c.log.Debug("fetched solar feed",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
	)
	return body, nil
}
