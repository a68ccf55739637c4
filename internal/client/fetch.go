package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Belphemur/ShowBrowser/internal/apperrors"
	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/metrics"
)

// fetch returns the body of a GET to url, serving it from the cache when possible.
// Non-200 responses are returned as *apperrors.ErrUpstream.
// The caller stores the body with remember once it has been decoded successfully.
func (c *client) fetch(ctx context.Context, endpoint, cacheKey, url string) ([]byte, bool, error) {
	logger := config.GetLogger()

	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, cacheKey); ok {
			logger.Debug().Str("key", cacheKey).Msg("Serving directory response from cache")
			return body, true, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", config.GetUserAgent())
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.TVMazeRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TVMazeRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, false, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	metrics.TVMazeRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Str("url", url).Int("status", resp.StatusCode).Msg("Directory returned non-success status")
		return nil, false, apperrors.NewUpstreamError(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read body: %w", err)
	}
	return body, false, nil
}

// remember stores a successfully decoded response body.
func (c *client) remember(ctx context.Context, cacheKey string, body []byte, fromCache bool) {
	if c.cache == nil || fromCache {
		return
	}
	c.cache.Set(ctx, cacheKey, body)
}
