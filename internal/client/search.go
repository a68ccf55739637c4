package client

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/models"
)

// SearchShows searches the directory by title. The query is percent-encoded;
// rejecting empty queries is the caller's job.
func (c *client) SearchShows(ctx context.Context, query string) ([]models.Show, error) {
	logger := config.GetLogger()

	normalized := norm.NFC.String(strings.TrimSpace(query))
	params := url.Values{}
	params.Set("q", normalized)
	endpoint := fmt.Sprintf("%s/search/shows?%s", c.baseURL, params.Encode())
	cacheKey := searchCacheKey(normalized)

	logger.Info().Str("query", normalized).Msg("Searching shows")

	body, fromCache, err := c.fetch(ctx, "search", cacheKey, endpoint)
	if err != nil {
		return nil, fmt.Errorf("search shows %q: %w", normalized, err)
	}

	shows, err := c.showParser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("search shows %q: %w", normalized, err)
	}
	c.remember(ctx, cacheKey, body, fromCache)

	logger.Info().Str("query", normalized).Int("count", len(shows)).Bool("cached", fromCache).Msg("Search completed")
	return shows, nil
}

// searchCacheKey folds case so equivalent queries share a cache entry.
// A Caser is stateful, so one is created per call.
func searchCacheKey(normalizedQuery string) string {
	return "search:" + cases.Fold().String(normalizedQuery)
}
