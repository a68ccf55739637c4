package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/Belphemur/ShowBrowser/internal/cache"
	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/models"
	"github.com/Belphemur/ShowBrowser/internal/parser"
)

// Client defines the interface for querying the TVMaze show directory
type Client interface {
	// SearchShows returns the shows matching query in the directory's ranking order.
	SearchShows(ctx context.Context, query string) ([]models.Show, error)

	// GetEpisodes returns the episodes of a show in the order the directory lists them.
	GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	baseURL       string
	showParser    parser.Parser[models.Show]
	episodeParser parser.Parser[models.Episode]
	cache         cache.Cache // nil when caching is disabled
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	requestTimeout := 30 * time.Second
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			requestTimeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve all its settings (timeouts, connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	// Every call is bounded by the timeout policy; the directory is never retried.
	timeoutPolicy := timeout.New[*http.Response](requestTimeout)
	httpClient := &http.Client{
		Transport: failsafehttp.NewRoundTripper(newCompressionTransport(baseTransport), timeoutPolicy),
	}

	baseURL := cfg.TVMazeDomain
	if baseURL == "" {
		baseURL = config.DefaultTVMazeDomain
	}

	return &client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		showParser:    parser.NewShowParser(cfg.DefaultImageURL),
		episodeParser: parser.NewEpisodeParser(),
		cache:         newResponseCache(cfg),
	}
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}
