package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/metrics"
	"github.com/Belphemur/ShowBrowser/internal/models"
)

// Directory is the remote show directory the flows read from
type Directory interface {
	SearchShows(ctx context.Context, query string) ([]models.Show, error)
	GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error)
}

// Controller wires user actions to fetches and renders.
//
// Each display area has its own sequence. An action takes a ticket from the
// sequence before fetching and only renders if its ticket is still the latest,
// so the most recent action wins regardless of response order. A search also
// advances the episodes sequence, which drops any episode fetch still in flight.
type Controller struct {
	directory Directory
	surface   Surface
	logger    zerolog.Logger

	// mu makes the ticket check and the surface write one step
	mu          sync.Mutex
	showsSeq    atomic.Uint64
	episodesSeq atomic.Uint64
}

// NewController creates a controller rendering onto surface
func NewController(directory Directory, surface Surface) *Controller {
	return &Controller{
		directory: directory,
		surface:   surface,
		logger:    config.GetLogger(),
	}
}

// Submit handles a search form submission. A blank query is ignored: nothing
// is fetched and the surface is left untouched.
func (c *Controller) Submit(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		c.logger.Debug().Msg("Ignoring empty search")
		return nil
	}

	ticket := c.showsSeq.Add(1)
	c.episodesSeq.Add(1)

	c.mu.Lock()
	c.surface.HideEpisodes()
	c.mu.Unlock()

	shows, err := c.directory.SearchShows(ctx, query)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.showsSeq.Load() != ticket {
		c.discard("shows", ticket)
		return nil
	}
	c.surface.ReplaceShows(RenderShows(shows))
	return nil
}

// SelectShow handles a click on a show's Episodes control
func (c *Controller) SelectShow(ctx context.Context, showID int) error {
	ticket := c.episodesSeq.Add(1)

	episodes, err := c.directory.GetEpisodes(ctx, showID)
	if err != nil {
		return fmt.Errorf("episodes of show %d: %w", showID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.episodesSeq.Load() != ticket {
		c.discard("episodes", ticket)
		return nil
	}
	list := RenderEpisodes(episodes)
	list.ShowID = showID
	c.surface.ReplaceEpisodes(list)
	return nil
}

func (c *Controller) discard(area string, ticket uint64) {
	metrics.StaleRendersDiscardedTotal.WithLabelValues(area).Inc()
	c.logger.Debug().Str("area", area).Uint64("ticket", ticket).Msg("Discarding superseded result")
}
