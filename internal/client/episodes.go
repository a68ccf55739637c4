package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Belphemur/ShowBrowser/internal/apperrors"
	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/models"
)

// GetEpisodes fetches the episode list of a show. An unknown show yields *apperrors.ErrNotFound.
func (c *client) GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	logger := config.GetLogger()

	endpoint := fmt.Sprintf("%s/shows/%d/episodes", c.baseURL, showID)
	cacheKey := fmt.Sprintf("episodes:%d", showID)

	logger.Info().Int("show_id", showID).Msg("Fetching episodes")

	body, fromCache, err := c.fetch(ctx, "episodes", cacheKey, endpoint)
	if err != nil {
		var upstream *apperrors.ErrUpstream
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return nil, apperrors.NewShowNotFoundError(showID)
		}
		return nil, fmt.Errorf("get episodes for show %d: %w", showID, err)
	}

	episodes, err := c.episodeParser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("get episodes for show %d: %w", showID, err)
	}
	c.remember(ctx, cacheKey, body, fromCache)

	logger.Info().Int("show_id", showID).Int("count", len(episodes)).Bool("cached", fromCache).Msg("Episodes fetched")
	return episodes, nil
}
