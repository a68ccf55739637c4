package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/models"
)

// EpisodeParser decodes a TVMaze episode list
type EpisodeParser struct{}

// NewEpisodeParser creates a new episode parser
func NewEpisodeParser() *EpisodeParser {
	return &EpisodeParser{}
}

// Parse decodes the episode list in the order returned by the directory.
// Specials carry a null number, which becomes 0.
func (p *EpisodeParser) Parse(body io.Reader) ([]models.Episode, error) {
	logger := config.GetLogger()

	var records []models.EpisodeRecord
	if err := json.NewDecoder(body).Decode(&records); err != nil {
		logger.Error().Err(err).Msg("Failed to decode episode list")
		return nil, fmt.Errorf("failed to decode episode list: %w", err)
	}

	episodes := make([]models.Episode, 0, len(records))
	for _, record := range records {
		episode := models.Episode{
			ID:     record.ID,
			Name:   record.Name,
			Season: record.Season,
		}
		if record.Number != nil {
			episode.Number = *record.Number
		}
		episodes = append(episodes, episode)
	}

	logger.Debug().Int("total_episodes", len(episodes)).Msg("Completed parsing episode list")
	return episodes, nil
}
