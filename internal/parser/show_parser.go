package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/models"
)

// ShowParser decodes TVMaze search results into shows
type ShowParser struct {
	defaultImageURL string
}

// NewShowParser creates a new show parser. Shows without an image get defaultImageURL.
func NewShowParser(defaultImageURL string) *ShowParser {
	if defaultImageURL == "" {
		defaultImageURL = config.DefaultImageURL
	}
	return &ShowParser{
		defaultImageURL: defaultImageURL,
	}
}

// Parse decodes the search response and normalizes each record, preserving
// the ranking order of the directory
func (p *ShowParser) Parse(body io.Reader) ([]models.Show, error) {
	logger := config.GetLogger()

	var records []models.SearchResultRecord
	if err := json.NewDecoder(body).Decode(&records); err != nil {
		logger.Error().Err(err).Msg("Failed to decode search results")
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	shows := make([]models.Show, 0, len(records))
	for _, record := range records {
		shows = append(shows, p.normalize(record.Show))
	}

	logger.Debug().Int("total_shows", len(shows)).Msg("Completed parsing search results")
	return shows, nil
}

func (p *ShowParser) normalize(record models.ShowRecord) models.Show {
	show := models.Show{
		ID:    record.ID,
		Name:  record.Name,
		Image: p.defaultImageURL,
	}
	if record.Summary != nil {
		show.Summary = *record.Summary
	}
	if record.Image != nil && record.Image.Original != "" {
		show.Image = record.Image.Original
	}
	return show
}
