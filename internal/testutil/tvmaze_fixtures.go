package testutil

import (
	"encoding/json"

	"github.com/Belphemur/ShowBrowser/internal/models"
)

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// ShowRecordOptions contains options for generating a search result record
type ShowRecordOptions struct {
	ID       int
	Name     string
	Summary  *string // nil renders as JSON null
	ImageURL string  // empty renders "image": null
	Score    float64
}

// EpisodeRecordOptions contains options for generating an episode record
type EpisodeRecordOptions struct {
	ID     int
	Name   string
	Season int
	Number *int // nil renders as JSON null, like TVMaze specials
}

// GenerateSearchJSON builds a /search/shows response body in the shape TVMaze returns
func GenerateSearchJSON(shows []ShowRecordOptions) string {
	records := make([]models.SearchResultRecord, 0, len(shows))
	for _, s := range shows {
		record := models.SearchResultRecord{
			Score: s.Score,
			Show: models.ShowRecord{
				ID:      s.ID,
				Name:    s.Name,
				Summary: s.Summary,
			},
		}
		if s.ImageURL != "" {
			record.Show.Image = &models.ImageRecord{
				Medium:   s.ImageURL + "?size=medium",
				Original: s.ImageURL,
			}
		}
		records = append(records, record)
	}
	return mustMarshal(records)
}

// GenerateEpisodesJSON builds a /shows/{id}/episodes response body
func GenerateEpisodesJSON(episodes []EpisodeRecordOptions) string {
	records := make([]models.EpisodeRecord, 0, len(episodes))
	for _, e := range episodes {
		records = append(records, models.EpisodeRecord{
			ID:     e.ID,
			Name:   e.Name,
			Season: e.Season,
			Number: e.Number,
		})
	}
	return mustMarshal(records)
}

func mustMarshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
