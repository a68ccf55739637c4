package models

// SearchResultRecord is one entry of the TVMaze /search/shows response
type SearchResultRecord struct {
	Score float64    `json:"score"`
	Show  ShowRecord `json:"show"`
}

// ShowRecord is the show object nested in a search result
type ShowRecord struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Summary *string      `json:"summary"`
	Image   *ImageRecord `json:"image"`
}

// ImageRecord holds the image URLs TVMaze provides for a show
type ImageRecord struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// EpisodeRecord is one entry of the TVMaze /shows/{id}/episodes response.
// Number is null for specials.
type EpisodeRecord struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number *int   `json:"number"`
}
