package models

// Show represents a TV show returned by a directory search
type Show struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"` // May contain markup from the directory
	Image   string `json:"image"`
}
