// Package ui turns shows and episodes into a description of the page and
// drives the search and episode flows against a Surface.
package ui

import (
	"fmt"
	"html/template"

	"github.com/Belphemur/ShowBrowser/internal/models"
)

// ShowCard is the visual card of one show. ID lets a later click recover the show.
type ShowCard struct {
	ID      int
	Name    string
	Summary template.HTML
	Image   string
}

// ShowList is the content of the shows display area
type ShowList struct {
	Cards []ShowCard
}

// EpisodeItem is one line of the episode list
type EpisodeItem struct {
	ID   int
	Text string
}

// EpisodeList is the content of the episodes display area
type EpisodeList struct {
	ShowID  int
	Items   []EpisodeItem
	Visible bool
}

// RenderShows builds one card per show, in input order
func RenderShows(shows []models.Show) ShowList {
	cards := make([]ShowCard, 0, len(shows))
	for _, show := range shows {
		cards = append(cards, ShowCard{
			ID:      show.ID,
			Name:    show.Name,
			Summary: SanitizeSummary(show.Summary),
			Image:   show.Image,
		})
	}
	return ShowList{Cards: cards}
}

// RenderEpisodes builds one line per episode, in input order, and marks the area visible
func RenderEpisodes(episodes []models.Episode) EpisodeList {
	items := make([]EpisodeItem, 0, len(episodes))
	for _, episode := range episodes {
		items = append(items, EpisodeItem{
			ID:   episode.ID,
			Text: FormatEpisode(episode),
		})
	}
	return EpisodeList{Items: items, Visible: true}
}

// FormatEpisode renders "<name> (Season <season>, Number <number>)"
func FormatEpisode(episode models.Episode) string {
	return fmt.Sprintf("%s (Season %d, Number %d)", episode.Name, episode.Season, episode.Number)
}
