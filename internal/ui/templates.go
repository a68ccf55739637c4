package ui

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

// WritePage renders the full page for state
func WritePage(w io.Writer, state PageState) error {
	return templates.ExecuteTemplate(w, "page", state)
}

// WriteEpisodeItems renders only the items of an episode list, for swapping
// into #episodes-list
func WriteEpisodeItems(w io.Writer, list EpisodeList) error {
	return templates.ExecuteTemplate(w, "episode-items", list)
}

// Static returns the browser assets (app.js) rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
