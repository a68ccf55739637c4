package ui

import "sync"

// Surface is the only place where rendered output is written. Renderers never
// read it back.
type Surface interface {
	ReplaceShows(list ShowList)
	ReplaceEpisodes(list EpisodeList)
	HideEpisodes()
}

// PageState is a snapshot of everything the page template shows
type PageState struct {
	Query    string
	Shows    ShowList
	Episodes EpisodeList
}

// Page is an in-memory Surface. Its state is rendered to HTML by WritePage.
type Page struct {
	mu    sync.RWMutex
	state PageState
}

// NewPage returns the idle page: no shows, episode area hidden
func NewPage() *Page {
	return &Page{}
}

func (p *Page) ReplaceShows(list ShowList) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Shows = ShowList{Cards: append([]ShowCard(nil), list.Cards...)}
}

func (p *Page) ReplaceEpisodes(list EpisodeList) {
	p.mu.Lock()
	defer p.mu.Unlock()
	list.Items = append([]EpisodeItem(nil), list.Items...)
	p.state.Episodes = list
}

// HideEpisodes hides the episode area; its items stay in place until the next ReplaceEpisodes
func (p *Page) HideEpisodes() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Episodes.Visible = false
}

// SetQuery records the text shown in the search box
func (p *Page) SetQuery(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Query = query
}

// State returns a copy of the current page state
func (p *Page) State() PageState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	state := p.state
	state.Shows.Cards = append([]ShowCard(nil), p.state.Shows.Cards...)
	state.Episodes.Items = append([]EpisodeItem(nil), p.state.Episodes.Items...)
	return state
}
