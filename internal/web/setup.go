package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/ui"
)

// NewRouter builds the routes of the show browser on top of directory
func NewRouter(directory ui.Directory) *mux.Router {
	h := newHandler(directory)

	r := mux.NewRouter()
	r.Use(requestID(config.GetLogger()), instrument())

	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	r.HandleFunc("/shows/{id:[0-9]+}/episodes", h.EpisodeItems).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/events/stale-render", h.StaleRender).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/shows", h.APISearch).Methods(http.MethodGet)
	api.HandleFunc("/shows/{id:[0-9]+}/episodes", h.APIEpisodes).Methods(http.MethodGet)

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServerFS(ui.Static())))

	return r
}

// NewHTTPServer creates the front-end HTTP server listening on the configured address
func NewHTTPServer(cfg *config.Config, directory ui.Directory) *http.Server {
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, port),
		Handler:           NewRouter(directory),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
