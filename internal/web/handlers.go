package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowBrowser/internal/apperrors"
	"github.com/Belphemur/ShowBrowser/internal/config"
	"github.com/Belphemur/ShowBrowser/internal/metrics"
	"github.com/Belphemur/ShowBrowser/internal/reporting"
	"github.com/Belphemur/ShowBrowser/internal/ui"
)

// handler serves the search page, the episode fragment and the JSON API
type handler struct {
	directory ui.Directory
	logger    zerolog.Logger
}

func newHandler(directory ui.Directory) *handler {
	return &handler{
		directory: directory,
		logger:    config.GetLogger(),
	}
}

// Index renders the idle page
func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, http.StatusOK, ui.NewPage().State())
}

// Search runs the search flow and, when a show parameter is present, the episode flow.
// Failures keep whatever the page held before the failing step.
func (h *handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		h.writePage(w, http.StatusOK, ui.NewPage().State())
		return
	}

	page := ui.NewPage()
	page.SetQuery(query)
	controller := ui.NewController(h.directory, page)

	if err := controller.Submit(r.Context(), query); err != nil {
		h.logFailure(r, err).Str("query", query).Msg("Search failed")
		h.writePage(w, statusFor(err), page.State())
		return
	}

	if rawID := r.URL.Query().Get("show"); rawID != "" {
		showID, err := strconv.Atoi(rawID)
		if err != nil {
			h.writePage(w, http.StatusBadRequest, page.State())
			return
		}
		if err := controller.SelectShow(r.Context(), showID); err != nil {
			h.logFailure(r, err).Int("show_id", showID).Msg("Episode fetch failed")
			h.writePage(w, statusFor(err), page.State())
			return
		}
	}

	h.writePage(w, http.StatusOK, page.State())
}

// EpisodeItems renders the episode list items of one show for the browser script
func (h *handler) EpisodeItems(w http.ResponseWriter, r *http.Request) {
	showID, ok := showIDFromPath(w, r)
	if !ok {
		return
	}

	page := ui.NewPage()
	if err := ui.NewController(h.directory, page).SelectShow(r.Context(), showID); err != nil {
		h.logFailure(r, err).Int("show_id", showID).Msg("Episode fetch failed")
		w.WriteHeader(statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := ui.WriteEpisodeItems(&buf, page.State().Episodes); err != nil {
		h.logger.Error().Err(err).Msg("Failed to render episode items")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// APISearch returns the normalized shows matching ?q= as JSON
func (h *handler) APISearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter q is required"})
		return
	}

	shows, err := h.directory.SearchShows(r.Context(), query)
	if err != nil {
		h.logFailure(r, err).Str("query", query).Msg("Search failed")
		writeJSON(w, statusFor(err), errorResponse{Error: publicMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, shows)
}

// APIEpisodes returns the normalized episodes of a show as JSON
func (h *handler) APIEpisodes(w http.ResponseWriter, r *http.Request) {
	showID, ok := showIDFromPath(w, r)
	if !ok {
		return
	}

	episodes, err := h.directory.GetEpisodes(r.Context(), showID)
	if err != nil {
		h.logFailure(r, err).Int("show_id", showID).Msg("Episode fetch failed")
		writeJSON(w, statusFor(err), errorResponse{Error: publicMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, episodes)
}

// StaleRender counts a result the browser script dropped because a newer click superseded it
func (h *handler) StaleRender(w http.ResponseWriter, r *http.Request) {
	area := r.URL.Query().Get("area")
	if !staleAreas[area] {
		http.Error(w, "unknown area", http.StatusBadRequest)
		return
	}
	metrics.StaleRendersDiscardedTotal.WithLabelValues(area).Inc()
	w.WriteHeader(http.StatusNoContent)
}

var staleAreas = map[string]bool{"shows": true, "episodes": true}

// Health reports liveness
func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) writePage(w http.ResponseWriter, status int, state ui.PageState) {
	var buf bytes.Buffer
	if err := ui.WritePage(&buf, state); err != nil {
		h.logger.Error().Err(err).Msg("Failed to render page")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// logFailure logs and reports a failed directory call; the caller adds fields and sends the event
func (h *handler) logFailure(r *http.Request, err error) *zerolog.Event {
	route := routeName(r)
	if !errors.Is(err, &apperrors.ErrNotFound{}) {
		reporting.CaptureError(err, map[string]string{"route": route})
	}
	return zerolog.Ctx(r.Context()).Warn().Err(err).Str("route", route)
}

// publicMessage hides upstream URLs and wrapped causes from API callers; the log and Sentry keep them
func publicMessage(err error) string {
	if errors.Is(err, &apperrors.ErrNotFound{}) {
		return "show not found"
	}
	return "show directory unavailable"
}

// statusFor maps a directory error to the status returned to the browser
func statusFor(err error) int {
	if errors.Is(err, &apperrors.ErrNotFound{}) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

func showIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	showID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid show id", http.StatusBadRequest)
		return 0, false
	}
	return showID, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
