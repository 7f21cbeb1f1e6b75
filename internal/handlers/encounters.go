package handlers

import (
	"net/http"
	"strconv"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/viewstate"
)

// ListEncounters returns a page of encounters, optionally filtered by
// search text and tournament
func (h *Handler) ListEncounters(w http.ResponseWriter, r *http.Request) {
	state := viewstate.ParseList(r.URL.Query(), "", "")
	if !state.Canonical() {
		h.redirectCanonical(w, r, state.Encode())
		return
	}

	var tournamentID int64
	if raw := r.URL.Query().Get("tournament_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
			return
		}
		tournamentID = id
	}

	view, err := h.encounters.Encounters(r.Context(),
		state.Page, state.PerPage, state.Query, tournamentID)
	if err != nil {
		h.handleError(w, err, "Encounters")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetEncounter returns one encounter with its matches
func (h *Handler) GetEncounter(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid encounter id")
		return
	}

	view, err := h.encounters.Encounter(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "Encounter")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// ListMatches returns a page of maps played, optionally filtered by
// search text and tournament
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	state := viewstate.ParseList(r.URL.Query(), "", "")
	if !state.Canonical() {
		h.redirectCanonical(w, r, state.Encode())
		return
	}

	var tournamentID int64
	if raw := r.URL.Query().Get("tournament_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
			return
		}
		tournamentID = id
	}

	view, err := h.encounters.Matches(r.Context(),
		state.Page, state.PerPage, state.Query, tournamentID)
	if err != nil {
		h.handleError(w, err, "Matches")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetMatch returns one match with per-player statistics, rosters in
// display order
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid match id")
		return
	}

	view, err := h.encounters.Match(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "Match")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}
