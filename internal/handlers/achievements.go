package handlers

import (
	"net/http"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/viewstate"
)

// ListAchievements returns a page of achievements ordered by rarity
func (h *Handler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	state := viewstate.ParseList(r.URL.Query(), "", "")
	if !state.Canonical() {
		h.redirectCanonical(w, r, state.Encode())
		return
	}

	view, err := h.achievements.Achievements(r.Context(), state.Page, state.PerPage)
	if err != nil {
		h.handleError(w, err, "Achievements")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetAchievement returns one achievement with a page of the players who
// earned it
func (h *Handler) GetAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid achievement id")
		return
	}

	state := viewstate.ParseList(r.URL.Query(), "", "")
	if !state.Canonical() {
		h.redirectCanonical(w, r, state.Encode())
		return
	}

	view, err := h.achievements.Achievement(r.Context(), id, state.Page, state.PerPage)
	if err != nil {
		h.handleError(w, err, "Achievement")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}
