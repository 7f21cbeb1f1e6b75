package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/viewstate"
)

// userPage is the tab-driven profile payload. Only the section for the
// requested tab is populated.
type userPage struct {
	Name         string                                  `json:"name"`
	Tab          string                                  `json:"tab"`
	Overview     *logic.UserOverviewView                 `json:"overview,omitempty"`
	Tournaments  *logic.UserTournamentsView              `json:"tournaments,omitempty"`
	Encounters   *logic.ListView[logic.UserEncounterRow] `json:"encounters,omitempty"`
	Heroes       []models.HeroWithUserStats              `json:"heroes,omitempty"`
	Achievements []logic.AchievementRow                  `json:"achievements,omitempty"`
}

// SearchUsers returns player suggestions for the search box
func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("search"))
	if query == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing search query")
		return
	}

	view, err := h.users.Search(r.Context(), query)
	if err != nil {
		h.handleError(w, err, "Users")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetUser returns the profile page for the requested tab. An unknown
// tab or repaired pagination redirects to the canonical URL.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing player name")
		return
	}

	state := viewstate.ParseUser(r.URL.Query())
	if !state.Canonical() {
		h.redirectCanonical(w, r, state.Encode())
		return
	}

	ctx := r.Context()
	page := userPage{Name: name, Tab: state.Tab}

	var err error
	switch state.Tab {
	case viewstate.UserTabOverview:
		page.Overview, err = h.users.Overview(ctx, name)
	case viewstate.UserTabTournaments:
		page.Tournaments, err = h.users.Tournaments(ctx, name)
	case viewstate.UserTabEncounters:
		page.Encounters, err = h.users.Encounters(ctx, name,
			state.List.Page, state.List.PerPage, state.List.Sort, state.List.Order)
	case viewstate.UserTabHeroes:
		page.Heroes, err = h.users.Heroes(ctx, name)
	case viewstate.UserTabAchievements:
		var user *models.User
		user, err = h.users.Resolve(ctx, name)
		if err == nil {
			page.Achievements, err = h.achievements.UserAchievements(ctx, user.ID)
		}
	}
	if err != nil {
		h.handleError(w, err, "Player")
		return
	}

	h.jsonResponse(w, http.StatusOK, page)
}

// GetUserTournament returns one player's run through one tournament
func (h *Handler) GetUserTournament(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	view, err := h.users.Tournament(r.Context(), name, id)
	if err != nil {
		h.handleError(w, err, "Player tournament")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}
