package handlers

import (
	"fmt"
	"net/http"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/viewstate"
)

// tournamentPage is the tab-driven tournament page payload. Only the
// section for the requested tab is populated.
type tournamentPage struct {
	Tournament *models.Tournament                  `json:"tournament"`
	Tab        string                              `json:"tab"`
	Standings  *logic.StandingsView                `json:"standings,omitempty"`
	Teams      *logic.TeamsView                    `json:"teams,omitempty"`
	Matches    *logic.ListView[logic.EncounterRow] `json:"matches,omitempty"`
	Heroes     []models.HeroPlaytime               `json:"heroes,omitempty"`
}

// ListTournaments returns all tournaments split into regular events and
// leagues
func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	view, err := h.tournaments.Tournaments(r.Context())
	if err != nil {
		h.handleError(w, err, "Tournaments")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetLatestTournament redirects to the newest non-league tournament
func (h *Handler) GetLatestTournament(w http.ResponseWriter, r *http.Request) {
	id, err := h.tournaments.DefaultTournamentID(r.Context())
	if err != nil {
		h.handleError(w, err, "Tournaments")
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/api/tournaments/%d", id), http.StatusFound)
}

// GetTournament returns the tournament page for the requested tab. An
// unknown tab or repaired pagination redirects to the canonical URL.
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	state := viewstate.ParseTournament(r.URL.Query())
	if !state.Canonical() {
		h.redirectCanonical(w, r, state.Encode())
		return
	}

	ctx := r.Context()
	tournament, err := h.tournaments.Tournament(ctx, id)
	if err != nil {
		h.handleError(w, err, "Tournament")
		return
	}

	page := tournamentPage{Tournament: tournament, Tab: state.Tab}
	switch state.Tab {
	case viewstate.TabOverview, viewstate.TabStandings:
		page.Standings, err = h.tournaments.Standings(ctx, id)
	case viewstate.TabTeams:
		page.Teams, err = h.teams.Teams(ctx, id)
	case viewstate.TabMatches:
		page.Matches, err = h.encounters.Encounters(ctx,
			state.List.Page, state.List.PerPage, state.List.Query, id)
	case viewstate.TabHeroes:
		page.Heroes, err = h.statistics.HeroPlaytime(ctx, id, 0)
	}
	if err != nil {
		h.handleError(w, err, "Tournament "+state.Tab)
		return
	}

	h.jsonResponse(w, http.StatusOK, page)
}

// GetTournamentStandings returns groups and playoff standings for a
// tournament
func (h *Handler) GetTournamentStandings(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	view, err := h.tournaments.Standings(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "Standings")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetTournamentTeams returns team cards with ordered rosters
func (h *Handler) GetTournamentTeams(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	view, err := h.teams.Teams(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "Teams")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetOwalStandings returns the league table with per-day point cells
func (h *Handler) GetOwalStandings(w http.ResponseWriter, r *http.Request) {
	view, err := h.tournaments.OwalStandings(r.Context())
	if err != nil {
		h.handleError(w, err, "League standings")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}
