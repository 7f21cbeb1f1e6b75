package handlers

import (
	"net/http"
	"strconv"
)

// GetStatisticsHistory returns per-tournament trend series for the
// dashboard
func (h *Handler) GetStatisticsHistory(w http.ResponseWriter, r *http.Request) {
	view, err := h.statistics.History(r.Context())
	if err != nil {
		h.handleError(w, err, "Statistics")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetOverallStatistics returns the site-wide aggregate counters
func (h *Handler) GetOverallStatistics(w http.ResponseWriter, r *http.Request) {
	view, err := h.statistics.Overall(r.Context())
	if err != nil {
		h.handleError(w, err, "Statistics")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetLeaderboards returns the champions and top winrate player rankings
func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	view, err := h.statistics.Leaderboards(r.Context())
	if err != nil {
		h.handleError(w, err, "Leaderboards")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetHeroPlaytime returns the most played heroes, optionally scoped to
// a tournament or a player
func (h *Handler) GetHeroPlaytime(w http.ResponseWriter, r *http.Request) {
	var tournamentID, userID int64
	if raw := r.URL.Query().Get("tournament_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
			return
		}
		tournamentID = id
	}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		userID = id
	}

	heroes, err := h.statistics.HeroPlaytime(r.Context(), tournamentID, userID)
	if err != nil {
		h.handleError(w, err, "Hero playtime")
		return
	}
	h.jsonResponse(w, http.StatusOK, heroes)
}
