package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
)

// ShiftRequest is a manual correction to one player's balancer shift
type ShiftRequest struct {
	TeamID   int64   `json:"team_id" validate:"required"`
	PlayerID int64   `json:"player_id" validate:"required"`
	Shift    float64 `json:"shift" validate:"gte=-10,lte=10"`
}

// GetAnalytics returns the balancer review page for a tournament
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	algorithm := r.URL.Query().Get("algorithm")
	if algorithm == "" {
		algorithm = logic.DefaultAlgorithm
	}

	view, err := h.analytics.View(r.Context(), id, algorithm)
	if err != nil {
		h.handleError(w, err, "Analytics")
		return
	}
	h.jsonResponse(w, http.StatusOK, view)
}

// GetAnalyticsAlgorithms returns the balancer algorithms available for
// comparison
func (h *Handler) GetAnalyticsAlgorithms(w http.ResponseWriter, r *http.Request) {
	algorithms, err := h.analytics.Algorithms(r.Context())
	if err != nil {
		h.handleError(w, err, "Algorithms")
		return
	}
	h.jsonResponse(w, http.StatusOK, algorithms)
}

// ChangeShift applies a manual shift correction. Requires a session
// whose claims allow analytics editing.
func (h *Handler) ChangeShift(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	claims, err := h.tokens.Claims()
	if err != nil {
		h.errorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	if !claims.CanEditAnalytics() {
		h.errorResponse(w, http.StatusForbidden, "Analytics editing requires an organizer role")
		return
	}

	algorithm := r.URL.Query().Get("algorithm")
	if algorithm == "" {
		algorithm = logic.DefaultAlgorithm
	}

	var req ShiftRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	player, err := h.analytics.ChangeShift(r.Context(), id, algorithm,
		req.TeamID, req.PlayerID, req.Shift)
	if err != nil {
		h.handleError(w, err, "Shift")
		return
	}

	h.logger.Infow("Manual shift applied",
		"tournament_id", id,
		"team_id", req.TeamID,
		"player_id", req.PlayerID,
		"shift", req.Shift,
		"editor", claims.Subject,
	)
	h.jsonResponse(w, http.StatusOK, player)
}
