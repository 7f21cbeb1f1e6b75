package handlers

import (
	"encoding/json"
	"net/http"
)

// SessionRequest installs a token pair obtained from the auth provider
type SessionRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateSession stores the session's tokens so authenticated operations
// can use them
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	h.tokens.SetTokens(req.AccessToken, req.RefreshToken)

	claims, err := h.tokens.Claims()
	if err != nil {
		h.tokens.Clear()
		h.errorResponse(w, http.StatusBadRequest, "Malformed access token")
		return
	}

	h.logger.Infow("Session installed", "subject", claims.Subject, "role", claims.Role)
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"subject":            claims.Subject,
		"role":               claims.Role,
		"can_edit_analytics": claims.CanEditAnalytics(),
	})
}

// GetSession reports the current session's claims
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	claims, err := h.tokens.Claims()
	if err != nil {
		h.errorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"subject":            claims.Subject,
		"role":               claims.Role,
		"can_edit_analytics": claims.CanEditAnalytics(),
	})
}

// DeleteSession drops the stored tokens
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.tokens.Clear()
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "logged out"})
}
