package handlers

import (
	"net/http"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/viewstate"
)

// GetSiteConfig returns client tuning values shared with the front-end
func (h *Handler) GetSiteConfig(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"search_debounce_ms": viewstate.SearchDebounce.Milliseconds(),
		"default_per_page":   viewstate.DefaultPerPage,
	})
}
