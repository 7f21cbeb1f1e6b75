package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/aqt"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]bool{
		"redis":    h.redis.Ping(ctx).Err() == nil,
		"upstream": h.upstream.Ping(ctx) == nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !allHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":      allHealthy,
		"checks":     checks,
		"queueDepth": h.pool.QueueDepth(),
	})
}

// RequestIDMiddleware tags every request with an id for log correlation
func (h *Handler) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// handleError maps backend failures onto gateway responses. Not-found
// and logged-out states pass through; everything else is a 502 because
// the fault is upstream, not here.
func (h *Handler) handleError(w http.ResponseWriter, err error, what string) {
	switch {
	case aqt.IsNotFound(err):
		h.errorResponse(w, http.StatusNotFound, what+" not found")
	case errors.Is(err, aqt.ErrLoggedOut):
		h.errorResponse(w, http.StatusUnauthorized, "Session expired")
	default:
		var apiErr *aqt.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			h.errorResponse(w, apiErr.Status, apiErr.Message)
			return
		}
		h.logger.Errorw("Backend request failed", "what", what, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Upstream error")
	}
}

// redirectCanonical sends the client to the repaired form of the URL.
func (h *Handler) redirectCanonical(w http.ResponseWriter, r *http.Request, q url.Values) {
	target := r.URL.Path
	if encoded := q.Encode(); encoded != "" {
		target += "?" + encoded
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
