package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/aqt"
	"github.com/CraazzzyyFoxx/anak-tournaments/internal/logic"
)

func notFoundErr() error {
	return &aqt.APIError{Status: http.StatusNotFound}
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Not Found", notFoundErr(), http.StatusNotFound},
		{"Logged Out", aqt.ErrLoggedOut, http.StatusUnauthorized},
		{"Client Error Passthrough", &aqt.APIError{Status: 422, Message: "bad shift"}, 422},
		{"Upstream 500", &aqt.APIError{Status: 500}, http.StatusBadGateway},
		{"Network Error", errors.New("dial tcp: timeout"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.encounters = &MockEncounterService{
				EncounterFunc: func(ctx context.Context, id int64) (*logic.EncounterView, error) {
					return nil, tt.err
				},
			}

			w := httptest.NewRecorder()
			h.GetEncounter(w, requestWithID("GET", "/api/encounters/1", "1"))

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Generates ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.RequestIDMiddleware(next).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("expected a generated request id")
		}
	})

	t.Run("Preserves Caller ID", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Request-ID", "caller-7")
		w := httptest.NewRecorder()
		h.RequestIDMiddleware(next).ServeHTTP(w, r)
		if got := w.Header().Get("X-Request-ID"); got != "caller-7" {
			t.Errorf("request id = %q, want caller-7", got)
		}
	})
}

func TestHealth(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestReadyChecksUpstream(t *testing.T) {
	// A closed local port makes the redis check fail fast, so readiness
	// is 503 either way. The upstream check must still be reported.
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer rdb.Close()

	tests := []struct {
		name     string
		pingErr  error
		upstream bool
	}{
		{"Upstream Reachable", nil, true},
		{"Upstream Down", errors.New("dial tcp: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.redis = rdb
			h.upstream = &MockUpstream{
				PingFunc: func(ctx context.Context) error { return tt.pingErr },
			}

			w := httptest.NewRecorder()
			h.Ready(w, httptest.NewRequest("GET", "/ready", nil))

			if w.Code != http.StatusServiceUnavailable {
				t.Fatalf("status = %d, want 503", w.Code)
			}
			var body struct {
				Ready  bool            `json:"ready"`
				Checks map[string]bool `json:"checks"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Checks["upstream"] != tt.upstream {
				t.Errorf("upstream check = %v, want %v", body.Checks["upstream"], tt.upstream)
			}
			if body.Ready {
				t.Error("ready = true with redis unreachable")
			}
		})
	}
}

func TestGetSiteConfig(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	h.GetSiteConfig(w, httptest.NewRequest("GET", "/api/site-config", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"search_debounce_ms":300`) {
		t.Errorf("body = %s", w.Body.String())
	}
}
