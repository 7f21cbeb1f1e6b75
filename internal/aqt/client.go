// Package aqt is the typed client for the AQT backend REST API. The
// gateway owns no persistence; every entity it serves is a read-only
// snapshot fetched through this client, except the analytics shift which
// is patched via ChangeShift.
package aqt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/anak-tournaments/internal/models"
)

const maxResponseSize = 16 << 20

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aqt_upstream_requests_total",
		Help: "Total requests made to the AQT backend API",
	}, []string{"endpoint", "status"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aqt_upstream_request_duration_seconds",
		Help:    "Duration of AQT backend API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

// Config configures the backend client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  *TokenSource
	Logger  *zap.Logger
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenSource
	logger  *zap.SugaredLogger
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		tokens:  cfg.Tokens,
		logger:  cfg.Logger.Sugar(),
	}
}

// Tokens exposes the session token source for claim checks.
func (c *Client) Tokens() *TokenSource { return c.tokens }

// Ping issues the cheapest list request the API answers. The readiness
// endpoint uses it to confirm the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/tournaments", url.Values{"per_page": {"1"}}, nil, "", nil)
}

// do executes one request and maps non-2xx responses to *APIError.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body []byte, bearer string, out any) error {
	endpoint := metricEndpoint(path)
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("aqt %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("aqt %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("aqt %s %s: decode: %w", method, path, err)
	}
	return nil
}

// get fetches a single object from a public endpoint.
func get[T any](ctx context.Context, c *Client, path string, q url.Values) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, path, q, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getPage fetches a paginated list endpoint.
func getPage[T any](ctx context.Context, c *Client, path string, p ListParams) (*models.Paginated[T], error) {
	var out models.Paginated[T]
	if err := c.do(ctx, http.MethodGet, path, p.Encode(), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getList fetches endpoints returning a bare JSON array.
func getList[T any](ctx context.Context, c *Client, path string, q url.Values) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, path, q, nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// postAuthed sends an authenticated mutation. On 401 it runs the shared
// token refresh and retries once; a second 401 or a failed refresh is
// surfaced as a logged-out state.
func postAuthed[T any](ctx context.Context, c *Client, path string, payload any) (*T, error) {
	if c.tokens == nil {
		return nil, ErrLoggedOut
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var out T
	err = c.do(ctx, http.MethodPost, path, nil, body, token, &out)
	if err == nil {
		return &out, nil
	}
	if !isUnauthorized(err) {
		return nil, err
	}

	token, err = c.tokens.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.do(ctx, http.MethodPost, path, nil, body, token, &out); err != nil {
		if isUnauthorized(err) {
			c.tokens.Clear()
			return nil, ErrLoggedOut
		}
		return nil, err
	}
	return &out, nil
}

// metricEndpoint collapses path parameters so metric cardinality stays
// bounded: "/encounters/123" -> "/encounters/{id}".
func metricEndpoint(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if _, err := strconv.ParseInt(part, 10, 64); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
