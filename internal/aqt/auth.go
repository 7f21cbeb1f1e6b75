package aqt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// expiryLeeway refreshes tokens slightly before their exp claim so that a
// request does not race the expiry on the wire.
const expiryLeeway = 30 * time.Second

// AccessClaims are the auth provider's token claims the gateway cares
// about: expiry, and the organization role used to gate the shift-edit
// affordance. Authorization proper stays with the backend.
type AccessClaims struct {
	jwt.RegisteredClaims
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
}

// CanEditAnalytics reports whether the edit affordance should be shown.
// The backend re-checks on every mutation; this only hides the control.
func (c *AccessClaims) CanEditAnalytics() bool {
	if c.Organization == "" {
		return false
	}
	return c.Role == "admin" || c.Role == "owner"
}

// TokenSource holds the session's access and refresh tokens and performs
// the single-flight refresh-and-retry dance on 401s. Concurrent callers
// hitting an expired token share one refresh request.
type TokenSource struct {
	authURL string
	http    *http.Client
	logger  *zap.SugaredLogger

	mu      sync.Mutex
	access  string
	refresh string

	group singleflight.Group
}

func NewTokenSource(authURL string, httpClient *http.Client, logger *zap.Logger) *TokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &TokenSource{
		authURL: authURL,
		http:    httpClient,
		logger:  logger.Sugar(),
	}
}

// SetTokens installs a session's credentials (e.g. from the login
// callback or a stored cookie pair).
func (ts *TokenSource) SetTokens(access, refresh string) {
	ts.mu.Lock()
	ts.access = access
	ts.refresh = refresh
	ts.mu.Unlock()
}

// Clear drops cached credentials. Called when a refresh fails.
func (ts *TokenSource) Clear() {
	ts.mu.Lock()
	ts.access = ""
	ts.refresh = ""
	ts.mu.Unlock()
}

// AccessToken returns a bearer token, refreshing first when the cached one
// is missing or within expiryLeeway of its exp claim.
func (ts *TokenSource) AccessToken(ctx context.Context) (string, error) {
	ts.mu.Lock()
	access := ts.access
	ts.mu.Unlock()

	if access != "" && !tokenExpired(access) {
		return access, nil
	}
	return ts.Refresh(ctx)
}

// Claims parses the cached access token's claims without verifying the
// signature. Verification is the backend's job; the gateway only reads
// expiry and the org role.
func (ts *TokenSource) Claims() (*AccessClaims, error) {
	ts.mu.Lock()
	access := ts.access
	ts.mu.Unlock()

	if access == "" {
		return nil, ErrLoggedOut
	}
	claims := &AccessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	return claims, nil
}

// Refresh exchanges the refresh token for a new access token. Concurrent
// calls share one in-flight request. A failed refresh clears cached
// credentials and returns ErrLoggedOut.
func (ts *TokenSource) Refresh(ctx context.Context) (string, error) {
	token, err, _ := ts.group.Do("refresh", func() (any, error) {
		return ts.doRefresh(ctx)
	})
	if err != nil {
		ts.Clear()
		ts.logger.Warnw("Token refresh failed", "error", err)
		return "", ErrLoggedOut
	}
	return token.(string), nil
}

func (ts *TokenSource) doRefresh(ctx context.Context) (string, error) {
	ts.mu.Lock()
	refresh := ts.refresh
	ts.mu.Unlock()

	if refresh == "" {
		return "", fmt.Errorf("no refresh token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ts.authURL+"/auth/refresh-token", bytes.NewReader(nil))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+refresh)

	resp, err := ts.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp.StatusCode, body)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("refresh response without access_token")
	}

	ts.mu.Lock()
	ts.access = payload.AccessToken
	ts.mu.Unlock()

	return payload.AccessToken, nil
}

func tokenExpired(token string) bool {
	claims := &AccessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens pass through; the backend decides
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Until(claims.ExpiresAt.Time) < expiryLeeway
}
