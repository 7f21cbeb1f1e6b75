package aqt

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrLoggedOut is returned when an authenticated call hit a 401 and the
// token refresh itself failed. Cached credentials have been cleared; the
// caller should surface a logged-out state.
var ErrLoggedOut = errors.New("aqt: session expired")

// APIError is a non-2xx backend response. Message carries the backend's
// message field when the body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("aqt: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("aqt: unexpected status %d", e.Status)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func isUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// newAPIError extracts the message from an error body. The backend answers
// either {"message": ...} or FastAPI-style {"detail": [{"msg": ...}]}.
func newAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &APIError{Status: status}
	}
	if envelope.Message != "" {
		return &APIError{Status: status, Message: envelope.Message}
	}
	if envelope.Error != "" {
		return &APIError{Status: status, Message: envelope.Error}
	}
	if len(envelope.Detail) > 0 {
		var details []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(envelope.Detail, &details); err == nil && len(details) > 0 {
			return &APIError{Status: status, Message: details[0].Msg}
		}
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil {
			return &APIError{Status: status, Message: s}
		}
	}
	return &APIError{Status: status}
}
