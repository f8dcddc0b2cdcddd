package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codnextech/anchored-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SubmitEnvelope wraps a successful waitlist signup. Data is a one-element
// slice holding the stored row as the client will see it in the listing.
type SubmitEnvelope struct {
	Success bool                   `json:"success"`
	Data    []domain.WaitlistEntry `json:"data,omitempty"`
}

// LoginEnvelope wraps a successful login; the session itself travels in the cookie.
type LoginEnvelope struct {
	Success bool `json:"success"`
}

// CheckEnvelope answers the session-check endpoint.
type CheckEnvelope struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// storageMessage maps a storage failure to the short category string shown
// to callers: enough for an operator to tell a network problem from a
// table-permission problem, nothing more.
func storageMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "unable to reach the data store; please try again"
	case errors.Is(err, domain.ErrStoreDenied):
		return "data store access denied; check table permissions"
	default:
		return fallback
	}
}
