package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codnextech/anchored-api/internal/application/waitlist"
	"github.com/codnextech/anchored-api/internal/domain"
)

// WaitlistHandler handles the public signup and the admin listing.
type WaitlistHandler struct {
	svc waitlist.Service
}

func NewWaitlistHandler(svc waitlist.Service) *WaitlistHandler {
	return &WaitlistHandler{svc: svc}
}

func (h *WaitlistHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitWaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, storageMessage(err, "failed to save to waitlist"))
		return
	}
	writeJSON(w, http.StatusOK, SubmitEnvelope{Success: true, Data: []domain.WaitlistEntry{*entry}})
}

// List is mounted behind the auth gate; it has no authentication of its own.
func (h *WaitlistHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, storageMessage(err, "failed to fetch waitlist"))
		return
	}
	if entries == nil {
		entries = []domain.WaitlistEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
