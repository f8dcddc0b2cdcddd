package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/codnextech/anchored-api/internal/application/auth"
	"github.com/codnextech/anchored-api/internal/domain"
	"github.com/codnextech/anchored-api/internal/transport/http/middleware"
)

// CookieSettings controls the session cookie issued at login.
type CookieSettings struct {
	TTL time.Duration
	// Secure is false only in local development, where there is no TLS.
	Secure bool
}

// AuthHandler handles admin login and session checks.
type AuthHandler struct {
	svc    auth.Service
	cookie CookieSettings
}

func NewAuthHandler(svc auth.Service, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBadRequest):
			writeError(w, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			writeError(w, http.StatusInternalServerError, "failed to process login")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, LoginEnvelope{Success: true})
}

// Check reports the identity behind the session cookie. It sits behind the
// auth gate, so reaching it at all means the cookie passed verification and
// the live allow-list re-check.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, CheckEnvelope{Authenticated: false})
		return
	}
	writeJSON(w, http.StatusOK, CheckEnvelope{Authenticated: true, Email: email})
}
