package middleware

import (
	"context"
	"net/http"

	"github.com/codnextech/anchored-api/internal/credentials"
	jwtinfra "github.com/codnextech/anchored-api/internal/infrastructure/jwt"
)

type contextKey string

const identityKey contextKey = "admin_email"

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "admin_session"

// TokenVerifier validates a session token and returns its claims.
type TokenVerifier interface {
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

// Auth gates a request on the admin session cookie. The flow is stateless:
// read cookie, verify token, then re-check the allow-list live — so
// revoking an admin takes effect on their next request, not at cookie
// expiry. Every failure answers 401 with {"authenticated":false}.
func Auth(verifier TokenVerifier, creds credentials.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				writeUnauthenticated(w)
				return
			}
			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				writeUnauthenticated(w)
				return
			}
			if !creds.IsAllowed(r.Context(), claims.Email) {
				writeUnauthenticated(w)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the authenticated admin email.
func IdentityFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityKey).(string)
	return email, ok
}

func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"authenticated":false}` + "\n"))
}
