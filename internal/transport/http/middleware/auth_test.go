package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codnextech/anchored-api/internal/credentials"
	jwtinfra "github.com/codnextech/anchored-api/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allowAll struct{}

func (allowAll) IsAllowed(context.Context, string) bool      { return true }
func (allowAll) Verify(context.Context, string, string) bool { return true }

type allowNone struct{}

func (allowNone) IsAllowed(context.Context, string) bool      { return false }
func (allowNone) Verify(context.Context, string, string) bool { return false }

func newProvider(t *testing.T) *jwtinfra.Provider {
	t.Helper()
	p, err := jwtinfra.NewProvider("middleware-test-secret-0123456789", time.Hour)
	require.NoError(t, err)
	return p
}

// echoIdentity writes the context identity so tests can assert it.
func echoIdentity(w http.ResponseWriter, r *http.Request) {
	email, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "no identity", http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(email))
}

func serveGated(t *testing.T, creds credentials.Store, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/admin/waitlist", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	Auth(newProvider(t), creds)(http.HandlerFunc(echoIdentity)).ServeHTTP(rr, r)
	return rr
}

func TestAuth_NoCookie(t *testing.T) {
	rr := serveGated(t, allowAll{}, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rr.Body.String())
}

func TestAuth_GarbageToken(t *testing.T) {
	rr := serveGated(t, allowAll{}, &http.Cookie{Name: SessionCookieName, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_LegacyUnsignedToken_Rejected(t *testing.T) {
	// The old cookie format: base64("email:timestamp"), no signature.
	legacy := base64.StdEncoding.EncodeToString([]byte("evil@example.com:1700000000"))
	rr := serveGated(t, allowAll{}, &http.Cookie{Name: SessionCookieName, Value: legacy})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	p := newProvider(t)
	token, err := p.Sign("sam@example.com")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/admin/waitlist", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rr := httptest.NewRecorder()
	Auth(p, allowAll{})(http.HandlerFunc(echoIdentity)).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "sam@example.com", rr.Body.String())
}

func TestAuth_RevokedAdmin_ValidTokenStillRejected(t *testing.T) {
	// Token is cryptographically valid but the email fell off the
	// allow-list: revocation must bite on the next request.
	p := newProvider(t)
	token, err := p.Sign("former-admin@example.com")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/admin/waitlist", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rr := httptest.NewRecorder()
	Auth(p, allowNone{})(http.HandlerFunc(echoIdentity)).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, rr.Body.String(), "former-admin@example.com")
}

func TestIdentityFromContext_Absent(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)
}
