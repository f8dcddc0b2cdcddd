package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/codnextech/anchored-api/internal/credentials"
	"github.com/codnextech/anchored-api/internal/domain"
	"github.com/codnextech/anchored-api/internal/pkg/validate"
)

// errInvalidCredentials is returned for both an unknown email and a wrong
// password, so callers can't enumerate which admin emails exist.
var errInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)

// TokenSigner issues the session token delivered as a cookie.
type TokenSigner interface {
	Sign(email string) (string, error)
}

type Service interface {
	// Login validates credentials and returns a signed session token.
	Login(ctx context.Context, req domain.LoginRequest) (string, error)
}

type service struct {
	creds  credentials.Store
	signer TokenSigner
}

func NewService(creds credentials.Store, signer TokenSigner) Service {
	return &service{creds: creds, signer: signer}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("email and password are required: %w", domain.ErrBadRequest)
	}

	email := strings.ToLower(req.Email)
	if !s.creds.IsAllowed(ctx, email) {
		return "", errInvalidCredentials
	}
	if !s.creds.Verify(ctx, email, req.Password) {
		return "", errInvalidCredentials
	}

	return s.signer.Sign(email)
}
