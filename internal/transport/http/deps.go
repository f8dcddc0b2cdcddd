package http

import (
	"context"

	"github.com/codnextech/anchored-api/internal/domain"
	jwtinfra "github.com/codnextech/anchored-api/internal/infrastructure/jwt"
)

// WaitlistRepository is the minimal interface the router requires from the
// waitlist store.
type WaitlistRepository interface {
	Upsert(ctx context.Context, e *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	ListByRecency(ctx context.Context) ([]domain.WaitlistEntry, error)
}

// AllowlistRepository is the minimal interface the router requires from the
// admin allow-list store.
type AllowlistRepository interface {
	Contains(ctx context.Context, email string) (bool, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	WaitlistRepo  WaitlistRepository
	AllowlistRepo AllowlistRepository // nil degrades to local-only credentials
	SessionTokens *jwtinfra.Provider
}
