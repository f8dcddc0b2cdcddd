package waitlist

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/codnextech/anchored-api/internal/domain"
	"github.com/codnextech/anchored-api/internal/pkg/id"
	"github.com/codnextech/anchored-api/internal/pkg/validate"
)

// emailShape is a deliberately loose two-part local@domain.tld check; the
// store key is the lower-cased address, not a deliverability guarantee.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Repository is the narrow store surface the service needs.
type Repository interface {
	Upsert(ctx context.Context, e *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	ListByRecency(ctx context.Context) ([]domain.WaitlistEntry, error)
}

type Service interface {
	// Submit validates a signup and upserts it keyed by lower-cased email.
	// Retrying an identical submission is idempotent.
	Submit(ctx context.Context, req domain.SubmitWaitlistRequest) (*domain.WaitlistEntry, error)
	// List returns every entry, most recent signup first.
	List(ctx context.Context) ([]domain.WaitlistEntry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, req domain.SubmitWaitlistRequest) (*domain.WaitlistEntry, error) {
	// gdprConsent=false fails `required` on the bool: consent is mandatory.
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("all fields are required (%s): %w", err, domain.ErrBadRequest)
	}
	if !emailShape.MatchString(req.Email) {
		return nil, fmt.Errorf("invalid email address: %w", domain.ErrBadRequest)
	}

	entry := &domain.WaitlistEntry{
		EntryID:     id.New(), // only kept when the email is new
		Email:       strings.ToLower(req.Email),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		GDPRConsent: req.GDPRConsent,
	}
	return s.repo.Upsert(ctx, entry)
}

func (s *service) List(ctx context.Context) ([]domain.WaitlistEntry, error) {
	return s.repo.ListByRecency(ctx)
}
