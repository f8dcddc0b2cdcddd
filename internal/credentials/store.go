// Package credentials decides who may act as a waitlist administrator.
//
// Two overlapping sources of truth exist: a remote allow-list table managed
// outside this process, and a local static table of email -> bcrypt hash
// from configuration. They are composed via fallback in a single Store so
// callers never deal with the split.
package credentials

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Allowlist is a remote point lookup for admin emails.
type Allowlist interface {
	Contains(ctx context.Context, email string) (bool, error)
}

// Store answers the two questions the auth flow asks: is this email an
// admin at all, and does this password belong to it.
type Store interface {
	IsAllowed(ctx context.Context, email string) bool
	Verify(ctx context.Context, email, password string) bool
}

type store struct {
	allowlist Allowlist
	// local maps lower-cased email to bcrypt hash. Read-only after startup.
	local map[string]string
}

// NewStore composes the remote allow-list with the local hash table.
// allowlist may be nil, in which case only the local table is consulted.
func NewStore(allowlist Allowlist, local map[string]string) Store {
	if local == nil {
		local = map[string]string{}
	}
	return &store{allowlist: allowlist, local: local}
}

// IsAllowed checks the remote allow-list first. A remote miss or any remote
// error falls back to the local table; remote failures are swallowed so an
// unreachable store never locks every admin out.
func (s *store) IsAllowed(ctx context.Context, email string) bool {
	email = strings.ToLower(email)
	if s.allowlist != nil {
		found, err := s.allowlist.Contains(ctx, email)
		if err == nil && found {
			return true
		}
		if err != nil {
			slog.Warn("allow-list lookup failed, using local fallback", "err", err)
		}
	}
	_, ok := s.local[email]
	return ok
}

// Verify returns true only when the email is allowed, a local hash exists
// for it, and the password matches. An allowed email with no local hash
// cannot log in.
func (s *store) Verify(ctx context.Context, email, password string) bool {
	if !s.IsAllowed(ctx, email) {
		return false
	}
	hash, ok := s.local[strings.ToLower(email)]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
