package domain

import "time"

// WaitlistEntry is one signup on the book waitlist. Entries are keyed by
// lower-cased email: a repeat signup with the same email overwrites the
// name/consent fields instead of creating a duplicate row.
type WaitlistEntry struct {
	EntryID     string    `json:"id" dynamodbav:"entry_id"`
	Email       string    `json:"email" dynamodbav:"email"`
	FirstName   string    `json:"first_name" dynamodbav:"first_name"`
	LastName    string    `json:"last_name" dynamodbav:"last_name"`
	GDPRConsent bool      `json:"gdpr_consent" dynamodbav:"gdpr_consent"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type SubmitWaitlistRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required"`
	GDPRConsent bool   `json:"gdprConsent" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
