package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")

	// Storage sentinels. The categories are deliberately coarse: operators
	// need to tell a network problem from a misconfigured table policy, but
	// callers never see raw driver errors.
	ErrStorage          = errors.New("storage failure")
	ErrStoreUnavailable = errors.New("cannot reach the data store")
	ErrStoreDenied      = errors.New("data store denied access")
)
