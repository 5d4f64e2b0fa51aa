package notedown

import "errors"

// Sentinel errors for common failure modes. The markdown converter is total
// and never returns errors; these cover the API client boundary.
var (
	// ErrNotFound indicates the requested page or block does not exist or
	// is not shared with the integration.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates a missing, invalid, or under-privileged token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the API asked the client to back off.
	ErrRateLimited = errors.New("rate limited")

	// ErrValidation indicates the API rejected a request body.
	ErrValidation = errors.New("validation error")

	// ErrInvalidID indicates an identifier could not be canonicalized.
	ErrInvalidID = errors.New("invalid identifier")
)
