package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. They are logged server-side only; the client
// always receives the same generic unauthorized response.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingIdentity signals that a role-gated handler ran without the
	// authentication middleware attaching an identity first. This is a route
	// wiring mistake, not a client error.
	ErrMissingIdentity = errors.New("no identity attached to request context")
)
