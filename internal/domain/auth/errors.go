package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed login. It never
	// distinguishes an unknown user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTooManyAttempts is returned when the login rate limit is hit
	ErrTooManyAttempts = errors.New("too many login attempts")
	// ErrCSRFMissing is returned when a mutating request carries no CSRF header or cookie
	ErrCSRFMissing = errors.New("csrf token missing")
	// ErrCSRFMismatch is returned when the CSRF header does not match the cookie
	ErrCSRFMismatch = errors.New("csrf token mismatch")
)
