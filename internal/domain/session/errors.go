package session

import "errors"

var (
	// ErrInvalidToken is returned for a malformed, tampered or expired token
	ErrInvalidToken = errors.New("invalid session token")
	// ErrSessionNotFound is returned when the session row is gone or its user cannot authenticate
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when the session row has passed its expiry
	ErrSessionExpired = errors.New("session expired")
	// ErrSessionCreationFailed is returned when the store rejects a new session row
	ErrSessionCreationFailed = errors.New("session creation failed")
)
