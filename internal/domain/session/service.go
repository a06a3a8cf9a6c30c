package session

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/user"
)

// Service interface for session lifecycle operations
type Service interface {
	Create(u *user.User, rememberMe bool, ip, userAgent string) (string, *Session, error)
	Validate(token string) (*user.User, *Session, error)
	Destroy(id uuid.UUID)
	InvalidateAllForUser(userID uuid.UUID) error
}

// service struct for session operations
type service struct {
	repo  Repository
	users user.Repository
	codec *Codec

	// singleSession drops a user's previous sessions before each login
	singleSession bool
}

// NewService creates a session Service over the given store, user lookup
// and token codec.
func NewService(repo Repository, users user.Repository, codec *Codec, singleSession bool) Service {
	return &service{repo: repo, users: users, codec: codec, singleSession: singleSession}
}

// generateSessionToken generates the opaque identifier stored in the row
// and echoed back as a claim
func generateSessionToken() (string, error) {
	b := make([]byte, 48)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Create inserts a session row and only then issues the signed token, so a
// token can never exist without its row. The claim expiry always equals the
// row expiry.
func (s *service) Create(u *user.User, rememberMe bool, ip, userAgent string) (string, *Session, error) {
	if s.singleSession {
		if _, err := s.repo.DeleteByUserID(u.ID); err != nil {
			slog.Warn("Failed to invalidate previous sessions", "error", err, "user_id", u.ID.String())
		}
	}

	opaque, err := generateSessionToken()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrSessionCreationFailed, err)
	}

	now := time.Now().UTC()
	sess := &Session{
		UserID:       u.ID.String(),
		SessionToken: opaque,
		ExpiresAt:    now.Add(TTL(rememberMe)),
		RememberMe:   rememberMe,
		IPAddress:    ip,
		UserAgent:    userAgent,
	}
	sess.ID = uuid.New()

	if err := s.repo.Create(sess); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrSessionCreationFailed, err)
	}

	token, err := s.codec.Sign(&Claims{
		UserID:       u.ID.String(),
		Username:     u.Username,
		Name:         u.Name,
		Role:         u.Role,
		SessionID:    sess.ID.String(),
		SessionToken: opaque,
		RememberMe:   rememberMe,
		IssuedAt:     now,
		Expiration:   sess.ExpiresAt,
	})
	if err != nil {
		// No point keeping a row nobody can ever present a token for
		if derr := s.repo.DeleteByID(sess.ID); derr != nil {
			slog.Warn("Failed to clean up session after signing error", "error", derr, "session_id", sess.ID.String())
		}
		return "", nil, fmt.Errorf("%w: %v", ErrSessionCreationFailed, err)
	}

	return token, sess, nil
}

// Validate runs the three-step check: token signature and expiry, then the
// store row, then the owning user. The row is the revocation authority, so
// a cryptographically valid token dies with its row.
func (s *service) Validate(token string) (*user.User, *Session, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	sid, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	sess, err := s.repo.FindByID(sid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}

	if sess.Expired() {
		return nil, nil, ErrSessionExpired
	}

	if subtle.ConstantTimeCompare([]byte(claims.SessionToken), []byte(sess.SessionToken)) != 1 {
		return nil, nil, ErrInvalidToken
	}

	u, err := s.users.FindByID(sess.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}

	if !u.IsActive {
		return nil, nil, ErrSessionNotFound
	}

	return u, sess, nil
}

// Destroy deletes the session row best-effort. Store errors are logged and
// swallowed so logout always succeeds from the client's point of view.
func (s *service) Destroy(id uuid.UUID) {
	if err := s.repo.DeleteByID(id); err != nil {
		slog.Warn("Failed to delete session", "error", err, "session_id", id.String())
	}
}

// InvalidateAllForUser removes every session the user owns
func (s *service) InvalidateAllForUser(userID uuid.UUID) error {
	n, err := s.repo.DeleteByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to invalidate sessions for user %s: %w", userID, err)
	}
	if n > 0 {
		slog.Info("Invalidated sessions", "user_id", userID.String(), "count", n)
	}
	return nil
}
