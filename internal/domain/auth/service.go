package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/cache"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/session"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/user"
)

// LoginResult carries everything the login handler needs to answer a
// successful request
type LoginResult struct {
	Token     string
	CSRFToken string
	User      *user.User
	Session   *session.Session
}

// AuthService is the surface the HTTP handlers depend on
type AuthService interface {
	Login(username, password string, rememberMe bool, ip, userAgent string) (*LoginResult, error)
	Logout(token string)
}

// Service handles the login and logout surfaces
type Service struct {
	users    user.Repository
	sessions session.Service
	codec    *session.Codec

	// limiter is optional; without redis the service runs unthrottled
	limiter *cache.LoginLimiter
}

// NewService creates a new auth service
func NewService(users user.Repository, sessions session.Service, codec *session.Codec, limiter *cache.LoginLimiter) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		codec:    codec,
		limiter:  limiter,
	}
}

// Login checks the credentials and creates a session. Every credential
// failure collapses to ErrInvalidCredentials; only a store failure during
// session creation surfaces distinguishably, because that is the one case
// where the user needs a "try again" rather than a "wrong password".
func (s *Service) Login(username, password string, rememberMe bool, ip, userAgent string) (*LoginResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username, ip)
		if err != nil {
			slog.Warn("Login limiter unavailable", "error", err)
		} else if !allowed {
			return nil, ErrTooManyAttempts
		}
	}

	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.recordFailure(ctx, username, ip)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.users.VerifyPassword(u, password) {
		s.recordFailure(ctx, username, ip)
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		// A disabled account answers exactly like a bad password
		return nil, ErrInvalidCredentials
	}

	token, sess, err := s.sessions.Create(u, rememberMe, ip, userAgent)
	if err != nil {
		return nil, err
	}

	csrfToken, err := NewCSRFToken()
	if err != nil {
		s.sessions.Destroy(sess.ID)
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(u.ID.String(), now); err != nil {
		slog.Warn("Failed to update last login", "error", err, "user_id", u.ID.String())
	} else {
		u.LastLoginAt = &now
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username, ip); err != nil {
			slog.Warn("Failed to reset login attempts", "error", err)
		}
	}

	return &LoginResult{
		Token:     token,
		CSRFToken: csrfToken,
		User:      u,
		Session:   sess,
	}, nil
}

// Logout destroys the session referenced by the token, best effort. An
// unverifiable token means there is nothing server-side to destroy; the
// handler clears the cookies either way.
func (s *Service) Logout(token string) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return
	}

	sid, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return
	}

	s.sessions.Destroy(sid)
}

func (s *Service) recordFailure(ctx context.Context, username, ip string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username, ip); err != nil {
		slog.Warn("Failed to record login attempt", "error", err)
	}
}
