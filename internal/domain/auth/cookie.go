package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/config"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/session"
)

const (
	// SessionCookieName carries the signed session token, httpOnly
	SessionCookieName = "cancha-admin-session"
	// CSRFCookieName carries the anti-forgery token, readable by script
	CSRFCookieName = "cancha-csrf-token"
)

// CookieAdapter translates session and CSRF tokens into browser cookies.
// The Secure attribute is only set in production so local development over
// plain HTTP keeps working.
type CookieAdapter struct {
	secure bool
}

// NewCookieAdapter creates a CookieAdapter for the given environment
func NewCookieAdapter(env config.EnvironmentType) *CookieAdapter {
	return &CookieAdapter{secure: env == config.EnvironmentProduction}
}

// SetSessionCookie writes the session cookie. Remember-me logins get an
// explicit expiry matching the server-side TTL; otherwise the cookie is
// session-scoped and the row expiry is the only limit.
func (a *CookieAdapter) SetSessionCookie(c *fiber.Ctx, token string, rememberMe bool) {
	cookie := &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   a.secure,
		Path:     "/",
		SameSite: "Lax",
	}
	if rememberMe {
		cookie.Expires = time.Now().Add(session.TTL(rememberMe))
	}
	c.Cookie(cookie)
}

// ClearSessionCookie overwrites the session cookie with an empty value and
// a past expiry, which removes it regardless of browser cookie-jar quirks
func (a *CookieAdapter) ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   a.secure,
		Path:     "/",
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
}

// SessionTokenFromRequest reads the session cookie. An absent cookie is not
// an error, just no session.
func (a *CookieAdapter) SessionTokenFromRequest(c *fiber.Ctx) string {
	return c.Cookies(SessionCookieName)
}

// SetCSRFCookie writes the CSRF cookie. Deliberately NOT httpOnly: client
// script must read it to echo the value back in the request header.
func (a *CookieAdapter) SetCSRFCookie(c *fiber.Ctx, token string, rememberMe bool) {
	cookie := &fiber.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		HTTPOnly: false,
		Secure:   a.secure,
		Path:     "/",
		SameSite: "Lax",
	}
	if rememberMe {
		cookie.Expires = time.Now().Add(session.TTL(rememberMe))
	}
	c.Cookie(cookie)
}

// ClearCSRFCookie removes the CSRF cookie
func (a *CookieAdapter) ClearCSRFCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CSRFCookieName,
		Value:    "",
		HTTPOnly: false,
		Secure:   a.secure,
		Path:     "/",
		SameSite: "Lax",
		Expires:  time.Now().Add(-time.Hour),
	})
}
