package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/session"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/user"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/utils"
)

const (
	// IdentityKey is the key used to store the identity in Fiber context
	IdentityKey = "identity"
)

// Identity represents the authenticated caller of a request
type Identity struct {
	User    *user.User
	Session *session.Session
}

// RequireSession resolves the session cookie, validates it and stores the
// identity in the request context. API paths get a 401 payload, page paths
// are redirected to the login screen.
func RequireSession(sessions session.Service, cookies *CookieAdapter, loginRedirect string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := cookies.SessionTokenFromRequest(c)
		if token == "" {
			return unauthenticated(c, loginRedirect)
		}

		u, sess, err := sessions.Validate(token)
		if err != nil {
			// Every validation failure looks the same to the client:
			// log in again
			return unauthenticated(c, loginRedirect)
		}

		c.Locals(IdentityKey, &Identity{User: u, Session: sess})

		return c.Next()
	}
}

func unauthenticated(c *fiber.Ctx, loginRedirect string) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return utils.ErrorResponse(c, "unauthenticated", fiber.StatusUnauthorized)
	}
	return c.Redirect(loginRedirect, fiber.StatusSeeOther)
}

// GetIdentity extracts the identity from Fiber context
func GetIdentity(c *fiber.Ctx) *Identity {
	identity, ok := c.Locals(IdentityKey).(*Identity)
	if !ok {
		return nil
	}
	return identity
}
