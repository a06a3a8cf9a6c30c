package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/utils"
)

// CSRFHeaderName is the request header that must echo the CSRF cookie on
// every state-changing verb
const CSRFHeaderName = "X-CSRF-Token"

// NewCSRFToken generates an independent random anti-forgery token
func NewCSRFToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidateCSRF applies the double-submit check to a single request.
// Safe verbs pass untouched. On mutating verbs both the cookie and the
// header must be present and equal; there is no soft mode.
func ValidateCSRF(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
		return nil
	}

	cookie := c.Cookies(CSRFCookieName)
	header := c.Get(CSRFHeaderName)

	if cookie == "" || header == "" {
		return ErrCSRFMissing
	}

	if subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
		return ErrCSRFMismatch
	}

	return nil
}

// RequireCSRF rejects mutating requests that fail the double-submit check
func RequireCSRF() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ValidateCSRF(c); err != nil {
			switch err {
			case ErrCSRFMissing:
				return utils.ErrorResponse(c, "csrf_token_missing", fiber.StatusForbidden)
			default:
				return utils.ErrorResponse(c, "csrf_token_mismatch", fiber.StatusForbidden)
			}
		}
		return c.Next()
	}
}
