package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/session"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/utils"
)

// LoginRequest is the login surface payload
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type Handler struct {
	authService AuthService
	cookies     *CookieAdapter
}

func NewHandler(s AuthService, cookies *CookieAdapter) *Handler {
	return &Handler{authService: s, cookies: cookies}
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "invalid_body", fiber.StatusBadRequest)
	}

	res, err := h.authService.Login(
		req.Username,
		req.Password,
		req.RememberMe,
		c.IP(),
		c.Get("User-Agent"),
	)

	if err != nil {
		switch {
		case errors.Is(err, ErrTooManyAttempts):
			return utils.ErrorResponse(c, "too_many_attempts", fiber.StatusTooManyRequests)
		case errors.Is(err, session.ErrSessionCreationFailed):
			return utils.ErrorResponse(c, "session_creation_failed", fiber.StatusServiceUnavailable)
		default:
			// One generic answer for every credential problem
			return utils.ErrorResponse(c, "invalid_credentials", fiber.StatusUnauthorized)
		}
	}

	h.cookies.SetSessionCookie(c, res.Token, res.Session.RememberMe)
	h.cookies.SetCSRFCookie(c, res.CSRFToken, res.Session.RememberMe)

	return utils.SuccessResponse(c, fiber.Map{
		"user":       res.User,
		"csrf_token": res.CSRFToken,
	}, "Login successful")
}

// Logout always answers success. The server-side delete is best effort;
// the cookies are cleared no matter what.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if token := h.cookies.SessionTokenFromRequest(c); token != "" {
		h.authService.Logout(token)
	}

	h.cookies.ClearSessionCookie(c)
	h.cookies.ClearCSRFCookie(c)

	return utils.SuccessResponse(c, nil, "Logged out")
}

func (h *Handler) Me(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return utils.ErrorResponse(c, "unauthenticated", fiber.StatusUnauthorized)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"user": identity.User,
	}, "")
}
