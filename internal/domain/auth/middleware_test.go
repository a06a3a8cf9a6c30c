package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/config"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/session"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/utils"
)

func newProtectedApp(sessions session.Service) *fiber.App {
	app := fiber.New()
	cookies := NewCookieAdapter(config.EnvironmentDevelopment)
	guard := RequireSession(sessions, cookies, "/admin/login")

	app.Get("/api/admin/games", guard, func(c *fiber.Ctx) error {
		identity := GetIdentity(c)
		return utils.SuccessResponse(c, fiber.Map{
			"username": identity.User.Username,
		}, "")
	})
	app.Get("/admin/dashboard", guard, func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app
}

func TestRequireSession(t *testing.T) {
	t.Run("valid session populates the identity", func(t *testing.T) {
		sessions := new(MockSessionService)
		app := newProtectedApp(sessions)

		u := activeTestUser()
		sess := &session.Session{
			UserID:       u.ID.String(),
			SessionToken: "opaque",
			ExpiresAt:    time.Now().UTC().Add(time.Hour),
		}
		sess.ID = uuid.New()
		sessions.On("Validate", "valid-token").Return(u, sess, nil)

		req := httptest.NewRequest("GET", "/api/admin/games", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid-token"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		data := body["data"].(map[string]any)
		assert.Equal(t, u.Username, data["username"])
	})

	t.Run("missing cookie on API path returns 401", func(t *testing.T) {
		sessions := new(MockSessionService)
		app := newProtectedApp(sessions)

		req := httptest.NewRequest("GET", "/api/admin/games", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		sessions.AssertNotCalled(t, "Validate")
	})

	t.Run("invalid session on API path returns 401", func(t *testing.T) {
		sessions := new(MockSessionService)
		app := newProtectedApp(sessions)

		sessions.On("Validate", "stale-token").Return(nil, nil, session.ErrSessionNotFound)

		req := httptest.NewRequest("GET", "/api/admin/games", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale-token"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("page path redirects to login", func(t *testing.T) {
		sessions := new(MockSessionService)
		app := newProtectedApp(sessions)

		req := httptest.NewRequest("GET", "/admin/dashboard", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
	})
}

func TestGetIdentity_Empty(t *testing.T) {
	app := fiber.New()

	var identity *Identity
	app.Get("/probe", func(c *fiber.Ctx) error {
		identity = GetIdentity(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Nil(t, identity)
}
