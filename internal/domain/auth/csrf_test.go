package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/utils"
)

func newCSRFApp() *fiber.App {
	app := fiber.New()
	app.Use(RequireCSRF())
	handler := func(c *fiber.Ctx) error {
		return utils.SuccessResponse(c, nil, "ok")
	}
	app.Get("/resource", handler)
	app.Post("/resource", handler)
	app.Put("/resource", handler)
	app.Delete("/resource", handler)
	return app
}

func TestNewCSRFToken(t *testing.T) {
	first, err := NewCSRFToken()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := NewCSRFToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "tokens must be independent random values")
}

func TestRequireCSRF(t *testing.T) {
	t.Run("safe verbs never require the check", func(t *testing.T) {
		app := newCSRFApp()

		req := httptest.NewRequest("GET", "/resource", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("mutating verb without header is rejected", func(t *testing.T) {
		app := newCSRFApp()

		for _, method := range []string{"POST", "PUT", "DELETE"} {
			req := httptest.NewRequest(method, "/resource", nil)
			req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "cookie-value"})

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "method %s", method)
		}
	})

	t.Run("mutating verb without cookie is rejected", func(t *testing.T) {
		app := newCSRFApp()

		req := httptest.NewRequest("POST", "/resource", nil)
		req.Header.Set(CSRFHeaderName, "header-value")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("mismatched pair is rejected", func(t *testing.T) {
		app := newCSRFApp()

		req := httptest.NewRequest("POST", "/resource", nil)
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "cookie-value"})
		req.Header.Set(CSRFHeaderName, "different-value")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("matching pair passes", func(t *testing.T) {
		app := newCSRFApp()

		req := httptest.NewRequest("POST", "/resource", nil)
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "matching-value"})
		req.Header.Set(CSRFHeaderName, "matching-value")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestValidateCSRF_Errors(t *testing.T) {
	app := fiber.New()

	var got error
	app.Post("/probe", func(c *fiber.Ctx) error {
		got = ValidateCSRF(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/probe", nil)
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.ErrorIs(t, got, ErrCSRFMissing)

	req = httptest.NewRequest("POST", "/probe", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "a"})
	req.Header.Set(CSRFHeaderName, "b")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.ErrorIs(t, got, ErrCSRFMismatch)
}
