package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/cache"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/config"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/database"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/auth"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/session"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/domain/user"
)

// SetupRoutes wires repositories, services, handlers and middleware on the
// provided Fiber app. Returns an error when the signing secret cannot be
// resolved for the current environment.
func SetupRoutes(app *fiber.App, envConfig *config.Environment, cfg *config.Config) error {
	secret, err := config.LoadSessionSecret(envConfig.SessionSecret, envConfig.Environment)
	if err != nil {
		return fmt.Errorf("failed to resolve session secret: %w", err)
	}

	codec, err := session.NewCodec(secret, cfg.App.Name)
	if err != nil {
		return fmt.Errorf("failed to build token codec: %w", err)
	}

	// Initialize repositories
	userRepo := user.NewRepository(database.DB)
	sessionRepo := session.NewRepository(database.DB)

	// Initialize services
	sessionService := session.NewService(sessionRepo, userRepo, codec, cfg.Auth.SingleSession)

	var limiter *cache.LoginLimiter
	if cache.RedisClient != nil && cfg.Auth.MaxLoginAttempts > 0 {
		window := time.Duration(cfg.Auth.LoginWindowMinutes) * time.Minute
		if window <= 0 {
			window = 15 * time.Minute
		}
		limiter = cache.NewLoginLimiter(cfg.Auth.MaxLoginAttempts, window)
	}

	authService := auth.NewService(userRepo, sessionService, codec, limiter)

	cookies := auth.NewCookieAdapter(envConfig.Environment)
	authHandler := auth.NewHandler(authService, cookies)

	loginRedirect := cfg.Auth.LoginRedirect
	if loginRedirect == "" {
		loginRedirect = "/admin/login"
	}

	app.Get("/v1/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})

	authGroup := app.Group("/api/admin/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", auth.RequireCSRF(), authHandler.Logout)

	protected := app.Group("/api/admin",
		auth.RequireSession(sessionService, cookies, loginRedirect),
		auth.RequireCSRF(),
	)
	protected.Get("/auth/me", authHandler.Me)

	return nil
}
