package server

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/cache"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/config"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/database"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/migrations"
)

// Start initializes and starts the HTTP server
func Start(envConfig *config.Environment, cfg *config.Config) error {
	initLogger(cfg.Logging.Level)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	if err := database.ConnectDB(cfg); err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return err
	}
	slog.Info("Database connected successfully")

	if err := migrations.RunMigrations(database.DB); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return err
	}
	slog.Info("Migrations completed successfully")

	// Redis only backs the login limiter; the app runs without it
	if err := cache.ConnectRedis(&cfg.Redis); err != nil {
		slog.Warn("Redis unavailable, login rate limiting disabled", "error", err)
		cache.RedisClient = nil
	}

	if err := SetupRoutes(app, envConfig, cfg); err != nil {
		slog.Error("Failed to set up routes", "error", err)
		return err
	}

	addr := cfg.Server.Address()
	slog.Info("Server starting", "address", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		return err
	}

	return nil
}

func initLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	handler := slog.NewTextHandler(os.Stdout, opts)
	slog.SetDefault(slog.New(handler))
}
