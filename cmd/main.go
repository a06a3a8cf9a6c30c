package main

import (
	"log/slog"
	"os"

	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/config"
	"github.com/lorenzoarduinoh/cancha-leconte-sub000/internal/server"
)

func main() {
	envConfig := config.LoadEnv()

	cfg, err := config.Load(envConfig.ConfigPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := server.Start(envConfig, cfg); err != nil {
		os.Exit(1)
	}
}
