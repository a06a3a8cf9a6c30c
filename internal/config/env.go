package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvironmentType represents the application environment
type EnvironmentType string

const (
	EnvironmentDevelopment EnvironmentType = "development"
	EnvironmentProduction  EnvironmentType = "production"
)

// String returns the string representation of the environment type
func (e EnvironmentType) String() string {
	return string(e)
}

// IsValid checks if the environment type is valid
func (e EnvironmentType) IsValid() bool {
	switch e {
	case EnvironmentDevelopment, EnvironmentProduction:
		return true
	default:
		return false
	}
}

// Environment holds the environment variables
type Environment struct {
	Environment   EnvironmentType `env:"ENVIRONMENT"`
	ConfigPath    string          `env:"CONFIG_PATH"`
	SessionSecret string          `env:"SESSION_SECRET"`
}

// LoadEnv loads the environment variables, reading a local .env file first if present
func LoadEnv() *Environment {
	_ = godotenv.Load()

	envStr := getEnv("ENVIRONMENT", string(EnvironmentDevelopment))
	envStr = strings.TrimSpace(envStr)
	envStr = strings.ToLower(envStr)
	envType := EnvironmentType(envStr)

	// Validate and default to development if invalid
	if !envType.IsValid() {
		envType = EnvironmentDevelopment
	}

	return &Environment{
		Environment:   envType,
		ConfigPath:    getEnv("CONFIG_PATH", "config.yaml"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
	}
}

// getEnv gets the environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// LoadSessionSecret resolves the process-wide token signing key.
// If secret is empty and environment is production, returns an error.
// If secret is empty and environment is development, generates a random key,
// which means tokens do not survive a restart.
func LoadSessionSecret(secret string, env EnvironmentType) ([]byte, error) {
	if secret == "" {
		if env == EnvironmentProduction {
			return nil, fmt.Errorf("session secret is required in production environment")
		}

		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		return key, nil
	}

	// Accept either a base64 encoded key or a raw passphrase
	if decoded, err := base64.StdEncoding.DecodeString(secret); err == nil && len(decoded) >= 32 {
		return decoded, nil
	}

	if len(secret) < 32 {
		return nil, fmt.Errorf("session secret must be at least 32 bytes")
	}

	return []byte(secret), nil
}
