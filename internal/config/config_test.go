package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDatabaseConfig_DSN tests the DSN() method
func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "standard configuration",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "cancha",
				Password: "cancha",
				DBName:   "cancha",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=cancha password=cancha dbname=cancha sslmode=disable",
		},
		{
			name: "password with spaces gets quoted",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "cancha",
				Password: "pass word",
				DBName:   "cancha",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=cancha password='pass word' dbname=cancha sslmode=disable",
		},
		{
			name: "password with single quote gets escaped",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "cancha",
				Password: "it's",
				DBName:   "cancha",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=cancha password='it''s' dbname=cancha sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestRedisConfig_Address(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", cfg.Address())
}

func TestLoad(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		content := `
app:
  name: cancha
server:
  host: 127.0.0.1
  port: 9090
auth:
  single_session: true
  max_login_attempts: 3
  login_window_minutes: 10
  login_redirect: /admin/login
database:
  host: db.internal
  port: 5432
  user: app
  password: secret
  dbname: appdb
  sslmode: require
redis:
  host: cache.internal
  port: 6380
  db: 1
logging:
  level: debug
`
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "cancha", cfg.App.Name)
		assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
		assert.True(t, cfg.Auth.SingleSession)
		assert.Equal(t, 3, cfg.Auth.MaxLoginAttempts)
		assert.Equal(t, 10, cfg.Auth.LoginWindowMinutes)
		assert.Equal(t, "/admin/login", cfg.Auth.LoginRedirect)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "cache.internal:6380", cfg.Redis.Address())
		assert.Equal(t, 1, cfg.Redis.DB)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoadSessionSecret(t *testing.T) {
	t.Run("empty secret in production fails", func(t *testing.T) {
		_, err := LoadSessionSecret("", EnvironmentProduction)
		assert.Error(t, err)
	})

	t.Run("empty secret in development generates a key", func(t *testing.T) {
		key, err := LoadSessionSecret("", EnvironmentDevelopment)
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("short secret is rejected", func(t *testing.T) {
		_, err := LoadSessionSecret("too-short", EnvironmentProduction)
		assert.Error(t, err)
	})

	t.Run("raw passphrase of sufficient length", func(t *testing.T) {
		secret := "a-long-enough-session-secret-value!!"
		key, err := LoadSessionSecret(secret, EnvironmentProduction)
		require.NoError(t, err)
		assert.Equal(t, []byte(secret), key)
	})
}

func TestEnvironmentType(t *testing.T) {
	assert.True(t, EnvironmentDevelopment.IsValid())
	assert.True(t, EnvironmentProduction.IsValid())
	assert.False(t, EnvironmentType("staging").IsValid())
	assert.Equal(t, "production", EnvironmentProduction.String())
}
