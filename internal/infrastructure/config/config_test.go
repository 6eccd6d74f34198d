package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"BACKOFFICE_APP_NAME":          os.Getenv("BACKOFFICE_APP_NAME"),
		"BACKOFFICE_APP_ENV":           os.Getenv("BACKOFFICE_APP_ENV"),
		"BACKOFFICE_APP_PORT":          os.Getenv("BACKOFFICE_APP_PORT"),
		"BACKOFFICE_DATABASE_HOST":     os.Getenv("BACKOFFICE_DATABASE_HOST"),
		"BACKOFFICE_DATABASE_PORT":     os.Getenv("BACKOFFICE_DATABASE_PORT"),
		"BACKOFFICE_DATABASE_USER":     os.Getenv("BACKOFFICE_DATABASE_USER"),
		"BACKOFFICE_DATABASE_PASSWORD": os.Getenv("BACKOFFICE_DATABASE_PASSWORD"),
		"BACKOFFICE_DATABASE_DBNAME":   os.Getenv("BACKOFFICE_DATABASE_DBNAME"),
		"BACKOFFICE_DATABASE_SSLMODE":  os.Getenv("BACKOFFICE_DATABASE_SSLMODE"),
		"BACKOFFICE_JWT_SECRET":        os.Getenv("BACKOFFICE_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "backoffice-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "backoffice", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
		assert.Equal(t, "backoffice-backend", cfg.JWT.Issuer)
	})

	t.Run("loads values from environment variables", func(t *testing.T) {
		clearEnv()
		os.Setenv("BACKOFFICE_APP_NAME", "test-app")
		os.Setenv("BACKOFFICE_APP_PORT", "9000")
		os.Setenv("BACKOFFICE_DATABASE_HOST", "testdb.local")
		os.Setenv("BACKOFFICE_DATABASE_PORT", "5433")
		os.Setenv("BACKOFFICE_DATABASE_USER", "testuser")
		os.Setenv("BACKOFFICE_DATABASE_PASSWORD", "testpass")
		os.Setenv("BACKOFFICE_DATABASE_DBNAME", "testdb")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
	})

	t.Run("production requires a strong jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("BACKOFFICE_APP_ENV", "production")
		os.Setenv("BACKOFFICE_DATABASE_PASSWORD", "prodpass")
		os.Setenv("BACKOFFICE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects disabled ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("BACKOFFICE_APP_ENV", "production")
		os.Setenv("BACKOFFICE_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		os.Setenv("BACKOFFICE_DATABASE_PASSWORD", "prodpass")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "backoffice",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "backoffice")
	assert.Contains(t, dsn, "sslmode=disable")
	// Password must be URL-escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
