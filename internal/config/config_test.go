package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Default Values", func(t *testing.T) {
		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 5, cfg.PageSize)
	})

	t.Run("Environment Variables", func(t *testing.T) {
		os.Setenv("PORT", "9999")
		defer os.Unsetenv("PORT")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "9999", cfg.Port)
	})

	t.Run("Database URL Override", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost:5432/boardrank")
		defer os.Unsetenv("DATABASE_URL")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "postgres://localhost:5432/boardrank", cfg.DatabaseURL)
	})
}
