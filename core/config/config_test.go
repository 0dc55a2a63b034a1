package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoip/echoip/core/config"
)

// Each test uses its own config type: the cache is keyed by type and shared
// process-wide.

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		type defaultsConfig struct {
			Addr    string        `env:"TEST_DEFAULTS_ADDR" envDefault:":8080"`
			Timeout time.Duration `env:"TEST_DEFAULTS_TIMEOUT" envDefault:"5s"`
		}

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("reads environment variables", func(t *testing.T) {
		type envConfig struct {
			Addr string `env:"TEST_ENV_ADDR" envDefault:":8080"`
		}

		t.Setenv("TEST_ENV_ADDR", ":9999")

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9999", cfg.Addr)
	})

	t.Run("caches per type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
		}

		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		// A later environment change must not affect the cached type.
		t.Setenv("TEST_CACHED_VALUE", "second")

		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, first, again)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		type nilConfig struct{}

		var cfg *nilConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
	})

	t.Run("fails on required variables that are missing", func(t *testing.T) {
		type requiredConfig struct {
			Secret string `env:"TEST_REQUIRED_SECRET,required"`
		}

		var cfg requiredConfig
		assert.Error(t, config.Load(&cfg))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type mustConfig struct {
			Secret string `env:"TEST_MUST_SECRET,required"`
		}

		assert.Panics(t, func() {
			var cfg mustConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads valid configuration", func(t *testing.T) {
		type mustOKConfig struct {
			Addr string `env:"TEST_MUST_OK_ADDR" envDefault:":8080"`
		}

		var cfg mustOKConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, ":8080", cfg.Addr)
	})
}
