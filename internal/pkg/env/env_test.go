package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Port    string        `env:"HTTP_PORT" envDefault:":8080"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"5s"`
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg sampleConfig
		require.NoError(t, Parse(&cfg))

		assert.Equal(t, ":8080", cfg.Port)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", ":9000")
		t.Setenv("BACKEND_TIMEOUT", "250ms")

		var cfg sampleConfig
		require.NoError(t, Parse(&cfg))

		assert.Equal(t, ":9000", cfg.Port)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("BACKEND_TIMEOUT", "soon")

		var cfg sampleConfig
		assert.Error(t, Parse(&cfg))
	})
}
