package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	capacity int
	cached   bool
	calls    []string
}

func withCapacity(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errors.New("capacity cannot be negative")
		}
		c.capacity = n
		c.calls = append(c.calls, "capacity")

		return nil
	})
}

func withoutCache() Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.cached = false
		c.calls = append(c.calls, "cache")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{cached: true}
		require.NoError(t, Apply(cfg, withCapacity(16), withoutCache()))
		require.Equal(t, 16, cfg.capacity)
		require.False(t, cfg.cached)
		require.Equal(t, []string{"capacity", "cache"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{cached: true}
		err := Apply(cfg, withCapacity(-1), withoutCache())
		require.Error(t, err)
		require.Contains(t, err.Error(), "capacity cannot be negative")
		require.True(t, cfg.cached)
		require.Empty(t, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Zero(t, cfg.capacity)
	})

	t.Run("skips nil option", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withCapacity(3)))
		require.Equal(t, 3, cfg.capacity)
	})
}
