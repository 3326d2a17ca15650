package function

import (
	"fmt"

	"github.com/arloliu/tabulated/errs"
	"github.com/arloliu/tabulated/internal/options"
)

// defaultHeadroom is the number of spare slots an ArrayFunction reserves
// beyond its initial point count.
const defaultHeadroom = 10

// Config holds construction settings shared by both engines.
// Settings that do not apply to an engine are ignored by it.
type Config struct {
	// Capacity is the initial buffer capacity of an ArrayFunction.
	// Zero means count plus a small headroom.
	Capacity int
	// DisableCache turns off the index cache of a LinkedFunction.
	DisableCache bool
}

// Option configures engine construction.
type Option = options.Option[*Config]

// WithCapacity sets the initial buffer capacity of an ArrayFunction.
// The capacity must be positive; a capacity below the point count is
// rejected at construction.
func WithCapacity(capacity int) Option {
	return options.New(func(cfg *Config) error {
		if capacity <= 0 {
			return fmt.Errorf("%w: capacity must be positive, got %d", errs.ErrInvalidOption, capacity)
		}
		cfg.Capacity = capacity

		return nil
	})
}

// WithoutCache disables the index cache of a LinkedFunction so every
// lookup walks from the nearer end.
func WithoutCache() Option {
	return options.NoError(func(cfg *Config) {
		cfg.DisableCache = true
	})
}

func buildConfig(opts []Option) (Config, error) {
	var cfg Config
	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
