// Package cavegen - configuration options and sentinel errors for the
// cave generator.
package cavegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for generator configuration.
var (
	// ErrBadWallChance indicates a fill probability outside [0,1].
	ErrBadWallChance = errors.New("cavegen: WallChance must be within [0,1]")

	// ErrBadSmoothing indicates a negative smoothing pass count.
	ErrBadSmoothing = errors.New("cavegen: SmoothingPasses must be non-negative")
)

// Defaults for a freshly constructed Generator.
const (
	// DefaultWallChance is the interior fill probability.
	DefaultWallChance = 0.45
	// DefaultSmoothingPasses is the number of cellular-automata passes.
	DefaultSmoothingPasses = 1
	// DefaultSeed is the fixed stream seed used when none is supplied
	// (or when WithSeed(0) is passed). Arbitrary but stable.
	DefaultSeed int64 = 12345
)

// Options holds the generator configuration. It is a pure value object;
// all mutation during generation happens on the grid passed in.
type Options struct {
	// WallChance is the probability an interior cell starts as Wall.
	WallChance float64
	// SmoothingPasses is how many cellular-automata passes to run.
	SmoothingPasses int
	// Seed drives the pseudo-random stream. Zero selects DefaultSeed.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// Option configures the generator via functional arguments. An invalid
// value is recorded internally and surfaced as a sentinel error from New.
type Option func(*Options)

// DefaultOptions returns the canonical configuration:
// WallChance 0.45, one smoothing pass, seed 12345.
func DefaultOptions() Options {
	return Options{
		WallChance:      DefaultWallChance,
		SmoothingPasses: DefaultSmoothingPasses,
		Seed:            DefaultSeed,
	}
}

// WithWallChance sets the interior fill probability.
// Values outside [0,1] cause New to return ErrBadWallChance.
func WithWallChance(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: got %v", ErrBadWallChance, p)
			return
		}
		o.WallChance = p
	}
}

// WithSmoothingPasses sets the number of smoothing passes.
// Negative values cause New to return ErrBadSmoothing.
func WithSmoothingPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadSmoothing, n)
			return
		}
		o.SmoothingPasses = n
	}
}

// WithSeed sets the pseudo-random stream seed.
// Zero keeps the fixed default, preserving reproducible defaults.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed != 0 {
			o.Seed = seed
		}
	}
}
