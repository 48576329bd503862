package layout

import "github.com/cityfab/cityfab/rng"

// Option customizes a Generate call by mutating a config before
// generation begins, following the functional-options pattern used
// throughout this module.
//
// As a rule, option constructors validate eagerly and panic on
// meaningless inputs (a caller-side programming error); Generate itself
// never panics.
type Option func(*config)

type config struct {
	rngSource *rng.Mulberry32
	density   float64
	cellSize  float64
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		density:  0.5,
		cellSize: 50.0,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRNG injects an explicit RNG stream. Panics if r is nil.
func WithRNG(r *rng.Mulberry32) Option {
	if r == nil {
		panic("layout: WithRNG(nil)")
	}
	return func(c *config) { c.rngSource = r }
}

// WithSeed creates a new Mulberry32 stream from seed and uses it as the
// generation RNG. Use this for reproducible runs keyed to a city seed.
func WithSeed(seed uint32) Option {
	return func(c *config) { c.rngSource = rng.NewMulberry32(seed) }
}

// WithDensity sets the [0,1] density factor used to scale radial-road
// ray counts (§4.5). Panics if d is outside [0,1].
func WithDensity(d float64) Option {
	if d < 0 || d > 1 {
		panic("layout: WithDensity(d outside [0,1])")
	}
	return func(c *config) { c.density = d }
}

// WithCellSize records a cell size on the config. Non-positive values
// are ignored. No generation stage reads it: the adaptive-grid and
// local-infill scans use their own fixed steps.
func WithCellSize(meters float64) Option {
	return func(c *config) {
		if meters > 0 {
			c.cellSize = meters
		}
	}
}
