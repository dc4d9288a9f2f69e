package detector

import "github.com/frankiz22/anograph/hashfam"

// Option configures a detector constructor: hash-family coefficient
// injection (WithHash) and verbose diagnostic logging (WithVerbose).
type Option func(*config)

type config struct {
	hash    []hashfam.Option
	verbose bool
}

// WithHash forwards the given hashfam options to the detector's
// underlying sketch, for deterministic coefficient injection or RNG
// seeding in tests and reference-vector reproduction.
func WithHash(opts ...hashfam.Option) Option {
	return func(c *config) {
		c.hash = append(c.hash, opts...)
	}
}

// WithVerbose toggles stdlib log.Printf diagnostics on decay events and
// (for LocalEdge) submatrix growth/shrink churn.
func WithVerbose(v bool) Option {
	return func(c *config) {
		c.verbose = v
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
