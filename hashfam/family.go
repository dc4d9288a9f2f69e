package hashfam

import "math/rand"

// Option configures a Family at construction time, functional-options
// style: Option constructors never validate and never panic here.
// Family's configurable knobs are the randomness source and explicit
// coefficients; a nil source or nil coefficient slice is ignored. Without
// WithSeed or WithRand, New draws from a *rand.Rand seeded with 1, so
// every such Family gets the same coefficients.
type Option func(cfg *config)

type config struct {
	rng  *rand.Rand
	a, b []uint64 // explicit coefficients, set only via WithCoefficients
}

// WithSeed returns an Option that seeds coefficient generation
// deterministically, for reproducible tests and examples.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. A nil r is ignored (New keeps its
// default) rather than panicking.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithCoefficients bypasses the RNG and pins the affine coefficients
// directly: a[i], b[i] for row i. Useful for golden-value tests and
// reference-vector reproduction where the exact hash table must be known
// in advance, rather than merely reproducible via a seed. Ignored if
// either slice is nil; New returns ErrCoefficientLength if the provided
// slices don't both have length rows.
func WithCoefficients(a, b []uint64) Option {
	return func(c *config) {
		if a == nil || b == nil {
			return
		}
		c.a, c.b = a, b
	}
}

// Family holds r independent pairwise-independent affine hash functions
// over [0, buckets).
type Family struct {
	a, b    []uint64 // drawn: a[i] in [1,buckets) (0 when buckets==1), b[i] in [0,buckets); WithCoefficients values are kept as given
	buckets uint64
}

// New constructs a Family with the given number of rows and buckets.
// Coefficients are drawn uniformly at construction: a_i from [1,B), b_i
// from [0,B). Returns ErrInvalidRows / ErrInvalidBuckets for non-positive
// arguments.
//
// Complexity: O(rows) time and memory.
func New(rows, buckets int, opts ...Option) (*Family, error) {
	if rows <= 0 {
		return nil, ErrInvalidRows
	}
	if buckets <= 0 {
		return nil, ErrInvalidBuckets
	}

	cfg := &config{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.a != nil {
		if len(cfg.a) != rows || len(cfg.b) != rows {
			return nil, ErrCoefficientLength
		}

		return &Family{a: append([]uint64(nil), cfg.a...), b: append([]uint64(nil), cfg.b...), buckets: uint64(buckets)}, nil
	}

	f := &Family{
		a:       make([]uint64, rows),
		b:       make([]uint64, rows),
		buckets: uint64(buckets),
	}
	for i := 0; i < rows; i++ {
		// a_i drawn from [1,B) so each row's hash behaves like a
		// permutation-ish affine map, never degenerating to b_i alone.
		// B==1 is a degenerate single-bucket sketch: every hash collapses
		// to 0 regardless of a_i, so the draw is skipped to avoid an
		// empty Int63n range.
		if buckets > 1 {
			f.a[i] = uint64(1 + cfg.rng.Int63n(int64(buckets-1)))
		}
		f.b[i] = uint64(cfg.rng.Int63n(int64(buckets)))
	}

	return f, nil
}

// Rows returns the number of hash functions in the family.
func (f *Family) Rows() int { return len(f.a) }

// Buckets returns the bucket count B shared by every hash function.
func (f *Family) Buckets() int { return int(f.buckets) }

// Hash evaluates h_row(x) = (x*a_row + b_row) mod B.
//
// x is reduced mod B before multiplying so the arithmetic never overflows
// uint64 regardless of how large x is; this is equivalent to the literal
// (x*a+b) mod B by modular-arithmetic identity, and since x, a, and b are
// all unsigned here, there is no negative-remainder case to adjust for.
//
// Complexity: O(1).
func (f *Family) Hash(x uint64, row int) uint64 {
	xr := x % f.buckets
	return (xr*f.a[row] + f.b[row]) % f.buckets
}
