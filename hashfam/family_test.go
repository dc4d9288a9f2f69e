package hashfam_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/frankiz22/anograph/hashfam"
)

func TestNewValidatesArguments(t *testing.T) {
	_, err := hashfam.New(0, 4)
	require.ErrorIs(t, err, hashfam.ErrInvalidRows)

	_, err = hashfam.New(2, 0)
	require.ErrorIs(t, err, hashfam.ErrInvalidBuckets)

	f, err := hashfam.New(2, 4)
	require.NoError(t, err)
	require.Equal(t, 2, f.Rows())
	require.Equal(t, 4, f.Buckets())
}

// TestHashRangeIsBounded verifies Hash always returns a value in [0, B)
// for a representative sweep of inputs, including ones that wrap uint64.
func TestHashRangeIsBounded(t *testing.T) {
	f, err := hashfam.New(3, 7, hashfam.WithSeed(42))
	require.NoError(t, err)

	inputs := []uint64{0, 1, 6, 7, 8, 1000, 1<<63 - 1, ^uint64(0)}
	for _, x := range inputs {
		for row := 0; row < f.Rows(); row++ {
			h := f.Hash(x, row)
			require.Less(t, h, uint64(f.Buckets()))
		}
	}
}

// TestWithSeedIsDeterministic ensures two Families built with the same seed
// produce identical hash tables over a fixed input set.
func TestWithSeedIsDeterministic(t *testing.T) {
	f1, err := hashfam.New(4, 16, hashfam.WithSeed(7))
	require.NoError(t, err)
	f2, err := hashfam.New(4, 16, hashfam.WithSeed(7))
	require.NoError(t, err)

	table := func(f *hashfam.Family) map[uint64][]uint64 {
		out := make(map[uint64][]uint64)
		for _, x := range []uint64{0, 1, 2, 100, 999} {
			row := make([]uint64, f.Rows())
			for r := 0; r < f.Rows(); r++ {
				row[r] = f.Hash(x, r)
			}
			out[x] = row
		}
		return out
	}

	if diff := cmp.Diff(table(f1), table(f2)); diff != "" {
		t.Fatalf("seeded families diverged (-f1 +f2):\n%s", diff)
	}
}

// TestWithRandIgnoresNil ensures a nil RNG option is a silent no-op.
func TestWithRandIgnoresNil(t *testing.T) {
	_, err := hashfam.New(2, 8, hashfam.WithRand(nil))
	require.NoError(t, err)
}

// TestHashInRangeSmallCase exercises the r=2,B=4 shape used by the
// detector scenario tests: with a fixed seed we only assert the hash
// stays in range, since collisions are seed-dependent by construction.
func TestHashInRangeSmallCase(t *testing.T) {
	f, err := hashfam.New(2, 4, hashfam.WithRand(rand.New(rand.NewSource(123))))
	require.NoError(t, err)
	for _, x := range []uint64{1, 2, 3, 4} {
		for row := 0; row < 2; row++ {
			require.Less(t, f.Hash(x, row), uint64(4))
		}
	}
}
