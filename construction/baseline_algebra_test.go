package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineSplitLocationsOneAtomIsEmpty(t *testing.T) {
	alg := NewBaselineAlgebra()
	c, err := alg.FromString("a")
	require.NoError(t, err)
	assert.Empty(t, alg.SplitLocations(c, NoneLoc, NoneLoc))
}

func TestBaselineSplitAndSplitN(t *testing.T) {
	alg := NewBaselineAlgebra()
	c, _ := alg.FromString("cats")

	prefix, suffix := alg.Split(c, Loc{I: 3})
	assert.Equal(t, Baseline("cat"), prefix)
	assert.Equal(t, Baseline("s"), suffix)

	parts := alg.SplitN(c, []Loc{{I: 1}, {I: 3}})
	assert.Equal(t, []Baseline{"c", "at", "s"}, parts)
}

func TestBaselinePartsToSplitLocsRoundTrip(t *testing.T) {
	alg := NewBaselineAlgebra()
	c, _ := alg.FromString("cats")
	locs := []Loc{{I: 1}, {I: 3}}
	parts := alg.SplitN(c, locs)
	assert.Equal(t, locs, alg.PartsToSplitLocs(parts))
}

func TestBaselineFromStringToStringRoundTrip(t *testing.T) {
	alg := NewBaselineAlgebra()
	for _, s := range []string{"", "a", "cats", "kävellyt"} {
		c, err := alg.FromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, alg.ToString(c))
	}
}

func TestBaselineIsAtom(t *testing.T) {
	alg := NewBaselineAlgebra()
	a, _ := alg.FromString("a")
	cat, _ := alg.FromString("cat")
	assert.True(t, alg.IsAtom(a))
	assert.False(t, alg.IsAtom(cat))
}

func TestBaselineForceSplitLocations(t *testing.T) {
	alg := NewBaselineAlgebra()
	c, _ := alg.FromString("a-b")
	assert.Empty(t, alg.ForceSplitLocations(c))

	alg.ForceSplitAtoms = map[rune]struct{}{'-': {}}
	assert.Equal(t, []Loc{{I: 1}}, alg.ForceSplitLocations(c))
}
