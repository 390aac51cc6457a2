package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/cost"
	"github.com/Waino/morfessor-cognates/store"
)

func newCognateFixture() (*construction.CognateAlgebra, *cost.CognateCost, *store.AnalysisStore[construction.Cognate]) {
	alg := construction.NewCognateAlgebra()
	cm := cost.NewCognateCost(alg, nil)
	st := store.New[construction.Cognate](alg, cm)
	st.WildcardCount = func(c construction.Cognate) (int, bool) {
		if !c.Src.Wildcard && !c.Trg.Wildcard {
			return 0, false
		}
		return cm.Count(c), true
	}
	return alg, cm, st
}

func mustPair(t *testing.T, alg *construction.CognateAlgebra, src, trg string) construction.Cognate {
	t.Helper()
	pair, err := construction.NewCognate(construction.Atom(src), construction.Atom(trg))
	require.NoError(t, err)
	return pair
}

func TestCognateRecursiveSplitKeepsWildcardProjectionsInSync(t *testing.T) {
	alg, cm, st := newCognateFixture()
	splitter := NewCognateRecursiveSplit(alg, cm, st)

	pair := mustPair(t, alg, "walked", "kävellyt")
	wildSrc := alg.Type(construction.Atom("walked"), construction.Wildcard)
	wildTrg := alg.Type(construction.Wildcard, construction.Atom("kävellyt"))

	st.AddCompound(pair, 5)
	st.AddCompound(wildSrc, 5)
	st.AddCompound(wildTrg, 5)

	splitter.OptimizeCompound(pair)

	pairNode, ok := st.Get(pair)
	require.True(t, ok)
	srcNode, ok := st.Get(wildSrc)
	require.True(t, ok)
	trgNode, ok := st.Get(wildTrg)
	require.True(t, ok)

	assert.Equal(t, pairNode.SplitLoc, srcNode.SplitLoc, "src projection must mirror the pair's chosen split")
	assert.Equal(t, pairNode.SplitLoc, trgNode.SplitLoc, "trg projection must mirror the pair's chosen split")
	assert.Equal(t, pairNode.RCount, srcNode.RCount)
	assert.Equal(t, pairNode.RCount, trgNode.RCount)

	if len(pairNode.SplitLoc) > 0 {
		assert.Len(t, st.Segment(wildSrc), len(st.Segment(pair)))
		assert.Len(t, st.Segment(wildTrg), len(st.Segment(pair)))
	}
}
