package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/cost"
)

func newBaselineStore() (*AnalysisStore[construction.Baseline], *cost.BaselineCost) {
	alg := construction.NewBaselineAlgebra()
	cm := cost.NewBaselineCost(alg, nil)
	return New[construction.Baseline](alg, cm), cm
}

func TestAddCompoundThenRemoveRestoresZeroCost(t *testing.T) {
	st, cm := newBaselineStore()

	st.AddCompound("xy", 1)
	assert.NotZero(t, cm.Cost())

	st.Remove("xy")
	assert.Equal(t, 0.0, cm.Cost())
	assert.Empty(t, st.GetCompounds())
}

func TestSetCompoundAnalysisSplitsAndMerges(t *testing.T) {
	st, _ := newBaselineStore()
	st.AddCompound("cats", 1)

	st.SetCompoundAnalysis("cats", []construction.Baseline{"cat", "s"})
	assert.True(t, st.IsVirtual("cats"))
	assert.Equal(t, 1, st.GetConstructionCount("cat"))
	assert.Equal(t, 1, st.GetConstructionCount("s"))
	assert.Equal(t, []construction.Baseline{"cat", "s"}, st.Segment("cats"))

	// merging back to a single real construction clears the split.
	st.SetCompoundAnalysis("cats", []construction.Baseline{"cats"})
	assert.False(t, st.IsVirtual("cats"))
	assert.Equal(t, 1, st.GetConstructionCount("cats"))
}

func TestGetConstructionCountZeroForUnknown(t *testing.T) {
	st, _ := newBaselineStore()
	assert.Equal(t, 0, st.GetConstructionCount("nope"))
}

func TestGetConstructionCountZeroForVirtual(t *testing.T) {
	st, _ := newBaselineStore()
	st.AddCompound("cats", 1)
	st.SetCompoundAnalysis("cats", []construction.Baseline{"cat", "s"})
	assert.Equal(t, 0, st.GetConstructionCount("cats"))
}

func TestModifyConstructionCountRecursesThroughVirtualTree(t *testing.T) {
	st, _ := newBaselineStore()
	st.AddCompound("cats", 1)
	st.SetCompoundAnalysis("cats", []construction.Baseline{"cat", "s"})

	st.ModifyConstructionCount("cats", 2)
	assert.Equal(t, 3, st.GetConstructionCount("cat"))
	assert.Equal(t, 3, st.GetConstructionCount("s"))
}

func TestSharedLeafCountAccumulatesAcrossCompounds(t *testing.T) {
	st, _ := newBaselineStore()
	st.AddCompound("cats", 3)
	st.AddCompound("dogs", 4)
	st.SetCompoundAnalysis("cats", []construction.Baseline{"cat", "s"})
	st.SetCompoundAnalysis("dogs", []construction.Baseline{"dog", "s"})

	require.Equal(t, 7, st.GetConstructionCount("s"))
}
