package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Waino/morfessor-cognates/construction"
)

func TestBaselineCostUpdateRemoveRoundTrip(t *testing.T) {
	alg := construction.NewBaselineAlgebra()
	bc := NewBaselineCost(alg, nil)

	bc.UpdateBoundaries("cat", 1)
	before := bc.Cost()

	bc.Update("cat", 5)
	assert.Equal(t, 5, bc.Count("cat"))
	bc.Update("cat", -5)
	assert.Equal(t, 0, bc.Count("cat"))

	after := bc.Cost()
	assert.InDelta(t, before, after, 1e-9)
}

func TestBaselineCostTypesExcludesImplicitEnd(t *testing.T) {
	alg := construction.NewBaselineAlgebra()
	bc := NewBaselineCost(alg, nil)
	assert.Equal(t, 0.0, bc.Types())

	bc.Update("cat", 3)
	assert.Equal(t, 1.0, bc.Types())
}

func TestBaselineCostStoresCorpusWeight(t *testing.T) {
	alg := construction.NewBaselineAlgebra()
	w := 2.0
	bc := NewBaselineCost(alg, &w)
	assert.Equal(t, 2.0, bc.CorpusWeight())
}

func TestCognateCostEditWeightAlwaysOne(t *testing.T) {
	alg := construction.NewCognateAlgebra()
	w := 3.0
	gc := NewCognateCost(alg, &w)
	gc.SetCorpusWeight(9.0)
	// the edit sub-cost keeps corpus weight 1.0 while SetCorpusWeight
	// moves the src/trg sub-costs; Cost() then combines the three
	// sub-costs with EditWeight on the edit term.
	assert.Equal(t, 1.0, gc.editCost.CorpusWeight())
	assert.Equal(t, 9.0, gc.srcCost.CorpusWeight())
	pair, err := construction.NewCognate(construction.Atom("walk"), construction.Atom("walked"))
	assert.NoError(t, err)
	gc.Update(pair, 1)
	assert.Equal(t, gc.srcCost.Cost()+gc.trgCost.Cost()+gc.EditWeight*gc.editCost.Cost(), gc.Cost())
}

func TestCognateCostUpdateRemoveRoundTrip(t *testing.T) {
	alg := construction.NewCognateAlgebra()
	gc := NewCognateCost(alg, nil)

	pair, err := construction.NewCognate(construction.Atom("walk"), construction.Atom("kävellä"))
	assert.NoError(t, err)

	gc.UpdateBoundaries(pair, 1)
	before := gc.Cost()

	gc.Update(pair, 4)
	gc.Update(pair, -4)

	after := gc.Cost()
	assert.InDelta(t, before, after, 1e-9)
}

func TestCognateCostSkipsWildcardSide(t *testing.T) {
	alg := construction.NewCognateAlgebra()
	gc := NewCognateCost(alg, nil)

	proj, err := construction.NewCognate(construction.Wildcard, construction.Atom("kissa"))
	assert.NoError(t, err)

	gc.Update(proj, 2)
	assert.Equal(t, 0, gc.srcCost.Count(""))
	assert.Equal(t, 2, gc.trgCost.Count("kissa"))
}
