package cost

import (
	"github.com/Waino/morfessor-cognates/construction"
)

// CognateCost composes three BaselineCost instances -- one over source
// atoms, one over target atoms, one over the edit-operation vocabulary
// relating the two -- per spec §4.C. A WILDCARD side never touches its
// corresponding sub-cost, and the edit sub-model only sees constructions
// where both sides are real.
type CognateCost struct {
	srcCost  *BaselineCost
	trgCost  *BaselineCost
	editCost *BaselineCost

	EditWeight float64

	baseAlg *construction.BaselineAlgebra
	cc      construction.Algebra[construction.Cognate]
}

// NewCognateCost builds a CognateCost over the Cognate algebra with the
// given corpus weight (src/trg sub-costs only; the edit sub-cost always
// uses weight 1.0, matching the reference composition).
func NewCognateCost(cc construction.Algebra[construction.Cognate], corpusWeight *float64) *CognateCost {
	baseAlg := construction.NewBaselineAlgebra()
	one := 1.0
	return &CognateCost{
		srcCost:    NewBaselineCost(baseAlg, corpusWeight),
		trgCost:    NewBaselineCost(baseAlg, corpusWeight),
		editCost:   NewBaselineCost(baseAlg, &one),
		EditWeight: 1.0,
		baseAlg:    baseAlg,
		cc:         cc,
	}
}

var _ Model[construction.Cognate] = (*CognateCost)(nil)

// SetCorpusWeight updates the src/trg sub-costs' weight multiplier (the
// edit sub-cost's weight is left untouched, matching the reference,
// whose set_corpus_coding_weight leaves edit_cost alone).
func (gc *CognateCost) SetCorpusWeight(w float64) {
	gc.srcCost.SetCorpusWeight(w)
	gc.trgCost.SetCorpusWeight(w)
}

func sideBaseline(s construction.Side) construction.Baseline {
	return construction.Baseline(s.Value)
}

// Count returns the src-side sub-cost's counter for c's source atoms,
// or the trg-side counter if the source is a wildcard. It backs the
// analysis store's WildcardCount hook (set by morfessor.NewCognateModel),
// through which GetConstructionCount answers wildcard projections; all
// other counts come from the analysis store.
func (gc *CognateCost) Count(c construction.Cognate) int {
	if !c.Src.Wildcard {
		return gc.srcCost.Count(sideBaseline(c.Src))
	}
	if !c.Trg.Wildcard {
		return gc.trgCost.Count(sideBaseline(c.Trg))
	}
	return 0
}

// Update pushes delta into the src, trg, and (when both sides are real)
// edit sub-costs, per spec §4.C.
func (gc *CognateCost) Update(c construction.Cognate, delta int) {
	if delta == 0 {
		return
	}
	lk := gc.cc.LexKey(c)
	if !lk.Src.Wildcard {
		gc.srcCost.Update(sideBaseline(lk.Src), delta)
	}
	if !lk.Trg.Wildcard {
		gc.trgCost.Update(sideBaseline(lk.Trg), delta)
	}
	if !lk.Src.Wildcard && !lk.Trg.Wildcard {
		for _, e := range Edits(lk.Src.Value, lk.Trg.Value) {
			gc.editCost.Update(construction.Baseline(e), delta)
		}
	}
}

// UpdateBoundaries mirrors Update for the boundary counter.
func (gc *CognateCost) UpdateBoundaries(c construction.Cognate, delta int) {
	ck := gc.cc.CorpusKey(c)
	if !ck.Src.Wildcard {
		gc.srcCost.UpdateBoundaries(sideBaseline(ck.Src), delta)
	}
	if !ck.Trg.Wildcard {
		gc.trgCost.UpdateBoundaries(sideBaseline(ck.Trg), delta)
	}
	if !ck.Src.Wildcard && !ck.Trg.Wildcard {
		for _, e := range Edits(ck.Src.Value, ck.Trg.Value) {
			gc.editCost.UpdateBoundaries(construction.Baseline(e), delta)
		}
	}
}

// Cost is src.Cost() + trg.Cost() + EditWeight*edit.Cost().
func (gc *CognateCost) Cost() float64 {
	return gc.srcCost.Cost() + gc.trgCost.Cost() + gc.EditWeight*gc.editCost.Cost()
}

func (gc *CognateCost) Tokens() float64 { return gc.srcCost.Tokens() + gc.trgCost.Tokens() }

func (gc *CognateCost) CompoundTokens() float64 {
	return gc.srcCost.CompoundTokens() + gc.trgCost.CompoundTokens()
}

func (gc *CognateCost) Types() float64 { return gc.srcCost.Types() + gc.trgCost.Types() }

func (gc *CognateCost) AllTokens() float64 { return gc.srcCost.AllTokens() + gc.trgCost.AllTokens() }

func (gc *CognateCost) NewBoundCost(k float64) float64 {
	return gc.srcCost.NewBoundCost(k) + gc.trgCost.NewBoundCost(k)
}

// BadLikelihood sums the src/trg sub-costs' fallback cost over whichever
// sides of c's corpus key are real (the edit sub-model has no fallback
// term of its own, matching the reference).
func (gc *CognateCost) BadLikelihood(c construction.Cognate, addcount float64) float64 {
	ck := gc.cc.CorpusKey(c)
	var total float64
	if !ck.Src.Wildcard {
		total += gc.srcCost.BadLikelihood(sideBaseline(ck.Src), addcount)
	}
	if !ck.Trg.Wildcard {
		total += gc.trgCost.BadLikelihood(sideBaseline(ck.Trg), addcount)
	}
	return total
}

// GetCodingCost sums the src/trg sub-costs' coding cost for c's lex key.
func (gc *CognateCost) GetCodingCost(c construction.Cognate) float64 {
	lk := gc.cc.LexKey(c)
	var total float64
	if !lk.Src.Wildcard {
		total += gc.srcCost.GetCodingCost(sideBaseline(lk.Src))
	}
	if !lk.Trg.Wildcard {
		total += gc.trgCost.GetCodingCost(sideBaseline(lk.Trg))
	}
	return total
}
