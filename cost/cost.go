// Package cost composes the encoding books into a total code length and
// exposes the incremental update entry point every split decision goes
// through. Two variants are provided: Baseline (a single lexicon) and
// Cognate (source + target + edit sub-models coupled through a shared
// delta), per spec §4.C.
package cost

import (
	"math"

	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/encoding"
)

// Model is the interface the optimizer package depends on, generic
// over the construction type C. BaselineCost implements
// Model[construction.Baseline]; CognateCost implements
// Model[construction.Cognate].
type Model[C comparable] interface {
	Update(c C, delta int)
	UpdateBoundaries(c C, delta int)
	Cost() float64
	Tokens() float64
	CompoundTokens() float64
	Types() float64
	AllTokens() float64
	NewBoundCost(k float64) float64
	BadLikelihood(c C, addcount float64) float64
	GetCodingCost(c C) float64
	// Count returns the current analyzed count of c as tracked by this
	// cost model's own counter (distinct from the analysis store's
	// count, though kept in lockstep with it by construction).
	Count(c C) int
}

// BaselineCost owns one LexiconEncoding and one CorpusEncoding plus a
// per-construction counter, per spec §4.C.
type BaselineCost struct {
	cc     construction.Algebra[construction.Baseline]
	lex    *encoding.LexiconEncoding
	corp   *encoding.CorpusEncoding
	counts map[construction.Baseline]int
}

// NewBaselineCost builds a cost model over the Baseline algebra with
// the given corpus weight (1.0 if corpusWeight is nil, per spec §6's
// "fixed or None (=> 1.0)").
func NewBaselineCost(cc construction.Algebra[construction.Baseline], corpusWeight *float64) *BaselineCost {
	w := 1.0
	if corpusWeight != nil {
		w = *corpusWeight
	}
	return &BaselineCost{
		cc:     cc,
		lex:    encoding.NewLexiconEncoding(),
		corp:   encoding.NewCorpusEncoding(w),
		counts: make(map[construction.Baseline]int),
	}
}

var _ Model[construction.Baseline] = (*BaselineCost)(nil)

// SetCorpusWeight updates the corpus encoding's weight multiplier.
func (bc *BaselineCost) SetCorpusWeight(w float64) { bc.corp.Weight = w }

// CorpusWeight returns the corpus encoding's weight multiplier.
func (bc *BaselineCost) CorpusWeight() float64 { return bc.corp.Weight }

// Count returns the construction's current counter value.
func (bc *BaselineCost) Count(c construction.Baseline) int { return bc.counts[c] }

// Update applies a count delta to construction c, keeping the lexicon
// and corpus encodings in exact sync, per spec §4.C steps 1-5.
func (bc *BaselineCost) Update(c construction.Baseline, delta int) {
	if delta == 0 {
		return
	}
	old := bc.counts[c]
	if old == 0 {
		bc.lex.Add(string(bc.cc.LexKey(c)))
	}
	newCount := old + delta
	bc.corp.UpdateCount(old, newCount)
	if newCount == 0 {
		bc.lex.Remove(string(bc.cc.LexKey(c)))
		delete(bc.counts, c)
	} else {
		bc.counts[c] = newCount
	}
}

// UpdateBoundaries adjusts the compound-token counter.
func (bc *BaselineCost) UpdateBoundaries(_ construction.Baseline, delta int) {
	bc.corp.AddBoundaries(delta)
}

// Cost returns lex.GetCost() + corp.GetCost().
func (bc *BaselineCost) Cost() float64 {
	return bc.lex.GetCost() + bc.corp.GetCost()
}

// Tokens returns the corpus token count.
func (bc *BaselineCost) Tokens() float64 { return float64(bc.corp.Tokens()) }

// CompoundTokens returns the corpus boundary (compound) count.
func (bc *BaselineCost) CompoundTokens() float64 { return float64(bc.corp.Boundaries()) }

// Types returns the lexicon boundary count minus the implicit end
// symbol (spec §9, design note resolving the misspelled-attribute Open
// Question: "the lexicon's boundary count minus an implicit end
// symbol").
func (bc *BaselineCost) Types() float64 { return float64(bc.lex.Boundaries() - 1) }

// AllTokens is corp.tokens + corp.boundaries.
func (bc *BaselineCost) AllTokens() float64 {
	return float64(bc.corp.Tokens() + bc.corp.Boundaries())
}

// NewBoundCost is ((B+k)*log(B+k) - B*log(B)) / weight, zero if k==0.
func (bc *BaselineCost) NewBoundCost(k float64) float64 {
	if k == 0 {
		return 0
	}
	b := float64(bc.lex.Boundaries())
	cost := (b+k)*math.Log(b+k) - b*math.Log(b)
	return cost / bc.corp.Weight
}

// GetCodingCost is lex.get_codelength(m) / weight.
func (bc *BaselineCost) GetCodingCost(c construction.Baseline) float64 {
	return bc.lex.GetCodeLength(string(bc.cc.LexKey(c))) / bc.corp.Weight
}

// BadLikelihood implements spec §4.C's fallback-cost formula, with the
// log term zeroed when addcount == 0.
func (bc *BaselineCost) BadLikelihood(c construction.Baseline, addcount float64) float64 {
	corpusKey := bc.cc.CorpusKey(c)
	logTerm := 0.0
	if addcount != 0 {
		logTerm = math.Log(bc.AllTokens() + addcount)
	}
	return 1 + float64(len([]rune(string(corpusKey))))*logTerm + bc.NewBoundCost(addcount) + bc.GetCodingCost(c)
}
