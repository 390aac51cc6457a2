// Package optimizer implements the splitting algorithms that decide
// how a compound's analysis tree should be shaped: recursive binary
// splitting, Viterbi segmentation, and the batch-training epoch loop
// that repeatedly applies them (spec §4.E, §5).
package optimizer

import (
	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/cost"
	"github.com/Waino/morfessor-cognates/store"
)

// RecursiveSplitter implements the recursive-split algorithm shared by
// Baseline and Cognate models, grounded on the reference's
// BaselineModel._recursive_split / _recursive_optimize.
type RecursiveSplitter[C comparable] struct {
	cc    construction.Algebra[C]
	cm    cost.Model[C]
	store *store.AnalysisStore[C]

	// Hook lets NewCognateRecursiveSplit extend the binary-split search
	// with the coupled wildcard-projection bookkeeping the reference's
	// CognateModel._recursive_split performs; nil for Baseline.
	Hook RecursiveHook[C]
}

// RecursiveHook is the seam NewCognateRecursiveSplit uses to couple a
// cognate pair's split search with its wildcard-projected siblings
// (reference: CognateModel._recursive_split). Implementations return
// opaque state from Prepare that the later calls understand.
type RecursiveHook[C comparable] interface {
	// Prepare removes any coupled sibling constructions before the
	// binary-split search begins, returning state to drive the rest of
	// the search.
	Prepare(c C, count int) any
	// ApplyBase/UndoBase push and retract count through the coupled
	// siblings in their unsplit form, bracketing the no-split baseline
	// cost measurement.
	ApplyBase(state any, count int)
	UndoBase(state any, count int)
	// ApplySplit/UndoSplit push and retract count through the coupled
	// siblings' prefix and suffix at loc, bracketing one candidate
	// split's cost measurement.
	ApplySplit(state any, loc construction.Loc, count int)
	UndoSplit(state any, loc construction.Loc, count int)
	// Commit finalizes the coupled siblings' analyses once a winning
	// split (or no split) has been chosen; bestSplitLoc is nil for "no
	// split".
	Commit(state any, bestSplitLoc *construction.Loc, count int)
}

// NewRecursiveSplitter builds a RecursiveSplitter over the given
// algebra, cost model, and analysis store.
func NewRecursiveSplitter[C comparable](cc construction.Algebra[C], cm cost.Model[C], st *store.AnalysisStore[C]) *RecursiveSplitter[C] {
	return &RecursiveSplitter[C]{cc: cc, cm: cm, store: st}
}

// OptimizeCompound optimizes compound's analysis using forced splits
// followed by recursive binary splitting, returning the resulting leaf
// constructions (reference: _recursive_optimize).
func (r *RecursiveSplitter[C]) OptimizeCompound(compound C) []C {
	parts := r.cc.SplitN(compound, r.cc.ForceSplitLocations(compound))
	if len(parts) == 1 {
		return r.Split(compound)
	}
	r.store.SetCompoundAnalysis(compound, parts)
	var out []C
	for _, part := range parts {
		out = append(out, r.Split(part)...)
	}
	return out
}

// Split recursively optimizes a single construction via exhaustive
// binary-split search, committing the best split found (or none), and
// returns its resulting leaf constructions.
func (r *RecursiveSplitter[C]) Split(c C) []C {
	rcount, count := r.store.Remove(c)

	var hookState any
	if r.Hook != nil {
		hookState = r.Hook.Prepare(c, count)
	}

	r.store.ModifyConstructionCount(c, count)
	if r.Hook != nil {
		r.Hook.ApplyBase(hookState, count)
	}
	minCost := r.cm.Cost()
	r.store.ModifyConstructionCount(c, -count)
	if r.Hook != nil {
		r.Hook.UndoBase(hookState, count)
	}

	var bestLoc *construction.Loc
	for _, loc := range r.cc.SplitLocations(c, construction.NoneLoc, construction.NoneLoc) {
		prefix, suffix := r.cc.Split(c, loc)
		r.store.ModifyConstructionCount(prefix, count)
		r.store.ModifyConstructionCount(suffix, count)
		if r.Hook != nil {
			r.Hook.ApplySplit(hookState, loc, count)
		}
		cost := r.cm.Cost()
		r.store.ModifyConstructionCount(prefix, -count)
		r.store.ModifyConstructionCount(suffix, -count)
		if r.Hook != nil {
			r.Hook.UndoSplit(hookState, loc, count)
		}
		if cost <= minCost {
			minCost = cost
			l := loc
			bestLoc = &l
		}
	}

	if bestLoc != nil {
		prefix, suffix := r.cc.Split(c, *bestLoc)
		r.store.SetSplit(c, rcount, count, []construction.Loc{*bestLoc})
		r.store.ModifyConstructionCount(prefix, count)
		r.store.ModifyConstructionCount(suffix, count)
		if r.Hook != nil {
			r.Hook.Commit(hookState, bestLoc, count)
		}
		left := r.Split(prefix)
		if suffix != prefix {
			return append(left, r.Split(suffix)...)
		}
		return append(left, left...)
	}

	r.store.SetSplit(c, rcount, 0, nil)
	r.store.ModifyConstructionCount(c, count)
	if r.Hook != nil {
		r.Hook.Commit(hookState, nil, count)
	}
	return []C{c}
}
