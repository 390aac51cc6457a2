// Package store holds the per-construction analysis tree every
// optimizer walks: for each known construction, its real (corpus)
// count, its current total count, and -- for virtual constructions --
// the split location(s) that decompose it into children. This mirrors
// the teacher's ConstrNode bookkeeping pattern, generalized over the
// construction algebra so one implementation serves both Baseline and
// Cognate (spec §3, §4.D).
package store

import (
	"fmt"

	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/cost"
	"github.com/Waino/morfessor-cognates/merrors"
)

// Node records one construction's bookkeeping entry.
type Node[C comparable] struct {
	RCount   int
	Count    int
	SplitLoc []construction.Loc
}

func (n Node[C]) isVirtual() bool { return len(n.SplitLoc) > 0 }

// AnalysisStore is the generic analysis tree, parameterized by the
// construction type it holds.
type AnalysisStore[C comparable] struct {
	cc   construction.Algebra[C]
	cost cost.Model[C]

	analyses map[C]Node[C]

	// WildcardCount, when set, is consulted by GetConstructionCount
	// before the normal analyses lookup; it lets the Cognate variant
	// answer counts for a wildcard-projected side directly from its
	// sub-cost counters, per the reference's CognateModel override of
	// get_construction_count. ok is false for non-wildcard c, in which
	// case the normal lookup proceeds.
	WildcardCount func(c C) (count int, ok bool)
}

// New builds an empty AnalysisStore over the given algebra and cost
// model.
func New[C comparable](cc construction.Algebra[C], cm cost.Model[C]) *AnalysisStore[C] {
	return &AnalysisStore[C]{
		cc:       cc,
		cost:     cm,
		analyses: make(map[C]Node[C]),
	}
}

// AddCompound registers c tokens of compound in the corpus, as a
// single as-yet-unsplit real construction (spec §4.D, _add_compound).
func (s *AnalysisStore[C]) AddCompound(compound C, c int) {
	s.cost.UpdateBoundaries(compound, c)
	s.ModifyConstructionCount(compound, c)
	n := s.analyses[compound]
	n.RCount += c
	s.analyses[compound] = n
}

// Remove zeroes out construction's count, pushing the delta through
// ModifyConstructionCount, and returns its prior (rcount, count).
func (s *AnalysisStore[C]) Remove(c C) (rcount, count int) {
	n, ok := s.analyses[c]
	if !ok {
		return 0, 0
	}
	s.ModifyConstructionCount(c, -n.Count)
	return n.RCount, n.Count
}

// ClearCompoundAnalysis exists for symmetry with the reference's
// _clear_compound_analysis hook point (a no-op there too: analysis
// state lives entirely in the map entry that SetCompoundAnalysis
// replaces).
func (s *AnalysisStore[C]) ClearCompoundAnalysis(compound C) {}

// SetCompoundAnalysis replaces compound's analysis with the given
// split into parts, per spec §4.D. A single-element parts list marks
// compound as a real (unsplit) construction.
func (s *AnalysisStore[C]) SetCompoundAnalysis(compound C, parts []C) {
	if len(parts) == 1 {
		rcount, count := s.Remove(compound)
		s.analyses[compound] = Node[C]{RCount: rcount}
		s.ModifyConstructionCount(compound, count)
		return
	}
	rcount, count := s.Remove(compound)
	splitLoc := s.cc.PartsToSplitLocs(parts)
	s.analyses[compound] = Node[C]{RCount: rcount, Count: count, SplitLoc: splitLoc}
	for _, part := range parts {
		s.ModifyConstructionCount(part, count)
	}
}

// GetConstructionCount returns the real (non-virtual) count of c, 0 if
// c is unknown or currently virtual. Panics via merrors.InvariantError
// if a real construction's bookkeeping count has gone non-positive,
// which should never happen (spec §8 invariant 3).
func (s *AnalysisStore[C]) GetConstructionCount(c C) int {
	if s.WildcardCount != nil {
		if count, ok := s.WildcardCount(c); ok {
			return count
		}
	}
	n, ok := s.analyses[c]
	if !ok || n.isVirtual() {
		return 0
	}
	if n.Count <= 0 {
		panic(merrors.NewInvariantViolation(fmt.Sprintf("%v", c)))
	}
	return n.Count
}

// ModifyConstructionCount applies dcount to construction's total count.
// For a virtual construction it recurses into the children named by
// its split locations; for a real construction it pushes the delta
// into the cost model. This is the single entry point every structural
// change in the model goes through (spec §4.D).
func (s *AnalysisStore[C]) ModifyConstructionCount(c C, dcount int) {
	if dcount == 0 {
		return
	}
	n, existed := s.analyses[c]
	newCount := n.Count + dcount
	if newCount == 0 {
		if existed {
			delete(s.analyses, c)
		}
	} else {
		n.Count = newCount
		s.analyses[c] = n
	}
	if n.isVirtual() {
		for _, child := range s.cc.SplitN(c, n.SplitLoc) {
			s.ModifyConstructionCount(child, dcount)
		}
	} else {
		s.cost.Update(c, dcount)
	}
}

// SetSplit directly installs a node's bookkeeping fields without
// touching the cost model, for callers (the recursive-split optimizer)
// that have already pushed the corresponding count deltas themselves.
func (s *AnalysisStore[C]) SetSplit(c C, rcount, count int, splitLoc []construction.Loc) {
	s.analyses[c] = Node[C]{RCount: rcount, Count: count, SplitLoc: splitLoc}
}

// GetCompounds returns every construction currently tracked with a
// positive real (corpus) count.
func (s *AnalysisStore[C]) GetCompounds() []C {
	var out []C
	for c, n := range s.analyses {
		if n.RCount > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the raw analysis node for c, for callers (tests,
// inspection tooling) that need the split location directly.
func (s *AnalysisStore[C]) Get(c C) (Node[C], bool) {
	n, ok := s.analyses[c]
	return n, ok
}

// IsVirtual reports whether c currently has a split in the tree.
func (s *AnalysisStore[C]) IsVirtual(c C) bool {
	n, ok := s.analyses[c]
	return ok && n.isVirtual()
}

// Segment expands compound into its leaf (real) constructions by
// walking the split tree, per spec §4.D.
func (s *AnalysisStore[C]) Segment(compound C) []C {
	n, ok := s.analyses[compound]
	if !ok || !n.isVirtual() {
		return []C{compound}
	}
	var out []C
	for _, part := range s.cc.SplitN(compound, n.SplitLoc) {
		out = append(out, s.Segment(part)...)
	}
	return out
}

// Constructions returns every real (leaf) construction currently
// tracked, alongside its count.
func (s *AnalysisStore[C]) Constructions() map[C]int {
	out := make(map[C]int)
	for c, n := range s.analyses {
		if !n.isVirtual() {
			out[c] = n.Count
		}
	}
	return out
}
