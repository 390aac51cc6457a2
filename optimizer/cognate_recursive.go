package optimizer

import (
	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/cost"
	"github.com/Waino/morfessor-cognates/store"
)

// cognateWildcardHook couples a cognate pair's recursive-split search
// with its two wildcard-projected siblings -- (src, WILDCARD) and
// (WILDCARD, trg) -- so that splitting "walked/kävellyt" also keeps
// the src-only and trg-only analyses of the same word in sync.
// Grounded on the reference's CognateModel._recursive_split.
type cognateWildcardHook struct {
	store *store.AnalysisStore[construction.Cognate]
	alg   *construction.CognateAlgebra
}

type cognateHookState struct {
	wildSrc, wildTrg     *construction.Cognate
	srcCount, trgCount   int
	srcRCount, trgRCount int
}

var _ RecursiveHook[construction.Cognate] = (*cognateWildcardHook)(nil)

func (h *cognateWildcardHook) Prepare(c construction.Cognate, count int) any {
	st := &cognateHookState{}
	if c.Src.Wildcard || c.Trg.Wildcard {
		return st
	}
	wildSrc := h.alg.Type(c.Src, construction.Wildcard)
	if _, ok := h.store.Get(wildSrc); ok {
		rc, cnt := h.store.Remove(wildSrc)
		st.wildSrc = &wildSrc
		st.srcRCount, st.srcCount = rc, cnt
	}
	wildTrg := h.alg.Type(construction.Wildcard, c.Trg)
	if _, ok := h.store.Get(wildTrg); ok {
		rc, cnt := h.store.Remove(wildTrg)
		st.wildTrg = &wildTrg
		st.trgRCount, st.trgCount = rc, cnt
	}
	return st
}

func (h *cognateWildcardHook) ApplyBase(state any, _ int) {
	st := state.(*cognateHookState)
	if st.wildSrc != nil {
		h.store.ModifyConstructionCount(*st.wildSrc, st.srcCount)
	}
	if st.wildTrg != nil {
		h.store.ModifyConstructionCount(*st.wildTrg, st.trgCount)
	}
}

func (h *cognateWildcardHook) UndoBase(state any, _ int) {
	st := state.(*cognateHookState)
	if st.wildSrc != nil {
		h.store.ModifyConstructionCount(*st.wildSrc, -st.srcCount)
	}
	if st.wildTrg != nil {
		h.store.ModifyConstructionCount(*st.wildTrg, -st.trgCount)
	}
}

func (h *cognateWildcardHook) ApplySplit(state any, loc construction.Loc, _ int) {
	st := state.(*cognateHookState)
	if st.wildSrc != nil {
		prefix, suffix := h.alg.Split(*st.wildSrc, loc)
		h.store.ModifyConstructionCount(prefix, st.srcCount)
		h.store.ModifyConstructionCount(suffix, st.srcCount)
	}
	if st.wildTrg != nil {
		prefix, suffix := h.alg.Split(*st.wildTrg, loc)
		h.store.ModifyConstructionCount(prefix, st.trgCount)
		h.store.ModifyConstructionCount(suffix, st.trgCount)
	}
}

func (h *cognateWildcardHook) UndoSplit(state any, loc construction.Loc, _ int) {
	st := state.(*cognateHookState)
	if st.wildSrc != nil {
		prefix, suffix := h.alg.Split(*st.wildSrc, loc)
		h.store.ModifyConstructionCount(prefix, -st.srcCount)
		h.store.ModifyConstructionCount(suffix, -st.srcCount)
	}
	if st.wildTrg != nil {
		prefix, suffix := h.alg.Split(*st.wildTrg, loc)
		h.store.ModifyConstructionCount(prefix, -st.trgCount)
		h.store.ModifyConstructionCount(suffix, -st.trgCount)
	}
}

func (h *cognateWildcardHook) Commit(state any, bestSplitLoc *construction.Loc, count int) {
	st := state.(*cognateHookState)
	if st.wildSrc != nil {
		h.commitSibling(*st.wildSrc, st.srcRCount, st.srcCount, bestSplitLoc)
	}
	if st.wildTrg != nil {
		h.commitSibling(*st.wildTrg, st.trgRCount, st.trgCount, bestSplitLoc)
	}
}

func (h *cognateWildcardHook) commitSibling(c construction.Cognate, rcount, count int, bestSplitLoc *construction.Loc) {
	if bestSplitLoc == nil {
		h.store.SetSplit(c, rcount, 0, nil)
		h.store.ModifyConstructionCount(c, count)
		return
	}
	prefix, suffix := h.alg.Split(c, *bestSplitLoc)
	h.store.SetSplit(c, rcount, count, []construction.Loc{*bestSplitLoc})
	h.store.ModifyConstructionCount(prefix, count)
	h.store.ModifyConstructionCount(suffix, count)
}

// NewCognateRecursiveSplit builds a RecursiveSplitter for the Cognate
// algebra with wildcard-projection coupling enabled.
func NewCognateRecursiveSplit(
	alg *construction.CognateAlgebra,
	cm cost.Model[construction.Cognate],
	st *store.AnalysisStore[construction.Cognate],
) *RecursiveSplitter[construction.Cognate] {
	r := NewRecursiveSplitter[construction.Cognate](alg, cm, st)
	r.Hook = &cognateWildcardHook{store: st, alg: alg}
	return r
}
