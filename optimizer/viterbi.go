package optimizer

import (
	"math"

	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/cost"
	"github.com/Waino/morfessor-cognates/store"
)

// gridEntry is one node of the Viterbi trellis: the best cost reaching
// this split position, and the predecessor position it came from.
// Cost is nil when no path reaches this position (an uncovered gap).
type gridEntry struct {
	cost *float64
	prev construction.Loc
}

func tail[T any](n int, xs []T) []T {
	if n <= 0 || len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}

// ViterbiSegmenter finds the minimum-cost segmentation of a compound
// not already present in the analysis tree, per spec §4.E and the
// reference's BaselineModel.viterbi_segment.
type ViterbiSegmenter[C comparable] struct {
	cc    construction.Algebra[C]
	cm    cost.Model[C]
	store *store.AnalysisStore[C]

	// AllowLongerUnkSplits enables the fallback branch that lets an
	// unknown multi-atom span be costed via its per-atom badLikelihood
	// when no split can otherwise cover it.
	AllowLongerUnkSplits bool
}

// NewViterbiSegmenter builds a ViterbiSegmenter over the given algebra,
// cost model, and analysis store.
func NewViterbiSegmenter[C comparable](cc construction.Algebra[C], cm cost.Model[C], st *store.AnalysisStore[C]) *ViterbiSegmenter[C] {
	return &ViterbiSegmenter[C]{cc: cc, cm: cm, store: st}
}

// Segment finds the most probable segmentation of compound and its
// (negative) log-probability, using additive smoothing of addcount and
// windowing constructions to at most maxlen atoms in the trellis fan-in.
func (v *ViterbiSegmenter[C]) Segment(compound C, addcount float64, maxlen int) ([]C, float64) {
	grid := map[construction.Loc]*gridEntry{
		construction.NoneLoc: {cost: ptr(0.0)},
	}

	tokens := v.cm.AllTokens() + addcount
	logTokens := 0.0
	if tokens > 0 {
		logTokens = math.Log(tokens)
	}
	var newBoundCost float64
	if addcount > 0 {
		newBoundCost = v.cm.NewBoundCost(addcount)
	}
	badLikelihood := v.cm.BadLikelihood(compound, addcount)

	targets := append(v.cc.SplitLocations(compound, construction.NoneLoc, construction.NoneLoc), construction.NoneLoc)

	for _, t := range targets {
		candidates := append([]construction.Loc{construction.NoneLoc}, v.cc.SplitLocations(compound, construction.NoneLoc, t)...)
		candidates = tail(maxlen, candidates)

		var bestCost *float64
		bestPath := construction.NoneLoc

		for _, pt := range candidates {
			from, ok := grid[pt]
			if !ok || from.cost == nil {
				continue
			}
			base := *from.cost
			c := v.cc.Slice(compound, pt, t)
			count := v.store.GetConstructionCount(c)

			var candCost float64
			switch {
			case count > 0:
				candCost = base + (logTokens - math.Log(float64(count)+addcount))
			case addcount > 0:
				if v.cm.Tokens() == 0 {
					candCost = base + addcount*math.Log(addcount) + newBoundCost + v.cm.GetCodingCost(c)
				} else {
					candCost = base + (logTokens - math.Log(addcount)) + newBoundCost + v.cm.GetCodingCost(c)
				}
			case v.cc.IsAtom(c):
				candCost = base + badLikelihood
			case v.AllowLongerUnkSplits:
				candCost = base + float64(v.cc.Length(v.cc.CorpusKey(c)))*badLikelihood
			default:
				continue
			}
			if math.IsNaN(candCost) || math.IsInf(candCost, 0) {
				continue
			}

			if bestCost == nil || candCost < *bestCost {
				bc := candCost
				bestCost = &bc
				bestPath = pt
			}
		}
		grid[t] = &gridEntry{cost: bestCost, prev: bestPath}
	}

	var splitLocs []construction.Loc
	final := grid[construction.NoneLoc]
	finalCost := 0.0
	if final != nil && final.cost != nil {
		finalCost = *final.cost
	}
	for cur := final.prev; !cur.None; cur = grid[cur].prev {
		splitLocs = append(splitLocs, cur)
	}
	for i, j := 0, len(splitLocs)-1; i < j; i, j = i+1, j-1 {
		splitLocs[i], splitLocs[j] = splitLocs[j], splitLocs[i]
	}

	constructions := v.cc.SplitN(compound, splitLocs)

	if v.cm.CompoundTokens() > 0 {
		finalCost += math.Log(v.cm.Tokens()+v.cm.CompoundTokens()) - math.Log(v.cm.CompoundTokens())
	}

	return constructions, finalCost
}

func ptr[T any](v T) *T { return &v }
