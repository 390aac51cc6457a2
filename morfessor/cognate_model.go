package morfessor

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/Waino/morfessor-cognates/config"
	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/cost"
	"github.com/Waino/morfessor-cognates/ioformat"
	"github.com/Waino/morfessor-cognates/merrors"
	"github.com/Waino/morfessor-cognates/optimizer"
	"github.com/Waino/morfessor-cognates/store"
)

// CognateModel couples a source-side and target-side Morfessor lexicon
// through a shared edit-operation sub-model, per spec §4.C/§4.E.
type CognateModel struct {
	alg      *construction.CognateAlgebra
	cm       *cost.CognateCost
	store    *store.AnalysisStore[construction.Cognate]
	splitter *optimizer.RecursiveSplitter[construction.Cognate]
	viterbi  *optimizer.ViterbiSegmenter[construction.Cognate]

	// pairs tracks the non-projection compounds loaded via LoadData, kept
	// distinct from the src-only/trg-only wildcard projections that are
	// seeded alongside them so Segmentations lists only the loaded pairs,
	// not their synthetic projections.
	pairs map[construction.Cognate]struct{}

	segmentOnly bool
}

// NewCognateModel builds an empty, trainable CognateModel.
func NewCognateModel(cfg config.Config) *CognateModel {
	alg := construction.NewCognateAlgebra()
	cm := cost.NewCognateCost(alg, cfg.CorpusWeight)
	cm.EditWeight = cfg.EditWeight
	st := store.New[construction.Cognate](alg, cm)
	st.WildcardCount = func(c construction.Cognate) (int, bool) {
		if !c.Src.Wildcard && !c.Trg.Wildcard {
			return 0, false
		}
		return cm.Count(c), true
	}
	splitter := optimizer.NewCognateRecursiveSplit(alg, cm, st)
	viterbi := optimizer.NewViterbiSegmenter[construction.Cognate](alg, cm, st)
	return &CognateModel{
		alg: alg, cm: cm, store: st, splitter: splitter, viterbi: viterbi,
		pairs: make(map[construction.Cognate]struct{}),
	}
}

func (m *CognateModel) checkMutable() error {
	if m.segmentOnly {
		return merrors.ErrSegmentOnly
	}
	return nil
}

// LoadData adds every training record's cognate pair (encoded as
// "src￨trg" in rec.Compound) to the model. Per-record initial
// splits are a Non-goal for cognate pairs (spec.md scopes initial
// splits to the 1-D baseline case); InitialSplit is ignored here.
//
// Alongside each non-projection pair, the two wildcard projections
// (src, WILDCARD) and (WILDCARD, trg) are seeded with the same count,
// per spec §3 invariant 5: a pair's projections must exist with count
// at least that of the pair so the recursive splitter's wildcard
// coupling (optimizer.cognateWildcardHook) has something to couple to.
func (m *CognateModel) LoadData(records []ioformat.TrainingRecord) error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	for _, rec := range records {
		pair, err := m.alg.FromString(rec.Compound)
		if err != nil {
			return err
		}
		m.store.AddCompound(pair, rec.Count)
		m.store.ClearCompoundAnalysis(pair)
		m.store.SetCompoundAnalysis(pair, []construction.Cognate{pair})
		m.pairs[pair] = struct{}{}
		m.seedProjections(pair, rec.Count)
	}
	return nil
}

// seedProjections adds the src-only and trg-only wildcard projections of
// a non-projection pair as their own real (unsplit) constructions, so
// the recursive splitter's wildcard hook finds them already present.
// No-op for pairs that are themselves projections.
func (m *CognateModel) seedProjections(pair construction.Cognate, count int) {
	if pair.Src.Wildcard || pair.Trg.Wildcard {
		return
	}
	wildSrc := m.alg.Type(pair.Src, construction.Wildcard)
	m.store.AddCompound(wildSrc, count)
	m.store.ClearCompoundAnalysis(wildSrc)
	m.store.SetCompoundAnalysis(wildSrc, []construction.Cognate{wildSrc})

	wildTrg := m.alg.Type(construction.Wildcard, pair.Trg)
	m.store.AddCompound(wildTrg, count)
	m.store.ClearCompoundAnalysis(wildTrg)
	m.store.SetCompoundAnalysis(wildTrg, []construction.Cognate{wildTrg})
}

// Train runs batch training to convergence (or cancellation).
func (m *CognateModel) Train(ctx context.Context, cfg config.Config, rnd *rand.Rand) (epochs int, finalCost float64, err error) {
	if err := m.checkMutable(); err != nil {
		return 0, 0, err
	}
	trainer := optimizer.NewBatchTrainer[construction.Cognate](m.alg, m.cm, m.store, m.splitter, m.viterbi, rnd)
	trainer.Log = Logger
	return trainer.Run(ctx, cfg.Algorithm, cfg.FinishThreshold, cfg.MaxEpochs, cfg.AddCount, cfg.MaxLen)
}

// Segment looks up a cognate pair's learned segmentation.
func (m *CognateModel) Segment(pair string) ([]string, error) {
	c, err := m.alg.FromString(pair)
	if err != nil {
		return nil, err
	}
	if _, ok := m.store.Get(c); !ok {
		return nil, fmt.Errorf("%w: %q", merrors.ErrMissingCompound, pair)
	}
	return m.toStrings(m.store.Segment(c)), nil
}

// ViterbiSegment finds the most probable segmentation of an unseen
// cognate pair.
func (m *CognateModel) ViterbiSegment(pair string, addcount float64, maxlen int) ([]string, float64, error) {
	c, err := m.alg.FromString(pair)
	if err != nil {
		return nil, 0, err
	}
	parts, segCost := m.viterbi.Segment(c, addcount, maxlen)
	return m.toStrings(parts), segCost, nil
}

func (m *CognateModel) toStrings(parts []construction.Cognate) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = m.alg.ToString(p)
	}
	return out
}

// Cost returns the model's current total code length.
func (m *CognateModel) Cost() float64 { return m.cm.Cost() }

// Segmentations yields every loaded pair's count and final
// segmentation, sorted by pair for reproducible output. The wildcard
// projections seeded alongside each pair (see LoadData) are coupling
// infrastructure, not independently loaded compounds, so they are
// excluded here.
func (m *CognateModel) Segmentations() []ioformat.Segmentation {
	strs := make([]string, 0, len(m.pairs))
	byStr := make(map[string]construction.Cognate, len(m.pairs))
	for c := range m.pairs {
		s := m.alg.ToString(c)
		strs = append(strs, s)
		byStr[s] = c
	}
	sort.Strings(strs)

	out := make([]ioformat.Segmentation, 0, len(strs))
	for _, s := range strs {
		c := byStr[s]
		n, _ := m.store.Get(c)
		out = append(out, ioformat.Segmentation{
			Count:    n.RCount,
			Compound: s,
			Segments: m.toStrings(m.store.Segment(c)),
		})
	}
	return out
}

// MakeSegmentOnly freezes the model for inference.
func (m *CognateModel) MakeSegmentOnly() { m.segmentOnly = true }
