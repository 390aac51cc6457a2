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

// BaselineModel is the single-sequence Morfessor model, composing the
// construction, cost, store, and optimizer packages the way the
// teacher's MorphAnalyzer composes its own DAWG and tag-parsing layers.
type BaselineModel struct {
	alg      *construction.BaselineAlgebra
	cm       *cost.BaselineCost
	store    *store.AnalysisStore[construction.Baseline]
	splitter *optimizer.RecursiveSplitter[construction.Baseline]
	viterbi  *optimizer.ViterbiSegmenter[construction.Baseline]

	segmentOnly bool
}

// NewBaselineModel builds an empty, trainable BaselineModel.
func NewBaselineModel(cfg config.Config) *BaselineModel {
	alg := construction.NewBaselineAlgebra()
	cm := cost.NewBaselineCost(alg, cfg.CorpusWeight)
	st := store.New[construction.Baseline](alg, cm)
	splitter := optimizer.NewRecursiveSplitter[construction.Baseline](alg, cm, st)
	viterbi := optimizer.NewViterbiSegmenter[construction.Baseline](alg, cm, st)
	return &BaselineModel{alg: alg, cm: cm, store: st, splitter: splitter, viterbi: viterbi}
}

func (m *BaselineModel) checkMutable() error {
	if m.segmentOnly {
		return merrors.ErrSegmentOnly
	}
	return nil
}

// LoadData adds every training record's compound to the model, seeding
// its initial analysis (spec §6, load_data).
func (m *BaselineModel) LoadData(records []ioformat.TrainingRecord) error {
	if err := m.checkMutable(); err != nil {
		return err
	}
	for _, rec := range records {
		compound, err := m.alg.FromString(rec.Compound)
		if err != nil {
			return err
		}
		m.store.AddCompound(compound, rec.Count)
		m.store.ClearCompoundAnalysis(compound)
		locs := make([]construction.Loc, len(rec.InitialSplit))
		for i, p := range rec.InitialSplit {
			locs[i] = construction.Loc{I: p}
		}
		parts := m.alg.SplitN(compound, locs)
		m.store.SetCompoundAnalysis(compound, parts)
	}
	return nil
}

// Train runs batch training to convergence (or cancellation), per spec
// §4.E/§5. rnd drives the per-epoch shuffle for reproducibility.
func (m *BaselineModel) Train(ctx context.Context, cfg config.Config, rnd *rand.Rand) (epochs int, finalCost float64, err error) {
	if err := m.checkMutable(); err != nil {
		return 0, 0, err
	}
	trainer := optimizer.NewBatchTrainer[construction.Baseline](m.alg, m.cm, m.store, m.splitter, m.viterbi, rnd)
	trainer.Log = Logger
	return trainer.Run(ctx, cfg.Algorithm, cfg.FinishThreshold, cfg.MaxEpochs, cfg.AddCount, cfg.MaxLen)
}

// Segment looks up compound's learned segmentation. Returns
// merrors.ErrMissingCompound if compound was never loaded.
func (m *BaselineModel) Segment(compound string) ([]string, error) {
	c, err := m.alg.FromString(compound)
	if err != nil {
		return nil, err
	}
	if _, ok := m.store.Get(c); !ok {
		return nil, fmt.Errorf("%w: %q", merrors.ErrMissingCompound, compound)
	}
	parts := m.store.Segment(c)
	return m.toStrings(parts), nil
}

// ViterbiSegment finds the most probable segmentation of a (possibly
// unseen) word and returns it alongside its code length.
func (m *BaselineModel) ViterbiSegment(word string, addcount float64, maxlen int) ([]string, float64, error) {
	c, err := m.alg.FromString(word)
	if err != nil {
		return nil, 0, err
	}
	parts, segCost := m.viterbi.Segment(c, addcount, maxlen)
	return m.toStrings(parts), segCost, nil
}

func (m *BaselineModel) toStrings(parts []construction.Baseline) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = m.alg.ToString(p)
	}
	return out
}

// Cost returns the model's current total code length.
func (m *BaselineModel) Cost() float64 { return m.cm.Cost() }

// Tokens returns the current construction token count.
func (m *BaselineModel) Tokens() float64 { return m.cm.Tokens() }

// Types returns the lexicon's morph type count minus one, matching the
// reference's cost.types()-1 (reference: BaselineModel.types property).
func (m *BaselineModel) Types() float64 { return m.cm.Types() - 1 }

// Segmentations yields every loaded compound's count and final
// segmentation, sorted by compound for reproducible output.
func (m *BaselineModel) Segmentations() []ioformat.Segmentation {
	compounds := m.store.GetCompounds()
	strs := make([]string, len(compounds))
	byStr := make(map[string]construction.Baseline, len(compounds))
	for i, c := range compounds {
		s := m.alg.ToString(c)
		strs[i] = s
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

// MakeSegmentOnly freezes the model for inference: further mutation
// (LoadData, Train) returns merrors.ErrSegmentOnly.
func (m *BaselineModel) MakeSegmentOnly() { m.segmentOnly = true }
