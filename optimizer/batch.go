package optimizer

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/Waino/morfessor-cognates/construction"
	"github.com/Waino/morfessor-cognates/cost"
	"github.com/Waino/morfessor-cognates/merrors"
	"github.com/Waino/morfessor-cognates/store"
)

// CorpusWeightUpdater is consulted once before training and once per
// epoch boundary; returning true forces at least two more epochs,
// mirroring the reference's _epoch_update / FixedCorpusWeight.update
// contract (a no-op updater that fixes the weight never forces extra
// epochs, but still participates in the same hook).
type CorpusWeightUpdater[C comparable] func(bt *BatchTrainer[C], epoch int) bool

// BatchTrainer drives the epoch loop over a loaded analysis store,
// grounded on original_source/morfessorcognate/baseline.py's
// BaselineModel.train_batch.
type BatchTrainer[C comparable] struct {
	cc       construction.Algebra[C]
	cm       cost.Model[C]
	store    *store.AnalysisStore[C]
	splitter *RecursiveSplitter[C]
	viterbi  *ViterbiSegmenter[C]

	Rand                *rand.Rand
	Log                 zerolog.Logger
	CorpusWeightUpdater CorpusWeightUpdater[C]
}

// NewBatchTrainer builds a BatchTrainer. rnd drives the per-epoch
// shuffle and must be supplied by the caller for reproducibility (spec
// §5: "determinism is controlled by a caller-provided seed").
func NewBatchTrainer[C comparable](
	cc construction.Algebra[C],
	cm cost.Model[C],
	st *store.AnalysisStore[C],
	splitter *RecursiveSplitter[C],
	viterbi *ViterbiSegmenter[C],
	rnd *rand.Rand,
) *BatchTrainer[C] {
	return &BatchTrainer[C]{
		cc:       cc,
		cm:       cm,
		store:    st,
		splitter: splitter,
		viterbi:  viterbi,
		Rand:     rnd,
		Log:      zerolog.Nop(),
	}
}

func (bt *BatchTrainer[C]) viterbiOptimize(w C, addcount float64, maxlen int) []C {
	parts := bt.cc.SplitN(w, bt.cc.ForceSplitLocations(w))
	var constructions []C
	for _, part := range parts {
		segs, _ := bt.viterbi.Segment(part, addcount, maxlen)
		constructions = append(constructions, segs...)
	}
	bt.store.SetCompoundAnalysis(w, constructions)
	return constructions
}

// Run trains until convergence (or cancellation, or maxEpochs), per
// spec §4.E / §5. algorithm is one of "recursive", "viterbi", or
// "flatten". addcount/maxlen are only consulted for "viterbi".
func (bt *BatchTrainer[C]) Run(ctx context.Context, algorithm string, finishThreshold float64, maxEpochs *int, addcount float64, maxlen int) (epochs int, finalCost float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*merrors.InvariantError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	epoch := 0
	forcedEpochs := 1
	if bt.CorpusWeightUpdater != nil && bt.CorpusWeightUpdater(bt, epoch) {
		forcedEpochs = max(forcedEpochs, 2)
	}
	newCost := bt.cm.Cost()
	compounds := bt.store.GetCompounds()
	bt.Log.Info().Int("types", len(compounds)).Float64("tokens", bt.cm.CompoundTokens()).Msg("compounds in training data")

	if algorithm == "flatten" {
		bt.Log.Info().Msg("flattening analysis tree")
		for _, compound := range compounds {
			parts := bt.store.Segment(compound)
			bt.store.ClearCompoundAnalysis(compound)
			bt.store.SetCompoundAnalysis(compound, parts)
		}
		bt.Log.Info().Msg("done")
		return 1, bt.cm.Cost(), nil
	}

	bt.Log.Info().Int("epoch", epoch).Float64("cost", newCost).Msg("starting batch training")

	for {
		select {
		case <-ctx.Done():
			return epoch, newCost, ctx.Err()
		default:
		}

		bt.Rand.Shuffle(len(compounds), func(i, j int) { compounds[i], compounds[j] = compounds[j], compounds[i] })

		for _, w := range compounds {
			var segments []C
			switch algorithm {
			case "recursive":
				segments = bt.splitter.OptimizeCompound(w)
			case "viterbi":
				segments = bt.viterbiOptimize(w, addcount, maxlen)
			default:
				return epoch, newCost, fmt.Errorf("%w: unknown training algorithm %q", merrors.ErrInvalidArgument, algorithm)
			}
			bt.Log.Debug().Interface("compound", w).Interface("segments", segments).Msg("optimized")
		}
		epoch++

		forcedDelta := 0
		if bt.CorpusWeightUpdater != nil && bt.CorpusWeightUpdater(bt, epoch) {
			forcedDelta = 2
		}
		forcedEpochs = max(forcedEpochs, forcedDelta)

		oldCost := newCost
		newCost = bt.cm.Cost()
		bt.Log.Info().Int("epoch", epoch).Float64("cost", newCost).Msg("epoch complete")

		if forcedEpochs == 0 && newCost >= oldCost-finishThreshold*bt.cm.CompoundTokens() {
			break
		}
		if forcedEpochs > 0 {
			forcedEpochs--
		}
		if maxEpochs != nil && epoch >= *maxEpochs {
			bt.Log.Info().Msg("max epochs reached, stopping")
			break
		}
	}
	bt.Log.Info().Msg("done")
	return epoch, newCost, nil
}
