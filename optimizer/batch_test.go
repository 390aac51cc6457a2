package optimizer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waino/morfessor-cognates/construction"
)

func TestBatchTrainerRecursiveConverges(t *testing.T) {
	alg, cm, st, splitter := newBaselineFixture()
	viterbi := NewViterbiSegmenter[construction.Baseline](alg, cm, st)

	for _, w := range []struct {
		word  construction.Baseline
		count int
	}{
		{"cats", 3}, {"cat", 1}, {"dogs", 4}, {"dog", 1},
	} {
		st.AddCompound(w.word, w.count)
	}

	trainer := NewBatchTrainer[construction.Baseline](alg, cm, st, splitter, viterbi, rand.New(rand.NewSource(1)))
	epochs, finalCost, err := trainer.Run(context.Background(), "recursive", 0.005, nil, 1.0, 30)

	require.NoError(t, err)
	assert.Greater(t, epochs, 0)
	assert.GreaterOrEqual(t, finalCost, 0.0)
}

func TestBatchTrainerRespectsContextCancellation(t *testing.T) {
	alg, cm, st, splitter := newBaselineFixture()
	viterbi := NewViterbiSegmenter[construction.Baseline](alg, cm, st)
	st.AddCompound("cats", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	trainer := NewBatchTrainer[construction.Baseline](alg, cm, st, splitter, viterbi, rand.New(rand.NewSource(1)))
	_, _, err := trainer.Run(ctx, "recursive", 0.005, nil, 1.0, 30)

	require.ErrorIs(t, err, context.Canceled)
}

func TestBatchTrainerFlattenReturnsLeafAnalysis(t *testing.T) {
	alg, cm, st, splitter := newBaselineFixture()
	viterbi := NewViterbiSegmenter[construction.Baseline](alg, cm, st)
	st.AddCompound("cats", 3)
	leaves := splitter.OptimizeCompound("cats")

	trainer := NewBatchTrainer[construction.Baseline](alg, cm, st, splitter, viterbi, rand.New(rand.NewSource(1)))
	epochs, _, err := trainer.Run(context.Background(), "flatten", 0.005, nil, 1.0, 30)

	require.NoError(t, err)
	assert.Equal(t, 1, epochs)
	assert.Equal(t, leaves, st.Segment("cats"))
}

func TestBatchTrainerUnknownAlgorithmErrors(t *testing.T) {
	alg, cm, st, splitter := newBaselineFixture()
	viterbi := NewViterbiSegmenter[construction.Baseline](alg, cm, st)
	st.AddCompound("cats", 1)

	trainer := NewBatchTrainer[construction.Baseline](alg, cm, st, splitter, viterbi, rand.New(rand.NewSource(1)))
	_, _, err := trainer.Run(context.Background(), "bogus", 0.005, nil, 1.0, 30)

	require.Error(t, err)
}
