package morfessor

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waino/morfessor-cognates/config"
	"github.com/Waino/morfessor-cognates/ioformat"
	"github.com/Waino/morfessor-cognates/merrors"
)

func trainedBaseline(t *testing.T) *BaselineModel {
	t.Helper()
	data := "3\tcats\n1\tcat\n4\tdogs\n1\tdog\n"
	records, err := ioformat.ReadTrainingData(strings.NewReader(data))
	require.NoError(t, err)

	m := NewBaselineModel(config.Default())
	require.NoError(t, m.LoadData(records))

	_, _, err = m.Train(context.Background(), config.Default(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return m
}

func TestBaselineModelTrainAndSegmentRoundTrip(t *testing.T) {
	m := trainedBaseline(t)

	segs, err := m.Segment("cats")
	require.NoError(t, err)
	assert.NotEmpty(t, segs)
}

func TestBaselineModelSegmentMissingCompoundErrors(t *testing.T) {
	m := trainedBaseline(t)
	_, err := m.Segment("elephants")
	require.ErrorIs(t, err, merrors.ErrMissingCompound)
}

func TestBaselineModelMakeSegmentOnlyBlocksMutation(t *testing.T) {
	m := trainedBaseline(t)
	m.MakeSegmentOnly()

	err := m.LoadData([]ioformat.TrainingRecord{{Compound: "fish", Count: 1}})
	require.ErrorIs(t, err, merrors.ErrSegmentOnly)

	_, _, err = m.Train(context.Background(), config.Default(), rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, merrors.ErrSegmentOnly)
}

func TestBaselineModelViterbiSegmentUnseenWord(t *testing.T) {
	m := trainedBaseline(t)
	segs, segCost, err := m.ViterbiSegment("cater", 1.0, 30)
	require.NoError(t, err)
	assert.NotEmpty(t, segs)
	assert.Greater(t, segCost, 0.0)
}

func TestBaselineModelSegmentationsSortedByCompound(t *testing.T) {
	m := trainedBaseline(t)
	segs := m.Segmentations()
	for i := 1; i < len(segs); i++ {
		assert.LessOrEqual(t, segs[i-1].Compound, segs[i].Compound)
	}
}
