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
)

func TestSegmentAllCoversEveryWordInOrder(t *testing.T) {
	data := "3\tcats\n1\tcat\n4\tdogs\n1\tdog\n"
	records, err := ioformat.ReadTrainingData(strings.NewReader(data))
	require.NoError(t, err)

	m := NewBaselineModel(config.Default())
	require.NoError(t, m.LoadData(records))
	_, _, err = m.Train(context.Background(), config.Default(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	words := []string{"cats", "dogs", "catdog", "anteater"}
	results := SegmentAll(m, words, 1.0, 30)

	require.Len(t, results, len(words))
	for i := 1; i < len(results); i++ {
		assert.Less(t, results[i-1].Word, results[i].Word)
	}
}
