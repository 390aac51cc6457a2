package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCognateRejectsDoubleWildcard(t *testing.T) {
	_, err := NewCognate(Wildcard, Wildcard)
	require.Error(t, err)
}

func TestNewCognateAllowsSingleWildcard(t *testing.T) {
	c, err := NewCognate(Wildcard, Atom("kissa"))
	require.NoError(t, err)
	assert.True(t, c.IsProjection())

	c2, err := NewCognate(Atom("cat"), Atom("kissa"))
	require.NoError(t, err)
	assert.False(t, c2.IsProjection())
}

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Intern("cat")
	b := in.Intern("cat")
	assert.Equal(t, a, b)
}

func TestSideStringRendersWildcardEmpty(t *testing.T) {
	assert.Equal(t, "", Wildcard.String())
	assert.Equal(t, "cat", Atom("cat").String())
}
