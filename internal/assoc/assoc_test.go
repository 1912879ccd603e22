package assoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgkit/typereg/internal/assoc"
)

func TestFromPairsLaterWins(t *testing.T) {
	m := assoc.FromPairs([]assoc.Pair[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "a", Value: 3},
	})

	assert.Equal(t, map[string]int{"a": 3, "b": 2}, m)
}

func TestPairsRoundTrip(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	pairs := assoc.Pairs(m)
	require.Len(t, pairs, 3)
	assert.Equal(t, m, assoc.FromPairs(pairs))
}

func TestGet(t *testing.T) {
	m := map[string]int{"a": 1}

	v, ok := assoc.Get(m, "a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = assoc.Get(m, "b")
	assert.False(t, ok)
}

func TestGetOr(t *testing.T) {
	m := map[string]int{"a": 1}

	assert.Equal(t, 1, assoc.GetOr(m, "a", 9))
	assert.Equal(t, 9, assoc.GetOr(m, "b", 9))
}

func TestUnionRightBiased(t *testing.T) {
	left := map[string]int{"a": 1, "b": 2}
	right := map[string]int{"b": 20, "c": 30}

	m := assoc.Union(left, right)

	assert.Equal(t, map[string]int{"a": 1, "b": 20, "c": 30}, m)

	// inputs are untouched
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, left)
	assert.Equal(t, map[string]int{"b": 20, "c": 30}, right)
}

func TestUnionEmpty(t *testing.T) {
	right := map[string]int{"a": 1}

	assert.Equal(t, right, assoc.Union(nil, right))
	assert.Equal(t, right, assoc.Union(right, nil))
	assert.Empty(t, assoc.Union[string, int](nil, nil))
}
