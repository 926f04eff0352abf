package collections_test

import (
	"testing"

	"github.com/delaneyj/bindparty/collections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractorReportsUpdates(t *testing.T) {
	a, b := newPlayer("a", 1), newPlayer("b", 2)
	l := collections.NewArrayListWithExtractor(playerScore, a, b)
	batches := record[*player](l)

	require.NoError(t, b.score.Set(5))
	b.score.Value()
	require.NoError(t, b.score.Set(6))

	assert.Equal(t, [][]recorded[*player]{
		{{kind: "update", from: 1, to: 2}},
		{{kind: "update", from: 1, to: 2}},
	}, *batches)
}

func TestExtractorFollowsElementsAround(t *testing.T) {
	a, b, c := newPlayer("a", 1), newPlayer("b", 2), newPlayer("c", 3)
	l := collections.NewArrayListWithExtractor(playerScore, a, b)
	l.Insert(0, c)
	l.Sort(func(x, y *player) int { return y.score.Value() - x.score.Value() })
	require.Equal(t, []*player{c, b, a}, l.Slice())
	batches := record[*player](l)

	require.NoError(t, a.score.Set(0))
	assert.Equal(t, [][]recorded[*player]{{{kind: "update", from: 2, to: 3}}}, *batches)

	l.Remove(1)
	require.NoError(t, b.score.Set(9))
	assert.Len(t, *batches, 2)

	replaced := l.Set(0, b)
	assert.Same(t, c, replaced)
	require.NoError(t, c.score.Set(7))
	assert.Len(t, *batches, 3)
	b.score.Value()
	require.NoError(t, b.score.Set(10))
	assert.Len(t, *batches, 4)
	assert.Equal(t, []recorded[*player]{{kind: "update", from: 0, to: 1}}, (*batches)[3])
}

func TestUpdateInsideBatchIsCoalesced(t *testing.T) {
	a, b := newPlayer("a", 1), newPlayer("b", 2)
	l := collections.NewArrayListWithExtractor(playerScore, a, b)
	batches := record[*player](l)

	l.Batch(func() {
		require.NoError(t, a.score.Set(4))
		l.Insert(0, newPlayer("z", 0))
	})

	assert.Equal(t, [][]recorded[*player]{{
		{kind: "add", from: 0, to: 1},
		{kind: "update", from: 1, to: 2},
	}}, *batches)
}
