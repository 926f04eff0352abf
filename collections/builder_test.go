package collections_test

import (
	"testing"

	"github.com/delaneyj/bindparty/collections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBuilder returns a builder over a list of n elements that records the
// steps of the changes it fires.
func newBuilder(n int) (*collections.ChangeBuilder[int], *[][]recorded[int]) {
	l := collections.NewArrayList(make([]int, n)...)
	batches := &[][]recorded[int]{}
	b := collections.NewChangeBuilder[int](l, func(c *collections.Change[int]) {
		*batches = append(*batches, collect(c))
	})
	return b, batches
}

func TestDeclarationOutsideBatchPanics(t *testing.T) {
	b, batches := newBuilder(3)

	assert.PanicsWithValue(t, collections.ErrNoOpenChange, func() { b.NextAdd(0, 1) })
	assert.PanicsWithValue(t, collections.ErrNoOpenChange, func() { b.NextUpdate(0) })
	assert.PanicsWithValue(t, collections.ErrNoOpenChange, func() { b.EndChange() })
	assert.False(t, b.InBatch())
	assert.Empty(t, *batches)
}

func TestFailedDeclarationKeepsBatchOpen(t *testing.T) {
	b, batches := newBuilder(3)

	b.BeginChange()
	assert.ErrorIs(t, panicErr(func() { b.NextUpdate(3) }), collections.ErrIndexOutOfRange)
	assert.True(t, b.InBatch())
	b.NextUpdate(1)
	b.EndChange()

	assert.Equal(t, [][]recorded[int]{{{kind: "update", from: 1, to: 2}}}, *batches)
}

func TestAddMayExtendPastTheOldLength(t *testing.T) {
	b, batches := newBuilder(0)

	b.BeginChange()
	b.NextAdd(0, 3)
	b.NextAdd(3, 5)
	assert.ErrorIs(t, panicErr(func() { b.NextAdd(6, 7) }), collections.ErrIndexOutOfRange)
	assert.ErrorIs(t, panicErr(func() { b.NextAdd(2, 1) }), collections.ErrIndexOutOfRange)
	b.EndChange()

	assert.Equal(t, [][]recorded[int]{{{kind: "add", from: 0, to: 5}}}, *batches)
}

func TestUpdateAfterPermutationTracksMovedIndex(t *testing.T) {
	b, batches := newBuilder(3)

	b.BeginChange()
	b.NextPermutation(0, 3, []int{2, 0, 1})
	b.NextUpdate(2)
	b.EndChange()

	require.Len(t, *batches, 1)
	assert.Equal(t, []recorded[int]{
		{kind: "permutation", from: 0, to: 3, perm: []int{2, 0, 1}},
		{kind: "update", from: 2, to: 3},
	}, (*batches)[0])
}

func TestUpdateMovesWithLaterPermutation(t *testing.T) {
	b, batches := newBuilder(3)

	b.BeginChange()
	b.NextUpdate(0)
	b.NextPermutation(0, 3, []int{2, 0, 1})
	b.EndChange()

	require.Len(t, *batches, 1)
	assert.Equal(t, recorded[int]{kind: "update", from: 2, to: 3}, (*batches)[0][1])
}

func TestUpdatesMergeIntoRanges(t *testing.T) {
	b, batches := newBuilder(6)

	b.BeginChange()
	b.NextUpdate(4)
	b.NextUpdate(1)
	b.NextUpdate(2)
	b.NextUpdate(1)
	b.EndChange()

	assert.Equal(t, [][]recorded[int]{{
		{kind: "update", from: 1, to: 3},
		{kind: "update", from: 4, to: 5},
	}}, *batches)
}

func TestUpdateOfAddedOrRemovedRowIsDropped(t *testing.T) {
	b, batches := newBuilder(3)

	b.BeginChange()
	b.NextAdd(3, 4)
	b.NextUpdate(3)
	b.NextUpdate(0)
	b.NextRemove(0, 10)
	b.EndChange()

	assert.Equal(t, [][]recorded[int]{{
		{kind: "remove", from: 0, to: 0, removed: []int{10}},
		{kind: "add", from: 2, to: 3},
	}}, *batches)
}

func TestPermutationOfAddedRowsIsAbsorbed(t *testing.T) {
	b, batches := newBuilder(2)

	b.BeginChange()
	b.NextAdd(2, 4)
	b.NextPermutation(1, 4, []int{3, 1, 2})
	b.EndChange()

	assert.Equal(t, [][]recorded[int]{{
		{kind: "add", from: 1, to: 3},
	}}, *batches)
}

func TestPermutationAroundRemovedRow(t *testing.T) {
	b, batches := newBuilder(4)

	b.BeginChange()
	b.NextRemove(1, 11)
	b.NextPermutation(0, 3, []int{2, 1, 0})
	b.EndChange()

	assert.Equal(t, [][]recorded[int]{{
		{kind: "permutation", from: 0, to: 4, perm: []int{3, 1, 2, 0}},
		{kind: "remove", from: 1, to: 1, removed: []int{11}},
	}}, *batches)
}

func TestBadPermutationPanics(t *testing.T) {
	b, _ := newBuilder(3)
	b.BeginChange()

	assert.ErrorIs(t, panicErr(func() { b.NextPermutation(0, 3, []int{0, 0, 1}) }), collections.ErrBadPermutation)
	assert.ErrorIs(t, panicErr(func() { b.NextPermutation(0, 2, []int{0, 2}) }), collections.ErrBadPermutation)
	assert.ErrorIs(t, panicErr(func() { b.NextPermutation(0, 2, []int{0}) }), collections.ErrBadPermutation)
}
