package collections_test

import (
	"testing"

	"github.com/delaneyj/bindparty/collections"
	"github.com/delaneyj/bindparty/observable"
	"github.com/stretchr/testify/assert"
)

func TestObservableSet(t *testing.T) {
	s := collections.NewObservableSet("a")
	var added, removed []string
	invalidations := 0
	observable.OnInvalidated(s, func(observable.Observable) { invalidations++ })
	collections.OnSetChanged(s, func(c collections.SetChange[string]) {
		if c.WasAdded() {
			added = append(added, c.Element)
		} else {
			removed = append(removed, c.Element)
		}
	})

	assert.True(t, s.Add("b"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("x"))
	assert.True(t, s.Contains("b"))
	assert.Equal(t, 1, s.Len())

	s.Add("c")
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Slice())

	assert.Equal(t, []string{"b", "c"}, added)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, removed)
	assert.Equal(t, 5, invalidations)
}
