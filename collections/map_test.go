package collections_test

import (
	"testing"

	"github.com/delaneyj/bindparty/collections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservableMap(t *testing.T) {
	m := collections.NewObservableMap[string, int]()
	var changes []collections.MapChange[string, int]
	cancel := collections.OnMapChanged(m, func(c collections.MapChange[string, int]) {
		c.Map = nil
		changes = append(changes, c)
	})

	_, present := m.Put("a", 1)
	assert.False(t, present)
	m.Put("b", 2)
	old, present := m.Put("a", 3)
	assert.True(t, present)
	assert.Equal(t, 1, old)
	m.Put("a", 3)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	old, present = m.Remove("b")
	assert.True(t, present)
	assert.Equal(t, 2, old)
	_, present = m.Remove("b")
	assert.False(t, present)

	assert.Equal(t, []collections.MapChange[string, int]{
		{Key: "a", New: 1, Added: true},
		{Key: "b", New: 2, Added: true},
		{Key: "a", Old: 1, New: 3, Added: true, Removed: true},
		{Key: "b", Old: 2, Removed: true},
	}, changes)

	cancel()
	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Len(t, changes, 4)
}

func TestObservableMapCustomEquality(t *testing.T) {
	m := collections.NewObservableMap[string, float64]()
	m.SetEquality(func(a, b float64) bool { return int(a) == int(b) })
	changes := 0
	collections.OnMapChanged(m, func(collections.MapChange[string, float64]) { changes++ })

	m.Put("x", 1.2)
	m.Put("x", 1.7)
	m.Put("x", 2.1)
	assert.Equal(t, 2, changes)
	v, _ := m.Get("x")
	assert.Equal(t, 2.1, v)
}
