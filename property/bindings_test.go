package property_test

import (
	"strconv"
	"testing"

	"github.com/delaneyj/bindparty/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	p := property.New(2)
	s := property.Map(p, strconv.Itoa)

	assert.Equal(t, "2", s.Value())
	require.NoError(t, p.Set(3))
	assert.Equal(t, "3", s.Value())
}

func TestCombine(t *testing.T) {
	w := property.New(2)
	h := property.New(3)
	area := property.Combine(w, h, func(w, h int) int { return w * h })

	assert.Equal(t, 6, area.Value())
	require.NoError(t, h.Set(4))
	assert.Equal(t, 8, area.Value())
}

func TestChainedBindingsPropagate(t *testing.T) {
	p := property.New(1)
	doubled := property.Map(p, func(v int) int { return v * 2 })
	label := property.Map(doubled, strconv.Itoa)
	bound := property.New("")
	bound.Bind(label)

	assert.Equal(t, "2", bound.Value())
	require.NoError(t, p.Set(5))
	assert.Equal(t, "10", bound.Value())
}

func TestPrimitiveConversions(t *testing.T) {
	i := property.NewIntegerProperty(3)
	asDouble := i.AsDouble()
	assert.Equal(t, 3.0, asDouble.Value())
	require.NoError(t, i.Set(4))
	assert.Equal(t, 4.0, asDouble.Value())
	assert.Equal(t, int32(4), i.Get())

	d := property.NewDoubleProperty(2.9)
	assert.Equal(t, int64(2), d.AsLong().Value())

	b := property.NewBooleanProperty(true)
	assert.True(t, b.Get())
	s := property.NewStringProperty("x", property.WithName("label"))
	assert.Equal(t, "label", s.Name())
}
