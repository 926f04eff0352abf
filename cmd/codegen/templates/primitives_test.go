package templates_test

import (
	"go/format"
	"os"
	"strings"
	"testing"

	"github.com/delaneyj/bindparty/cmd/codegen/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedInPrimitivesAreUpToDate(t *testing.T) {
	generated, err := templates.Render(templates.Kinds)
	require.NoError(t, err)

	checkedIn, err := os.ReadFile("../../../property/primitives_gen.go")
	require.NoError(t, err)
	checkedIn, err = format.Source(checkedIn)
	require.NoError(t, err)

	assert.Equal(t, string(checkedIn), string(generated), "run go generate ./property")
}

func TestOnlyNumericKindsGetConversions(t *testing.T) {
	out := templates.Primitives([]templates.PrimitiveKind{
		{Name: "Boolean", GoType: "bool"},
		{Name: "Long", GoType: "int64", Numeric: true},
	})

	assert.Equal(t, 2, strings.Count(out, "Property) As"))
	assert.Contains(t, out, "func (p *LongProperty) AsDouble() *Binding[float64]")
	assert.Contains(t, out, "return Convert[int64, int64](p.Property)")
	assert.NotContains(t, out, "BooleanProperty) As")
}
