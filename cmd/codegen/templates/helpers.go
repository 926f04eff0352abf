package templates

import "go/format"

// PrimitiveKind names one specialised property wrapper.
type PrimitiveKind struct {
	Name    string
	GoType  string
	Numeric bool
}

var Kinds = []PrimitiveKind{
	{Name: "Boolean", GoType: "bool"},
	{Name: "Integer", GoType: "int32", Numeric: true},
	{Name: "Long", GoType: "int64", Numeric: true},
	{Name: "Float", GoType: "float32", Numeric: true},
	{Name: "Double", GoType: "float64", Numeric: true},
	{Name: "String", GoType: "string"},
}

type conversion struct {
	Name   string
	GoType string
}

// conversions every numeric wrapper gets as AsX methods.
var conversions = []conversion{
	{Name: "Double", GoType: "float64"},
	{Name: "Long", GoType: "int64"},
}

// Render executes the primitives template and gofmts the result.
func Render(kinds []PrimitiveKind) ([]byte, error) {
	return format.Source([]byte(Primitives(kinds)))
}
