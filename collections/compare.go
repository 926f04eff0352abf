package collections

import (
	"cmp"

	"github.com/maruel/natural"
)

// Comparator orders elements the way cmp.Compare does.
type Comparator[E any] func(a, b E) int

func NaturalOrder[E cmp.Ordered]() Comparator[E] {
	return cmp.Compare[E]
}

func ReverseOrder[E cmp.Ordered]() Comparator[E] {
	return Reversed(NaturalOrder[E]())
}

func Reversed[E any](c Comparator[E]) Comparator[E] {
	return func(a, b E) int {
		return c(b, a)
	}
}

// NaturalStrings orders strings with embedded numbers by value, so "a2"
// sorts before "a10".
func NaturalStrings(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}
