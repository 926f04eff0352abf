package collections_test

import (
	"errors"

	"github.com/delaneyj/bindparty/collections"
)

type recorded[E any] struct {
	kind     string
	from, to int
	removed  []E
	perm     []int
}

func collect[E any](c *collections.Change[E]) []recorded[E] {
	var out []recorded[E]
	for c.Next() {
		r := recorded[E]{from: c.From(), to: c.To()}
		switch {
		case c.WasPermutated():
			r.kind = "permutation"
			for i := c.From(); i < c.To(); i++ {
				r.perm = append(r.perm, c.Permutation(i))
			}
		case c.WasUpdated():
			r.kind = "update"
		case c.WasReplaced():
			r.kind = "replace"
			r.removed = c.Removed()
		case c.WasRemoved():
			r.kind = "remove"
			r.removed = c.Removed()
		default:
			r.kind = "add"
		}
		out = append(out, r)
	}
	return out
}

// record keeps the steps of every change fired by list, one entry per batch.
func record[E any](list collections.ObservableList[E]) *[][]recorded[E] {
	batches := &[][]recorded[E]{}
	collections.OnListChanged(list, func(c *collections.Change[E]) {
		*batches = append(*batches, collect(c))
	})
	return batches
}

func contents[E any](list collections.ObservableList[E]) []E {
	out := make([]E, list.Len())
	for i := range out {
		out[i] = list.Get(i)
	}
	return out
}

func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
			if err == nil {
				err = errors.New("panicked with a non-error value")
			}
		}
	}()
	fn()
	return nil
}
