package collections

import (
	"slices"

	"github.com/delaneyj/bindparty/observable"
	"github.com/delaneyj/bindparty/property"
)

type Predicate[E any] func(E) bool

// FilteredList shows the elements of its source that pass a predicate, in
// source order. A nil predicate passes everything.
type FilteredList[E any] struct {
	listBase[E]
	source    ObservableList[E]
	predicate *property.Property[Predicate[E]]
	test      Predicate[E]
	filtered  []int // source indices, ascending
	listener  *sourceListener[E, FilteredList[E]]
}

func NewFilteredList[E any](source ObservableList[E], pred Predicate[E]) *FilteredList[E] {
	if source == nil {
		panic(observable.ErrNilObservable)
	}
	f := &FilteredList[E]{
		source:    source,
		predicate: property.New(pred, property.WithName("predicate")),
		test:      pred,
	}
	f.init(f)
	f.predicate.AddListener(observable.InvalidationFunc(func(observable.Observable) {
		f.refilter()
	}))
	f.filtered = f.matching()
	f.listener = listenTo(source, f, (*FilteredList[E]).sourceChanged)
	return f
}

// Predicate is the property holding the predicate. It can be set or bound.
func (f *FilteredList[E]) Predicate() *property.Property[Predicate[E]] {
	return f.predicate
}

func (f *FilteredList[E]) SetPredicate(pred Predicate[E]) error {
	return f.predicate.Set(pred)
}

func (f *FilteredList[E]) Source() ObservableList[E] {
	return f.source
}

func (f *FilteredList[E]) Len() int {
	return len(f.filtered)
}

func (f *FilteredList[E]) Get(i int) E {
	return f.source.Get(f.SourceIndex(i))
}

// SourceIndex maps a view index to the index of the same element in the
// source.
func (f *FilteredList[E]) SourceIndex(i int) int {
	checkIndex(i, len(f.filtered))
	return f.filtered[i]
}

// ViewIndex maps a source index to the view, or -1 if the element is
// filtered out.
func (f *FilteredList[E]) ViewIndex(src int) int {
	checkIndex(src, f.source.Len())
	if v, ok := slices.BinarySearch(f.filtered, src); ok {
		return v
	}
	return -1
}

func (f *FilteredList[E]) passes(e E) bool {
	return f.test == nil || f.test(e)
}

func (f *FilteredList[E]) matching() []int {
	var matching []int
	for src := range f.source.Len() {
		if f.passes(f.source.Get(src)) {
			matching = append(matching, src)
		}
	}
	return matching
}

// refilter applies a new predicate, reporting only the elements whose
// outcome changed.
func (f *FilteredList[E]) refilter() {
	f.test = f.predicate.Value()
	next := f.matching()

	f.builder.BeginChange()
	defer f.builder.EndChange()
	prev := f.filtered
	f.filtered = next
	i, j, v := 0, 0, 0
	for src := range f.source.Len() {
		wasIn := i < len(prev) && prev[i] == src
		isIn := j < len(next) && next[j] == src
		switch {
		case wasIn && isIn:
			i++
			j++
			v++
		case wasIn:
			i++
			f.builder.NextRemove(v, f.source.Get(src))
		case isIn:
			j++
			f.builder.NextAdd(v, v+1)
			v++
		}
	}
}

func (f *FilteredList[E]) sourceChanged(c *Change[E]) {
	f.builder.BeginChange()
	defer f.builder.EndChange()
	for c.Next() {
		switch {
		case c.WasPermutated():
			f.permutated(c)
		case c.WasUpdated():
			f.updated(c)
		default:
			f.addedRemoved(c)
		}
	}
}

func (f *FilteredList[E]) permutated(c *Change[E]) {
	lo, _ := slices.BinarySearch(f.filtered, c.From())
	hi, _ := slices.BinarySearch(f.filtered, c.To())
	if lo == hi {
		return
	}

	moved := make([]int, hi-lo)
	for k, src := range f.filtered[lo:hi] {
		moved[k] = c.Permutation(src)
	}
	order := make([]int, len(moved))
	for k := range order {
		order[k] = k
	}
	slices.SortFunc(order, func(a, b int) int {
		return moved[a] - moved[b]
	})

	perm := make([]int, len(moved))
	identity := true
	for k, old := range order {
		f.filtered[lo+k] = moved[old]
		perm[old] = lo + k
		identity = identity && old == k
	}
	if !identity {
		f.builder.NextPermutation(lo, hi, perm)
	}
}

func (f *FilteredList[E]) updated(c *Change[E]) {
	for src := c.From(); src < c.To(); src++ {
		e := f.source.Get(src)
		v, found := slices.BinarySearch(f.filtered, src)
		in := f.passes(e)
		switch {
		case found && in:
			f.builder.NextUpdate(v)
		case found:
			f.filtered = slices.Delete(f.filtered, v, v+1)
			f.builder.NextRemove(v, e)
		case in:
			f.filtered = slices.Insert(f.filtered, v, src)
			f.builder.NextAdd(v, v+1)
		}
	}
}

func (f *FilteredList[E]) addedRemoved(c *Change[E]) {
	from, removedSize, addedSize := c.From(), c.RemovedSize(), c.AddedSize()
	lo, _ := slices.BinarySearch(f.filtered, from)
	hi, _ := slices.BinarySearch(f.filtered, from+removedSize)

	if hi > lo {
		removed := c.Removed()
		gone := make([]E, 0, hi-lo)
		for _, src := range f.filtered[lo:hi] {
			gone = append(gone, removed[src-from])
		}
		f.filtered = slices.Delete(f.filtered, lo, hi)
		f.builder.NextRemove(lo, gone...)
	}

	for k := lo; k < len(f.filtered); k++ {
		f.filtered[k] += addedSize - removedSize
	}

	var added []int
	for src := from; src < from+addedSize; src++ {
		if f.passes(f.source.Get(src)) {
			added = append(added, src)
		}
	}
	if len(added) > 0 {
		f.filtered = slices.Insert(f.filtered, lo, added...)
		f.builder.NextAdd(lo, lo+len(added))
	}
}
