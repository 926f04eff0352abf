package collections

import (
	"cmp"
	"slices"
	"sort"

	"github.com/delaneyj/bindparty/observable"
	"github.com/delaneyj/bindparty/property"
)

// SortedList shows its source ordered by a comparator. A nil comparator
// keeps source order. Replacing the comparator is always reported as a
// single permutation.
type SortedList[E any] struct {
	listBase[E]
	source     ObservableList[E]
	comparator *property.Property[Comparator[E]]
	cmp        Comparator[E]
	sorted     []int // view index -> source index
	positions  []int // source index -> view index, rebuilt on demand
	listener   *sourceListener[E, SortedList[E]]
}

func NewSortedList[E any](source ObservableList[E], c Comparator[E]) *SortedList[E] {
	if source == nil {
		panic(observable.ErrNilObservable)
	}
	s := &SortedList[E]{
		source:     source,
		comparator: property.New(c, property.WithName("comparator")),
		cmp:        c,
		sorted:     make([]int, source.Len()),
	}
	s.init(s)
	for i := range s.sorted {
		s.sorted[i] = i
	}
	slices.SortStableFunc(s.sorted, s.compare)
	s.comparator.AddListener(observable.InvalidationFunc(func(observable.Observable) {
		s.reorder()
	}))
	s.listener = listenTo(source, s, (*SortedList[E]).sourceChanged)
	return s
}

// Comparator is the property holding the comparator. It can be set or bound.
func (s *SortedList[E]) Comparator() *property.Property[Comparator[E]] {
	return s.comparator
}

func (s *SortedList[E]) SetComparator(c Comparator[E]) error {
	return s.comparator.Set(c)
}

func (s *SortedList[E]) Source() ObservableList[E] {
	return s.source
}

func (s *SortedList[E]) Len() int {
	return len(s.sorted)
}

func (s *SortedList[E]) Get(i int) E {
	return s.source.Get(s.SourceIndex(i))
}

func (s *SortedList[E]) SourceIndex(i int) int {
	checkIndex(i, len(s.sorted))
	return s.sorted[i]
}

// ViewIndex is the inverse of SourceIndex. The reverse mapping is rebuilt
// on the first call after a change.
func (s *SortedList[E]) ViewIndex(src int) int {
	checkIndex(src, s.source.Len())
	if s.positions == nil {
		s.positions = make([]int, len(s.sorted))
		for v, i := range s.sorted {
			s.positions[i] = v
		}
	}
	return s.positions[src]
}

// compare orders two source indices by their elements, or by index when
// there is no comparator.
func (s *SortedList[E]) compare(a, b int) int {
	if s.cmp == nil {
		return cmp.Compare(a, b)
	}
	return s.cmp(s.source.Get(a), s.source.Get(b))
}

// insertionPoint is the view index after every entry not greater than src.
func (s *SortedList[E]) insertionPoint(entries []int, src int) int {
	return sort.Search(len(entries), func(k int) bool {
		return s.compare(entries[k], src) > 0
	})
}

// reorder re-sorts the view for a new comparator. Ties keep their current
// view order.
func (s *SortedList[E]) reorder() {
	s.cmp = s.comparator.Value()
	s.positions = nil
	s.builder.BeginChange()
	defer s.builder.EndChange()
	s.resort()
}

func (s *SortedList[E]) resort() {
	order := make([]int, len(s.sorted))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return s.compare(s.sorted[a], s.sorted[b])
	})

	perm := make([]int, len(order))
	sorted := make([]int, len(order))
	identity := true
	for v, old := range order {
		perm[old] = v
		sorted[v] = s.sorted[old]
		identity = identity && old == v
	}
	if identity {
		return
	}
	s.sorted = sorted
	s.builder.NextPermutation(0, len(perm), perm)
}

func (s *SortedList[E]) sourceChanged(c *Change[E]) {
	s.positions = nil
	s.builder.BeginChange()
	defer s.builder.EndChange()

	var added, updated []int
	for c.Next() {
		switch {
		case c.WasPermutated():
			for v, src := range s.sorted {
				if src >= c.From() && src < c.To() {
					s.sorted[v] = c.Permutation(src)
				}
			}
			if s.cmp == nil {
				s.resort()
			}
		case c.WasUpdated():
			for src := c.From(); src < c.To(); src++ {
				updated = append(updated, src)
			}
		default:
			added = append(added, s.addedRemoved(c)...)
		}
	}

	// Updated elements are put back in order before anything is inserted,
	// so every binary search runs over a sorted slice. Added indices refer
	// to the final source because removals were applied first.
	switch len(updated) {
	case 0:
	case 1:
		s.reposition(updated[0])
	default:
		s.resort()
		for _, src := range updated {
			if v := slices.Index(s.sorted, src); v >= 0 {
				s.builder.NextUpdate(v)
			}
		}
	}
	for _, src := range added {
		v := s.insertionPoint(s.sorted, src)
		s.sorted = slices.Insert(s.sorted, v, src)
		s.builder.NextAdd(v, v+1)
	}
}

// addedRemoved drops the removed elements and shifts the rest. It returns
// the source indices that were added.
func (s *SortedList[E]) addedRemoved(c *Change[E]) []int {
	from, removedSize, addedSize := c.From(), c.RemovedSize(), c.AddedSize()
	removed := c.Removed()
	for v := len(s.sorted) - 1; v >= 0; v-- {
		if src := s.sorted[v]; src >= from && src < from+removedSize {
			s.sorted = slices.Delete(s.sorted, v, v+1)
			s.builder.NextRemove(v, removed[src-from])
		}
	}
	for v, src := range s.sorted {
		if src >= from+removedSize {
			s.sorted[v] = src - removedSize + addedSize
		}
	}
	added := make([]int, addedSize)
	for i := range added {
		added[i] = from + i
	}
	return added
}

// reposition moves an updated element to where the comparator now puts it.
// A move is a permutation followed by an update at the new index.
func (s *SortedList[E]) reposition(src int) {
	v := slices.Index(s.sorted, src)
	if v < 0 {
		return
	}
	inPlace := (v == 0 || s.compare(s.sorted[v-1], src) <= 0) &&
		(v == len(s.sorted)-1 || s.compare(src, s.sorted[v+1]) <= 0)
	if inPlace {
		s.builder.NextUpdate(v)
		return
	}

	s.sorted = slices.Delete(s.sorted, v, v+1)
	w := s.insertionPoint(s.sorted, src)
	s.sorted = slices.Insert(s.sorted, w, src)

	lo, hi := min(v, w), max(v, w)+1
	perm := make([]int, hi-lo)
	for i := lo; i < hi; i++ {
		switch {
		case i == v:
			perm[i-lo] = w
		case v < w:
			perm[i-lo] = i - 1
		default:
			perm[i-lo] = i + 1
		}
	}
	s.builder.NextPermutation(lo, hi, perm)
	s.builder.NextUpdate(w)
}
