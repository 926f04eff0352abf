// Package collections implements observable lists, sets and maps, and the
// sorted and filtered views derived from lists.
package collections

import (
	"fmt"
	"slices"

	"github.com/delaneyj/bindparty/observable"
)

type ListChangeListener[E any] interface {
	OnChanged(c *Change[E])
}

// ObservableList is a read view of a list that reports its changes.
type ObservableList[E any] interface {
	observable.Observable
	Len() int
	Get(i int) E
	AddListChangeListener(l ListChangeListener[E])
	RemoveListChangeListener(l ListChangeListener[E])
}

type listChangeFunc[E any] struct {
	fn func(*Change[E])
}

func (f *listChangeFunc[E]) OnChanged(c *Change[E]) {
	f.fn(c)
}

// ListChangeFunc wraps fn in a listener with its own identity.
func ListChangeFunc[E any](fn func(c *Change[E])) ListChangeListener[E] {
	if fn == nil {
		panic(observable.ErrNilListener)
	}
	return &listChangeFunc[E]{fn: fn}
}

// OnListChanged registers fn on list and returns the func that unregisters it.
func OnListChanged[E any](list ObservableList[E], fn func(c *Change[E])) (cancel func()) {
	if list == nil {
		panic(observable.ErrNilObservable)
	}
	l := ListChangeFunc(fn)
	list.AddListChangeListener(l)
	return func() {
		list.RemoveListChangeListener(l)
	}
}

// listBase is shared by every list: listeners plus the change builder that
// reports to them.
type listBase[E any] struct {
	helper  helper[ListChangeListener[E]]
	builder *ChangeBuilder[E]
}

func (b *listBase[E]) init(list ObservableList[E]) {
	b.builder = NewChangeBuilder(list, func(c *Change[E]) {
		b.helper.fire(list, func(l ListChangeListener[E]) {
			c.Reset()
			l.OnChanged(c)
		})
	})
}

func (b *listBase[E]) AddListener(l observable.InvalidationListener) {
	b.helper.addListener(l)
}

func (b *listBase[E]) RemoveListener(l observable.InvalidationListener) {
	b.helper.removeListener(l)
}

func (b *listBase[E]) AddListChangeListener(l ListChangeListener[E]) {
	b.helper.addChangeListener(l)
}

func (b *listBase[E]) RemoveListChangeListener(l ListChangeListener[E]) {
	b.helper.removeChangeListener(l)
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, i, n))
	}
}

func checkRange(from, to, n int) {
	if from < 0 || to < from || to > n {
		panic(fmt.Errorf("%w: [%d, %d) with length %d", ErrIndexOutOfRange, from, to, n))
	}
}

// ArrayList is a slice-backed ObservableList. Every mutating method is its
// own batch unless called between BeginChange and EndChange, in which case
// the whole batch is reported as one Change.
type ArrayList[E any] struct {
	listBase[E]
	items   []E
	watches []*elementWatch[E]
	extract func(E) []observable.Observable
}

func NewArrayList[E any](items ...E) *ArrayList[E] {
	l := &ArrayList[E]{items: slices.Clone(items)}
	l.init(l)
	return l
}

func (l *ArrayList[E]) Len() int {
	return len(l.items)
}

func (l *ArrayList[E]) Get(i int) E {
	checkIndex(i, len(l.items))
	return l.items[i]
}

// Slice returns a copy of the contents.
func (l *ArrayList[E]) Slice() []E {
	return slices.Clone(l.items)
}

func (l *ArrayList[E]) BeginChange() {
	l.builder.BeginChange()
}

func (l *ArrayList[E]) EndChange() {
	l.builder.EndChange()
}

// Batch runs fn inside BeginChange/EndChange. The batch is closed even when
// fn panics.
func (l *ArrayList[E]) Batch(fn func()) {
	l.BeginChange()
	defer l.EndChange()
	fn()
}

func (l *ArrayList[E]) Add(items ...E) {
	l.Insert(len(l.items), items...)
}

func (l *ArrayList[E]) Insert(i int, items ...E) {
	checkRange(i, i, len(l.items))
	if len(items) == 0 {
		return
	}
	l.BeginChange()
	defer l.EndChange()
	l.items = slices.Insert(l.items, i, items...)
	l.watch(i, i+len(items))
	l.builder.NextAdd(i, i+len(items))
}

// Set replaces the element at i and returns the previous one.
func (l *ArrayList[E]) Set(i int, v E) E {
	checkIndex(i, len(l.items))
	l.BeginChange()
	defer l.EndChange()
	old := l.items[i]
	l.unwatch(i, i+1)
	l.items[i] = v
	l.watch(i, i+1)
	l.builder.NextSet(i, old)
	return old
}

func (l *ArrayList[E]) Remove(i int) E {
	checkIndex(i, len(l.items))
	old := l.items[i]
	l.RemoveRange(i, i+1)
	return old
}

func (l *ArrayList[E]) RemoveRange(from, to int) {
	checkRange(from, to, len(l.items))
	if from == to {
		return
	}
	l.BeginChange()
	defer l.EndChange()
	removed := slices.Clone(l.items[from:to])
	l.unwatch(from, to)
	l.items = slices.Delete(l.items, from, to)
	l.builder.NextRemove(from, removed...)
}

// RemoveIf removes every element matching pred and returns how many went.
func (l *ArrayList[E]) RemoveIf(pred func(E) bool) int {
	l.BeginChange()
	defer l.EndChange()
	n := 0
	for i := 0; i < len(l.items); {
		if !pred(l.items[i]) {
			i++
			continue
		}
		l.RemoveRange(i, i+1)
		n++
	}
	return n
}

// SetAll replaces the whole contents.
func (l *ArrayList[E]) SetAll(items ...E) {
	l.BeginChange()
	defer l.EndChange()
	l.Clear()
	l.Add(items...)
}

func (l *ArrayList[E]) Clear() {
	l.RemoveRange(0, len(l.items))
}

// Sort stably sorts the list with cmp and reports it as a permutation.
func (l *ArrayList[E]) Sort(cmp Comparator[E]) {
	order := make([]int, len(l.items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp(l.items[a], l.items[b])
	})
	l.permute(order)
}

// permute rearranges l so that the new element i is the old element
// order[i].
func (l *ArrayList[E]) permute(order []int) {
	perm := make([]int, len(order))
	changed := false
	for newIdx, oldIdx := range order {
		perm[oldIdx] = newIdx
		changed = changed || oldIdx != newIdx
	}
	if !changed {
		return
	}

	l.BeginChange()
	defer l.EndChange()
	items := make([]E, len(order))
	for newIdx, oldIdx := range order {
		items[newIdx] = l.items[oldIdx]
	}
	l.items = items
	if l.extract != nil {
		watches := make([]*elementWatch[E], len(order))
		for newIdx, oldIdx := range order {
			watches[newIdx] = l.watches[oldIdx]
		}
		l.watches = watches
	}
	l.builder.NextPermutation(0, len(perm), perm)
}
