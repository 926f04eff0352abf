package collections

import (
	"slices"

	"github.com/delaneyj/bindparty/observable"
)

// NewArrayListWithExtractor creates a list that also reports updates: extract
// names the observables of an element, and when any of them invalidates the
// list fires an update step at that element's index.
func NewArrayListWithExtractor[E any](extract func(E) []observable.Observable, items ...E) *ArrayList[E] {
	if extract == nil {
		panic(observable.ErrNilListener)
	}
	l := &ArrayList[E]{items: slices.Clone(items), extract: extract}
	l.init(l)
	l.watch(0, len(l.items))
	return l
}

// elementWatch listens to the observables of one element. watches is kept
// parallel to items, so a watch finds its element by its own position.
type elementWatch[E any] struct {
	list *ArrayList[E]
	deps []observable.Observable
}

func (w *elementWatch[E]) Invalidated(observable.Observable) {
	l := w.list
	i := slices.Index(l.watches, w)
	if i < 0 {
		return
	}
	l.BeginChange()
	defer l.EndChange()
	l.builder.NextUpdate(i)
}

func (l *ArrayList[E]) watch(from, to int) {
	if l.extract == nil {
		return
	}
	watches := make([]*elementWatch[E], to-from)
	for i := range watches {
		w := &elementWatch[E]{list: l, deps: l.extract(l.items[from+i])}
		for _, dep := range w.deps {
			dep.AddListener(w)
		}
		watches[i] = w
	}
	l.watches = slices.Insert(l.watches, from, watches...)
}

func (l *ArrayList[E]) unwatch(from, to int) {
	if l.extract == nil {
		return
	}
	for _, w := range l.watches[from:to] {
		for _, dep := range w.deps {
			dep.RemoveListener(w)
		}
	}
	l.watches = slices.Delete(l.watches, from, to)
}
