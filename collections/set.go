package collections

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/bindparty/observable"
)

// SetChange reports one element entering or leaving an ObservableSet.
type SetChange[E comparable] struct {
	Set     *ObservableSet[E]
	Element E
	Added   bool
}

func (c SetChange[E]) WasAdded() bool {
	return c.Added
}

func (c SetChange[E]) WasRemoved() bool {
	return !c.Added
}

type SetChangeListener[E comparable] interface {
	OnChanged(c SetChange[E])
}

type setChangeFunc[E comparable] struct {
	fn func(SetChange[E])
}

func (f *setChangeFunc[E]) OnChanged(c SetChange[E]) {
	f.fn(c)
}

// OnSetChanged registers fn on s and returns the func that unregisters it.
func OnSetChanged[E comparable](s *ObservableSet[E], fn func(c SetChange[E])) (cancel func()) {
	if fn == nil {
		panic(observable.ErrNilListener)
	}
	l := &setChangeFunc[E]{fn: fn}
	s.AddSetChangeListener(l)
	return func() {
		s.RemoveSetChangeListener(l)
	}
}

// ObservableSet is an unordered set that reports every element added or
// removed, one notification per element.
type ObservableSet[E comparable] struct {
	helper helper[SetChangeListener[E]]
	items  mapset.Set[E]
}

func NewObservableSet[E comparable](items ...E) *ObservableSet[E] {
	return &ObservableSet[E]{items: mapset.NewThreadUnsafeSet(items...)}
}

func (s *ObservableSet[E]) AddListener(l observable.InvalidationListener) {
	s.helper.addListener(l)
}

func (s *ObservableSet[E]) RemoveListener(l observable.InvalidationListener) {
	s.helper.removeListener(l)
}

func (s *ObservableSet[E]) AddSetChangeListener(l SetChangeListener[E]) {
	s.helper.addChangeListener(l)
}

func (s *ObservableSet[E]) RemoveSetChangeListener(l SetChangeListener[E]) {
	s.helper.removeChangeListener(l)
}

func (s *ObservableSet[E]) Len() int {
	return s.items.Cardinality()
}

func (s *ObservableSet[E]) Contains(e E) bool {
	return s.items.Contains(e)
}

// Slice returns the elements in no particular order.
func (s *ObservableSet[E]) Slice() []E {
	return s.items.ToSlice()
}

// Add adds e and reports whether it was missing.
func (s *ObservableSet[E]) Add(e E) bool {
	if !s.items.Add(e) {
		return false
	}
	s.fire(SetChange[E]{Set: s, Element: e, Added: true})
	return true
}

// Remove removes e and reports whether it was present.
func (s *ObservableSet[E]) Remove(e E) bool {
	if !s.items.Contains(e) {
		return false
	}
	s.items.Remove(e)
	s.fire(SetChange[E]{Set: s, Element: e})
	return true
}

func (s *ObservableSet[E]) Clear() {
	for _, e := range s.items.ToSlice() {
		s.Remove(e)
	}
}

func (s *ObservableSet[E]) fire(c SetChange[E]) {
	s.helper.fire(s, func(l SetChangeListener[E]) {
		l.OnChanged(c)
	})
}
