package collections

import (
	"weak"

	"github.com/delaneyj/bindparty/observable"
)

// sourceListener is how a view listens to its source: the source holds the
// listener, the listener holds the view weakly, and a view nobody else
// references can be collected.
type sourceListener[E any, V any] struct {
	ref    weak.Pointer[V]
	handle func(*V, *Change[E])
}

func listenTo[E any, V any](source ObservableList[E], view *V, handle func(*V, *Change[E])) *sourceListener[E, V] {
	l := &sourceListener[E, V]{ref: weak.Make(view), handle: handle}
	source.AddListChangeListener(l)
	return l
}

func (s *sourceListener[E, V]) OnChanged(c *Change[E]) {
	if v := s.ref.Value(); v != nil {
		s.handle(v, c)
		return
	}
	c.List().RemoveListChangeListener(s)
}

func (s *sourceListener[E, V]) WasGarbageCollected() bool {
	return s.ref.Value() == nil
}

// WeakListChangeListener forwards list changes to a listener without keeping
// it alive, and removes itself once the listener has been collected.
type WeakListChangeListener[E any, L any, P interface {
	*L
	ListChangeListener[E]
}] struct {
	ref weak.Pointer[L]
}

func NewWeakListChangeListener[E any, L any, P interface {
	*L
	ListChangeListener[E]
}](listener P) *WeakListChangeListener[E, L, P] {
	if listener == nil {
		panic(observable.ErrNilListener)
	}
	return &WeakListChangeListener[E, L, P]{ref: weak.Make((*L)(listener))}
}

func (w *WeakListChangeListener[E, L, P]) OnChanged(c *Change[E]) {
	if target := w.ref.Value(); target != nil {
		P(target).OnChanged(c)
		return
	}
	c.List().RemoveListChangeListener(w)
}

func (w *WeakListChangeListener[E, L, P]) WasGarbageCollected() bool {
	return w.ref.Value() == nil
}
