package collections

import "github.com/delaneyj/bindparty/observable"

// helper holds the invalidation listeners and the content listeners of one
// collection. Content listeners are of type L, which differs per kind of
// collection.
type helper[L comparable] struct {
	invalidation observable.Registry[observable.InvalidationListener]
	change       observable.Registry[L]
}

func (h *helper[L]) addListener(l observable.InvalidationListener) {
	h.invalidation.Add(l)
}

func (h *helper[L]) removeListener(l observable.InvalidationListener) {
	h.invalidation.Remove(l)
}

func (h *helper[L]) addChangeListener(l L) {
	h.change.Add(l)
}

func (h *helper[L]) removeChangeListener(l L) {
	h.change.Remove(l)
}

// fire notifies invalidation listeners, then hands every content listener to
// deliver. Both sets are frozen first.
func (h *helper[L]) fire(o observable.Observable, deliver func(L)) {
	invalidation := h.invalidation.Acquire()
	defer h.invalidation.Release(invalidation)
	change := h.change.Acquire()
	defer h.change.Release(change)

	for i := 0; i < invalidation.Len(); i++ {
		invalidation.At(i).Invalidated(o)
	}
	for i := 0; i < change.Len(); i++ {
		deliver(change.At(i))
	}
}
