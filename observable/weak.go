package observable

import "weak"

// WeakInvalidationListener forwards to a listener without keeping it alive.
// Once the listener has been collected the wrapper removes itself from the
// next observable that notifies it.
type WeakInvalidationListener[L any, P interface {
	*L
	InvalidationListener
}] struct {
	ref weak.Pointer[L]
}

func NewWeakInvalidationListener[L any, P interface {
	*L
	InvalidationListener
}](listener P) *WeakInvalidationListener[L, P] {
	if listener == nil {
		panic(ErrNilListener)
	}
	return &WeakInvalidationListener[L, P]{ref: weak.Make((*L)(listener))}
}

func (w *WeakInvalidationListener[L, P]) Invalidated(o Observable) {
	if target := w.ref.Value(); target != nil {
		P(target).Invalidated(o)
		return
	}
	o.RemoveListener(w)
}

func (w *WeakInvalidationListener[L, P]) WasGarbageCollected() bool {
	return w.ref.Value() == nil
}

// WeakChangeListener is the change listener counterpart of
// WeakInvalidationListener. T cannot be inferred, so callers write
// NewWeakChangeListener[int](l).
type WeakChangeListener[T any, L any, P interface {
	*L
	ChangeListener[T]
}] struct {
	ref weak.Pointer[L]
}

func NewWeakChangeListener[T any, L any, P interface {
	*L
	ChangeListener[T]
}](listener P) *WeakChangeListener[T, L, P] {
	if listener == nil {
		panic(ErrNilListener)
	}
	return &WeakChangeListener[T, L, P]{ref: weak.Make((*L)(listener))}
}

func (w *WeakChangeListener[T, L, P]) Changed(o ObservableValue[T], oldValue, newValue T) {
	if target := w.ref.Value(); target != nil {
		P(target).Changed(o, oldValue, newValue)
		return
	}
	o.RemoveChangeListener(w)
}

func (w *WeakChangeListener[T, L, P]) WasGarbageCollected() bool {
	return w.ref.Value() == nil
}
