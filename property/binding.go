// Package property implements writable properties and lazily computed
// bindings on top of the observable package.
package property

import (
	"weak"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/bindparty/observable"
)

// Binding is a read-only value computed from a set of dependencies.
//
// A binding is either valid (the cached value is fresh) or invalid. It starts
// invalid, becomes invalid when any dependency invalidates, and recomputes
// only when it is read while invalid. Listeners hear about invalidation once
// per valid->invalid transition; change listeners only when the recomputed
// value differs.
type Binding[T any] struct {
	compute       func() (T, error)
	value         T
	valid         bool
	helper        observable.Helper[T]
	deps          mapset.Set[observable.Observable]
	observer      *dependencyObserver[T]
	onInvalidated func()
}

// NewBinding creates a binding over compute and subscribes it to deps.
func NewBinding[T any](compute func() T, deps ...observable.Observable) *Binding[T] {
	return NewBindingErr(func() (T, error) {
		return compute(), nil
	}, deps...)
}

// NewBindingErr is NewBinding for compute functions that can fail.
func NewBindingErr[T any](compute func() (T, error), deps ...observable.Observable) *Binding[T] {
	b := &Binding[T]{
		compute: compute,
		deps:    mapset.NewThreadUnsafeSet[observable.Observable](),
	}
	b.Bind(deps...)
	return b
}

// Bind subscribes the binding to deps. Dependencies already bound are
// skipped, so overlapping calls never subscribe twice.
func (b *Binding[T]) Bind(deps ...observable.Observable) {
	for _, dep := range deps {
		if dep == nil {
			panic(observable.ErrNilObservable)
		}
	}
	if len(deps) == 0 {
		return
	}
	if b.observer == nil {
		b.observer = &dependencyObserver[T]{ref: weak.Make(b)}
	}
	for _, dep := range deps {
		if b.deps.Add(dep) {
			dep.AddListener(b.observer)
		}
	}
}

// Unbind removes the subscription to each of deps that is currently bound.
func (b *Binding[T]) Unbind(deps ...observable.Observable) {
	for _, dep := range deps {
		if dep == nil {
			panic(observable.ErrNilObservable)
		}
	}
	if b.observer == nil {
		return
	}
	for _, dep := range deps {
		if b.deps.Contains(dep) {
			b.deps.Remove(dep)
			dep.RemoveListener(b.observer)
		}
	}
}

// Dispose unbinds every dependency.
func (b *Binding[T]) Dispose() {
	b.Unbind(b.deps.ToSlice()...)
}

func (b *Binding[T]) Dependencies() []observable.Observable {
	return b.deps.ToSlice()
}

func (b *Binding[T]) IsValid() bool {
	return b.valid
}

// Invalidate marks the binding stale and notifies listeners, unless it is
// already stale. If change listeners need the new value and computing it
// fails, they are skipped and the binding stays invalid: the *ComputeError
// is returned by the next Get rather than by whoever caused the
// invalidation.
func (b *Binding[T]) Invalidate() {
	if !b.valid {
		return
	}
	b.valid = false
	if b.onInvalidated != nil {
		b.onInvalidated()
	}
	_ = b.helper.FireFunc(b, b.Get)
}

// OnInvalidated sets a hook that runs on every valid->invalid transition
// before listeners are notified.
func (b *Binding[T]) OnInvalidated(fn func()) {
	b.onInvalidated = fn
}

// Get returns the cached value, recomputing it first when invalid. A failed
// recomputation leaves the binding invalid.
func (b *Binding[T]) Get() (T, error) {
	if !b.valid {
		v, err := b.compute()
		if err != nil {
			var zero T
			return zero, &ComputeError{Err: err}
		}
		b.value = v
		b.valid = true
	}
	return b.value, nil
}

// Value is Get for callers that cannot handle an error; it panics with the
// *ComputeError instead.
func (b *Binding[T]) Value() T {
	v, err := b.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (b *Binding[T]) AddListener(l observable.InvalidationListener) {
	b.helper.AddListener(l)
}

func (b *Binding[T]) RemoveListener(l observable.InvalidationListener) {
	b.helper.RemoveListener(l)
}

func (b *Binding[T]) AddChangeListener(l observable.ChangeListener[T]) {
	b.helper.AddChangeListener(b, l)
}

func (b *Binding[T]) RemoveChangeListener(l observable.ChangeListener[T]) {
	b.helper.RemoveChangeListener(l)
}

// SetEquality replaces the equality deciding whether change listeners run.
func (b *Binding[T]) SetEquality(equal func(x, y T) bool) {
	b.helper.SetEquality(equal)
}

// dependencyObserver is the single listener a binding puts on all of its
// dependencies. It does not keep the binding alive.
type dependencyObserver[T any] struct {
	ref weak.Pointer[Binding[T]]
}

func (d *dependencyObserver[T]) Invalidated(o observable.Observable) {
	if b := d.ref.Value(); b != nil {
		b.Invalidate()
		return
	}
	o.RemoveListener(d)
}

func (d *dependencyObserver[T]) WasGarbageCollected() bool {
	return d.ref.Value() == nil
}
