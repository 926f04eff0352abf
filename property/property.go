package property

import (
	"fmt"
	"weak"

	"github.com/delaneyj/bindparty/observable"
)

// Property is a writable, bindable value. While bound it mirrors its source
// and refuses direct writes.
type Property[T any] struct {
	cfg      config
	value    T
	valid    bool
	source   observable.ObservableValue[T]
	listener *sourceListener[T]
	helper   observable.Helper[T]
	equal    func(a, b T) bool
	pushing  bool
}

func New[T any](initial T, opts ...Option) *Property[T] {
	return &Property[T]{
		cfg:   newConfig(opts),
		value: initial,
		valid: true,
	}
}

func (p *Property[T]) Bean() any {
	return p.cfg.bean
}

func (p *Property[T]) Name() string {
	return p.cfg.name
}

// Value returns the current value. A bound property reads its source when
// it has been invalidated since the last read.
func (p *Property[T]) Value() T {
	if !p.valid {
		if p.source != nil {
			p.value = p.source.Value()
		}
		p.valid = true
	}
	return p.value
}

// Set stores v. Writing a bound property fails with ErrBound and leaves the
// value untouched; writing an equal value does nothing.
func (p *Property[T]) Set(v T) error {
	if p.source != nil {
		return fmt.Errorf("%s: %w", p.cfg.describe(), ErrBound)
	}
	if p.equals(p.value, v) {
		return nil
	}
	p.value = v
	p.markInvalid()
	return nil
}

func (p *Property[T]) IsBound() bool {
	return p.source != nil
}

// Bind makes p follow src. Binding again to the same source does nothing;
// binding to another source drops the previous one first.
func (p *Property[T]) Bind(src observable.ObservableValue[T]) {
	if src == nil {
		panic(observable.ErrNilObservable)
	}
	if src == p.source {
		return
	}
	p.Unbind()
	p.source = src
	if p.listener == nil {
		p.listener = &sourceListener[T]{ref: weak.Make(p)}
	}
	src.AddListener(p.listener)
	p.markInvalid()
}

// Unbind stops following the source. The last value of the source stays.
func (p *Property[T]) Unbind() {
	if p.source == nil {
		return
	}
	p.value = p.source.Value()
	p.source.RemoveListener(p.listener)
	p.source = nil
}

func (p *Property[T]) AddListener(l observable.InvalidationListener) {
	p.helper.AddListener(l)
}

func (p *Property[T]) RemoveListener(l observable.InvalidationListener) {
	p.helper.RemoveListener(l)
}

func (p *Property[T]) AddChangeListener(l observable.ChangeListener[T]) {
	p.helper.AddChangeListener(p, l)
}

func (p *Property[T]) RemoveChangeListener(l observable.ChangeListener[T]) {
	p.helper.RemoveChangeListener(l)
}

// SetEquality replaces the equality used both to skip redundant writes and
// to decide whether change listeners run.
func (p *Property[T]) SetEquality(equal func(x, y T) bool) {
	p.equal = equal
	p.helper.SetEquality(equal)
}

func (p *Property[T]) markInvalid() {
	if !p.valid {
		return
	}
	p.valid = false
	if p.cfg.onInvalidated != nil {
		p.cfg.onInvalidated()
	}
	p.helper.Fire(p)
}

func (p *Property[T]) equals(a, b T) bool {
	if p.equal == nil {
		return observable.Equal(a, b)
	}
	return p.equal(a, b)
}

// sourceListener ties a bound property to its source without keeping the
// property alive.
type sourceListener[T any] struct {
	ref weak.Pointer[Property[T]]
}

func (s *sourceListener[T]) Invalidated(o observable.Observable) {
	if p := s.ref.Value(); p != nil {
		p.markInvalid()
		return
	}
	o.RemoveListener(s)
}

func (s *sourceListener[T]) WasGarbageCollected() bool {
	return s.ref.Value() == nil
}
