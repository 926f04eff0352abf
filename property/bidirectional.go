package property

import (
	"fmt"

	"github.com/delaneyj/bindparty/observable"
)

// bidirectional keeps two properties equal. It is a comparable value so the
// same pair can be found again by UnbindBidirectional.
type bidirectional[T any] struct {
	a, b *Property[T]
}

func (l bidirectional[T]) Changed(o observable.ObservableValue[T], oldValue, newValue T) {
	src, dst := l.a, l.b
	if o != observable.ObservableValue[T](l.a) {
		src, dst = l.b, l.a
	}
	if src.pushing || dst.pushing {
		return
	}

	src.pushing = true
	defer func() {
		src.pushing = false
	}()
	if err := dst.Set(newValue); err != nil {
		src.Set(oldValue)
		panic(fmt.Errorf("bidirectional binding: %w", err))
	}
}

// BindBidirectional copies b into a and keeps the two in step from then on.
func BindBidirectional[T any](a, b *Property[T]) error {
	if a == nil || b == nil {
		panic(observable.ErrNilObservable)
	}
	if a == b {
		return fmt.Errorf("%s: %w", a.cfg.describe(), ErrSelfBinding)
	}
	if err := a.Set(b.Value()); err != nil {
		return err
	}
	l := bidirectional[T]{a: a, b: b}
	a.AddChangeListener(l)
	b.AddChangeListener(l)
	return nil
}

// UnbindBidirectional removes a binding made by BindBidirectional, whichever
// order the pair was given in.
func UnbindBidirectional[T any](a, b *Property[T]) {
	if a == nil || b == nil {
		panic(observable.ErrNilObservable)
	}
	for _, l := range []bidirectional[T]{{a: a, b: b}, {a: b, b: a}} {
		a.RemoveChangeListener(l)
		b.RemoveChangeListener(l)
	}
}
