// Package observable holds the listener plumbing every property, binding and
// collection in bindparty is built on.
package observable

import (
	"errors"
	"reflect"
)

var (
	ErrNilListener   = errors.New("listener must not be nil")
	ErrNilObservable = errors.New("observable must not be nil")
)

// Observable is anything whose content can become invalid.
type Observable interface {
	AddListener(l InvalidationListener)
	RemoveListener(l InvalidationListener)
}

type InvalidationListener interface {
	Invalidated(o Observable)
}

// ObservableValue is an Observable wrapping a single value. Change listeners
// are only told about a new value when it differs from the previous one.
type ObservableValue[T any] interface {
	Observable
	AddChangeListener(l ChangeListener[T])
	RemoveChangeListener(l ChangeListener[T])
	Value() T
}

type ChangeListener[T any] interface {
	Changed(o ObservableValue[T], oldValue, newValue T)
}

type WritableValue[T any] interface {
	Value() T
	Set(v T) error
}

// WeakListener is implemented by listeners that do not keep their target
// alive. Registries drop entries that report true when they compact.
type WeakListener interface {
	WasGarbageCollected() bool
}

// Equal is the default equality used to decide whether a value changed.
func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
