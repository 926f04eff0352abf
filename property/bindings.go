package property

//go:generate go run ../cmd/codegen --out primitives_gen.go

import "github.com/delaneyj/bindparty/observable"

// Map derives a binding applying fn to every value of src.
func Map[S, T any](src observable.ObservableValue[S], fn func(S) T) *Binding[T] {
	if src == nil {
		panic(observable.ErrNilObservable)
	}
	return NewBinding(func() T {
		return fn(src.Value())
	}, src)
}

func Combine[A, B, T any](a observable.ObservableValue[A], b observable.ObservableValue[B], fn func(A, B) T) *Binding[T] {
	if a == nil || b == nil {
		panic(observable.ErrNilObservable)
	}
	return NewBinding(func() T {
		return fn(a.Value(), b.Value())
	}, a, b)
}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Convert is a binding holding src converted to T with a Go conversion, so
// float to integer truncates.
func Convert[S, T Number](src observable.ObservableValue[S]) *Binding[T] {
	return Map(src, func(v S) T {
		return T(v)
	})
}
