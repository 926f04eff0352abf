package observable

type invalidationFunc struct {
	fn func(Observable)
}

func (f *invalidationFunc) Invalidated(o Observable) {
	f.fn(o)
}

// InvalidationFunc wraps fn in a listener with its own identity, so it can
// later be passed to RemoveListener.
func InvalidationFunc(fn func(o Observable)) InvalidationListener {
	if fn == nil {
		panic(ErrNilListener)
	}
	return &invalidationFunc{fn: fn}
}

type changeFunc[T any] struct {
	fn func(ObservableValue[T], T, T)
}

func (f *changeFunc[T]) Changed(o ObservableValue[T], oldValue, newValue T) {
	f.fn(o, oldValue, newValue)
}

func ChangeFunc[T any](fn func(o ObservableValue[T], oldValue, newValue T)) ChangeListener[T] {
	if fn == nil {
		panic(ErrNilListener)
	}
	return &changeFunc[T]{fn: fn}
}

// OnInvalidated registers fn on o and returns the func that unregisters it.
func OnInvalidated(o Observable, fn func(o Observable)) (cancel func()) {
	if o == nil {
		panic(ErrNilObservable)
	}
	l := InvalidationFunc(fn)
	o.AddListener(l)
	return func() {
		o.RemoveListener(l)
	}
}

// OnChanged registers fn as a change listener on o and returns the func that
// unregisters it.
func OnChanged[T any](o ObservableValue[T], fn func(o ObservableValue[T], oldValue, newValue T)) (cancel func()) {
	if o == nil {
		panic(ErrNilObservable)
	}
	l := ChangeFunc(fn)
	o.AddChangeListener(l)
	return func() {
		o.RemoveChangeListener(l)
	}
}
