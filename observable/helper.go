package observable

// Helper dispatches invalidation and change events on behalf of one
// ObservableValue. The zero value is ready to use and compares values with
// Equal.
type Helper[T any] struct {
	invalidation Registry[InvalidationListener]
	change       Registry[ChangeListener[T]]
	current      T
	equal        func(a, b T) bool
}

// SetEquality replaces the function deciding whether change listeners hear
// about a new value.
func (h *Helper[T]) SetEquality(equal func(a, b T) bool) {
	h.equal = equal
}

func (h *Helper[T]) AddListener(l InvalidationListener) {
	h.invalidation.Add(l)
}

func (h *Helper[T]) RemoveListener(l InvalidationListener) {
	h.invalidation.Remove(l)
}

// AddChangeListener registers l. The first change listener makes the helper
// read o so later dispatches have an old value to compare against.
func (h *Helper[T]) AddChangeListener(o ObservableValue[T], l ChangeListener[T]) {
	if l == nil {
		panic(ErrNilListener)
	}
	if h.change.Len() == 0 {
		h.current = o.Value()
	}
	h.change.Add(l)
}

func (h *Helper[T]) RemoveChangeListener(l ChangeListener[T]) {
	h.change.Remove(l)
}

func (h *Helper[T]) HasListeners() bool {
	return h.invalidation.Len() > 0 || h.change.Len() > 0
}

// Fire notifies invalidation listeners, then change listeners if o's value
// differs from the one last reported. Both listener sets are frozen before
// the first callback runs.
func (h *Helper[T]) Fire(o ObservableValue[T]) {
	_ = h.FireFunc(o, func() (T, error) {
		return o.Value(), nil
	})
}

// FireFunc is Fire for values whose read can fail. When get fails the
// change listeners are skipped, the last reported value is kept and the
// error is returned.
func (h *Helper[T]) FireFunc(o ObservableValue[T], get func() (T, error)) error {
	invalidation := h.invalidation.Acquire()
	defer h.invalidation.Release(invalidation)
	change := h.change.Acquire()
	defer h.change.Release(change)

	for i := 0; i < invalidation.Len(); i++ {
		invalidation.At(i).Invalidated(o)
	}

	if change.Len() == 0 {
		return nil
	}
	newValue, err := get()
	if err != nil {
		return err
	}
	oldValue := h.current
	h.current = newValue
	if h.equals(oldValue, newValue) {
		return nil
	}
	for i := 0; i < change.Len(); i++ {
		change.At(i).Changed(o, oldValue, newValue)
	}
	return nil
}

func (h *Helper[T]) equals(a, b T) bool {
	if h.equal == nil {
		return Equal(a, b)
	}
	return h.equal(a, b)
}
