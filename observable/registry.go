package observable

// Registry is an ordered multiset of listeners. The zero value is empty and a
// single listener is stored inline, so the common 0..1 case never allocates.
//
// While a dispatch holds a Snapshot the registry is locked: Add and Remove
// then work on a fresh copy so the snapshot never sees the mutation.
type Registry[L comparable] struct {
	single L
	list   []L // nil while at most one listener is stored inline
	size   int
	locked int
}

// Snapshot is the frozen listener set of one dispatch.
type Snapshot[L comparable] struct {
	single L
	list   []L
	size   int
}

func (s Snapshot[L]) Len() int {
	return s.size
}

func (s Snapshot[L]) At(i int) L {
	if s.list == nil {
		return s.single
	}
	return s.list[i]
}

func (r *Registry[L]) Len() int {
	return r.size
}

// Add appends l. Duplicates are kept.
func (r *Registry[L]) Add(l L) {
	var zero L
	if l == zero {
		panic(ErrNilListener)
	}

	switch {
	case r.list == nil && r.size == 0:
		r.single = l
	case r.list == nil && collected(r.single):
		r.single = l
		return
	case r.list == nil:
		r.list = make([]L, 0, 4)
		r.list = append(r.list, r.single, l)
		r.single = zero
	default:
		if r.locked > 0 || len(r.list) == cap(r.list) {
			r.list = r.compacted(1)
		}
		r.list = append(r.list, l)
		r.size = len(r.list)
		return
	}
	r.size++
}

// Remove drops the first occurrence of l. Removing a listener that was never
// added does nothing.
func (r *Registry[L]) Remove(l L) {
	var zero L
	if l == zero {
		panic(ErrNilListener)
	}

	if r.list == nil {
		if r.size == 1 && r.single == l {
			r.single = zero
			r.size = 0
		}
		return
	}

	for i, candidate := range r.list {
		if candidate != l {
			continue
		}
		if r.locked > 0 {
			list := make([]L, 0, cap(r.list))
			list = append(list, r.list[:i]...)
			r.list = append(list, r.list[i+1:]...)
		} else {
			copy(r.list[i:], r.list[i+1:])
			r.list[len(r.list)-1] = zero
			r.list = r.list[:len(r.list)-1]
		}
		r.size = len(r.list)
		return
	}
}

// Contains reports whether l is registered at least once.
func (r *Registry[L]) Contains(l L) bool {
	if r.list == nil {
		return r.size == 1 && r.single == l
	}
	for _, candidate := range r.list {
		if candidate == l {
			return true
		}
	}
	return false
}

// Acquire freezes the current listeners. Every Acquire must be paired with a
// Release once the dispatch is over.
func (r *Registry[L]) Acquire() Snapshot[L] {
	if r.list == nil {
		return Snapshot[L]{single: r.single, size: r.size}
	}
	r.locked++
	return Snapshot[L]{list: r.list, size: len(r.list)}
}

func (r *Registry[L]) Release(s Snapshot[L]) {
	if s.list != nil {
		r.locked--
	}
}

// compacted copies the live listeners into a new slice with room for extra
// more, dropping weak entries whose target is gone. Survivor order is kept.
func (r *Registry[L]) compacted(extra int) []L {
	list := make([]L, 0, len(r.list)*3/2+extra)
	for _, l := range r.list {
		if collected(l) {
			continue
		}
		list = append(list, l)
	}
	return list
}

func collected[L any](l L) bool {
	w, ok := any(l).(WeakListener)
	return ok && w.WasGarbageCollected()
}
