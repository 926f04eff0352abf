package collections

import "fmt"

// step is one coalesced part of a list change. A step is exactly one of a
// permutation (perm != nil), an update (updated) or an add/remove/replace.
type step[E any] struct {
	from, to int
	removed  []E
	perm     []int
	updated  bool
}

// Change describes one batch of mutations of an ObservableList as a sequence
// of steps. It is a cursor: call Next before reading the first step.
//
// Steps come in this order: at most one permutation, in the index space of
// the list before the batch; then add, remove and replace steps in ascending
// order; then update steps in ascending order. Each step's indices account
// for all the steps before it.
type Change[E any] struct {
	list   ObservableList[E]
	steps  []step[E]
	cursor int
}

func newChange[E any](list ObservableList[E], steps []step[E]) *Change[E] {
	return &Change[E]{list: list, steps: steps, cursor: -1}
}

// List is the list that changed, already in its final state.
func (c *Change[E]) List() ObservableList[E] {
	return c.list
}

// Next moves to the next step and reports whether there was one.
func (c *Change[E]) Next() bool {
	if c.cursor < len(c.steps) {
		c.cursor++
	}
	return c.cursor < len(c.steps)
}

// Reset moves the cursor back before the first step.
func (c *Change[E]) Reset() {
	c.cursor = -1
}

func (c *Change[E]) current() *step[E] {
	if c.cursor < 0 || c.cursor >= len(c.steps) {
		panic(ErrNoCurrentStep)
	}
	return &c.steps[c.cursor]
}

func (c *Change[E]) From() int {
	return c.current().from
}

func (c *Change[E]) To() int {
	return c.current().to
}

// Removed returns the elements removed by the current step, in list order.
func (c *Change[E]) Removed() []E {
	return c.current().removed
}

func (c *Change[E]) RemovedSize() int {
	return len(c.current().removed)
}

func (c *Change[E]) AddedSize() int {
	s := c.current()
	if s.perm != nil || s.updated {
		return 0
	}
	return s.to - s.from
}

// AddedSubList returns the elements added by the current step.
func (c *Change[E]) AddedSubList() []E {
	s := c.current()
	n := c.AddedSize()
	added := make([]E, n)
	for i := range n {
		added[i] = c.list.Get(s.from + i)
	}
	return added
}

func (c *Change[E]) WasAdded() bool {
	return c.AddedSize() > 0
}

func (c *Change[E]) WasRemoved() bool {
	return c.RemovedSize() > 0
}

func (c *Change[E]) WasReplaced() bool {
	return c.WasAdded() && c.WasRemoved()
}

func (c *Change[E]) WasPermutated() bool {
	return c.current().perm != nil
}

func (c *Change[E]) WasUpdated() bool {
	return c.current().updated
}

// Permutation returns the index that the element at old index i moved to.
// i must lie in [From, To) of a permutation step.
func (c *Change[E]) Permutation(i int) int {
	s := c.current()
	if s.perm == nil {
		panic(ErrNotPermutation)
	}
	if i < s.from || i >= s.to {
		panic(fmt.Errorf("%w: permutation index %d outside [%d, %d)", ErrIndexOutOfRange, i, s.from, s.to))
	}
	return s.perm[i-s.from]
}

