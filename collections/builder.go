package collections

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ChangeBuilder turns the mutations a list makes during a batch into one
// coalesced Change.
//
// The list calls BeginChange before touching its contents, declares every
// mutation right after making it, and calls EndChange when done. Batches
// nest; only the outermost EndChange builds the Change and hands it to the
// fire func, and only when there is at least one step.
//
// While a batch is open the builder knows, for each current index, which
// index the element had when the batch began (-1 for elements added during
// the batch) and whether it was updated.
type ChangeBuilder[E any] struct {
	list  ObservableList[E]
	fire  func(*Change[E])
	depth int

	size    int
	origin  []int
	removed map[int]E
	updated *bitset.BitSet
}

func NewChangeBuilder[E any](list ObservableList[E], fire func(*Change[E])) *ChangeBuilder[E] {
	return &ChangeBuilder[E]{list: list, fire: fire}
}

// InBatch reports whether a batch is open.
func (b *ChangeBuilder[E]) InBatch() bool {
	return b.depth > 0
}

func (b *ChangeBuilder[E]) BeginChange() {
	b.depth++
	if b.depth > 1 {
		return
	}
	b.size = b.list.Len()
	b.origin = make([]int, b.size)
	for i := range b.origin {
		b.origin[i] = i
	}
	b.removed = map[int]E{}
	b.updated = bitset.New(uint(b.size))
}

// EndChange closes a batch. Closing the outermost batch fires the change.
func (b *ChangeBuilder[E]) EndChange() {
	b.mustBeOpen()
	b.depth--
	if b.depth > 0 {
		return
	}
	steps := b.commit()
	b.origin, b.removed, b.updated = nil, nil, nil
	if len(steps) > 0 {
		b.fire(newChange(b.list, steps))
	}
}

// NextAdd declares that [from, to) was inserted.
func (b *ChangeBuilder[E]) NextAdd(from, to int) {
	b.mustBeOpen()
	b.checkRange(from, from, len(b.origin))
	if to < from {
		panic(fmt.Errorf("%w: [%d, %d)", ErrIndexOutOfRange, from, to))
	}
	added := make([]int, to-from)
	for i := range added {
		added[i] = -1
		b.updated.InsertAt(uint(from))
	}
	b.origin = slices.Insert(b.origin, from, added...)
}

// NextRemove declares that the given elements were removed starting at idx.
func (b *ChangeBuilder[E]) NextRemove(idx int, removed ...E) {
	b.mustBeOpen()
	b.checkRange(idx, idx+len(removed), len(b.origin))
	for i, e := range removed {
		if o := b.origin[idx+i]; o >= 0 {
			b.removed[o] = e
		}
		b.updated.DeleteAt(uint(idx))
	}
	b.origin = slices.Delete(b.origin, idx, idx+len(removed))
}

// NextReplace declares that the elements in removed, which sat at from, were
// replaced by [from, to).
func (b *ChangeBuilder[E]) NextReplace(from, to int, removed []E) {
	b.NextRemove(from, removed...)
	b.NextAdd(from, to)
}

// NextSet declares that the element at idx, previously old, was replaced.
func (b *ChangeBuilder[E]) NextSet(idx int, old E) {
	b.NextReplace(idx, idx+1, []E{old})
}

// NextUpdate declares that the element at idx changed in place. Updates of
// elements added during the batch are not reported.
func (b *ChangeBuilder[E]) NextUpdate(idx int) {
	b.mustBeOpen()
	b.checkIndex(idx, len(b.origin))
	if b.origin[idx] >= 0 {
		b.updated.Set(uint(idx))
	}
}

// NextPermutation declares that the elements in [from, to) were reordered so
// that the element that was at i is now at perm[i-from].
func (b *ChangeBuilder[E]) NextPermutation(from, to int, perm []int) {
	b.mustBeOpen()
	b.checkRange(from, to, len(b.origin))
	if len(perm) != to-from {
		panic(fmt.Errorf("%w: %d indices for [%d, %d)", ErrBadPermutation, len(perm), from, to))
	}
	seen := bitset.New(uint(len(perm)))
	for _, p := range perm {
		if p < from || p >= to || seen.Test(uint(p-from)) {
			panic(fmt.Errorf("%w: %v over [%d, %d)", ErrBadPermutation, perm, from, to))
		}
		seen.Set(uint(p - from))
	}

	origin := make([]int, to-from)
	updated := make([]bool, to-from)
	for i, p := range perm {
		origin[p-from] = b.origin[from+i]
		updated[p-from] = b.updated.Test(uint(from + i))
	}
	copy(b.origin[from:to], origin)
	for i, u := range updated {
		b.updated.SetTo(uint(from+i), u)
	}
}

func (b *ChangeBuilder[E]) mustBeOpen() {
	if b.depth == 0 {
		panic(ErrNoOpenChange)
	}
}

func (b *ChangeBuilder[E]) checkRange(from, to, size int) {
	if from < 0 || to < from || to > size {
		panic(fmt.Errorf("%w: [%d, %d) with length %d", ErrIndexOutOfRange, from, to, size))
	}
}

func (b *ChangeBuilder[E]) checkIndex(idx, size int) {
	if idx < 0 || idx >= size {
		panic(fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, idx, size))
	}
}

// commit derives the steps of the batch. Elements still present are the
// anchors: a permutation puts them in their final relative order, then each
// gap between two anchors becomes one add, remove or replace step.
func (b *ChangeBuilder[E]) commit() []step[E] {
	var steps []step[E]

	kept := bitset.New(uint(b.size))
	var at []int
	for i, o := range b.origin {
		if o >= 0 {
			kept.Set(uint(o))
			at = append(at, i)
		}
	}
	slots := make([]int, 0, len(at))
	for o, ok := kept.NextSet(0); ok; o, ok = kept.NextSet(o + 1) {
		slots = append(slots, int(o))
	}

	if perm := b.permutation(at, slots); perm != nil {
		steps = append(steps, *perm)
	}

	prevSlot, prevAt := -1, -1
	gap := func(slot, pos int) {
		from := prevAt + 1
		var removed []E
		for o := prevSlot + 1; o < slot; o++ {
			removed = append(removed, b.removed[o])
		}
		if pos > from || len(removed) > 0 {
			steps = append(steps, step[E]{from: from, to: pos, removed: removed})
		}
	}
	for k, pos := range at {
		gap(slots[k], pos)
		prevSlot, prevAt = slots[k], pos
	}
	gap(b.size, len(b.origin))

	for i, ok := b.updated.NextSet(0); ok; {
		j := i
		for j+1 < uint(len(b.origin)) && b.updated.Test(j+1) {
			j++
		}
		steps = append(steps, step[E]{from: int(i), to: int(j) + 1, updated: true})
		i, ok = b.updated.NextSet(j + 1)
	}
	return steps
}

// permutation moves every anchor to the slot it takes in final order. Slots
// of removed elements stay where they are.
func (b *ChangeBuilder[E]) permutation(at, slots []int) *step[E] {
	from, to := -1, -1
	for k, pos := range at {
		src, dst := b.origin[pos], slots[k]
		if src == dst {
			continue
		}
		if from < 0 || min(src, dst) < from {
			from = min(src, dst)
		}
		to = max(to, src+1, dst+1)
	}
	if from < 0 {
		return nil
	}
	perm := make([]int, to-from)
	for i := range perm {
		perm[i] = from + i
	}
	for k, pos := range at {
		if src := b.origin[pos]; src >= from && src < to {
			perm[src-from] = slots[k]
		}
	}
	return &step[E]{from: from, to: to, perm: perm}
}
