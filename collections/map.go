package collections

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/delaneyj/bindparty/observable"
)

// MapChange reports one key of an ObservableMap. A replaced value is both
// added and removed.
type MapChange[K comparable, V any] struct {
	Map      *ObservableMap[K, V]
	Key      K
	Old, New V
	Added    bool
	Removed  bool
}

func (c MapChange[K, V]) WasAdded() bool {
	return c.Added
}

func (c MapChange[K, V]) WasRemoved() bool {
	return c.Removed
}

type MapChangeListener[K comparable, V any] interface {
	OnChanged(c MapChange[K, V])
}

type mapChangeFunc[K comparable, V any] struct {
	fn func(MapChange[K, V])
}

func (f *mapChangeFunc[K, V]) OnChanged(c MapChange[K, V]) {
	f.fn(c)
}

// OnMapChanged registers fn on m and returns the func that unregisters it.
func OnMapChanged[K comparable, V any](m *ObservableMap[K, V], fn func(c MapChange[K, V])) (cancel func()) {
	if fn == nil {
		panic(observable.ErrNilListener)
	}
	l := &mapChangeFunc[K, V]{fn: fn}
	m.AddMapChangeListener(l)
	return func() {
		m.RemoveMapChangeListener(l)
	}
}

// ObservableMap keeps keys in insertion order and reports each key added,
// replaced or removed.
type ObservableMap[K comparable, V any] struct {
	helper helper[MapChangeListener[K, V]]
	pairs  *orderedmap.OrderedMap[K, V]
	equal  func(a, b V) bool
}

func NewObservableMap[K comparable, V any]() *ObservableMap[K, V] {
	return &ObservableMap[K, V]{pairs: orderedmap.New[K, V]()}
}

// SetEquality replaces the function deciding whether Put of an existing key
// changes anything.
func (m *ObservableMap[K, V]) SetEquality(equal func(a, b V) bool) {
	m.equal = equal
}

func (m *ObservableMap[K, V]) AddListener(l observable.InvalidationListener) {
	m.helper.addListener(l)
}

func (m *ObservableMap[K, V]) RemoveListener(l observable.InvalidationListener) {
	m.helper.removeListener(l)
}

func (m *ObservableMap[K, V]) AddMapChangeListener(l MapChangeListener[K, V]) {
	m.helper.addChangeListener(l)
}

func (m *ObservableMap[K, V]) RemoveMapChangeListener(l MapChangeListener[K, V]) {
	m.helper.removeChangeListener(l)
}

func (m *ObservableMap[K, V]) Len() int {
	return m.pairs.Len()
}

func (m *ObservableMap[K, V]) Get(k K) (V, bool) {
	return m.pairs.Get(k)
}

// Keys returns the keys in insertion order.
func (m *ObservableMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.pairs.Len())
	for pair := m.pairs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Put stores v under k and returns the previous value, if any. Storing a
// value equal to the current one notifies nobody.
func (m *ObservableMap[K, V]) Put(k K, v V) (V, bool) {
	old, present := m.pairs.Get(k)
	if present && m.equals(old, v) {
		return old, true
	}
	m.pairs.Set(k, v)
	m.fire(MapChange[K, V]{Map: m, Key: k, Old: old, New: v, Added: true, Removed: present})
	return old, present
}

func (m *ObservableMap[K, V]) Remove(k K) (V, bool) {
	old, present := m.pairs.Delete(k)
	if present {
		m.fire(MapChange[K, V]{Map: m, Key: k, Old: old, Removed: true})
	}
	return old, present
}

func (m *ObservableMap[K, V]) Clear() {
	for _, k := range m.Keys() {
		m.Remove(k)
	}
}

func (m *ObservableMap[K, V]) equals(a, b V) bool {
	if m.equal == nil {
		return observable.Equal(a, b)
	}
	return m.equal(a, b)
}

func (m *ObservableMap[K, V]) fire(c MapChange[K, V]) {
	m.helper.fire(m, func(l MapChangeListener[K, V]) {
		l.OnChanged(c)
	})
}
