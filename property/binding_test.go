package property_test

import (
	"errors"
	"runtime"
	"slices"
	"testing"

	"github.com/delaneyj/bindparty/observable"
	"github.com/delaneyj/bindparty/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pulse is an Observable that invalidates its listeners every time fire is
// called, whether or not anyone read it in between.
type pulse struct {
	listeners []observable.InvalidationListener
}

func (p *pulse) AddListener(l observable.InvalidationListener) {
	p.listeners = append(p.listeners, l)
}

func (p *pulse) RemoveListener(l observable.InvalidationListener) {
	if i := slices.Index(p.listeners, l); i >= 0 {
		p.listeners = slices.Delete(p.listeners, i, i+1)
	}
}

func (p *pulse) fire() {
	for _, l := range slices.Clone(p.listeners) {
		l.Invalidated(p)
	}
}

func TestBindingComputesOncePerInvalidation(t *testing.T) {
	p := property.New(1)
	calls := 0
	b := property.NewBinding(func() int {
		calls++
		return p.Value() * 2
	}, p)

	assert.False(t, b.IsValid())
	assert.Equal(t, 0, calls)

	assert.Equal(t, 2, b.Value())
	assert.Equal(t, 2, b.Value())
	assert.Equal(t, 1, calls)

	require.NoError(t, p.Set(3))
	assert.False(t, b.IsValid())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 6, b.Value())
	assert.Equal(t, 6, b.Value())
	assert.Equal(t, 2, calls)
}

func TestBindingInvalidatesAtMostOnceBetweenReads(t *testing.T) {
	s := &pulse{}
	b := property.NewBinding(func() int { return 1 }, s)
	invalidations := 0
	observable.OnInvalidated(b, func(observable.Observable) {
		assert.False(t, b.IsValid(), "listeners see the binding already invalid")
		invalidations++
	})

	b.Value()
	s.fire()
	s.fire()
	s.fire()
	assert.Equal(t, 1, invalidations)

	b.Value()
	s.fire()
	assert.Equal(t, 2, invalidations)
}

func TestBindingStartsInvalidAndStaysQuietUntilRead(t *testing.T) {
	s := &pulse{}
	b := property.NewBinding(func() int { return 1 }, s)
	invalidations := 0
	observable.OnInvalidated(b, func(observable.Observable) { invalidations++ })

	s.fire()
	assert.Equal(t, 0, invalidations)
}

func TestBindingChangeListenerHearsRecomputedValue(t *testing.T) {
	p := property.New(1)
	b := property.Map(p, func(v int) int { return v % 2 })
	type pair struct{ old, new int }
	got := []pair{}
	observable.OnChanged[int](b, func(o observable.ObservableValue[int], oldValue, newValue int) {
		got = append(got, pair{oldValue, newValue})
	})

	require.NoError(t, p.Set(2))
	require.NoError(t, p.Set(4))
	require.NoError(t, p.Set(5))
	assert.Equal(t, []pair{{1, 0}, {0, 1}}, got)
}

func TestBindingComputeErrorLeavesItInvalid(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	calls := 0
	b := property.NewBindingErr(func() (int, error) {
		calls++
		if fail {
			return 0, boom
		}
		return 42, nil
	})

	_, err := b.Get()
	var computeErr *property.ComputeError
	require.ErrorAs(t, err, &computeErr)
	assert.ErrorIs(t, err, boom)
	assert.False(t, b.IsValid())
	assert.Panics(t, func() { b.Value() })

	fail = false
	v, err := b.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, b.IsValid())
	assert.Equal(t, 3, calls)
}

func TestBindingSubscribesOncePerDependency(t *testing.T) {
	s1, s2 := &pulse{}, &pulse{}
	b := property.NewBinding(func() int { return 0 }, s1)
	b.Bind(s1, s2)
	b.Bind(s2)

	assert.Len(t, s1.listeners, 1)
	assert.Len(t, s2.listeners, 1)
	assert.ElementsMatch(t, []observable.Observable{s1, s2}, b.Dependencies())

	b.Unbind(s1)
	assert.Empty(t, s1.listeners)
	assert.Len(t, s2.listeners, 1)

	b.Unbind(s1)
	b.Dispose()
	assert.Empty(t, s2.listeners)
	assert.Empty(t, b.Dependencies())
}

func TestBindingRejectsNilDependencyBeforeSubscribing(t *testing.T) {
	s := &pulse{}
	assert.PanicsWithValue(t, observable.ErrNilObservable, func() {
		property.NewBinding(func() int { return 0 }, s, nil)
	})
	assert.Empty(t, s.listeners)
}

func TestBindingOnInvalidatedHookRunsBeforeListeners(t *testing.T) {
	s := &pulse{}
	b := property.NewBinding(func() int { return 0 }, s)
	calls := []string{}
	b.OnInvalidated(func() { calls = append(calls, "hook") })
	observable.OnInvalidated(b, func(observable.Observable) { calls = append(calls, "listener") })

	b.Value()
	s.fire()
	assert.Equal(t, []string{"hook", "listener"}, calls)
}

func bindShortLived(s *pulse) {
	b := property.NewBinding(func() int { return 1 }, s)
	b.Value()
}

func TestCollectedBindingLeavesItsDependencies(t *testing.T) {
	s := &pulse{}
	bindShortLived(s)
	require.Len(t, s.listeners, 1)

	runtime.GC()
	runtime.GC()

	weak, ok := s.listeners[0].(observable.WeakListener)
	require.True(t, ok)
	assert.True(t, weak.WasGarbageCollected())

	s.fire()
	assert.Empty(t, s.listeners)
}

func TestBindingComputeErrorDuringDispatchSurfacesOnRead(t *testing.T) {
	boom := errors.New("boom")
	p := property.New(1)
	fail := false
	b := property.NewBindingErr(func() (int, error) {
		if fail {
			return 0, boom
		}
		return p.Value() * 10, nil
	}, p)
	var got []int
	observable.OnChanged[int](b, func(_ observable.ObservableValue[int], _, v int) {
		got = append(got, v)
	})

	fail = true
	assert.NotPanics(t, func() {
		require.NoError(t, p.Set(2))
	})
	assert.Empty(t, got)
	assert.False(t, b.IsValid())
	_, err := b.Get()
	var computeErr *property.ComputeError
	require.ErrorAs(t, err, &computeErr)

	fail = false
	assert.Equal(t, 20, b.Value())
	require.NoError(t, p.Set(4))
	assert.Equal(t, []int{40}, got)
}
