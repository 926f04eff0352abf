package property

import (
	"fmt"
	"weak"

	"github.com/delaneyj/bindparty/observable"
)

// Cell is a value owned by something outside this package, such as a struct
// field behind accessors. Subscribe registers a callback for changes made
// elsewhere and returns the func that drops it.
type Cell[T any] interface {
	Read() (T, error)
	Write(v T) error
	Subscribe(fn func()) (cancel func())
}

// AdapterProperty exposes a Cell as a property. It keeps no cached value:
// every read goes to the cell.
type AdapterProperty[T any] struct {
	cfg      config
	cell     Cell[T]
	cancel   func()
	helper   observable.Helper[T]
	source   observable.ObservableValue[T]
	listener *adapterListener[T]
	writing  bool
}

func NewAdapter[T any](cell Cell[T], opts ...Option) *AdapterProperty[T] {
	if cell == nil {
		panic(observable.ErrNilObservable)
	}
	a := &AdapterProperty[T]{
		cfg:  newConfig(opts),
		cell: cell,
	}
	a.cancel = cell.Subscribe(a.externalChange)
	return a
}

func (a *AdapterProperty[T]) Bean() any {
	return a.cfg.bean
}

func (a *AdapterProperty[T]) Name() string {
	return a.cfg.name
}

// Get reads the cell. A failed read is returned as a *CollaboratorError.
func (a *AdapterProperty[T]) Get() (T, error) {
	v, err := a.cell.Read()
	if err != nil {
		var zero T
		return zero, &CollaboratorError{Op: "read", Name: a.cfg.name, Err: err}
	}
	return v, nil
}

// Value is Get that panics with the *CollaboratorError on failure.
func (a *AdapterProperty[T]) Value() T {
	v, err := a.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Set writes v to the cell and notifies listeners once. Nothing is notified
// when the write fails. If the write succeeds but the cell cannot be read
// back, change listeners are skipped and the read *CollaboratorError is
// returned.
func (a *AdapterProperty[T]) Set(v T) error {
	if a.source != nil {
		return fmt.Errorf("%s: %w", a.cfg.describe(), ErrBound)
	}
	if err := a.write(v); err != nil {
		return err
	}
	return a.fire()
}

func (a *AdapterProperty[T]) IsBound() bool {
	return a.source != nil
}

// Bind pushes src into the cell now and after every invalidation of src.
func (a *AdapterProperty[T]) Bind(src observable.ObservableValue[T]) {
	if src == nil {
		panic(observable.ErrNilObservable)
	}
	if src == a.source {
		return
	}
	a.Unbind()
	a.source = src
	if a.listener == nil {
		a.listener = &adapterListener[T]{ref: weak.Make(a)}
	}
	src.AddListener(a.listener)
	a.push()
}

func (a *AdapterProperty[T]) Unbind() {
	if a.source == nil {
		return
	}
	a.source.RemoveListener(a.listener)
	a.source = nil
}

// Dispose unbinds and drops the subscription on the cell.
func (a *AdapterProperty[T]) Dispose() {
	a.Unbind()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *AdapterProperty[T]) AddListener(l observable.InvalidationListener) {
	a.helper.AddListener(l)
}

func (a *AdapterProperty[T]) RemoveListener(l observable.InvalidationListener) {
	a.helper.RemoveListener(l)
}

func (a *AdapterProperty[T]) AddChangeListener(l observable.ChangeListener[T]) {
	a.helper.AddChangeListener(a, l)
}

func (a *AdapterProperty[T]) RemoveChangeListener(l observable.ChangeListener[T]) {
	a.helper.RemoveChangeListener(l)
}

func (a *AdapterProperty[T]) write(v T) error {
	a.writing = true
	defer func() {
		a.writing = false
	}()
	if err := a.cell.Write(v); err != nil {
		return &CollaboratorError{Op: "write", Name: a.cfg.name, Err: err}
	}
	return nil
}

// push copies the bound source into the cell. There is no caller to return a
// failure to, so it panics.
func (a *AdapterProperty[T]) push() {
	if err := a.write(a.source.Value()); err != nil {
		panic(err)
	}
	_ = a.fire()
}

func (a *AdapterProperty[T]) externalChange() {
	if a.writing {
		return
	}
	_ = a.fire()
}

// fire notifies listeners. A failed read skips the change listeners; callers
// without anyone to report to leave it to the next Get.
func (a *AdapterProperty[T]) fire() error {
	return a.helper.FireFunc(a, a.Get)
}

type adapterListener[T any] struct {
	ref weak.Pointer[AdapterProperty[T]]
}

func (l *adapterListener[T]) Invalidated(o observable.Observable) {
	if a := l.ref.Value(); a != nil {
		a.push()
		return
	}
	o.RemoveListener(l)
}

func (l *adapterListener[T]) WasGarbageCollected() bool {
	return l.ref.Value() == nil
}
