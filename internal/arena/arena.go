// Package arena provides stack-like pools of reusable scratch values for
// the elliptic package's hot paths: comb-table construction, the scalar
// multiply core loop, and the Montgomery ladder all need a handful of
// short-lived big-integers and points per call, and none of them should
// force a trip through the general-purpose allocator on every invocation.
//
// Go has no alloca, so this is not a true bump allocator; it is a
// sync.Pool-backed free list with a save/restore mark. Values handed out by
// a Mark's Alloc are opaque to the caller and are all returned together
// when the Mark is released, modeling a nested stack-like lifetime.
package arena

import "sync"

// NatArena hands out zeroed scratch values and takes them back through a
// Mark. Build one with NewNatArena; the zero value is not usable.
type NatArena[T any] struct {
	pool sync.Pool
	zero func(T)
}

// NewNatArena builds an arena whose scratch values are produced by newVal
// when the free list is empty, and reset to a known-zero state by zero
// before being handed back out.
func NewNatArena[T any](newVal func() T, zero func(T)) *NatArena[T] {
	a := &NatArena[T]{zero: zero}
	a.pool.New = func() any { return newVal() }
	return a
}

func (a *NatArena[T]) get() T {
	v := a.pool.Get().(T)
	a.zero(v)
	return v
}

func (a *NatArena[T]) put(v T) {
	a.pool.Put(v)
}

// Mark captures a scratch frame: every value obtained through Alloc after a
// Mark is released together when Release is called.
type Mark[T any] struct {
	a     *NatArena[T]
	frame []T
}

// NewMark opens a new scratch frame on the given arena.
func NewMark[T any](a *NatArena[T]) *Mark[T] {
	return &Mark[T]{a: a}
}

// Alloc draws a scratch value from the arena and registers it with this
// frame, so that Release gives it back automatically.
func (m *Mark[T]) Alloc() T {
	v := m.a.get()
	m.frame = append(m.frame, v)
	return v
}

// Release returns every value allocated since NewMark to the underlying
// arena. Safe to call once; the frame is empty afterwards.
func (m *Mark[T]) Release() {
	for _, v := range m.frame {
		m.a.put(v)
	}
	m.frame = m.frame[:0]
}
