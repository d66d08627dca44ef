package tui

import "sync"

// Signal is a shared state cell. Copies of a Signal refer to the same cell,
// so a value set through one copy is visible through every other copy,
// including copies captured by callbacks or handed to goroutines.
//
// Mutating a Signal never schedules a render by itself. Input callbacks are
// always followed by a render; goroutines must call RequestRender after
// mutating.
type Signal[T any] struct {
	cell *signalCell[T]
}

type signalCell[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
}

// NewSignal creates a Signal outside of the hook arena.
func NewSignal[T any](initial T) Signal[T] {
	return Signal[T]{cell: &signalCell[T]{value: initial}}
}

// Get returns a snapshot of the current value. The snapshot is a Go value
// copy: slices and maps inside it still share backing storage.
func (s Signal[T]) Get() T {
	if s.cell == nil {
		var zero T
		return zero
	}
	s.cell.mu.RLock()
	defer s.cell.mu.RUnlock()
	return s.cell.value
}

// Set replaces the value.
func (s Signal[T]) Set(v T) {
	s.cell.mu.Lock()
	s.cell.value = v
	s.cell.version++
	s.cell.mu.Unlock()
}

// Update applies fn to the value in place while holding the cell's lock.
// fn must not call back into the same Signal.
func (s Signal[T]) Update(fn func(*T)) {
	s.cell.mu.Lock()
	fn(&s.cell.value)
	s.cell.version++
	s.cell.mu.Unlock()
}

// Version counts mutations. It changes on every Set and Update.
func (s Signal[T]) Version() uint64 {
	if s.cell == nil {
		return 0
	}
	s.cell.mu.RLock()
	defer s.cell.mu.RUnlock()
	return s.cell.version
}

// Same reports whether two Signals share a cell.
func (s Signal[T]) Same(other Signal[T]) bool {
	return s.cell == other.cell
}
