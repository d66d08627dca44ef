package tui

import (
	"fmt"

	"github.com/grindlemire/hooktui/internal/debug"
)

// HookContext is the slot arena for one root render function. Slots are
// addressed by the order hooks are called in, so the function must call the
// same hooks in the same order on every render.
type HookContext struct {
	slots     []any
	cursor    int
	active    bool
	prevCount int
}

// NewHookContext returns an empty arena.
func NewHookContext() *HookContext {
	return &HookContext{prevCount: -1}
}

// HookScope is anything hooks can draw slots from: a *HookContext or the
// *RenderContext passed to a render function.
type HookScope interface {
	hookContext() *HookContext
}

func (hc *HookContext) hookContext() *HookContext { return hc }

// Slots returns the number of slots allocated so far.
func (hc *HookContext) Slots() int { return len(hc.slots) }

// WithHooks runs fn as one render against hc. The slot cursor is reset
// first. After fn returns, the number of slots it requested must match the
// previous render, or WithHooks panics with ErrHookOrderChanged.
func WithHooks(hc *HookContext, fn func() *Element) *Element {
	if hc.active {
		panic(fmt.Errorf("%w: WithHooks re-entered on an active context", ErrHookOrderChanged))
	}
	hc.cursor = 0
	hc.active = true
	defer func() { hc.active = false }()

	root := fn()

	if hc.prevCount >= 0 && hc.cursor != hc.prevCount {
		panic(fmt.Errorf("%w: render requested %d slots, previous render requested %d",
			ErrHookOrderChanged, hc.cursor, hc.prevCount))
	}
	hc.prevCount = hc.cursor
	return root
}

// next claims the next slot index. existing is false when the slot has not
// been allocated yet.
func (hc *HookContext) next() (idx int, existing bool) {
	if hc == nil || !hc.active {
		panic(ErrHookOutsideRender)
	}
	idx = hc.cursor
	hc.cursor++
	return idx, idx < len(hc.slots)
}

func scopeOf(scope HookScope) *HookContext {
	if scope == nil {
		panic(ErrHookOutsideRender)
	}
	return scope.hookContext()
}

// UseSignal returns the Signal stored in the next slot. On the first render
// the slot is created with init(); later renders return the same Signal and
// never call init.
func UseSignal[T any](scope HookScope, init func() T) Signal[T] {
	hc := scopeOf(scope)
	idx, existing := hc.next()
	if !existing {
		s := NewSignal(init())
		hc.slots = append(hc.slots, s)
		debug.Log("hooks: allocated slot %d (%T)", idx, s)
		return s
	}

	s, ok := hc.slots[idx].(Signal[T])
	if !ok {
		panic(fmt.Errorf("%w: slot %d holds %T, requested %T",
			ErrHookOrderChanged, idx, hc.slots[idx], Signal[T]{}))
	}
	return s
}

// UseState is UseSignal with a plain initial value.
func UseState[T any](scope HookScope, initial T) Signal[T] {
	return UseSignal(scope, func() T { return initial })
}

// Ref is a mutable box that survives renders without being a Signal.
// Reads and writes are not synchronized.
type Ref[T any] struct {
	Current T
}

// UseRef returns the Ref stored in the next slot, creating it on first use.
func UseRef[T any](scope HookScope, initial T) *Ref[T] {
	hc := scopeOf(scope)
	idx, existing := hc.next()
	if !existing {
		r := &Ref[T]{Current: initial}
		hc.slots = append(hc.slots, r)
		return r
	}

	r, ok := hc.slots[idx].(*Ref[T])
	if !ok {
		panic(fmt.Errorf("%w: slot %d holds %T, requested %T",
			ErrHookOrderChanged, idx, hc.slots[idx], r))
	}
	return r
}

// UseMemo recomputes fn only when key differs from the key stored at the
// previous render.
func UseMemo[T any, K comparable](scope HookScope, key K, fn func() T) T {
	ref := UseRef[*memoSlot[T, K]](scope, nil)
	if ref.Current == nil || ref.Current.key != key {
		ref.Current = &memoSlot[T, K]{key: key, value: fn()}
	}
	return ref.Current.value
}

type memoSlot[T any, K comparable] struct {
	key   K
	value T
}
