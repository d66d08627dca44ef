package tui

import "errors"

var (
	// ErrHookOutsideRender is the panic value when a hook runs without an
	// active WithHooks scope.
	ErrHookOutsideRender = errors.New("tui: hook called outside of a render")

	// ErrHookOrderChanged is the panic value when a render requests a
	// different number or type of hook slots than the previous render.
	ErrHookOrderChanged = errors.New("tui: hook call order changed between renders")

	// ErrNotATerminal is returned when the output is not attached to a tty.
	ErrNotATerminal = errors.New("tui: not a terminal")

	// ErrRenderPanic wraps a panic recovered from the render function.
	ErrRenderPanic = errors.New("tui: render panicked")

	// ErrTerminated is returned by presenter operations after Terminate.
	ErrTerminated = errors.New("tui: presenter terminated")
)
