package tui

import "sync/atomic"

// waker coalesces render requests from any goroutine into at most one
// pending wake-up for the run loop.
type waker struct {
	pending atomic.Bool
	ch      chan struct{}
}

func newWaker() *waker {
	return &waker{ch: make(chan struct{}, 1)}
}

// Request marks a render as pending. Only the first request after the loop
// last cleared the flag sends on the channel; the rest are absorbed.
func (w *waker) Request() {
	if w.pending.CompareAndSwap(false, true) {
		select {
		case w.ch <- struct{}{}:
		default:
		}
	}
}

// C is the channel the run loop selects on.
func (w *waker) C() <-chan struct{} { return w.ch }

// clear is called by the loop right before rendering, so requests made
// during the render schedule another cycle. A wake-up still sitting in C is
// discarded first since the coming render covers it.
func (w *waker) clear() {
	select {
	case <-w.ch:
	default:
	}
	w.pending.Store(false)
}

// Pending reports whether a render has been requested and not yet started.
func (w *waker) Pending() bool { return w.pending.Load() }
