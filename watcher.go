package tui

import (
	"context"
	"time"

	"github.com/grindlemire/hooktui/internal/debug"
)

// Watcher is a background event source that runs for the lifetime of
// App.Run. Its handlers run on the loop goroutine, between renders.
type Watcher interface {
	// Run blocks until ctx is done or the source is exhausted, passing
	// each handler invocation to post.
	Run(ctx context.Context, post func(func())) error
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a watcher calling handler on the loop goroutine for every
// value received on ch. It stops when ch is closed.
//
// Example:
//
//	lines := make(chan string)
//	app, _ := tui.NewApp(render, tui.WithWatcher(tui.Watch(lines, func(s string) {
//	    log.Set(append(log.Get(), s))
//	})))
func Watch[T any](ch <-chan T, handler func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{ch: ch, handler: handler}
}

// Run forwards values until ch closes or ctx is done.
func (w *ChannelWatcher[T]) Run(ctx context.Context, post func(func())) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case v, ok := <-w.ch:
			if !ok {
				return nil
			}
			post(func() { w.handler(v) })
		}
	}
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a watcher calling handler on the loop goroutine every
// interval.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

// Run ticks until ctx is done.
func (w *timerWatcher) Run(ctx context.Context, post func(func())) error {
	if w.interval <= 0 {
		return nil
	}
	debug.Log("timer watcher started: %v", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			post(w.handler)
		}
	}
}
