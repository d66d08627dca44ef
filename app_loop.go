package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	rdebug "runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
)

// eventBuffer bounds how many input events can wait for the loop.
const eventBuffer = 64

// Run acquires the terminal, renders, and processes input until Exit is
// called, the exit key is pressed, SIGINT or SIGTERM arrives, or ctx is
// done. The terminal is restored before Run returns, including when the
// render function or an input callback panics; the panic is returned as an
// error wrapping ErrRenderPanic.
func (a *App) Run(ctx context.Context) (err error) {
	if !a.running.CompareAndSwap(false, true) {
		return errAlreadyRunning
	}
	defer a.running.Store(false)

	term, reader, err := a.acquireIO()
	if err != nil {
		return err
	}

	p := NewPresenter(term, WithPresenterLogger(a.logger), WithPresenterMouse(a.mouse))
	if err := p.Start(a.fullscreen); err != nil {
		_ = p.Terminate()
		_ = reader.Close()
		return fmt.Errorf("start session: %w", err)
	}
	a.presenter = p
	a.exit.Store(false)

	runningApp.Store(a)
	defer runningApp.CompareAndSwap(a, nil)

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	events := make(chan Event, eventBuffer)

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("render panicked", "panic", r, "stack", string(rdebug.Stack()))
			if perr, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrRenderPanic, perr)
			} else {
				err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
			}
		}
		if terr := p.Terminate(); terr != nil {
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", terr))
		}
		cancel()
		if werr := g.Wait(); werr != nil && !errors.Is(werr, context.Canceled) {
			err = errors.Join(err, werr)
		}
		if rerr := reader.Close(); rerr != nil {
			a.logger.Warn("close event reader", "err", rerr)
		}
	}()

	g.Go(func() error { return a.readInput(gctx, reader, events) })
	if a.handleSignals {
		g.Go(func() error { return a.watchSignals(gctx, term, events) })
	}
	if a.tick > 0 {
		g.Go(func() error { return a.runTicker(gctx) })
	}
	for _, w := range a.watchers {
		g.Go(func() error { return w.Run(gctx, a.QueueUpdate) })
	}

	return a.loop(ctx, events)
}

// acquireIO returns the configured terminal and reader, creating the
// stdio defaults for whichever is missing.
func (a *App) acquireIO() (Terminal, EventReader, error) {
	term := a.term
	if term == nil {
		t, err := NewANSITerminal(os.Stdout, os.Stdin)
		if err != nil {
			return nil, nil, err
		}
		term = t
	}
	reader := a.reader
	if reader == nil {
		r, err := NewEventReader(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		reader = r
	}
	return term, reader, nil
}

// loop runs one cycle, then waits for input, a render request, or
// shutdown.
func (a *App) loop(ctx context.Context, events <-chan Event) error {
	for {
		a.cycle()
		if a.exit.Load() {
			return nil
		}

		select {
		case <-ctx.Done():
			a.logger.Debug("run loop: context done", "err", ctx.Err())
			return nil
		case ev := <-events:
			a.handleEvent(ev)
			a.drainEvents(events)
			a.wake.clear()
		case <-a.wake.C():
			a.wake.clear()
		}
	}
}

// drainEvents handles events already waiting so that a burst of input
// costs one render.
func (a *App) drainEvents(events <-chan Event) {
	for {
		select {
		case ev := <-events:
			a.handleEvent(ev)
		default:
			return
		}
	}
}

// handleEvent routes one event to the callbacks of the last render.
func (a *App) handleEvent(ev Event) {
	switch e := ev.(type) {
	case ResizeEvent:
		a.logger.Debug("resize", "width", e.Width, "height", e.Height)
		a.presenter.Invalidate()
	case KeyEvent:
		if a.exitKey != nil && a.exitKey.Matches(e) {
			a.logger.Debug("exit key", "key", e)
			a.exit.Store(true)
			return
		}
	}
	a.inputs.dispatch(ev)
}

// cycle applies queued updates, screen switches and prints, then renders,
// lays out and paints once.
func (a *App) cycle() {
	a.applyQueued()

	w, h := a.presenter.Viewport()
	rc := &RenderContext{
		app:    a,
		hooks:  a.hooks,
		inputs: &inputTable{},
		width:  w,
		height: h,
	}

	a.focus.begin()
	root := WithHooks(a.hooks, func() *Element { return a.render(rc) })
	a.focus.commit()
	a.inputs = rc.inputs

	var opts []PaintOption
	if a.noTrim {
		opts = append(opts, PaintNoTrim())
	}
	frame := Paint(root, ComputeLayout(root, w, h), opts...)
	report := a.presenter.Paint(frame)
	a.logger.Debug("cycle", "lines", len(frame), "changed", report.Changed(), "inputs", a.inputs.len())
}

func (a *App) applyQueued() {
	a.mu.Lock()
	screens, prints, updates := a.screenReqs, a.prints, a.updates
	a.screenReqs, a.prints, a.updates = nil, nil, nil
	a.mu.Unlock()

	for _, fn := range updates {
		fn()
	}

	for _, alt := range screens {
		var err error
		if alt {
			err = a.presenter.EnterAltScreen()
		} else {
			err = a.presenter.ExitAltScreen()
		}
		if err != nil {
			a.logger.Warn("switch screen", "alt", alt, "err", err)
		}
	}
	for _, item := range prints {
		var err error
		if item.element != nil {
			err = a.presenter.PrintElement(item.element)
		} else {
			err = a.presenter.Println(item.text)
		}
		if err != nil {
			a.logger.Warn("print", "err", err)
		}
	}
}

// readInput polls reader with a bounded timeout so it notices shutdown.
func (a *App) readInput(ctx context.Context, reader EventReader, events chan<- Event) error {
	for ctx.Err() == nil {
		ev, ok := reader.PollEvent(a.pollTimeout)
		if !ok {
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// watchSignals turns SIGWINCH into ResizeEvents and SIGINT/SIGTERM into an
// exit.
func (a *App) watchSignals(ctx context.Context, term Terminal, events chan<- Event) error {
	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, watchedSignals...)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigCh:
			if !isResizeSignal(sig) {
				a.logger.Debug("signal", "sig", sig)
				a.Exit()
				continue
			}
			w, h, err := term.Size()
			if err != nil {
				w, h = DefaultWidth, DefaultHeight
			}
			select {
			case events <- ResizeEvent{Width: w, Height: h}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (a *App) runTicker(ctx context.Context) error {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.wake.Request()
		}
	}
}
