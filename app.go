package tui

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/grindlemire/hooktui/internal/debug"
)

// RenderFunc builds the element tree for one render. It is called again for
// every cycle; state that must survive lives in hooks drawn from rc.
type RenderFunc func(rc *RenderContext) *Element

// runningApp is the app whose Run is active, for package-level
// RequestRender.
var runningApp atomic.Pointer[App]

// RequestRender asks the running app, if any, to render again. Safe to
// call from any goroutine.
func RequestRender() {
	if a := runningApp.Load(); a != nil {
		a.RequestRender()
	}
}

// App owns one render function, its hook state and the run loop that
// drives it.
type App struct {
	render RenderFunc

	// Configuration (set via options)
	term          Terminal
	reader        EventReader
	logger        *log.Logger
	fullscreen    bool
	mouse         bool
	pollTimeout   time.Duration
	tick          time.Duration
	handleSignals bool
	noTrim        bool
	exitKey       *KeyPattern
	watchers      []Watcher

	// Loop state. Everything below except the atomics, the print queue and
	// focus is only touched by the loop goroutine.
	hooks     *HookContext
	focus     *focusState
	inputs    *inputTable
	presenter *Presenter
	wake      *waker
	exit      atomic.Bool
	running   atomic.Bool

	mu         sync.Mutex
	prints     []printItem
	screenReqs []bool // true = enter alt screen, false = exit
	updates    []func()
}

// printItem is one queued Println or PrintElement.
type printItem struct {
	text    string
	element *Element
}

var errAlreadyRunning = errors.New("tui: app is already running")

// NewApp creates an app for render. The terminal is not touched until Run.
func NewApp(render RenderFunc, opts ...AppOption) (*App, error) {
	if render == nil {
		return nil, errors.New("tui: nil render function")
	}
	a := &App{
		render:        render,
		logger:        debug.Logger(),
		pollTimeout:   50 * time.Millisecond,
		handleSignals: true,
		exitKey:       &KeyPattern{Rune: 'c', Mod: ModCtrl},
		hooks:         NewHookContext(),
		focus:         &focusState{},
		inputs:        &inputTable{},
		wake:          newWaker(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Handle returns a handle for controlling the app from callbacks and other
// goroutines.
func (a *App) Handle() Handle { return Handle{app: a} }

// RequestRender schedules a render. Many requests before the loop wakes
// result in one render. Safe to call from any goroutine.
func (a *App) RequestRender() { a.wake.Request() }

// Exit stops the run loop after the current cycle.
func (a *App) Exit() {
	a.exit.Store(true)
	a.wake.Request()
}

// FocusNext moves focus to the next eligible region of the last render,
// wrapping around.
func (a *App) FocusNext() {
	if a.focus.move(+1) {
		a.wake.Request()
	}
}

// FocusPrev moves focus to the previous eligible region of the last
// render, wrapping around.
func (a *App) FocusPrev() {
	if a.focus.move(-1) {
		a.wake.Request()
	}
}

// Focus moves focus to id. The id does not need to be registered yet; a
// region with that id is focused as soon as one renders.
func (a *App) Focus(id string) {
	a.focus.set(id)
	a.wake.Request()
}

// Blur clears focus.
func (a *App) Blur() {
	a.focus.clear()
	a.wake.Request()
}

// Focused returns the focused id, if any.
func (a *App) Focused() (string, bool) { return a.focus.current() }

// FocusRegistry returns the focusable regions of the last completed
// render in traversal order.
func (a *App) FocusRegistry() []FocusEntry { return a.focus.registry() }

// Println queues text to be printed above the inline region on the next
// cycle. It does nothing in alt-screen mode.
func (a *App) Println(text string) {
	a.mu.Lock()
	a.prints = append(a.prints, printItem{text: text})
	a.mu.Unlock()
	a.wake.Request()
}

// PrintElement queues el to be painted above the inline region on the next
// cycle.
func (a *App) PrintElement(el *Element) {
	if el == nil {
		return
	}
	a.mu.Lock()
	a.prints = append(a.prints, printItem{element: el})
	a.mu.Unlock()
	a.wake.Request()
}

// QueueUpdate runs fn on the loop goroutine before the next render. Safe
// to call from any goroutine; fn may touch hook state freely.
func (a *App) QueueUpdate(fn func()) {
	if fn == nil {
		return
	}
	a.mu.Lock()
	a.updates = append(a.updates, fn)
	a.mu.Unlock()
	a.wake.Request()
}

// EnterAltScreen switches to the alternate screen on the next cycle.
func (a *App) EnterAltScreen() { a.queueScreen(true) }

// ExitAltScreen returns to inline mode on the next cycle.
func (a *App) ExitAltScreen() { a.queueScreen(false) }

func (a *App) queueScreen(alt bool) {
	a.mu.Lock()
	a.screenReqs = append(a.screenReqs, alt)
	a.mu.Unlock()
	a.wake.Request()
}

// Handle is a copyable reference to a running app. Every copy controls the
// same app.
type Handle struct {
	app *App
}

// Exit stops the run loop after the current cycle.
func (h Handle) Exit() { h.app.Exit() }

// RequestRender schedules a render.
func (h Handle) RequestRender() { h.app.RequestRender() }

// Println prints text above the inline region.
func (h Handle) Println(text string) { h.app.Println(text) }

// PrintElement paints el above the inline region.
func (h Handle) PrintElement(el *Element) { h.app.PrintElement(el) }

// QueueUpdate runs fn on the loop goroutine before the next render.
func (h Handle) QueueUpdate(fn func()) { h.app.QueueUpdate(fn) }

// FocusNext moves focus forward.
func (h Handle) FocusNext() { h.app.FocusNext() }

// FocusPrev moves focus backward.
func (h Handle) FocusPrev() { h.app.FocusPrev() }

// Focus moves focus to id.
func (h Handle) Focus(id string) { h.app.Focus(id) }

// Focused returns the focused id, if any.
func (h Handle) Focused() (string, bool) { return h.app.Focused() }

// EnterAltScreen switches to the alternate screen.
func (h Handle) EnterAltScreen() { h.app.EnterAltScreen() }

// ExitAltScreen returns to inline mode.
func (h Handle) ExitAltScreen() { h.app.ExitAltScreen() }
