package tui

// RenderContext is passed to the render function. It is a hook scope and
// collects the input callbacks and focus registrations of one render.
// It must not be retained past the render that received it.
type RenderContext struct {
	app    *App
	hooks  *HookContext
	inputs *inputTable
	width  int
	height int
}

func (rc *RenderContext) hookContext() *HookContext { return rc.hooks }

func (rc *RenderContext) mustBeRendering() {
	if rc == nil || rc.hooks == nil || !rc.hooks.active {
		panic(ErrHookOutsideRender)
	}
}

// UseInput registers fn for every event delivered until the next render
// completes. Callbacks run in registration order on the loop goroutine and
// must not block.
func (rc *RenderContext) UseInput(fn func(Event)) {
	rc.mustBeRendering()
	rc.inputs.add(fn)
}

// UseKeys registers bindings as one input callback. Every matching binding
// runs, in order.
func (rc *RenderContext) UseKeys(bindings ...KeyBinding) {
	rc.mustBeRendering()
	km := KeyMap(bindings)
	rc.inputs.add(km.handle)
}

// UseFocus registers a focusable region and reports whether it is focused
// in this render.
func (rc *RenderContext) UseFocus(opts FocusOptions) bool {
	rc.mustBeRendering()
	_, focused := rc.app.focus.register(opts)
	return focused
}

// Handle returns the app handle.
func (rc *RenderContext) Handle() Handle { return rc.app.Handle() }

// Viewport returns the terminal size used for this render's layout.
func (rc *RenderContext) Viewport() (int, int) { return rc.width, rc.height }

// Mode returns the presentation mode this render will be painted in.
func (rc *RenderContext) Mode() Mode {
	if rc.app.presenter == nil {
		return ModeUninitialized
	}
	return rc.app.presenter.Mode()
}
