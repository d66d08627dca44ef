// Package tui is a component runtime for terminal programs.
//
// A program is one render function. Each call builds a fresh element tree
// from hook state, and the runtime lays it out, paints it into a frame and
// writes only the lines that changed since the last frame:
//
//	func counter(rc *tui.RenderContext) *tui.Element {
//	    count := tui.UseState(rc, 0)
//	    rc.UseKeys(tui.OnRune('+', func(tui.KeyEvent) {
//	        count.Update(func(n *int) { *n++ })
//	    }))
//	    return tui.Text(fmt.Sprintf("count: %d", count.Get()))
//	}
//
//	app, err := tui.NewApp(counter)
//	if err != nil {
//	    return err
//	}
//	return app.Run(ctx)
//
// Hooks (UseState, UseSignal, UseRef, UseMemo) are addressed by call order,
// so a render function must call the same hooks in the same order every
// time. Input callbacks and focus regions registered during a render are
// replaced by the next render.
//
// By default the app draws inline below the shell prompt and anything
// passed to Println stays in the terminal's scrollback. WithFullscreen, or
// Handle.EnterAltScreen at runtime, switches to the alternate screen.
package tui
