package tui

import (
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

var _ Terminal = (*ANSITerminal)(nil)

// ANSITerminal implements Terminal with ANSI escape sequences. Output is
// collected in memory and written to the device in one call per Flush.
type ANSITerminal struct {
	out      io.Writer
	caps     Capabilities
	esc      *escBuilder
	inFd     int
	outFd    int
	rawState *rawModeState
}

// NewANSITerminal creates a terminal writing to out and reading mode state
// from in. Both must be attached to a tty; use NewANSITerminalWithCaps for
// plain writers.
func NewANSITerminal(out, in *os.File) (*ANSITerminal, error) {
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return nil, fmt.Errorf("%w: %s", ErrNotATerminal, out.Name())
	}
	t := NewANSITerminalWithCaps(out, DetectCapabilities())
	t.inFd = int(in.Fd())
	return t, nil
}

// NewANSITerminalWithCaps creates a terminal with explicit capabilities.
// If out is an *os.File its descriptor is used for size and mode queries.
func NewANSITerminalWithCaps(out io.Writer, caps Capabilities) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		caps:  caps,
		esc:   newEscBuilder(4096),
		inFd:  -1,
		outFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
		t.inFd = t.outFd
	}
	return t
}

// Caps returns the terminal's capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}

// Size returns the terminal dimensions.
func (t *ANSITerminal) Size() (width, height int, err error) {
	if t.outFd < 0 {
		return 0, 0, fmt.Errorf("%w: output has no file descriptor", ErrNotATerminal)
	}
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("query terminal size: got %dx%d", w, h)
	}
	return w, h, nil
}

// EnableRawMode puts the input side into raw mode.
func (t *ANSITerminal) EnableRawMode() error {
	if t.rawState != nil {
		return nil
	}
	if t.inFd < 0 {
		return fmt.Errorf("%w: input has no file descriptor", ErrNotATerminal)
	}
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// DisableRawMode restores the mode saved by EnableRawMode.
func (t *ANSITerminal) DisableRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(t.rawState)
	t.rawState = nil
	if err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	return nil
}

// EnterAltScreen switches to the alternate screen buffer. Terminals without
// one keep drawing on the main screen.
func (t *ANSITerminal) EnterAltScreen() {
	if t.caps.AltScreen {
		t.esc.EnterAltScreen()
	}
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() {
	if t.caps.AltScreen {
		t.esc.ExitAltScreen()
	}
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() { t.esc.HideCursor() }

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() { t.esc.ShowCursor() }

// SetCursor moves the cursor to the specified position.
func (t *ANSITerminal) SetCursor(col, row int) { t.esc.MoveTo(col, row) }

// CursorUp moves the cursor up n rows to column 0.
func (t *ANSITerminal) CursorUp(n int) {
	t.esc.CarriageReturn()
	t.esc.MoveUp(n)
}

// NewLines moves the cursor down n rows to column 0.
func (t *ANSITerminal) NewLines(n int) {
	for range n {
		t.esc.NewLine()
	}
}

// ClearLine clears the cursor row.
func (t *ANSITerminal) ClearLine() { t.esc.ClearLine() }

// ClearToEnd clears from the cursor to the end of the screen.
func (t *ANSITerminal) ClearToEnd() { t.esc.ClearToEndOfScreen() }

// ClearScreen clears the visible screen and homes the cursor.
func (t *ANSITerminal) ClearScreen() {
	t.esc.ResetStyle()
	t.esc.ClearScreen()
	t.esc.MoveTo(0, 0)
}

// EnableMouse turns on mouse reporting.
func (t *ANSITerminal) EnableMouse() { t.esc.EnableMouse() }

// DisableMouse turns off mouse reporting.
func (t *ANSITerminal) DisableMouse() { t.esc.DisableMouse() }

// BeginUpdate opens a synchronized update block when supported.
func (t *ANSITerminal) BeginUpdate() {
	if t.caps.SyncUpdate {
		t.esc.BeginSyncUpdate()
	}
}

// EndUpdate closes a synchronized update block.
func (t *ANSITerminal) EndUpdate() {
	if t.caps.SyncUpdate {
		t.esc.EndSyncUpdate()
	}
}

// WriteLine writes styled cells, emitting SGR only where the style changes.
func (t *ANSITerminal) WriteLine(line Line) {
	current := NewStyle()
	styled := false
	for _, c := range line {
		if c.IsContinuation() {
			continue
		}
		if !c.Style.Equal(current) {
			t.esc.SetStyle(c.Style, t.caps)
			current = c.Style
			styled = true
		}
		switch {
		case c.Rune == 0:
			t.esc.WriteRune(' ')
		case !t.caps.Unicode && c.Rune > unicode.MaxASCII:
			// Keep the cell count so the rest of the row stays in place.
			r := asciiFallback(c.Rune)
			for range max(int(c.Width), 1) {
				t.esc.WriteRune(r)
			}
		default:
			t.esc.WriteRune(c.Rune)
		}
	}
	if styled {
		t.esc.ResetStyle()
	}
}

// asciiFallback maps box drawing and block characters to ASCII.
func asciiFallback(r rune) rune {
	switch r {
	case '─', '━', '═':
		return '-'
	case '│', '┃', '║':
		return '|'
	case '╭', '╮', '╰', '╯', '┌', '┐', '└', '┘', '┏', '┓', '┗', '┛', '╔', '╗', '╚', '╝':
		return '+'
	case '█', '▇', '▆', '▅':
		return '#'
	case '▄', '▃', '▂', '▁', '▀':
		return '='
	case '…':
		return '.'
	}
	return '?'
}

// Write appends raw bytes to the pending output.
func (t *ANSITerminal) Write(p []byte) (int, error) {
	t.esc.WriteBytes(p)
	return len(p), nil
}

// Flush writes pending output to the device.
func (t *ANSITerminal) Flush() error {
	if t.esc.Len() == 0 {
		return nil
	}
	_, err := t.out.Write(t.esc.Bytes())
	t.esc.Reset()
	if err != nil {
		return fmt.Errorf("write terminal output: %w", err)
	}
	return nil
}
