package tui

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder accumulates output and ANSI escape sequences in one reusable
// buffer.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built output.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// csi writes ESC [ params final.
func (e *escBuilder) csi(params string, final byte) {
	e.writeCSI()
	e.buf = append(e.buf, params...)
	e.buf = append(e.buf, final)
}

// MoveTo moves the cursor to (x, y), 0-indexed. ANSI rows and columns are
// 1-indexed.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// MoveUp moves the cursor up by n rows.
func (e *escBuilder) MoveUp(n int) {
	if n <= 0 {
		return
	}
	e.writeCSI()
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, 'A')
}

// CarriageReturn moves the cursor to column 0.
func (e *escBuilder) CarriageReturn() {
	e.buf = append(e.buf, '\r')
}

// NewLine moves to column 0 of the next row, scrolling at the bottom.
// Raw mode disables output post-processing, so the CR is explicit.
func (e *escBuilder) NewLine() {
	e.buf = append(e.buf, '\r', '\n')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.csi("2", 'J')
}

// ClearToEndOfScreen clears from cursor to end of screen (ESC[J).
func (e *escBuilder) ClearToEndOfScreen() {
	e.csi("", 'J')
}

// ClearLine clears the entire current line.
func (e *escBuilder) ClearLine() {
	e.csi("2", 'K')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.csi("?25", 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.csi("?25", 'h')
}

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() {
	e.csi("?1049", 'h')
}

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() {
	e.csi("?1049", 'l')
}

// BeginSyncUpdate starts a synchronized update block. Terminals that don't
// support mode 2026 ignore it.
func (e *escBuilder) BeginSyncUpdate() {
	e.csi("?2026", 'h')
}

// EndSyncUpdate ends a synchronized update block.
func (e *escBuilder) EndSyncUpdate() {
	e.csi("?2026", 'l')
}

// EnableMouse turns on button, drag, and motion reporting with SGR-1006
// coordinates.
func (e *escBuilder) EnableMouse() {
	e.csi("?1000", 'h')
	e.csi("?1002", 'h')
	e.csi("?1003", 'h')
	e.csi("?1006", 'h')
}

// DisableMouse disables mouse reporting.
func (e *escBuilder) DisableMouse() {
	e.csi("?1006", 'l')
	e.csi("?1003", 'l')
	e.csi("?1002", 'l')
	e.csi("?1000", 'l')
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.csi("0", 'm')
}

var sgrAttrs = []struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrReverse, '7'},
	{AttrStrikethrough, '9'},
}

// SetStyle emits one SGR sequence for s, starting from a reset. Colors the
// terminal cannot show are downgraded through caps.
func (e *escBuilder) SetStyle(s Style, caps Capabilities) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	for _, a := range sgrAttrs {
		if s.HasAttr(a.attr) {
			e.buf = append(e.buf, ';', a.code)
		}
	}
	e.appendColor(caps.EffectiveColor(s.Fg), true)
	e.appendColor(caps.EffectiveColor(s.Bg), false)
	e.buf = append(e.buf, 'm')
}

// appendColor appends the SGR parameters for a color.
func (e *escBuilder) appendColor(c Color, fg bool) {
	base := 38
	if !fg {
		base = 48
	}

	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		e.buf = append(e.buf, ';')
		switch {
		case idx < 8:
			e.writeInt(base - 8 + idx) // 30-37, 40-47
		case idx < 16:
			e.writeInt(base + 52 + idx - 8) // 90-97, 100-107
		default:
			e.writeInt(base)
			e.buf = append(e.buf, ";5;"...)
			e.writeInt(idx)
		}
	case ColorRGB:
		r, g, b := c.RGB()
		e.buf = append(e.buf, ';')
		e.writeInt(base)
		e.buf = append(e.buf, ";2;"...)
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

// WriteRune appends a UTF-8 encoded rune to the buffer.
func (e *escBuilder) WriteRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	e.buf = append(e.buf, buf[:n]...)
}

// WriteBytes appends bytes to the buffer.
func (e *escBuilder) WriteBytes(b []byte) {
	e.buf = append(e.buf, b...)
}
