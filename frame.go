package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Line is one row of styled cells.
type Line []Cell

// Frame is one painted snapshot: an ordered list of lines.
type Frame []Line

// LineFromString builds an unstyled line from text. Escape sequences are
// stripped.
func LineFromString(s string, style Style) Line {
	s = ansi.Strip(s)
	line := make(Line, 0, len(s))
	for _, r := range s {
		c := NewCell(r, style)
		line = append(line, c)
		if c.Width == 2 {
			line = append(line, Cell{Style: style})
		}
	}
	return line
}

// Equal reports whether two lines hold identical cells.
func (l Line) Equal(other Line) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// TrimRight drops trailing blank cells.
func (l Line) TrimRight() Line {
	end := len(l)
	for end > 0 && l[end-1].IsBlank() {
		end--
	}
	return l[:end]
}

// Width returns the display width of the line.
func (l Line) Width() int {
	return len(l)
}

// String returns the line's text without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, c := range l {
		switch {
		case c.IsContinuation():
		case c.Rune == 0:
			sb.WriteByte(' ')
		default:
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Equal reports whether two frames hold identical lines.
func (f Frame) Equal(other Frame) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if !f[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Lines returns the plain text of each line.
func (f Frame) Lines() []string {
	out := make([]string, len(f))
	for i, l := range f {
		out[i] = l.String()
	}
	return out
}

// String joins the plain text of every line with newlines.
func (f Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}

// changedLines returns the indices that must be rewritten to turn prev into
// next: every index where the lines differ, including indices present on
// only one side.
func changedLines(prev, next Frame) []int {
	n := max(len(prev), len(next))
	var changed []int
	for i := 0; i < n; i++ {
		if i >= len(prev) || i >= len(next) || !prev[i].Equal(next[i]) {
			changed = append(changed, i)
		}
	}
	return changed
}
