package tui

import "github.com/mattn/go-runewidth"

// Cell is a single character cell in a frame.
// Wide characters (CJK, emoji) occupy two cells; the first holds the rune and
// the second is a continuation with Width 0.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Visual styling
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// blankCell is an unstyled space.
var blankCell = Cell{Rune: ' ', Width: 1}

// IsContinuation returns true if this cell is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equal(other.Style)
}

// IsBlank reports whether the cell would look empty on a default terminal:
// a space or zero rune with no background and no reverse/underline/strikethrough.
func (c Cell) IsBlank() bool {
	if c.Rune != ' ' && c.Rune != 0 {
		return false
	}
	if c.IsContinuation() {
		return false
	}
	return c.Style.Bg.IsDefault() && c.Style.Attrs&(AttrReverse|AttrUnderline|AttrStrikethrough) == 0
}

// RuneWidth returns the display width of a rune in terminal cells, at least 1.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
