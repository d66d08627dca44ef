package tui

import "strings"

// Buffer is the 2D cell grid a frame is painted into.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a grid of blank cells.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or the zero Cell if out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.cells[idx]
}

func (b *Buffer) setCell(x, y int, c Cell) {
	if idx := b.idx(x, y); idx >= 0 {
		b.cells[idx] = c
	}
}

// SetRune sets a rune at (x, y). Wide characters claim the next cell as a
// continuation; any wide character the write overlaps is cleared first.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	b.clearWideCharAt(x, y)
	if width == 2 {
		if x+1 >= b.width {
			// Wide char at the last column cannot fit.
			b.setCell(x, y, Cell{Rune: ' ', Style: style, Width: 1})
			return
		}
		b.clearWideCharAt(x+1, y)
	}

	b.setCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		b.setCell(x+1, y, Cell{Style: style, Width: 0})
	}
}

// clearWideCharAt blanks any wide character that covers (x, y).
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	switch {
	case cell.IsContinuation() && b.idx(x, y) >= 0:
		b.setCell(x-1, y, blankCell)
		b.setCell(x, y, blankCell)
	case cell.Width == 2:
		b.setCell(x, y, blankCell)
		b.setCell(x+1, y, blankCell)
	}
}

// SetStringClipped writes s starting at (x, y), dropping anything outside
// clip. Returns the display width written.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Right() {
			break
		}
		if curX >= clip.X && curX+width <= clip.Right() {
			b.SetRune(curX, y, r, style)
			written += width
		}
		curX += width
	}
	return written
}

// Fill fills rect with a rune, clipped to the buffer.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r, style)
		}
	}
}

// Line returns a copy of row y.
func (b *Buffer) Line(y int) Line {
	if y < 0 || y >= b.height {
		return nil
	}
	line := make(Line, b.width)
	copy(line, b.cells[y*b.width:(y+1)*b.width])
	return line
}

// Frame collapses the grid into lines. With trim set, trailing blank cells
// are dropped from every line.
func (b *Buffer) Frame(trim bool) Frame {
	frame := make(Frame, b.height)
	for y := range frame {
		line := b.Line(y)
		if trim {
			line = line.TrimRight()
		}
		frame[y] = line
	}
	return frame
}

// String renders the grid as plain text, rows separated by newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Line(y).String())
	}
	return sb.String()
}
