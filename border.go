package tui

// BorderStyle selects the glyph set used to draw a box border.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
	// BorderASCII uses plain ASCII (+, -, |) for terminals without box glyphs.
	BorderASCII
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

var borderChars = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘'},
	BorderDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝'},
	BorderRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯'},
	BorderThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'},
	BorderASCII:   {'+', '-', '+', '|', '|', '+', '-', '+'},
}

// Chars returns the box-drawing characters for this border style.
// BorderNone and unknown styles return spaces.
func (b BorderStyle) Chars() BorderChars {
	if c, ok := borderChars[b]; ok {
		return c
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

// BorderColors holds one color per edge. Corners take the color of the
// horizontal edge they sit on.
type BorderColors struct {
	Top, Right, Bottom, Left Color
}

// AllBorderColors returns BorderColors with every edge set to c.
func AllBorderColors(c Color) BorderColors {
	return BorderColors{Top: c, Right: c, Bottom: c, Left: c}
}

// DrawBox draws a border around rect, clipped to clip. Boxes smaller than 2x2
// are not drawn.
func DrawBox(buf *Buffer, rect Rect, border BorderStyle, colors BorderColors, base Style, clip Rect) {
	if border == BorderNone || rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := border.Chars()
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	edge := func(c Color) Style { return base.Foreground(c) }
	put := func(x, y int, r rune, st Style) {
		if clip.Contains(x, y) {
			buf.SetRune(x, y, r, st)
		}
	}

	topStyle, bottomStyle := edge(colors.Top), edge(colors.Bottom)
	leftStyle, rightStyle := edge(colors.Left), edge(colors.Right)

	put(left, top, chars.TopLeft, topStyle)
	put(right, top, chars.TopRight, topStyle)
	put(left, bottom, chars.BottomLeft, bottomStyle)
	put(right, bottom, chars.BottomRight, bottomStyle)

	for x := left + 1; x < right; x++ {
		put(x, top, chars.Top, topStyle)
		put(x, bottom, chars.Bottom, bottomStyle)
	}
	for y := top + 1; y < bottom; y++ {
		put(left, y, chars.Left, leftStyle)
		put(right, y, chars.Right, rightStyle)
	}
}
