package tui

// Attr is a bitfield of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse // swaps foreground and background
	AttrStrikethrough
)

// Style is the paint style of a cell: colors plus attributes.
// The zero value is the terminal default.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style { return Style{} }

// Foreground returns s painted with c as the text color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns s painted on c.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns s with the attributes in a added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Bold returns s with text in bold.
func (s Style) Bold() Style {
	return s.With(AttrBold)
}

// Dim returns s with dimmed text.
func (s Style) Dim() Style {
	return s.With(AttrDim)
}

// Italic returns s with italic text.
func (s Style) Italic() Style {
	return s.With(AttrItalic)
}

// Underline returns s with underlined text.
func (s Style) Underline() Style {
	return s.With(AttrUnderline)
}

// Reverse returns s with swapped colors.
func (s Style) Reverse() Style {
	return s.With(AttrReverse)
}

// Strikethrough returns s with struck-through text.
func (s Style) Strikethrough() Style {
	return s.With(AttrStrikethrough)
}

// Equal reports whether both styles paint the same way.
func (s Style) Equal(other Style) bool {
	return s.Attrs == other.Attrs && s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg)
}

// HasAttr reports whether every attribute in a is set.
func (s Style) HasAttr(a Attr) bool { return s.Attrs&a == a }

// IsDefault reports whether the style paints with terminal defaults.
func (s Style) IsDefault() bool {
	return s.Attrs == AttrNone && s.Fg.IsDefault() && s.Bg.IsDefault()
}

// over returns s with unset colors taken from base. Attributes are combined.
func (s Style) over(base Style) Style {
	if s.Fg.IsDefault() {
		s.Fg = base.Fg
	}
	if s.Bg.IsDefault() {
		s.Bg = base.Bg
	}
	return s.With(base.Attrs)
}
