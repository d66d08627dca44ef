package tui

import "github.com/grindlemire/hooktui/internal/layout"

// Option configures an Element.
type Option func(*Element)

// WithChildren appends children in order. Nil children are skipped, so
// conditional content can be written inline.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		for _, c := range children {
			if c != nil {
				e.children = append(e.children, c)
			}
		}
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(cells)
	}
}

// WithWidthPercent sets width as a percentage of the parent's content width.
func WithWidthPercent(percent float64) Option {
	return func(e *Element) {
		e.style.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(e *Element) {
		e.style.Height = Fixed(cells)
	}
}

// WithHeightPercent sets height as a percentage of the parent's content height.
func WithHeightPercent(percent float64) Option {
	return func(e *Element) {
		e.style.Height = Percent(percent)
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(width)
		e.style.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in terminal cells.
func WithMinWidth(cells int) Option {
	return func(e *Element) {
		e.style.MinWidth = Fixed(cells)
	}
}

// WithMinHeight sets the minimum height in terminal cells.
func WithMinHeight(cells int) Option {
	return func(e *Element) {
		e.style.MinHeight = Fixed(cells)
	}
}

// WithMaxWidth sets the maximum width in terminal cells.
func WithMaxWidth(cells int) Option {
	return func(e *Element) {
		e.style.MaxWidth = Fixed(cells)
	}
}

// WithMaxHeight sets the maximum height in terminal cells.
func WithMaxHeight(cells int) Option {
	return func(e *Element) {
		e.style.MaxHeight = Fixed(cells)
	}
}

// --- Flex Container Options ---

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Direction = d
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(e *Element) {
		e.style.JustifyContent = j
	}
}

// WithAlign sets how children are aligned on the cross axis.
func WithAlign(a Align) Option {
	return func(e *Element) {
		e.style.AlignItems = a
	}
}

// WithGap sets the spacing between children on the main axis.
func WithGap(cells int) Option {
	return func(e *Element) {
		e.style.Gap = cells
	}
}

// --- Flex Item Options ---

// WithFlexGrow sets how much this element grows relative to siblings.
func WithFlexGrow(factor float64) Option {
	return func(e *Element) {
		e.style.FlexGrow = factor
	}
}

// WithFlexShrink sets how much this element shrinks relative to siblings.
func WithFlexShrink(factor float64) Option {
	return func(e *Element) {
		e.style.FlexShrink = factor
	}
}

// WithAlignSelf overrides the parent's AlignItems for this element.
func WithAlignSelf(a Align) Option {
	return func(e *Element) {
		e.style.AlignSelf = &a
	}
}

// --- Spacing Options ---

// WithPadding sets equal padding on all sides.
func WithPadding(cells int) Option {
	return func(e *Element) {
		e.style.Padding = EdgeAll(cells)
	}
}

// WithPaddingTRBL sets padding for each side (top, right, bottom, left).
func WithPaddingTRBL(top, right, bottom, left int) Option {
	return func(e *Element) {
		e.style.Padding = EdgeTRBL(top, right, bottom, left)
	}
}

// WithMargin sets equal margin on all sides.
func WithMargin(cells int) Option {
	return func(e *Element) {
		e.style.Margin = EdgeAll(cells)
	}
}

// WithMarginTRBL sets margin for each side (top, right, bottom, left).
func WithMarginTRBL(top, right, bottom, left int) Option {
	return func(e *Element) {
		e.style.Margin = EdgeTRBL(top, right, bottom, left)
	}
}

// --- Visibility and Positioning ---

// WithHidden sets display:none when hidden is true. A hidden element and
// its subtree take no space and paint nothing.
func WithHidden(hidden bool) Option {
	return func(e *Element) {
		if hidden {
			e.style.Display = layout.DisplayNone
		} else {
			e.style.Display = layout.DisplayFlex
		}
	}
}

// WithRelative marks the element as positioned so absolute descendants are
// placed from its border box. Optional offsets shift it from its flow position.
func WithRelative() Option {
	return func(e *Element) {
		e.style.Position = layout.PositionRelative
	}
}

// WithAbsolute takes the element out of flow and places it at (left, top)
// from the nearest positioned ancestor, or the viewport origin.
func WithAbsolute(top, left int) Option {
	return func(e *Element) {
		e.style.Position = layout.PositionAbsolute
		e.style.Top = Fixed(top)
		e.style.Left = Fixed(left)
	}
}

// WithTop sets the top offset.
func WithTop(cells int) Option {
	return func(e *Element) { e.style.Top = Fixed(cells) }
}

// WithRight sets the right offset.
func WithRight(cells int) Option {
	return func(e *Element) { e.style.Right = Fixed(cells) }
}

// WithBottom sets the bottom offset.
func WithBottom(cells int) Option {
	return func(e *Element) { e.style.Bottom = Fixed(cells) }
}

// WithLeft sets the left offset.
func WithLeft(cells int) Option {
	return func(e *Element) { e.style.Left = Fixed(cells) }
}

// --- Visual Options ---

// WithBorder sets the border glyph set and reserves one cell on each side.
func WithBorder(style BorderStyle) Option {
	return func(e *Element) {
		e.border = style
		if style == BorderNone {
			e.style.Border = Edges{}
		} else {
			e.style.Border = EdgeAll(1)
		}
	}
}

// WithBorderColor sets the same color on every border edge.
func WithBorderColor(c Color) Option {
	return func(e *Element) {
		e.borderColors = AllBorderColors(c)
	}
}

// WithBorderColors sets a color per border edge.
func WithBorderColors(colors BorderColors) Option {
	return func(e *Element) {
		e.borderColors = colors
	}
}

// WithBackground fills the element's rectangle with c before children paint.
func WithBackground(c Color) Option {
	return func(e *Element) {
		e.background = &c
	}
}

// --- Text Options ---

// WithText sets text content on a container.
func WithText(content string) Option {
	return func(e *Element) {
		e.text = content
	}
}

// WithTextStyle sets the style for text content.
func WithTextStyle(style Style) Option {
	return func(e *Element) {
		e.textStyle = style
	}
}

// WithForeground sets the text color.
func WithForeground(c Color) Option {
	return func(e *Element) {
		e.textStyle = e.textStyle.Foreground(c)
	}
}

// WithBold makes text bold.
func WithBold() Option {
	return func(e *Element) { e.textStyle = e.textStyle.Bold() }
}

// WithDim makes text dim.
func WithDim() Option {
	return func(e *Element) { e.textStyle = e.textStyle.Dim() }
}

// WithItalic makes text italic.
func WithItalic() Option {
	return func(e *Element) { e.textStyle = e.textStyle.Italic() }
}

// WithUnderline underlines text.
func WithUnderline() Option {
	return func(e *Element) { e.textStyle = e.textStyle.Underline() }
}

// WithReverse swaps text foreground and background.
func WithReverse() Option {
	return func(e *Element) { e.textStyle = e.textStyle.Reverse() }
}

// WithTextAlign sets text alignment within the content area.
func WithTextAlign(align TextAlign) Option {
	return func(e *Element) {
		e.textAlign = align
	}
}
