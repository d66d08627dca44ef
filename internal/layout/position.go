package layout

// placeAbsolute sizes and positions an out-of-flow node against containing.
// Auto sizes use the intrinsic size, or stretch between opposing offsets when
// both are set.
func (s *solver) placeAbsolute(node Layoutable, containing Rect) {
	style := node.LayoutStyle()
	iw, ih := s.measure(node)

	width := resolveSpan(style.Width, style.Left, style.Right, style.Margin.Horizontal(), containing.Width, iw)
	height := resolveSpan(style.Height, style.Top, style.Bottom, style.Margin.Vertical(), containing.Height, ih)
	width = clampSize(width, style.MinWidth, style.MaxWidth, containing.Width)
	height = clampSize(height, style.MinHeight, style.MaxHeight, containing.Height)

	box := Rect{Width: width, Height: height}
	box.X = resolveStart(style.Left, style.Right, style.Margin.Left, style.Margin.Right, containing.X, containing.Width, width)
	box.Y = resolveStart(style.Top, style.Bottom, style.Margin.Top, style.Margin.Bottom, containing.Y, containing.Height, height)

	s.place(node, box, containing)
}

func resolveSpan(size, start, end Value, margin, available, intrinsic int) int {
	if size.IsAuto() && !start.IsAuto() && !end.IsAuto() {
		return available - start.Resolve(available, 0) - end.Resolve(available, 0) - margin
	}
	return size.Resolve(available, intrinsic)
}

func resolveStart(start, end Value, marginStart, marginEnd, origin, available, size int) int {
	switch {
	case !start.IsAuto():
		return origin + start.Resolve(available, 0) + marginStart
	case !end.IsAuto():
		return origin + available - end.Resolve(available, 0) - marginEnd - size
	default:
		return origin + marginStart
	}
}

// offsetBox shifts an in-flow box by its offsets. Used for relative nodes
// (and an out-of-flow root). Left wins over Right and Top over Bottom.
func offsetBox(style Style, box Rect, ref Rect) Rect {
	dx, dy := 0, 0
	switch {
	case !style.Left.IsAuto():
		dx = style.Left.Resolve(ref.Width, 0)
	case !style.Right.IsAuto():
		dx = -style.Right.Resolve(ref.Width, 0)
	}
	switch {
	case !style.Top.IsAuto():
		dy = style.Top.Resolve(ref.Height, 0)
	case !style.Bottom.IsAuto():
		dy = -style.Bottom.Resolve(ref.Height, 0)
	}
	return box.Translate(dx, dy)
}
