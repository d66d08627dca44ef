package layout

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node           Layoutable
	style          Style
	baseSize       int // main size including main-axis margin
	mainSize       int
	crossSize      int
	mainPos        int
	crossPos       int
	intrinsicCross int
	grow           float64
	shrink         float64
}

// layoutFlow arranges in-flow children inside content. This is the flexbox
// algorithm: base sizes, grow/shrink, min/max, justify, then cross-axis align.
func (s *solver) layoutFlow(style Style, children []Layoutable, content Rect, containing Rect) {
	if len(children) == 0 {
		return
	}

	isRow := style.Direction == Row
	mainSize := content.Width
	crossSize := content.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes from explicit size, else intrinsic content size.
	items := make([]flexItem, len(children))
	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0

	for i, child := range children {
		cs := child.LayoutStyle()
		iw, ih := s.measure(child)

		item := &items[i]
		item.node = child
		item.style = cs
		item.grow = cs.FlexGrow
		item.shrink = cs.FlexShrink

		main, cross := iw, ih
		if !isRow {
			main, cross = ih, iw
		}
		size, _, _ := cs.sizeOn(style.Direction)
		item.baseSize = size.Resolve(mainSize, main) + cs.Margin.Along(style.Direction)
		item.intrinsicCross = cross
		item.mainSize = item.baseSize

		totalBase += item.baseSize
		totalGrow += item.grow
		totalShrink += item.shrink
	}

	totalGap := style.Gap * max(0, len(items)-1)
	freeSpace := mainSize - totalBase - totalGap

	// Phase 2: distribute free space
	switch {
	case freeSpace > 0 && totalGrow > 0:
		growItems(items, freeSpace, totalGrow)
	case freeSpace < 0 && totalShrink > 0:
		shrinkItems(items, -freeSpace, totalShrink)
	}

	// Phase 3: min/max on the content part of the main size
	totalUsed := 0
	for i := range items {
		cs := items[i].style
		margin := cs.Margin.Along(style.Direction)
		_, minV, maxV := cs.sizeOn(style.Direction)
		items[i].mainSize = clampSize(items[i].mainSize-margin, minV, maxV, mainSize) + margin
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: position children along main axis (justify)
	offset := calculateJustifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, freeSpace, len(items))
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}

	// Phase 5: cross-axis sizing and alignment
	for i := range items {
		cs := items[i].style
		align := style.AlignItems
		if cs.AlignSelf != nil {
			align = *cs.AlignSelf
		}

		crossValue, minV, maxV := cs.sizeOn(style.Direction.cross())
		crossMargin := cs.Margin.Along(style.Direction.cross())
		availableCross := max(0, crossSize-crossMargin)

		var contentCross int
		switch {
		case !crossValue.IsAuto():
			contentCross = crossValue.Resolve(crossSize, availableCross)
		case align == AlignStretch:
			contentCross = availableCross
		default:
			contentCross = min(items[i].intrinsicCross, availableCross)
		}
		contentCross = clampSize(contentCross, minV, maxV, crossSize)

		items[i].crossSize = contentCross + crossMargin
		items[i].crossPos = calculateAlignOffset(align, crossSize, items[i].crossSize)
	}

	// Phase 6: convert to rects and recurse
	for i := range items {
		var slot Rect
		if isRow {
			slot = Rect{
				X:      content.X + items[i].mainPos,
				Y:      content.Y + items[i].crossPos,
				Width:  items[i].mainSize,
				Height: items[i].crossSize,
			}
		} else {
			slot = Rect{
				X:      content.X + items[i].crossPos,
				Y:      content.Y + items[i].mainPos,
				Width:  items[i].crossSize,
				Height: items[i].mainSize,
			}
		}

		box := slot.Inset(items[i].style.Margin)
		if items[i].style.Position == PositionRelative {
			box = offsetBox(items[i].style, box, content)
		}
		s.place(items[i].node, box, containing)
	}
}

// growItems hands out free cells in proportion to grow factors. Cells lost
// to integer division go to the last growing item.
func growItems(items []flexItem, free int, totalGrow float64) {
	given, last := 0, -1
	for i := range items {
		if items[i].grow <= 0 {
			continue
		}
		extra := int(float64(free) * items[i].grow / totalGrow)
		items[i].mainSize += extra
		given += extra
		last = i
	}
	if last >= 0 {
		items[last].mainSize += free - given
	}
}

// shrinkItems removes deficit cells in proportion to shrink factors, never
// taking an item below zero.
func shrinkItems(items []flexItem, deficit int, totalShrink float64) {
	taken, last := 0, -1
	for i := range items {
		if items[i].shrink <= 0 {
			continue
		}
		cut := min(int(float64(deficit)*items[i].shrink/totalShrink), items[i].mainSize)
		items[i].mainSize -= cut
		taken += cut
		last = i
	}
	if last >= 0 {
		rest := min(deficit-taken, items[last].mainSize)
		items[last].mainSize -= rest
	}
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
