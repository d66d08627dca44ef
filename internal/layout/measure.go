package layout

// measure returns the intrinsic border-box size of node, excluding margin.
// Percentages are treated as auto here since the parent size is not known yet.
func (s *solver) measure(node Layoutable) (int, int) {
	id := node.LayoutID()
	if size, ok := s.intrinsic[id]; ok {
		return size[0], size[1]
	}

	style := node.LayoutStyle()
	var w, h int
	if style.Display != DisplayNone {
		w, h = s.contentSize(node, style)
		frame := style.Frame()
		w += frame.Horizontal()
		h += frame.Vertical()
		if n, ok := style.Width.cells(); ok {
			w = n
		}
		if n, ok := style.Height.cells(); ok {
			h = n
		}
		w = clampFixed(w, style.MinWidth, style.MaxWidth)
		h = clampFixed(h, style.MinHeight, style.MaxHeight)
	}

	s.intrinsic[id] = [2]int{w, h}
	return w, h
}

// contentSize sums in-flow children along the main axis and takes the
// largest on the cross axis. Leaves report their own IntrinsicSize.
func (s *solver) contentSize(node Layoutable, style Style) (int, int) {
	ownW, ownH := node.IntrinsicSize()

	var mainTotal, crossMax, count int
	isRow := style.Direction == Row
	for _, child := range node.LayoutChildren() {
		cs := child.LayoutStyle()
		if !cs.InFlow() {
			continue
		}
		cw, ch := s.measure(child)
		cw += cs.Margin.Along(Row)
		ch += cs.Margin.Along(Column)
		if isRow {
			mainTotal += cw
			crossMax = max(crossMax, ch)
		} else {
			mainTotal += ch
			crossMax = max(crossMax, cw)
		}
		count++
	}
	if count > 1 {
		mainTotal += style.Gap * (count - 1)
	}

	if isRow {
		return max(ownW, mainTotal), max(ownH, crossMax)
	}
	return max(ownW, crossMax), max(ownH, mainTotal)
}

// clampFixed applies only the fixed parts of a min/max pair.
func clampFixed(v int, minV, maxV Value) int {
	if lo, ok := minV.cells(); ok {
		v = max(v, lo)
	}
	if hi, ok := maxV.cells(); ok {
		v = min(v, hi)
	}
	return max(v, 0)
}
