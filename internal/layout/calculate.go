package layout

// solver carries per-call state: the result being built and a cache of
// intrinsic sizes so nested containers are measured once.
type solver struct {
	result    Result
	intrinsic map[uint64][2]int
}

// Calculate lays out the tree rooted at root inside a viewport of the given
// size and returns the border box and content box of every node, keyed by
// LayoutID.
//
// An auto-width root fills the viewport width. An auto-height root takes its
// intrinsic content height, capped at the viewport height. Absolute nodes are
// placed from the border box of their nearest non-static ancestor, or from the
// viewport origin when there is none. display:none nodes and their subtrees get
// the zero Rect.
func Calculate(root Layoutable, availableWidth, availableHeight int) Result {
	s := &solver{
		result:    Result{},
		intrinsic: map[uint64][2]int{},
	}
	if root == nil {
		return s.result
	}

	style := root.LayoutStyle()
	if style.Display == DisplayNone {
		s.hide(root)
		return s.result
	}

	viewport := NewRect(0, 0, max(availableWidth, 0), max(availableHeight, 0))
	outer := viewport.Inset(style.Margin)

	iw, ih := s.measure(root)
	width := outer.Width
	if style.Position == PositionAbsolute {
		width = min(iw, outer.Width)
	}
	width = style.Width.Resolve(outer.Width, width)
	height := style.Height.Resolve(outer.Height, min(ih, outer.Height))
	width = clampSize(width, style.MinWidth, style.MaxWidth, outer.Width)
	height = clampSize(height, style.MinHeight, style.MaxHeight, outer.Height)

	box := Rect{X: outer.X, Y: outer.Y, Width: width, Height: height}
	if style.Position != PositionStatic {
		box = offsetBox(style, box, viewport)
	}
	s.place(root, box, viewport)
	return s.result
}

// place records the layout of node at box and lays out its children.
// containing is the border box absolute descendants are placed against.
func (s *solver) place(node Layoutable, box Rect, containing Rect) {
	style := node.LayoutStyle()
	content := box.Inset(style.Frame())
	s.result[node.LayoutID()] = Layout{Rect: box, ContentRect: content}

	if style.Position != PositionStatic {
		containing = box
	}

	children := node.LayoutChildren()
	if len(children) == 0 {
		return
	}

	var flow, absolute []Layoutable
	for _, child := range children {
		cs := child.LayoutStyle()
		switch {
		case cs.Display == DisplayNone:
			s.hide(child)
		case cs.Position == PositionAbsolute:
			absolute = append(absolute, child)
		default:
			flow = append(flow, child)
		}
	}

	s.layoutFlow(style, flow, content, containing)
	for _, child := range absolute {
		s.placeAbsolute(child, containing)
	}
}

// hide assigns the zero Rect to node and all of its descendants.
func (s *solver) hide(node Layoutable) {
	s.result[node.LayoutID()] = Layout{}
	for _, child := range node.LayoutChildren() {
		s.hide(child)
	}
}

// clampSize applies min/max constraints, resolving percentages against
// available. An auto max means no maximum. If min > max, min wins.
func clampSize(v int, minV, maxV Value, available int) int {
	lo := minV.Resolve(available, 0)
	if v < lo {
		v = lo
	}
	if !maxV.IsAuto() {
		if hi := maxV.Resolve(available, v); hi >= lo && v > hi {
			v = hi
		}
	}
	if v < 0 {
		v = 0
	}
	return v
}
