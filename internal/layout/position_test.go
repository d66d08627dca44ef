package layout

import "testing"

func TestDisplayNone(t *testing.T) {
	type tc struct {
		hiddenStyle func(s *Style)
	}

	tests := map[string]tc{
		"plain":           {hiddenStyle: func(s *Style) {}},
		"explicit size":   {hiddenStyle: func(s *Style) { s.Width = Fixed(30); s.Height = Fixed(5) }},
		"absolute hidden": {hiddenStyle: func(s *Style) { s.Position = PositionAbsolute; s.Top = Fixed(1) }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := DefaultStyle()
			style.Direction = Column
			root := newTestNode(style)

			before := newTextNode(5, 1)
			hidden := newTextNode(10, 3)
			hidden.style.Display = DisplayNone
			tt.hiddenStyle(&hidden.style)
			grandchild := newTextNode(4, 4)
			hidden.AddChild(grandchild)
			after := newTextNode(5, 1)
			root.AddChild(before, hidden, after)

			res := Calculate(root, 40, 20)

			if got := res[hidden.id].Rect; got.Width != 0 || got.Height != 0 {
				t.Errorf("hidden rect = %+v, want zero size", got)
			}
			if got := res[grandchild.id].Rect; got.Width != 0 || got.Height != 0 {
				t.Errorf("hidden descendant rect = %+v, want zero size", got)
			}
			if got := res[after.id].Rect.Y; got != 1 {
				t.Errorf("sibling after hidden y = %d, want 1", got)
			}
			if got := res[root.id].Rect.Height; got != 2 {
				t.Errorf("root height = %d, want 2", got)
			}
		})
	}
}

func TestDisplayNone_Root(t *testing.T) {
	style := DefaultStyle()
	style.Display = DisplayNone
	root := newTestNode(style)
	l, ok := Calculate(root, 80, 24).Get(root.id)
	if !ok || l.Rect != (Rect{}) {
		t.Errorf("hidden root = %+v (found=%v), want zero rect", l.Rect, ok)
	}
}

func TestAbsolute_OffsetsFromPositionedAncestor(t *testing.T) {
	type tc struct {
		ancestor Position
		index    int
		wantX    int
		wantY    int
	}

	tests := map[string]tc{
		"relative ancestor, first child": {ancestor: PositionRelative, index: 0, wantX: 13, wantY: 7},
		"relative ancestor, last child":  {ancestor: PositionRelative, index: 2, wantX: 13, wantY: 7},
		"static ancestor uses viewport":  {ancestor: PositionStatic, index: 1, wantX: 10, wantY: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rootStyle := DefaultStyle()
			rootStyle.Padding = EdgeTRBL(2, 0, 0, 3)
			root := newTestNode(rootStyle)

			frameStyle := DefaultStyle()
			frameStyle.Width = Fixed(40)
			frameStyle.Height = Fixed(20)
			frameStyle.Direction = Column
			frameStyle.Position = tt.ancestor
			frame := newTestNode(frameStyle)
			root.AddChild(frame)

			abs := newTextNode(6, 2)
			abs.style.Position = PositionAbsolute
			abs.style.Top = Fixed(5)
			abs.style.Left = Fixed(10)

			kids := []*testNode{newTextNode(3, 1), newTextNode(3, 1)}
			kids = append(kids[:tt.index], append([]*testNode{abs}, kids[tt.index:]...)...)
			frame.AddChild(kids...)

			res := Calculate(root, 80, 24)
			r := res[abs.id].Rect
			if r.X != tt.wantX || r.Y != tt.wantY {
				t.Errorf("absolute origin = (%d, %d), want (%d, %d)", r.X, r.Y, tt.wantX, tt.wantY)
			}
			if r.Width != 6 || r.Height != 2 {
				t.Errorf("absolute size = %dx%d, want 6x2", r.Width, r.Height)
			}

			// In-flow siblings ignore the absolute node.
			var flow []*testNode
			for _, k := range kids {
				if k != abs {
					flow = append(flow, k)
				}
			}
			if got := res[flow[1].id].Rect.Y - res[flow[0].id].Rect.Y; got != 1 {
				t.Errorf("flow sibling spacing = %d, want 1", got)
			}
		})
	}
}

func TestAbsolute_StretchBetweenOffsets(t *testing.T) {
	style := DefaultStyle()
	style.Width = Fixed(30)
	style.Height = Fixed(10)
	style.Position = PositionRelative
	root := newTestNode(style)

	abs := newTestNode(DefaultStyle())
	abs.style.Position = PositionAbsolute
	abs.style.Left = Fixed(2)
	abs.style.Right = Fixed(3)
	abs.style.Bottom = Fixed(0)
	abs.style.Height = Fixed(1)
	root.AddChild(abs)

	r := Calculate(root, 80, 24)[abs.id].Rect
	want := Rect{X: 2, Y: 9, Width: 25, Height: 1}
	if r != want {
		t.Errorf("absolute rect = %+v, want %+v", r, want)
	}
}

func TestRelative_ShiftsWithoutAffectingSiblings(t *testing.T) {
	root := newTestNode(DefaultStyle())
	a := newTextNode(3, 1)
	a.style.Position = PositionRelative
	a.style.Left = Fixed(2)
	a.style.Top = Fixed(1)
	b := newTextNode(3, 1)
	root.AddChild(a, b)

	res := Calculate(root, 80, 24)
	if got := res[a.id].Rect; got.X != 2 || got.Y != 1 {
		t.Errorf("relative child at (%d, %d), want (2, 1)", got.X, got.Y)
	}
	if got := res[b.id].Rect.X; got != 3 {
		t.Errorf("sibling x = %d, want 3", got)
	}
}
