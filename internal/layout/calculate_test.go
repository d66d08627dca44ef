package layout

import "testing"

func TestCalculate_Root(t *testing.T) {
	type tc struct {
		style          Style
		children       []*testNode
		availableW     int
		availableH     int
		expectedWidth  int
		expectedHeight int
	}

	tests := map[string]tc{
		"fixed width and height": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Fixed(50)
				s.Height = Fixed(30)
				return s
			}(),
			availableW:     100,
			availableH:     100,
			expectedWidth:  50,
			expectedHeight: 30,
		},
		"auto width fills viewport, auto height is intrinsic": {
			style:          DefaultStyle(),
			children:       []*testNode{newTextNode(4, 1)},
			availableW:     80,
			availableH:     24,
			expectedWidth:  80,
			expectedHeight: 1,
		},
		"auto height capped at viewport": {
			style: func() Style {
				s := DefaultStyle()
				s.Direction = Column
				return s
			}(),
			children:       []*testNode{newTextNode(4, 20), newTextNode(4, 20)},
			availableW:     80,
			availableH:     24,
			expectedWidth:  80,
			expectedHeight: 24,
		},
		"percent of viewport": {
			style: func() Style {
				s := DefaultStyle()
				s.Width = Percent(50)
				s.Height = Percent(25)
				return s
			}(),
			availableW:     200,
			availableH:     100,
			expectedWidth:  100,
			expectedHeight: 25,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node := newTestNode(tt.style)
			node.AddChild(tt.children...)
			res := Calculate(node, tt.availableW, tt.availableH)

			l, ok := res.Get(node.id)
			if !ok {
				t.Fatal("root missing from result")
			}
			if l.Rect.Width != tt.expectedWidth {
				t.Errorf("Rect.Width = %d, want %d", l.Rect.Width, tt.expectedWidth)
			}
			if l.Rect.Height != tt.expectedHeight {
				t.Errorf("Rect.Height = %d, want %d", l.Rect.Height, tt.expectedHeight)
			}
			if l.Rect.X != 0 || l.Rect.Y != 0 {
				t.Errorf("Rect position = (%d, %d), want (0, 0)", l.Rect.X, l.Rect.Y)
			}
		})
	}
}

func TestCalculate_PaddingAndBorder(t *testing.T) {
	style := DefaultStyle()
	style.Width = Fixed(20)
	style.Height = Fixed(10)
	style.Padding = EdgeTRBL(1, 2, 1, 2)
	style.Border = EdgeAll(1)

	node := newTestNode(style)
	l := Calculate(node, 80, 24)[node.id]

	want := Rect{X: 3, Y: 2, Width: 14, Height: 6}
	if l.ContentRect != want {
		t.Errorf("ContentRect = %+v, want %+v", l.ContentRect, want)
	}
}

func TestCalculate_RowTextOnOneLine(t *testing.T) {
	root := newTestNode(DefaultStyle())
	left := newTextNode(4, 1)
	right := newTextNode(6, 1)
	root.AddChild(left, right)

	res := Calculate(root, 80, 24)

	if got := res[root.id].Rect; got.Height != 1 {
		t.Errorf("root height = %d, want 1", got.Height)
	}
	if got := res[left.id].Rect; got != (Rect{X: 0, Y: 0, Width: 4, Height: 1}) {
		t.Errorf("left = %+v", got)
	}
	if got := res[right.id].Rect; got != (Rect{X: 4, Y: 0, Width: 6, Height: 1}) {
		t.Errorf("right = %+v", got)
	}
}

func TestCalculate_ColumnStretchesChildren(t *testing.T) {
	style := DefaultStyle()
	style.Direction = Column
	root := newTestNode(style)
	a, b, c := newTextNode(3, 1), newTextNode(5, 1), newTextNode(2, 1)
	root.AddChild(a, b, c)

	res := Calculate(root, 40, 10)

	for i, n := range []*testNode{a, b, c} {
		r := res[n.id].Rect
		if r.X != 0 || r.Y != i || r.Width != 40 || r.Height != 1 {
			t.Errorf("child %d = %+v, want x=0 y=%d w=40 h=1", i, r, i)
		}
	}
}

func TestCalculate_GetUnknown(t *testing.T) {
	root := newTestNode(DefaultStyle())
	res := Calculate(root, 10, 10)
	if _, ok := res.Get(root.id + 1000); ok {
		t.Error("Get() for unknown id = found, want not found")
	}
}

func TestCalculate_NilRoot(t *testing.T) {
	if res := Calculate(nil, 10, 10); len(res) != 0 {
		t.Errorf("Calculate(nil) = %v, want empty", res)
	}
}
