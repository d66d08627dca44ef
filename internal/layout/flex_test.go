package layout

import "testing"

func TestLayoutFlow_Grow(t *testing.T) {
	type tc struct {
		grow     []float64
		expected []int
	}

	tests := map[string]tc{
		"single grower takes all": {
			grow:     []float64{0, 1},
			expected: []int{10, 90},
		},
		"equal growers split evenly": {
			grow:     []float64{1, 1},
			expected: []int{50, 50},
		},
		"remainder goes to last grower": {
			grow:     []float64{1, 1, 1},
			expected: []int{33, 33, 34},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := DefaultStyle()
			style.Width = Fixed(100)
			root := newTestNode(style)
			var kids []*testNode
			for i, g := range tt.grow {
				cs := DefaultStyle()
				if len(tt.grow) == 2 && i == 0 && g == 0 {
					cs.Width = Fixed(10)
				}
				cs.FlexGrow = g
				kid := newTestNode(cs)
				kids = append(kids, kid)
				root.AddChild(kid)
			}

			res := Calculate(root, 100, 10)
			for i, kid := range kids {
				if got := res[kid.id].Rect.Width; got != tt.expected[i] {
					t.Errorf("child %d width = %d, want %d", i, got, tt.expected[i])
				}
			}
		})
	}
}

func TestLayoutFlow_Shrink(t *testing.T) {
	style := DefaultStyle()
	style.Width = Fixed(10)
	root := newTestNode(style)

	a := newTestNode(DefaultStyle())
	a.style.Width = Fixed(8)
	b := newTestNode(DefaultStyle())
	b.style.Width = Fixed(8)
	b.style.FlexShrink = 0
	root.AddChild(a, b)

	res := Calculate(root, 80, 5)

	if got := res[a.id].Rect.Width; got != 2 {
		t.Errorf("shrinking child width = %d, want 2", got)
	}
	if got := res[b.id].Rect.Width; got != 8 {
		t.Errorf("rigid child width = %d, want 8", got)
	}
}

func TestLayoutFlow_JustifyAndAlign(t *testing.T) {
	type tc struct {
		justify Justify
		align   Align
		wantX   int
		wantY   int
		wantH   int
	}

	tests := map[string]tc{
		"start/stretch": {justify: JustifyStart, align: AlignStretch, wantX: 0, wantY: 0, wantH: 10},
		"end/end":       {justify: JustifyEnd, align: AlignEnd, wantX: 16, wantY: 9, wantH: 1},
		"center/center": {justify: JustifyCenter, align: AlignCenter, wantX: 8, wantY: 4, wantH: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := DefaultStyle()
			style.Width = Fixed(20)
			style.Height = Fixed(10)
			style.JustifyContent = tt.justify
			style.AlignItems = tt.align
			root := newTestNode(style)
			child := newTextNode(4, 1)
			root.AddChild(child)

			r := Calculate(root, 80, 24)[child.id].Rect
			if r.X != tt.wantX || r.Y != tt.wantY || r.Height != tt.wantH {
				t.Errorf("child = %+v, want x=%d y=%d h=%d", r, tt.wantX, tt.wantY, tt.wantH)
			}
		})
	}
}

func TestLayoutFlow_GapAndMargin(t *testing.T) {
	style := DefaultStyle()
	style.Gap = 2
	root := newTestNode(style)
	a := newTextNode(3, 1)
	b := newTextNode(3, 1)
	b.style.Margin = EdgeTRBL(0, 0, 0, 1)
	root.AddChild(a, b)

	r := Calculate(root, 80, 24)[b.id].Rect
	if r.X != 6 {
		t.Errorf("second child x = %d, want 6", r.X)
	}
}

func TestLayoutFlow_MinMax(t *testing.T) {
	style := DefaultStyle()
	style.Width = Fixed(100)
	root := newTestNode(style)
	a := newTestNode(DefaultStyle())
	a.style.FlexGrow = 1
	a.style.MaxWidth = Fixed(30)
	b := newTextNode(2, 1)
	b.style.MinWidth = Fixed(10)
	root.AddChild(a, b)

	res := Calculate(root, 100, 5)
	if got := res[a.id].Rect.Width; got != 30 {
		t.Errorf("max-clamped width = %d, want 30", got)
	}
	if got := res[b.id].Rect.Width; got != 10 {
		t.Errorf("min-clamped width = %d, want 10", got)
	}
}
