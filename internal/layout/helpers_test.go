package layout

type testNode struct {
	id       uint64
	style    Style
	children []*testNode
	w, h     int
}

var nextTestID uint64

func newTestNode(style Style) *testNode {
	nextTestID++
	return &testNode{id: nextTestID, style: style}
}

func newTextNode(w, h int) *testNode {
	n := newTestNode(DefaultStyle())
	n.w, n.h = w, h
	return n
}

func (n *testNode) AddChild(children ...*testNode) {
	n.children = append(n.children, children...)
}

func (n *testNode) LayoutID() uint64 {
	return n.id
}

func (n *testNode) LayoutStyle() Style {
	return n.style
}

func (n *testNode) IntrinsicSize() (int, int) {
	return n.w, n.h
}

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}
