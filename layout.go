// layout.go re-exports layout types from internal/layout and adapts the
// solver to element trees.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/hooktui/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	DirRow    = layout.Row
	DirColumn = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Display controls whether a node takes part in layout.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Position selects normal flow, relative, or absolute placement.
type Position = layout.Position

const (
	PositionStatic   = layout.PositionStatic
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Fixed creates a Value with a fixed character count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// DefaultLayoutStyle returns a Style with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// LayoutResult maps element ids to rectangles for one tree. It is read-only
// once computed and only knows the ids of the tree it was computed for.
type LayoutResult struct {
	boxes layout.Result
}

// ComputeLayout lays out root inside a width x height viewport.
func ComputeLayout(root *Element, width, height int) *LayoutResult {
	if root == nil {
		return &LayoutResult{boxes: layout.Result{}}
	}
	return &LayoutResult{boxes: layout.Calculate(root, width, height)}
}

// Get returns the border box of id, or false if id was not in the tree.
func (r *LayoutResult) Get(id ElementID) (Rect, bool) {
	l, ok := r.boxes.Get(uint64(id))
	return l.Rect, ok
}

// Content returns the content box (border box minus border and padding).
func (r *LayoutResult) Content(id ElementID) (Rect, bool) {
	l, ok := r.boxes.Get(uint64(id))
	return l.ContentRect, ok
}

// Len returns the number of laid-out elements.
func (r *LayoutResult) Len() int {
	return len(r.boxes)
}
