package layout

// Layoutable is the interface for anything that can participate in layout calculation.
// The solver never mutates a Layoutable; results are returned keyed by LayoutID.
type Layoutable interface {
	// LayoutID identifies the node in the returned Result.
	LayoutID() uint64

	// LayoutStyle returns the layout style properties for this node.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out, in order.
	LayoutChildren() []Layoutable

	// IntrinsicSize returns the natural content size of a leaf, excluding
	// padding and border. Containers compute theirs from children and may
	// return (0, 0).
	IntrinsicSize() (width, height int)
}
