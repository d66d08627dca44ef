package layout

// Layout holds the computed position and size of one node.
type Layout struct {
	// Rect is the border box, in absolute viewport cells.
	Rect Rect

	// ContentRect is Rect minus border and padding. Children and text are
	// placed inside it.
	ContentRect Rect
}

// Result maps node ids to their computed layout for a single Calculate call.
type Result map[uint64]Layout

// Get returns the layout stored for id, if any.
func (r Result) Get(id uint64) (Layout, bool) {
	l, ok := r[id]
	return l, ok
}
