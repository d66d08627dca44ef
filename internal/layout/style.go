package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

func (d Direction) cross() Direction {
	if d == Row {
		return Column
	}
	return Row
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Display controls whether a node takes part in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone         // Zero rect for the node and its subtree
)

// Position selects how a node is placed relative to its parent.
type Position uint8

const (
	PositionStatic   Position = iota // Normal flow
	PositionRelative                 // Normal flow, shifted by offsets; anchors absolute descendants
	PositionAbsolute                 // Out of flow, placed by offsets
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children (main axis only)

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Box model. Border is the thickness reserved for a border on each side.
	Padding Edges
	Margin  Edges
	Border  Edges

	Display  Display
	Position Position

	// Offsets for relative and absolute positioning. Auto means unset.
	Top    Value
	Right  Value
	Bottom Value
	Left   Value
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
		Top:        Auto(),
		Right:      Auto(),
		Bottom:     Auto(),
		Left:       Auto(),
	}
}

// sizeOn returns the size and its min/max bounds on d's axis.
func (s Style) sizeOn(d Direction) (size, lo, hi Value) {
	if d == Row {
		return s.Width, s.MinWidth, s.MaxWidth
	}
	return s.Height, s.MinHeight, s.MaxHeight
}

// Frame returns the combined border and padding thickness.
func (s Style) Frame() Edges {
	return s.Border.Add(s.Padding)
}

// InFlow reports whether the node takes part in its parent's flex distribution.
func (s Style) InFlow() bool {
	return s.Display != DisplayNone && s.Position != PositionAbsolute
}
