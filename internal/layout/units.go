package layout

// Unit says how a Value's Amount is read.
type Unit uint8

const (
	UnitAuto    Unit = iota // sized from content or flex
	UnitFixed               // cells
	UnitPercent             // 0-100 of the containing content box
)

// Value is a length: automatic, a cell count, or a percentage.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto is the unset length.
func Auto() Value { return Value{} }

// Fixed is n cells.
func Fixed(n int) Value { return Value{Amount: float64(n), Unit: UnitFixed} }

// Percent is p percent of the containing box (50 means half).
func Percent(p float64) Value { return Value{Amount: p, Unit: UnitPercent} }

// IsAuto reports whether the value is unset.
func (v Value) IsAuto() bool { return v.Unit == UnitAuto }

// Resolve converts v to cells against available. Auto yields fallback.
// Percentages round down.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100)
	}
	return fallback
}

// cells returns the cell count of a fixed value. Values that need a
// containing size report false.
func (v Value) cells() (int, bool) {
	if v.Unit != UnitFixed {
		return 0, false
	}
	return int(v.Amount), true
}

// Edges is a per-side thickness (margin, padding or border).
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll is n on every side.
func EdgeAll(n int) Edges { return Edges{n, n, n, n} }

// EdgeTRBL lists sides in CSS order.
func EdgeTRBL(t, r, b, l int) Edges { return Edges{t, r, b, l} }

// Horizontal is Left + Right.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical is Top + Bottom.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

// Along is the thickness consumed on d's axis.
func (e Edges) Along(d Direction) int {
	if d == Row {
		return e.Horizontal()
	}
	return e.Vertical()
}

// Add sums two Edges side by side.
func (e Edges) Add(o Edges) Edges {
	return Edges{e.Top + o.Top, e.Right + o.Right, e.Bottom + o.Bottom, e.Left + o.Left}
}
