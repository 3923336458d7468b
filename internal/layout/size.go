package layout

// Unit specifies how a Size is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by the layout algorithm
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of the parent's content dimension
)

// Size represents a dimension that can be fixed, percentage, or auto.
type Size struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Size that is computed by the layout algorithm.
func Auto() Size {
	return Size{Unit: UnitAuto}
}

// Fixed returns a Size representing an absolute number of terminal cells.
func Fixed(n int) Size {
	return Size{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Size representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Size {
	return Size{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual integer value given available space.
// For UnitAuto, returns the fallback value. Percentages truncate.
func (s Size) Resolve(available, fallback int) int {
	switch s.Unit {
	case UnitFixed:
		return int(s.Amount)
	case UnitPercent:
		return int(float64(available) * s.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if this size is computed by the layout algorithm.
func (s Size) IsAuto() bool {
	return s.Unit == UnitAuto
}

// resolveMin resolves a minimum size constraint against a content
// dimension. Auto means no lower bound.
func resolveMin(s Size, content int) int {
	if s.IsAuto() {
		return 0
	}
	return s.Resolve(content, 0)
}

// resolveMax resolves a maximum size constraint against a content
// dimension. Auto means no upper bound (the u16 coordinate ceiling).
func resolveMax(s Size, content int) int {
	if s.IsAuto() {
		return MaxCell
	}
	return s.Resolve(content, MaxCell)
}
