package layout

// Rect is a computed rectangle in terminal cells. X and Y are the
// top-left corner; Width and Height are dimensions. All components are
// unsigned 16-bit and all operations saturate rather than wrap.
type Rect struct {
	X, Y          uint16
	Width, Height uint16
}

// NewRect creates a Rect from intermediate integers, clamping each
// component to the representable cell range.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: cell(x), Y: cell(y), Width: cell(width), Height: cell(height)}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return int(r.X) + int(r.Width)
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return int(r.Y) + int(r.Height)
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Area returns the area of the rectangle in cells.
func (r Rect) Area() int {
	return int(r.Width) * int(r.Height)
}

// Contains returns true if the cell (x, y) is inside the rectangle.
// Cells on the left and top edges are inside; cells on the right and
// bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= int(r.X) && x < r.Right() && y >= int(r.Y) && y < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained
// within this rectangle. An empty rectangle is contained everywhere.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset returns a new Rect shrunk by the given Edges. Dimensions
// saturate at zero; the origin never moves past the opposite edge.
func (r Rect) Inset(edges Edges) Rect {
	return NewRect(
		int(r.X)+edges.Left,
		int(r.Y)+edges.Top,
		int(r.Width)-edges.Horizontal(),
		int(r.Height)-edges.Vertical(),
	)
}

// Translate returns a new Rect moved by (dx, dy), clamped to the cell
// coordinate range.
func (r Rect) Translate(dx, dy int) Rect {
	return NewRect(int(r.X)+dx, int(r.Y)+dy, int(r.Width), int(r.Height))
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(int(r.X), int(other.X))
	y := max(int(r.Y), int(other.Y))
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right-x <= 0 || bottom-y <= 0 {
		return Rect{}
	}
	return NewRect(x, y, right-x, bottom-y)
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(int(r.X), int(other.X))
	y := min(int(r.Y), int(other.Y))
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return NewRect(x, y, right-x, bottom-y)
}
