package layout

// Display selects which algorithm lays out a node's children.
type Display uint8

const (
	DisplayNone  Display = iota // Node and subtree take no space and are not visited
	DisplayBlock                // Vertical stack
	DisplayFlex                 // Single-axis distribution
	DisplayGrid                 // Two-axis track placement
)

// Position selects how a node's own rectangle is adjusted after being
// placed by its parent's algorithm.
type Position uint8

const (
	PositionStatic   Position = iota // Flow position, untouched
	PositionRelative                 // Offset from flow position by inset
	PositionAbsolute                 // Anchored to the parent rectangle
	PositionFixed                    // Anchored to the viewport
	PositionSticky                   // Alias for Relative (no scroll tracking)
)

// Direction specifies the main axis for laying out flex children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how flex children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
)

// Align specifies how flex children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Style contains all layout properties for a node.
type Style struct {
	Display  Display
	Position Position

	// Sizing
	Width     Size
	Height    Size
	MinWidth  Size
	MinHeight Size
	MaxWidth  Size
	MaxHeight Size

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align

	// Gap between children in cells. RowGap/ColumnGap override Gap on
	// their axis when set. Block layout ignores all three.
	Gap       int
	RowGap    *int
	ColumnGap *int

	// Flex item properties
	AlignSelf *Align // Override parent's AlignItems (nil = inherit)

	// Grid container properties
	GridColumns []GridTrack // Column track template
	GridRows    []GridTrack // Row track template

	// Grid item properties (1-indexed, zero = auto placement)
	GridColumn GridPlacement
	GridRow    GridPlacement

	// Spacing
	Padding Edges // Inset subtracted before laying out children
	Margin  Edges // Space reserved around this node by its parent
	Inset   Inset // Offsets consumed only by the position pass
}

// DefaultStyle returns a Style with sensible defaults: a flex row that
// stretches children on the cross axis and sizes to available space.
func DefaultStyle() Style {
	return Style{
		Display:    DisplayFlex,
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		AlignItems: AlignStretch,
	}
}
