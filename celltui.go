// celltui.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package celltui

import "celltui/internal/layout"

// Tree is a flat arena owning all layout nodes, keyed by id.
type Tree = layout.Tree

// NodeID identifies a node within a Tree.
type NodeID = layout.NodeID

// Node is a single layout participant.
type Node = layout.Node

// Style holds the layout properties for a node.
type Style = layout.Style

// Rect is a computed rectangle in terminal cells (u16, saturating).
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Inset holds optional per-side offsets for the position pass.
type Inset = layout.Inset

// Size represents a dimension value (fixed, percent, or auto).
type Size = layout.Size

// Unit specifies how a Size is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Display selects which algorithm lays out a node's children.
type Display = layout.Display

const (
	DisplayNone  = layout.DisplayNone
	DisplayBlock = layout.DisplayBlock
	DisplayFlex  = layout.DisplayFlex
	DisplayGrid  = layout.DisplayGrid
)

// Position selects how a node's rectangle is adjusted after placement.
type Position = layout.Position

const (
	PositionStatic   = layout.PositionStatic
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
	PositionFixed    = layout.PositionFixed
	PositionSticky   = layout.PositionSticky
)

// Direction specifies the main axis for laying out flex children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how flex children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
)

// Align specifies how flex children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// GridTrack defines a single column or row of a grid template.
type GridTrack = layout.GridTrack

// TrackKind specifies how a grid track is sized.
type TrackKind = layout.TrackKind

const (
	TrackAuto       = layout.TrackAuto
	TrackFixed      = layout.TrackFixed
	TrackFr         = layout.TrackFr
	TrackMinContent = layout.TrackMinContent
	TrackMaxContent = layout.TrackMaxContent
)

// GridPlacement positions a grid child on one axis (1-indexed,
// negative End = span count).
type GridPlacement = layout.GridPlacement

// MaxGridSize is the hard ceiling on grid tracks per axis.
const MaxGridSize = layout.MaxGridSize

// MaxCell is the largest representable cell coordinate or dimension.
const MaxCell = layout.MaxCell

// NewTree creates an empty tree.
func NewTree() *Tree {
	return layout.NewTree()
}

// Auto creates a Size that is computed by the layout algorithm.
func Auto() Size {
	return layout.Auto()
}

// Fixed creates a Size with a fixed cell count.
func Fixed(n int) Size {
	return layout.Fixed(n)
}

// Percent creates a Size representing a percentage of available space.
func Percent(p float64) Size {
	return layout.Percent(p)
}

// FixedTrack creates a grid track with an absolute cell size.
func FixedTrack(n int) GridTrack {
	return layout.FixedTrack(n)
}

// FrTrack creates a grid track sized as a weighted fraction of free space.
func FrTrack(weight float64) GridTrack {
	return layout.FrTrack(weight)
}

// AutoTrack creates a content-sized grid track.
func AutoTrack() GridTrack {
	return layout.AutoTrack()
}

// MinContentTrack creates a min-content grid track.
func MinContentTrack() GridTrack {
	return layout.MinContentTrack()
}

// MaxContentTrack creates a max-content grid track.
func MaxContentTrack() GridTrack {
	return layout.MaxContentTrack()
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRect creates a Rect with the given position and dimensions,
// clamped to the cell coordinate range.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Compute performs layout on the subtree rooted at root within the
// given viewport, in cells.
func Compute(t *Tree, root NodeID, availableWidth, availableHeight int) {
	layout.Compute(t, root, availableWidth, availableHeight)
}

// ComputeBlock lays out the children of a block container.
func ComputeBlock(t *Tree, id NodeID, availableWidth, availableHeight int) {
	layout.ComputeBlock(t, id, availableWidth, availableHeight)
}

// ComputeFlex lays out the children of a flex container.
func ComputeFlex(t *Tree, id NodeID, availableWidth, availableHeight int) {
	layout.ComputeFlex(t, id, availableWidth, availableHeight)
}

// ComputeGrid lays out the children of a grid container.
func ComputeGrid(t *Tree, id NodeID, availableWidth, availableHeight int) {
	layout.ComputeGrid(t, id, availableWidth, availableHeight)
}

// ApplyPosition adjusts a node's computed rectangle according to its
// position mode.
func ApplyPosition(node *Node, parent Rect, viewport Rect) {
	layout.ApplyPosition(node, parent, viewport)
}
