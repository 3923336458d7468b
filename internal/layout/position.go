package layout

// ApplyPosition adjusts a node's computed rectangle according to its
// position mode. It is a pure function of the node's current
// rectangle, its inset, the parent's computed rectangle, and the
// viewport (consulted only for PositionFixed).
//
// Intermediate math is done in native ints and clamped back to the
// [0, MaxCell] cell range, so offsets can neither wrap nor go
// negative.
func ApplyPosition(node *Node, parent Rect, viewport Rect) {
	switch node.Style.Position {
	case PositionRelative, PositionSticky:
		// Sticky has no scroll threshold to track in this engine and
		// degrades to Relative.
		applyRelative(node)
	case PositionAbsolute:
		applyAnchored(node, int(parent.Width), int(parent.Height))
	case PositionFixed:
		applyAnchored(node, int(viewport.Width), int(viewport.Height))
	default: // PositionStatic
	}
}

// applyRelative offsets the existing flow position. On each axis the
// leading inset strictly takes precedence: bottom is ignored when top
// is set, right is ignored when left is set.
func applyRelative(node *Node) {
	in := node.Style.Inset
	r := node.Computed

	if in.Top != nil {
		r.Y = cell(int(r.Y) + *in.Top)
	} else if in.Bottom != nil {
		r.Y = cell(int(r.Y) - *in.Bottom)
	}
	if in.Left != nil {
		r.X = cell(int(r.X) + *in.Left)
	} else if in.Right != nil {
		r.X = cell(int(r.X) - *in.Right)
	}

	node.Computed = r
}

// applyAnchored ignores the flow position on any axis with a set
// inset, anchoring against a container of the given dimensions (the
// parent rectangle for Absolute, the viewport for Fixed). An axis with
// no inset set keeps its flow position.
func applyAnchored(node *Node, width, height int) {
	in := node.Style.Inset
	r := node.Computed

	if in.Top != nil {
		r.Y = cell(*in.Top)
	} else if in.Bottom != nil {
		r.Y = cell(height - int(r.Height) - *in.Bottom)
	}
	if in.Left != nil {
		r.X = cell(*in.Left)
	} else if in.Right != nil {
		r.X = cell(width - int(r.Width) - *in.Right)
	}

	node.Computed = r
}
