package layout

// Compute performs layout on the subtree rooted at root. The root
// receives the full viewport rectangle (0, 0, width, height); every
// reachable descendant gets its Computed rectangle assigned.
//
// The pass is idempotent: nothing is cached between calls, and
// unchanged inputs reproduce bit-identical rectangles. A root id that
// doesn't exist in the tree is a no-op.
func Compute(t *Tree, root NodeID, availableWidth, availableHeight int) {
	node, ok := t.Get(root)
	if !ok {
		tracer().Debugf("compute: root %d not in tree, skipping", root)
		return
	}

	viewport := NewRect(0, 0, availableWidth, availableHeight)
	node.Computed = viewport
	tracer().Debugf("compute: root %d in %dx%d cells", root, viewport.Width, viewport.Height)
	computeNode(t, node, viewport)
}

// computeNode lays out one node's children and recurses, depth-first.
//
// The node's own rectangle has already been written by its parent's
// algorithm (or by Compute, for the root); its current width/height is
// the space available to its children. After the recursion returns for
// a child, the position pass runs with this node's rectangle as the
// parent layout.
func computeNode(t *Tree, node *Node, viewport Rect) {
	if node.Style.Display == DisplayNone {
		// The whole subtree is dropped: zero rectangle, no descent.
		node.Computed = Rect{}
		return
	}

	width := int(node.Computed.Width)
	height := int(node.Computed.Height)

	switch node.Style.Display {
	case DisplayBlock:
		ComputeBlock(t, node.id, width, height)
	case DisplayFlex:
		ComputeFlex(t, node.id, width, height)
	case DisplayGrid:
		ComputeGrid(t, node.id, width, height)
	}

	for _, childID := range node.Children {
		child, ok := t.Get(childID)
		if !ok {
			continue
		}
		computeNode(t, child, viewport)
		ApplyPosition(child, node.Computed, viewport)
	}
}
