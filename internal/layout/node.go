package layout

// NodeID identifies a node within a Tree. IDs are assigned by the Tree
// starting at 1; the zero value never names a node.
type NodeID uint64

// Node is a single layout participant: its configuration, its place in
// the tree, and its computed output rectangle.
//
// Style and Computed may be read and written freely. Children is the
// ordered list of child ids (order is iteration and placement order);
// change it through the Tree methods so that parent back-references
// stay in sync.
type Node struct {
	// Configuration (user-set)
	Style Style

	// Children in placement order. Ids that no longer exist in the
	// tree are skipped by the algorithms.
	Children []NodeID

	// Computed (set by the layout engine)
	Computed Rect

	// Internal state
	id     NodeID
	parent NodeID // 0 = no parent
}

// ID returns this node's identifier.
func (n *Node) ID() NodeID {
	return n.id
}

// Parent returns the id of this node's parent, if it has one. The
// back-reference exists for structural maintenance only; the layout
// algorithms never consult it.
func (n *Node) Parent() (NodeID, bool) {
	return n.parent, n.parent != 0
}
