package layout

// Tree is a flat arena owning all nodes, keyed by id, with an optional
// root. It keeps the parent back-references and children lists
// consistent across structural changes; the two must never diverge.
//
// Lookups return an ok flag instead of an error: a missing id is an
// expected condition everywhere in this engine, not a failure.
type Tree struct {
	nodes  map[NodeID]*Node
	root   NodeID
	nextID NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[NodeID]*Node)}
}

// Insert creates a node with the given style, a zero computed
// rectangle and no parent, and returns its id.
func (t *Tree) Insert(style Style) NodeID {
	t.nextID++
	id := t.nextID
	t.nodes[id] = &Node{id: id, Style: style}
	return id
}

// Get returns the node with the given id, if it exists.
func (t *Tree) Get(id NodeID) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root id, if one is set.
func (t *Tree) Root() (NodeID, bool) {
	return t.root, t.root != 0
}

// SetRoot makes id the root of the tree. Returns false if the node
// does not exist.
func (t *Tree) SetRoot(id NodeID) bool {
	if _, ok := t.nodes[id]; !ok {
		return false
	}
	t.root = id
	return true
}

// AddChild appends child to parent's children, detaching the child
// from any previous parent first. Returns false if either node is
// missing.
func (t *Tree) AddChild(parent, child NodeID) bool {
	p, ok := t.nodes[parent]
	if !ok {
		return false
	}
	c, ok := t.nodes[child]
	if !ok {
		return false
	}
	t.detach(c)
	c.parent = parent
	p.Children = append(p.Children, child)
	return true
}

// SetChildren replaces parent's children list, syncing back-references
// on both the old and new children. Ids that don't exist in the arena
// are kept in the list (the algorithms tolerate them) but gain no
// back-reference. Returns false if the parent is missing.
func (t *Tree) SetChildren(parent NodeID, children ...NodeID) bool {
	p, ok := t.nodes[parent]
	if !ok {
		return false
	}
	for _, id := range p.Children {
		if c, ok := t.nodes[id]; ok && c.parent == parent {
			c.parent = 0
		}
	}
	p.Children = append([]NodeID(nil), children...)
	for _, id := range children {
		if c, ok := t.nodes[id]; ok {
			t.detachFromParent(c)
			c.parent = parent
		}
	}
	return true
}

// Remove deletes a node from the arena. The node is removed from its
// former parent's children list, its own children are detached (they
// stay in the arena with no parent), and the root is cleared if the
// removed node was root. Returns false if the node did not exist.
func (t *Tree) Remove(id NodeID) bool {
	n, ok := t.nodes[id]
	if !ok {
		return false
	}
	t.detach(n)
	for _, childID := range n.Children {
		if c, ok := t.nodes[childID]; ok && c.parent == id {
			c.parent = 0
		}
	}
	if t.root == id {
		t.root = 0
	}
	delete(t.nodes, id)
	return true
}

// Walk visits the subtree rooted at id depth-first in child order,
// skipping ids that don't exist. The visitor returns false to stop the
// whole walk early.
func (t *Tree) Walk(id NodeID, fn func(*Node) bool) {
	t.walk(id, fn)
}

func (t *Tree) walk(id NodeID, fn func(*Node) bool) bool {
	n, ok := t.nodes[id]
	if !ok {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, childID := range n.Children {
		if !t.walk(childID, fn) {
			return false
		}
	}
	return true
}

// detach removes n from its parent's children list and clears the
// back-reference.
func (t *Tree) detach(n *Node) {
	t.detachFromParent(n)
	n.parent = 0
}

func (t *Tree) detachFromParent(n *Node) {
	p, ok := t.nodes[n.parent]
	if !ok {
		return
	}
	for i, id := range p.Children {
		if id == n.id {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			return
		}
	}
}
