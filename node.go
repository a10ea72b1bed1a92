package dockspace

// Node is a tree node that exclusively owns its segment and its two
// optional children, and holds a non-owning back-reference to its parent.
// Parent back-references are maintained invariantly by the child setters:
// assigning a node into a parent's left/right slot clears the previous
// occupant's parent link and sets the new occupant's parent link to the
// parent.
type Node struct {
	segment *Segment
	parent  *Node
	left    *Node
	right   *Node
}

// newNode constructs a detached node holding the given segment.
func newNode(segment *Segment) *Node {
	return &Node{segment: segment}
}

// Segment returns the node's owned segment.
func (n *Node) Segment() *Segment { return n.segment }

// Parent returns the node's non-owning parent back-reference, or nil if
// this node is the root or detached.
func (n *Node) Parent() *Node { return n.parent }

// Left returns the node's left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the node's right child, or nil.
func (n *Node) Right() *Node { return n.right }

// IsLeaf reports whether the node currently has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// setLeft assigns the left slot, clearing the previous occupant's parent
// link and setting the new occupant's parent link to n.
func (n *Node) setLeft(child *Node) {
	if n.left != nil {
		n.left.parent = nil
	}
	n.left = child
	if child != nil {
		child.parent = n
	}
}

// setRight assigns the right slot, clearing the previous occupant's parent
// link and setting the new occupant's parent link to n.
func (n *Node) setRight(child *Node) {
	if n.right != nil {
		n.right.parent = nil
	}
	n.right = child
	if child != nil {
		child.parent = n
	}
}

// trySetOrientation applies orientation to n's segment unless n holds an
// EdgeGroup, whose orientation is fixed at creation and silently never
// overridden by tree-rewrite operations (per spec §4.2).
func (n *Node) trySetOrientation(orientation Orientation) {
	if n.segment.Kind == EdgeGroupKind {
		return
	}
	n.segment.orientation = orientation
}

// promoteToInternal transforms a node holding a leaf-only segment
// (LayoutDockGroup or TrayGroup) into a LayoutGroup, moving its current
// segment into a freshly created left child. A node holding CenterGroup
// can never be promoted.
func (n *Node) promoteToInternal() error {
	if n.segment.Kind == CenterGroup {
		return newError(ErrCenterMustBeLeaf, "CenterGroup node cannot become internal")
	}
	if !n.segment.Kind.isLeafOnly() {
		return nil
	}
	if !n.IsLeaf() {
		return nil
	}
	old := n.segment
	n.segment = newLayoutGroup(old.docker, Undetermined)
	n.setLeft(newNode(old))
	return nil
}

// AddChildLeft places child into the left slot if empty, otherwise
// rearranges or descends per spec §4.2.
func (n *Node) AddChildLeft(child *Node, orientation Orientation) error {
	if err := n.promoteToInternal(); err != nil {
		return err
	}
	switch {
	case n.left == nil:
		n.setLeft(child)
		if n.right != nil {
			n.trySetOrientation(orientation)
		}
	case n.right == nil:
		old := n.left
		n.setLeft(child)
		n.setRight(old)
		n.trySetOrientation(orientation)
	default:
		return n.left.AddChildLeft(child, orientation)
	}
	return nil
}

// AddChildRight places child into the right slot if empty, otherwise
// rearranges or descends per spec §4.2.
func (n *Node) AddChildRight(child *Node, orientation Orientation) error {
	if err := n.promoteToInternal(); err != nil {
		return err
	}
	switch {
	case n.right == nil:
		n.setRight(child)
		if n.left != nil {
			n.trySetOrientation(orientation)
		}
	case n.left == nil:
		old := n.right
		n.setRight(child)
		n.setLeft(old)
		n.trySetOrientation(orientation)
	default:
		return n.right.AddChildRight(child, orientation)
	}
	return nil
}

// addChildRelative implements AddChildBefore/AddChildAfter. sibling must be
// a direct child of n.
func (n *Node) addChildRelative(child, sibling *Node, orientation Orientation, before bool) error {
	var atLeft bool
	switch sibling {
	case n.left:
		atLeft = true
	case n.right:
		atLeft = false
	default:
		return newError(ErrInvalidSibling, "sibling is not a direct child of this node")
	}

	var a, b *Node
	if before {
		a, b = child, sibling
	} else {
		a, b = sibling, child
	}

	if n.left == nil || n.right == nil {
		// Exactly one slot is free (sibling occupies the other): place
		// the desired (a, b) pair directly, relocating sibling to its
		// correct side if needed. Both slots are cleared first so that
		// moving sibling does not clear its freshly set parent link.
		n.setLeft(nil)
		n.setRight(nil)
		n.setLeft(a)
		n.setRight(b)
		n.trySetOrientation(orientation)
		return nil
	}

	// Both slots occupied: grow a two-node subtree in sibling's old slot;
	// the other slot's content is untouched.
	// group takes sibling's slot before adopting it, so that replacing the
	// slot does not clear sibling's new parent link.
	group := newNode(newLayoutGroup(n.segment.docker, orientation))
	if atLeft {
		n.setLeft(group)
	} else {
		n.setRight(group)
	}
	group.setLeft(a)
	group.setRight(b)
	return nil
}

// AddChildBefore inserts child immediately before sibling in in-order
// position. sibling must be a direct child of n.
func (n *Node) AddChildBefore(child, sibling *Node, orientation Orientation) error {
	return n.addChildRelative(child, sibling, orientation, true)
}

// AddChildAfter inserts child immediately after sibling in in-order
// position. sibling must be a direct child of n.
func (n *Node) AddChildAfter(child, sibling *Node, orientation Orientation) error {
	return n.addChildRelative(child, sibling, orientation, false)
}

// RemoveChild clears the slot holding child and nulls its parent link.
func (n *Node) RemoveChild(child *Node) error {
	if child != nil && child.segment.Kind == CenterGroup {
		return newError(ErrCenterNotRemovable, "CenterGroup node cannot be removed")
	}
	switch child {
	case n.left:
		n.setLeft(nil)
	case n.right:
		n.setRight(nil)
	default:
		return newError(ErrNotAChild, "node is not a child of this node")
	}
	if n.segment.Kind != EdgeGroupKind {
		n.segment.orientation = Undetermined
	}
	return nil
}

// AssimilateChild folds a lone child's content up into n. child must be
// n's only non-nil child and must not be the CenterGroup; n must not be an
// EdgeGroup, since consolidation never assimilates across an edge
// boundary.
func (n *Node) AssimilateChild(child *Node) error {
	var lone *Node
	switch {
	case n.left != nil && n.right == nil:
		lone = n.left
	case n.right != nil && n.left == nil:
		lone = n.right
	}
	if lone == nil || lone != child {
		return newError(ErrInvalidAssimilation, "child is not a lone child of this node")
	}
	if child.segment.Kind == CenterGroup {
		return newError(ErrInvalidAssimilation, "CenterGroup cannot be assimilated")
	}
	if n.segment.Kind == EdgeGroupKind {
		return newError(ErrInvalidAssimilation, "cannot assimilate across an EdgeGroup boundary")
	}

	childOrientation := child.segment.orientation

	if child.IsLeaf() {
		// Only LayoutDockGroup can reach here as a leaf: CenterGroup is
		// excluded above and TrayGroup's parent is always an EdgeGroup,
		// already excluded above.
		if n.segment.Kind != LayoutDockGroupKind {
			n.segment = newLayoutDockGroup(n.segment.docker, n.segment.orientation)
		}
		n.segment.docks = append(n.segment.docks, child.segment.docks...)
		for _, d := range child.segment.docks {
			d.group = n.segment
		}
		child.segment.docks = nil
		n.setLeft(nil)
		n.setRight(nil)
	} else {
		left, right := child.left, child.right
		n.setLeft(left)
		n.setRight(right)
	}

	if childOrientation != Undetermined {
		n.segment.orientation = childOrientation
	}
	return nil
}

// MergeLeafParts migrates all docks from the right child into the left
// child and removes the right child. Both children must be non-null
// leaves and neither may be the CenterGroup; n must not be an EdgeGroup.
func (n *Node) MergeLeafParts() error {
	if n.left == nil || n.right == nil || !n.left.IsLeaf() || !n.right.IsLeaf() {
		return newError(ErrMergeInvalid, "both children must be non-null leaves")
	}
	if n.left.segment.Kind == CenterGroup || n.right.segment.Kind == CenterGroup {
		return newError(ErrMergeInvalid, "CenterGroup cannot be merged")
	}
	if n.segment.Kind == EdgeGroupKind {
		return newError(ErrMergeInvalid, "cannot merge across an EdgeGroup boundary")
	}

	left, right := n.left, n.right
	left.segment.docks = append(left.segment.docks, right.segment.docks...)
	for _, d := range right.segment.docks {
		d.group = left.segment
	}
	right.segment.docks = nil

	if len(left.segment.docks) > 1 {
		left.segment.orientation = n.segment.orientation
	} else {
		left.segment.orientation = Undetermined
	}

	return n.RemoveChild(right)
}

// Repartition splits n's ordered dock list at relativeTo into three
// sublists (before / relative / after), restructuring n into a LayoutGroup
// whose in-order flattening is (before?, relative, after?). n must hold a
// LayoutDockGroup. Returns the node holding the relative dock's new group.
func (n *Node) Repartition(relativeTo *Dock, requiredOrientation Orientation) (*Node, error) {
	if n.segment.Kind != LayoutDockGroupKind {
		return nil, newError(ErrMergeInvalid, "repartition requires a LayoutDockGroup node")
	}
	originalOrientation := n.segment.orientation
	docker := n.segment.docker
	before, after, err := n.segment.split(relativeTo)
	if err != nil {
		return nil, err
	}

	relativeSeg := newLayoutDockGroup(docker, requiredOrientation)
	relativeSeg.docks = []*Dock{relativeTo}
	relativeTo.group = relativeSeg
	relativeNode := newNode(relativeSeg)

	makeGroup := func(list []*Dock) *Node {
		if len(list) == 0 {
			return nil
		}
		orientation := originalOrientation
		if len(list) == 1 {
			orientation = Undetermined
		}
		seg := newLayoutDockGroup(docker, orientation)
		seg.docks = list
		for _, d := range list {
			d.group = seg
		}
		return newNode(seg)
	}
	beforeNode := makeGroup(before)
	afterNode := makeGroup(after)

	switch {
	case beforeNode == nil && afterNode == nil:
		n.segment = relativeSeg
		return n, nil
	case beforeNode != nil && afterNode != nil:
		n.segment = newLayoutGroup(docker, originalOrientation)
		mid := newNode(newLayoutGroup(docker, originalOrientation))
		mid.setLeft(relativeNode)
		mid.setRight(afterNode)
		n.setLeft(beforeNode)
		n.setRight(mid)
	case beforeNode != nil:
		n.segment = newLayoutGroup(docker, originalOrientation)
		n.setLeft(beforeNode)
		n.setRight(relativeNode)
	default:
		n.segment = newLayoutGroup(docker, originalOrientation)
		n.setLeft(relativeNode)
		n.setRight(afterNode)
	}
	return relativeNode, nil
}

// inOrder appends the segments of every leaf reachable from n, in in-order
// (left-to-right / top-to-bottom) sequence.
func (n *Node) inOrder(out *[]*Segment) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		*out = append(*out, n.segment)
		return
	}
	n.left.inOrder(out)
	n.right.inOrder(out)
}

// Flatten returns the in-order sequence of leaf segments reachable from n.
func (n *Node) Flatten() []*Segment {
	var out []*Segment
	n.inOrder(&out)
	return out
}
