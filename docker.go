package dockspace

import "github.com/rs/zerolog"

// LayoutChangeReason classifies why an on-layout-changed listener fired.
type LayoutChangeReason int

const (
	ReasonDocking LayoutChangeReason = iota
	ReasonFloating
	ReasonResize
)

func (r LayoutChangeReason) String() string {
	switch r {
	case ReasonDocking:
		return "docking"
	case ReasonFloating:
		return "floating"
	case ReasonResize:
		return "resize"
	default:
		return "unknown-reason"
	}
}

// DockerOption configures a Docker at construction time.
type DockerOption func(*Docker)

// WithDefaultCapabilities sets the CanMinimize/CanClose values Docker.NewDock
// assigns new docks, overriding the all-true default.
func WithDefaultCapabilities(canMinimize, canClose bool) DockerOption {
	return func(d *Docker) {
		d.defaultCanMinimize = canMinimize
		d.defaultCanClose = canClose
	}
}

// WithListener attaches a LayoutChanged listener at construction time.
func WithListener(fn func(LayoutChangeReason)) DockerOption {
	return func(d *Docker) {
		d.listener = fn
	}
}

// Docker is the façade translating dock/undock/pin/minimize/float/close/
// resize operations into rewrites of the owned segment tree, followed by
// consolidation, a stretch-to-fill refresh, and a layout-changed
// notification, in that order (spec §5 "ordering guarantees").
type Docker struct {
	root  *Node
	center *Node
	edges map[Edge]*Node

	consolidating bool
	disposed      bool

	logger   *zerolog.Logger
	listener func(LayoutChangeReason)

	defaultCanMinimize bool
	defaultCanClose    bool
}

// NewDocker constructs the root LayoutGroup and its CenterGroup leaf, then
// applies the given options.
func NewDocker(opts ...DockerOption) *Docker {
	d := &Docker{
		edges:              make(map[Edge]*Node),
		defaultCanMinimize: true,
		defaultCanClose:    true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.root = newNode(newLayoutGroup(d, Undetermined))
	d.center = newNode(newCenterGroup(d))
	d.root.setLeft(d.center)
	return d
}

// NewDock constructs a dock using this docker's default capability flags.
func (d *Docker) NewDock(id, name string) *Dock {
	dock := NewDock(id, name)
	dock.CanMinimize = d.defaultCanMinimize
	dock.CanClose = d.defaultCanClose
	return dock
}

// Root returns the docker's root node.
func (d *Docker) Root() *Node { return d.root }

// Center returns the node holding the unique CenterGroup.
func (d *Docker) Center() *Node { return d.center }

// EdgeNode returns the EdgeGroup node for edge, or nil if that edge has no
// content yet.
func (d *Docker) EdgeNode(edge Edge) *Node { return d.edges[edge] }

func (d *Docker) emit(reason LayoutChangeReason) {
	if d.listener != nil {
		d.listener(reason)
	}
}

// findNode traverses the tree iteratively, using parent back-references
// and a "came from" marker instead of recursion or an explicit stack, to
// find the node holding segment.
func (d *Docker) findNode(segment *Segment) *Node {
	if segment == nil || d.root == nil {
		return nil
	}
	var prev *Node
	node := d.root
	for node != nil {
		if node.segment == segment {
			return node
		}
		var next *Node
		switch {
		case prev == node.parent:
			switch {
			case node.left != nil:
				next = node.left
			case node.right != nil:
				next = node.right
			default:
				next = node.parent
			}
		case prev == node.left:
			if node.right != nil {
				next = node.right
			} else {
				next = node.parent
			}
		default:
			next = node.parent
		}
		prev = node
		node = next
	}
	return nil
}

// refreshStretchToFill walks from the center node's parent up to the root,
// setting stretch_to_fill true on every ancestor (invariant 9).
func (d *Docker) refreshStretchToFill() {
	for n := d.center.parent; n != nil; n = n.parent {
		n.segment.stretchToFill = true
	}
}

// ensureEdgeNode returns the EdgeGroup node for edge, creating it (with its
// inner-side TrayGroup child) and splicing it next to the center node if
// it does not exist yet.
func (d *Docker) ensureEdgeNode(edge Edge) *Node {
	if node, ok := d.edges[edge]; ok {
		return node
	}

	edgeNode := newNode(newEdgeGroup(d, edge))
	trayNode := newNode(newTrayGroup(d, edge))
	switch edge {
	case EdgeLeft, EdgeTop:
		edgeNode.setLeft(trayNode)
	default:
		edgeNode.setRight(trayNode)
	}

	centerParent := d.center.parent
	switch edge {
	case EdgeLeft, EdgeTop:
		centerParent.AddChildBefore(edgeNode, d.center, edge.axisOrientation())
	default:
		centerParent.AddChildAfter(edgeNode, d.center, edge.axisOrientation())
	}

	d.edges[edge] = edgeNode
	d.debugEdge("ensure-edge", edge)
	return edgeNode
}

// addToEdge returns the node holding edgeNode's non-tray content group,
// creating a fresh LayoutDockGroup node on that side if none exists yet.
// Subsequent plain (non-anchored) placements at the same edge reuse this
// same group by appending to its dock list, rather than growing a new
// sibling node each time.
func (d *Docker) addToEdge(edgeNode *Node) *Node {
	contentOnLeft := edgeNode.right != nil && edgeNode.right.segment.Kind == TrayGroupKind
	var contentSlot *Node
	if contentOnLeft {
		contentSlot = edgeNode.left
	} else {
		contentSlot = edgeNode.right
	}
	if contentSlot != nil && contentSlot.segment.Kind == LayoutDockGroupKind {
		return contentSlot
	}

	groupNode := newNode(newLayoutDockGroup(d, Undetermined))
	if contentOnLeft {
		edgeNode.AddChildLeft(groupNode, edgeNode.segment.orientation)
	} else {
		edgeNode.AddChildRight(groupNode, edgeNode.segment.orientation)
	}
	return groupNode
}

// placeByPosition routes a nil-relative_to anchor to center or edge
// placement by plain append (see SPEC_FULL.md's resolved ambiguity note).
// Dock handles PositionWith itself before this is ever called.
func (d *Docker) placeByPosition(dock *Dock, position Position) (*Segment, error) {
	if position == PositionCenter {
		d.center.segment.AppendDock(dock)
		return d.center.segment, nil
	}
	edge, ok := position.toEdge()
	if !ok {
		return nil, newError(ErrInvalidAnchor, "position has no corresponding edge")
	}
	edgeNode := d.ensureEdgeNode(edge)
	groupNode := d.addToEdge(edgeNode)
	groupNode.segment.AppendDock(dock)
	return groupNode.segment, nil
}

// findNearestTray locates the tray belonging to the nearest EdgeGroup
// ancestor of dock's current node, per minimize's "nearest tray on the
// ancestor path" rule.
func (d *Docker) findNearestTray(dock *Dock) *Node {
	if dock.group == nil {
		return nil
	}
	node := d.findNode(dock.group)
	if node == nil {
		return nil
	}
	for n := node.parent; n != nil; n = n.parent {
		if n.segment.Kind != EdgeGroupKind {
			continue
		}
		if n.left != nil && n.left.segment.Kind == TrayGroupKind {
			return n.left
		}
		if n.right != nil && n.right.segment.Kind == TrayGroupKind {
			return n.right
		}
	}
	return nil
}

// undock detaches dock from whatever group currently holds it (a no-op if
// already undocked) and consolidates from the old group's node immediately,
// so a dock moving between unrelated subtrees never leaves a stale empty
// group uncollapsed (SPEC_FULL.md's second resolved ambiguity note).
func (d *Docker) undock(dock *Dock) error {
	group := dock.group
	if group == nil {
		dock.state = Undocked
		return nil
	}
	node := d.findNode(group)
	if err := group.RemoveDock(dock); err != nil {
		return err
	}
	dock.state = Undocked
	if node != nil {
		d.consolidate(node)
	}
	return nil
}

// minimizeCore relocates dock into the nearest tray on its ancestor path
// and marks it minimized, without emitting. It returns the node dock was
// removed from (if any) so the caller can consolidate it. Floating docks
// are handled entirely by the public Minimize/Float operations, since a
// floating dock is never relocated away from its tray (spec §9, "floating
// purely as a state label").
func (d *Docker) minimizeCore(dock *Dock) (*Node, error) {
	if !dock.CanMinimize {
		return nil, newError(ErrCannotMinimize, "dock does not support minimization")
	}
	trayNode := d.findNearestTray(dock)
	if trayNode == nil {
		return nil, newError(ErrNoTrayOnPath, "no tray found on the dock's ancestor chain")
	}
	var oldNode *Node
	if dock.group != nil {
		oldNode = d.findNode(dock.group)
		if err := dock.group.RemoveDock(dock); err != nil {
			return nil, err
		}
	}
	trayNode.segment.AppendDock(dock)
	dock.state = Minimized
	return oldNode, nil
}

// Dock docks dock at the given anchor, undocking it first if it is
// already docked elsewhere. A "with" anchor does not insert dock into the
// tree at all: it routes to DockWith, which detaches and disposes dock; no
// dockable content is moved into the anchor dock (spec §4.3, "dock_with ...
// triggered when anchor.position == with").
func (d *Docker) Dock(dock *Dock, anchor Anchor, minimized bool) error {
	if anchor.Position == PositionWith {
		if anchor.RelativeTo == nil {
			return newError(ErrInvalidRootWith, "\"with\" anchor requires a relative-to dockable")
		}
		owner := anchor.RelativeTo.Owner()
		if owner == nil {
			return newError(ErrInvalidAnchor, "relative-to dockable has no owner")
		}
		return d.DockWith(dock, owner)
	}

	if dock.IsDocked() {
		if err := d.undock(dock); err != nil {
			return err
		}
	}

	var group *Segment
	if anchor.RelativeTo == nil {
		g, err := d.placeByPosition(dock, anchor.Position)
		if err != nil {
			return err
		}
		group = g
	} else {
		owner := anchor.RelativeTo.Owner()
		if owner == nil {
			return newError(ErrInvalidAnchor, "relative-to dockable has no owner")
		}
		relGroup := owner.Group()
		if relGroup == nil || relGroup.Kind != LayoutDockGroupKind {
			return newError(ErrInvalidAnchor, "relative-to dock's group is not a LayoutDockGroup")
		}
		required := anchor.Position.requiredOrientation()
		target := relGroup
		if relGroup.orientation != Undetermined && relGroup.orientation != required {
			node := d.findNode(relGroup)
			if node == nil {
				return newError(ErrInvalidAnchor, "relative-to dock's group is not reachable")
			}
			repartitioned, err := node.Repartition(owner, required)
			if err != nil {
				return err
			}
			target = repartitioned.segment
		}
		if err := target.AddDockAnchored(dock, owner, anchor.Position); err != nil {
			return err
		}
		group = target
	}

	dock.anchor = anchor
	dock.docker = d
	insertionNode := d.findNode(group)

	if minimized {
		oldNode, err := d.minimizeCore(dock)
		if err != nil {
			return err
		}
		if oldNode != nil {
			d.consolidate(oldNode)
		}
	} else {
		dock.state = Pinned
		d.consolidate(insertionNode)
	}

	d.refreshStretchToFill()
	d.emit(ReasonDocking)
	d.debugMutation("dock", dock, group.Kind)
	return nil
}

// Minimize moves dock to the nearest tray on its ancestor path, or, if
// dock is currently floating, simply flips its state back to minimized
// without relocating it (it never left its tray).
func (d *Docker) Minimize(dock *Dock) error {
	if dock.state == Floating {
		if !dock.CanMinimize {
			return newError(ErrCannotMinimize, "dock does not support minimization")
		}
		dock.state = Minimized
		d.emit(ReasonFloating)
		d.debugMutation("minimize", dock, TrayGroupKind)
		return nil
	}

	oldNode, err := d.minimizeCore(dock)
	if err != nil {
		return err
	}
	if oldNode != nil {
		d.consolidate(oldNode)
	}
	d.refreshStretchToFill()
	d.emit(ReasonDocking)
	d.debugMutation("minimize", dock, TrayGroupKind)
	return nil
}

// Pin restores dock to the pinned state, removing it from its tray first
// if it was minimized or floating.
func (d *Docker) Pin(dock *Dock) error {
	if dock.state == Minimized || dock.state == Floating {
		trayNode := d.findNode(dock.group)
		if dock.group != nil {
			if err := dock.group.RemoveDock(dock); err != nil {
				return err
			}
		}
		dock.state = Pinned
		if trayNode != nil {
			d.consolidate(trayNode)
		}
	} else {
		dock.state = Pinned
	}
	d.refreshStretchToFill()
	d.emit(ReasonDocking)
	d.debugMutation("pin", dock, CenterGroup)
	return nil
}

// Float moves a minimized dock to the floating state. It does not detach
// the dock from its tray placement (spec §9).
func (d *Docker) Float(dock *Dock) error {
	if dock.state != Minimized {
		return newError(ErrInvalidFloatSource, "float requires the dock to be minimized")
	}
	dock.state = Floating
	d.emit(ReasonFloating)
	d.debugMutation("float", dock, TrayGroupKind)
	return nil
}

// Close undocks and disposes dock.
func (d *Docker) Close(dock *Dock) error {
	if !dock.CanClose {
		return newError(ErrCannotClose, "dock does not support closing")
	}
	if err := d.undock(dock); err != nil {
		return err
	}
	dock.docker = nil
	d.refreshStretchToFill()
	d.emit(ReasonDocking)
	d.debugMutation("close", dock, CenterGroup)
	return nil
}

// Resize updates whichever of width/height is non-nil and differs from
// the dock's current value. It never fails; it is a no-op if nothing
// changed.
func (d *Docker) Resize(dock *Dock, width, height *float64) {
	changed := false
	if width != nil && *width != dock.Width {
		dock.Width = *width
		changed = true
	}
	if height != nil && *height != dock.Height {
		dock.Height = *height
		changed = true
	}
	if changed && dock.state == Pinned {
		d.emit(ReasonResize)
	}
	d.debugMutation("resize", dock, CenterGroup)
}

// DockWith merges dock into anchorDock's slot: dock must be closeable and
// anchorDock must belong to a LayoutDockGroup (a center-owned anchor is
// cannot-merge, resolving spec §9's open question). The actual dockable
// content migration is the caller's concern; this only detaches and
// disposes the incoming dock.
func (d *Docker) DockWith(dock *Dock, anchorDock *Dock) error {
	if !dock.CanClose {
		return newError(ErrCannotMerge, "incoming dock does not support closing")
	}
	if anchorDock.group == nil || anchorDock.group.Kind != LayoutDockGroupKind {
		return newError(ErrCannotMerge, "anchor dock is not a member of a LayoutDockGroup")
	}
	if err := d.undock(dock); err != nil {
		return err
	}
	dock.docker = nil
	d.refreshStretchToFill()
	d.emit(ReasonDocking)
	d.debugMutation("dock_with", dock, LayoutDockGroupKind)
	return nil
}

// Dispose recursively tears down the tree. Re-entrant disposal is a no-op.
func (d *Docker) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	disposeNode(d.root)
	d.root = nil
	d.center = nil
	d.edges = nil
}

func disposeNode(n *Node) {
	if n == nil {
		return
	}
	disposeNode(n.left)
	disposeNode(n.right)
	if n.segment.Kind == CenterGroup {
		for _, dock := range n.segment.docks {
			dock.docker = nil
			dock.group = nil
		}
	}
	n.segment.docks = nil
}
