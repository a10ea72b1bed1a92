package dockspace

// visible reports whether n would contribute at least one placement.
func (n *Node) visible() bool {
	if n == nil {
		return false
	}
	switch n.segment.Kind {
	case TrayGroupKind:
		return len(n.segment.docks) > 0
	case CenterGroup, LayoutDockGroupKind:
		for _, dock := range n.segment.docks {
			if dock.state != Minimized {
				return true
			}
		}
		return false
	default:
		return n.left.visible() || n.right.visible()
	}
}

// effectiveOrientation is the orientation used to decide whether a new
// flow is needed: a dock group holding exactly one pinned dock is treated
// as undetermined, so a lone pinned dock never forces a nested flow.
func (n *Node) effectiveOrientation() Orientation {
	if n.segment.Kind.holdsDocks() {
		pinned := 0
		for _, dock := range n.segment.docks {
			if dock.state == Pinned {
				pinned++
			}
		}
		if pinned == 1 {
			return Undetermined
		}
	}
	return n.segment.orientation
}

// Layout walks the consolidated tree in direction-aware in-order,
// issuing start_layout/push_flow/.../end_layout calls against engine per
// spec §4.5.
func (d *Docker) Layout(engine LayoutEngine) {
	flow := engine.StartLayout(d.root.segment)
	engine.PushFlow(flow)
	d.walk(d.root, engine)
	engine.EndLayout()
}

func (d *Docker) walk(n *Node, engine LayoutEngine) {
	if n == nil || !n.visible() {
		return
	}

	current := engine.CurrentFlow()
	orientation := n.effectiveOrientation()
	needsFlow := orientation != Undetermined && orientationToDirection(orientation) != current.Direction()

	if needsFlow {
		flow := engine.StartFlow(n.segment)
		engine.PushFlow(flow)
		d.descend(n, engine)
		engine.EndFlow()
		engine.PopFlow()
		return
	}
	d.descend(n, engine)
}

func (d *Docker) descend(n *Node, engine LayoutEngine) {
	if n.segment.Kind.holdsDocks() {
		for _, dock := range n.segment.docks {
			if dock.state != Minimized {
				engine.PlaceDock(dock)
			}
		}
		return
	}

	for _, child := range []*Node{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.segment.Kind == TrayGroupKind {
			if len(child.segment.docks) > 0 {
				engine.PlaceTray(child.segment)
			}
			continue
		}
		d.walk(child, engine)
	}
}
