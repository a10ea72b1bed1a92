package dockspace

// Dock-group operations mutate a Segment's ordered dock list in place.
// They only apply to the three dock-holding variants (CenterGroup,
// TrayGroup, LayoutDockGroup); callers are expected to have already
// checked Kind.holdsDocks() via the anchor-resolution logic in docker.go.

// indexOf returns the position of d in the segment's ordered list, or -1.
func (s *Segment) indexOf(d *Dock) int {
	for i, existing := range s.docks {
		if existing == d {
			return i
		}
	}
	return -1
}

// AppendDock adds d to the end of the segment's ordered list with no
// anchor math, used for plain edge/center placement where there is no
// relative dock to compute a position against.
func (s *Segment) AppendDock(d *Dock) {
	s.docks = append(s.docks, d)
	d.group = s
}

// AddDockAnchored inserts d into the group anchored relative to
// relativeTo, per position's required orientation, index math, and
// dimension halving (spec §4.6). If the group holds at most one dock
// already, its orientation is redefined to match; otherwise the caller
// (Docker.Dock) is responsible for having repartitioned the group first
// so the orientations already agree.
func (s *Segment) AddDockAnchored(d *Dock, relativeTo *Dock, position Position) error {
	if s.Kind != LayoutDockGroupKind {
		return newError(ErrUnsupportedOperation, "docks in a %s have no relative position", s.Kind)
	}
	idx := s.indexOf(relativeTo)
	if idx == -1 {
		return newError(ErrAnchorNotInGroup, "relative dock is not a member of this group")
	}

	if len(s.docks) <= 1 {
		s.orientation = position.requiredOrientation()
	}

	var insertAt int
	switch position {
	case PositionLeft, PositionTop:
		insertAt = idx - 1
		if insertAt < 0 {
			insertAt = 0
		}
	default:
		insertAt = idx + 1
	}

	switch s.orientation {
	case Horizontal:
		half := relativeTo.Width / 2
		relativeTo.Width = half
		d.Width = half
		d.Height = relativeTo.Height
	case Vertical:
		half := relativeTo.Height / 2
		relativeTo.Height = half
		d.Height = half
		d.Width = relativeTo.Width
	}

	s.docks = append(s.docks, nil)
	copy(s.docks[insertAt+1:], s.docks[insertAt:])
	s.docks[insertAt] = d
	d.group = s
	return nil
}

// RemoveDock removes d from the segment's ordered list. Removing the last
// dock of a LayoutDockGroup resets its orientation to undetermined. Fails
// with not-in-group if d is not a member.
func (s *Segment) RemoveDock(d *Dock) error {
	idx := s.indexOf(d)
	if idx == -1 {
		return newError(ErrNotInGroup, "dock is not a member of this group")
	}
	s.docks = append(s.docks[:idx], s.docks[idx+1:]...)
	if len(s.docks) == 0 && s.Kind == LayoutDockGroupKind {
		s.orientation = Undetermined
	}
	if d.group == s {
		d.group = nil
	}
	return nil
}

// split partitions the segment's ordered list around relativeTo into
// (before, relative-only, after) sublists, used by Node.Repartition to
// build the three-way tree restructuring. The segment itself is left with
// an empty dock list; callers are responsible for installing the returned
// sublists into new segments.
func (s *Segment) split(relativeTo *Dock) (before []*Dock, after []*Dock, err error) {
	idx := s.indexOf(relativeTo)
	if idx == -1 {
		return nil, nil, newError(ErrAnchorNotInGroup, "relative dock is not a member of this group")
	}
	before = append([]*Dock(nil), s.docks[:idx]...)
	after = append([]*Dock(nil), s.docks[idx+1:]...)
	s.docks = nil
	return before, after, nil
}
