package dockspace

import "fmt"

// ErrorKind classifies the precondition violations the docker and tree can
// report to callers. Each value maps to exactly one failure path documented
// in the specification's error handling design.
type ErrorKind int

const (
	// ErrInvalidAnchor covers a relative-to dockable that is nil where
	// required, whose owner is not a dock, or whose group is not a
	// LayoutDockGroup.
	ErrInvalidAnchor ErrorKind = iota
	// ErrInvalidRootWith is returned when a "with" anchor has no
	// relative-to dockable.
	ErrInvalidRootWith
	// ErrCannotMinimize is returned when a dock's capabilities forbid
	// minimization.
	ErrCannotMinimize
	// ErrCannotClose is returned when a dock's capabilities forbid
	// closing.
	ErrCannotClose
	// ErrCannotMerge is returned when dock_with targets an ineligible
	// dock.
	ErrCannotMerge
	// ErrInvalidFloatSource is returned when float is requested from a
	// non-minimized state.
	ErrInvalidFloatSource
	// ErrCenterNotRemovable is returned when removal of the CenterGroup
	// node is attempted.
	ErrCenterNotRemovable
	// ErrFixedProperty is returned when a variant-immutable property is
	// assigned.
	ErrFixedProperty
	// ErrInvalidAssimilation is returned when assimilate_child's
	// preconditions are violated.
	ErrInvalidAssimilation
	// ErrMergeInvalid is returned when merge_leaf_parts' preconditions
	// are violated.
	ErrMergeInvalid
	// ErrCenterMustBeLeaf is returned when a CenterGroup node is about to
	// be promoted to an internal node.
	ErrCenterMustBeLeaf
	// ErrAnchorNotInGroup is returned when an anchor's relative-to dock
	// cannot be found in the target group.
	ErrAnchorNotInGroup
	// ErrNotInGroup is returned when removing a dock that is not a
	// member of the group it is removed from.
	ErrNotInGroup
	// ErrNotAChild is returned when remove_child targets a node that is
	// not actually a child.
	ErrNotAChild
	// ErrInvalidSibling is returned when add_child_before/after is given
	// a sibling that is not a direct child.
	ErrInvalidSibling
	// ErrNoTrayOnPath is returned when minimize cannot find a tray on
	// the ancestor chain.
	ErrNoTrayOnPath
	// ErrUnsupportedOperation is returned for operations a variant does
	// not support, e.g. adding an anchored dock to a TrayGroup.
	ErrUnsupportedOperation
)

var errorKindNames = map[ErrorKind]string{
	ErrInvalidAnchor:        "invalid-anchor",
	ErrInvalidRootWith:      "invalid-root-with",
	ErrCannotMinimize:       "cannot-minimize",
	ErrCannotClose:          "cannot-close",
	ErrCannotMerge:          "cannot-merge",
	ErrInvalidFloatSource:   "invalid-float-source",
	ErrCenterNotRemovable:   "center-not-removable",
	ErrFixedProperty:        "fixed-property",
	ErrInvalidAssimilation:  "invalid-assimilation",
	ErrMergeInvalid:         "merge-invalid",
	ErrCenterMustBeLeaf:     "center-must-be-leaf",
	ErrAnchorNotInGroup:     "anchor-not-in-group",
	ErrNotInGroup:           "not-in-group",
	ErrNotAChild:            "not-a-child",
	ErrInvalidSibling:       "invalid-sibling",
	ErrNoTrayOnPath:         "no-tray-on-path",
	ErrUnsupportedOperation: "unsupported-operation",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown-error"
}

// Error is the typed error every docking-engine precondition violation is
// reported as. Callers can compare Kind directly, or use errors.Is against
// any *Error carrying the wanted Kind (see Is).
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, &dockspace.Error{Kind: dockspace.ErrInvalidAnchor}) works as a kind
// check without needing the message to match.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// newError constructs a *Error with a formatted message.
func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
