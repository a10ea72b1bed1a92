package dockspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_AddChildLeft_EmptySlot(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Undetermined))
	child := newNode(newLayoutDockGroup(d, Undetermined))

	require.NoError(t, parent.AddChildLeft(child, Horizontal))
	assert.Same(t, child, parent.left)
	assert.Same(t, parent, child.parent)
}

func TestNode_AddChildLeft_SwapsWhenLeftOccupied(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Undetermined))
	existing := newNode(newLayoutDockGroup(d, Undetermined))
	parent.setLeft(existing)

	newChild := newNode(newLayoutDockGroup(d, Undetermined))
	require.NoError(t, parent.AddChildLeft(newChild, Horizontal))

	assert.Same(t, newChild, parent.left)
	assert.Same(t, existing, parent.right)
	assert.Equal(t, Horizontal, parent.segment.Orientation())
}

func TestNode_AddChildLeft_PromotesLeafOnlySegment(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutDockGroup(d, Undetermined))
	child := newNode(newLayoutDockGroup(d, Undetermined))

	require.NoError(t, parent.AddChildLeft(child, Horizontal))

	assert.Equal(t, LayoutGroupKind, parent.segment.Kind)
	require.NotNil(t, parent.left)
	require.NotNil(t, parent.right)
}

func TestNode_AddChildLeft_CenterGroupCannotPromote(t *testing.T) {
	d := NewDocker()
	parent := newNode(newCenterGroup(d))
	child := newNode(newLayoutDockGroup(d, Undetermined))

	err := parent.AddChildLeft(child, Horizontal)
	require.Error(t, err)
	assert.Equal(t, ErrCenterMustBeLeaf, err.(*Error).Kind)
}

func TestNode_AddChildBefore_FreeSlot(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Undetermined))
	sibling := newNode(newLayoutDockGroup(d, Undetermined))
	parent.setLeft(sibling)

	child := newNode(newLayoutDockGroup(d, Undetermined))
	require.NoError(t, parent.AddChildBefore(child, sibling, Horizontal))

	assert.Same(t, child, parent.left)
	assert.Same(t, sibling, parent.right)
}

func TestNode_AddChildAfter_BothOccupiedGrowsSubtree(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Horizontal))
	sibling := newNode(newLayoutDockGroup(d, Undetermined))
	other := newNode(newLayoutDockGroup(d, Undetermined))
	parent.setLeft(sibling)
	parent.setRight(other)

	child := newNode(newLayoutDockGroup(d, Undetermined))
	require.NoError(t, parent.AddChildAfter(child, sibling, Horizontal))

	assert.Same(t, other, parent.right)
	require.NotNil(t, parent.left)
	assert.Equal(t, LayoutGroupKind, parent.left.segment.Kind)
	assert.Same(t, sibling, parent.left.left)
	assert.Same(t, child, parent.left.right)
}

func TestNode_AddChildBefore_InvalidSibling(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Undetermined))
	notAChild := newNode(newLayoutDockGroup(d, Undetermined))
	child := newNode(newLayoutDockGroup(d, Undetermined))

	err := parent.AddChildBefore(child, notAChild, Horizontal)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidSibling, err.(*Error).Kind)
}

func TestNode_RemoveChild_ResetsOrientationExceptEdgeGroup(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Horizontal))
	left := newNode(newLayoutDockGroup(d, Undetermined))
	right := newNode(newLayoutDockGroup(d, Undetermined))
	parent.setLeft(left)
	parent.setRight(right)

	require.NoError(t, parent.RemoveChild(right))
	assert.Equal(t, Undetermined, parent.segment.Orientation())
	assert.Nil(t, parent.right)
	assert.Nil(t, right.parent)

	edgeNode := newNode(newEdgeGroup(d, EdgeLeft))
	trayNode := newNode(newTrayGroup(d, EdgeLeft))
	content := newNode(newLayoutDockGroup(d, Undetermined))
	edgeNode.setLeft(trayNode)
	edgeNode.setRight(content)

	require.NoError(t, edgeNode.RemoveChild(content))
	assert.Equal(t, Horizontal, edgeNode.segment.Orientation())
}

func TestNode_RemoveChild_CenterNotRemovable(t *testing.T) {
	d := NewDocker()
	err := d.center.parent.RemoveChild(d.center)
	require.Error(t, err)
	assert.Equal(t, ErrCenterNotRemovable, err.(*Error).Kind)
}

func TestNode_AssimilateChild_MigratesDocks(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Undetermined))
	dockGroupNode := newNode(newLayoutDockGroup(d, Horizontal))
	dock := NewDock("a", "A")
	dockGroupNode.segment.AppendDock(dock)
	parent.setLeft(dockGroupNode)

	require.NoError(t, parent.AssimilateChild(dockGroupNode))
	assert.Equal(t, LayoutDockGroupKind, parent.segment.Kind)
	assert.Equal(t, Horizontal, parent.segment.Orientation())
	require.Len(t, parent.segment.docks, 1)
	assert.Same(t, dock, parent.segment.docks[0])
	assert.Same(t, parent.segment, dock.group)
	assert.True(t, parent.IsLeaf())
}

func TestNode_AssimilateChild_RejectsEdgeGroupParent(t *testing.T) {
	d := NewDocker()
	edgeNode := newNode(newEdgeGroup(d, EdgeLeft))
	trayNode := newNode(newTrayGroup(d, EdgeLeft))
	edgeNode.setLeft(trayNode)

	err := edgeNode.AssimilateChild(trayNode)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidAssimilation, err.(*Error).Kind)
}

func TestNode_MergeLeafParts_MigratesAndRemovesRight(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Horizontal))
	left := newNode(newLayoutDockGroup(d, Undetermined))
	right := newNode(newLayoutDockGroup(d, Undetermined))
	a, b := NewDock("a", "A"), NewDock("b", "B")
	left.segment.AppendDock(a)
	right.segment.AppendDock(b)
	parent.setLeft(left)
	parent.setRight(right)

	require.NoError(t, parent.MergeLeafParts())
	assert.Nil(t, parent.right)
	require.Len(t, left.segment.docks, 2)
	assert.Equal(t, Horizontal, left.segment.Orientation())
	assert.Same(t, left.segment, b.group)
}

func TestNode_Repartition_SplitsAroundRelative(t *testing.T) {
	d := NewDocker()
	node := newNode(newLayoutDockGroup(d, Horizontal))
	a, c := NewDock("a", "A"), NewDock("c", "C")
	node.segment.AppendDock(a)
	node.segment.AppendDock(c)

	relNode, err := node.Repartition(a, Vertical)
	require.NoError(t, err)

	assert.Equal(t, LayoutDockGroupKind, relNode.segment.Kind)
	assert.Equal(t, Vertical, relNode.segment.Orientation())
	require.Len(t, relNode.segment.docks, 1)
	assert.Same(t, a, relNode.segment.docks[0])

	assert.Equal(t, LayoutGroupKind, node.segment.Kind)
	flattened := node.Flatten()
	require.Len(t, flattened, 2)
	assert.Same(t, relNode.segment, flattened[0])
}
