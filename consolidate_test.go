package dockspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidate_EmptyEdgeCollapse(t *testing.T) {
	d := NewDocker()
	edgeNode := newNode(newEdgeGroup(d, EdgeLeft))
	trayNode := newNode(newTrayGroup(d, EdgeLeft))
	edgeNode.setLeft(trayNode)
	d.edges[EdgeLeft] = edgeNode

	parent := newNode(newLayoutGroup(d, Horizontal))
	sibling := newNode(newCenterGroup(d))
	parent.setLeft(edgeNode)
	parent.setRight(sibling)

	d.consolidate(edgeNode)

	assert.Nil(t, parent.left)
	assert.Nil(t, edgeNode.parent)
	_, ok := d.edges[EdgeLeft]
	assert.False(t, ok)
}

func TestConsolidate_CollapsibleLeaf(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Horizontal))
	empty := newNode(newLayoutDockGroup(d, Undetermined))
	sibling := newNode(newLayoutDockGroup(d, Undetermined))
	a := NewDock("a", "A")
	sibling.segment.AppendDock(a)
	parent.setLeft(empty)
	parent.setRight(sibling)

	d.consolidate(empty)

	// Removing the empty leaf leaves parent with a single leaf child
	// (sibling), which is then assimilated up into parent itself.
	require.True(t, parent.IsLeaf())
	assert.Equal(t, LayoutDockGroupKind, parent.segment.Kind)
	assert.Contains(t, parent.segment.docks, a)
}

func TestConsolidate_SimplifyChildren_MergesCompatibleLeaves(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Horizontal))
	left := newNode(newLayoutDockGroup(d, Undetermined))
	right := newNode(newLayoutDockGroup(d, Undetermined))
	a, b := NewDock("a", "A"), NewDock("b", "B")
	left.segment.AppendDock(a)
	right.segment.AppendDock(b)
	parent.setLeft(left)
	parent.setRight(right)

	d.consolidate(parent)

	// Merging the two leaves leaves parent with a single leaf child, which
	// consolidation then assimilates up into parent itself.
	require.True(t, parent.IsLeaf())
	assert.Equal(t, LayoutDockGroupKind, parent.segment.Kind)
	assert.ElementsMatch(t, []*Dock{a, b}, parent.segment.docks)
}

func TestConsolidate_SimplifyChildren_AssimilatesLoneChild(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Undetermined))
	lone := newNode(newLayoutDockGroup(d, Horizontal))
	a := NewDock("a", "A")
	lone.segment.AppendDock(a)
	parent.setLeft(lone)

	d.consolidate(parent)

	assert.True(t, parent.IsLeaf())
	assert.Equal(t, LayoutDockGroupKind, parent.segment.Kind)
	assert.Equal(t, Horizontal, parent.segment.Orientation())
	assert.Contains(t, parent.segment.docks, a)
}

func TestConsolidate_NeverOptimizesCenterGroup(t *testing.T) {
	d := NewDocker()
	next := d.consolidateStep(d.center)
	assert.Nil(t, next)
}

func TestConsolidate_NeverAssimilatesOrMergesAcrossEdgeBoundary(t *testing.T) {
	d := NewDocker()
	edgeNode := newNode(newEdgeGroup(d, EdgeTop))
	content := newNode(newLayoutDockGroup(d, Undetermined))
	content.segment.AppendDock(NewDock("a", "A"))
	edgeNode.setRight(content)

	next := d.consolidateStep(edgeNode)
	assert.Nil(t, next)
	assert.Same(t, content, edgeNode.right)
}

func TestConsolidate_NonReentrant(t *testing.T) {
	d := NewDocker()
	parent := newNode(newLayoutGroup(d, Horizontal))
	empty := newNode(newLayoutDockGroup(d, Undetermined))
	sibling := newNode(newLayoutDockGroup(d, Undetermined))
	sibling.segment.AppendDock(NewDock("a", "A"))
	parent.setLeft(empty)
	parent.setRight(sibling)

	d.consolidating = true
	d.consolidate(empty)
	d.consolidating = false

	assert.Same(t, empty, parent.left)
}
