package dockspace

import (
	"fmt"
	"strings"
)

// DumpWorkspace writes a depth-indented textual listing of the whole tree
// to w. The exact text is not a stable contract (spec §6).
func (d *Docker) DumpWorkspace(w *strings.Builder) {
	if d.root == nil {
		w.WriteString("<disposed>\n")
		return
	}
	d.root.Dump(w, 0)
}

// Dump writes n and its descendants, one line per node, indented by depth.
func (n *Node) Dump(w *strings.Builder, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	seg := n.segment
	fmt.Fprintf(w, "%s#%d %s orientation=%s stretch=%v", indent, seg.DebugID(), seg.Kind, seg.orientation, seg.stretchToFill)
	if seg.Kind == EdgeGroupKind || seg.Kind == TrayGroupKind {
		fmt.Fprintf(w, " edge=%s", seg.Edge)
	}
	if seg.Kind.holdsDocks() {
		ids := make([]string, len(seg.docks))
		for i, dock := range seg.docks {
			ids[i] = fmt.Sprintf("%s(%s)", dock.ID, dock.state)
		}
		fmt.Fprintf(w, " docks=[%s]", strings.Join(ids, ", "))
	}
	w.WriteString("\n")
	n.left.Dump(w, depth+1)
	n.right.Dump(w, depth+1)
}
