// Package gridflow is a reference LayoutEngine implementation that renders
// a docker's layout as a nested text grid rather than to a terminal or
// cell buffer. It exists to make the traversal in the core package
// testable and demonstrable without a real renderer; it has no ANSI
// output and no input handling.
package gridflow

import (
	"fmt"
	"strings"

	"github.com/hollowline/dockspace"
)

// flow is this engine's Flow implementation: a direction plus the
// already-rendered cell strings placed into it so far.
type flow struct {
	direction dockspace.FlowDirection
	cells     []string
}

func (f *flow) Direction() dockspace.FlowDirection { return f.direction }
func (f *flow) IsHorizontal() bool                 { return f.direction.IsHorizontal() }
func (f *flow) IsVertical() bool                   { return f.direction.IsVertical() }

// Engine accumulates placements into a stack of nested flows and renders
// the finished tree into a single string.
type Engine struct {
	stack  []*flow
	result string
}

// New constructs an empty Engine.
func New() *Engine {
	return &Engine{}
}

// Result returns the last completed layout's rendered text.
func (e *Engine) Result() string {
	return e.result
}

func (e *Engine) StartLayout(root *dockspace.Segment) dockspace.Flow {
	return &flow{direction: directionFor(root.Orientation())}
}

func (e *Engine) PushFlow(f dockspace.Flow) {
	e.stack = append(e.stack, f.(*flow))
}

func (e *Engine) PopFlow() {
	if len(e.stack) > 0 {
		e.stack = e.stack[:len(e.stack)-1]
	}
}

func (e *Engine) EndLayout() {
	if len(e.stack) == 1 {
		e.result = render(e.stack[0])
	}
}

func (e *Engine) StartFlow(segment *dockspace.Segment) dockspace.Flow {
	return &flow{direction: directionFor(segment.Orientation())}
}

func (e *Engine) EndFlow() {
	if len(e.stack) == 0 {
		return
	}
	top := e.stack[len(e.stack)-1]
	rendered := render(top)
	if len(e.stack) > 1 {
		parent := e.stack[len(e.stack)-2]
		parent.cells = append(parent.cells, rendered)
	} else {
		e.result = rendered
	}
}

func (e *Engine) CurrentFlow() dockspace.Flow {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

func (e *Engine) PlaceDock(dock *dockspace.Dock) {
	e.place(fmt.Sprintf("[%s]", dock.ID))
}

func (e *Engine) PlaceTray(tray *dockspace.Segment) {
	e.place(fmt.Sprintf("<%s-tray:%d>", tray.Edge, len(tray.Docks())))
}

func (e *Engine) place(cell string) {
	if len(e.stack) == 0 {
		return
	}
	top := e.stack[len(e.stack)-1]
	top.cells = append(top.cells, cell)
}

func directionFor(o dockspace.Orientation) dockspace.FlowDirection {
	if o == dockspace.Vertical {
		return dockspace.TopToBottom
	}
	return dockspace.LeftToRight
}

func render(f *flow) string {
	sep := " "
	if f.IsVertical() {
		sep = "\n"
	}
	return strings.Join(f.cells, sep)
}
