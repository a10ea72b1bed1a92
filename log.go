package dockspace

import "github.com/rs/zerolog"

// debugMutation emits a structured debug-level event for a tree mutation,
// carrying the operation name, the dock id involved (if any), and the
// segment kind touched. Logging is entirely opt-in: a Docker with no
// logger attached (the zero value) is a silent no-op, matching the
// reference codebase's opt-in debug logger but replacing its hand-rolled
// file writer with a structured leveled logger.
func (d *Docker) debugMutation(op string, dock *Dock, kind SegmentKind) {
	if d.logger == nil {
		return
	}
	ev := d.logger.Debug().Str("op", op).Str("segment_kind", kind.String())
	if dock != nil {
		ev = ev.Str("dock_id", dock.ID)
	}
	ev.Msg("dockspace: mutation")
}

// debugEdge emits a structured debug-level event for edge creation/collapse.
func (d *Docker) debugEdge(op string, edge Edge) {
	if d.logger == nil {
		return
	}
	d.logger.Debug().Str("op", op).Str("edge", edge.String()).Msg("dockspace: edge")
}

// debugConsolidate emits a structured debug-level event for a single
// consolidation step.
func (d *Docker) debugConsolidate(step string, seg *Segment) {
	if d.logger == nil {
		return
	}
	d.logger.Debug().
		Str("step", step).
		Int64("segment_id", seg.DebugID()).
		Str("segment_kind", seg.Kind.String()).
		Msg("dockspace: consolidate")
}

// WithLogger is a functional option attaching a zerolog.Logger to a
// Docker. Without this option, all logging calls are no-ops.
func WithLogger(logger zerolog.Logger) DockerOption {
	return func(d *Docker) {
		d.logger = &logger
	}
}
