// Package layout computes on-screen geometry for a tree of terminal UI
// nodes. Given a root node and an available viewport (in character
// cells), it recursively assigns every descendant an x/y/width/height
// rectangle.
//
// Nodes live in a flat arena ([Tree]) keyed by [NodeID]. Each node
// declares a display mode selecting the algorithm that lays out its
// children (block stacking, single-axis flex distribution, or two-axis
// grid placement) and a position mode adjusting its own rectangle after
// placement (static/relative/absolute/fixed/sticky).
//
// The main entry point is [Compute]. The per-algorithm functions
// [ComputeBlock], [ComputeFlex] and [ComputeGrid] are independently
// callable, as is the [ApplyPosition] post-pass.
//
// All geometry uses unsigned 16-bit cell coordinates with saturating
// arithmetic: malformed or degenerate configuration collapses to
// minimal rectangles instead of failing. Missing node ids are skipped
// silently. Recursion depth equals tree depth and is unguarded.
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'celltui.layout'.
func tracer() tracing.Trace {
	return tracing.Select("celltui.layout")
}
