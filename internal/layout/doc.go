// Package layout implements a flexbox-style layout solver for terminal UIs.
//
// It supports row/column directions, justify and align modes, padding, border,
// margin, gap, min/max constraints, percentage and fixed dimensions, intrinsic
// sizing, display:none, and relative/absolute positioning. Types are re-exported
// through the root tui package.
//
// The entry point is [Calculate], a pure function from a [Layoutable] tree to a
// [Result] of absolute rectangles.
package layout
