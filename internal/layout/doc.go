// Package layout holds the data model shared by the row pipeline and the
// renderer: the closed set of output attributes, run options, rows, per
// column width statistics and frequency groups.
//
// Column widths are monotonic within a run. Table.OnWiden lets the renderer
// drop cached fragments that were rendered at a narrower width.
package layout
