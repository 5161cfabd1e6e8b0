// Package pipeline drives a run: it folds decoded units into rows, keeps
// column widths current and prints through a render.Renderer.
//
// Streaming runs print each row as soon as it is final, starting from the
// default column widths. Buffered runs hold every row and print once the
// widths are exact. Grouping is always buffered.
package pipeline
