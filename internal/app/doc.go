// Package app provides the orchestration layer for runetab.
//
// # Overview
//
// This package wires together configuration, input handling, styling, and the
// row pipeline. It is the composition root where every dependency of a run is
// initialized and connected.
//
// # Architecture
//
// Run follows a simple initialization pattern:
//
//  1. Load defaults from ~/.config/runetab/config.toml and merge flags over them
//  2. Parse the column format and validate theme and color mode
//  3. Open the input file, or stdin when the input is "-" or piped
//  4. Pick buffered or streaming output and the matching read chunk size
//  5. Launch the watcher goroutine for progress and interrupts
//  6. Decode, render and print until the input ends
//
// # Components
//
//   - app.go: Run, option merging and input selection
//   - watcher.go: background goroutine that logs progress and closes the input on interrupt
//   - legend.go: the legend and the column format listing
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read defaults
//	       ├─────> style.New()            Resolve color profile and theme
//	       ├─────> openInput()            File or stdin
//	       ├─────> StartWatcher()         Progress and interrupt handling
//	       ├─────> decode.New()           Byte stream to units
//	       └─────> pipeline.Writer.Write() Rows to stdout (blocks)
//
// # Buffering
//
// Named files are buffered by default so every column gets its final width
// before anything is printed. Stdin streams rows as soon as they are known,
// starting from default widths and widening as needed. Grouping always
// buffers.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file
//   - Unknown column, theme or color mode
//   - No input on an interactive terminal, or an input file that cannot be opened
//   - Output write failures
//
// Recoverable errors (logged, output completes):
//   - Read failures part way through the input
//   - Interrupts, which end the input and flush what was read
package app
