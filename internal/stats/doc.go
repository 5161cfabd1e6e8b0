// Package stats provides a thread-safe record of run progress.
//
// # Overview
//
// The pipeline writes counters into a Store as rows are finalized; the
// interrupt path and the final debug log read them back as a Snapshot.
//
//	Writer (pipeline):           Reader (signal / app):
//	┌──────────────────┐        ┌───────────────────┐
//	│ row finalized    │        │ ctx.Done()        │
//	│      ↓           │        │      ↓            │
//	│ store.Update()   │───────→│ store.Snapshot()  │
//	└──────────────────┘ (mutex)└───────────────────┘
//
// # Concurrency Model
//
// Store uses a readers-writer lock. Update, Fail and Finish take the write
// lock; Snapshot takes the read lock and returns copies, so the width map
// and error in a snapshot are never shared with the store.
//
// # Error Semantics
//
// Fail keeps the counters and only records the error, so a read failure in
// the middle of a run still reports how far the run got.
//
// The zero Store is ready to use; Start resets it for a new run.
package stats
