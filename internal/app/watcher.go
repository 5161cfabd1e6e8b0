package app

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/five82/runetab/internal/stats"
)

// StartWatcher launches a background goroutine that reports run progress
// every interval and closes input when ctx is cancelled, so a blocked read
// returns and the table is flushed. A non-positive interval only watches for
// cancellation. The returned stop function ends the goroutine.
func StartWatcher(ctx context.Context, store *stats.Store, input io.Closer, interval time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		var tick <-chan time.Time
		if interval > 0 {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				slog.Info("interrupted", "progress", store.Snapshot().String())
				if err := input.Close(); err != nil {
					slog.Debug("close input failed", "error", err)
				}
				return
			case <-tick:
				report(store)
			}
		}
	}()
	return sync.OnceFunc(func() { close(done) })
}

func report(store *stats.Store) {
	snap := store.Snapshot()
	if snap.Done {
		return
	}
	attrs := []any{"progress", snap.String()}
	if snap.LastError != nil {
		attrs = append(attrs, "error", snap.LastError)
	}
	for _, name := range slices.Sorted(maps.Keys(snap.Widths)) {
		attrs = append(attrs, "width_"+name, snap.Widths[name])
	}
	slog.Info("dump progress", attrs...)
}
