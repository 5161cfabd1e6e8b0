package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/runetab/internal/stats"
)

type closeRecorder struct {
	closed atomic.Int32
}

func (c *closeRecorder) Close() error {
	c.closed.Add(1)
	return nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestWatcherClosesInputOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := &stats.Store{}
	store.Start()
	input := &closeRecorder{}

	stop := StartWatcher(ctx, store, input, 0)
	defer stop()

	cancel()
	waitFor(t, func() bool { return input.closed.Load() == 1 })
}

func TestWatcherStopLeavesInputOpen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := &stats.Store{}
	store.Start()
	input := &closeRecorder{}

	stop := StartWatcher(ctx, store, input, time.Millisecond)
	store.Update(10, 5, 2, map[string]int{"name": 16})
	time.Sleep(10 * time.Millisecond)
	stop()
	stop()
	cancel()
	time.Sleep(10 * time.Millisecond)

	if n := input.closed.Load(); n != 0 {
		t.Fatalf("input closed %d times after stop, want 0", n)
	}
}
