package main

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// heapWatchInterval is the interval at which a [heapWatcher] samples the
// runtime memory statistics.
const heapWatchInterval = 100 * time.Millisecond

// heapWatcher samples the runtime heap over its lifetime and retains the
// peak allocation size it observed.
type heapWatcher struct {
	peakAlloc atomic.Uint64
	stopChan  chan struct{}
}

// newHeapWatcher returns a pointer to a new [heapWatcher]. The sampling is
// started and needs to be ended with e.g. a deferred [heapWatcher.Stop] call
// before program exit.
func newHeapWatcher(ctx context.Context) *heapWatcher {
	watcher := &heapWatcher{
		stopChan: make(chan struct{}),
	}
	go watcher.watch(ctx)

	return watcher
}

// PeakAlloc returns the peak recorded heap allocation size.
func (w *heapWatcher) PeakAlloc() uint64 {
	return w.peakAlloc.Load()
}

// Stop ends the heap sampling and logs the peak allocation size observed
// over the watcher's lifetime. It is usually called at the end of a
// program's lifetime.
func (w *heapWatcher) Stop() {
	close(w.stopChan)
	slog.Info("Memory consumption peaked at:", "peakAlloc", humanize.IBytes(w.PeakAlloc()))
}

// watch is the principal method sampling [runtime.MemStats] every
// [heapWatchInterval].
func (w *heapWatcher) watch(ctx context.Context) {
	ticker := time.NewTicker(heapWatchInterval)
	defer ticker.Stop()

	var stats runtime.MemStats

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			runtime.ReadMemStats(&stats)

			if stats.Alloc > w.peakAlloc.Load() {
				w.peakAlloc.Store(stats.Alloc)
			}
		}
	}
}
