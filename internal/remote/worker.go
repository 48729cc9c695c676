package remote

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/miguel/internal/progress"
)

// DefaultQueueSize is the worker's pending-snapshot capacity.
const DefaultQueueSize = 16

// Worker forwards progress snapshots to a Mirror from a background
// goroutine so that gameplay never waits on the network.
type Worker struct {
	mirror *Mirror
	logger *zap.Logger

	mu      sync.Mutex
	queue   chan progress.DailyProgress
	closed  bool
	started bool
	dropped int
	done    chan struct{}
}

var _ progress.Notifier = (*Worker)(nil)

// NewWorker returns a worker with room for size pending snapshots.
func NewWorker(m *Mirror, size int, logger *zap.Logger) *Worker {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		mirror: m,
		logger: logger,
		queue:  make(chan progress.DailyProgress, size),
		done:   make(chan struct{}),
	}
}

// ProgressChanged enqueues p without blocking. When the queue is full the
// oldest pending snapshot is dropped; a later snapshot of the same day
// supersedes it.
func (w *Worker) ProgressChanged(p progress.DailyProgress) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || p.IsGuest() || !w.mirror.Enabled() {
		return
	}
	for {
		select {
		case w.queue <- p:
			return
		default:
		}
		select {
		case <-w.queue:
			w.dropped++
		default:
		}
	}
}

// Dropped returns how many snapshots were discarded on overflow.
func (w *Worker) Dropped() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropped
}

// Run drains the queue until Close is called or ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.mu.Lock()
	if w.started || w.closed {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()
	defer close(w.done)

	for {
		select {
		case p, ok := <-w.queue:
			if !ok {
				return
			}
			w.mirror.Sync(ctx, p)
		case <-ctx.Done():
			w.logger.Debug("sync worker stopped", zap.Error(ctx.Err()))
			return
		}
	}
}

// Close stops accepting snapshots and syncs whatever is still queued.
func (w *Worker) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.queue)
	started := w.started
	w.mu.Unlock()

	if started {
		<-w.done
		return
	}
	for p := range w.queue {
		w.mirror.Sync(context.Background(), p)
	}
}
