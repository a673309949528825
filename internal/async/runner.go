// Package async runs extraction batches in the background and tracks them
// until completion so callers can watch progress or request cancellation.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fiscaldata/nf-extractor/internal/batch"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

const (
	watchBuffer = 16
	// Finished runs stay in the registry this long so late watchers still
	// get a terminal answer before falling back to the database.
	defaultRetention = 5 * time.Minute
)

// DoneFunc receives the finished aggregate and whether cancellation was
// requested. It runs on the batch goroutine, after the last fold and before
// watcher channels close.
type DoneFunc func(result *fiscal.BatchResult, cancelled bool)

// Run is one tracked batch execution.
type Run struct {
	ID     uuid.UUID
	Source string

	proc *batch.Processor
	done chan struct{}

	mu       sync.Mutex
	watchers map[int]chan fiscal.ProgressUpdate
	nextID   int
	result   *fiscal.BatchResult
}

// Done is closed once the run has finished and its result is readable.
func (r *Run) Done() <-chan struct{} { return r.done }

// Result returns the aggregate, or nil while the run is still going.
func (r *Run) Result() *fiscal.BatchResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// Cancelled reports whether cancellation was requested for this run.
func (r *Run) Cancelled() bool { return r.proc.IsCancelled() }

// Watch subscribes to progress updates. The channel closes when the run
// finishes; the stop function releases the subscription and is safe to call
// after close. Updates to a full channel are dropped, never blocked on.
func (r *Run) Watch() (<-chan fiscal.ProgressUpdate, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan fiscal.ProgressUpdate, watchBuffer)
	if r.result != nil {
		close(ch)
		return ch, func() {}
	}
	id := r.nextID
	r.nextID++
	r.watchers[id] = ch

	stop := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.watchers, id)
	}
	return ch, stop
}

func (r *Run) broadcast(u fiscal.ProgressUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.watchers {
		select {
		case ch <- u:
		default:
		}
	}
}

func (r *Run) finish(res *fiscal.BatchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result = res
	for _, ch := range r.watchers {
		close(ch)
	}
	r.watchers = make(map[int]chan fiscal.ProgressUpdate)
	close(r.done)
}

// Runner launches batches over a shared pipeline, one worker pool per run.
type Runner struct {
	pipe       batch.Pipeline
	logger     *slog.Logger
	workers    int
	runTimeout time.Duration
	retention  time.Duration

	mu   sync.Mutex
	runs map[uuid.UUID]*Run
	wg   sync.WaitGroup
}

type Option func(*Runner)

// WithWorkers sets the per-run pool width.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithRunTimeout bounds a single run; 0 means no bound. On expiry in-flight
// pipeline steps are cut and their documents fold as failed.
func WithRunTimeout(d time.Duration) Option {
	return func(r *Runner) { r.runTimeout = d }
}

// WithRetention sets how long finished runs stay visible to Get.
func WithRetention(d time.Duration) Option {
	return func(r *Runner) { r.retention = d }
}

func NewRunner(pipe batch.Pipeline, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		pipe:      pipe,
		logger:    logger,
		workers:   batch.DefaultWorkers,
		retention: defaultRetention,
		runs:      make(map[uuid.UUID]*Run),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Submit registers and starts a run under the given id, normally the
// persisted batch row id. onDone fires once, after the last fold; watchers
// are released only after it returns, so a watcher that sees the channel
// close can immediately read consistent state from storage.
func (r *Runner) Submit(id uuid.UUID, source string, items []batch.Item, onDone DoneFunc) *Run {
	run := &Run{
		ID:       id,
		Source:   source,
		done:     make(chan struct{}),
		watchers: make(map[int]chan fiscal.ProgressUpdate),
	}
	run.proc = batch.NewProcessor(r.pipe, r.logger,
		batch.WithWorkers(r.workers),
		batch.WithProgress(run.broadcast),
	)

	r.mu.Lock()
	r.runs[id] = run
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx := context.Background()
		if r.runTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.runTimeout)
			defer cancel()
		}

		res := run.proc.Run(ctx, items)
		if onDone != nil {
			onDone(res, run.proc.IsCancelled())
		}
		run.finish(res)

		time.AfterFunc(r.retention, func() {
			r.mu.Lock()
			delete(r.runs, id)
			r.mu.Unlock()
		})
	}()
	return run
}

// Get returns a tracked run, live or recently finished.
func (r *Runner) Get(id uuid.UUID) (*Run, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	return run, ok
}

// Cancel flips the cancel flag on a running batch and reports whether it was
// still in flight.
func (r *Runner) Cancel(id uuid.UUID) bool {
	r.mu.Lock()
	run, ok := r.runs[id]
	r.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case <-run.done:
		return false
	default:
	}
	run.proc.Cancel()
	return true
}

// Shutdown cancels every in-flight run and waits for them to drain, up to
// the context deadline.
func (r *Runner) Shutdown(ctx context.Context) {
	r.mu.Lock()
	for _, run := range r.runs {
		select {
		case <-run.done:
		default:
			run.proc.Cancel()
		}
	}
	r.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		r.logger.Info("async.shutdown.done")
	case <-ctx.Done():
		r.logger.Warn("async.shutdown.timeout")
	}
}
