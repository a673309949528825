package async

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/batch"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
	"github.com/fiscaldata/nf-extractor/internal/pipeline"
)

type pipelineFunc func(ctx context.Context, filename string, pdf []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult

func (f pipelineFunc) Process(ctx context.Context, filename string, pdf []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult {
	return f(ctx, filename, pdf, cancelled)
}

func instantPipe() pipelineFunc {
	return func(_ context.Context, filename string, _ []byte, _ pipeline.CancelCheck) fiscal.ProcessingResult {
		doc := fiscal.NewDocument(filename)
		doc.Status = constants.StatusCompleted
		return fiscal.ProcessingResult{Document: doc, Duration: time.Millisecond}
	}
}

func testItems(n int) []batch.Item {
	out := make([]batch.Item, n)
	for i := range out {
		out[i] = batch.Item{Filename: fmt.Sprintf("nota_%02d.pdf", i+1), Data: []byte("%PDF-1.4")}
	}
	return out
}

func waitDone(t *testing.T, run *Run) {
	t.Helper()
	select {
	case <-run.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("run did not finish in time")
	}
}

func TestSubmitRunsToCompletion(t *testing.T) {
	runner := NewRunner(instantPipe(), nil, WithWorkers(2))
	id := uuid.New()

	var gotDone atomic.Bool
	run := runner.Submit(id, "/notas/2026", testItems(4), func(res *fiscal.BatchResult, cancelled bool) {
		assert.Equal(t, 4, res.Succeeded)
		assert.False(t, cancelled)
		gotDone.Store(true)
	})
	waitDone(t, run)

	require.True(t, gotDone.Load())
	res := run.Result()
	require.NotNil(t, res)
	assert.Equal(t, 4, res.TotalFiles)
	assert.Equal(t, 4, res.Succeeded)
	assert.False(t, run.Cancelled())

	got, ok := runner.Get(id)
	require.True(t, ok)
	assert.Same(t, run, got)
}

func TestWatchReceivesUpdatesAndCloses(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})
	var first atomic.Bool
	pipe := pipelineFunc(func(_ context.Context, filename string, _ []byte, _ pipeline.CancelCheck) fiscal.ProcessingResult {
		if first.CompareAndSwap(false, true) {
			close(started)
			<-gate
		}
		doc := fiscal.NewDocument(filename)
		doc.Status = constants.StatusCompleted
		return fiscal.ProcessingResult{Document: doc}
	})
	runner := NewRunner(pipe, nil, WithWorkers(1))
	run := runner.Submit(uuid.New(), "upload", testItems(2), nil)

	// Subscribe while the first document is mid-pipeline; everything from
	// its fold onward must be delivered.
	<-started
	updates, stop := run.Watch()
	defer stop()
	close(gate)

	var seen []fiscal.ProgressUpdate
	for u := range updates {
		seen = append(seen, u)
	}
	waitDone(t, run)

	require.Len(t, seen, 3)
	assert.Equal(t, constants.StatusCompleted, seen[0].Status)
	assert.Equal(t, 1, seen[0].Current)
	assert.Equal(t, constants.StatusProcessing, seen[1].Status)
	last := seen[2]
	assert.Equal(t, constants.StatusCompleted, last.Status)
	assert.Equal(t, 2, last.Current)
	assert.Equal(t, 2, last.Total)
	assert.InDelta(t, 100.0, last.Percentage(), 0.0001)
}

func TestWatchAfterFinishIsClosed(t *testing.T) {
	runner := NewRunner(instantPipe(), nil)
	run := runner.Submit(uuid.New(), "upload", testItems(1), nil)
	waitDone(t, run)

	updates, stop := run.Watch()
	defer stop()
	_, open := <-updates
	assert.False(t, open)
}

func TestCancelMarksRemainingWork(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})
	var once atomic.Bool
	pipe := pipelineFunc(func(_ context.Context, filename string, _ []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult {
		if once.CompareAndSwap(false, true) {
			close(started)
			<-gate
		}
		doc := fiscal.NewDocument(filename)
		if cancelled() {
			doc.Status = constants.StatusCancelled
		} else {
			doc.Status = constants.StatusCompleted
		}
		return fiscal.ProcessingResult{Document: doc}
	})
	runner := NewRunner(pipe, nil, WithWorkers(1))
	id := uuid.New()

	var doneCancelled atomic.Bool
	run := runner.Submit(id, "upload", testItems(3), func(_ *fiscal.BatchResult, cancelled bool) {
		doneCancelled.Store(cancelled)
	})

	<-started
	assert.True(t, runner.Cancel(id))
	close(gate)
	waitDone(t, run)

	assert.True(t, doneCancelled.Load())
	assert.True(t, run.Cancelled())
	res := run.Result()
	require.NotNil(t, res)
	assert.Equal(t, 3, len(res.Results))
	assert.Equal(t, 3, res.Cancelled)
}

func TestCancelUnknownOrFinished(t *testing.T) {
	runner := NewRunner(instantPipe(), nil)
	assert.False(t, runner.Cancel(uuid.New()))

	id := uuid.New()
	run := runner.Submit(id, "upload", testItems(1), nil)
	waitDone(t, run)
	assert.False(t, runner.Cancel(id))
}

func TestRetentionEvictsFinishedRuns(t *testing.T) {
	runner := NewRunner(instantPipe(), nil, WithRetention(10*time.Millisecond))
	id := uuid.New()
	run := runner.Submit(id, "upload", testItems(1), nil)
	waitDone(t, run)

	assert.Eventually(t, func() bool {
		_, ok := runner.Get(id)
		return !ok
	}, 2*time.Second, 5*time.Millisecond)
}

func TestShutdownCancelsInFlight(t *testing.T) {
	gate := make(chan struct{})
	var entered atomic.Bool
	pipe := pipelineFunc(func(_ context.Context, filename string, _ []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult {
		if entered.CompareAndSwap(false, true) {
			<-gate
		}
		doc := fiscal.NewDocument(filename)
		if cancelled() {
			doc.Status = constants.StatusCancelled
		} else {
			doc.Status = constants.StatusCompleted
		}
		return fiscal.ProcessingResult{Document: doc}
	})
	runner := NewRunner(pipe, nil, WithWorkers(1))
	run := runner.Submit(uuid.New(), "upload", testItems(2), nil)

	assert.Eventually(t, func() bool { return entered.Load() }, 2*time.Second, time.Millisecond)

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(gate)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	runner.Shutdown(ctx)

	waitDone(t, run)
	res := run.Result()
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Cancelled)
}
