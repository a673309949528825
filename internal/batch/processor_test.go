package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
	"github.com/fiscaldata/nf-extractor/internal/pipeline"
)

// pipelineFunc adapts a closure to the Pipeline interface.
type pipelineFunc func(ctx context.Context, filename string, pdf []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult

func (f pipelineFunc) Process(ctx context.Context, filename string, pdf []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult {
	return f(ctx, filename, pdf, cancelled)
}

func resultWith(filename string, status constants.ProcessingStatus) fiscal.ProcessingResult {
	doc := fiscal.NewDocument(filename)
	doc.Status = status
	return fiscal.ProcessingResult{Document: doc, Duration: time.Millisecond}
}

func completes(filename string) fiscal.ProcessingResult {
	return resultWith(filename, constants.StatusCompleted)
}

func items(n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{Filename: fmt.Sprintf("nota_%02d.pdf", i+1), Data: []byte("%PDF-1.4")}
	}
	return out
}

func TestWorkerClamp(t *testing.T) {
	fake := pipelineFunc(func(_ context.Context, filename string, _ []byte, _ pipeline.CancelCheck) fiscal.ProcessingResult {
		return completes(filename)
	})

	tests := []struct {
		name string
		opts []Option
		want int
	}{
		{name: "default", opts: nil, want: DefaultWorkers},
		{name: "below minimum", opts: []Option{WithWorkers(0)}, want: MinWorkers},
		{name: "above maximum", opts: []Option{WithWorkers(25)}, want: MaxWorkers},
		{name: "in range", opts: []Option{WithWorkers(7)}, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(fake, nil, tt.opts...)
			assert.Equal(t, tt.want, p.workers)
		})
	}
}

func TestRunAllComplete(t *testing.T) {
	fake := pipelineFunc(func(_ context.Context, filename string, _ []byte, _ pipeline.CancelCheck) fiscal.ProcessingResult {
		return completes(filename)
	})
	p := NewProcessor(fake, nil, WithWorkers(2))

	batch := p.Run(context.Background(), items(5))

	assert.Equal(t, 5, batch.TotalFiles)
	assert.Len(t, batch.Results, 5)
	assert.Equal(t, 5, batch.Succeeded)
	assert.Zero(t, batch.Failed)
	assert.Zero(t, batch.Cancelled)
	assert.False(t, batch.FinishedAt.IsZero())
	assert.InDelta(t, 1.0, batch.SuccessRate(), 0.0001)
}

func TestRunEmpty(t *testing.T) {
	p := NewProcessor(nil, nil)

	batch := p.Run(context.Background(), nil)

	assert.Zero(t, batch.TotalFiles)
	assert.Empty(t, batch.Results)
	assert.False(t, batch.FinishedAt.IsZero())
}

func TestRunCountsFailures(t *testing.T) {
	fake := pipelineFunc(func(_ context.Context, filename string, _ []byte, _ pipeline.CancelCheck) fiscal.ProcessingResult {
		if filename == "nota_02.pdf" {
			res := resultWith(filename, constants.StatusError)
			res.Document.ErrorMessage = "ocr produced no text"
			return res
		}
		return completes(filename)
	})
	p := NewProcessor(fake, nil, WithWorkers(1))

	batch := p.Run(context.Background(), items(3))

	assert.Equal(t, 2, batch.Succeeded)
	assert.Equal(t, 1, batch.Failed)
	assert.Len(t, batch.Results, 3)
}

func TestRunCancelAfterFirstCompletion(t *testing.T) {
	// Both workers pick up a file; the first one's completion callback
	// cancels the batch. The file mid-flight behind the gate must fold as
	// cancelled, and the three queued files must never run.
	gate := make(chan struct{})
	var barrier sync.WaitGroup
	barrier.Add(2)
	var mu sync.Mutex
	var ran []string

	fake := pipelineFunc(func(_ context.Context, filename string, _ []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult {
		mu.Lock()
		ran = append(ran, filename)
		mu.Unlock()

		barrier.Done()
		barrier.Wait()
		if filename != "nota_01.pdf" {
			<-gate
		}
		return completes(filename)
	})

	var p *Processor
	p = NewProcessor(fake, nil, WithWorkers(2), WithProgress(func(u fiscal.ProgressUpdate) {
		if u.Status == constants.StatusCompleted {
			p.Cancel()
			close(gate)
		}
	}))

	batch := p.Run(context.Background(), items(5))

	assert.Equal(t, 5, batch.TotalFiles)
	assert.Len(t, batch.Results, 5)
	assert.Equal(t, 1, batch.Succeeded)
	assert.Equal(t, 4, batch.Cancelled)
	assert.Zero(t, batch.Failed)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, ran, 2, "queued files never reach the pipeline")
}

func TestRunThreadsCancelCheck(t *testing.T) {
	// Runs on a worker goroutine, so assert only, never require.
	var p *Processor
	fake := pipelineFunc(func(_ context.Context, filename string, _ []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult {
		assert.False(t, cancelled())
		p.Cancel()
		assert.True(t, cancelled(), "check reflects the shared flag")
		return completes(filename)
	})
	p = NewProcessor(fake, nil, WithWorkers(1))

	batch := p.Run(context.Background(), items(1))

	// Completed inside the pipeline, but the flag was set before folding.
	assert.Equal(t, 1, batch.Cancelled)
	assert.Zero(t, batch.Succeeded)
}

func TestRunProgressSequence(t *testing.T) {
	fake := pipelineFunc(func(_ context.Context, filename string, _ []byte, _ pipeline.CancelCheck) fiscal.ProcessingResult {
		return completes(filename)
	})

	var mu sync.Mutex
	var events []fiscal.ProgressUpdate
	p := NewProcessor(fake, nil, WithWorkers(1), WithProgress(func(u fiscal.ProgressUpdate) {
		mu.Lock()
		events = append(events, u)
		mu.Unlock()
	}))

	p.Run(context.Background(), items(2))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 4)

	assert.Equal(t, constants.StatusProcessing, events[0].Status)
	assert.Equal(t, 0, events[0].Current)
	assert.Equal(t, "nota_01.pdf", events[0].Filename)

	assert.Equal(t, constants.StatusCompleted, events[1].Status)
	assert.Equal(t, 1, events[1].Current)

	assert.Equal(t, constants.StatusProcessing, events[2].Status)
	assert.Equal(t, 1, events[2].Current)
	assert.Equal(t, "nota_02.pdf", events[2].Filename)

	assert.Equal(t, constants.StatusCompleted, events[3].Status)
	assert.Equal(t, 2, events[3].Current)
	assert.InDelta(t, 100.0, events[3].Percentage(), 0.0001)
}

func TestRunSwallowsCallbackPanics(t *testing.T) {
	fake := pipelineFunc(func(_ context.Context, filename string, _ []byte, _ pipeline.CancelCheck) fiscal.ProcessingResult {
		return completes(filename)
	})
	p := NewProcessor(fake, nil, WithWorkers(2), WithProgress(func(u fiscal.ProgressUpdate) {
		panic("ui detached")
	}))

	batch := p.Run(context.Background(), items(3))

	assert.Equal(t, 3, batch.Succeeded)
	assert.Len(t, batch.Results, 3)
}
