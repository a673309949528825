package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/fiscaldata/nf-extractor/gen/proto/fiscal/v1"
	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/async"
	"github.com/fiscaldata/nf-extractor/internal/batch"
	"github.com/fiscaldata/nf-extractor/internal/export"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
	"github.com/fiscaldata/nf-extractor/internal/ingest"
	"github.com/fiscaldata/nf-extractor/internal/pipeline"
	"github.com/fiscaldata/nf-extractor/internal/repository"
)

// pipelineFunc adapts a plain function to the batch.Pipeline interface.
type pipelineFunc func(ctx context.Context, filename string, pdf []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult

func (f pipelineFunc) Process(ctx context.Context, filename string, pdf []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult {
	return f(ctx, filename, pdf, cancelled)
}

func instantPipe() batch.Pipeline {
	return pipelineFunc(func(_ context.Context, filename string, _ []byte, _ pipeline.CancelCheck) fiscal.ProcessingResult {
		doc := fiscal.NewDocument(filename)
		doc.DocumentType = constants.DocTypeNFSE
		doc.Numero = "4711"
		doc.Valores = &fiscal.TaxValues{ValorTotal: fiscal.Float(150)}
		doc.Status = constants.StatusCompleted
		return fiscal.ProcessingResult{Document: doc, Duration: 5 * time.Millisecond}
	})
}

// blockingPipe holds every document on the gate channel so tests can act
// while the batch is provably in flight.
func blockingPipe() (batch.Pipeline, chan struct{}, chan struct{}) {
	started := make(chan struct{})
	gate := make(chan struct{})
	var once sync.Once
	pipe := pipelineFunc(func(_ context.Context, filename string, _ []byte, cancelled pipeline.CancelCheck) fiscal.ProcessingResult {
		once.Do(func() { close(started) })
		<-gate
		doc := fiscal.NewDocument(filename)
		doc.Status = constants.StatusCompleted
		if cancelled() {
			doc.Status = constants.StatusCancelled
		}
		return fiscal.ProcessingResult{Document: doc}
	})
	return pipe, started, gate
}

func newTestService(t *testing.T, pipe batch.Pipeline, opts ...async.Option) *BatchService {
	t.Helper()
	db, err := repository.Open(context.Background(), repository.Config{DSN: "file::memory:?cache=shared"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { db.Close(nil) })

	runner := async.NewRunner(pipe, nil, append([]async.Option{async.WithWorkers(2)}, opts...)...)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		runner.Shutdown(ctx)
	})

	return NewBatchService(
		ingest.NewCollector(nil),
		runner,
		repository.NewBatchRepository(db.Client, nil),
		repository.NewRecordRepository(db.Client, nil),
		export.NewReporter(t.TempDir(), nil),
		nil,
	)
}

func writePDFs(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, fmt.Sprintf("nota_%02d.pdf", i+1))
		require.NoError(t, os.WriteFile(name, []byte("%PDF-1.4 conteudo"), 0o644))
	}
	return dir
}

// waitPersisted blocks until the run has finished and its records and batch
// row are written.
func waitPersisted(t *testing.T, svc *BatchService, id uuid.UUID) {
	t.Helper()
	run, ok := svc.runner.Get(id)
	if !ok {
		return
	}
	select {
	case <-run.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not finish in time")
	}
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err))
}

// watchStream is a canned server stream collecting sent frames.
type watchStream struct {
	grpc.ServerStream
	ctx    context.Context
	frames []*v1.BatchProgress
}

func (s *watchStream) Context() context.Context { return s.ctx }

func (s *watchStream) Send(p *v1.BatchProgress) error {
	s.frames = append(s.frames, p)
	return nil
}

func TestSubmitBatchRunsAndPersists(t *testing.T) {
	svc := newTestService(t, instantPipe())
	ctx := context.Background()
	dir := writePDFs(t, 2)

	resp, err := svc.SubmitBatch(ctx, &v1.SubmitBatchRequest{Paths: []string{dir}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.TotalFiles)

	id, err := uuid.Parse(resp.BatchId)
	require.NoError(t, err)
	waitPersisted(t, svc, id)

	got, err := svc.GetBatch(ctx, &v1.GetBatchRequest{BatchId: resp.BatchId})
	require.NoError(t, err)

	b := got.Batch
	require.NotNil(t, b)
	assert.Equal(t, string(constants.BatchCompleted), b.Status)
	assert.EqualValues(t, 2, b.TotalFiles)
	assert.EqualValues(t, 2, b.Succeeded)
	assert.Zero(t, b.Failed)
	assert.NotEmpty(t, b.StartedAt)
	assert.NotEmpty(t, b.FinishedAt)
	assert.NotEmpty(t, b.ReportPath, "completed batches get a report on disk")

	require.Len(t, got.Records, 2)
	for _, rec := range got.Records {
		assert.Equal(t, string(constants.StatusCompleted), rec.Status)
		assert.Equal(t, "4711", rec.Numero)
		assert.Equal(t, "150.00", rec.ValorTotal)
	}
}

func TestSubmitBatchValidation(t *testing.T) {
	svc := newTestService(t, instantPipe())
	ctx := context.Background()

	tests := []struct {
		name  string
		paths []string
	}{
		{"no paths", nil},
		{"blank paths", []string{"  ", ""}},
		{"missing path", []string{filepath.Join(t.TempDir(), "nao_existe")}},
		{"nothing processable", []string{t.TempDir()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitBatch(ctx, &v1.SubmitBatchRequest{Paths: tt.paths})
			requireCode(t, err, codes.InvalidArgument)
		})
	}
}

func TestGetBatchErrors(t *testing.T) {
	svc := newTestService(t, instantPipe())
	ctx := context.Background()

	_, err := svc.GetBatch(ctx, &v1.GetBatchRequest{BatchId: ""})
	requireCode(t, err, codes.InvalidArgument)

	_, err = svc.GetBatch(ctx, &v1.GetBatchRequest{BatchId: "nao-e-uuid"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = svc.GetBatch(ctx, &v1.GetBatchRequest{BatchId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestCancelBatch(t *testing.T) {
	pipe, started, gate := blockingPipe()
	svc := newTestService(t, pipe)
	ctx := context.Background()
	dir := writePDFs(t, 3)

	resp, err := svc.SubmitBatch(ctx, &v1.SubmitBatchRequest{Paths: []string{dir}})
	require.NoError(t, err)
	<-started

	cancelResp, err := svc.CancelBatch(ctx, &v1.CancelBatchRequest{BatchId: resp.BatchId})
	require.NoError(t, err)
	assert.True(t, cancelResp.Cancelling)

	close(gate)
	id, err := uuid.Parse(resp.BatchId)
	require.NoError(t, err)
	waitPersisted(t, svc, id)

	got, err := svc.GetBatch(ctx, &v1.GetBatchRequest{BatchId: resp.BatchId})
	require.NoError(t, err)
	assert.Equal(t, string(constants.BatchCancelled), got.Batch.Status)
	assert.EqualValues(t, 3, got.Batch.Cancelled)

	// Nothing left to cancel, but the batch is known.
	cancelResp, err = svc.CancelBatch(ctx, &v1.CancelBatchRequest{BatchId: resp.BatchId})
	require.NoError(t, err)
	assert.False(t, cancelResp.Cancelling)

	_, err = svc.CancelBatch(ctx, &v1.CancelBatchRequest{BatchId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestListBatches(t *testing.T) {
	svc := newTestService(t, instantPipe())
	ctx := context.Background()

	ids := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		resp, err := svc.SubmitBatch(ctx, &v1.SubmitBatchRequest{Paths: []string{writePDFs(t, 1)}})
		require.NoError(t, err)
		id, err := uuid.Parse(resp.BatchId)
		require.NoError(t, err)
		waitPersisted(t, svc, id)
		ids = append(ids, resp.BatchId)
	}

	resp, err := svc.ListBatches(ctx, &v1.ListBatchesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Batches, 2)

	listed := []string{resp.Batches[0].Id, resp.Batches[1].Id}
	assert.ElementsMatch(t, ids, listed)
}

func TestExportReport(t *testing.T) {
	pipe, started, gate := blockingPipe()
	svc := newTestService(t, pipe)
	ctx := context.Background()

	resp, err := svc.SubmitBatch(ctx, &v1.SubmitBatchRequest{Paths: []string{writePDFs(t, 1)}})
	require.NoError(t, err)
	<-started

	_, err = svc.ExportReport(ctx, &v1.ExportReportRequest{BatchId: resp.BatchId})
	requireCode(t, err, codes.FailedPrecondition)

	close(gate)
	id, err := uuid.Parse(resp.BatchId)
	require.NoError(t, err)
	waitPersisted(t, svc, id)

	out, err := svc.ExportReport(ctx, &v1.ExportReportRequest{BatchId: resp.BatchId})
	require.NoError(t, err)
	assert.Contains(t, out.Filename, "relatorio_fiscal_")
	require.NotEmpty(t, out.Xlsx)
	assert.Equal(t, "PK", string(out.Xlsx[:2]), "xlsx is a zip container")

	_, err = svc.ExportReport(ctx, &v1.ExportReportRequest{BatchId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestWatchBatchTerminalFrame(t *testing.T) {
	svc := newTestService(t, instantPipe())
	ctx := context.Background()

	resp, err := svc.SubmitBatch(ctx, &v1.SubmitBatchRequest{Paths: []string{writePDFs(t, 2)}})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.BatchId)
	require.NoError(t, err)
	waitPersisted(t, svc, id)

	// The run is still registered, so the terminal frame comes from it.
	stream := &watchStream{ctx: ctx}
	require.NoError(t, svc.WatchBatch(&v1.WatchBatchRequest{BatchId: resp.BatchId}, stream))
	require.NotEmpty(t, stream.frames)

	last := stream.frames[len(stream.frames)-1]
	assert.Equal(t, string(constants.BatchCompleted), last.Status)
	assert.EqualValues(t, 2, last.Total)
	assert.EqualValues(t, 2, last.Current)
	assert.InDelta(t, 100.0, last.Percentage, 0.0001)
}

func TestWatchBatchFromStorage(t *testing.T) {
	svc := newTestService(t, instantPipe(), async.WithRetention(time.Millisecond))
	ctx := context.Background()

	resp, err := svc.SubmitBatch(ctx, &v1.SubmitBatchRequest{Paths: []string{writePDFs(t, 2)}})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.BatchId)
	require.NoError(t, err)
	waitPersisted(t, svc, id)

	assert.Eventually(t, func() bool {
		_, ok := svc.runner.Get(id)
		return !ok
	}, time.Second, 5*time.Millisecond, "finished run should leave the registry")

	stream := &watchStream{ctx: ctx}
	require.NoError(t, svc.WatchBatch(&v1.WatchBatchRequest{BatchId: resp.BatchId}, stream))
	require.Len(t, stream.frames, 1)

	frame := stream.frames[0]
	assert.Equal(t, string(constants.BatchCompleted), frame.Status)
	assert.EqualValues(t, 2, frame.Current)
	assert.EqualValues(t, 2, frame.Total)

	_, unknown := svc.runner.Get(uuid.New())
	assert.False(t, unknown)
	err = svc.WatchBatch(&v1.WatchBatchRequest{BatchId: uuid.NewString()}, stream)
	requireCode(t, err, codes.NotFound)
}
