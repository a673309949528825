package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), Config{DSN: "file::memory:?cache=shared"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { db.Close(nil) })
	return db
}

func TestBatchLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	batches := NewBatchRepository(db.Client, nil)

	row, err := batches.Create(ctx, "/dados/notas/2026-08", 5)
	require.NoError(t, err)
	assert.Equal(t, string(constants.BatchRunning), row.Status)
	assert.Equal(t, 5, row.TotalFiles)
	assert.Nil(t, row.FinishedAt)

	result := fiscal.NewBatchResult(5)
	for i := 0; i < 4; i++ {
		result.Add(fiscal.ProcessingResult{Document: &fiscal.Document{Status: constants.StatusCompleted}})
	}
	result.Add(fiscal.ProcessingResult{Document: &fiscal.Document{Status: constants.StatusError}})
	result.Finalize()

	require.NoError(t, batches.Finish(ctx, row.ID, result, constants.BatchCompleted, "/saida/relatorio.xlsx"))

	got, err := batches.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.BatchCompleted), got.Status)
	assert.Equal(t, 4, got.Succeeded)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, 0, got.Cancelled)
	require.NotNil(t, got.FinishedAt)
	require.NotNil(t, got.ReportPath)
	assert.Equal(t, "/saida/relatorio.xlsx", *got.ReportPath)

	recent, err := batches.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, row.ID, recent[0].ID)
}

func TestSaveAndListRecords(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	batches := NewBatchRepository(db.Client, nil)
	records := NewRecordRepository(db.Client, nil)

	row, err := batches.Create(ctx, "/dados/notas", 2)
	require.NoError(t, err)

	docA := &fiscal.Document{
		Filename:     "nfse_consultoria.pdf",
		DocumentType: constants.DocTypeNFSE,
		Status:       constants.StatusCompleted,
		Numero:       "482",
		DataEmissao:  "15/03/2026",
		Emitente:     &fiscal.Entity{CNPJ: "11.222.333/0001-44", RazaoSocial: "CONSULTORIA EXEMPLO LTDA"},
		Destinatario: &fiscal.Entity{CNPJ: "98.765.432/0001-10", RazaoSocial: "CLIENTE DEMONSTRATIVO LTDA"},
		Coligada:     "01",
		Filial:       "003",
		Valores:      &fiscal.TaxValues{ValorTotal: fiscal.Float(1500)},
	}
	docB := &fiscal.Document{
		Filename:     "digitalizada.pdf",
		DocumentType: constants.DocTypeUnknown,
		Status:       constants.StatusError,
		IsScanned:    true,
		ErrorMessage: "OCR_FAILED: ocr failed",
	}
	results := []fiscal.ProcessingResult{
		{Document: docA, Duration: 1200 * time.Millisecond},
		{Document: docB, Duration: 300 * time.Millisecond},
	}

	require.NoError(t, records.SaveResults(ctx, row.ID, results))

	rows, err := records.ListByBatch(ctx, row.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Listing orders by filename.
	scanned, nfse := rows[0], rows[1]
	assert.Equal(t, "digitalizada.pdf", scanned.Filename)
	assert.True(t, scanned.IsScanned)
	require.NotNil(t, scanned.ErrorMessage)
	assert.Contains(t, *scanned.ErrorMessage, "OCR_FAILED")
	assert.Nil(t, scanned.ValorTotal)

	assert.Equal(t, "nfse_consultoria.pdf", nfse.Filename)
	assert.Equal(t, string(constants.DocTypeNFSE), nfse.DocumentType)
	require.NotNil(t, nfse.EmitenteCnpj)
	assert.Equal(t, "11222333000144", *nfse.EmitenteCnpj)
	require.NotNil(t, nfse.DestinatarioCnpj)
	assert.Equal(t, "98765432000110", *nfse.DestinatarioCnpj)
	require.NotNil(t, nfse.ValorTotal)
	assert.InDelta(t, 1500, *nfse.ValorTotal, 0.0001)
	assert.EqualValues(t, 1200, nfse.ProcessingMs)

	// The full document survives the JSON column.
	var stored fiscal.Document
	require.NoError(t, json.Unmarshal(nfse.Document, &stored))
	assert.Equal(t, "482", stored.Numero)
	assert.Equal(t, "003", stored.Filial)
}

func TestSaveResultsEmpty(t *testing.T) {
	db := openTestDB(t)
	records := NewRecordRepository(db.Client, nil)
	assert.NoError(t, records.SaveResults(context.Background(), uuid.New(), nil))
}
