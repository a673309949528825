// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fiscaldata/nf-extractor/db/ent/schema"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractbatchFields := schema.ExtractBatch{}.Fields()
	_ = extractbatchFields
	// extractbatchDescSource is the schema descriptor for source field.
	extractbatchDescSource := extractbatchFields[1].Descriptor()
	// extractbatch.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	extractbatch.SourceValidator = extractbatchDescSource.Validators[0].(func(string) error)
	// extractbatchDescStatus is the schema descriptor for status field.
	extractbatchDescStatus := extractbatchFields[2].Descriptor()
	// extractbatch.DefaultStatus holds the default value on creation for the status field.
	extractbatch.DefaultStatus = extractbatchDescStatus.Default.(string)
	// extractbatch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractbatch.StatusValidator = extractbatchDescStatus.Validators[0].(func(string) error)
	// extractbatchDescTotalFiles is the schema descriptor for total_files field.
	extractbatchDescTotalFiles := extractbatchFields[3].Descriptor()
	// extractbatch.TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	extractbatch.TotalFilesValidator = extractbatchDescTotalFiles.Validators[0].(func(int) error)
	// extractbatchDescSucceeded is the schema descriptor for succeeded field.
	extractbatchDescSucceeded := extractbatchFields[4].Descriptor()
	// extractbatch.DefaultSucceeded holds the default value on creation for the succeeded field.
	extractbatch.DefaultSucceeded = extractbatchDescSucceeded.Default.(int)
	// extractbatchDescFailed is the schema descriptor for failed field.
	extractbatchDescFailed := extractbatchFields[5].Descriptor()
	// extractbatch.DefaultFailed holds the default value on creation for the failed field.
	extractbatch.DefaultFailed = extractbatchDescFailed.Default.(int)
	// extractbatchDescCancelled is the schema descriptor for cancelled field.
	extractbatchDescCancelled := extractbatchFields[6].Descriptor()
	// extractbatch.DefaultCancelled holds the default value on creation for the cancelled field.
	extractbatch.DefaultCancelled = extractbatchDescCancelled.Default.(int)
	// extractbatchDescStartedAt is the schema descriptor for started_at field.
	extractbatchDescStartedAt := extractbatchFields[7].Descriptor()
	// extractbatch.DefaultStartedAt holds the default value on creation for the started_at field.
	extractbatch.DefaultStartedAt = extractbatchDescStartedAt.Default.(func() time.Time)
	// extractbatchDescID is the schema descriptor for id field.
	extractbatchDescID := extractbatchFields[0].Descriptor()
	// extractbatch.DefaultID holds the default value on creation for the id field.
	extractbatch.DefaultID = extractbatchDescID.Default.(func() uuid.UUID)
	fiscalrecordFields := schema.FiscalRecord{}.Fields()
	_ = fiscalrecordFields
	// fiscalrecordDescFilename is the schema descriptor for filename field.
	fiscalrecordDescFilename := fiscalrecordFields[2].Descriptor()
	// fiscalrecord.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	fiscalrecord.FilenameValidator = fiscalrecordDescFilename.Validators[0].(func(string) error)
	// fiscalrecordDescDocumentType is the schema descriptor for document_type field.
	fiscalrecordDescDocumentType := fiscalrecordFields[3].Descriptor()
	// fiscalrecord.DefaultDocumentType holds the default value on creation for the document_type field.
	fiscalrecord.DefaultDocumentType = fiscalrecordDescDocumentType.Default.(string)
	// fiscalrecord.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	fiscalrecord.DocumentTypeValidator = fiscalrecordDescDocumentType.Validators[0].(func(string) error)
	// fiscalrecordDescStatus is the schema descriptor for status field.
	fiscalrecordDescStatus := fiscalrecordFields[4].Descriptor()
	// fiscalrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	fiscalrecord.StatusValidator = fiscalrecordDescStatus.Validators[0].(func(string) error)
	// fiscalrecordDescIsScanned is the schema descriptor for is_scanned field.
	fiscalrecordDescIsScanned := fiscalrecordFields[15].Descriptor()
	// fiscalrecord.DefaultIsScanned holds the default value on creation for the is_scanned field.
	fiscalrecord.DefaultIsScanned = fiscalrecordDescIsScanned.Default.(bool)
	// fiscalrecordDescProcessingMs is the schema descriptor for processing_ms field.
	fiscalrecordDescProcessingMs := fiscalrecordFields[17].Descriptor()
	// fiscalrecord.DefaultProcessingMs holds the default value on creation for the processing_ms field.
	fiscalrecord.DefaultProcessingMs = fiscalrecordDescProcessingMs.Default.(int64)
	// fiscalrecord.ProcessingMsValidator is a validator for the "processing_ms" field. It is called by the builders before save.
	fiscalrecord.ProcessingMsValidator = fiscalrecordDescProcessingMs.Validators[0].(func(int64) error)
	// fiscalrecordDescCreatedAt is the schema descriptor for created_at field.
	fiscalrecordDescCreatedAt := fiscalrecordFields[19].Descriptor()
	// fiscalrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	fiscalrecord.DefaultCreatedAt = fiscalrecordDescCreatedAt.Default.(func() time.Time)
	// fiscalrecordDescID is the schema descriptor for id field.
	fiscalrecordDescID := fiscalrecordFields[0].Descriptor()
	// fiscalrecord.DefaultID holds the default value on creation for the id field.
	fiscalrecord.DefaultID = fiscalrecordDescID.Default.(func() uuid.UUID)
}
