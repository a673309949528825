// Code generated by ent, DO NOT EDIT.

package fiscalrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fiscalrecord type in the database.
	Label = "fiscal_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNumero holds the string denoting the numero field in the database.
	FieldNumero = "numero"
	// FieldChaveAcesso holds the string denoting the chave_acesso field in the database.
	FieldChaveAcesso = "chave_acesso"
	// FieldDataEmissao holds the string denoting the data_emissao field in the database.
	FieldDataEmissao = "data_emissao"
	// FieldEmitenteCnpj holds the string denoting the emitente_cnpj field in the database.
	FieldEmitenteCnpj = "emitente_cnpj"
	// FieldEmitenteNome holds the string denoting the emitente_nome field in the database.
	FieldEmitenteNome = "emitente_nome"
	// FieldDestinatarioCnpj holds the string denoting the destinatario_cnpj field in the database.
	FieldDestinatarioCnpj = "destinatario_cnpj"
	// FieldDestinatarioNome holds the string denoting the destinatario_nome field in the database.
	FieldDestinatarioNome = "destinatario_nome"
	// FieldColigada holds the string denoting the coligada field in the database.
	FieldColigada = "coligada"
	// FieldFilial holds the string denoting the filial field in the database.
	FieldFilial = "filial"
	// FieldValorTotal holds the string denoting the valor_total field in the database.
	FieldValorTotal = "valor_total"
	// FieldIsScanned holds the string denoting the is_scanned field in the database.
	FieldIsScanned = "is_scanned"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldProcessingMs holds the string denoting the processing_ms field in the database.
	FieldProcessingMs = "processing_ms"
	// FieldDocument holds the string denoting the document field in the database.
	FieldDocument = "document"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBatch holds the string denoting the batch edge name in mutations.
	EdgeBatch = "batch"
	// Table holds the table name of the fiscalrecord in the database.
	Table = "fiscal_record"
	// BatchTable is the table that holds the batch relation/edge.
	BatchTable = "fiscal_record"
	// BatchInverseTable is the table name for the ExtractBatch entity.
	// It exists in this package in order to avoid circular dependency with the "extractbatch" package.
	BatchInverseTable = "extract_batch"
	// BatchColumn is the table column denoting the batch relation/edge.
	BatchColumn = "batch_id"
)

// Columns holds all SQL columns for fiscalrecord fields.
var Columns = []string{
	FieldID,
	FieldBatchID,
	FieldFilename,
	FieldDocumentType,
	FieldStatus,
	FieldNumero,
	FieldChaveAcesso,
	FieldDataEmissao,
	FieldEmitenteCnpj,
	FieldEmitenteNome,
	FieldDestinatarioCnpj,
	FieldDestinatarioNome,
	FieldColigada,
	FieldFilial,
	FieldValorTotal,
	FieldIsScanned,
	FieldErrorMessage,
	FieldProcessingMs,
	FieldDocument,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DefaultDocumentType holds the default value on creation for the "document_type" field.
	DefaultDocumentType string
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultIsScanned holds the default value on creation for the "is_scanned" field.
	DefaultIsScanned bool
	// DefaultProcessingMs holds the default value on creation for the "processing_ms" field.
	DefaultProcessingMs int64
	// ProcessingMsValidator is a validator for the "processing_ms" field. It is called by the builders before save.
	ProcessingMsValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FiscalRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNumero orders the results by the numero field.
func ByNumero(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumero, opts...).ToFunc()
}

// ByChaveAcesso orders the results by the chave_acesso field.
func ByChaveAcesso(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChaveAcesso, opts...).ToFunc()
}

// ByDataEmissao orders the results by the data_emissao field.
func ByDataEmissao(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataEmissao, opts...).ToFunc()
}

// ByEmitenteCnpj orders the results by the emitente_cnpj field.
func ByEmitenteCnpj(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmitenteCnpj, opts...).ToFunc()
}

// ByEmitenteNome orders the results by the emitente_nome field.
func ByEmitenteNome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmitenteNome, opts...).ToFunc()
}

// ByDestinatarioCnpj orders the results by the destinatario_cnpj field.
func ByDestinatarioCnpj(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestinatarioCnpj, opts...).ToFunc()
}

// ByDestinatarioNome orders the results by the destinatario_nome field.
func ByDestinatarioNome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestinatarioNome, opts...).ToFunc()
}

// ByColigada orders the results by the coligada field.
func ByColigada(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColigada, opts...).ToFunc()
}

// ByFilial orders the results by the filial field.
func ByFilial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilial, opts...).ToFunc()
}

// ByValorTotal orders the results by the valor_total field.
func ByValorTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValorTotal, opts...).ToFunc()
}

// ByIsScanned orders the results by the is_scanned field.
func ByIsScanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsScanned, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByProcessingMs orders the results by the processing_ms field.
func ByProcessingMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBatchField orders the results by batch field.
func ByBatchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchStep(), sql.OrderByField(field, opts...))
	}
}
func newBatchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
	)
}
