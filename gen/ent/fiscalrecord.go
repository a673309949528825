// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/google/uuid"
)

// FiscalRecord is the model entity for the FiscalRecord schema.
type FiscalRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID uuid.UUID `json:"batch_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Numero holds the value of the "numero" field.
	Numero *string `json:"numero,omitempty"`
	// ChaveAcesso holds the value of the "chave_acesso" field.
	ChaveAcesso *string `json:"chave_acesso,omitempty"`
	// DataEmissao holds the value of the "data_emissao" field.
	DataEmissao *string `json:"data_emissao,omitempty"`
	// EmitenteCnpj holds the value of the "emitente_cnpj" field.
	EmitenteCnpj *string `json:"emitente_cnpj,omitempty"`
	// EmitenteNome holds the value of the "emitente_nome" field.
	EmitenteNome *string `json:"emitente_nome,omitempty"`
	// DestinatarioCnpj holds the value of the "destinatario_cnpj" field.
	DestinatarioCnpj *string `json:"destinatario_cnpj,omitempty"`
	// DestinatarioNome holds the value of the "destinatario_nome" field.
	DestinatarioNome *string `json:"destinatario_nome,omitempty"`
	// Coligada holds the value of the "coligada" field.
	Coligada *string `json:"coligada,omitempty"`
	// Filial holds the value of the "filial" field.
	Filial *string `json:"filial,omitempty"`
	// ValorTotal holds the value of the "valor_total" field.
	ValorTotal *float64 `json:"valor_total,omitempty"`
	// IsScanned holds the value of the "is_scanned" field.
	IsScanned bool `json:"is_scanned,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ProcessingMs holds the value of the "processing_ms" field.
	ProcessingMs int64 `json:"processing_ms,omitempty"`
	// Document holds the value of the "document" field.
	Document json.RawMessage `json:"document,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FiscalRecordQuery when eager-loading is set.
	Edges        FiscalRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FiscalRecordEdges holds the relations/edges for other nodes in the graph.
type FiscalRecordEdges struct {
	// Batch holds the value of the batch edge.
	Batch *ExtractBatch `json:"batch,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BatchOrErr returns the Batch value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FiscalRecordEdges) BatchOrErr() (*ExtractBatch, error) {
	if e.Batch != nil {
		return e.Batch, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractbatch.Label}
	}
	return nil, &NotLoadedError{edge: "batch"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FiscalRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fiscalrecord.FieldDocument:
			values[i] = new([]byte)
		case fiscalrecord.FieldIsScanned:
			values[i] = new(sql.NullBool)
		case fiscalrecord.FieldValorTotal:
			values[i] = new(sql.NullFloat64)
		case fiscalrecord.FieldProcessingMs:
			values[i] = new(sql.NullInt64)
		case fiscalrecord.FieldFilename, fiscalrecord.FieldDocumentType, fiscalrecord.FieldStatus, fiscalrecord.FieldNumero, fiscalrecord.FieldChaveAcesso, fiscalrecord.FieldDataEmissao, fiscalrecord.FieldEmitenteCnpj, fiscalrecord.FieldEmitenteNome, fiscalrecord.FieldDestinatarioCnpj, fiscalrecord.FieldDestinatarioNome, fiscalrecord.FieldColigada, fiscalrecord.FieldFilial, fiscalrecord.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case fiscalrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case fiscalrecord.FieldID, fiscalrecord.FieldBatchID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FiscalRecord fields.
func (_m *FiscalRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fiscalrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fiscalrecord.FieldBatchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value != nil {
				_m.BatchID = *value
			}
		case fiscalrecord.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case fiscalrecord.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case fiscalrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case fiscalrecord.FieldNumero:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field numero", values[i])
			} else if value.Valid {
				_m.Numero = new(string)
				*_m.Numero = value.String
			}
		case fiscalrecord.FieldChaveAcesso:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chave_acesso", values[i])
			} else if value.Valid {
				_m.ChaveAcesso = new(string)
				*_m.ChaveAcesso = value.String
			}
		case fiscalrecord.FieldDataEmissao:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_emissao", values[i])
			} else if value.Valid {
				_m.DataEmissao = new(string)
				*_m.DataEmissao = value.String
			}
		case fiscalrecord.FieldEmitenteCnpj:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emitente_cnpj", values[i])
			} else if value.Valid {
				_m.EmitenteCnpj = new(string)
				*_m.EmitenteCnpj = value.String
			}
		case fiscalrecord.FieldEmitenteNome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emitente_nome", values[i])
			} else if value.Valid {
				_m.EmitenteNome = new(string)
				*_m.EmitenteNome = value.String
			}
		case fiscalrecord.FieldDestinatarioCnpj:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destinatario_cnpj", values[i])
			} else if value.Valid {
				_m.DestinatarioCnpj = new(string)
				*_m.DestinatarioCnpj = value.String
			}
		case fiscalrecord.FieldDestinatarioNome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destinatario_nome", values[i])
			} else if value.Valid {
				_m.DestinatarioNome = new(string)
				*_m.DestinatarioNome = value.String
			}
		case fiscalrecord.FieldColigada:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coligada", values[i])
			} else if value.Valid {
				_m.Coligada = new(string)
				*_m.Coligada = value.String
			}
		case fiscalrecord.FieldFilial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filial", values[i])
			} else if value.Valid {
				_m.Filial = new(string)
				*_m.Filial = value.String
			}
		case fiscalrecord.FieldValorTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field valor_total", values[i])
			} else if value.Valid {
				_m.ValorTotal = new(float64)
				*_m.ValorTotal = value.Float64
			}
		case fiscalrecord.FieldIsScanned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_scanned", values[i])
			} else if value.Valid {
				_m.IsScanned = value.Bool
			}
		case fiscalrecord.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case fiscalrecord.FieldProcessingMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_ms", values[i])
			} else if value.Valid {
				_m.ProcessingMs = value.Int64
			}
		case fiscalrecord.FieldDocument:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Document); err != nil {
					return fmt.Errorf("unmarshal field document: %w", err)
				}
			}
		case fiscalrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FiscalRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FiscalRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBatch queries the "batch" edge of the FiscalRecord entity.
func (_m *FiscalRecord) QueryBatch() *ExtractBatchQuery {
	return NewFiscalRecordClient(_m.config).QueryBatch(_m)
}

// Update returns a builder for updating this FiscalRecord.
// Note that you need to call FiscalRecord.Unwrap() before calling this method if this FiscalRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FiscalRecord) Update() *FiscalRecordUpdateOne {
	return NewFiscalRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FiscalRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FiscalRecord) Unwrap() *FiscalRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FiscalRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FiscalRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FiscalRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("batch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatchID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Numero; v != nil {
		builder.WriteString("numero=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChaveAcesso; v != nil {
		builder.WriteString("chave_acesso=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DataEmissao; v != nil {
		builder.WriteString("data_emissao=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmitenteCnpj; v != nil {
		builder.WriteString("emitente_cnpj=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmitenteNome; v != nil {
		builder.WriteString("emitente_nome=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DestinatarioCnpj; v != nil {
		builder.WriteString("destinatario_cnpj=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DestinatarioNome; v != nil {
		builder.WriteString("destinatario_nome=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Coligada; v != nil {
		builder.WriteString("coligada=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Filial; v != nil {
		builder.WriteString("filial=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValorTotal; v != nil {
		builder.WriteString("valor_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_scanned=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsScanned))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processing_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingMs))
	builder.WriteString(", ")
	builder.WriteString("document=")
	builder.WriteString(fmt.Sprintf("%v", _m.Document))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FiscalRecords is a parsable slice of FiscalRecord.
type FiscalRecords []*FiscalRecord
