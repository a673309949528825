// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/fiscaldata/nf-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// FiscalRecordUpdate is the builder for updating FiscalRecord entities.
type FiscalRecordUpdate struct {
	config
	hooks    []Hook
	mutation *FiscalRecordMutation
}

// Where appends a list predicates to the FiscalRecordUpdate builder.
func (_u *FiscalRecordUpdate) Where(ps ...predicate.FiscalRecord) *FiscalRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *FiscalRecordUpdate) SetBatchID(v uuid.UUID) *FiscalRecordUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableBatchID(v *uuid.UUID) *FiscalRecordUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *FiscalRecordUpdate) SetFilename(v string) *FiscalRecordUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableFilename(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *FiscalRecordUpdate) SetDocumentType(v string) *FiscalRecordUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableDocumentType(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FiscalRecordUpdate) SetStatus(v string) *FiscalRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableStatus(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNumero sets the "numero" field.
func (_u *FiscalRecordUpdate) SetNumero(v string) *FiscalRecordUpdate {
	_u.mutation.SetNumero(v)
	return _u
}

// SetNillableNumero sets the "numero" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableNumero(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetNumero(*v)
	}
	return _u
}

// ClearNumero clears the value of the "numero" field.
func (_u *FiscalRecordUpdate) ClearNumero() *FiscalRecordUpdate {
	_u.mutation.ClearNumero()
	return _u
}

// SetChaveAcesso sets the "chave_acesso" field.
func (_u *FiscalRecordUpdate) SetChaveAcesso(v string) *FiscalRecordUpdate {
	_u.mutation.SetChaveAcesso(v)
	return _u
}

// SetNillableChaveAcesso sets the "chave_acesso" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableChaveAcesso(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetChaveAcesso(*v)
	}
	return _u
}

// ClearChaveAcesso clears the value of the "chave_acesso" field.
func (_u *FiscalRecordUpdate) ClearChaveAcesso() *FiscalRecordUpdate {
	_u.mutation.ClearChaveAcesso()
	return _u
}

// SetDataEmissao sets the "data_emissao" field.
func (_u *FiscalRecordUpdate) SetDataEmissao(v string) *FiscalRecordUpdate {
	_u.mutation.SetDataEmissao(v)
	return _u
}

// SetNillableDataEmissao sets the "data_emissao" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableDataEmissao(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetDataEmissao(*v)
	}
	return _u
}

// ClearDataEmissao clears the value of the "data_emissao" field.
func (_u *FiscalRecordUpdate) ClearDataEmissao() *FiscalRecordUpdate {
	_u.mutation.ClearDataEmissao()
	return _u
}

// SetEmitenteCnpj sets the "emitente_cnpj" field.
func (_u *FiscalRecordUpdate) SetEmitenteCnpj(v string) *FiscalRecordUpdate {
	_u.mutation.SetEmitenteCnpj(v)
	return _u
}

// SetNillableEmitenteCnpj sets the "emitente_cnpj" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableEmitenteCnpj(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetEmitenteCnpj(*v)
	}
	return _u
}

// ClearEmitenteCnpj clears the value of the "emitente_cnpj" field.
func (_u *FiscalRecordUpdate) ClearEmitenteCnpj() *FiscalRecordUpdate {
	_u.mutation.ClearEmitenteCnpj()
	return _u
}

// SetEmitenteNome sets the "emitente_nome" field.
func (_u *FiscalRecordUpdate) SetEmitenteNome(v string) *FiscalRecordUpdate {
	_u.mutation.SetEmitenteNome(v)
	return _u
}

// SetNillableEmitenteNome sets the "emitente_nome" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableEmitenteNome(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetEmitenteNome(*v)
	}
	return _u
}

// ClearEmitenteNome clears the value of the "emitente_nome" field.
func (_u *FiscalRecordUpdate) ClearEmitenteNome() *FiscalRecordUpdate {
	_u.mutation.ClearEmitenteNome()
	return _u
}

// SetDestinatarioCnpj sets the "destinatario_cnpj" field.
func (_u *FiscalRecordUpdate) SetDestinatarioCnpj(v string) *FiscalRecordUpdate {
	_u.mutation.SetDestinatarioCnpj(v)
	return _u
}

// SetNillableDestinatarioCnpj sets the "destinatario_cnpj" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableDestinatarioCnpj(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetDestinatarioCnpj(*v)
	}
	return _u
}

// ClearDestinatarioCnpj clears the value of the "destinatario_cnpj" field.
func (_u *FiscalRecordUpdate) ClearDestinatarioCnpj() *FiscalRecordUpdate {
	_u.mutation.ClearDestinatarioCnpj()
	return _u
}

// SetDestinatarioNome sets the "destinatario_nome" field.
func (_u *FiscalRecordUpdate) SetDestinatarioNome(v string) *FiscalRecordUpdate {
	_u.mutation.SetDestinatarioNome(v)
	return _u
}

// SetNillableDestinatarioNome sets the "destinatario_nome" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableDestinatarioNome(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetDestinatarioNome(*v)
	}
	return _u
}

// ClearDestinatarioNome clears the value of the "destinatario_nome" field.
func (_u *FiscalRecordUpdate) ClearDestinatarioNome() *FiscalRecordUpdate {
	_u.mutation.ClearDestinatarioNome()
	return _u
}

// SetColigada sets the "coligada" field.
func (_u *FiscalRecordUpdate) SetColigada(v string) *FiscalRecordUpdate {
	_u.mutation.SetColigada(v)
	return _u
}

// SetNillableColigada sets the "coligada" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableColigada(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetColigada(*v)
	}
	return _u
}

// ClearColigada clears the value of the "coligada" field.
func (_u *FiscalRecordUpdate) ClearColigada() *FiscalRecordUpdate {
	_u.mutation.ClearColigada()
	return _u
}

// SetFilial sets the "filial" field.
func (_u *FiscalRecordUpdate) SetFilial(v string) *FiscalRecordUpdate {
	_u.mutation.SetFilial(v)
	return _u
}

// SetNillableFilial sets the "filial" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableFilial(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetFilial(*v)
	}
	return _u
}

// ClearFilial clears the value of the "filial" field.
func (_u *FiscalRecordUpdate) ClearFilial() *FiscalRecordUpdate {
	_u.mutation.ClearFilial()
	return _u
}

// SetValorTotal sets the "valor_total" field.
func (_u *FiscalRecordUpdate) SetValorTotal(v float64) *FiscalRecordUpdate {
	_u.mutation.ResetValorTotal()
	_u.mutation.SetValorTotal(v)
	return _u
}

// SetNillableValorTotal sets the "valor_total" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableValorTotal(v *float64) *FiscalRecordUpdate {
	if v != nil {
		_u.SetValorTotal(*v)
	}
	return _u
}

// AddValorTotal adds value to the "valor_total" field.
func (_u *FiscalRecordUpdate) AddValorTotal(v float64) *FiscalRecordUpdate {
	_u.mutation.AddValorTotal(v)
	return _u
}

// ClearValorTotal clears the value of the "valor_total" field.
func (_u *FiscalRecordUpdate) ClearValorTotal() *FiscalRecordUpdate {
	_u.mutation.ClearValorTotal()
	return _u
}

// SetIsScanned sets the "is_scanned" field.
func (_u *FiscalRecordUpdate) SetIsScanned(v bool) *FiscalRecordUpdate {
	_u.mutation.SetIsScanned(v)
	return _u
}

// SetNillableIsScanned sets the "is_scanned" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableIsScanned(v *bool) *FiscalRecordUpdate {
	if v != nil {
		_u.SetIsScanned(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FiscalRecordUpdate) SetErrorMessage(v string) *FiscalRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableErrorMessage(v *string) *FiscalRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FiscalRecordUpdate) ClearErrorMessage() *FiscalRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingMs sets the "processing_ms" field.
func (_u *FiscalRecordUpdate) SetProcessingMs(v int64) *FiscalRecordUpdate {
	_u.mutation.ResetProcessingMs()
	_u.mutation.SetProcessingMs(v)
	return _u
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableProcessingMs(v *int64) *FiscalRecordUpdate {
	if v != nil {
		_u.SetProcessingMs(*v)
	}
	return _u
}

// AddProcessingMs adds value to the "processing_ms" field.
func (_u *FiscalRecordUpdate) AddProcessingMs(v int64) *FiscalRecordUpdate {
	_u.mutation.AddProcessingMs(v)
	return _u
}

// SetDocument sets the "document" field.
func (_u *FiscalRecordUpdate) SetDocument(v json.RawMessage) *FiscalRecordUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// AppendDocument appends value to the "document" field.
func (_u *FiscalRecordUpdate) AppendDocument(v json.RawMessage) *FiscalRecordUpdate {
	_u.mutation.AppendDocument(v)
	return _u
}

// ClearDocument clears the value of the "document" field.
func (_u *FiscalRecordUpdate) ClearDocument() *FiscalRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FiscalRecordUpdate) SetCreatedAt(v time.Time) *FiscalRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FiscalRecordUpdate) SetNillableCreatedAt(v *time.Time) *FiscalRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBatch sets the "batch" edge to the ExtractBatch entity.
func (_u *FiscalRecordUpdate) SetBatch(v *ExtractBatch) *FiscalRecordUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the FiscalRecordMutation object of the builder.
func (_u *FiscalRecordUpdate) Mutation() *FiscalRecordMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the ExtractBatch entity.
func (_u *FiscalRecordUpdate) ClearBatch() *FiscalRecordUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FiscalRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FiscalRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FiscalRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FiscalRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FiscalRecordUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := fiscalrecord.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := fiscalrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fiscalrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingMs(); ok {
		if err := fiscalrecord.ProcessingMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_ms", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.processing_ms": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FiscalRecord.batch"`)
	}
	return nil
}

func (_u *FiscalRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fiscalrecord.Table, fiscalrecord.Columns, sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(fiscalrecord.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(fiscalrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fiscalrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Numero(); ok {
		_spec.SetField(fiscalrecord.FieldNumero, field.TypeString, value)
	}
	if _u.mutation.NumeroCleared() {
		_spec.ClearField(fiscalrecord.FieldNumero, field.TypeString)
	}
	if value, ok := _u.mutation.ChaveAcesso(); ok {
		_spec.SetField(fiscalrecord.FieldChaveAcesso, field.TypeString, value)
	}
	if _u.mutation.ChaveAcessoCleared() {
		_spec.ClearField(fiscalrecord.FieldChaveAcesso, field.TypeString)
	}
	if value, ok := _u.mutation.DataEmissao(); ok {
		_spec.SetField(fiscalrecord.FieldDataEmissao, field.TypeString, value)
	}
	if _u.mutation.DataEmissaoCleared() {
		_spec.ClearField(fiscalrecord.FieldDataEmissao, field.TypeString)
	}
	if value, ok := _u.mutation.EmitenteCnpj(); ok {
		_spec.SetField(fiscalrecord.FieldEmitenteCnpj, field.TypeString, value)
	}
	if _u.mutation.EmitenteCnpjCleared() {
		_spec.ClearField(fiscalrecord.FieldEmitenteCnpj, field.TypeString)
	}
	if value, ok := _u.mutation.EmitenteNome(); ok {
		_spec.SetField(fiscalrecord.FieldEmitenteNome, field.TypeString, value)
	}
	if _u.mutation.EmitenteNomeCleared() {
		_spec.ClearField(fiscalrecord.FieldEmitenteNome, field.TypeString)
	}
	if value, ok := _u.mutation.DestinatarioCnpj(); ok {
		_spec.SetField(fiscalrecord.FieldDestinatarioCnpj, field.TypeString, value)
	}
	if _u.mutation.DestinatarioCnpjCleared() {
		_spec.ClearField(fiscalrecord.FieldDestinatarioCnpj, field.TypeString)
	}
	if value, ok := _u.mutation.DestinatarioNome(); ok {
		_spec.SetField(fiscalrecord.FieldDestinatarioNome, field.TypeString, value)
	}
	if _u.mutation.DestinatarioNomeCleared() {
		_spec.ClearField(fiscalrecord.FieldDestinatarioNome, field.TypeString)
	}
	if value, ok := _u.mutation.Coligada(); ok {
		_spec.SetField(fiscalrecord.FieldColigada, field.TypeString, value)
	}
	if _u.mutation.ColigadaCleared() {
		_spec.ClearField(fiscalrecord.FieldColigada, field.TypeString)
	}
	if value, ok := _u.mutation.Filial(); ok {
		_spec.SetField(fiscalrecord.FieldFilial, field.TypeString, value)
	}
	if _u.mutation.FilialCleared() {
		_spec.ClearField(fiscalrecord.FieldFilial, field.TypeString)
	}
	if value, ok := _u.mutation.ValorTotal(); ok {
		_spec.SetField(fiscalrecord.FieldValorTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValorTotal(); ok {
		_spec.AddField(fiscalrecord.FieldValorTotal, field.TypeFloat64, value)
	}
	if _u.mutation.ValorTotalCleared() {
		_spec.ClearField(fiscalrecord.FieldValorTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsScanned(); ok {
		_spec.SetField(fiscalrecord.FieldIsScanned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fiscalrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fiscalrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingMs(); ok {
		_spec.SetField(fiscalrecord.FieldProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingMs(); ok {
		_spec.AddField(fiscalrecord.FieldProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(fiscalrecord.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocument(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fiscalrecord.FieldDocument, value)
		})
	}
	if _u.mutation.DocumentCleared() {
		_spec.ClearField(fiscalrecord.FieldDocument, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fiscalrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fiscalrecord.BatchTable,
			Columns: []string{fiscalrecord.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractbatch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fiscalrecord.BatchTable,
			Columns: []string{fiscalrecord.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractbatch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fiscalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FiscalRecordUpdateOne is the builder for updating a single FiscalRecord entity.
type FiscalRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FiscalRecordMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *FiscalRecordUpdateOne) SetBatchID(v uuid.UUID) *FiscalRecordUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableBatchID(v *uuid.UUID) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *FiscalRecordUpdateOne) SetFilename(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableFilename(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *FiscalRecordUpdateOne) SetDocumentType(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableDocumentType(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FiscalRecordUpdateOne) SetStatus(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableStatus(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNumero sets the "numero" field.
func (_u *FiscalRecordUpdateOne) SetNumero(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetNumero(v)
	return _u
}

// SetNillableNumero sets the "numero" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableNumero(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetNumero(*v)
	}
	return _u
}

// ClearNumero clears the value of the "numero" field.
func (_u *FiscalRecordUpdateOne) ClearNumero() *FiscalRecordUpdateOne {
	_u.mutation.ClearNumero()
	return _u
}

// SetChaveAcesso sets the "chave_acesso" field.
func (_u *FiscalRecordUpdateOne) SetChaveAcesso(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetChaveAcesso(v)
	return _u
}

// SetNillableChaveAcesso sets the "chave_acesso" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableChaveAcesso(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetChaveAcesso(*v)
	}
	return _u
}

// ClearChaveAcesso clears the value of the "chave_acesso" field.
func (_u *FiscalRecordUpdateOne) ClearChaveAcesso() *FiscalRecordUpdateOne {
	_u.mutation.ClearChaveAcesso()
	return _u
}

// SetDataEmissao sets the "data_emissao" field.
func (_u *FiscalRecordUpdateOne) SetDataEmissao(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetDataEmissao(v)
	return _u
}

// SetNillableDataEmissao sets the "data_emissao" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableDataEmissao(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetDataEmissao(*v)
	}
	return _u
}

// ClearDataEmissao clears the value of the "data_emissao" field.
func (_u *FiscalRecordUpdateOne) ClearDataEmissao() *FiscalRecordUpdateOne {
	_u.mutation.ClearDataEmissao()
	return _u
}

// SetEmitenteCnpj sets the "emitente_cnpj" field.
func (_u *FiscalRecordUpdateOne) SetEmitenteCnpj(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetEmitenteCnpj(v)
	return _u
}

// SetNillableEmitenteCnpj sets the "emitente_cnpj" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableEmitenteCnpj(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetEmitenteCnpj(*v)
	}
	return _u
}

// ClearEmitenteCnpj clears the value of the "emitente_cnpj" field.
func (_u *FiscalRecordUpdateOne) ClearEmitenteCnpj() *FiscalRecordUpdateOne {
	_u.mutation.ClearEmitenteCnpj()
	return _u
}

// SetEmitenteNome sets the "emitente_nome" field.
func (_u *FiscalRecordUpdateOne) SetEmitenteNome(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetEmitenteNome(v)
	return _u
}

// SetNillableEmitenteNome sets the "emitente_nome" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableEmitenteNome(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetEmitenteNome(*v)
	}
	return _u
}

// ClearEmitenteNome clears the value of the "emitente_nome" field.
func (_u *FiscalRecordUpdateOne) ClearEmitenteNome() *FiscalRecordUpdateOne {
	_u.mutation.ClearEmitenteNome()
	return _u
}

// SetDestinatarioCnpj sets the "destinatario_cnpj" field.
func (_u *FiscalRecordUpdateOne) SetDestinatarioCnpj(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetDestinatarioCnpj(v)
	return _u
}

// SetNillableDestinatarioCnpj sets the "destinatario_cnpj" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableDestinatarioCnpj(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetDestinatarioCnpj(*v)
	}
	return _u
}

// ClearDestinatarioCnpj clears the value of the "destinatario_cnpj" field.
func (_u *FiscalRecordUpdateOne) ClearDestinatarioCnpj() *FiscalRecordUpdateOne {
	_u.mutation.ClearDestinatarioCnpj()
	return _u
}

// SetDestinatarioNome sets the "destinatario_nome" field.
func (_u *FiscalRecordUpdateOne) SetDestinatarioNome(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetDestinatarioNome(v)
	return _u
}

// SetNillableDestinatarioNome sets the "destinatario_nome" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableDestinatarioNome(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetDestinatarioNome(*v)
	}
	return _u
}

// ClearDestinatarioNome clears the value of the "destinatario_nome" field.
func (_u *FiscalRecordUpdateOne) ClearDestinatarioNome() *FiscalRecordUpdateOne {
	_u.mutation.ClearDestinatarioNome()
	return _u
}

// SetColigada sets the "coligada" field.
func (_u *FiscalRecordUpdateOne) SetColigada(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetColigada(v)
	return _u
}

// SetNillableColigada sets the "coligada" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableColigada(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetColigada(*v)
	}
	return _u
}

// ClearColigada clears the value of the "coligada" field.
func (_u *FiscalRecordUpdateOne) ClearColigada() *FiscalRecordUpdateOne {
	_u.mutation.ClearColigada()
	return _u
}

// SetFilial sets the "filial" field.
func (_u *FiscalRecordUpdateOne) SetFilial(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetFilial(v)
	return _u
}

// SetNillableFilial sets the "filial" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableFilial(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetFilial(*v)
	}
	return _u
}

// ClearFilial clears the value of the "filial" field.
func (_u *FiscalRecordUpdateOne) ClearFilial() *FiscalRecordUpdateOne {
	_u.mutation.ClearFilial()
	return _u
}

// SetValorTotal sets the "valor_total" field.
func (_u *FiscalRecordUpdateOne) SetValorTotal(v float64) *FiscalRecordUpdateOne {
	_u.mutation.ResetValorTotal()
	_u.mutation.SetValorTotal(v)
	return _u
}

// SetNillableValorTotal sets the "valor_total" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableValorTotal(v *float64) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetValorTotal(*v)
	}
	return _u
}

// AddValorTotal adds value to the "valor_total" field.
func (_u *FiscalRecordUpdateOne) AddValorTotal(v float64) *FiscalRecordUpdateOne {
	_u.mutation.AddValorTotal(v)
	return _u
}

// ClearValorTotal clears the value of the "valor_total" field.
func (_u *FiscalRecordUpdateOne) ClearValorTotal() *FiscalRecordUpdateOne {
	_u.mutation.ClearValorTotal()
	return _u
}

// SetIsScanned sets the "is_scanned" field.
func (_u *FiscalRecordUpdateOne) SetIsScanned(v bool) *FiscalRecordUpdateOne {
	_u.mutation.SetIsScanned(v)
	return _u
}

// SetNillableIsScanned sets the "is_scanned" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableIsScanned(v *bool) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetIsScanned(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FiscalRecordUpdateOne) SetErrorMessage(v string) *FiscalRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableErrorMessage(v *string) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FiscalRecordUpdateOne) ClearErrorMessage() *FiscalRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingMs sets the "processing_ms" field.
func (_u *FiscalRecordUpdateOne) SetProcessingMs(v int64) *FiscalRecordUpdateOne {
	_u.mutation.ResetProcessingMs()
	_u.mutation.SetProcessingMs(v)
	return _u
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableProcessingMs(v *int64) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetProcessingMs(*v)
	}
	return _u
}

// AddProcessingMs adds value to the "processing_ms" field.
func (_u *FiscalRecordUpdateOne) AddProcessingMs(v int64) *FiscalRecordUpdateOne {
	_u.mutation.AddProcessingMs(v)
	return _u
}

// SetDocument sets the "document" field.
func (_u *FiscalRecordUpdateOne) SetDocument(v json.RawMessage) *FiscalRecordUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// AppendDocument appends value to the "document" field.
func (_u *FiscalRecordUpdateOne) AppendDocument(v json.RawMessage) *FiscalRecordUpdateOne {
	_u.mutation.AppendDocument(v)
	return _u
}

// ClearDocument clears the value of the "document" field.
func (_u *FiscalRecordUpdateOne) ClearDocument() *FiscalRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FiscalRecordUpdateOne) SetCreatedAt(v time.Time) *FiscalRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FiscalRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *FiscalRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBatch sets the "batch" edge to the ExtractBatch entity.
func (_u *FiscalRecordUpdateOne) SetBatch(v *ExtractBatch) *FiscalRecordUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the FiscalRecordMutation object of the builder.
func (_u *FiscalRecordUpdateOne) Mutation() *FiscalRecordMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the ExtractBatch entity.
func (_u *FiscalRecordUpdateOne) ClearBatch() *FiscalRecordUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the FiscalRecordUpdate builder.
func (_u *FiscalRecordUpdateOne) Where(ps ...predicate.FiscalRecord) *FiscalRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FiscalRecordUpdateOne) Select(field string, fields ...string) *FiscalRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FiscalRecord entity.
func (_u *FiscalRecordUpdateOne) Save(ctx context.Context) (*FiscalRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FiscalRecordUpdateOne) SaveX(ctx context.Context) *FiscalRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FiscalRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FiscalRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FiscalRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := fiscalrecord.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := fiscalrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fiscalrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingMs(); ok {
		if err := fiscalrecord.ProcessingMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_ms", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.processing_ms": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FiscalRecord.batch"`)
	}
	return nil
}

func (_u *FiscalRecordUpdateOne) sqlSave(ctx context.Context) (_node *FiscalRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fiscalrecord.Table, fiscalrecord.Columns, sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FiscalRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fiscalrecord.FieldID)
		for _, f := range fields {
			if !fiscalrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fiscalrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(fiscalrecord.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(fiscalrecord.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fiscalrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Numero(); ok {
		_spec.SetField(fiscalrecord.FieldNumero, field.TypeString, value)
	}
	if _u.mutation.NumeroCleared() {
		_spec.ClearField(fiscalrecord.FieldNumero, field.TypeString)
	}
	if value, ok := _u.mutation.ChaveAcesso(); ok {
		_spec.SetField(fiscalrecord.FieldChaveAcesso, field.TypeString, value)
	}
	if _u.mutation.ChaveAcessoCleared() {
		_spec.ClearField(fiscalrecord.FieldChaveAcesso, field.TypeString)
	}
	if value, ok := _u.mutation.DataEmissao(); ok {
		_spec.SetField(fiscalrecord.FieldDataEmissao, field.TypeString, value)
	}
	if _u.mutation.DataEmissaoCleared() {
		_spec.ClearField(fiscalrecord.FieldDataEmissao, field.TypeString)
	}
	if value, ok := _u.mutation.EmitenteCnpj(); ok {
		_spec.SetField(fiscalrecord.FieldEmitenteCnpj, field.TypeString, value)
	}
	if _u.mutation.EmitenteCnpjCleared() {
		_spec.ClearField(fiscalrecord.FieldEmitenteCnpj, field.TypeString)
	}
	if value, ok := _u.mutation.EmitenteNome(); ok {
		_spec.SetField(fiscalrecord.FieldEmitenteNome, field.TypeString, value)
	}
	if _u.mutation.EmitenteNomeCleared() {
		_spec.ClearField(fiscalrecord.FieldEmitenteNome, field.TypeString)
	}
	if value, ok := _u.mutation.DestinatarioCnpj(); ok {
		_spec.SetField(fiscalrecord.FieldDestinatarioCnpj, field.TypeString, value)
	}
	if _u.mutation.DestinatarioCnpjCleared() {
		_spec.ClearField(fiscalrecord.FieldDestinatarioCnpj, field.TypeString)
	}
	if value, ok := _u.mutation.DestinatarioNome(); ok {
		_spec.SetField(fiscalrecord.FieldDestinatarioNome, field.TypeString, value)
	}
	if _u.mutation.DestinatarioNomeCleared() {
		_spec.ClearField(fiscalrecord.FieldDestinatarioNome, field.TypeString)
	}
	if value, ok := _u.mutation.Coligada(); ok {
		_spec.SetField(fiscalrecord.FieldColigada, field.TypeString, value)
	}
	if _u.mutation.ColigadaCleared() {
		_spec.ClearField(fiscalrecord.FieldColigada, field.TypeString)
	}
	if value, ok := _u.mutation.Filial(); ok {
		_spec.SetField(fiscalrecord.FieldFilial, field.TypeString, value)
	}
	if _u.mutation.FilialCleared() {
		_spec.ClearField(fiscalrecord.FieldFilial, field.TypeString)
	}
	if value, ok := _u.mutation.ValorTotal(); ok {
		_spec.SetField(fiscalrecord.FieldValorTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValorTotal(); ok {
		_spec.AddField(fiscalrecord.FieldValorTotal, field.TypeFloat64, value)
	}
	if _u.mutation.ValorTotalCleared() {
		_spec.ClearField(fiscalrecord.FieldValorTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsScanned(); ok {
		_spec.SetField(fiscalrecord.FieldIsScanned, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fiscalrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fiscalrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingMs(); ok {
		_spec.SetField(fiscalrecord.FieldProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingMs(); ok {
		_spec.AddField(fiscalrecord.FieldProcessingMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(fiscalrecord.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDocument(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fiscalrecord.FieldDocument, value)
		})
	}
	if _u.mutation.DocumentCleared() {
		_spec.ClearField(fiscalrecord.FieldDocument, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fiscalrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fiscalrecord.BatchTable,
			Columns: []string{fiscalrecord.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractbatch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fiscalrecord.BatchTable,
			Columns: []string{fiscalrecord.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractbatch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FiscalRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fiscalrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
