// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
	"github.com/google/uuid"
)

// FiscalRecordCreate is the builder for creating a FiscalRecord entity.
type FiscalRecordCreate struct {
	config
	mutation *FiscalRecordMutation
	hooks    []Hook
}

// SetBatchID sets the "batch_id" field.
func (_c *FiscalRecordCreate) SetBatchID(v uuid.UUID) *FiscalRecordCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *FiscalRecordCreate) SetFilename(v string) *FiscalRecordCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *FiscalRecordCreate) SetDocumentType(v string) *FiscalRecordCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableDocumentType(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetDocumentType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FiscalRecordCreate) SetStatus(v string) *FiscalRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNumero sets the "numero" field.
func (_c *FiscalRecordCreate) SetNumero(v string) *FiscalRecordCreate {
	_c.mutation.SetNumero(v)
	return _c
}

// SetNillableNumero sets the "numero" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableNumero(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetNumero(*v)
	}
	return _c
}

// SetChaveAcesso sets the "chave_acesso" field.
func (_c *FiscalRecordCreate) SetChaveAcesso(v string) *FiscalRecordCreate {
	_c.mutation.SetChaveAcesso(v)
	return _c
}

// SetNillableChaveAcesso sets the "chave_acesso" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableChaveAcesso(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetChaveAcesso(*v)
	}
	return _c
}

// SetDataEmissao sets the "data_emissao" field.
func (_c *FiscalRecordCreate) SetDataEmissao(v string) *FiscalRecordCreate {
	_c.mutation.SetDataEmissao(v)
	return _c
}

// SetNillableDataEmissao sets the "data_emissao" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableDataEmissao(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetDataEmissao(*v)
	}
	return _c
}

// SetEmitenteCnpj sets the "emitente_cnpj" field.
func (_c *FiscalRecordCreate) SetEmitenteCnpj(v string) *FiscalRecordCreate {
	_c.mutation.SetEmitenteCnpj(v)
	return _c
}

// SetNillableEmitenteCnpj sets the "emitente_cnpj" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableEmitenteCnpj(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetEmitenteCnpj(*v)
	}
	return _c
}

// SetEmitenteNome sets the "emitente_nome" field.
func (_c *FiscalRecordCreate) SetEmitenteNome(v string) *FiscalRecordCreate {
	_c.mutation.SetEmitenteNome(v)
	return _c
}

// SetNillableEmitenteNome sets the "emitente_nome" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableEmitenteNome(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetEmitenteNome(*v)
	}
	return _c
}

// SetDestinatarioCnpj sets the "destinatario_cnpj" field.
func (_c *FiscalRecordCreate) SetDestinatarioCnpj(v string) *FiscalRecordCreate {
	_c.mutation.SetDestinatarioCnpj(v)
	return _c
}

// SetNillableDestinatarioCnpj sets the "destinatario_cnpj" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableDestinatarioCnpj(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetDestinatarioCnpj(*v)
	}
	return _c
}

// SetDestinatarioNome sets the "destinatario_nome" field.
func (_c *FiscalRecordCreate) SetDestinatarioNome(v string) *FiscalRecordCreate {
	_c.mutation.SetDestinatarioNome(v)
	return _c
}

// SetNillableDestinatarioNome sets the "destinatario_nome" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableDestinatarioNome(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetDestinatarioNome(*v)
	}
	return _c
}

// SetColigada sets the "coligada" field.
func (_c *FiscalRecordCreate) SetColigada(v string) *FiscalRecordCreate {
	_c.mutation.SetColigada(v)
	return _c
}

// SetNillableColigada sets the "coligada" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableColigada(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetColigada(*v)
	}
	return _c
}

// SetFilial sets the "filial" field.
func (_c *FiscalRecordCreate) SetFilial(v string) *FiscalRecordCreate {
	_c.mutation.SetFilial(v)
	return _c
}

// SetNillableFilial sets the "filial" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableFilial(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetFilial(*v)
	}
	return _c
}

// SetValorTotal sets the "valor_total" field.
func (_c *FiscalRecordCreate) SetValorTotal(v float64) *FiscalRecordCreate {
	_c.mutation.SetValorTotal(v)
	return _c
}

// SetNillableValorTotal sets the "valor_total" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableValorTotal(v *float64) *FiscalRecordCreate {
	if v != nil {
		_c.SetValorTotal(*v)
	}
	return _c
}

// SetIsScanned sets the "is_scanned" field.
func (_c *FiscalRecordCreate) SetIsScanned(v bool) *FiscalRecordCreate {
	_c.mutation.SetIsScanned(v)
	return _c
}

// SetNillableIsScanned sets the "is_scanned" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableIsScanned(v *bool) *FiscalRecordCreate {
	if v != nil {
		_c.SetIsScanned(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FiscalRecordCreate) SetErrorMessage(v string) *FiscalRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableErrorMessage(v *string) *FiscalRecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessingMs sets the "processing_ms" field.
func (_c *FiscalRecordCreate) SetProcessingMs(v int64) *FiscalRecordCreate {
	_c.mutation.SetProcessingMs(v)
	return _c
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableProcessingMs(v *int64) *FiscalRecordCreate {
	if v != nil {
		_c.SetProcessingMs(*v)
	}
	return _c
}

// SetDocument sets the "document" field.
func (_c *FiscalRecordCreate) SetDocument(v json.RawMessage) *FiscalRecordCreate {
	_c.mutation.SetDocument(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FiscalRecordCreate) SetCreatedAt(v time.Time) *FiscalRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableCreatedAt(v *time.Time) *FiscalRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FiscalRecordCreate) SetID(v uuid.UUID) *FiscalRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FiscalRecordCreate) SetNillableID(v *uuid.UUID) *FiscalRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBatch sets the "batch" edge to the ExtractBatch entity.
func (_c *FiscalRecordCreate) SetBatch(v *ExtractBatch) *FiscalRecordCreate {
	return _c.SetBatchID(v.ID)
}

// Mutation returns the FiscalRecordMutation object of the builder.
func (_c *FiscalRecordCreate) Mutation() *FiscalRecordMutation {
	return _c.mutation
}

// Save creates the FiscalRecord in the database.
func (_c *FiscalRecordCreate) Save(ctx context.Context) (*FiscalRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FiscalRecordCreate) SaveX(ctx context.Context) *FiscalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FiscalRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FiscalRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FiscalRecordCreate) defaults() {
	if _, ok := _c.mutation.DocumentType(); !ok {
		v := fiscalrecord.DefaultDocumentType
		_c.mutation.SetDocumentType(v)
	}
	if _, ok := _c.mutation.IsScanned(); !ok {
		v := fiscalrecord.DefaultIsScanned
		_c.mutation.SetIsScanned(v)
	}
	if _, ok := _c.mutation.ProcessingMs(); !ok {
		v := fiscalrecord.DefaultProcessingMs
		_c.mutation.SetProcessingMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fiscalrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fiscalrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FiscalRecordCreate) check() error {
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "FiscalRecord.batch_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "FiscalRecord.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := fiscalrecord.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "FiscalRecord.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := fiscalrecord.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FiscalRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fiscalrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsScanned(); !ok {
		return &ValidationError{Name: "is_scanned", err: errors.New(`ent: missing required field "FiscalRecord.is_scanned"`)}
	}
	if _, ok := _c.mutation.ProcessingMs(); !ok {
		return &ValidationError{Name: "processing_ms", err: errors.New(`ent: missing required field "FiscalRecord.processing_ms"`)}
	}
	if v, ok := _c.mutation.ProcessingMs(); ok {
		if err := fiscalrecord.ProcessingMsValidator(v); err != nil {
			return &ValidationError{Name: "processing_ms", err: fmt.Errorf(`ent: validator failed for field "FiscalRecord.processing_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FiscalRecord.created_at"`)}
	}
	if len(_c.mutation.BatchIDs()) == 0 {
		return &ValidationError{Name: "batch", err: errors.New(`ent: missing required edge "FiscalRecord.batch"`)}
	}
	return nil
}

func (_c *FiscalRecordCreate) sqlSave(ctx context.Context) (*FiscalRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FiscalRecordCreate) createSpec() (*FiscalRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FiscalRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fiscalrecord.Table, sqlgraph.NewFieldSpec(fiscalrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(fiscalrecord.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(fiscalrecord.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fiscalrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Numero(); ok {
		_spec.SetField(fiscalrecord.FieldNumero, field.TypeString, value)
		_node.Numero = &value
	}
	if value, ok := _c.mutation.ChaveAcesso(); ok {
		_spec.SetField(fiscalrecord.FieldChaveAcesso, field.TypeString, value)
		_node.ChaveAcesso = &value
	}
	if value, ok := _c.mutation.DataEmissao(); ok {
		_spec.SetField(fiscalrecord.FieldDataEmissao, field.TypeString, value)
		_node.DataEmissao = &value
	}
	if value, ok := _c.mutation.EmitenteCnpj(); ok {
		_spec.SetField(fiscalrecord.FieldEmitenteCnpj, field.TypeString, value)
		_node.EmitenteCnpj = &value
	}
	if value, ok := _c.mutation.EmitenteNome(); ok {
		_spec.SetField(fiscalrecord.FieldEmitenteNome, field.TypeString, value)
		_node.EmitenteNome = &value
	}
	if value, ok := _c.mutation.DestinatarioCnpj(); ok {
		_spec.SetField(fiscalrecord.FieldDestinatarioCnpj, field.TypeString, value)
		_node.DestinatarioCnpj = &value
	}
	if value, ok := _c.mutation.DestinatarioNome(); ok {
		_spec.SetField(fiscalrecord.FieldDestinatarioNome, field.TypeString, value)
		_node.DestinatarioNome = &value
	}
	if value, ok := _c.mutation.Coligada(); ok {
		_spec.SetField(fiscalrecord.FieldColigada, field.TypeString, value)
		_node.Coligada = &value
	}
	if value, ok := _c.mutation.Filial(); ok {
		_spec.SetField(fiscalrecord.FieldFilial, field.TypeString, value)
		_node.Filial = &value
	}
	if value, ok := _c.mutation.ValorTotal(); ok {
		_spec.SetField(fiscalrecord.FieldValorTotal, field.TypeFloat64, value)
		_node.ValorTotal = &value
	}
	if value, ok := _c.mutation.IsScanned(); ok {
		_spec.SetField(fiscalrecord.FieldIsScanned, field.TypeBool, value)
		_node.IsScanned = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(fiscalrecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ProcessingMs(); ok {
		_spec.SetField(fiscalrecord.FieldProcessingMs, field.TypeInt64, value)
		_node.ProcessingMs = value
	}
	if value, ok := _c.mutation.Document(); ok {
		_spec.SetField(fiscalrecord.FieldDocument, field.TypeJSON, value)
		_node.Document = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fiscalrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
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
		_node.BatchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FiscalRecordCreateBulk is the builder for creating many FiscalRecord entities in bulk.
type FiscalRecordCreateBulk struct {
	config
	err      error
	builders []*FiscalRecordCreate
}

// Save creates the FiscalRecord entities in the database.
func (_c *FiscalRecordCreateBulk) Save(ctx context.Context) ([]*FiscalRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FiscalRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FiscalRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FiscalRecordCreateBulk) SaveX(ctx context.Context) []*FiscalRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FiscalRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FiscalRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
