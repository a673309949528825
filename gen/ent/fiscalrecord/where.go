// Code generated by ent, DO NOT EDIT.

package fiscalrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fiscaldata/nf-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldID, id))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldBatchID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldFilename, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldDocumentType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldStatus, v))
}

// Numero applies equality check predicate on the "numero" field. It's identical to NumeroEQ.
func Numero(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldNumero, v))
}

// ChaveAcesso applies equality check predicate on the "chave_acesso" field. It's identical to ChaveAcessoEQ.
func ChaveAcesso(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldChaveAcesso, v))
}

// DataEmissao applies equality check predicate on the "data_emissao" field. It's identical to DataEmissaoEQ.
func DataEmissao(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldDataEmissao, v))
}

// EmitenteCnpj applies equality check predicate on the "emitente_cnpj" field. It's identical to EmitenteCnpjEQ.
func EmitenteCnpj(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldEmitenteCnpj, v))
}

// EmitenteNome applies equality check predicate on the "emitente_nome" field. It's identical to EmitenteNomeEQ.
func EmitenteNome(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldEmitenteNome, v))
}

// DestinatarioCnpj applies equality check predicate on the "destinatario_cnpj" field. It's identical to DestinatarioCnpjEQ.
func DestinatarioCnpj(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldDestinatarioCnpj, v))
}

// DestinatarioNome applies equality check predicate on the "destinatario_nome" field. It's identical to DestinatarioNomeEQ.
func DestinatarioNome(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldDestinatarioNome, v))
}

// Coligada applies equality check predicate on the "coligada" field. It's identical to ColigadaEQ.
func Coligada(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldColigada, v))
}

// Filial applies equality check predicate on the "filial" field. It's identical to FilialEQ.
func Filial(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldFilial, v))
}

// ValorTotal applies equality check predicate on the "valor_total" field. It's identical to ValorTotalEQ.
func ValorTotal(v float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldValorTotal, v))
}

// IsScanned applies equality check predicate on the "is_scanned" field. It's identical to IsScannedEQ.
func IsScanned(v bool) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldIsScanned, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ProcessingMs applies equality check predicate on the "processing_ms" field. It's identical to ProcessingMsEQ.
func ProcessingMs(v int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldProcessingMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...uuid.UUID) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldBatchID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldFilename, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldDocumentType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldStatus, v))
}

// NumeroEQ applies the EQ predicate on the "numero" field.
func NumeroEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldNumero, v))
}

// NumeroNEQ applies the NEQ predicate on the "numero" field.
func NumeroNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldNumero, v))
}

// NumeroIn applies the In predicate on the "numero" field.
func NumeroIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldNumero, vs...))
}

// NumeroNotIn applies the NotIn predicate on the "numero" field.
func NumeroNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldNumero, vs...))
}

// NumeroGT applies the GT predicate on the "numero" field.
func NumeroGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldNumero, v))
}

// NumeroGTE applies the GTE predicate on the "numero" field.
func NumeroGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldNumero, v))
}

// NumeroLT applies the LT predicate on the "numero" field.
func NumeroLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldNumero, v))
}

// NumeroLTE applies the LTE predicate on the "numero" field.
func NumeroLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldNumero, v))
}

// NumeroContains applies the Contains predicate on the "numero" field.
func NumeroContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldNumero, v))
}

// NumeroHasPrefix applies the HasPrefix predicate on the "numero" field.
func NumeroHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldNumero, v))
}

// NumeroHasSuffix applies the HasSuffix predicate on the "numero" field.
func NumeroHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldNumero, v))
}

// NumeroIsNil applies the IsNil predicate on the "numero" field.
func NumeroIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldNumero))
}

// NumeroNotNil applies the NotNil predicate on the "numero" field.
func NumeroNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldNumero))
}

// NumeroEqualFold applies the EqualFold predicate on the "numero" field.
func NumeroEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldNumero, v))
}

// NumeroContainsFold applies the ContainsFold predicate on the "numero" field.
func NumeroContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldNumero, v))
}

// ChaveAcessoEQ applies the EQ predicate on the "chave_acesso" field.
func ChaveAcessoEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldChaveAcesso, v))
}

// ChaveAcessoNEQ applies the NEQ predicate on the "chave_acesso" field.
func ChaveAcessoNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldChaveAcesso, v))
}

// ChaveAcessoIn applies the In predicate on the "chave_acesso" field.
func ChaveAcessoIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldChaveAcesso, vs...))
}

// ChaveAcessoNotIn applies the NotIn predicate on the "chave_acesso" field.
func ChaveAcessoNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldChaveAcesso, vs...))
}

// ChaveAcessoGT applies the GT predicate on the "chave_acesso" field.
func ChaveAcessoGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldChaveAcesso, v))
}

// ChaveAcessoGTE applies the GTE predicate on the "chave_acesso" field.
func ChaveAcessoGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldChaveAcesso, v))
}

// ChaveAcessoLT applies the LT predicate on the "chave_acesso" field.
func ChaveAcessoLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldChaveAcesso, v))
}

// ChaveAcessoLTE applies the LTE predicate on the "chave_acesso" field.
func ChaveAcessoLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldChaveAcesso, v))
}

// ChaveAcessoContains applies the Contains predicate on the "chave_acesso" field.
func ChaveAcessoContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldChaveAcesso, v))
}

// ChaveAcessoHasPrefix applies the HasPrefix predicate on the "chave_acesso" field.
func ChaveAcessoHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldChaveAcesso, v))
}

// ChaveAcessoHasSuffix applies the HasSuffix predicate on the "chave_acesso" field.
func ChaveAcessoHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldChaveAcesso, v))
}

// ChaveAcessoIsNil applies the IsNil predicate on the "chave_acesso" field.
func ChaveAcessoIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldChaveAcesso))
}

// ChaveAcessoNotNil applies the NotNil predicate on the "chave_acesso" field.
func ChaveAcessoNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldChaveAcesso))
}

// ChaveAcessoEqualFold applies the EqualFold predicate on the "chave_acesso" field.
func ChaveAcessoEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldChaveAcesso, v))
}

// ChaveAcessoContainsFold applies the ContainsFold predicate on the "chave_acesso" field.
func ChaveAcessoContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldChaveAcesso, v))
}

// DataEmissaoEQ applies the EQ predicate on the "data_emissao" field.
func DataEmissaoEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldDataEmissao, v))
}

// DataEmissaoNEQ applies the NEQ predicate on the "data_emissao" field.
func DataEmissaoNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldDataEmissao, v))
}

// DataEmissaoIn applies the In predicate on the "data_emissao" field.
func DataEmissaoIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldDataEmissao, vs...))
}

// DataEmissaoNotIn applies the NotIn predicate on the "data_emissao" field.
func DataEmissaoNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldDataEmissao, vs...))
}

// DataEmissaoGT applies the GT predicate on the "data_emissao" field.
func DataEmissaoGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldDataEmissao, v))
}

// DataEmissaoGTE applies the GTE predicate on the "data_emissao" field.
func DataEmissaoGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldDataEmissao, v))
}

// DataEmissaoLT applies the LT predicate on the "data_emissao" field.
func DataEmissaoLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldDataEmissao, v))
}

// DataEmissaoLTE applies the LTE predicate on the "data_emissao" field.
func DataEmissaoLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldDataEmissao, v))
}

// DataEmissaoContains applies the Contains predicate on the "data_emissao" field.
func DataEmissaoContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldDataEmissao, v))
}

// DataEmissaoHasPrefix applies the HasPrefix predicate on the "data_emissao" field.
func DataEmissaoHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldDataEmissao, v))
}

// DataEmissaoHasSuffix applies the HasSuffix predicate on the "data_emissao" field.
func DataEmissaoHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldDataEmissao, v))
}

// DataEmissaoIsNil applies the IsNil predicate on the "data_emissao" field.
func DataEmissaoIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldDataEmissao))
}

// DataEmissaoNotNil applies the NotNil predicate on the "data_emissao" field.
func DataEmissaoNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldDataEmissao))
}

// DataEmissaoEqualFold applies the EqualFold predicate on the "data_emissao" field.
func DataEmissaoEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldDataEmissao, v))
}

// DataEmissaoContainsFold applies the ContainsFold predicate on the "data_emissao" field.
func DataEmissaoContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldDataEmissao, v))
}

// EmitenteCnpjEQ applies the EQ predicate on the "emitente_cnpj" field.
func EmitenteCnpjEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldEmitenteCnpj, v))
}

// EmitenteCnpjNEQ applies the NEQ predicate on the "emitente_cnpj" field.
func EmitenteCnpjNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldEmitenteCnpj, v))
}

// EmitenteCnpjIn applies the In predicate on the "emitente_cnpj" field.
func EmitenteCnpjIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldEmitenteCnpj, vs...))
}

// EmitenteCnpjNotIn applies the NotIn predicate on the "emitente_cnpj" field.
func EmitenteCnpjNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldEmitenteCnpj, vs...))
}

// EmitenteCnpjGT applies the GT predicate on the "emitente_cnpj" field.
func EmitenteCnpjGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldEmitenteCnpj, v))
}

// EmitenteCnpjGTE applies the GTE predicate on the "emitente_cnpj" field.
func EmitenteCnpjGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldEmitenteCnpj, v))
}

// EmitenteCnpjLT applies the LT predicate on the "emitente_cnpj" field.
func EmitenteCnpjLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldEmitenteCnpj, v))
}

// EmitenteCnpjLTE applies the LTE predicate on the "emitente_cnpj" field.
func EmitenteCnpjLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldEmitenteCnpj, v))
}

// EmitenteCnpjContains applies the Contains predicate on the "emitente_cnpj" field.
func EmitenteCnpjContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldEmitenteCnpj, v))
}

// EmitenteCnpjHasPrefix applies the HasPrefix predicate on the "emitente_cnpj" field.
func EmitenteCnpjHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldEmitenteCnpj, v))
}

// EmitenteCnpjHasSuffix applies the HasSuffix predicate on the "emitente_cnpj" field.
func EmitenteCnpjHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldEmitenteCnpj, v))
}

// EmitenteCnpjIsNil applies the IsNil predicate on the "emitente_cnpj" field.
func EmitenteCnpjIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldEmitenteCnpj))
}

// EmitenteCnpjNotNil applies the NotNil predicate on the "emitente_cnpj" field.
func EmitenteCnpjNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldEmitenteCnpj))
}

// EmitenteCnpjEqualFold applies the EqualFold predicate on the "emitente_cnpj" field.
func EmitenteCnpjEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldEmitenteCnpj, v))
}

// EmitenteCnpjContainsFold applies the ContainsFold predicate on the "emitente_cnpj" field.
func EmitenteCnpjContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldEmitenteCnpj, v))
}

// EmitenteNomeEQ applies the EQ predicate on the "emitente_nome" field.
func EmitenteNomeEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldEmitenteNome, v))
}

// EmitenteNomeNEQ applies the NEQ predicate on the "emitente_nome" field.
func EmitenteNomeNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldEmitenteNome, v))
}

// EmitenteNomeIn applies the In predicate on the "emitente_nome" field.
func EmitenteNomeIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldEmitenteNome, vs...))
}

// EmitenteNomeNotIn applies the NotIn predicate on the "emitente_nome" field.
func EmitenteNomeNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldEmitenteNome, vs...))
}

// EmitenteNomeGT applies the GT predicate on the "emitente_nome" field.
func EmitenteNomeGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldEmitenteNome, v))
}

// EmitenteNomeGTE applies the GTE predicate on the "emitente_nome" field.
func EmitenteNomeGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldEmitenteNome, v))
}

// EmitenteNomeLT applies the LT predicate on the "emitente_nome" field.
func EmitenteNomeLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldEmitenteNome, v))
}

// EmitenteNomeLTE applies the LTE predicate on the "emitente_nome" field.
func EmitenteNomeLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldEmitenteNome, v))
}

// EmitenteNomeContains applies the Contains predicate on the "emitente_nome" field.
func EmitenteNomeContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldEmitenteNome, v))
}

// EmitenteNomeHasPrefix applies the HasPrefix predicate on the "emitente_nome" field.
func EmitenteNomeHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldEmitenteNome, v))
}

// EmitenteNomeHasSuffix applies the HasSuffix predicate on the "emitente_nome" field.
func EmitenteNomeHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldEmitenteNome, v))
}

// EmitenteNomeIsNil applies the IsNil predicate on the "emitente_nome" field.
func EmitenteNomeIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldEmitenteNome))
}

// EmitenteNomeNotNil applies the NotNil predicate on the "emitente_nome" field.
func EmitenteNomeNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldEmitenteNome))
}

// EmitenteNomeEqualFold applies the EqualFold predicate on the "emitente_nome" field.
func EmitenteNomeEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldEmitenteNome, v))
}

// EmitenteNomeContainsFold applies the ContainsFold predicate on the "emitente_nome" field.
func EmitenteNomeContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldEmitenteNome, v))
}

// DestinatarioCnpjEQ applies the EQ predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjNEQ applies the NEQ predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjIn applies the In predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldDestinatarioCnpj, vs...))
}

// DestinatarioCnpjNotIn applies the NotIn predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldDestinatarioCnpj, vs...))
}

// DestinatarioCnpjGT applies the GT predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjGTE applies the GTE predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjLT applies the LT predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjLTE applies the LTE predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjContains applies the Contains predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjHasPrefix applies the HasPrefix predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjHasSuffix applies the HasSuffix predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjIsNil applies the IsNil predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldDestinatarioCnpj))
}

// DestinatarioCnpjNotNil applies the NotNil predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldDestinatarioCnpj))
}

// DestinatarioCnpjEqualFold applies the EqualFold predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldDestinatarioCnpj, v))
}

// DestinatarioCnpjContainsFold applies the ContainsFold predicate on the "destinatario_cnpj" field.
func DestinatarioCnpjContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldDestinatarioCnpj, v))
}

// DestinatarioNomeEQ applies the EQ predicate on the "destinatario_nome" field.
func DestinatarioNomeEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldDestinatarioNome, v))
}

// DestinatarioNomeNEQ applies the NEQ predicate on the "destinatario_nome" field.
func DestinatarioNomeNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldDestinatarioNome, v))
}

// DestinatarioNomeIn applies the In predicate on the "destinatario_nome" field.
func DestinatarioNomeIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldDestinatarioNome, vs...))
}

// DestinatarioNomeNotIn applies the NotIn predicate on the "destinatario_nome" field.
func DestinatarioNomeNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldDestinatarioNome, vs...))
}

// DestinatarioNomeGT applies the GT predicate on the "destinatario_nome" field.
func DestinatarioNomeGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldDestinatarioNome, v))
}

// DestinatarioNomeGTE applies the GTE predicate on the "destinatario_nome" field.
func DestinatarioNomeGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldDestinatarioNome, v))
}

// DestinatarioNomeLT applies the LT predicate on the "destinatario_nome" field.
func DestinatarioNomeLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldDestinatarioNome, v))
}

// DestinatarioNomeLTE applies the LTE predicate on the "destinatario_nome" field.
func DestinatarioNomeLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldDestinatarioNome, v))
}

// DestinatarioNomeContains applies the Contains predicate on the "destinatario_nome" field.
func DestinatarioNomeContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldDestinatarioNome, v))
}

// DestinatarioNomeHasPrefix applies the HasPrefix predicate on the "destinatario_nome" field.
func DestinatarioNomeHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldDestinatarioNome, v))
}

// DestinatarioNomeHasSuffix applies the HasSuffix predicate on the "destinatario_nome" field.
func DestinatarioNomeHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldDestinatarioNome, v))
}

// DestinatarioNomeIsNil applies the IsNil predicate on the "destinatario_nome" field.
func DestinatarioNomeIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldDestinatarioNome))
}

// DestinatarioNomeNotNil applies the NotNil predicate on the "destinatario_nome" field.
func DestinatarioNomeNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldDestinatarioNome))
}

// DestinatarioNomeEqualFold applies the EqualFold predicate on the "destinatario_nome" field.
func DestinatarioNomeEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldDestinatarioNome, v))
}

// DestinatarioNomeContainsFold applies the ContainsFold predicate on the "destinatario_nome" field.
func DestinatarioNomeContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldDestinatarioNome, v))
}

// ColigadaEQ applies the EQ predicate on the "coligada" field.
func ColigadaEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldColigada, v))
}

// ColigadaNEQ applies the NEQ predicate on the "coligada" field.
func ColigadaNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldColigada, v))
}

// ColigadaIn applies the In predicate on the "coligada" field.
func ColigadaIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldColigada, vs...))
}

// ColigadaNotIn applies the NotIn predicate on the "coligada" field.
func ColigadaNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldColigada, vs...))
}

// ColigadaGT applies the GT predicate on the "coligada" field.
func ColigadaGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldColigada, v))
}

// ColigadaGTE applies the GTE predicate on the "coligada" field.
func ColigadaGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldColigada, v))
}

// ColigadaLT applies the LT predicate on the "coligada" field.
func ColigadaLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldColigada, v))
}

// ColigadaLTE applies the LTE predicate on the "coligada" field.
func ColigadaLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldColigada, v))
}

// ColigadaContains applies the Contains predicate on the "coligada" field.
func ColigadaContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldColigada, v))
}

// ColigadaHasPrefix applies the HasPrefix predicate on the "coligada" field.
func ColigadaHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldColigada, v))
}

// ColigadaHasSuffix applies the HasSuffix predicate on the "coligada" field.
func ColigadaHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldColigada, v))
}

// ColigadaIsNil applies the IsNil predicate on the "coligada" field.
func ColigadaIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldColigada))
}

// ColigadaNotNil applies the NotNil predicate on the "coligada" field.
func ColigadaNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldColigada))
}

// ColigadaEqualFold applies the EqualFold predicate on the "coligada" field.
func ColigadaEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldColigada, v))
}

// ColigadaContainsFold applies the ContainsFold predicate on the "coligada" field.
func ColigadaContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldColigada, v))
}

// FilialEQ applies the EQ predicate on the "filial" field.
func FilialEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldFilial, v))
}

// FilialNEQ applies the NEQ predicate on the "filial" field.
func FilialNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldFilial, v))
}

// FilialIn applies the In predicate on the "filial" field.
func FilialIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldFilial, vs...))
}

// FilialNotIn applies the NotIn predicate on the "filial" field.
func FilialNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldFilial, vs...))
}

// FilialGT applies the GT predicate on the "filial" field.
func FilialGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldFilial, v))
}

// FilialGTE applies the GTE predicate on the "filial" field.
func FilialGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldFilial, v))
}

// FilialLT applies the LT predicate on the "filial" field.
func FilialLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldFilial, v))
}

// FilialLTE applies the LTE predicate on the "filial" field.
func FilialLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldFilial, v))
}

// FilialContains applies the Contains predicate on the "filial" field.
func FilialContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldFilial, v))
}

// FilialHasPrefix applies the HasPrefix predicate on the "filial" field.
func FilialHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldFilial, v))
}

// FilialHasSuffix applies the HasSuffix predicate on the "filial" field.
func FilialHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldFilial, v))
}

// FilialIsNil applies the IsNil predicate on the "filial" field.
func FilialIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldFilial))
}

// FilialNotNil applies the NotNil predicate on the "filial" field.
func FilialNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldFilial))
}

// FilialEqualFold applies the EqualFold predicate on the "filial" field.
func FilialEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldFilial, v))
}

// FilialContainsFold applies the ContainsFold predicate on the "filial" field.
func FilialContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldFilial, v))
}

// ValorTotalEQ applies the EQ predicate on the "valor_total" field.
func ValorTotalEQ(v float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldValorTotal, v))
}

// ValorTotalNEQ applies the NEQ predicate on the "valor_total" field.
func ValorTotalNEQ(v float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldValorTotal, v))
}

// ValorTotalIn applies the In predicate on the "valor_total" field.
func ValorTotalIn(vs ...float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldValorTotal, vs...))
}

// ValorTotalNotIn applies the NotIn predicate on the "valor_total" field.
func ValorTotalNotIn(vs ...float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldValorTotal, vs...))
}

// ValorTotalGT applies the GT predicate on the "valor_total" field.
func ValorTotalGT(v float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldValorTotal, v))
}

// ValorTotalGTE applies the GTE predicate on the "valor_total" field.
func ValorTotalGTE(v float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldValorTotal, v))
}

// ValorTotalLT applies the LT predicate on the "valor_total" field.
func ValorTotalLT(v float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldValorTotal, v))
}

// ValorTotalLTE applies the LTE predicate on the "valor_total" field.
func ValorTotalLTE(v float64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldValorTotal, v))
}

// ValorTotalIsNil applies the IsNil predicate on the "valor_total" field.
func ValorTotalIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldValorTotal))
}

// ValorTotalNotNil applies the NotNil predicate on the "valor_total" field.
func ValorTotalNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldValorTotal))
}

// IsScannedEQ applies the EQ predicate on the "is_scanned" field.
func IsScannedEQ(v bool) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldIsScanned, v))
}

// IsScannedNEQ applies the NEQ predicate on the "is_scanned" field.
func IsScannedNEQ(v bool) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldIsScanned, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProcessingMsEQ applies the EQ predicate on the "processing_ms" field.
func ProcessingMsEQ(v int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldProcessingMs, v))
}

// ProcessingMsNEQ applies the NEQ predicate on the "processing_ms" field.
func ProcessingMsNEQ(v int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldProcessingMs, v))
}

// ProcessingMsIn applies the In predicate on the "processing_ms" field.
func ProcessingMsIn(vs ...int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldProcessingMs, vs...))
}

// ProcessingMsNotIn applies the NotIn predicate on the "processing_ms" field.
func ProcessingMsNotIn(vs ...int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldProcessingMs, vs...))
}

// ProcessingMsGT applies the GT predicate on the "processing_ms" field.
func ProcessingMsGT(v int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldProcessingMs, v))
}

// ProcessingMsGTE applies the GTE predicate on the "processing_ms" field.
func ProcessingMsGTE(v int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldProcessingMs, v))
}

// ProcessingMsLT applies the LT predicate on the "processing_ms" field.
func ProcessingMsLT(v int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldProcessingMs, v))
}

// ProcessingMsLTE applies the LTE predicate on the "processing_ms" field.
func ProcessingMsLTE(v int64) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldProcessingMs, v))
}

// DocumentIsNil applies the IsNil predicate on the "document" field.
func DocumentIsNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIsNull(FieldDocument))
}

// DocumentNotNil applies the NotNil predicate on the "document" field.
func DocumentNotNil() predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotNull(FieldDocument))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.FiscalRecord {
	return predicate.FiscalRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.ExtractBatch) predicate.FiscalRecord {
	return predicate.FiscalRecord(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FiscalRecord) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FiscalRecord) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FiscalRecord) predicate.FiscalRecord {
	return predicate.FiscalRecord(sql.NotPredicates(p))
}
