// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractBatchColumns holds the columns for the "extract_batch" table.
	ExtractBatchColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "RUNNING"},
		{Name: "total_files", Type: field.TypeInt},
		{Name: "succeeded", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "cancelled", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "report_path", Type: field.TypeString, Nullable: true},
	}
	// ExtractBatchTable holds the schema information for the "extract_batch" table.
	ExtractBatchTable = &schema.Table{
		Name:       "extract_batch",
		Columns:    ExtractBatchColumns,
		PrimaryKey: []*schema.Column{ExtractBatchColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractbatch_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractBatchColumns[2], ExtractBatchColumns[7]},
			},
		},
	}
	// FiscalRecordColumns holds the columns for the "fiscal_record" table.
	FiscalRecordColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString, Default: "Desconhecido"},
		{Name: "status", Type: field.TypeString},
		{Name: "numero", Type: field.TypeString, Nullable: true},
		{Name: "chave_acesso", Type: field.TypeString, Nullable: true},
		{Name: "data_emissao", Type: field.TypeString, Nullable: true},
		{Name: "emitente_cnpj", Type: field.TypeString, Nullable: true},
		{Name: "emitente_nome", Type: field.TypeString, Nullable: true},
		{Name: "destinatario_cnpj", Type: field.TypeString, Nullable: true},
		{Name: "destinatario_nome", Type: field.TypeString, Nullable: true},
		{Name: "coligada", Type: field.TypeString, Nullable: true},
		{Name: "filial", Type: field.TypeString, Nullable: true},
		{Name: "valor_total", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_scanned", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processing_ms", Type: field.TypeInt64, Default: 0},
		{Name: "document", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// FiscalRecordTable holds the schema information for the "fiscal_record" table.
	FiscalRecordTable = &schema.Table{
		Name:       "fiscal_record",
		Columns:    FiscalRecordColumns,
		PrimaryKey: []*schema.Column{FiscalRecordColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fiscal_record_extract_batch_records",
				Columns:    []*schema.Column{FiscalRecordColumns[19]},
				RefColumns: []*schema.Column{ExtractBatchColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fiscalrecord_batch_id",
				Unique:  false,
				Columns: []*schema.Column{FiscalRecordColumns[19]},
			},
			{
				Name:    "fiscalrecord_batch_id_status",
				Unique:  false,
				Columns: []*schema.Column{FiscalRecordColumns[19], FiscalRecordColumns[3]},
			},
			{
				Name:    "fiscalrecord_destinatario_cnpj",
				Unique:  false,
				Columns: []*schema.Column{FiscalRecordColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractBatchTable,
		FiscalRecordTable,
	}
)

func init() {
	ExtractBatchTable.Annotation = &entsql.Annotation{
		Table: "extract_batch",
	}
	FiscalRecordTable.ForeignKeys[0].RefTable = ExtractBatchTable
	FiscalRecordTable.Annotation = &entsql.Annotation{
		Table: "fiscal_record",
	}
}
