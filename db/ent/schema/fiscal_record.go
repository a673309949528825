package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/db/ent/schema/utils"
)

// FiscalRecord is one document outcome inside a batch. The full document is
// kept as JSON; the columns promote the fields queries filter on.
type FiscalRecord struct{ ent.Schema }

func (FiscalRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fiscal_record"},
	}
}

func (FiscalRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("batch_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("document_type").
			Default(string(constants.DocTypeUnknown)).
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.String("status").
			Validate(utils.EnumValidator(constants.ProcessingStatuses...)),
		field.String("numero").Optional().Nillable(),
		field.String("chave_acesso").Optional().Nillable(),
		field.String("data_emissao").Optional().Nillable(),
		field.String("emitente_cnpj").Optional().Nillable(),
		field.String("emitente_nome").Optional().Nillable(),
		field.String("destinatario_cnpj").Optional().Nillable(),
		field.String("destinatario_nome").Optional().Nillable(),
		field.String("coligada").Optional().Nillable(),
		field.String("filial").Optional().Nillable(),
		field.Float("valor_total").Optional().Nillable(),
		field.Bool("is_scanned").Default(false),
		field.String("error_message").Optional().Nillable(),
		field.Int64("processing_ms").NonNegative().Default(0),
		field.JSON("document", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (FiscalRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", ExtractBatch.Type).
			Ref("records").
			Field("batch_id").
			Unique().
			Required(),
	}
}

func (FiscalRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("batch_id", "status"),
		index.Fields("destinatario_cnpj"),
	}
}
