package schema

import (
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

// ExtractBatch is one submitted extraction run.
type ExtractBatch struct{ ent.Schema }

func (ExtractBatch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_batch"},
	}
}

func (ExtractBatch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// Submitted directory or archive; "upload" for inline payloads.
		field.String("source").NotEmpty(),
		field.String("status").
			Default(string(constants.BatchRunning)).
			Validate(utils.EnumValidator(constants.BatchStatuses...)),
		field.Int("total_files").NonNegative(),
		field.Int("succeeded").Default(0),
		field.Int("failed").Default(0),
		field.Int("cancelled").Default(0),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("report_path").Optional().Nillable(),
	}
}

func (ExtractBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("records", FiscalRecord.Type),
	}
}

func (ExtractBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
	}
}
