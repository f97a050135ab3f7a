package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/db/ent/schema/utils"

	"github.com/google/uuid"
)

type FeatureRecord struct {
	ent.Schema
}

func (FeatureRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "feature_records"},
	}
}

func (FeatureRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define the composite unique index
		field.UUID("cohort_id", uuid.UUID{}),
		field.String("patient_id").NotEmpty(),
		field.String("unit_id").NotEmpty(),
		field.String("feature_code").NotEmpty(),
		field.String("value").Optional().Nillable(),
		field.String("unit").Optional().Nillable(),
		field.Time("effective_date").Optional().Nillable(),
		field.String("source_ref").Optional().Nillable(),
		// natural key materialized by the dedup projection; NULL fields are
		// folded to a sentinel so the unique index stays NULL-tolerant
		field.String("natural_key").NotEmpty(),
		field.String("source").
			Validate(utils.EnumValidator(
				string(constants.SourceExtracted),
				string(constants.SourceReference),
			)),
		field.Time("extracted_at").Default(time.Now).
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

func (FeatureRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE cohort
		edge.From("cohort", Cohort.Type).
			Ref("features").
			Field("cohort_id").
			Required().
			Unique(),
	}
}

func (FeatureRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cohort_id", "natural_key").Unique(),
		index.Fields("cohort_id", "patient_id"),
		index.Fields("cohort_id", "unit_id"),
	}
}
