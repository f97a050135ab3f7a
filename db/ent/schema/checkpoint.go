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
)

type Checkpoint struct{ ent.Schema }

func (Checkpoint) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "checkpoints"},
	}
}

func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so the one-row-per-owner index is expressible
		field.UUID("cohort_id", uuid.UUID{}),
		field.String("last_processed_unit_id").Optional(),
		field.JSON("processed_unit_ids", []string{}),
		field.Int("total_units").NonNegative(),
		field.Time("start_time"),
		field.Time("last_checkpoint_time").Default(time.Now).UpdateDefault(time.Now),
		field.Int("derived_record_count").NonNegative(),
	}
}

func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cohort", Cohort.Type).
			Ref("checkpoints").
			Field("cohort_id").
			Required().
			Unique(),
	}
}

func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		// at most one live checkpoint per owner
		index.Fields("cohort_id").Unique(),
	}
}
