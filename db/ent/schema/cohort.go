package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Cohort struct{ ent.Schema }

func (Cohort) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cohorts"},
	}
}

func (Cohort) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.String("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Cohort) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("features", FeatureRecord.Type),
		edge.To("checkpoints", Checkpoint.Type),
	}
}
