// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "last_processed_unit_id", Type: field.TypeString, Nullable: true},
		{Name: "processed_unit_ids", Type: field.TypeJSON},
		{Name: "total_units", Type: field.TypeInt},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "last_checkpoint_time", Type: field.TypeTime},
		{Name: "derived_record_count", Type: field.TypeInt},
		{Name: "cohort_id", Type: field.TypeUUID},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_cohorts_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[7]},
				RefColumns: []*schema.Column{CohortsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_cohort_id",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[7]},
			},
		},
	}
	// CohortsColumns holds the columns for the "cohorts" table.
	CohortsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CohortsTable holds the schema information for the "cohorts" table.
	CohortsTable = &schema.Table{
		Name:       "cohorts",
		Columns:    CohortsColumns,
		PrimaryKey: []*schema.Column{CohortsColumns[0]},
	}
	// FeatureRecordsColumns holds the columns for the "feature_records" table.
	FeatureRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "feature_code", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "effective_date", Type: field.TypeTime, Nullable: true},
		{Name: "source_ref", Type: field.TypeString, Nullable: true},
		{Name: "natural_key", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "extracted_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "cohort_id", Type: field.TypeUUID},
	}
	// FeatureRecordsTable holds the schema information for the "feature_records" table.
	FeatureRecordsTable = &schema.Table{
		Name:       "feature_records",
		Columns:    FeatureRecordsColumns,
		PrimaryKey: []*schema.Column{FeatureRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feature_records_cohorts_features",
				Columns:    []*schema.Column{FeatureRecordsColumns[11]},
				RefColumns: []*schema.Column{CohortsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "featurerecord_cohort_id_natural_key",
				Unique:  true,
				Columns: []*schema.Column{FeatureRecordsColumns[11], FeatureRecordsColumns[8]},
			},
			{
				Name:    "featurerecord_cohort_id_patient_id",
				Unique:  false,
				Columns: []*schema.Column{FeatureRecordsColumns[11], FeatureRecordsColumns[1]},
			},
			{
				Name:    "featurerecord_cohort_id_unit_id",
				Unique:  false,
				Columns: []*schema.Column{FeatureRecordsColumns[11], FeatureRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		CohortsTable,
		FeatureRecordsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = CohortsTable
	CheckpointsTable.Annotation = &entsql.Annotation{
		Table: "checkpoints",
	}
	CohortsTable.Annotation = &entsql.Annotation{
		Table: "cohorts",
	}
	FeatureRecordsTable.ForeignKeys[0].RefTable = CohortsTable
	FeatureRecordsTable.Annotation = &entsql.Annotation{
		Table: "feature_records",
	}
}
