// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCohortID holds the string denoting the cohort_id field in the database.
	FieldCohortID = "cohort_id"
	// FieldLastProcessedUnitID holds the string denoting the last_processed_unit_id field in the database.
	FieldLastProcessedUnitID = "last_processed_unit_id"
	// FieldProcessedUnitIds holds the string denoting the processed_unit_ids field in the database.
	FieldProcessedUnitIds = "processed_unit_ids"
	// FieldTotalUnits holds the string denoting the total_units field in the database.
	FieldTotalUnits = "total_units"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldLastCheckpointTime holds the string denoting the last_checkpoint_time field in the database.
	FieldLastCheckpointTime = "last_checkpoint_time"
	// FieldDerivedRecordCount holds the string denoting the derived_record_count field in the database.
	FieldDerivedRecordCount = "derived_record_count"
	// EdgeCohort holds the string denoting the cohort edge name in mutations.
	EdgeCohort = "cohort"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
	// CohortTable is the table that holds the cohort relation/edge.
	CohortTable = "checkpoints"
	// CohortInverseTable is the table name for the Cohort entity.
	// It exists in this package in order to avoid circular dependency with the "cohort" package.
	CohortInverseTable = "cohorts"
	// CohortColumn is the table column denoting the cohort relation/edge.
	CohortColumn = "cohort_id"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldCohortID,
	FieldLastProcessedUnitID,
	FieldProcessedUnitIds,
	FieldTotalUnits,
	FieldStartTime,
	FieldLastCheckpointTime,
	FieldDerivedRecordCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TotalUnitsValidator is a validator for the "total_units" field. It is called by the builders before save.
	TotalUnitsValidator func(int) error
	// DefaultLastCheckpointTime holds the default value on creation for the "last_checkpoint_time" field.
	DefaultLastCheckpointTime func() time.Time
	// UpdateDefaultLastCheckpointTime holds the default value on update for the "last_checkpoint_time" field.
	UpdateDefaultLastCheckpointTime func() time.Time
	// DerivedRecordCountValidator is a validator for the "derived_record_count" field. It is called by the builders before save.
	DerivedRecordCountValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCohortID orders the results by the cohort_id field.
func ByCohortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCohortID, opts...).ToFunc()
}

// ByLastProcessedUnitID orders the results by the last_processed_unit_id field.
func ByLastProcessedUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProcessedUnitID, opts...).ToFunc()
}

// ByTotalUnits orders the results by the total_units field.
func ByTotalUnits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalUnits, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByLastCheckpointTime orders the results by the last_checkpoint_time field.
func ByLastCheckpointTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCheckpointTime, opts...).ToFunc()
}

// ByDerivedRecordCount orders the results by the derived_record_count field.
func ByDerivedRecordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDerivedRecordCount, opts...).ToFunc()
}

// ByCohortField orders the results by cohort field.
func ByCohortField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCohortStep(), sql.OrderByField(field, opts...))
	}
}
func newCohortStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CohortInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CohortTable, CohortColumn),
	)
}
