// Code generated by ent, DO NOT EDIT.

package featurerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the featurerecord type in the database.
	Label = "feature_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCohortID holds the string denoting the cohort_id field in the database.
	FieldCohortID = "cohort_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldFeatureCode holds the string denoting the feature_code field in the database.
	FieldFeatureCode = "feature_code"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldEffectiveDate holds the string denoting the effective_date field in the database.
	FieldEffectiveDate = "effective_date"
	// FieldSourceRef holds the string denoting the source_ref field in the database.
	FieldSourceRef = "source_ref"
	// FieldNaturalKey holds the string denoting the natural_key field in the database.
	FieldNaturalKey = "natural_key"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// EdgeCohort holds the string denoting the cohort edge name in mutations.
	EdgeCohort = "cohort"
	// Table holds the table name of the featurerecord in the database.
	Table = "feature_records"
	// CohortTable is the table that holds the cohort relation/edge.
	CohortTable = "feature_records"
	// CohortInverseTable is the table name for the Cohort entity.
	// It exists in this package in order to avoid circular dependency with the "cohort" package.
	CohortInverseTable = "cohorts"
	// CohortColumn is the table column denoting the cohort relation/edge.
	CohortColumn = "cohort_id"
)

// Columns holds all SQL columns for featurerecord fields.
var Columns = []string{
	FieldID,
	FieldCohortID,
	FieldPatientID,
	FieldUnitID,
	FieldFeatureCode,
	FieldValue,
	FieldUnit,
	FieldEffectiveDate,
	FieldSourceRef,
	FieldNaturalKey,
	FieldSource,
	FieldExtractedAt,
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
	// PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	PatientIDValidator func(string) error
	// UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	UnitIDValidator func(string) error
	// FeatureCodeValidator is a validator for the "feature_code" field. It is called by the builders before save.
	FeatureCodeValidator func(string) error
	// NaturalKeyValidator is a validator for the "natural_key" field. It is called by the builders before save.
	NaturalKeyValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultExtractedAt holds the default value on creation for the "extracted_at" field.
	DefaultExtractedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FeatureRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCohortID orders the results by the cohort_id field.
func ByCohortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCohortID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByFeatureCode orders the results by the feature_code field.
func ByFeatureCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureCode, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByEffectiveDate orders the results by the effective_date field.
func ByEffectiveDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveDate, opts...).ToFunc()
}

// BySourceRef orders the results by the source_ref field.
func BySourceRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceRef, opts...).ToFunc()
}

// ByNaturalKey orders the results by the natural_key field.
func ByNaturalKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNaturalKey, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
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
