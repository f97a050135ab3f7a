// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/chartpull/clinical-features/gen/ent/featurerecord"
	"github.com/google/uuid"
)

// FeatureRecord is the model entity for the FeatureRecord schema.
type FeatureRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CohortID holds the value of the "cohort_id" field.
	CohortID uuid.UUID `json:"cohort_id,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID string `json:"patient_id,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID string `json:"unit_id,omitempty"`
	// FeatureCode holds the value of the "feature_code" field.
	FeatureCode string `json:"feature_code,omitempty"`
	// Value holds the value of the "value" field.
	Value *string `json:"value,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit *string `json:"unit,omitempty"`
	// EffectiveDate holds the value of the "effective_date" field.
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
	// SourceRef holds the value of the "source_ref" field.
	SourceRef *string `json:"source_ref,omitempty"`
	// NaturalKey holds the value of the "natural_key" field.
	NaturalKey string `json:"natural_key,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeatureRecordQuery when eager-loading is set.
	Edges        FeatureRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FeatureRecordEdges holds the relations/edges for other nodes in the graph.
type FeatureRecordEdges struct {
	// Cohort holds the value of the cohort edge.
	Cohort *Cohort `json:"cohort,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CohortOrErr returns the Cohort value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeatureRecordEdges) CohortOrErr() (*Cohort, error) {
	if e.Cohort != nil {
		return e.Cohort, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cohort.Label}
	}
	return nil, &NotLoadedError{edge: "cohort"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeatureRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case featurerecord.FieldPatientID, featurerecord.FieldUnitID, featurerecord.FieldFeatureCode, featurerecord.FieldValue, featurerecord.FieldUnit, featurerecord.FieldSourceRef, featurerecord.FieldNaturalKey, featurerecord.FieldSource:
			values[i] = new(sql.NullString)
		case featurerecord.FieldEffectiveDate, featurerecord.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		case featurerecord.FieldID, featurerecord.FieldCohortID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeatureRecord fields.
func (_m *FeatureRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case featurerecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case featurerecord.FieldCohortID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field cohort_id", values[i])
			} else if value != nil {
				_m.CohortID = *value
			}
		case featurerecord.FieldPatientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value.Valid {
				_m.PatientID = value.String
			}
		case featurerecord.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case featurerecord.FieldFeatureCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_code", values[i])
			} else if value.Valid {
				_m.FeatureCode = value.String
			}
		case featurerecord.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = new(string)
				*_m.Value = value.String
			}
		case featurerecord.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = new(string)
				*_m.Unit = value.String
			}
		case featurerecord.FieldEffectiveDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_date", values[i])
			} else if value.Valid {
				_m.EffectiveDate = new(time.Time)
				*_m.EffectiveDate = value.Time
			}
		case featurerecord.FieldSourceRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_ref", values[i])
			} else if value.Valid {
				_m.SourceRef = new(string)
				*_m.SourceRef = value.String
			}
		case featurerecord.FieldNaturalKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field natural_key", values[i])
			} else if value.Valid {
				_m.NaturalKey = value.String
			}
		case featurerecord.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case featurerecord.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the FeatureRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FeatureRecord) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCohort queries the "cohort" edge of the FeatureRecord entity.
func (_m *FeatureRecord) QueryCohort() *CohortQuery {
	return NewFeatureRecordClient(_m.config).QueryCohort(_m)
}

// Update returns a builder for updating this FeatureRecord.
// Note that you need to call FeatureRecord.Unwrap() before calling this method if this FeatureRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeatureRecord) Update() *FeatureRecordUpdateOne {
	return NewFeatureRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeatureRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeatureRecord) Unwrap() *FeatureRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeatureRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeatureRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FeatureRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cohort_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CohortID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(_m.PatientID)
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("feature_code=")
	builder.WriteString(_m.FeatureCode)
	builder.WriteString(", ")
	if v := _m.Value; v != nil {
		builder.WriteString("value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Unit; v != nil {
		builder.WriteString("unit=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EffectiveDate; v != nil {
		builder.WriteString("effective_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SourceRef; v != nil {
		builder.WriteString("source_ref=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("natural_key=")
	builder.WriteString(_m.NaturalKey)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FeatureRecords is a parsable slice of FeatureRecord.
type FeatureRecords []*FeatureRecord
