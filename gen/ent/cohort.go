// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/google/uuid"
)

// Cohort is the model entity for the Cohort schema.
type Cohort struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CohortQuery when eager-loading is set.
	Edges        CohortEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CohortEdges holds the relations/edges for other nodes in the graph.
type CohortEdges struct {
	// Features holds the value of the features edge.
	Features []*FeatureRecord `json:"features,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FeaturesOrErr returns the Features value or an error if the edge
// was not loaded in eager-loading.
func (e CohortEdges) FeaturesOrErr() ([]*FeatureRecord, error) {
	if e.loadedTypes[0] {
		return e.Features, nil
	}
	return nil, &NotLoadedError{edge: "features"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e CohortEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[1] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Cohort) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cohort.FieldName, cohort.FieldDescription:
			values[i] = new(sql.NullString)
		case cohort.FieldCreatedAt, cohort.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case cohort.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Cohort fields.
func (_m *Cohort) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cohort.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case cohort.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case cohort.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case cohort.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case cohort.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Cohort.
// This includes values selected through modifiers, order, etc.
func (_m *Cohort) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFeatures queries the "features" edge of the Cohort entity.
func (_m *Cohort) QueryFeatures() *FeatureRecordQuery {
	return NewCohortClient(_m.config).QueryFeatures(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Cohort entity.
func (_m *Cohort) QueryCheckpoints() *CheckpointQuery {
	return NewCohortClient(_m.config).QueryCheckpoints(_m)
}

// Update returns a builder for updating this Cohort.
// Note that you need to call Cohort.Unwrap() before calling this method if this Cohort
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Cohort) Update() *CohortUpdateOne {
	return NewCohortClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Cohort entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Cohort) Unwrap() *Cohort {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Cohort is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Cohort) String() string {
	var builder strings.Builder
	builder.WriteString("Cohort(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cohorts is a parsable slice of Cohort.
type Cohorts []*Cohort
