// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chartpull/clinical-features/gen/ent/checkpoint"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/google/uuid"
)

// Checkpoint is the model entity for the Checkpoint schema.
type Checkpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CohortID holds the value of the "cohort_id" field.
	CohortID uuid.UUID `json:"cohort_id,omitempty"`
	// LastProcessedUnitID holds the value of the "last_processed_unit_id" field.
	LastProcessedUnitID string `json:"last_processed_unit_id,omitempty"`
	// ProcessedUnitIds holds the value of the "processed_unit_ids" field.
	ProcessedUnitIds []string `json:"processed_unit_ids,omitempty"`
	// TotalUnits holds the value of the "total_units" field.
	TotalUnits int `json:"total_units,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// LastCheckpointTime holds the value of the "last_checkpoint_time" field.
	LastCheckpointTime time.Time `json:"last_checkpoint_time,omitempty"`
	// DerivedRecordCount holds the value of the "derived_record_count" field.
	DerivedRecordCount int `json:"derived_record_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CheckpointQuery when eager-loading is set.
	Edges        CheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CheckpointEdges holds the relations/edges for other nodes in the graph.
type CheckpointEdges struct {
	// Cohort holds the value of the cohort edge.
	Cohort *Cohort `json:"cohort,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CohortOrErr returns the Cohort value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CheckpointEdges) CohortOrErr() (*Cohort, error) {
	if e.Cohort != nil {
		return e.Cohort, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cohort.Label}
	}
	return nil, &NotLoadedError{edge: "cohort"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Checkpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldProcessedUnitIds:
			values[i] = new([]byte)
		case checkpoint.FieldTotalUnits, checkpoint.FieldDerivedRecordCount:
			values[i] = new(sql.NullInt64)
		case checkpoint.FieldLastProcessedUnitID:
			values[i] = new(sql.NullString)
		case checkpoint.FieldStartTime, checkpoint.FieldLastCheckpointTime:
			values[i] = new(sql.NullTime)
		case checkpoint.FieldID, checkpoint.FieldCohortID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Checkpoint fields.
func (_m *Checkpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkpoint.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case checkpoint.FieldCohortID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field cohort_id", values[i])
			} else if value != nil {
				_m.CohortID = *value
			}
		case checkpoint.FieldLastProcessedUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_processed_unit_id", values[i])
			} else if value.Valid {
				_m.LastProcessedUnitID = value.String
			}
		case checkpoint.FieldProcessedUnitIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processed_unit_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProcessedUnitIds); err != nil {
					return fmt.Errorf("unmarshal field processed_unit_ids: %w", err)
				}
			}
		case checkpoint.FieldTotalUnits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_units", values[i])
			} else if value.Valid {
				_m.TotalUnits = int(value.Int64)
			}
		case checkpoint.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case checkpoint.FieldLastCheckpointTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_checkpoint_time", values[i])
			} else if value.Valid {
				_m.LastCheckpointTime = value.Time
			}
		case checkpoint.FieldDerivedRecordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field derived_record_count", values[i])
			} else if value.Valid {
				_m.DerivedRecordCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Checkpoint.
// This includes values selected through modifiers, order, etc.
func (_m *Checkpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCohort queries the "cohort" edge of the Checkpoint entity.
func (_m *Checkpoint) QueryCohort() *CohortQuery {
	return NewCheckpointClient(_m.config).QueryCohort(_m)
}

// Update returns a builder for updating this Checkpoint.
// Note that you need to call Checkpoint.Unwrap() before calling this method if this Checkpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Checkpoint) Update() *CheckpointUpdateOne {
	return NewCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Checkpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Checkpoint) Unwrap() *Checkpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Checkpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Checkpoint) String() string {
	var builder strings.Builder
	builder.WriteString("Checkpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cohort_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CohortID))
	builder.WriteString(", ")
	builder.WriteString("last_processed_unit_id=")
	builder.WriteString(_m.LastProcessedUnitID)
	builder.WriteString(", ")
	builder.WriteString("processed_unit_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedUnitIds))
	builder.WriteString(", ")
	builder.WriteString("total_units=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUnits))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_checkpoint_time=")
	builder.WriteString(_m.LastCheckpointTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("derived_record_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.DerivedRecordCount))
	builder.WriteByte(')')
	return builder.String()
}

// Checkpoints is a parsable slice of Checkpoint.
type Checkpoints []*Checkpoint
