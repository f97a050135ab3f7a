// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chartpull/clinical-features/gen/ent/checkpoint"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/chartpull/clinical-features/gen/ent/featurerecord"
	"github.com/chartpull/clinical-features/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCheckpoint    = "Checkpoint"
	TypeCohort        = "Cohort"
	TypeFeatureRecord = "FeatureRecord"
)

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	last_processed_unit_id   *string
	processed_unit_ids       *[]string
	appendprocessed_unit_ids []string
	total_units              *int
	addtotal_units           *int
	start_time               *time.Time
	last_checkpoint_time     *time.Time
	derived_record_count     *int
	addderived_record_count  *int
	clearedFields            map[string]struct{}
	cohort                   *uuid.UUID
	clearedcohort            bool
	done                     bool
	oldValue                 func(context.Context) (*Checkpoint, error)
	predicates               []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id uuid.UUID) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCohortID sets the "cohort_id" field.
func (m *CheckpointMutation) SetCohortID(u uuid.UUID) {
	m.cohort = &u
}

// CohortID returns the value of the "cohort_id" field in the mutation.
func (m *CheckpointMutation) CohortID() (r uuid.UUID, exists bool) {
	v := m.cohort
	if v == nil {
		return
	}
	return *v, true
}

// OldCohortID returns the old "cohort_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCohortID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCohortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCohortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCohortID: %w", err)
	}
	return oldValue.CohortID, nil
}

// ResetCohortID resets all changes to the "cohort_id" field.
func (m *CheckpointMutation) ResetCohortID() {
	m.cohort = nil
}

// SetLastProcessedUnitID sets the "last_processed_unit_id" field.
func (m *CheckpointMutation) SetLastProcessedUnitID(s string) {
	m.last_processed_unit_id = &s
}

// LastProcessedUnitID returns the value of the "last_processed_unit_id" field in the mutation.
func (m *CheckpointMutation) LastProcessedUnitID() (r string, exists bool) {
	v := m.last_processed_unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessedUnitID returns the old "last_processed_unit_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldLastProcessedUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessedUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessedUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessedUnitID: %w", err)
	}
	return oldValue.LastProcessedUnitID, nil
}

// ClearLastProcessedUnitID clears the value of the "last_processed_unit_id" field.
func (m *CheckpointMutation) ClearLastProcessedUnitID() {
	m.last_processed_unit_id = nil
	m.clearedFields[checkpoint.FieldLastProcessedUnitID] = struct{}{}
}

// LastProcessedUnitIDCleared returns if the "last_processed_unit_id" field was cleared in this mutation.
func (m *CheckpointMutation) LastProcessedUnitIDCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldLastProcessedUnitID]
	return ok
}

// ResetLastProcessedUnitID resets all changes to the "last_processed_unit_id" field.
func (m *CheckpointMutation) ResetLastProcessedUnitID() {
	m.last_processed_unit_id = nil
	delete(m.clearedFields, checkpoint.FieldLastProcessedUnitID)
}

// SetProcessedUnitIds sets the "processed_unit_ids" field.
func (m *CheckpointMutation) SetProcessedUnitIds(s []string) {
	m.processed_unit_ids = &s
	m.appendprocessed_unit_ids = nil
}

// ProcessedUnitIds returns the value of the "processed_unit_ids" field in the mutation.
func (m *CheckpointMutation) ProcessedUnitIds() (r []string, exists bool) {
	v := m.processed_unit_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedUnitIds returns the old "processed_unit_ids" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldProcessedUnitIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedUnitIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedUnitIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedUnitIds: %w", err)
	}
	return oldValue.ProcessedUnitIds, nil
}

// AppendProcessedUnitIds adds s to the "processed_unit_ids" field.
func (m *CheckpointMutation) AppendProcessedUnitIds(s []string) {
	m.appendprocessed_unit_ids = append(m.appendprocessed_unit_ids, s...)
}

// AppendedProcessedUnitIds returns the list of values that were appended to the "processed_unit_ids" field in this mutation.
func (m *CheckpointMutation) AppendedProcessedUnitIds() ([]string, bool) {
	if len(m.appendprocessed_unit_ids) == 0 {
		return nil, false
	}
	return m.appendprocessed_unit_ids, true
}

// ResetProcessedUnitIds resets all changes to the "processed_unit_ids" field.
func (m *CheckpointMutation) ResetProcessedUnitIds() {
	m.processed_unit_ids = nil
	m.appendprocessed_unit_ids = nil
}

// SetTotalUnits sets the "total_units" field.
func (m *CheckpointMutation) SetTotalUnits(i int) {
	m.total_units = &i
	m.addtotal_units = nil
}

// TotalUnits returns the value of the "total_units" field in the mutation.
func (m *CheckpointMutation) TotalUnits() (r int, exists bool) {
	v := m.total_units
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalUnits returns the old "total_units" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTotalUnits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalUnits: %w", err)
	}
	return oldValue.TotalUnits, nil
}

// AddTotalUnits adds i to the "total_units" field.
func (m *CheckpointMutation) AddTotalUnits(i int) {
	if m.addtotal_units != nil {
		*m.addtotal_units += i
	} else {
		m.addtotal_units = &i
	}
}

// AddedTotalUnits returns the value that was added to the "total_units" field in this mutation.
func (m *CheckpointMutation) AddedTotalUnits() (r int, exists bool) {
	v := m.addtotal_units
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalUnits resets all changes to the "total_units" field.
func (m *CheckpointMutation) ResetTotalUnits() {
	m.total_units = nil
	m.addtotal_units = nil
}

// SetStartTime sets the "start_time" field.
func (m *CheckpointMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *CheckpointMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *CheckpointMutation) ResetStartTime() {
	m.start_time = nil
}

// SetLastCheckpointTime sets the "last_checkpoint_time" field.
func (m *CheckpointMutation) SetLastCheckpointTime(t time.Time) {
	m.last_checkpoint_time = &t
}

// LastCheckpointTime returns the value of the "last_checkpoint_time" field in the mutation.
func (m *CheckpointMutation) LastCheckpointTime() (r time.Time, exists bool) {
	v := m.last_checkpoint_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCheckpointTime returns the old "last_checkpoint_time" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldLastCheckpointTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCheckpointTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCheckpointTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCheckpointTime: %w", err)
	}
	return oldValue.LastCheckpointTime, nil
}

// ResetLastCheckpointTime resets all changes to the "last_checkpoint_time" field.
func (m *CheckpointMutation) ResetLastCheckpointTime() {
	m.last_checkpoint_time = nil
}

// SetDerivedRecordCount sets the "derived_record_count" field.
func (m *CheckpointMutation) SetDerivedRecordCount(i int) {
	m.derived_record_count = &i
	m.addderived_record_count = nil
}

// DerivedRecordCount returns the value of the "derived_record_count" field in the mutation.
func (m *CheckpointMutation) DerivedRecordCount() (r int, exists bool) {
	v := m.derived_record_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDerivedRecordCount returns the old "derived_record_count" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldDerivedRecordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDerivedRecordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDerivedRecordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDerivedRecordCount: %w", err)
	}
	return oldValue.DerivedRecordCount, nil
}

// AddDerivedRecordCount adds i to the "derived_record_count" field.
func (m *CheckpointMutation) AddDerivedRecordCount(i int) {
	if m.addderived_record_count != nil {
		*m.addderived_record_count += i
	} else {
		m.addderived_record_count = &i
	}
}

// AddedDerivedRecordCount returns the value that was added to the "derived_record_count" field in this mutation.
func (m *CheckpointMutation) AddedDerivedRecordCount() (r int, exists bool) {
	v := m.addderived_record_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDerivedRecordCount resets all changes to the "derived_record_count" field.
func (m *CheckpointMutation) ResetDerivedRecordCount() {
	m.derived_record_count = nil
	m.addderived_record_count = nil
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (m *CheckpointMutation) ClearCohort() {
	m.clearedcohort = true
	m.clearedFields[checkpoint.FieldCohortID] = struct{}{}
}

// CohortCleared reports if the "cohort" edge to the Cohort entity was cleared.
func (m *CheckpointMutation) CohortCleared() bool {
	return m.clearedcohort
}

// CohortIDs returns the "cohort" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CohortID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) CohortIDs() (ids []uuid.UUID) {
	if id := m.cohort; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCohort resets all changes to the "cohort" edge.
func (m *CheckpointMutation) ResetCohort() {
	m.cohort = nil
	m.clearedcohort = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.cohort != nil {
		fields = append(fields, checkpoint.FieldCohortID)
	}
	if m.last_processed_unit_id != nil {
		fields = append(fields, checkpoint.FieldLastProcessedUnitID)
	}
	if m.processed_unit_ids != nil {
		fields = append(fields, checkpoint.FieldProcessedUnitIds)
	}
	if m.total_units != nil {
		fields = append(fields, checkpoint.FieldTotalUnits)
	}
	if m.start_time != nil {
		fields = append(fields, checkpoint.FieldStartTime)
	}
	if m.last_checkpoint_time != nil {
		fields = append(fields, checkpoint.FieldLastCheckpointTime)
	}
	if m.derived_record_count != nil {
		fields = append(fields, checkpoint.FieldDerivedRecordCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldCohortID:
		return m.CohortID()
	case checkpoint.FieldLastProcessedUnitID:
		return m.LastProcessedUnitID()
	case checkpoint.FieldProcessedUnitIds:
		return m.ProcessedUnitIds()
	case checkpoint.FieldTotalUnits:
		return m.TotalUnits()
	case checkpoint.FieldStartTime:
		return m.StartTime()
	case checkpoint.FieldLastCheckpointTime:
		return m.LastCheckpointTime()
	case checkpoint.FieldDerivedRecordCount:
		return m.DerivedRecordCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldCohortID:
		return m.OldCohortID(ctx)
	case checkpoint.FieldLastProcessedUnitID:
		return m.OldLastProcessedUnitID(ctx)
	case checkpoint.FieldProcessedUnitIds:
		return m.OldProcessedUnitIds(ctx)
	case checkpoint.FieldTotalUnits:
		return m.OldTotalUnits(ctx)
	case checkpoint.FieldStartTime:
		return m.OldStartTime(ctx)
	case checkpoint.FieldLastCheckpointTime:
		return m.OldLastCheckpointTime(ctx)
	case checkpoint.FieldDerivedRecordCount:
		return m.OldDerivedRecordCount(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldCohortID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCohortID(v)
		return nil
	case checkpoint.FieldLastProcessedUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessedUnitID(v)
		return nil
	case checkpoint.FieldProcessedUnitIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedUnitIds(v)
		return nil
	case checkpoint.FieldTotalUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalUnits(v)
		return nil
	case checkpoint.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case checkpoint.FieldLastCheckpointTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCheckpointTime(v)
		return nil
	case checkpoint.FieldDerivedRecordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDerivedRecordCount(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_units != nil {
		fields = append(fields, checkpoint.FieldTotalUnits)
	}
	if m.addderived_record_count != nil {
		fields = append(fields, checkpoint.FieldDerivedRecordCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldTotalUnits:
		return m.AddedTotalUnits()
	case checkpoint.FieldDerivedRecordCount:
		return m.AddedDerivedRecordCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldTotalUnits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalUnits(v)
		return nil
	case checkpoint.FieldDerivedRecordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDerivedRecordCount(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldLastProcessedUnitID) {
		fields = append(fields, checkpoint.FieldLastProcessedUnitID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldLastProcessedUnitID:
		m.ClearLastProcessedUnitID()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldCohortID:
		m.ResetCohortID()
		return nil
	case checkpoint.FieldLastProcessedUnitID:
		m.ResetLastProcessedUnitID()
		return nil
	case checkpoint.FieldProcessedUnitIds:
		m.ResetProcessedUnitIds()
		return nil
	case checkpoint.FieldTotalUnits:
		m.ResetTotalUnits()
		return nil
	case checkpoint.FieldStartTime:
		m.ResetStartTime()
		return nil
	case checkpoint.FieldLastCheckpointTime:
		m.ResetLastCheckpointTime()
		return nil
	case checkpoint.FieldDerivedRecordCount:
		m.ResetDerivedRecordCount()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cohort != nil {
		edges = append(edges, checkpoint.EdgeCohort)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeCohort:
		if id := m.cohort; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcohort {
		edges = append(edges, checkpoint.EdgeCohort)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeCohort:
		return m.clearedcohort
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeCohort:
		m.ClearCohort()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeCohort:
		m.ResetCohort()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// CohortMutation represents an operation that mutates the Cohort nodes in the graph.
type CohortMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	description        *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	features           map[uuid.UUID]struct{}
	removedfeatures    map[uuid.UUID]struct{}
	clearedfeatures    bool
	checkpoints        map[uuid.UUID]struct{}
	removedcheckpoints map[uuid.UUID]struct{}
	clearedcheckpoints bool
	done               bool
	oldValue           func(context.Context) (*Cohort, error)
	predicates         []predicate.Cohort
}

var _ ent.Mutation = (*CohortMutation)(nil)

// cohortOption allows management of the mutation configuration using functional options.
type cohortOption func(*CohortMutation)

// newCohortMutation creates new mutation for the Cohort entity.
func newCohortMutation(c config, op Op, opts ...cohortOption) *CohortMutation {
	m := &CohortMutation{
		config:        c,
		op:            op,
		typ:           TypeCohort,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCohortID sets the ID field of the mutation.
func withCohortID(id uuid.UUID) cohortOption {
	return func(m *CohortMutation) {
		var (
			err   error
			once  sync.Once
			value *Cohort
		)
		m.oldValue = func(ctx context.Context) (*Cohort, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cohort.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCohort sets the old Cohort of the mutation.
func withCohort(node *Cohort) cohortOption {
	return func(m *CohortMutation) {
		m.oldValue = func(context.Context) (*Cohort, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CohortMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CohortMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Cohort entities.
func (m *CohortMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CohortMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CohortMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cohort.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CohortMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CohortMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CohortMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CohortMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CohortMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CohortMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[cohort.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CohortMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[cohort.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CohortMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, cohort.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *CohortMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CohortMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CohortMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CohortMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CohortMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Cohort entity.
// If the Cohort object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CohortMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CohortMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFeatureIDs adds the "features" edge to the FeatureRecord entity by ids.
func (m *CohortMutation) AddFeatureIDs(ids ...uuid.UUID) {
	if m.features == nil {
		m.features = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.features[ids[i]] = struct{}{}
	}
}

// ClearFeatures clears the "features" edge to the FeatureRecord entity.
func (m *CohortMutation) ClearFeatures() {
	m.clearedfeatures = true
}

// FeaturesCleared reports if the "features" edge to the FeatureRecord entity was cleared.
func (m *CohortMutation) FeaturesCleared() bool {
	return m.clearedfeatures
}

// RemoveFeatureIDs removes the "features" edge to the FeatureRecord entity by IDs.
func (m *CohortMutation) RemoveFeatureIDs(ids ...uuid.UUID) {
	if m.removedfeatures == nil {
		m.removedfeatures = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.features, ids[i])
		m.removedfeatures[ids[i]] = struct{}{}
	}
}

// RemovedFeatures returns the removed IDs of the "features" edge to the FeatureRecord entity.
func (m *CohortMutation) RemovedFeaturesIDs() (ids []uuid.UUID) {
	for id := range m.removedfeatures {
		ids = append(ids, id)
	}
	return
}

// FeaturesIDs returns the "features" edge IDs in the mutation.
func (m *CohortMutation) FeaturesIDs() (ids []uuid.UUID) {
	for id := range m.features {
		ids = append(ids, id)
	}
	return
}

// ResetFeatures resets all changes to the "features" edge.
func (m *CohortMutation) ResetFeatures() {
	m.features = nil
	m.clearedfeatures = false
	m.removedfeatures = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *CohortMutation) AddCheckpointIDs(ids ...uuid.UUID) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *CohortMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *CohortMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *CohortMutation) RemoveCheckpointIDs(ids ...uuid.UUID) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *CohortMutation) RemovedCheckpointsIDs() (ids []uuid.UUID) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *CohortMutation) CheckpointsIDs() (ids []uuid.UUID) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *CohortMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the CohortMutation builder.
func (m *CohortMutation) Where(ps ...predicate.Cohort) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CohortMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CohortMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cohort, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CohortMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CohortMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cohort).
func (m *CohortMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CohortMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, cohort.FieldName)
	}
	if m.description != nil {
		fields = append(fields, cohort.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, cohort.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cohort.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CohortMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cohort.FieldName:
		return m.Name()
	case cohort.FieldDescription:
		return m.Description()
	case cohort.FieldCreatedAt:
		return m.CreatedAt()
	case cohort.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CohortMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cohort.FieldName:
		return m.OldName(ctx)
	case cohort.FieldDescription:
		return m.OldDescription(ctx)
	case cohort.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cohort.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Cohort field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CohortMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cohort.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case cohort.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case cohort.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cohort.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Cohort field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CohortMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CohortMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CohortMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Cohort numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CohortMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cohort.FieldDescription) {
		fields = append(fields, cohort.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CohortMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CohortMutation) ClearField(name string) error {
	switch name {
	case cohort.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Cohort nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CohortMutation) ResetField(name string) error {
	switch name {
	case cohort.FieldName:
		m.ResetName()
		return nil
	case cohort.FieldDescription:
		m.ResetDescription()
		return nil
	case cohort.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cohort.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Cohort field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CohortMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.features != nil {
		edges = append(edges, cohort.EdgeFeatures)
	}
	if m.checkpoints != nil {
		edges = append(edges, cohort.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CohortMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cohort.EdgeFeatures:
		ids := make([]ent.Value, 0, len(m.features))
		for id := range m.features {
			ids = append(ids, id)
		}
		return ids
	case cohort.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CohortMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfeatures != nil {
		edges = append(edges, cohort.EdgeFeatures)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, cohort.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CohortMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cohort.EdgeFeatures:
		ids := make([]ent.Value, 0, len(m.removedfeatures))
		for id := range m.removedfeatures {
			ids = append(ids, id)
		}
		return ids
	case cohort.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CohortMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfeatures {
		edges = append(edges, cohort.EdgeFeatures)
	}
	if m.clearedcheckpoints {
		edges = append(edges, cohort.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CohortMutation) EdgeCleared(name string) bool {
	switch name {
	case cohort.EdgeFeatures:
		return m.clearedfeatures
	case cohort.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CohortMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Cohort unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CohortMutation) ResetEdge(name string) error {
	switch name {
	case cohort.EdgeFeatures:
		m.ResetFeatures()
		return nil
	case cohort.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown Cohort edge %s", name)
}

// FeatureRecordMutation represents an operation that mutates the FeatureRecord nodes in the graph.
type FeatureRecordMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	patient_id     *string
	unit_id        *string
	feature_code   *string
	value          *string
	unit           *string
	effective_date *time.Time
	source_ref     *string
	natural_key    *string
	source         *string
	extracted_at   *time.Time
	clearedFields  map[string]struct{}
	cohort         *uuid.UUID
	clearedcohort  bool
	done           bool
	oldValue       func(context.Context) (*FeatureRecord, error)
	predicates     []predicate.FeatureRecord
}

var _ ent.Mutation = (*FeatureRecordMutation)(nil)

// featurerecordOption allows management of the mutation configuration using functional options.
type featurerecordOption func(*FeatureRecordMutation)

// newFeatureRecordMutation creates new mutation for the FeatureRecord entity.
func newFeatureRecordMutation(c config, op Op, opts ...featurerecordOption) *FeatureRecordMutation {
	m := &FeatureRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFeatureRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeatureRecordID sets the ID field of the mutation.
func withFeatureRecordID(id uuid.UUID) featurerecordOption {
	return func(m *FeatureRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FeatureRecord
		)
		m.oldValue = func(ctx context.Context) (*FeatureRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FeatureRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeatureRecord sets the old FeatureRecord of the mutation.
func withFeatureRecord(node *FeatureRecord) featurerecordOption {
	return func(m *FeatureRecordMutation) {
		m.oldValue = func(context.Context) (*FeatureRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeatureRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeatureRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FeatureRecord entities.
func (m *FeatureRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeatureRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeatureRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FeatureRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCohortID sets the "cohort_id" field.
func (m *FeatureRecordMutation) SetCohortID(u uuid.UUID) {
	m.cohort = &u
}

// CohortID returns the value of the "cohort_id" field in the mutation.
func (m *FeatureRecordMutation) CohortID() (r uuid.UUID, exists bool) {
	v := m.cohort
	if v == nil {
		return
	}
	return *v, true
}

// OldCohortID returns the old "cohort_id" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldCohortID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCohortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCohortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCohortID: %w", err)
	}
	return oldValue.CohortID, nil
}

// ResetCohortID resets all changes to the "cohort_id" field.
func (m *FeatureRecordMutation) ResetCohortID() {
	m.cohort = nil
}

// SetPatientID sets the "patient_id" field.
func (m *FeatureRecordMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *FeatureRecordMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *FeatureRecordMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetUnitID sets the "unit_id" field.
func (m *FeatureRecordMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *FeatureRecordMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *FeatureRecordMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetFeatureCode sets the "feature_code" field.
func (m *FeatureRecordMutation) SetFeatureCode(s string) {
	m.feature_code = &s
}

// FeatureCode returns the value of the "feature_code" field in the mutation.
func (m *FeatureRecordMutation) FeatureCode() (r string, exists bool) {
	v := m.feature_code
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureCode returns the old "feature_code" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldFeatureCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureCode: %w", err)
	}
	return oldValue.FeatureCode, nil
}

// ResetFeatureCode resets all changes to the "feature_code" field.
func (m *FeatureRecordMutation) ResetFeatureCode() {
	m.feature_code = nil
}

// SetValue sets the "value" field.
func (m *FeatureRecordMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *FeatureRecordMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ClearValue clears the value of the "value" field.
func (m *FeatureRecordMutation) ClearValue() {
	m.value = nil
	m.clearedFields[featurerecord.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *FeatureRecordMutation) ValueCleared() bool {
	_, ok := m.clearedFields[featurerecord.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *FeatureRecordMutation) ResetValue() {
	m.value = nil
	delete(m.clearedFields, featurerecord.FieldValue)
}

// SetUnit sets the "unit" field.
func (m *FeatureRecordMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *FeatureRecordMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *FeatureRecordMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[featurerecord.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *FeatureRecordMutation) UnitCleared() bool {
	_, ok := m.clearedFields[featurerecord.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *FeatureRecordMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, featurerecord.FieldUnit)
}

// SetEffectiveDate sets the "effective_date" field.
func (m *FeatureRecordMutation) SetEffectiveDate(t time.Time) {
	m.effective_date = &t
}

// EffectiveDate returns the value of the "effective_date" field in the mutation.
func (m *FeatureRecordMutation) EffectiveDate() (r time.Time, exists bool) {
	v := m.effective_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveDate returns the old "effective_date" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldEffectiveDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveDate: %w", err)
	}
	return oldValue.EffectiveDate, nil
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (m *FeatureRecordMutation) ClearEffectiveDate() {
	m.effective_date = nil
	m.clearedFields[featurerecord.FieldEffectiveDate] = struct{}{}
}

// EffectiveDateCleared returns if the "effective_date" field was cleared in this mutation.
func (m *FeatureRecordMutation) EffectiveDateCleared() bool {
	_, ok := m.clearedFields[featurerecord.FieldEffectiveDate]
	return ok
}

// ResetEffectiveDate resets all changes to the "effective_date" field.
func (m *FeatureRecordMutation) ResetEffectiveDate() {
	m.effective_date = nil
	delete(m.clearedFields, featurerecord.FieldEffectiveDate)
}

// SetSourceRef sets the "source_ref" field.
func (m *FeatureRecordMutation) SetSourceRef(s string) {
	m.source_ref = &s
}

// SourceRef returns the value of the "source_ref" field in the mutation.
func (m *FeatureRecordMutation) SourceRef() (r string, exists bool) {
	v := m.source_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRef returns the old "source_ref" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldSourceRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRef: %w", err)
	}
	return oldValue.SourceRef, nil
}

// ClearSourceRef clears the value of the "source_ref" field.
func (m *FeatureRecordMutation) ClearSourceRef() {
	m.source_ref = nil
	m.clearedFields[featurerecord.FieldSourceRef] = struct{}{}
}

// SourceRefCleared returns if the "source_ref" field was cleared in this mutation.
func (m *FeatureRecordMutation) SourceRefCleared() bool {
	_, ok := m.clearedFields[featurerecord.FieldSourceRef]
	return ok
}

// ResetSourceRef resets all changes to the "source_ref" field.
func (m *FeatureRecordMutation) ResetSourceRef() {
	m.source_ref = nil
	delete(m.clearedFields, featurerecord.FieldSourceRef)
}

// SetNaturalKey sets the "natural_key" field.
func (m *FeatureRecordMutation) SetNaturalKey(s string) {
	m.natural_key = &s
}

// NaturalKey returns the value of the "natural_key" field in the mutation.
func (m *FeatureRecordMutation) NaturalKey() (r string, exists bool) {
	v := m.natural_key
	if v == nil {
		return
	}
	return *v, true
}

// OldNaturalKey returns the old "natural_key" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldNaturalKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNaturalKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNaturalKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNaturalKey: %w", err)
	}
	return oldValue.NaturalKey, nil
}

// ResetNaturalKey resets all changes to the "natural_key" field.
func (m *FeatureRecordMutation) ResetNaturalKey() {
	m.natural_key = nil
}

// SetSource sets the "source" field.
func (m *FeatureRecordMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *FeatureRecordMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *FeatureRecordMutation) ResetSource() {
	m.source = nil
}

// SetExtractedAt sets the "extracted_at" field.
func (m *FeatureRecordMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *FeatureRecordMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the FeatureRecord entity.
// If the FeatureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeatureRecordMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *FeatureRecordMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// ClearCohort clears the "cohort" edge to the Cohort entity.
func (m *FeatureRecordMutation) ClearCohort() {
	m.clearedcohort = true
	m.clearedFields[featurerecord.FieldCohortID] = struct{}{}
}

// CohortCleared reports if the "cohort" edge to the Cohort entity was cleared.
func (m *FeatureRecordMutation) CohortCleared() bool {
	return m.clearedcohort
}

// CohortIDs returns the "cohort" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CohortID instead. It exists only for internal usage by the builders.
func (m *FeatureRecordMutation) CohortIDs() (ids []uuid.UUID) {
	if id := m.cohort; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCohort resets all changes to the "cohort" edge.
func (m *FeatureRecordMutation) ResetCohort() {
	m.cohort = nil
	m.clearedcohort = false
}

// Where appends a list predicates to the FeatureRecordMutation builder.
func (m *FeatureRecordMutation) Where(ps ...predicate.FeatureRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeatureRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeatureRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FeatureRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeatureRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeatureRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FeatureRecord).
func (m *FeatureRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeatureRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.cohort != nil {
		fields = append(fields, featurerecord.FieldCohortID)
	}
	if m.patient_id != nil {
		fields = append(fields, featurerecord.FieldPatientID)
	}
	if m.unit_id != nil {
		fields = append(fields, featurerecord.FieldUnitID)
	}
	if m.feature_code != nil {
		fields = append(fields, featurerecord.FieldFeatureCode)
	}
	if m.value != nil {
		fields = append(fields, featurerecord.FieldValue)
	}
	if m.unit != nil {
		fields = append(fields, featurerecord.FieldUnit)
	}
	if m.effective_date != nil {
		fields = append(fields, featurerecord.FieldEffectiveDate)
	}
	if m.source_ref != nil {
		fields = append(fields, featurerecord.FieldSourceRef)
	}
	if m.natural_key != nil {
		fields = append(fields, featurerecord.FieldNaturalKey)
	}
	if m.source != nil {
		fields = append(fields, featurerecord.FieldSource)
	}
	if m.extracted_at != nil {
		fields = append(fields, featurerecord.FieldExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeatureRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case featurerecord.FieldCohortID:
		return m.CohortID()
	case featurerecord.FieldPatientID:
		return m.PatientID()
	case featurerecord.FieldUnitID:
		return m.UnitID()
	case featurerecord.FieldFeatureCode:
		return m.FeatureCode()
	case featurerecord.FieldValue:
		return m.Value()
	case featurerecord.FieldUnit:
		return m.Unit()
	case featurerecord.FieldEffectiveDate:
		return m.EffectiveDate()
	case featurerecord.FieldSourceRef:
		return m.SourceRef()
	case featurerecord.FieldNaturalKey:
		return m.NaturalKey()
	case featurerecord.FieldSource:
		return m.Source()
	case featurerecord.FieldExtractedAt:
		return m.ExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeatureRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case featurerecord.FieldCohortID:
		return m.OldCohortID(ctx)
	case featurerecord.FieldPatientID:
		return m.OldPatientID(ctx)
	case featurerecord.FieldUnitID:
		return m.OldUnitID(ctx)
	case featurerecord.FieldFeatureCode:
		return m.OldFeatureCode(ctx)
	case featurerecord.FieldValue:
		return m.OldValue(ctx)
	case featurerecord.FieldUnit:
		return m.OldUnit(ctx)
	case featurerecord.FieldEffectiveDate:
		return m.OldEffectiveDate(ctx)
	case featurerecord.FieldSourceRef:
		return m.OldSourceRef(ctx)
	case featurerecord.FieldNaturalKey:
		return m.OldNaturalKey(ctx)
	case featurerecord.FieldSource:
		return m.OldSource(ctx)
	case featurerecord.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FeatureRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case featurerecord.FieldCohortID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCohortID(v)
		return nil
	case featurerecord.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case featurerecord.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case featurerecord.FieldFeatureCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureCode(v)
		return nil
	case featurerecord.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case featurerecord.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case featurerecord.FieldEffectiveDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveDate(v)
		return nil
	case featurerecord.FieldSourceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRef(v)
		return nil
	case featurerecord.FieldNaturalKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNaturalKey(v)
		return nil
	case featurerecord.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case featurerecord.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FeatureRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeatureRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeatureRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeatureRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FeatureRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeatureRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(featurerecord.FieldValue) {
		fields = append(fields, featurerecord.FieldValue)
	}
	if m.FieldCleared(featurerecord.FieldUnit) {
		fields = append(fields, featurerecord.FieldUnit)
	}
	if m.FieldCleared(featurerecord.FieldEffectiveDate) {
		fields = append(fields, featurerecord.FieldEffectiveDate)
	}
	if m.FieldCleared(featurerecord.FieldSourceRef) {
		fields = append(fields, featurerecord.FieldSourceRef)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeatureRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeatureRecordMutation) ClearField(name string) error {
	switch name {
	case featurerecord.FieldValue:
		m.ClearValue()
		return nil
	case featurerecord.FieldUnit:
		m.ClearUnit()
		return nil
	case featurerecord.FieldEffectiveDate:
		m.ClearEffectiveDate()
		return nil
	case featurerecord.FieldSourceRef:
		m.ClearSourceRef()
		return nil
	}
	return fmt.Errorf("unknown FeatureRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeatureRecordMutation) ResetField(name string) error {
	switch name {
	case featurerecord.FieldCohortID:
		m.ResetCohortID()
		return nil
	case featurerecord.FieldPatientID:
		m.ResetPatientID()
		return nil
	case featurerecord.FieldUnitID:
		m.ResetUnitID()
		return nil
	case featurerecord.FieldFeatureCode:
		m.ResetFeatureCode()
		return nil
	case featurerecord.FieldValue:
		m.ResetValue()
		return nil
	case featurerecord.FieldUnit:
		m.ResetUnit()
		return nil
	case featurerecord.FieldEffectiveDate:
		m.ResetEffectiveDate()
		return nil
	case featurerecord.FieldSourceRef:
		m.ResetSourceRef()
		return nil
	case featurerecord.FieldNaturalKey:
		m.ResetNaturalKey()
		return nil
	case featurerecord.FieldSource:
		m.ResetSource()
		return nil
	case featurerecord.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown FeatureRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeatureRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cohort != nil {
		edges = append(edges, featurerecord.EdgeCohort)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeatureRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case featurerecord.EdgeCohort:
		if id := m.cohort; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeatureRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeatureRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeatureRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcohort {
		edges = append(edges, featurerecord.EdgeCohort)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeatureRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case featurerecord.EdgeCohort:
		return m.clearedcohort
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeatureRecordMutation) ClearEdge(name string) error {
	switch name {
	case featurerecord.EdgeCohort:
		m.ClearCohort()
		return nil
	}
	return fmt.Errorf("unknown FeatureRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeatureRecordMutation) ResetEdge(name string) error {
	switch name {
	case featurerecord.EdgeCohort:
		m.ResetCohort()
		return nil
	}
	return fmt.Errorf("unknown FeatureRecord edge %s", name)
}
