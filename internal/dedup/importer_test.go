package dedup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTarget stores rows per natural key, like the unique index would.
type fakeTarget struct {
	mu   sync.Mutex
	rows map[string]*entity.FeatureRecord
	// raceKeys simulates a concurrent writer landing between the existence
	// check and the insert for these keys.
	raceKeys  map[string]struct{}
	insertErr error
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		rows:     make(map[string]*entity.FeatureRecord),
		raceKeys: make(map[string]struct{}),
	}
}

func (f *fakeTarget) ExistsByNaturalKey(_ context.Context, _ uuid.UUID, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[key]
	return ok, nil
}

func (f *fakeTarget) Insert(_ context.Context, rec *entity.FeatureRecord, key string) (*entity.FeatureRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if _, raced := f.raceKeys[key]; raced {
		return nil, common.WrapError(common.ErrRecordConflict, key)
	}
	if _, ok := f.rows[key]; ok {
		return nil, common.WrapError(common.ErrRecordConflict, key)
	}
	f.rows[key] = rec
	return rec, nil
}

func refRow(patient, code string, value *string) *entity.FeatureRecord {
	return &entity.FeatureRecord{
		CohortID:    uuid.Nil,
		PatientID:   patient,
		FeatureCode: code,
		Value:       value,
		Source:      constants.SourceReference,
	}
}

func TestImportBatchLargeWithDuplicates(t *testing.T) {
	target := newFakeTarget()
	im := NewImporter(target, nil, testLogger())
	ctx := context.Background()

	// pre-store 40 rows that the batch will duplicate exactly
	rows := make([]*entity.FeatureRecord, 0, 1000)
	for i := 0; i < 1000; i++ {
		v := fmt.Sprintf("%d", i)
		row := refRow(fmt.Sprintf("patient-%04d", i), "egfr", &v)
		rows = append(rows, row)
		if i < 40 {
			dup := *row
			_, err := target.Insert(ctx, &dup, ProjectKey(&dup, DefaultKeyFields()))
			require.NoError(t, err)
		}
	}

	summary, err := im.ImportBatch(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 960, summary.Added)
	assert.Equal(t, 40, summary.Skipped)
	assert.Equal(t, 0, summary.Errored)
	assert.Len(t, target.rows, 1000, "one row retained per natural key")
}

func TestImportBatchIdempotent(t *testing.T) {
	target := newFakeTarget()
	im := NewImporter(target, nil, testLogger())
	ctx := context.Background()

	rows := []*entity.FeatureRecord{
		refRow("p1", "bmi", strPtr("22.5")),
		refRow("p1", "hba1c", strPtr("5.9")),
		refRow("p2", "bmi", nil),
	}

	first, err := im.ImportBatch(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Added)

	second, err := im.ImportBatch(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 3, second.Skipped, "second pass skips everything")
	assert.Len(t, target.rows, 3)
}

func TestUpsertNullFieldsMatch(t *testing.T) {
	target := newFakeTarget()
	im := NewImporter(target, nil, testLogger())
	ctx := context.Background()

	out1, err := im.Upsert(ctx, refRow("p1", "smoker", nil))
	require.NoError(t, err)
	assert.Equal(t, constants.RowAdded, out1)

	out2, err := im.Upsert(ctx, refRow("p1", "smoker", nil))
	require.NoError(t, err)
	assert.Equal(t, constants.RowSkipped, out2, "NULL value fields compare equal")
	assert.Len(t, target.rows, 1)
}

func TestUpsertRaceClassifiedAsSkip(t *testing.T) {
	target := newFakeTarget()
	im := NewImporter(target, nil, testLogger())

	row := refRow("p9", "ldl", strPtr("130"))
	target.raceKeys[ProjectKey(row, DefaultKeyFields())] = struct{}{}

	outcome, err := im.Upsert(context.Background(), row)
	require.NoError(t, err, "a lost check-then-insert race is benign")
	assert.Equal(t, constants.RowSkipped, outcome)
}

func TestImportBatchRecordsRowErrors(t *testing.T) {
	target := newFakeTarget()
	target.insertErr = errors.New("disk full")
	im := NewImporter(target, nil, testLogger())

	summary, err := im.ImportBatch(context.Background(), []*entity.FeatureRecord{
		refRow("p1", "bmi", strPtr("20")),
		refRow("p2", "bmi", strPtr("21")),
	})
	require.NoError(t, err, "row errors are aggregated, not raised")
	assert.Equal(t, 0, summary.Added)
	assert.Equal(t, 2, summary.Errored)
	require.Len(t, summary.Rows, 2)
	assert.Equal(t, constants.RowErrored, summary.Rows[0].Outcome)
	assert.Contains(t, summary.Rows[0].Detail, "disk full")
}
