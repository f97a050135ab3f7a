package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

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

// fakeStore is an in-memory CheckpointStore that records every snapshot it is
// asked to persist.
type fakeStore struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID]*entity.Checkpoint
	saved     []*entity.Checkpoint
	saveErr   error
	loadErr   error
	clearErr  error
	cleared   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{snapshots: make(map[uuid.UUID]*entity.Checkpoint)}
}

func (s *fakeStore) Save(_ context.Context, snap *entity.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *snap
	cp.CompletedUnitIDs = append([]string(nil), snap.CompletedUnitIDs...)
	s.snapshots[snap.CohortID] = &cp
	s.saved = append(s.saved, &cp)
	return nil
}

func (s *fakeStore) Load(_ context.Context, cohortID uuid.UUID) (*entity.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	snap, ok := s.snapshots[cohortID]
	if !ok {
		return nil, nil
	}
	cp := *snap
	cp.CompletedUnitIDs = append([]string(nil), snap.CompletedUnitIDs...)
	return &cp, nil
}

func (s *fakeStore) Clear(_ context.Context, cohortID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearErr != nil {
		return s.clearErr
	}
	delete(s.snapshots, cohortID)
	s.cleared++
	return nil
}

type sliceSource []entity.WorkUnit

func (s sliceSource) Units(context.Context) ([]entity.WorkUnit, error) {
	return s, nil
}

type errSource struct{}

func (errSource) Units(context.Context) ([]entity.WorkUnit, error) {
	return nil, errors.New("upstream gone")
}

func makeUnits(n int) sliceSource {
	units := make(sliceSource, n)
	for i := range units {
		units[i] = entity.WorkUnit{
			ID:        fmt.Sprintf("unit-%03d", i+1),
			PatientID: fmt.Sprintf("patient-%03d", i+1),
		}
	}
	return units
}

func succeedEach(_ context.Context, _ entity.WorkUnit) (UnitResult, error) {
	return UnitResult{Outcome: constants.UnitSuccess, DerivedCount: 1}, nil
}

func TestRunProcessesAllUnitsInOrder(t *testing.T) {
	store := newFakeStore()
	coord := New(store, testLogger())
	cohortID := uuid.New()

	var order []string
	summary, err := coord.Run(context.Background(), cohortID, makeUnits(10),
		func(_ context.Context, u entity.WorkUnit) (UnitResult, error) {
			order = append(order, u.ID)
			return UnitResult{Outcome: constants.UnitSuccess, DerivedCount: 2}, nil
		},
		Options{CheckpointInterval: 3})
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Processed)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 20, summary.DerivedCount)

	require.Len(t, order, 10)
	assert.Equal(t, "unit-001", order[0])
	assert.Equal(t, "unit-010", order[9])

	// saves at 3, 6, 9; cleared on completion
	assert.Len(t, store.saved, 3)
	assert.Equal(t, 1, store.cleared)
	assert.Empty(t, store.snapshots)
}

func TestRunSavesEveryIntervalAndClears(t *testing.T) {
	store := newFakeStore()
	coord := New(store, testLogger())

	summary, err := coord.Run(context.Background(), uuid.New(), makeUnits(120), succeedEach,
		Options{CheckpointInterval: 50})
	require.NoError(t, err)
	assert.Equal(t, 120, summary.Processed)

	require.Len(t, store.saved, 2)
	assert.Len(t, store.saved[0].CompletedUnitIDs, 50)
	assert.Equal(t, "unit-050", store.saved[0].LastProcessedUnitID)
	assert.Len(t, store.saved[1].CompletedUnitIDs, 100)
	assert.Equal(t, "unit-100", store.saved[1].LastProcessedUnitID)
	assert.Empty(t, store.snapshots, "checkpoint deleted on graceful completion")
}

func TestRunResumeSkipsCompletedUnits(t *testing.T) {
	// state after a crash at unit 103 with interval 50: the durable
	// checkpoint still describes unit 100
	store := newFakeStore()
	cohortID := uuid.New()
	units := makeUnits(120)

	completed := make([]string, 100)
	for i := range completed {
		completed[i] = units[i].ID
	}
	start := time.Now().Add(-time.Hour)
	store.snapshots[cohortID] = &entity.Checkpoint{
		CohortID:            cohortID,
		LastProcessedUnitID: "unit-100",
		CompletedUnitIDs:    completed,
		TotalUnits:          120,
		StartTime:           start,
		DerivedRecordCount:  100,
	}

	coord := New(store, testLogger())
	var processed []string
	summary, err := coord.Run(context.Background(), cohortID, units,
		func(_ context.Context, u entity.WorkUnit) (UnitResult, error) {
			processed = append(processed, u.ID)
			return UnitResult{Outcome: constants.UnitSuccess, DerivedCount: 1}, nil
		},
		Options{CheckpointInterval: 50})
	require.NoError(t, err)

	// only 101..120 ran, 101-103 reprocessed idempotently
	require.Len(t, processed, 20)
	assert.Equal(t, "unit-101", processed[0])
	assert.Equal(t, "unit-120", processed[19])

	assert.Equal(t, 120, summary.Processed, "summary covers the whole logical run")
	assert.Equal(t, 100, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 120, summary.DerivedCount)
	assert.Empty(t, store.snapshots)
}

func TestRunUnitFailureDoesNotAbort(t *testing.T) {
	store := newFakeStore()
	coord := New(store, testLogger())

	summary, err := coord.Run(context.Background(), uuid.New(), makeUnits(5),
		func(_ context.Context, u entity.WorkUnit) (UnitResult, error) {
			if u.ID == "unit-002" {
				return UnitResult{}, errors.New("chart unreadable")
			}
			if u.ID == "unit-004" {
				return UnitResult{Outcome: constants.UnitFailed, Detail: "no observations"}, nil
			}
			return UnitResult{Outcome: constants.UnitSuccess, DerivedCount: 1}, nil
		},
		Options{})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Processed, "failed units still count as done")
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 3, summary.DerivedCount)
	assert.Equal(t, 1, store.cleared, "run completed, checkpoint cleared")
}

func TestRunSaveFailureKeepsGoing(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("store unavailable")
	coord := New(store, testLogger())

	summary, err := coord.Run(context.Background(), uuid.New(), makeUnits(10), succeedEach,
		Options{CheckpointInterval: 2})
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Processed)
	assert.Equal(t, 1, store.cleared)
}

func TestRunLoadErrorSurfaces(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("store unavailable")
	coord := New(store, testLogger())

	calls := 0
	_, err := coord.Run(context.Background(), uuid.New(), makeUnits(3),
		func(_ context.Context, _ entity.WorkUnit) (UnitResult, error) {
			calls++
			return UnitResult{Outcome: constants.UnitSuccess}, nil
		},
		Options{})
	require.Error(t, err)
	assert.Zero(t, calls, "no unit processed when the store is unreachable")
}

func TestRunFatalConfiguration(t *testing.T) {
	store := newFakeStore()
	coord := New(store, testLogger())
	ctx := context.Background()

	_, err := coord.Run(ctx, uuid.Nil, makeUnits(1), succeedEach, Options{})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = coord.Run(ctx, uuid.New(), nil, succeedEach, Options{})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = coord.Run(ctx, uuid.New(), errSource{}, succeedEach, Options{})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	assert.Empty(t, store.saved, "no checkpoint written before processing starts")
	assert.Zero(t, store.cleared)
}

func TestRunCheckpointMonotonicity(t *testing.T) {
	store := newFakeStore()
	coord := New(store, testLogger())

	_, err := coord.Run(context.Background(), uuid.New(), makeUnits(30), succeedEach,
		Options{CheckpointInterval: 5})
	require.NoError(t, err)
	require.Len(t, store.saved, 6)

	prev := map[string]struct{}{}
	for _, snap := range store.saved {
		set := snap.CompletedSet()
		assert.Greater(t, len(set), len(prev), "completed set only grows")
		for id := range prev {
			_, ok := set[id]
			assert.True(t, ok, "completed unit %s never leaves the set", id)
		}
		prev = set
	}
}

func TestRunCancellationSavesProgress(t *testing.T) {
	store := newFakeStore()
	coord := New(store, testLogger())
	cohortID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	done := 0
	summary, err := coord.Run(ctx, cohortID, makeUnits(20),
		func(_ context.Context, _ entity.WorkUnit) (UnitResult, error) {
			done++
			if done == 7 {
				cancel()
			}
			return UnitResult{Outcome: constants.UnitSuccess, DerivedCount: 1}, nil
		},
		Options{CheckpointInterval: 5})
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 7, summary.Processed)
	snap := store.snapshots[cohortID]
	require.NotNil(t, snap, "checkpoint survives an aborted run")
	assert.Len(t, snap.CompletedUnitIDs, 7)
	assert.Zero(t, store.cleared)
}

func TestRunIdempotentSecondPass(t *testing.T) {
	store := newFakeStore()
	coord := New(store, testLogger())
	cohortID := uuid.New()
	units := makeUnits(12)

	first, err := coord.Run(context.Background(), cohortID, units, succeedEach, Options{CheckpointInterval: 4})
	require.NoError(t, err)
	assert.Equal(t, 12, first.Processed)

	// checkpoint was cleared, so the second pass reprocesses everything;
	// the dedup layer is what keeps the stored records unchanged
	second, err := coord.Run(context.Background(), cohortID, units, succeedEach, Options{CheckpointInterval: 4})
	require.NoError(t, err)
	assert.Equal(t, 12, second.Processed)
	assert.Equal(t, 0, second.Skipped)
}
