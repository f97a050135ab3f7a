package pipeline

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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/dedup"
	"github.com/chartpull/clinical-features/internal/entity"
	"github.com/chartpull/clinical-features/internal/extract"
	"github.com/chartpull/clinical-features/internal/runner"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memStore struct {
	mu        sync.Mutex
	snapshots map[uuid.UUID]*entity.Checkpoint
}

func newMemStore() *memStore {
	return &memStore{snapshots: make(map[uuid.UUID]*entity.Checkpoint)}
}

func (s *memStore) Save(_ context.Context, snap *entity.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *snap
	cp.CompletedUnitIDs = append([]string(nil), snap.CompletedUnitIDs...)
	s.snapshots[snap.CohortID] = &cp
	return nil
}

func (s *memStore) Load(_ context.Context, cohortID uuid.UUID) (*entity.Checkpoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snapshots[cohortID]
	if !ok {
		return nil, nil
	}
	cp := *snap
	cp.CompletedUnitIDs = append([]string(nil), snap.CompletedUnitIDs...)
	return &cp, nil
}

func (s *memStore) Clear(_ context.Context, cohortID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, cohortID)
	return nil
}

type memTarget struct {
	mu        sync.Mutex
	rows      map[string]*entity.FeatureRecord
	insertErr error
}

func newMemTarget() *memTarget {
	return &memTarget{rows: make(map[string]*entity.FeatureRecord)}
}

func (f *memTarget) ExistsByNaturalKey(_ context.Context, _ uuid.UUID, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[key]
	return ok, nil
}

func (f *memTarget) Insert(_ context.Context, rec *entity.FeatureRecord, key string) (*entity.FeatureRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if _, ok := f.rows[key]; ok {
		return nil, common.WrapError(common.ErrRecordConflict, key)
	}
	f.rows[key] = rec
	return rec, nil
}

type cohortSet map[uuid.UUID]struct{}

func (c cohortSet) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := c[id]
	return ok, nil
}

type sliceSource []entity.WorkUnit

func (s sliceSource) Units(context.Context) ([]entity.WorkUnit, error) {
	return s, nil
}

// oneRecordPerUnit derives a single feature record from each unit.
func oneRecordPerUnit(cohortID uuid.UUID) extract.Extractor {
	return extract.Func(func(_ context.Context, unit entity.WorkUnit) (extract.Result, error) {
		v := unit.ID
		return extract.Result{
			Records: []*entity.FeatureRecord{{
				CohortID:    cohortID,
				PatientID:   unit.PatientID,
				UnitID:      unit.ID,
				FeatureCode: "chart_seen",
				Value:       &v,
				Source:      constants.SourceExtracted,
			}},
			Outcome: constants.UnitSuccess,
		}, nil
	})
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

func newTestService(cohortID uuid.UUID, store runner.CheckpointStore, target dedup.Target, ex extract.Extractor) *Service {
	logger := testLogger()
	importer := dedup.NewImporter(target, nil, logger)
	coordinator := runner.New(store, logger)
	return NewService(coordinator, ex, importer, cohortSet{cohortID: {}}, logger)
}

func TestRunExtractionEndToEnd(t *testing.T) {
	cohortID := uuid.New()
	store := newMemStore()
	target := newMemTarget()
	svc := newTestService(cohortID, store, target, oneRecordPerUnit(cohortID))

	summary, err := svc.RunExtraction(context.Background(), RunRequest{
		CohortID:           cohortID.String(),
		Source:             makeUnits(120),
		CheckpointInterval: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, summary.Processed)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 120, summary.DerivedCount)
	assert.Len(t, target.rows, 120)
}

func TestRunExtractionIdempotentRerun(t *testing.T) {
	cohortID := uuid.New()
	store := newMemStore()
	target := newMemTarget()
	svc := newTestService(cohortID, store, target, oneRecordPerUnit(cohortID))
	req := RunRequest{CohortID: cohortID.String(), Source: makeUnits(30), CheckpointInterval: 10}

	_, err := svc.RunExtraction(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, target.rows, 30)

	// checkpoint was cleared; the whole source is reprocessed and every
	// record dedups against the first pass
	summary, err := svc.RunExtraction(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, summary.Processed)
	assert.Len(t, target.rows, 30, "second run writes nothing new")
}

func TestRunExtractionResumeAfterCrash(t *testing.T) {
	cohortID := uuid.New()
	store := newMemStore()
	target := newMemTarget()
	units := makeUnits(120)
	svc := newTestService(cohortID, store, target, oneRecordPerUnit(cohortID))
	ctx := context.Background()

	// first pass dies after unit 103: records for 1..103 are durable but the
	// checkpoint still describes unit 100
	importer := dedup.NewImporter(target, nil, testLogger())
	completed := make([]string, 100)
	for i := 0; i < 103; i++ {
		res, err := oneRecordPerUnit(cohortID).Extract(ctx, units[i])
		require.NoError(t, err)
		_, err = importer.Upsert(ctx, res.Records[0])
		require.NoError(t, err)
		if i < 100 {
			completed[i] = units[i].ID
		}
	}
	require.NoError(t, store.Save(ctx, &entity.Checkpoint{
		CohortID:            cohortID,
		LastProcessedUnitID: "unit-100",
		CompletedUnitIDs:    completed,
		TotalUnits:          120,
		DerivedRecordCount:  100,
	}))

	summary, err := svc.RunExtraction(ctx, RunRequest{
		CohortID:           cohortID.String(),
		Source:             units,
		CheckpointInterval: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 120, summary.Processed)
	assert.Equal(t, 100, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 120, summary.DerivedCount)
	assert.Len(t, target.rows, 120, "units 101-103 reprocessed without duplicates")
}

func TestRunExtractionWriteFailureMarksUnitFailed(t *testing.T) {
	cohortID := uuid.New()
	store := newMemStore()
	target := newMemTarget()
	target.insertErr = errors.New("connection reset")
	svc := newTestService(cohortID, store, target, oneRecordPerUnit(cohortID))

	summary, err := svc.RunExtraction(context.Background(), RunRequest{
		CohortID: cohortID.String(),
		Source:   makeUnits(4),
	})
	require.NoError(t, err, "write failures stay inside the summary")
	assert.Equal(t, 4, summary.Processed)
	assert.Equal(t, 4, summary.Failed)
}

func TestRunExtractionValidation(t *testing.T) {
	cohortID := uuid.New()
	svc := newTestService(cohortID, newMemStore(), newMemTarget(), oneRecordPerUnit(cohortID))
	ctx := context.Background()

	_, err := svc.RunExtraction(ctx, RunRequest{CohortID: "not-a-uuid", Source: makeUnits(1)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.RunExtraction(ctx, RunRequest{CohortID: uuid.New().String(), Source: makeUnits(1)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "unknown cohort rejected")

	_, err = svc.RunExtraction(ctx, RunRequest{CohortID: cohortID.String()})
	assert.Equal(t, codes.InvalidArgument, status.Code(err), "source required")
}

func TestRunExtractionSingleFlight(t *testing.T) {
	cohortID := uuid.New()
	store := newMemStore()
	target := newMemTarget()

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	blocking := extract.Func(func(_ context.Context, _ entity.WorkUnit) (extract.Result, error) {
		once.Do(func() { close(started) })
		<-release
		return extract.Result{Outcome: constants.UnitSuccess}, nil
	})
	svc := newTestService(cohortID, store, target, blocking)
	req := RunRequest{CohortID: cohortID.String(), Source: makeUnits(1)}

	done := make(chan error, 1)
	go func() {
		_, err := svc.RunExtraction(context.Background(), req)
		done <- err
	}()
	<-started

	_, err := svc.RunExtraction(context.Background(), req)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "same-cohort concurrency rejected")

	close(release)
	require.NoError(t, <-done)

	// the slot frees up once the run finishes
	_, err = svc.RunExtraction(context.Background(), req)
	require.NoError(t, err)
}

func TestImportReferenceValidatesCohort(t *testing.T) {
	cohortID := uuid.New()
	svc := newTestService(cohortID, newMemStore(), newMemTarget(), oneRecordPerUnit(cohortID))
	ctx := context.Background()

	_, err := svc.ImportReference(ctx, "nope", nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	v := "1"
	summary, err := svc.ImportReference(ctx, cohortID.String(), []*entity.FeatureRecord{
		{PatientID: "p1", FeatureCode: "bmi", Value: &v},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)
}
