package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/clinical-features/internal/common"
	"github.com/chartpull/clinical-features/internal/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckpointRoundTrip(t *testing.T) {
	logger := testLogger()
	ctx := context.Background()
	client, err := OpenSQLite(ctx, "file:cp_roundtrip?mode=memory&cache=shared&_fk=1", logger)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	cohort, err := NewCohortRepository(client, logger).GetOrCreateByName(ctx, "round-trip")
	require.NoError(t, err)

	repo := NewCheckpointRepository(client, logger)

	loaded, err := repo.Load(ctx, cohort.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded, "no checkpoint before the first save")

	snap := &entity.Checkpoint{
		CohortID:            cohort.ID,
		LastProcessedUnitID: "unit-002",
		CompletedUnitIDs:    []string{"unit-001", "unit-002"},
		TotalUnits:          5,
		StartTime:           time.Now().UTC(),
		DerivedRecordCount:  7,
	}
	require.NoError(t, repo.Save(ctx, snap))

	// second save replaces the row, it does not add one
	snap.LastProcessedUnitID = "unit-003"
	snap.CompletedUnitIDs = append(snap.CompletedUnitIDs, "unit-003")
	require.NoError(t, repo.Save(ctx, snap))

	loaded, err = repo.Load(ctx, cohort.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "unit-003", loaded.LastProcessedUnitID)
	assert.Equal(t, []string{"unit-001", "unit-002", "unit-003"}, loaded.CompletedUnitIDs)
	assert.Equal(t, 5, loaded.TotalUnits)
	assert.Equal(t, 7, loaded.DerivedRecordCount)

	require.NoError(t, repo.Clear(ctx, cohort.ID))
	loaded, err = repo.Load(ctx, cohort.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCheckpointStoreErrorsClassifiedTransient(t *testing.T) {
	logger := testLogger()
	ctx := context.Background()
	client, err := OpenSQLite(ctx, "file:cp_errors?mode=memory&cache=shared&_fk=1", logger)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	repo := NewCheckpointRepository(client, logger)

	_, err = repo.Load(ctx, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransientStore, "load failures carry the retry signal")

	err = repo.Save(ctx, &entity.Checkpoint{CohortID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTransientStore, "save lookup failures carry the retry signal")
}
