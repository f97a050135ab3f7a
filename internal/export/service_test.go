package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/entity"
)

type fakeFeatures struct {
	records []*entity.FeatureRecord

	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeFeatures) ExistsByNaturalKey(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}

func (f *fakeFeatures) Insert(_ context.Context, rec *entity.FeatureRecord, _ string) (*entity.FeatureRecord, error) {
	return rec, nil
}

func (f *fakeFeatures) ListByCohort(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.FeatureRecord, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.records, nil
}

func (f *fakeFeatures) CountByCohort(context.Context, uuid.UUID) (int, error) {
	return len(f.records), nil
}

func strPtr(s string) *string { return &s }

func TestExportFeaturesXLSX(t *testing.T) {
	date := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeFeatures{records: []*entity.FeatureRecord{
		{
			PatientID:     "p1",
			UnitID:        "visit-01",
			FeatureCode:   "bmi",
			Value:         strPtr("24.1"),
			Unit:          strPtr("kg/m2"),
			EffectiveDate: &date,
			Source:        constants.SourceExtracted,
			SourceRef:     strPtr("chart:12"),
		},
		{
			PatientID:   "p2",
			UnitID:      "visit-02",
			FeatureCode: "smoker",
			Source:      constants.SourceReference,
		},
	}}
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := svc.ExportFeaturesXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Features")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")

	assert.Equal(t, []string{
		"Patient ID", "Feature Code", "Value", "Unit",
		"Effective Date", "Source", "Source Ref", "Work Unit",
	}, rows[0])

	assert.Equal(t, []string{
		"p1", "bmi", "24.1", "kg/m2", "2024-04-02", "EXTRACTED", "chart:12", "visit-01",
	}, rows[1])

	// nil optionals come out as empty cells
	assert.Equal(t, "p2", rows[2][0])
	assert.Equal(t, "smoker", rows[2][1])
	assert.Equal(t, "REFERENCE", rows[2][5])
}

func TestExportFeaturesXLSXDateWindow(t *testing.T) {
	repo := &fakeFeatures{}
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	from := time.Date(2024, 1, 15, 13, 45, 0, 0, time.Local)
	_, err := svc.ExportFeaturesXLSX(context.Background(), uuid.New(), &from, nil)
	require.NoError(t, err)

	require.NotNil(t, repo.gotFrom)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *repo.gotFrom,
		"from truncated to a UTC date")
	require.NotNil(t, repo.gotTo, "open-ended from defaults to today")
}

func TestExportFeaturesXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeFeatures{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	out, err := svc.ExportFeaturesXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Features")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
