package dedup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chartpull/clinical-features/constants"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "reference.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadReferenceRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"patient_id", "unit_id", "feature_code", "value", "unit", "effective_date", "source_ref"},
		{"p1", "visit-01", "bmi", "23.4", "kg/m2", "2024-02-11", "registry:44"},
		{"p2", "", "smoker", "", "", "", ""},
	})

	cohortID := uuid.New()
	rows, err := ReadReferenceRows(path, cohortID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, cohortID, first.CohortID)
	assert.Equal(t, "p1", first.PatientID)
	assert.Equal(t, "visit-01", first.UnitID)
	assert.Equal(t, "bmi", first.FeatureCode)
	require.NotNil(t, first.Value)
	assert.Equal(t, "23.4", *first.Value)
	require.NotNil(t, first.EffectiveDate)
	assert.Equal(t, time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC), *first.EffectiveDate)
	assert.Equal(t, constants.SourceReference, first.Source)

	second := rows[1]
	assert.Equal(t, "p2", second.UnitID, "unit_id falls back to patient_id")
	assert.Nil(t, second.Value, "empty cells become NULLs")
	assert.Nil(t, second.EffectiveDate)
	assert.Nil(t, second.SourceRef)
}

func TestReadReferenceRowsMissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"patient_id", "value"},
		{"p1", "1"},
	})

	_, err := ReadReferenceRows(path, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature_code")
}

func TestReadReferenceRowsBadDate(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"patient_id", "feature_code", "effective_date"},
		{"p1", "bmi", "11/02/2024"},
	})

	_, err := ReadReferenceRows(path, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "effective_date")
}
