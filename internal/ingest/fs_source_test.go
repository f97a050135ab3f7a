package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorySource(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"patient-b.json": `{"patient_id": "patient-b"}`,
		"patient-a.json": `{"patient_id": "patient-a"}`,
		"notes.txt":      "not a chart",
		".hidden.json":   "{}",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	units, err := NewDirectorySource(dir).Units(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 2, "only visible .json files become units")

	assert.Equal(t, "patient-a.json", units[0].ID, "filename order")
	assert.Equal(t, "patient-a", units[0].PatientID)
	assert.JSONEq(t, `{"patient_id": "patient-a"}`, string(units[0].Raw))
	assert.Equal(t, "patient-b.json", units[1].ID)
}

func TestDirectorySourceMissingDir(t *testing.T) {
	_, err := NewDirectorySource(filepath.Join(t.TempDir(), "nope")).Units(context.Background())
	require.Error(t, err)
}

func TestSliceSourcePassthrough(t *testing.T) {
	src := SliceSource{{ID: "u1"}, {ID: "u2"}}
	units, err := src.Units(context.Background())
	require.NoError(t, err)
	assert.Len(t, units, 2)
}
