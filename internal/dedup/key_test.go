package dedup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chartpull/clinical-features/internal/entity"
)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestProjectKeyNullTolerant(t *testing.T) {
	a := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: nil}
	b := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: nil}

	assert.Equal(t, ProjectKey(a, DefaultKeyFields()), ProjectKey(b, DefaultKeyFields()),
		"two NULLs in the same field compare equal")
}

func TestProjectKeyNullDistinctFromEmpty(t *testing.T) {
	null := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: nil}
	empty := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: strPtr("")}

	assert.NotEqual(t, ProjectKey(null, DefaultKeyFields()), ProjectKey(empty, DefaultKeyFields()))
}

func TestProjectKeyDiffersPerField(t *testing.T) {
	base := &entity.FeatureRecord{
		PatientID:     "p1",
		FeatureCode:   "hba1c",
		Value:         strPtr("6.1"),
		EffectiveDate: datePtr(2024, 3, 1),
	}
	fields := DefaultKeyFields()
	baseKey := ProjectKey(base, fields)

	other := *base
	other.PatientID = "p2"
	assert.NotEqual(t, baseKey, ProjectKey(&other, fields))

	other = *base
	other.FeatureCode = "ldl"
	assert.NotEqual(t, baseKey, ProjectKey(&other, fields))

	other = *base
	other.Value = strPtr("6.2")
	assert.NotEqual(t, baseKey, ProjectKey(&other, fields))

	other = *base
	other.EffectiveDate = datePtr(2024, 3, 2)
	assert.NotEqual(t, baseKey, ProjectKey(&other, fields))
}

func TestProjectKeyIgnoresUnselectedFields(t *testing.T) {
	fields := []KeyField{KeyPatientID, KeyFeatureCode}

	a := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: strPtr("22")}
	b := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: strPtr("31")}
	assert.Equal(t, ProjectKey(a, fields), ProjectKey(b, fields))
}

func TestProjectKeyNeverEmitsNUL(t *testing.T) {
	// Postgres text columns reject NUL bytes, so a key for a record with NULL
	// optional fields must not carry one
	rec := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "smoker"}
	key := ProjectKey(rec, DefaultKeyFields())
	assert.NotContains(t, key, "\x00")

	withValue := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "smoker", Value: strPtr("a\x00b")}
	assert.NotContains(t, ProjectKey(withValue, DefaultKeyFields()), "\x00")
}

func TestProjectKeyEscapesStructuralBytes(t *testing.T) {
	fields := DefaultKeyFields()

	// a separator inside a value must not shift field boundaries
	a := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: strPtr("x\x1fy")}
	b := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi\x1fx", Value: strPtr("y")}
	assert.NotEqual(t, ProjectKey(a, fields), ProjectKey(b, fields))

	// a literal sentinel byte in a value is not a NULL
	null := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi"}
	literal := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: strPtr("\x01")}
	assert.NotEqual(t, ProjectKey(null, fields), ProjectKey(literal, fields))

	// the escape character itself round-trips injectively
	escaped := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: strPtr("%1F")}
	raw := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", Value: strPtr("\x1f")}
	assert.NotEqual(t, ProjectKey(escaped, fields), ProjectKey(raw, fields))
}

func TestProjectKeyDateNormalizedToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	utc := local.UTC()

	a := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", EffectiveDate: &local}
	b := &entity.FeatureRecord{PatientID: "p1", FeatureCode: "bmi", EffectiveDate: &utc}
	assert.Equal(t, ProjectKey(a, DefaultKeyFields()), ProjectKey(b, DefaultKeyFields()))
}
