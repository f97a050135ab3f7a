package extract

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/entity"
)

func chartUnit(id string, raw string) entity.WorkUnit {
	return entity.WorkUnit{ID: id, PatientID: "p1", Raw: []byte(raw)}
}

func TestChartExtractorSuccess(t *testing.T) {
	cohortID := uuid.New()
	ex := NewChartExtractor(cohortID, true)

	res, err := ex.Extract(context.Background(), chartUnit("u1", `{
		"patient_id": "p1",
		"observations": [
			{"code": "bmi", "value": "24.1", "unit": "kg/m2", "date": "2024-01-15"},
			{"code": "smoker", "source_ref": "note:7"}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, constants.UnitSuccess, res.Outcome)
	require.Len(t, res.Records, 2)

	first := res.Records[0]
	assert.Equal(t, cohortID, first.CohortID)
	assert.Equal(t, "p1", first.PatientID)
	assert.Equal(t, "u1", first.UnitID)
	assert.Equal(t, "bmi", first.FeatureCode)
	require.NotNil(t, first.Value)
	assert.Equal(t, "24.1", *first.Value)
	require.NotNil(t, first.EffectiveDate)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *first.EffectiveDate)
	assert.Equal(t, constants.SourceExtracted, first.Source)

	second := res.Records[1]
	assert.Nil(t, second.Value)
	assert.Nil(t, second.EffectiveDate)
	require.NotNil(t, second.SourceRef)
	assert.Equal(t, "note:7", *second.SourceRef)
}

func TestChartExtractorPartial(t *testing.T) {
	// schema validation off so the malformed observation reaches the parser
	ex := NewChartExtractor(uuid.New(), false)

	res, err := ex.Extract(context.Background(), chartUnit("u1", `{
		"patient_id": "p1",
		"observations": [
			{"code": "bmi", "value": "24.1"},
			{"code": "hba1c", "date": "not-a-date"},
			{"value": "orphan value"}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, constants.UnitPartial, res.Outcome)
	assert.Len(t, res.Records, 1)
	assert.Contains(t, res.Detail, "observation 1")
	assert.Contains(t, res.Detail, "observation 2")
}

func TestChartExtractorFailed(t *testing.T) {
	ex := NewChartExtractor(uuid.New(), false)

	res, err := ex.Extract(context.Background(), chartUnit("u1", `not json`))
	require.NoError(t, err, "a bad unit is an outcome, not an error")
	assert.Equal(t, constants.UnitFailed, res.Outcome)
	assert.Empty(t, res.Records)
	assert.NotEmpty(t, res.Detail)
}

func TestChartExtractorSchemaValidation(t *testing.T) {
	ex := NewChartExtractor(uuid.New(), true)

	res, err := ex.Extract(context.Background(), chartUnit("u1", `{
		"patient_id": "p1",
		"observations": [{"code": "bmi"}],
		"unexpected": true
	}`))
	require.NoError(t, err)
	assert.Equal(t, constants.UnitFailed, res.Outcome, "schema rejects unknown top-level fields")
}

func TestChartExtractorDeterministic(t *testing.T) {
	ex := NewChartExtractor(uuid.New(), true)
	unit := chartUnit("u1", `{
		"patient_id": "p1",
		"observations": [{"code": "bmi", "value": "24.1", "date": "2024-01-15"}]
	}`)

	first, err := ex.Extract(context.Background(), unit)
	require.NoError(t, err)
	second, err := ex.Extract(context.Background(), unit)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-invocation on the same unit yields the same output")
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildChartJSONSchema()

	err := ValidateJSONAgainstSchema(schema, []byte(`{"patient_id": "p1", "observations": []}`))
	assert.NoError(t, err)

	err = ValidateJSONAgainstSchema(schema, []byte(`{"observations": []}`))
	assert.Error(t, err, "patient_id is required")

	err = ValidateJSONAgainstSchema(schema, []byte(`{"patient_id": "p1", "observations": [{"value": "1"}]}`))
	assert.Error(t, err, "observation code is required")
}

func TestExtractorFuncAdapter(t *testing.T) {
	called := false
	var ex Extractor = Func(func(_ context.Context, _ entity.WorkUnit) (Result, error) {
		called = true
		return Result{Outcome: constants.UnitSuccess}, nil
	})

	res, err := ex.Extract(context.Background(), entity.WorkUnit{})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, constants.UnitSuccess, res.Outcome)
}
