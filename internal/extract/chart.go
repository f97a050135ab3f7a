package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/entity"
)

type chartDocument struct {
	PatientID    string        `json:"patient_id"`
	Observations []observation `json:"observations"`
}

type observation struct {
	Code      string `json:"code"`
	Value     string `json:"value,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Date      string `json:"date,omitempty"`
	SourceRef string `json:"source_ref,omitempty"`
}

// ChartExtractor parses JSON chart documents into feature records. It holds
// only configuration, never per-unit state, so extraction is deterministic.
type ChartExtractor struct {
	cohortID  uuid.UUID
	schemaMap map[string]any
	validate  bool
}

func NewChartExtractor(cohortID uuid.UUID, validate bool) *ChartExtractor {
	return &ChartExtractor{
		cohortID:  cohortID,
		schemaMap: BuildChartJSONSchema(),
		validate:  validate,
	}
}

// Extract parses one chart document. Malformed observations degrade the unit
// to PARTIAL; an unreadable document is FAILED. Timestamps are left to the
// storage layer so identical inputs yield identical results.
func (e *ChartExtractor) Extract(_ context.Context, unit entity.WorkUnit) (Result, error) {
	if e.validate {
		if err := ValidateJSONAgainstSchema(e.schemaMap, unit.Raw); err != nil {
			return Result{Outcome: constants.UnitFailed, Detail: err.Error()}, nil
		}
	}

	var doc chartDocument
	if err := json.Unmarshal(unit.Raw, &doc); err != nil {
		return Result{Outcome: constants.UnitFailed, Detail: fmt.Sprintf("parse chart: %v", err)}, nil
	}
	if doc.PatientID == "" {
		return Result{Outcome: constants.UnitFailed, Detail: "chart missing patient_id"}, nil
	}

	var rejected []string
	records := make([]*entity.FeatureRecord, 0, len(doc.Observations))
	for i, obs := range doc.Observations {
		rec, err := e.toRecord(unit.ID, doc.PatientID, obs)
		if err != nil {
			rejected = append(rejected, fmt.Sprintf("observation %d: %v", i, err))
			continue
		}
		records = append(records, rec)
	}

	switch {
	case len(rejected) == 0:
		return Result{Records: records, Outcome: constants.UnitSuccess}, nil
	case len(records) > 0:
		return Result{
			Records: records,
			Outcome: constants.UnitPartial,
			Detail:  strings.Join(rejected, "; "),
		}, nil
	default:
		return Result{Outcome: constants.UnitFailed, Detail: strings.Join(rejected, "; ")}, nil
	}
}

func (e *ChartExtractor) toRecord(unitID, patientID string, obs observation) (*entity.FeatureRecord, error) {
	if obs.Code == "" {
		return nil, fmt.Errorf("missing code")
	}

	rec := &entity.FeatureRecord{
		CohortID:    e.cohortID,
		PatientID:   patientID,
		UnitID:      unitID,
		FeatureCode: obs.Code,
		Source:      constants.SourceExtracted,
	}
	if obs.Value != "" {
		v := obs.Value
		rec.Value = &v
	}
	if obs.Unit != "" {
		u := obs.Unit
		rec.Unit = &u
	}
	if obs.SourceRef != "" {
		s := obs.SourceRef
		rec.SourceRef = &s
	}
	if obs.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", obs.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", obs.Date)
		}
		rec.EffectiveDate = &d
	}
	return rec, nil
}
