package dedup

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/entity"
)

// Reference workbooks carry one header row followed by candidate rows.
// Recognized headers: patient_id, unit_id, feature_code, value, unit,
// effective_date (YYYY-MM-DD), source_ref. Empty cells become NULLs.
func ReadReferenceRows(path string, cohortID uuid.UUID) ([]*entity.FeatureRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"patient_id", "feature_code"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("sheet %q missing required column %q", sheet, required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	optional := func(row []string, name string) *string {
		if v := cell(row, name); v != "" {
			return &v
		}
		return nil
	}

	records := make([]*entity.FeatureRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		patientID := cell(row, "patient_id")
		featureCode := cell(row, "feature_code")
		if patientID == "" || featureCode == "" {
			return nil, fmt.Errorf("row %d: patient_id and feature_code are required", n+2)
		}

		rec := &entity.FeatureRecord{
			CohortID:    cohortID,
			PatientID:   patientID,
			UnitID:      cell(row, "unit_id"),
			FeatureCode: featureCode,
			Value:       optional(row, "value"),
			Unit:        optional(row, "unit"),
			SourceRef:   optional(row, "source_ref"),
			Source:      constants.SourceReference,
		}
		if rec.UnitID == "" {
			rec.UnitID = patientID
		}
		if v := cell(row, "effective_date"); v != "" {
			d, err := time.ParseInLocation("2006-01-02", v, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid effective_date %q: %w", n+2, v, err)
			}
			rec.EffectiveDate = &d
		}
		records = append(records, rec)
	}
	return records, nil
}
