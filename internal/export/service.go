package export

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/chartpull/clinical-features/internal/repository"
)

// Service is a tiny façade over the feature repository that produces XLSX
// bytes for exports.
type Service struct {
	featuresRepo repository.FeatureRepository
	logger       *slog.Logger
}

func NewService(featuresRepo repository.FeatureRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{featuresRepo: featuresRepo, logger: logger}
}

// ExportFeaturesXLSX returns an XLSX workbook (as bytes) for the given cohort
// and effective-date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all records for the cohort.
func (s *Service) ExportFeaturesXLSX(ctx context.Context, cohortID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.featuresRepo.ListByCohort(ctx, cohortID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query features: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Features"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Patient ID",
		"Feature Code",
		"Value",
		"Unit",
		"Effective Date",
		"Source",
		"Source Ref",
		"Work Unit",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.PatientID)
		write(2, r.FeatureCode)
		write(3, strOrEmpty(r.Value))
		write(4, strOrEmpty(r.Unit))
		if r.EffectiveDate != nil {
			write(5, r.EffectiveDate.Format("2006-01-02"))
		} else {
			write(5, "")
		}
		write(6, string(r.Source))
		write(7, strOrEmpty(r.SourceRef))
		write(8, r.UnitID)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // patient
	_ = f.SetColWidth(sheet, "B", "B", 22) // code
	_ = f.SetColWidth(sheet, "C", "D", 14) // value/unit
	_ = f.SetColWidth(sheet, "E", "E", 14) // date
	_ = f.SetColWidth(sheet, "F", "H", 24) // provenance

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"cohort_id", cohortID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
