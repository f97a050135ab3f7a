// Package extract defines the batch-extractor contract and the chart-document
// adapter. Extractors are pure: no shared mutable state across units, so
// re-invoking one on the same unit after a crash yields the same output and
// the dedup layer can absorb the rewrites.
package extract

import (
	"context"

	"github.com/chartpull/clinical-features/constants"
	"github.com/chartpull/clinical-features/internal/entity"
)

// Result is the per-unit extraction output.
type Result struct {
	Records []*entity.FeatureRecord
	Outcome constants.UnitOutcome
	// Detail carries diagnostics for PARTIAL and FAILED outcomes.
	Detail string
}

// Extractor transforms one work unit's raw input into zero or more feature
// records. A returned error is equivalent to a FAILED outcome; the run
// coordinator counts it and moves on.
type Extractor interface {
	Extract(ctx context.Context, unit entity.WorkUnit) (Result, error)
}

// Func adapts a plain function to the Extractor interface.
type Func func(ctx context.Context, unit entity.WorkUnit) (Result, error)

func (f Func) Extract(ctx context.Context, unit entity.WorkUnit) (Result, error) {
	return f(ctx, unit)
}
