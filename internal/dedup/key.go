// Package dedup implements the existence-check-then-insert layer that keeps
// reprocessed and re-imported records from being written twice.
package dedup

import (
	"strings"
	"time"

	"github.com/chartpull/clinical-features/internal/entity"
)

// KeyField names one component of a record's natural key.
type KeyField string

const (
	KeyPatientID     KeyField = "patient_id"
	KeyFeatureCode   KeyField = "feature_code"
	KeyEffectiveDate KeyField = "effective_date"
	KeyValue         KeyField = "value"
	KeyUnit          KeyField = "unit"
)

// Separator and null sentinel for the serialized key. Both are control bytes
// escaped out of field values below, so a NULL field never collides with an
// empty or literal string and two NULLs compare equal. NUL is never emitted;
// Postgres text columns reject it.
const (
	keySep       = "\x1f"
	nullSentinel = "\x01"
)

// keyEscaper percent-encodes the bytes with structural meaning in the key,
// plus NUL and the escape character itself, keeping the projection injective
// over arbitrary field values.
var keyEscaper = strings.NewReplacer(
	"%", "%25",
	"\x00", "%00",
	"\x01", "%01",
	"\x1f", "%1F",
)

// DefaultKeyFields is the composite natural key used by the pipeline:
// same patient, same feature, same effective date, same value.
func DefaultKeyFields() []KeyField {
	return []KeyField{KeyPatientID, KeyFeatureCode, KeyEffectiveDate, KeyValue}
}

// ProjectKey serializes the selected fields of a record into its natural key.
// The projection is pure and decoupled from storage; the same string is
// materialized into the unique-index column and used for existence checks.
func ProjectKey(rec *entity.FeatureRecord, fields []KeyField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case KeyPatientID:
			parts = append(parts, keyEscaper.Replace(rec.PatientID))
		case KeyFeatureCode:
			parts = append(parts, keyEscaper.Replace(rec.FeatureCode))
		case KeyEffectiveDate:
			parts = append(parts, timeOrNull(rec.EffectiveDate))
		case KeyValue:
			parts = append(parts, strOrNull(rec.Value))
		case KeyUnit:
			parts = append(parts, strOrNull(rec.Unit))
		}
	}
	return strings.Join(parts, keySep)
}

func strOrNull(p *string) string {
	if p == nil {
		return nullSentinel
	}
	return keyEscaper.Replace(*p)
}

func timeOrNull(p *time.Time) string {
	if p == nil {
		return nullSentinel
	}
	return p.UTC().Format("2006-01-02")
}
