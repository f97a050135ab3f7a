package constants

// RecordSource tags where a feature_record row came from. Excluded from the
// natural key so reference imports dedup against extracted rows and vice versa.
type RecordSource string

const (
	SourceExtracted RecordSource = "EXTRACTED" // produced by the batch extractor
	SourceReference RecordSource = "REFERENCE" // imported from a reference registry
)

// DefaultCheckpointInterval is the number of completed work units between
// checkpoint saves when the caller does not override it.
const DefaultCheckpointInterval = 50
