package entity

// WorkUnit is the smallest item tracked for checkpoint/resume, typically one
// patient's record set. Raw holds the unstructured input handed to the
// extractor; the coordinator never looks inside it.
type WorkUnit struct {
	ID        string
	PatientID string
	Raw       []byte
}
