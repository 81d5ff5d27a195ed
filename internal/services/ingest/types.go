package ingest

// ErrorKind categorizes per-row ingestion failures.
type ErrorKind string

const (
	ErrRequiredField ErrorKind = "REQUIRED_FIELD"
	ErrTypeMismatch  ErrorKind = "TYPE_MISMATCH"
	ErrValidation    ErrorKind = "VALIDATION_ERROR"
	ErrStorage       ErrorKind = "STORAGE_ERROR"
	ErrProcessing    ErrorKind = "PROCESSING_ERROR"
)

// RowError is one categorized failure. Appended during the batch, never
// mutated afterwards.
type RowError struct {
	RowIndex   int       `json:"rowIndex"`
	Field      string    `json:"field,omitempty"`
	Kind       ErrorKind `json:"errorKind"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// RowWarning is an advisory data-quality signal; it never rejects a row.
type RowWarning struct {
	RowIndex int    `json:"rowIndex"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}
