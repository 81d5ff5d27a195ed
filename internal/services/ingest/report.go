package ingest

import (
	"fmt"
	"math"
	"strings"
)

const (
	maxErrorStrings     = 10
	maxProcessingErrors = 5
	maxWarnings         = 10
)

// DataQuality counts the recurring pollution patterns per batch.
type DataQuality struct {
	MissingCaseID     int `json:"missingCaseId"`
	InvalidNationalID int `json:"invalidNationalId"`
	InvalidPhone      int `json:"invalidPhone"`
	InvalidAmount     int `json:"invalidAmount"`
	EmptyCounterparty int `json:"emptyCounterparty"`
}

type Summary struct {
	TotalRows     int         `json:"totalRows"`
	ProcessedRows int         `json:"processedRows"`
	FailedRows    int         `json:"failedRows"`
	SuccessRate   float64     `json:"successRate"`
	WarningCount  int         `json:"warningCount"`
	DataQuality   DataQuality `json:"dataQuality"`
}

// Report is the batch response shape returned to the HTTP caller.
// Immutable once built; error/warning lists are truncated for display.
type Report struct {
	Success          bool         `json:"success"`
	Message          string       `json:"message"`
	SuccessCount     int          `json:"successCount"`
	ErrorCount       int          `json:"errorCount"`
	CreatedCount     int          `json:"createdCount"`
	UpdatedCount     int          `json:"updatedCount"`
	Mode             string       `json:"mode"`
	Errors           []string     `json:"errors"`
	ErrorReport      string       `json:"errorReport"`
	ProcessingErrors []RowError   `json:"processingErrors"`
	Warnings         []RowWarning `json:"warnings"`
	Summary          Summary      `json:"summary"`
	NextSteps        []string     `json:"nextSteps"`
	RolledBack       bool         `json:"rolledBack,omitempty"`
	RollbackReason   string       `json:"rollbackReason,omitempty"`

	// Untruncated lists for the audit trail; not part of the response body.
	AllErrors   []RowError   `json:"-"`
	AllWarnings []RowWarning `json:"-"`
}

// kindOrder fixes the rendering order of error categories.
var kindOrder = []ErrorKind{
	ErrRequiredField, ErrTypeMismatch, ErrValidation, ErrStorage, ErrProcessing,
}

var kindLabels = map[ErrorKind]string{
	ErrRequiredField: "missing required fields",
	ErrTypeMismatch:  "type mismatches",
	ErrValidation:    "validation errors",
	ErrStorage:       "storage errors",
	ErrProcessing:    "processing errors",
}

// Categorize groups errors by kind. Pure and deterministic.
func Categorize(errs []RowError) map[ErrorKind][]RowError {
	out := make(map[ErrorKind][]RowError)
	for _, e := range errs {
		out[e.Kind] = append(out[e.Kind], e)
	}
	return out
}

// Summarize renders the non-zero categories with counts.
func Summarize(errs []RowError) string {
	if len(errs) == 0 {
		return "no errors"
	}
	byKind := Categorize(errs)
	parts := make([]string, 0, len(byKind))
	for _, k := range kindOrder {
		if n := len(byKind[k]); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kindLabels[k]))
		}
	}
	return strings.Join(parts, ", ")
}

func nextSteps(errs []RowError, warns []RowWarning, successRate float64) []string {
	byKind := Categorize(errs)
	var steps []string

	if len(byKind[ErrRequiredField]) > 0 {
		steps = append(steps, "Fill the durum tanıtıcı (case id) column for the failed rows and re-upload them.")
	}
	if len(byKind[ErrValidation]) > 0 || len(byKind[ErrTypeMismatch]) > 0 {
		steps = append(steps, "Check the amount columns for negative or non-numeric values.")
	}
	if len(byKind[ErrStorage]) > 0 {
		steps = append(steps, "Retry the batch later; repeated storage errors usually mean duplicate case ids in replace mode.")
	}
	if len(byKind[ErrProcessing]) > 0 {
		steps = append(steps, "Some rows hit unexpected errors; check the file for malformed cells.")
	}
	if successRate < 50 {
		steps = append(steps, "More than half the rows failed; verify the column headers match the expected template.")
	}
	if len(warns) > 0 {
		steps = append(steps, fmt.Sprintf("Review %d data-quality warnings (invalid kimlik/phone numbers, discarded counterparty names).", len(warns)))
	}
	if len(steps) == 0 {
		steps = append(steps, "No action needed.")
	}
	return steps
}

func dataQuality(errs []RowError, warns []RowWarning) DataQuality {
	var dq DataQuality
	for _, e := range errs {
		switch {
		case e.Field == FieldCaseID && e.Kind == ErrRequiredField:
			dq.MissingCaseID++
		case isAmountField(e.Field):
			dq.InvalidAmount++
		}
	}
	for _, w := range warns {
		switch {
		case w.Field == FieldNationalID:
			dq.InvalidNationalID++
		case w.Field == FieldPhone:
			dq.InvalidPhone++
		case w.Field == FieldCounterparty:
			dq.EmptyCounterparty++
		case isAmountField(w.Field):
			dq.InvalidAmount++
		}
	}
	return dq
}

func isAmountField(f string) bool {
	switch f {
	case FieldPrincipal, FieldInterest, FieldTotalDebt, FieldPaidAmount:
		return true
	}
	return false
}

func buildReport(mode Mode, total, success, failed, created, updated int,
	errs []RowError, warns []RowWarning, rolledBack bool, rollbackReason string) *Report {

	processed := success + failed
	rate := 100.0
	if processed > 0 {
		rate = math.Round(float64(success)/float64(processed)*1000) / 10
	}

	msgs := make([]string, 0, min(len(errs), maxErrorStrings))
	for _, e := range errs {
		if len(msgs) == maxErrorStrings {
			break
		}
		msgs = append(msgs, fmt.Sprintf("row %d: %s", e.RowIndex+1, e.Message))
	}

	message := fmt.Sprintf("imported %d of %d rows (%d created, %d updated)", success, total, created, updated)
	if rollbackReason != "" {
		message = "batch aborted: " + rollbackReason
		if rolledBack {
			message += "; previously imported rows were rolled back"
		}
	}

	return &Report{
		Success:          rollbackReason == "",
		Message:          message,
		SuccessCount:     success,
		ErrorCount:       len(errs),
		CreatedCount:     created,
		UpdatedCount:     updated,
		Mode:             string(mode),
		Errors:           msgs,
		ErrorReport:      Summarize(errs),
		ProcessingErrors: truncate(errs, maxProcessingErrors),
		Warnings:         truncate(warns, maxWarnings),
		Summary: Summary{
			TotalRows:     total,
			ProcessedRows: processed,
			FailedRows:    failed,
			SuccessRate:   rate,
			WarningCount:  len(warns),
			DataQuality:   dataQuality(errs, warns),
		},
		NextSteps:      nextSteps(errs, warns, rate),
		RolledBack:     rolledBack,
		RollbackReason: rollbackReason,
		AllErrors:      errs,
		AllWarnings:    warns,
	}
}

func truncate[T any](in []T, n int) []T {
	if len(in) <= n {
		return in
	}
	return in[:n]
}
