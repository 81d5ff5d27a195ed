package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tahsilat_import/internal/models"
	"tahsilat_import/internal/ports"
)

// Mode selects the persistence policy for a batch.
type Mode string

const (
	// ModeReplace always inserts; a duplicate case id is a storage error.
	ModeReplace Mode = "replace"
	// ModeUpdate upserts by case id.
	ModeUpdate Mode = "update"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeReplace, ModeUpdate:
		return Mode(s), nil
	case "":
		return ModeUpdate, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want replace or update)", s)
	}
}

// Service runs ingestion batches against a CaseStore. Rows are processed
// strictly sequentially: the running failure-rate check and the rollback
// list stay correct without any coordination.
type Service struct {
	store ports.CaseStore

	// Critical-failure policy: after MinSample rows the batch stops once
	// the failure rate passes FailureThreshold. Structural storage errors
	// stop it immediately.
	MinSample        int
	FailureThreshold float64

	// Transient storage errors retry with linear backoff.
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewService(store ports.CaseStore) *Service {
	return &Service{
		store:            store,
		MinSample:        10,
		FailureThreshold: 0.5,
		MaxAttempts:      3,
		RetryDelay:       200 * time.Millisecond,
	}
}

// Run processes the whole batch and produces the final report. Per-row
// failures never abort the batch on their own; only the critical-failure
// policy does. When a critical stop happens in replace mode, every row
// persisted so far is deleted again (compensating rollback — the batch
// has zero net effect on storage).
func (s *Service) Run(ctx context.Context, rows []RawRow, mode Mode) *Report {
	log.Printf("[ING][START] mode=%s rows=%d", mode, len(rows))
	t0 := time.Now()

	var (
		errs      []RowError
		warns     []RowWarning
		processed []string

		success, failed, created, updated int
		criticalReason                    string
	)

	for i, row := range rows {
		caseID, status, rowErrs, rowWarns, structural := s.processRow(ctx, i, row, mode)
		warns = append(warns, rowWarns...)

		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			failed++
			if structural {
				criticalReason = fmt.Sprintf("structural storage error at row %d: %s", i+1, rowErrs[len(rowErrs)-1].Message)
				break
			}
		} else {
			success++
			processed = append(processed, caseID)
			switch status {
			case "created":
				created++
			case "updated":
				updated++
			}
		}

		done := success + failed
		if done >= s.MinSample && float64(failed)/float64(done) > s.FailureThreshold {
			criticalReason = fmt.Sprintf("failure rate %.0f%% after %d rows exceeds threshold", float64(failed)/float64(done)*100, done)
			break
		}
	}

	rolledBack := false
	if criticalReason != "" {
		log.Printf("[ING][CRITICAL] %s", criticalReason)
		if mode == ModeReplace && len(processed) > 0 {
			n, err := s.store.DeleteByCaseIDs(ctx, processed)
			if err != nil {
				log.Printf("[ING][ROLLBACK][ERR] delete %d cases: %v", len(processed), err)
			} else {
				log.Printf("[ING][ROLLBACK] deleted %d cases", n)
				rolledBack = true
			}
		}
	}

	rep := buildReport(mode, len(rows), success, failed, created, updated, errs, warns, rolledBack, criticalReason)
	log.Printf("[ING][DONE] mode=%s total=%d success=%d failed=%d created=%d updated=%d rolled_back=%v duration=%s",
		mode, len(rows), success, failed, created, updated, rolledBack, time.Since(t0))
	return rep
}

// processRow handles one row end to end. Panics become PROCESSING_ERROR
// entries and count as ordinary failures.
func (s *Service) processRow(ctx context.Context, idx int, row RawRow, mode Mode) (caseID, status string, errs []RowError, warns []RowWarning, structural bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ING][PANIC] row=%d: %v", idx, r)
			status = ""
			warns = nil
			structural = false
			errs = append(errs, RowError{
				RowIndex: idx,
				Kind:     ErrProcessing,
				Message:  fmt.Sprintf("unexpected error: %v", r),
			})
		}
	}()

	cand := BuildCandidate(row, idx)
	rec, verrs := Validate(cand)
	if len(verrs) > 0 {
		return "", "", verrs, nil, false
	}

	status, err := s.persist(ctx, rec, mode)
	if err != nil {
		var se *ports.StorageError
		structural = errors.As(err, &se) && se.Structural()
		return "", "", []RowError{{
			RowIndex:   idx,
			Field:      FieldCaseID,
			Kind:       ErrStorage,
			Message:    fmt.Sprintf("case %s: %v", rec.CaseID, err),
			Suggestion: storageSuggestion(structural),
		}}, nil, structural
	}

	return rec.CaseID, status, nil, Audit(cand), false
}

func (s *Service) persist(ctx context.Context, rec *models.CollectionCase, mode Mode) (string, error) {
	if mode == ModeReplace {
		err := s.withRetry(ctx, func() error {
			_, err := s.store.Create(ctx, rec)
			return err
		})
		return "created", err
	}

	var existing *models.CollectionCase
	err := s.withRetry(ctx, func() error {
		var ferr error
		existing, ferr = s.store.FindByCaseID(ctx, rec.CaseID)
		return ferr
	})
	if err != nil {
		return "", err
	}

	if existing != nil {
		err = s.withRetry(ctx, func() error {
			_, uerr := s.store.Update(ctx, rec.CaseID, rec)
			return uerr
		})
		return "updated", err
	}

	err = s.withRetry(ctx, func() error {
		_, cerr := s.store.Create(ctx, rec)
		return cerr
	})
	return "created", err
}

// withRetry retries transient storage errors with linearly increasing
// backoff. Anything non-transient surfaces immediately.
func (s *Service) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= s.MaxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		var se *ports.StorageError
		if !errors.As(err, &se) || se.Kind != ports.StorageTransient || attempt == s.MaxAttempts {
			return err
		}
		delay := time.Duration(attempt) * s.RetryDelay
		log.Printf("[ING][RETRY] attempt=%d delay=%s err=%v", attempt, delay, err)
		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}
	}
	return err
}

func storageSuggestion(structural bool) string {
	if structural {
		return "resolve the constraint violation (duplicate or incomplete case) before retrying"
	}
	return "retry the batch once the storage backend is healthy"
}
