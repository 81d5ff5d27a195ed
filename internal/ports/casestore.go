package ports

import (
	"context"
	"fmt"

	"tahsilat_import/internal/models"
)

// StorageErrorKind splits persistence failures into the classes the
// ingestion orchestrator reacts to differently.
type StorageErrorKind string

const (
	// StorageTransient covers lock contention, deadlocks and timeouts —
	// safe to retry.
	StorageTransient StorageErrorKind = "transient"
	// StorageConflict is a uniqueness violation on the case id.
	StorageConflict StorageErrorKind = "conflict"
	// StorageConstraint is a not-null / foreign-key violation.
	StorageConstraint StorageErrorKind = "constraint"
	// StorageInternal is everything else.
	StorageInternal StorageErrorKind = "internal"
)

type StorageError struct {
	Kind StorageErrorKind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage (%s): %v", e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Structural reports whether the error is a constraint violation rather
// than contention: these mark the whole batch critical.
func (e *StorageError) Structural() bool {
	return e.Kind == StorageConflict || e.Kind == StorageConstraint
}

// CaseStore is the persistence collaborator for collection cases.
// FindByCaseID returns (nil, nil) when the case does not exist.
type CaseStore interface {
	FindByCaseID(ctx context.Context, caseID string) (*models.CollectionCase, error)
	Create(ctx context.Context, c *models.CollectionCase) (*models.CollectionCase, error)
	Update(ctx context.Context, caseID string, c *models.CollectionCase) (*models.CollectionCase, error)
	DeleteByCaseIDs(ctx context.Context, caseIDs []string) (int64, error)
}
