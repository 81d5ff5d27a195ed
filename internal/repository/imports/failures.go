package importaudit

import (
	"context"
	"time"

	mg "tahsilat_import/internal/config/connections/mongo"

	"go.mongodb.org/mongo-driver/mongo"
)

const FailuresCollection = "import_batch_failures"

// Failure is one rejected row, kept for later inspection. Warnings are
// not persisted — they only travel in the HTTP response.
type Failure struct {
	BatchID   string    `bson:"batch_id" json:"batch_id"`
	RowIndex  int       `bson:"row_index" json:"row_index"`
	Field     string    `bson:"field,omitempty" json:"field,omitempty"`
	Kind      string    `bson:"kind" json:"kind"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

func InsertFailures(ctx context.Context, m *mg.Mongo, failures []Failure) error {
	if m == nil || m.Database == nil {
		return mongo.ErrClientDisconnected
	}
	if len(failures) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(failures))
	for _, f := range failures {
		if f.CreatedAt.IsZero() {
			f.CreatedAt = now
		}
		docs = append(docs, f)
	}

	_, err := m.Database.Collection(FailuresCollection).InsertMany(ctx, docs)
	return err
}
