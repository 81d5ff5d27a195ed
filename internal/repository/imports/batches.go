package importaudit

import (
	"context"
	"fmt"
	"time"

	mg "tahsilat_import/internal/config/connections/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BatchesCollection = "import_batches"

// Batch is the audit document for one ingestion batch. The in-memory
// Report stays the source of truth for the HTTP response; this record is
// what survives the request.
type Batch struct {
	BatchID      string     `bson:"batch_id" json:"batch_id"`
	UserID       *string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Mode         string     `bson:"mode" json:"mode"`
	Status       string     `bson:"status" json:"status"`
	Path         *string    `bson:"path,omitempty" json:"path,omitempty"`
	Bucket       *string    `bson:"bucket,omitempty" json:"bucket,omitempty"`
	Key          *string    `bson:"key,omitempty" json:"key,omitempty"`
	SizeBytes    *int64     `bson:"size_bytes,omitempty" json:"size_bytes,omitempty"`
	TotalRows    int        `bson:"total_rows" json:"total_rows"`
	SuccessCount int        `bson:"success_count" json:"success_count"`
	ErrorCount   int        `bson:"error_count" json:"error_count"`
	CreatedCount int        `bson:"created_count" json:"created_count"`
	UpdatedCount int        `bson:"updated_count" json:"updated_count"`
	ErrorReport  string     `bson:"error_report,omitempty" json:"error_report,omitempty"`
	RolledBack   bool       `bson:"rolled_back" json:"rolled_back"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt    *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}

func InsertBatch(ctx context.Context, m *mg.Mongo, b Batch) (*mongo.InsertOneResult, error) {
	if m == nil || m.Client == nil || m.Database == nil {
		return nil, mongo.ErrClientDisconnected
	}

	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	if b.Status == "" {
		b.Status = "uploaded"
	}

	return m.Database.Collection(BatchesCollection).InsertOne(ctx, b, options.InsertOne())
}

// Outcome carries the batch counters written back once ingestion ends.
type Outcome struct {
	Status       string
	TotalRows    int
	SuccessCount int
	ErrorCount   int
	CreatedCount int
	UpdatedCount int
	ErrorReport  string
	RolledBack   bool
}

func FinishBatch(ctx context.Context, m *mg.Mongo, batchID string, out Outcome) error {
	if m == nil || m.Database == nil {
		return mongo.ErrClientDisconnected
	}
	if batchID == "" {
		return fmt.Errorf("empty batchID")
	}

	update := bson.M{"$set": bson.M{
		"status":        out.Status,
		"total_rows":    out.TotalRows,
		"success_count": out.SuccessCount,
		"error_count":   out.ErrorCount,
		"created_count": out.CreatedCount,
		"updated_count": out.UpdatedCount,
		"error_report":  out.ErrorReport,
		"rolled_back":   out.RolledBack,
		"updated_at":    time.Now().UTC(),
	}}

	res, err := m.Database.Collection(BatchesCollection).UpdateOne(ctx, bson.M{"batch_id": batchID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no import batch found with batch_id %s", batchID)
	}
	return nil
}
