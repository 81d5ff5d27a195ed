package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tahsilat_import/internal/adapters/opener"
	importaudit "tahsilat_import/internal/repository/imports"
	"tahsilat_import/internal/services/ingest"
	auth "tahsilat_import/internal/transport/auth"

	"github.com/google/uuid"
)

type ingestRequest struct {
	Mode       string          `json:"mode"`
	FilePath   string          `json:"file_path,omitempty"`
	Rows       []ingest.RawRow `json:"rows,omitempty"`
	BatchID    string          `json:"batch_id,omitempty"`
	TimeoutMin int             `json:"timeout_minutes,omitempty"`
}

// IngestBatch runs one ingestion batch synchronously and returns the full
// report. Rows come either inline or from a file path (s3://, https://,
// or a bare key against the default bucket).
func (h *Handlers) IngestBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "use POST"})
		return
	}

	var req ingestRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<20))
	if err := dec.Decode(&req); err != nil {
		h.Logger.Printf("[INGEST][REQ][ERR] bad JSON: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "bad JSON: " + err.Error()})
		return
	}

	mode, err := ingest.ParseMode(req.Mode)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	timeout := 15 * time.Minute
	if req.TimeoutMin > 0 {
		timeout = time.Duration(req.TimeoutMin) * time.Minute
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	rows := req.Rows
	if fp := strings.TrimSpace(req.FilePath); fp != "" {
		rows, err = h.decodeFile(ctx, fp)
		if err != nil {
			h.Logger.Printf("[INGEST][ERR] decode %q: %v", fp, err)
			h.JSON(w, http.StatusBadRequest, map[string]string{"error": "cannot read file: " + err.Error()})
			return
		}
	}
	if len(rows) == 0 {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "no rows: pass rows or file_path"})
		return
	}

	batchID := strings.TrimSpace(req.BatchID)
	if batchID == "" {
		batchID = uuid.NewString()
		batch := importaudit.Batch{BatchID: batchID, Mode: string(mode), Status: "processing", TotalRows: len(rows)}
		if userID, errGet := auth.GetUserID(r.Context()); errGet == nil {
			batch.UserID = &userID
		}
		if fp := strings.TrimSpace(req.FilePath); fp != "" {
			batch.Path = &fp
		}
		if _, err := importaudit.InsertBatch(ctx, h.Mongo, batch); err != nil {
			h.Logger.Printf("[INGEST][WARN] batch record insert: %v", err)
		}
	}

	rep := h.Ingest.Run(ctx, rows, mode)

	h.recordOutcome(ctx, batchID, rep)

	code := http.StatusOK
	if !rep.Success {
		code = http.StatusUnprocessableEntity
	}
	h.JSON(w, code, rep)
}

func (h *Handlers) decodeFile(ctx context.Context, filePath string) ([]ingest.RawRow, error) {
	httpOp := opener.NewHTTPOpener(h.HTTP)
	s3Op := opener.NewS3Opener(h.S3.Client)
	compound := opener.NewCompoundOpener(httpOp, s3Op, h.S3.Bucket)

	rc, meta, err := compound.Open(ctx, filePath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rows, format, err := ingest.DecodeRows(rc, filePath, meta.ContentType)
	if err != nil {
		return nil, err
	}
	h.Logger.Printf("[INGEST] source=%s format=%s rows=%d", meta.Source, format, len(rows))
	return rows, nil
}

// recordOutcome writes the batch result and the untruncated failure list
// to Mongo. Audit only: a write failure is logged, not surfaced.
func (h *Handlers) recordOutcome(ctx context.Context, batchID string, rep *ingest.Report) {
	status := "done"
	switch {
	case rep.RolledBack:
		status = "rolled_back"
	case !rep.Success:
		status = "failed"
	}

	if err := importaudit.FinishBatch(ctx, h.Mongo, batchID, importaudit.Outcome{
		Status:       status,
		TotalRows:    rep.Summary.TotalRows,
		SuccessCount: rep.SuccessCount,
		ErrorCount:   rep.ErrorCount,
		CreatedCount: rep.CreatedCount,
		UpdatedCount: rep.UpdatedCount,
		ErrorReport:  rep.ErrorReport,
		RolledBack:   rep.RolledBack,
	}); err != nil {
		h.Logger.Printf("[INGEST][WARN] finish batch record: %v", err)
	}

	if len(rep.AllErrors) == 0 {
		return
	}
	failures := make([]importaudit.Failure, 0, len(rep.AllErrors))
	for _, e := range rep.AllErrors {
		failures = append(failures, importaudit.Failure{
			BatchID:  batchID,
			RowIndex: e.RowIndex,
			Field:    e.Field,
			Kind:     string(e.Kind),
			Message:  e.Message,
		})
	}
	if err := importaudit.InsertFailures(ctx, h.Mongo, failures); err != nil {
		h.Logger.Printf("[INGEST][WARN] failure records insert: %v", err)
	}
}
