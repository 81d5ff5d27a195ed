package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	importaudit "tahsilat_import/internal/repository/imports"
	auth "tahsilat_import/internal/transport/auth"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Upload accepts multipart/form-data with `file` and optional `mode`
// fields, stores the raw file in S3 and opens an import batch record in
// Mongo. The returned path feeds a later /ingest call.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != http.MethodPost {
		h.JSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "use POST"})
		return
	}

	if err := r.ParseMultipartForm(128 << 20); err != nil {
		h.Logger.Printf("[UPLOAD][ERR] parse multipart: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]any{"error": "bad multipart: " + err.Error()})
		return
	}

	mode := r.FormValue("mode")
	if mode == "" {
		mode = "update"
	}

	f, fh, err := r.FormFile("file")
	if err != nil {
		h.Logger.Printf("[UPLOAD][ERR] missing file: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]any{"error": "file is required"})
		return
	}
	defer f.Close()

	fname := path.Base(fh.Filename)
	key := fmt.Sprintf("imports/%d-%s", time.Now().UnixNano(), fname)

	size := fh.Size
	if size <= 0 {
		size = -1
	}

	info, err := h.S3.Client.PutObject(context.Background(), h.S3.Bucket, key, f, size, minio.PutObjectOptions{ContentType: fh.Header.Get("Content-Type")})
	if err != nil {
		h.Logger.Printf("[UPLOAD][ERR] s3 put: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to store file: " + err.Error()})
		return
	}

	s3path := fmt.Sprintf("s3://%s/%s", h.S3.Bucket, key)

	batch := importaudit.Batch{
		BatchID:   uuid.NewString(),
		Mode:      mode,
		Status:    "uploaded",
		Path:      &s3path,
		Bucket:    &h.S3.Bucket,
		Key:       &key,
		SizeBytes: &info.Size,
	}
	if userID, errGet := auth.GetUserID(r.Context()); errGet == nil {
		batch.UserID = &userID
	}

	if _, err := importaudit.InsertBatch(r.Context(), h.Mongo, batch); err != nil {
		h.Logger.Printf("[UPLOAD][ERR] db insert: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	h.JSON(w, http.StatusCreated, map[string]any{"batch_id": batch.BatchID, "path": s3path})
}
