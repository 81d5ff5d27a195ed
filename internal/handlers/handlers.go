package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"tahsilat_import/internal/config/connections/mongo"
	"tahsilat_import/internal/config/connections/postgres"
	"tahsilat_import/internal/config/connections/s3"
	"tahsilat_import/internal/repository/database"
	"tahsilat_import/internal/services/ingest"
)

type Handlers struct {
	Postgres *postgres.Postgres
	Mongo    *mongo.Mongo
	S3       *s3.S3
	HTTP     *http.Client

	Ingest *ingest.Service

	Logger *log.Logger
}

func New(pg *postgres.Postgres, mg *mongo.Mongo, s3c *s3.S3) *Handlers {
	cases := database.NewCaseRepo(pg, "collection_cases")

	return &Handlers{
		Postgres: pg,
		Mongo:    mg,
		S3:       s3c,
		HTTP:     &http.Client{},
		Ingest:   ingest.NewService(cases),
		Logger:   log.Default(),
	}
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
