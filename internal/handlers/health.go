package handlers

import (
	"context"
	"net/http"
	"time"
)

type healthResp struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []string

	if err := h.Postgres.Ping(ctx); err != nil {
		errs = append(errs, "postgres ping failed: "+err.Error())
	}
	if err := h.Mongo.Ping(ctx); err != nil {
		errs = append(errs, "mongo ping failed: "+err.Error())
	}
	if err := h.S3.Ping(ctx); err != nil {
		errs = append(errs, err.Error())
	}

	code := http.StatusOK
	resp := healthResp{OK: len(errs) == 0, Errors: errs}
	if !resp.OK {
		code = http.StatusInternalServerError
	}
	h.JSON(w, code, resp)
}
