package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tahsilat_import/internal/handlers"
	"tahsilat_import/internal/transport/auth"
)

type Server struct {
	httpServer *http.Server
}

// NewServer wires the routes. When a token repo is supplied, /upload and
// /ingest require a valid bearer token; /health is always open.
func NewServer(port string, h *handlers.Handlers, tokenRepo auth.TokenRepo) *Server {
	mux := http.NewServeMux()

	if h != nil {
		protect := func(hf http.HandlerFunc) http.Handler {
			if tokenRepo == nil {
				return hf
			}
			return auth.TokenMiddleware(tokenRepo)(hf)
		}

		mux.HandleFunc("/health", h.Health)
		mux.Handle("/upload", protect(h.Upload))
		mux.Handle("/ingest", protect(h.IngestBatch))
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      mux,
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 16 * time.Minute,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}
