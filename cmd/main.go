package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tahsilat_import/internal/config"
	"tahsilat_import/internal/handlers"
	"tahsilat_import/internal/repository"
	"tahsilat_import/internal/server"
	"tahsilat_import/internal/transport/auth"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)

	if err := cfg.CheckConnections(setupCtx); err != nil {
		log.Fatalf("connection check failed: %v", err)
	}
	log.Println("all connections OK")

	var tokenRepo auth.TokenRepo
	if os.Getenv("AUTH_DISABLED") != "true" {
		tokenRepo = repository.NewAPITokenRepository(cfg.Postgres)
	}

	h := handlers.New(cfg.Postgres, cfg.Mongo, cfg.S3)
	srv := server.NewServer(cfg.Port, h, tokenRepo)

	if err := srv.Run(runCtx); err != nil {
		log.Fatal(err)
	}
}
