package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"churchapp/internal/config"
	"churchapp/internal/server"
	"churchapp/internal/storage"
	httptransport "churchapp/internal/transport/http"
)

func main() {
	cfg := config.MustLoad()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := storage.InitDB(cfg.DatabaseUrl)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	router := httptransport.Router(db, cfg)

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := server.Start(ctx, addr, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
