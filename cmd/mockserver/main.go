package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"auctionfront/internal/api/mockapi"
	"auctionfront/internal/config"
	"auctionfront/internal/mockserver"
	"auctionfront/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[mockserver] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store, err := storage.Open(cfg.StoragePath)
	if err != nil {
		logger.Fatalf("open storage: %v", err)
	}

	backend := mockapi.NewBackend(cfg.CatalogSeed, store, logger)
	srv := mockserver.New(cfg.HTTPAddr, backend, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting mock backend on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
