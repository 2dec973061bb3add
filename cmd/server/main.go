package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/qagen/internal/api"
	"github.com/dgallion1/qagen/internal/archive"
	"github.com/dgallion1/qagen/internal/config"
	"github.com/dgallion1/qagen/internal/extract"
	"github.com/dgallion1/qagen/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("loading configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the result archive.
	var store *archive.Store
	if cfg.ArchivePath != "" {
		store, err = archive.Open(cfg.ArchivePath)
		if err != nil {
			log.Error("opening archive", "path", cfg.ArchivePath, "error", err)
			os.Exit(1)
		}
	}
	stats := extract.NewRunStats(time.Hour)

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, store, stats, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		// Drain in-flight requests before the queue closes.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		orch.Stop()

		if store != nil {
			store.Close()
		}
	}()

	log.Info("starting qagen", "port", cfg.Port, "language", cfg.Language, "workers", cfg.WorkerCount, "archive", cfg.ArchivePath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	<-stopped
}
