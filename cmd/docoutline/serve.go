package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/api"
	"github.com/dgallion1/docoutline/internal/config"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/pipeline"
	"github.com/dgallion1/docoutline/internal/store"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the outline HTTP service",
	Long: `Start the HTTP API server.

Uploaded documents are queued and processed by a worker pool; finished
outlines are kept in memory, or on disk when DOCOUTLINE_DATA_DIR is
set.

Endpoints:
  POST   /api/outlines              - upload one document
  POST   /api/outlines/batch        - upload several documents
  GET    /api/outlines/{id}/status  - job progress
  GET    /api/documents             - stored outlines
  GET    /health                    - liveness check

Examples:
  docoutline serve                # listen on default port 8090
  docoutline serve --port 3000    # custom port`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := newLogger()

		cfg := config.Load()
		if servePort != "" {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		st, err := newStore(cfg, log)
		if err != nil {
			return err
		}

		engine := outline.NewEngine(outline.Config{ZeroBasedPages: cfg.ZeroBasedPages})
		orch := pipeline.NewOrchestrator(cfg, st, engine, log)
		orch.Start(ctx)

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      api.NewServer(orch, log, cfg),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			log.Info("shutting down...")

			orch.Stop()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting docoutline", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func newStore(cfg config.Config, log *slog.Logger) (store.Store, error) {
	if cfg.DataDir == "" {
		log.Info("using in-memory outline store")
		return store.NewMemStore(), nil
	}
	log.Info("using directory outline store", "dir", cfg.DataDir)
	return store.NewDirStore(cfg.DataDir)
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides DOCOUTLINE_PORT)")

	rootCmd.AddCommand(serveCmd)
}
