package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sheetsplit/internal/api"
	"github.com/dgallion1/sheetsplit/internal/config"
	"github.com/dgallion1/sheetsplit/internal/pipeline"
	"github.com/dgallion1/sheetsplit/internal/suggest"
	"github.com/dgallion1/sheetsplit/internal/writer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for asynchronous document splitting",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		cfg := config.Load()
		if err := cfg.ValidateServe(); err != nil {
			log.Error("invalid configuration", "error", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// The suggestion path is optional; without a key the API rejects
		// suggest requests but splitting still works.
		var sugg *suggest.Client
		if cfg.OpenAIAPIKey != "" {
			sugg = suggest.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		}

		proc := pipeline.NewProcessor(cfg, writer.Disk{}, log)
		orch := pipeline.NewOrchestrator(cfg, proc, sugg, log)
		orch.Start(ctx)

		srv := api.NewServer(orch, sugg, log, cfg)

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Info("shutting down...")

			orch.Stop()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting sheetsplit", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
