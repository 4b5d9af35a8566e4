package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"slidecast/internal/media"
	"slidecast/internal/planner"
	"slidecast/internal/server"
	"slidecast/internal/transcribe"
	"slidecast/pkg/executor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, log, client, err := setup(ctx)
	if err != nil {
		return err
	}

	if err := ensureDirs(cfg.Paths.Uploads, cfg.Paths.Processed, cfg.Paths.Static); err != nil {
		return err
	}
	if err := requireTools("ffmpeg", "ffprobe"); err != nil {
		return err
	}

	exec := executor.New()
	merger := media.NewMerger(exec, log, cfg.Merge.Bitrate, cfg.Merge.MinOutputBytes)
	tr := transcribe.New(client, cfg.Gemini.TranscribeModel, log)
	pl := planner.New(client, cfg.Gemini.PlannerModel, log)
	srv := server.New(cfg, log, merger, tr, pl)

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Routes(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "========================================")
		log.Info(ctx, "Slidecast API listening on %s", cfg.Server.Addr)
		log.Info(ctx, "Transcribe model: %s", cfg.Gemini.TranscribeModel)
		log.Info(ctx, "Planner model: %s", cfg.Gemini.PlannerModel)
		log.Info(ctx, "Press Ctrl+C to stop")
		log.Info(ctx, "========================================")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info(ctx, "Slidecast API stopped")
	return nil
}

func ensureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
