package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"slidecast/internal/batch"
	"slidecast/internal/transcribe"
	"slidecast/internal/watcher"
	"slidecast/pkg/executor"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Transcribe audio files dropped into the inbox directory",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, log, client, err := setup(ctx)
	if err != nil {
		return err
	}

	if err := ensureDirs(cfg.Paths.Inbox, cfg.Paths.Output, cfg.Paths.Archived); err != nil {
		return err
	}
	if err := requireTools("ffprobe"); err != nil {
		return err
	}

	exec := executor.New()
	tr := transcribe.New(client, cfg.Gemini.TranscribeModel, log)
	proc := batch.New(cfg, exec, tr, log)

	w, err := watcher.New(cfg.Paths.Inbox, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Watch mode is ready!")
	log.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	cancel()
	log.Info(ctx, "Watch mode stopped")
	return nil
}
