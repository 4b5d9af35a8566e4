// Package cli wires the commands: serve runs the HTTP API, plan builds a
// timeline from files on disk, watch transcribes audio dropped into an inbox.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"slidecast/internal/config"
	"slidecast/internal/llm"
	"slidecast/internal/logger"
	"slidecast/internal/retry"
	"slidecast/pkg/executor"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "slidecast",
	Short: "Merge lecture audio, transcribe it and plan a video timeline",
	Long: `Slidecast merges uploaded audio clips in a given order, transcribes the
merged file with word-level timestamps via the Gemini API and combines the
transcript with a slide document into a structured video timeline plan.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")
}

// setup loads config and builds the shared collaborators every command needs.
func setup(ctx context.Context) (*config.Config, logger.Logger, llm.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	client, err := llm.New(ctx, cfg.APIKey(), cfg.Gemini.RateLimitPerMin, retry.Config{
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  cfg.BaseDelay(),
	}, log)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, client, nil
}

// requireTools fails fast when an external binary a command depends on is not
// installed.
func requireTools(names ...string) error {
	for _, name := range names {
		if !executor.Available(name) {
			return fmt.Errorf("%s must be on the PATH", name)
		}
	}
	return nil
}
