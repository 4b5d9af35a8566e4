package batch

import (
	"slidecast/internal/config"
	"slidecast/internal/logger"
	"slidecast/internal/transcribe"
	"slidecast/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcribe.Transcriber
	logger      logger.Logger
}

// New creates a Processor writing transcripts to cfg.Paths.Output and moving
// finished audio to cfg.Paths.Archived.
func New(cfg *config.Config, exec executor.Executor, tr transcribe.Transcriber, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: tr,
		logger:      log,
	}
}
