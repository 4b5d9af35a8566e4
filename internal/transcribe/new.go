package transcribe

import (
	"slidecast/internal/llm"
	"slidecast/internal/logger"
)

type implTranscriber struct {
	client llm.Client
	model  string
	logger logger.Logger
}

// New creates a Transcriber using the given model.
func New(client llm.Client, model string, log logger.Logger) Transcriber {
	return &implTranscriber{
		client: client,
		model:  model,
		logger: log,
	}
}
