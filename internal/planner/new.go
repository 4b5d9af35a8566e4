package planner

import (
	"slidecast/internal/llm"
	"slidecast/internal/logger"
)

type implPlanner struct {
	client llm.Client
	model  string
	logger logger.Logger
}

// New creates a Planner using the given model.
func New(client llm.Client, model string, log logger.Logger) Planner {
	return &implPlanner{
		client: client,
		model:  model,
		logger: log,
	}
}
