package planner

import (
	"context"
	"encoding/json"

	"slidecast/internal/llm"
	"slidecast/internal/plan"
)

// Result is the planner output: the decoded plan, the raw model JSON relayed
// to clients, advisory validation warnings, and best-effort token usage.
type Result struct {
	Plan     *plan.Plan
	Raw      json.RawMessage
	Warnings []string
	Usage    *llm.TokenUsage
}

// Planner asks the remote model for a structured video timeline built from a
// transcript and the slide document text.
type Planner interface {
	Plan(ctx context.Context, transcriptJSON []byte, slideText string) (*Result, error)
}
