package planner

import (
	"context"
	_ "embed"
	"fmt"

	"google.golang.org/genai"

	"slidecast/internal/plan"
	"slidecast/internal/transcript"
)

// timelinePrompt is the full natural-language ruleset the remote model plans
// against. All timing and template decisions happen on the model side; this
// repository only relays and checks the result.
//
//go:embed prompt.txt
var timelinePrompt string

func (p *implPlanner) Plan(ctx context.Context, transcriptJSON []byte, slideText string) (*Result, error) {
	indented, err := transcript.Indent(transcriptJSON)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(indented, slideText)

	p.logger.Info(ctx, "requesting timeline plan from %s (prompt: %d chars)", p.model, len(prompt))
	raw, usage, err := p.client.GenerateJSON(ctx, p.model, []*genai.Part{
		genai.NewPartFromText(prompt),
	})
	if err != nil {
		return nil, fmt.Errorf("timeline planning: %w", err)
	}

	pl, err := plan.Parse(raw)
	if err != nil {
		return nil, err
	}

	warnings := plan.Validate(pl)
	for _, w := range warnings {
		p.logger.Warn(ctx, "plan check: %s", w)
	}
	p.logger.Info(ctx, "plan received: %d clips, %d warnings", len(pl.Clips), len(warnings))

	return &Result{Plan: pl, Raw: raw, Warnings: warnings, Usage: usage}, nil
}

func buildPrompt(transcriptJSON, slideText string) string {
	return fmt.Sprintf("%s\n\n## AUDIO TRANSCRIPTION JSON\n\n```json\n%s\n```\n\n## SLIDE SCRIPT\n\n%s",
		timelinePrompt, transcriptJSON, slideText)
}
