package transcribe

import (
	"context"
	"encoding/json"

	"slidecast/internal/llm"
	"slidecast/internal/transcript"
)

// Result carries both the decoded transcript and the raw model JSON, which
// the HTTP layer relays unmodified.
type Result struct {
	Transcript *transcript.Transcript
	Raw        json.RawMessage
	Usage      *llm.TokenUsage
}

// Transcriber produces a word-timestamped transcript for an audio file.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}
