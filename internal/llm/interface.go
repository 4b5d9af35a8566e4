package llm

import (
	"context"

	"google.golang.org/genai"
)

// TokenUsage is best-effort accounting pulled from response metadata. A nil
// usage never fails a request.
type TokenUsage struct {
	Input  int    `json:"input"`
	Output int    `json:"output"`
	Model  string `json:"model"`
}

// Client issues JSON-mode calls to the Gemini API. All calls share one rate
// limiter and go through the retry wrapper.
type Client interface {
	// GenerateJSON sends parts to the model and returns the response body as
	// valid JSON bytes, stripping a markdown fence if the model added one.
	GenerateJSON(ctx context.Context, model string, parts []*genai.Part) ([]byte, *TokenUsage, error)

	// UploadFile pushes a local file to the Gemini Files API and returns the
	// handle to reference it from a prompt.
	UploadFile(ctx context.Context, path, mimeType string) (*genai.File, error)
}
