package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"slidecast/internal/retry"
)

func (c *implClient) GenerateJSON(ctx context.Context, model string, parts []*genai.Part) ([]byte, *TokenUsage, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := c.generate(ctx, model, contents, config)
	if err != nil {
		return nil, nil, err
	}

	text := result.Text()
	if text == "" {
		return nil, nil, fmt.Errorf("empty response from model %s", model)
	}

	raw, err := NormalizeJSON(text)
	if err != nil {
		return nil, nil, err
	}

	return raw, usageFrom(result, model), nil
}

func (c *implClient) UploadFile(ctx context.Context, path, mimeType string) (*genai.File, error) {
	c.logger.Debug(ctx, "uploading file to Gemini: %s (%s)", path, mimeType)
	file, err := retry.Do(ctx, c.logger, c.retryCfg, func(ctx context.Context) (*genai.File, error) {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		return c.upload(ctx, path, &genai.UploadFileConfig{
			MIMEType: mimeType,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	return file, nil
}

// generate runs one model call through the retry wrapper. The limiter wait
// sits inside the retried op so every attempt takes a fresh token.
func (c *implClient) generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return retry.Do(ctx, c.logger, c.retryCfg, func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		return c.generateContent(ctx, model, contents, config)
	})
}

// usageFrom extracts token accounting when the response carries it. Absence is
// tolerated, never fatal.
func usageFrom(result *genai.GenerateContentResponse, model string) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}
	um := result.UsageMetadata
	return &TokenUsage{
		Input:  int(um.PromptTokenCount),
		Output: int(um.CandidatesTokenCount),
		Model:  model,
	}
}

// NormalizeJSON returns text as JSON bytes, stripping a markdown code fence if
// the first parse fails. A failure after fence stripping is fatal.
func NormalizeJSON(text string) ([]byte, error) {
	raw := []byte(text)
	if json.Valid(raw) {
		return raw, nil
	}

	stripped := []byte(StripFence(text))
	if json.Valid(stripped) {
		return stripped, nil
	}

	return nil, fmt.Errorf("model response is not valid JSON")
}
