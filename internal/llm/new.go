package llm

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"slidecast/internal/logger"
	"slidecast/internal/retry"
)

type implClient struct {
	client   *genai.Client
	limiter  *rate.Limiter
	retryCfg retry.Config
	logger   logger.Logger

	// Bound to the genai client in New. Overridable in tests.
	wait            func(ctx context.Context) error
	upload          func(ctx context.Context, path string, cfg *genai.UploadFileConfig) (*genai.File, error)
	generateContent func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// New creates a Client bound to one API key. rateLimitPerMin throttles all
// outbound calls; retryCfg is the per-call backoff budget.
func New(ctx context.Context, apiKey string, rateLimitPerMin int, retryCfg retry.Config, log logger.Logger) (Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	if rateLimitPerMin <= 0 {
		rateLimitPerMin = 10
	}

	c := &implClient{
		client:   client,
		limiter:  rate.NewLimiter(rate.Limit(float64(rateLimitPerMin)/60.0), 1),
		retryCfg: retryCfg,
		logger:   log,
	}
	c.wait = c.limiter.Wait
	c.upload = client.Files.UploadFromPath
	c.generateContent = client.Models.GenerateContent
	return c, nil
}
