// Package retry wraps remote calls with exponential backoff on rate-limit
// errors. Only rate limiting is retried; every other failure class is
// propagated to the caller on first occurrence.
package retry

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"slidecast/internal/logger"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 5 * time.Second
)

// ErrExhausted is returned after the retry budget is spent on rate-limited
// attempts. It is distinct from the underlying 429 so callers can tell
// persistent throttling apart from a broken call.
var ErrExhausted = errors.New("max retries exceeded: remote service kept rate limiting")

// Config carries the per-call retry budget. The zero value gets defaults.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration

	// Sleep is the backoff wait. Overridable in tests; nil means a
	// context-aware timer that never blocks other goroutines.
	Sleep func(ctx context.Context, d time.Duration) error
}

func (c Config) withDefaults() Config {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.Sleep == nil {
		c.Sleep = sleepCtx
	}
	return c
}

// Do invokes op, retrying rate-limited failures with delays of
// BaseDelay * 2^attempt. Each call owns its own budget; there is no shared
// state between invocations.
func Do[T any](ctx context.Context, log logger.Logger, cfg Config, op func(context.Context) (T, error)) (T, error) {
	var zero T
	cfg = cfg.withDefaults()

	for attempt := 0; attempt < cfg.MaxRetries; attempt++ {
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		if !RateLimited(err) {
			return zero, err
		}
		if attempt == cfg.MaxRetries-1 {
			break
		}

		delay := cfg.BaseDelay * (1 << attempt)
		log.Warn(ctx, "rate limit hit (429), waiting %s before attempt %d/%d", delay, attempt+2, cfg.MaxRetries)
		if serr := cfg.Sleep(ctx, delay); serr != nil {
			return zero, serr
		}
	}

	return zero, ErrExhausted
}

// RateLimited reports whether err is the remote provider's throttling signal.
// The genai SDK surfaces a typed APIError; the string checks cover errors that
// arrive already flattened.
func RateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(strings.ToLower(msg), "quota")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
