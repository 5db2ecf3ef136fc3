package llm

import (
	"context"
	"errors"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
)

// RateLimitRetryProvider retries only rate-limit failures, with exponential
// backoff. Every other error is returned on the first occurrence.
type RateLimitRetryProvider struct {
	inner  Provider
	config RetryConfig
}

func WithRateLimitRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RateLimitRetryProvider{inner: p, config: cfg}
}

func (r *RateLimitRetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			return nil, err
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt)
		log.WithFields(log.Fields{
			"model":   r.inner.ModelID(),
			"attempt": attempt + 1,
			"wait":    wait.String(),
		}).Warn("Rate limited by model backend, backing off")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RateLimitRetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff returns InitialWait * Multiplier^attempt capped at MaxWait.
func (r *RateLimitRetryProvider) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxWait > 0 && wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}
	return time.Duration(wait)
}
