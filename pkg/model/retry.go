package model

import (
	"context"
	"errors"
	"time"

	"github.com/Seanwalker-G/Claude-enterprise-evaluator/pkg/core"
)

const (
	defaultTimeout = 30 * time.Second
	defaultRetries = 2
	defaultBackoff = 500 * time.Millisecond
)

// RetryPolicy is the shared per-call retry/timeout behavior for all live
// providers. Backoff grows by a fixed multiple per attempt and the retry
// count is always finite.
type RetryPolicy struct {
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.Timeout <= 0 {
		p.Timeout = defaultTimeout
	}
	if p.MaxRetries == 0 {
		p.MaxRetries = defaultRetries
	}
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.Backoff <= 0 {
		p.Backoff = defaultBackoff
	}
	return p
}

// generateWithRetries runs call with the policy's timeout and retries.
// Context cancellation propagates unwrapped; terminal failures come back as
// a TransportError for the named model.
func generateWithRetries(ctx context.Context, modelName string, policy RetryPolicy, call func(ctx context.Context) (core.Response, error)) (core.Response, error) {
	policy = policy.normalized()

	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, policy.Timeout)
		response, err := call(attemptCtx)
		cancel()
		if err == nil {
			return response, nil
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			if ctx.Err() != nil {
				return core.Response{}, ctx.Err()
			}
		}
		lastErr = err
		if attempt < policy.MaxRetries {
			select {
			case <-ctx.Done():
				return core.Response{}, ctx.Err()
			case <-time.After(policy.Backoff * time.Duration(attempt+1)):
			}
		}
	}

	return core.Response{}, &core.TransportError{Model: modelName, Err: lastErr}
}
