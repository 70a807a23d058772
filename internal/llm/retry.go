package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass says how a failed scoring call may be reissued.
type retryClass int

const (
	retryAlways retryClass = iota
	retryOnce
	retryNever
)

// retrier is a decorator that reissues failed provider calls with
// exponential backoff and jitter. A transient provider error would
// otherwise zero out a whole answer downstream, so it gets MaxAttempts
// tries before the caller sees a failure.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := r.sleep(ctx, attempt-1, lastErr); err != nil {
				return nil, err
			}
		}

		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyRetry(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			// A malformed response gets exactly one more try; the model
			// may simply produce the same garbage again.
			if invalidSeen {
				return nil, err
			}
			invalidSeen = true
		}
	}

	return nil, lastErr
}

func (r *retrier) ModelID() string {
	return r.inner.ModelID()
}

func classifyRetry(err error) retryClass {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}

	// Max tokens is a configuration issue, not transient.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryNever
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return retryOnce
	}

	// Rate limits, provider outages and anything else (network, etc.)
	// are treated as transient.
	return retryAlways
}

// sleep blocks for the backoff of the given attempt, or until ctx is
// done.
func (r *retrier) sleep(ctx context.Context, attempt int, cause error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.waitFor(attempt, cause)):
		return nil
	}
}

func (r *retrier) waitFor(attempt int, cause error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(cause, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))

	// Spread retries out with up to 20% jitter either way.
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
