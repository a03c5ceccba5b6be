package usecase

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy controls how external calls are retried. The zero value makes
// exactly one attempt.
type RetryPolicy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
}

func (p RetryPolicy) backoff() retry.Backoff {
	base := p.BaseDelay
	if base <= 0 {
		base = 500 * time.Millisecond
	}
	return retry.WithMaxRetries(p.MaxRetries, retry.NewExponential(base))
}

// do runs fn, retrying any error it returns until the policy is exhausted
func (p RetryPolicy) do(ctx context.Context, fn func(ctx context.Context) error) error {
	if p.MaxRetries == 0 {
		return fn(ctx)
	}
	return retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
