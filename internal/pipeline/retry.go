package pipeline

import (
	"context"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
)

// RetryPolicy bounds the attempts made against a transient failure.
// Backoff is exponential: BaseDelay, BaseDelay*Factor, and so on.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Factor      int
}

// Retry policies per stage. Fetch failures are usually short network
// blips; oracle rate limits need a much longer cool-down.
var (
	FetchRetryPolicy   = RetryPolicy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond, Factor: 2}
	ScoringRetryPolicy = RetryPolicy{MaxAttempts: 2, BaseDelay: 2 * time.Second, Factor: 4}
)

// withRetry runs fn up to policy.MaxAttempts times, sleeping with
// exponential backoff between attempts. Only errors whose kind is
// retryable trigger another attempt; everything else returns
// immediately.
func withRetry(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) error) error {
	delay := policy.BaseDelay

	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if attempt >= policy.MaxAttempts || !types.KindOf(err).Retryable() {
			return err
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return err
		}
		delay *= time.Duration(policy.Factor)
	}
}
