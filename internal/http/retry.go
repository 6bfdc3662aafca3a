package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy controls exponential backoff between request attempts.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries uint64

	// InitialInterval is the wait before the first retry.
	InitialInterval time.Duration

	// MaxInterval caps the wait between retries.
	MaxInterval time.Duration
}

// DefaultRetryPolicy returns 3 retries starting at 500ms, capped at 5s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// Do runs op until it succeeds, shouldRetry rejects its error, the retry
// budget is spent or ctx is done.
//
// When ctx ends the run, the returned error wraps ctx.Err() and mentions
// the last failure of op.
func (p RetryPolicy) Do(ctx context.Context, op func() error, shouldRetry func(error) bool) error {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	b.MaxElapsedTime = 0

	bo := backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)

	var lastErr error
	err := backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err
		if shouldRetry != nil && shouldRetry(err) {
			return err
		}
		return backoff.Permanent(err)
	}, bo)
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) && lastErr != nil && !errors.Is(lastErr, ctxErr) {
		return fmt.Errorf("%w (last error: %v)", ctxErr, lastErr)
	}
	return err
}
