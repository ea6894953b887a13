package clock

import (
	"context"
	"time"
)

// RetryPolicy bounds a retry loop.
type RetryPolicy struct {
	// Attempts is the total number of calls, including the first one.
	Attempts int
	// Delay is the pause between attempts.
	Delay time.Duration
	// Retryable decides whether an error is worth another attempt. Nil retries every error.
	Retryable func(error) bool
	// Sleep defaults to SleepWithContext.
	Sleep func(context.Context, time.Duration) error
	// OnRetry is called before each pause with the failed attempt number.
	OnRetry func(attempt int, err error)
}

// Retry calls fn until it succeeds, the policy gives up, or ctx is done.
// The last error from fn is returned when attempts are exhausted.
func Retry(ctx context.Context, policy RetryPolicy, fn func(context.Context) error) error {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := policy.Sleep
	if sleep == nil {
		sleep = SleepWithContext
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err = fn(ctx); err == nil {
			return nil
		}
		if policy.Retryable != nil && !policy.Retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		if policy.OnRetry != nil {
			policy.OnRetry(attempt, err)
		}
		if sleepErr := sleep(ctx, policy.Delay); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}
