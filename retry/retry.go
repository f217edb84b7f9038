// Package retry provides a caller-side backoff policy around the unicall
// facade. The dispatch layer itself never retries; this package retries
// only on overload signals, which is the one condition the taxonomy marks
// as worth backing off on.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pchaumet/unicall/caller"
	"github.com/pchaumet/unicall/llm"
)

const (
	// DefaultMaxRetries bounds the number of retry attempts.
	DefaultMaxRetries = 5
	// DefaultInitialDelay seeds the backoff when the service declares no
	// cooldown.
	DefaultInitialDelay = 1 * time.Second

	multiplier          = 2.0
	randomizationFactor = 0.2
)

// CallWithBackoff invokes c.Call and retries with exponential backoff while
// the failure is an overload signal. Any other failure is permanent and
// returned immediately with its identity intact. The initial delay is the
// service's declared cooldown.
func CallWithBackoff(ctx context.Context, c *caller.Caller, prompt string, maxRetries uint64) (string, error) {
	initial := c.Service().Cooldown()
	if initial <= 0 {
		initial = DefaultInitialDelay
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = initial
	eb.Multiplier = multiplier
	eb.RandomizationFactor = randomizationFactor
	eb.Reset()

	var result string
	operation := func() error {
		text, err := c.Call(ctx, prompt)
		if err != nil {
			if llm.IsOverloadedError(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = text
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(eb, maxRetries), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return "", err
	}
	return result, nil
}
