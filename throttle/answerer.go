// Package throttle rate-limits and retries calls to an answer backend.
package throttle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/lawchat"
	"golang.org/x/time/rate"
)

// DefaultRetryDelays returns the backoff delays between attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

var _ lawchat.Answerer = (*Answerer)(nil)

// Answerer wraps a lawchat.Answerer with a token bucket and retry backoff.
// Invalid requests are never retried.
type Answerer struct {
	next    lawchat.Answerer
	limiter *rate.Limiter

	// Delays holds the wait before each retry. Its length is the retry count.
	Delays []time.Duration

	Logger *slog.Logger
}

// NewAnswerer creates an Answerer allowing rps requests per second with a
// burst of 1. A non-positive rps disables rate limiting.
func NewAnswerer(next lawchat.Answerer, rps float64) *Answerer {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Answerer{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
		Delays:  DefaultRetryDelays(),
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// Answer forwards req to the wrapped Answerer, waiting for the limiter
// before every attempt.
func (a *Answerer) Answer(ctx context.Context, req lawchat.AnswerRequest) (string, error) {
	maxAttempts := len(a.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := a.limiter.Wait(ctx); err != nil {
			if lastErr != nil {
				return "", lastErr
			}
			return "", err
		}

		text, err := a.next.Answer(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		a.Logger.Warn("retrying answer", "attempt", attempt+2, "error", err)

		select {
		case <-ctx.Done():
			return "", lastErr
		case <-time.After(a.Delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch lawchat.ErrorCode(err) {
	case lawchat.EINVALID, lawchat.EUNSUPPORTED, lawchat.ENOTFOUND:
		return false
	}
	return true
}
