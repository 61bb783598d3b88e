// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package generate

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Outcome classifies the result of a single attempt.
type Outcome int

const (
	// OutcomeSuccess means the attempt succeeded; the loop stops.
	OutcomeSuccess Outcome = iota
	// OutcomeRetry means the attempt failed transiently; the loop may try again.
	OutcomeRetry
	// OutcomeFatal means retrying cannot help; the loop stops with the error.
	OutcomeFatal
)

// AttemptFunc performs one attempt of an operation and classifies the result.
// The error accompanies OutcomeRetry and OutcomeFatal.
type AttemptFunc func(ctx context.Context) (Outcome, error)

// RetryLinear runs attempt up to maxAttempts times, sleeping attempt-number ×
// baseDelay between tries (3s, 6s, 9s for a 3s base). It returns nil on the
// first OutcomeSuccess, the attempt's error on OutcomeFatal, and the last
// error once the budget is exhausted. Context cancellation aborts the sleep
// and returns ctx.Err().
func RetryLinear(ctx context.Context, attempt AttemptFunc, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	for n := 1; n <= maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, err := attempt(ctx)
		switch outcome {
		case OutcomeSuccess:
			return nil
		case OutcomeFatal:
			return err
		}

		lastErr = err
		if n == maxAttempts {
			break
		}

		delay := time.Duration(n) * baseDelay
		slog.Debug("attempt failed, backing off",
			"attempt", n,
			"max_attempts", maxAttempts,
			"delay", delay,
			"error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}

// ClassifyCompletionError maps a model-client error to a retry outcome.
// Context cancellation and deadline errors are fatal; everything else
// (connection refused, HTTP 5xx, timeouts surfaced as plain errors) is
// treated as transient.
func ClassifyCompletionError(err error) Outcome {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return OutcomeFatal
	}
	return OutcomeRetry
}
