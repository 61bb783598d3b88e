package generate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryLinearSucceedsFirstAttempt(t *testing.T) {
	attempts := 0
	err := RetryLinear(context.Background(), func(ctx context.Context) (Outcome, error) {
		attempts++
		return OutcomeSuccess, nil
	}, 3, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryLinearEventualSuccess(t *testing.T) {
	attempts := 0
	err := RetryLinear(context.Background(), func(ctx context.Context) (Outcome, error) {
		attempts++
		if attempts < 3 {
			return OutcomeRetry, errors.New("transient")
		}
		return OutcomeSuccess, nil
	}, 3, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryLinearExhaustsBudget(t *testing.T) {
	transient := errors.New("connection refused")
	attempts := 0
	err := RetryLinear(context.Background(), func(ctx context.Context) (Outcome, error) {
		attempts++
		return OutcomeRetry, transient
	}, 3, time.Millisecond)

	require.ErrorIs(t, err, transient)
	assert.Equal(t, 3, attempts)
}

func TestRetryLinearFatalStopsImmediately(t *testing.T) {
	fatal := errors.New("bad request")
	attempts := 0
	err := RetryLinear(context.Background(), func(ctx context.Context) (Outcome, error) {
		attempts++
		return OutcomeFatal, fatal
	}, 5, time.Millisecond)

	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, attempts, "fatal outcome must not be retried")
}

func TestRetryLinearContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- RetryLinear(ctx, func(ctx context.Context) (Outcome, error) {
			attempts++
			return OutcomeRetry, errors.New("transient")
		}, 3, time.Hour)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts, "cancellation should abort the backoff sleep")
	case <-time.After(time.Second):
		t.Fatal("retry loop did not observe cancellation")
	}
}

func TestRetryLinearCancelledBeforeFirstAttempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := RetryLinear(ctx, func(ctx context.Context) (Outcome, error) {
		attempts++
		return OutcomeSuccess, nil
	}, 3, time.Millisecond)

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, attempts)
}

func TestRetryLinearRejectsNonPositiveBudget(t *testing.T) {
	err := RetryLinear(context.Background(), func(ctx context.Context) (Outcome, error) {
		return OutcomeSuccess, nil
	}, 0, time.Millisecond)

	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
}

func TestClassifyCompletionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"cancellation is fatal", context.Canceled, OutcomeFatal},
		{"deadline is fatal", context.DeadlineExceeded, OutcomeFatal},
		{"wrapped cancellation is fatal", errors.Join(errors.New("request aborted"), context.Canceled), OutcomeFatal},
		{"plain errors are transient", errors.New("connection refused"), OutcomeRetry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCompletionError(tt.err))
		})
	}
}
