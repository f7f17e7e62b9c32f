//go:build unit

package uow

import (
	"testing"
	"time"

	"hotel-core/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "commit"), want: true},
		{name: "marked commit failure", err: errs.Mark(&pgconn.PgError{Code: pgErrCodeSerializationFailure}, errTransactionCommit), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "non-pg error", err: assert.AnError, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryPolicy(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	t.Run("stops at max retries", func(t *testing.T) {
		assert.True(t, p.shouldRetry(retryable, 0))
		assert.True(t, p.shouldRetry(retryable, 2))
		assert.False(t, p.shouldRetry(retryable, 3))
	})

	t.Run("never retries business errors", func(t *testing.T) {
		assert.False(t, p.shouldRetry(assert.AnError, 0))
	})

	t.Run("zero retries disables replay", func(t *testing.T) {
		assert.False(t, retryPolicy{}.shouldRetry(retryable, 0))
	})

	t.Run("backoff doubles with bounded jitter", func(t *testing.T) {
		for attempt := 0; attempt < 3; attempt++ {
			floor := p.base << attempt
			got := p.backoff(attempt)
			assert.GreaterOrEqual(t, got, floor)
			assert.Less(t, got, floor+floor/5)
		}
	})
}
