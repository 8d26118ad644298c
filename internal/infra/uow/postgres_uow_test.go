//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&pgconn.PgError{Code: pgErrCodeSerializationFailure}))
	assert.True(t, isRetryableError(fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgErrCodeDeadlockDetected})))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableError(errors.New("connection refused")))
	assert.False(t, isRetryableError(nil))
}

func TestShouldRetry(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	assert.True(t, shouldRetry(serialization, 0, 3))
	assert.False(t, shouldRetry(serialization, 3, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
	assert.Zero(t, cryptoRandInt63n(0))
}
