//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"rv-portal/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "explicit kind", err: errors.New("no rows"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
		{name: "plain error", err: errors.New("conn reset"), want: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "fk violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindInvalidData},
		{name: "nil cause", err: nil, want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(got, tt.want))
			assert.Contains(t, got.Error(), "op failed")
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err)
			}
		})
	}
}

func TestIsKind_WrappedTwice(t *testing.T) {
	err := fmt.Errorf("outer: %w", infra.WrapRepoErr("inner", nil, infra.KindNotFound))
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
}
