//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"highway-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, kind: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, kind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, kind: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, kind: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, kind: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection refused"), kind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("failed", tc.err)
			assert.True(t, infra.IsKind(wrapped, tc.kind), "got %v", wrapped)
			assert.ErrorIs(t, wrapped, tc.err)
		})
	}
}

func TestWrapRepoErr_ExplicitKindWins(t *testing.T) {
	wrapped := infra.WrapRepoErr("slot missing", nil, infra.KindNotFound)
	assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: slot missing", wrapped.Error())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, infra.IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, infra.IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, infra.IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, infra.IsRetryable(errors.New("boom")))
}
