//go:build unit

package uow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"library-backend/internal/infra/uow"
	"library-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakePool struct {
	txs      []*fakeTx
	beginErr error
}

func (p *fakePool) BeginTx(_ context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	tx := &fakeTx{}
	p.txs = append(p.txs, tx)
	return tx, nil
}

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestWithin(t *testing.T) {
	ctx := context.Background()
	serialization := &pgconn.PgError{Code: "40001"}

	t.Run("commits on success", func(t *testing.T) {
		pool := &fakePool{}
		u := uow.NewUoW(pool, logger, time.Millisecond)

		err := u.Within(ctx, func(_ context.Context, tx shared.Tx) error {
			assert.NotNil(t, tx.Transactions())
			assert.Same(t, tx.Books(), tx.Books())
			return nil
		})
		require.NoError(t, err)
		require.Len(t, pool.txs, 1)
		assert.True(t, pool.txs[0].committed)
	})

	t.Run("rolls back and returns domain errors without retry", func(t *testing.T) {
		pool := &fakePool{}
		u := uow.NewUoW(pool, logger, time.Millisecond)
		boom := errors.New("rule violated")

		err := u.Within(ctx, func(context.Context, shared.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
		require.Len(t, pool.txs, 1)
		assert.True(t, pool.txs[0].rolledBack)
	})

	t.Run("retries serialization failures", func(t *testing.T) {
		pool := &fakePool{}
		u := uow.NewUoW(pool, logger, time.Millisecond)
		calls := 0

		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			if calls < 3 {
				return serialization
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.True(t, pool.txs[2].committed)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		pool := &fakePool{}
		u := uow.NewUoW(pool, logger, time.Millisecond)
		calls := 0

		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			return &pgconn.PgError{Code: "40P01"}
		})
		require.Error(t, err)
		assert.Equal(t, 4, calls)

		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
	})

	t.Run("begin failure", func(t *testing.T) {
		down := errors.New("pool closed")
		u := uow.NewUoW(&fakePool{beginErr: down}, logger, time.Millisecond)
		err := u.Within(ctx, func(context.Context, shared.Tx) error { return nil })
		assert.ErrorIs(t, err, down)
	})

	t.Run("context cancellation stops retrying", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		u := uow.NewUoW(&fakePool{}, logger, time.Hour)

		err := u.Within(cctx, func(context.Context, shared.Tx) error {
			cancel()
			return serialization
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
