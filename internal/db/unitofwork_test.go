package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jcollado/lodestar/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*db.SQLiteUnitOfWork, func(id string) int) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// A scratch table outside the migration set.
	_, err = database.Exec(`CREATE TABLE IF NOT EXISTS uow_test (id TEXT PRIMARY KEY, val TEXT)`)
	require.NoError(t, err)

	count := func(id string) int {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM uow_test WHERE id = ?`, id).Scan(&n))
		return n
	}
	return db.NewSQLiteUnitOfWork(database), count
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	uow, count := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES ('a', 'x')`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count("a"))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	uow, count := openTestUoW(t)

	boom := fmt.Errorf("boom")
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES ('b', 'x')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, count("b"), "insert must be rolled back")
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	uow, count := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES ('c', 'x')`); err != nil {
				return err
			}
			panic("mid-transaction panic")
		})
	})
	assert.Equal(t, 0, count("c"))
}
