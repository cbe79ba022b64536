package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ store.TxBeginner = (*sql.DB)(nil)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when the work succeeds", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM tasks").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1 AND user_id = $2", 1, 2)
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns a guard rejection unchanged", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return store.ErrTaskNotFound
		})
		assert.Same(t, store.ErrTaskNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a failed rollback alongside the cause", func(t *testing.T) {
		db, mock := newMock(t)
		rbErr := errors.New("connection reset")
		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(rbErr)

		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return store.ErrTaskNotFound
		})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.ErrorIs(t, err, rbErr)
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		called := false
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, store.ErrTransactionFailed)
		assert.False(t, called)
	})

	t.Run("commit failure", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return nil
		})
		assert.ErrorIs(t, err, store.ErrTransactionFailed)
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
