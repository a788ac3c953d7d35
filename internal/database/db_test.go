package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct{}

func (fakeRows) Close()                                       {}
func (fakeRows) Err() error                                   { return nil }
func (fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (fakeRows) Next() bool                                   { return false }
func (fakeRows) Scan(dest ...any) error                       { return nil }
func (fakeRows) Values() ([]any, error)                       { return nil, nil }
func (fakeRows) RawValues() [][]byte                          { return nil }
func (fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "", nil) })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.Begin(context.Background()) })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	execCalled := false
	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		execCalled = true
		return pgconn.CommandTag{}, nil
	}
	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return fakeRows{}, nil }
	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return nil }
	db.BeginFn = func(context.Context) (pgx.Tx, error) { return &FakeTx{}, nil }
	db.PingFn = func(context.Context) error { return errors.New("ping") }
	closed := false
	db.CloseFn = func() { closed = true }

	_, err := db.Exec(context.Background(), "")
	require.NoError(t, err)
	require.True(t, execCalled)
	rows, err := db.Query(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Nil(t, db.QueryRow(context.Background(), ""))
	tx, err := db.Begin(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.EqualError(t, db.Ping(context.Background()), "ping")
	db.Close()
	require.True(t, closed)
}

func TestFakeTx(t *testing.T) {
	tx := &FakeTx{}
	require.Panics(t, func() { tx.Exec(context.Background(), "") })
	require.Panics(t, func() { tx.Query(context.Background(), "") })
	require.Panics(t, func() { tx.QueryRow(context.Background(), "") })
	require.Panics(t, func() { tx.Commit(context.Background()) })
	require.Panics(t, func() { tx.Begin(context.Background()) })
	require.Panics(t, func() { tx.SendBatch(context.Background(), nil) })
	require.Panics(t, func() { tx.LargeObjects() })
	require.Panics(t, func() { tx.Prepare(context.Background(), "", "") })
	require.Panics(t, func() { tx.CopyFrom(context.Background(), nil, nil, nil) })
	require.NoError(t, tx.Rollback(context.Background()))
	require.Nil(t, tx.Conn())

	tx.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, nil
	}
	tx.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return nil }
	tx.CommitFn = func(context.Context) error { return nil }
	rolled := false
	tx.RollbackFn = func(context.Context) error { rolled = true; return nil }

	_, err := tx.Exec(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, tx.QueryRow(context.Background(), ""))
	require.NoError(t, tx.Commit(context.Background()))
	require.NoError(t, tx.Rollback(context.Background()))
	require.True(t, rolled)
}
