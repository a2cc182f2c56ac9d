package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records every Exec call; statements matching failOn return a
// database error, which in a real session would abort the transaction
// unless confined by a savepoint.
type fakeTx struct {
	pgx.Tx
	execs  []string
	failOn string
}

func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return pgconn.CommandTag{}, errors.New("unique violation")
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeTx) saw(fragment string) bool {
	for _, sql := range f.execs {
		if strings.Contains(sql, fragment) {
			return true
		}
	}
	return false
}

func ctxWithTx(ft *fakeTx) context.Context {
	return context.WithValue(context.Background(), txKey{}, &Tx{Tx: ft, nested: false})
}

func savepointOpts() TxOptions {
	opts := DefaultTxOptions()
	opts.UseSavepoint = true
	return opts
}

func TestNestedTransaction_NoSavepointReusesOuter(t *testing.T) {
	m := &TxManager{}
	ft := &fakeTx{}

	err := m.RunInTransaction(ctxWithTx(ft), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Empty(t, ft.execs)
}

func TestNestedTransaction_SavepointReleasedOnSuccess(t *testing.T) {
	m := &TxManager{}
	ft := &fakeTx{}

	err := m.RunInTransactionWithOptions(ctxWithTx(ft), savepointOpts(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ft.saw("SAVEPOINT sp_"))
	assert.True(t, ft.saw("RELEASE SAVEPOINT"))
	assert.False(t, ft.saw("ROLLBACK TO SAVEPOINT"))
}

func TestNestedTransaction_SavepointRolledBackOnError(t *testing.T) {
	m := &TxManager{}
	ft := &fakeTx{}
	rowErr := errors.New("bad row")

	err := m.RunInTransactionWithOptions(ctxWithTx(ft), savepointOpts(), func(ctx context.Context) error {
		return rowErr
	})

	require.ErrorIs(t, err, rowErr)
	assert.True(t, ft.saw("ROLLBACK TO SAVEPOINT"))
	assert.False(t, ft.saw("RELEASE SAVEPOINT"))
}

// A batch that isolates every row behind a savepoint keeps going after
// a mid-batch database failure: the bad row is rolled back and counted,
// the remaining rows and the closing write still run on the outer
// transaction.
func TestNestedTransaction_SavepointIsolatesBatchRows(t *testing.T) {
	m := &TxManager{}
	ft := &fakeTx{failOn: "INSERT INTO sklad_two"}
	ctx := ctxWithTx(ft)

	inserts := []string{
		"INSERT INTO sklad_one",
		"INSERT INTO sklad_two",
		"INSERT INTO sklad_three",
	}

	var created, failed int
	for _, sql := range inserts {
		stmt := sql
		err := m.RunInTransactionWithOptions(ctx, savepointOpts(), func(ctx context.Context) error {
			_, execErr := m.GetQuerier(ctx).Exec(ctx, stmt)
			return execErr
		})
		if err != nil {
			failed++
			continue
		}
		created++
	}

	assert.Equal(t, 2, created)
	assert.Equal(t, 1, failed)
	assert.True(t, ft.saw("ROLLBACK TO SAVEPOINT"))

	// The outer transaction stays usable for the import log write.
	_, err := m.GetQuerier(ctx).Exec(ctx, "INSERT INTO import_logs")
	require.NoError(t, err)
	assert.True(t, ft.saw("INSERT INTO import_logs"))
}
