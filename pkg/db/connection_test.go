package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestConnection(t *testing.T) *Connection {
	t.Helper()

	conn, err := Open(filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestOpenInitializesSchema(t *testing.T) {
	conn := openTestConnection(t)

	tables := []string{
		"subbranch", "client", "account", "savingaccount", "checkingaccount",
		"own", "accountmanagement", "loan", "payment", "receiveloan",
	}
	for _, table := range tables {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestTransactionCommits(t *testing.T) {
	conn := openTestConnection(t)

	err := conn.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO subbranch (subbranchName, city) VALUES ('downtown', 'Springfield')`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM subbranch`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	conn := openTestConnection(t)
	boom := errors.New("boom")

	err := conn.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO subbranch (subbranchName, city) VALUES ('downtown', 'Springfield')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM subbranch`).Scan(&count))
	assert.Zero(t, count)
}

func TestTransactionContextPropagatesOriginalError(t *testing.T) {
	conn := openTestConnection(t)
	boom := errors.New("step failed")

	err := conn.TransactionContext(context.Background(), nil, func(tx *sql.Tx) error {
		return boom
	})
	// The step's error comes back unchanged, not wrapped
	assert.Equal(t, boom, err)
}
