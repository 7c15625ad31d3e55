package bank

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
)

func newTestConn(t *testing.T) *db.Connection {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// seedBank creates the downtown subbranch and clients c1..c3.
func seedBank(t *testing.T, conn *db.Connection) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, CreateSubbranch(ctx, conn.GetDB(), "downtown", "Springfield"))
	for _, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, CreateClient(ctx, conn.GetDB(), Client{ID: id}))
	}
}

// testWriter returns a writer with a fixed clock so open dates and visit
// timestamps are deterministic.
func testWriter() *LedgerWriter {
	return &LedgerWriter{
		now:   func() time.Time { return time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC) },
		newID: uuid.NewString,
	}
}

func countRows(t *testing.T, conn *db.Connection, query string, args ...any) int {
	t.Helper()

	var count int
	require.NoError(t, conn.QueryRow(query, args...).Scan(&count))
	return count
}

func savingSubmission(clients string) AccountSubmission {
	return AccountSubmission{
		ClientIDs:     clients,
		AccountType:   TypeSaving,
		Balance:       "1000.00",
		CurrencyType:  "USD",
		SubbranchName: "downtown",
		Interest:      "0.03",
	}
}

func checkingSubmission(clients string) AccountSubmission {
	return AccountSubmission{
		ClientIDs:     clients,
		AccountType:   TypeChecking,
		Balance:       "250.50",
		SubbranchName: "downtown",
		Overdraft:     "100",
	}
}
