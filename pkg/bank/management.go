package bank

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/samber/mo"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
)

// ManagementRow is the per-client-per-subbranch index entry tracking which
// saving and checking account, if any, the client holds at that subbranch.
type ManagementRow struct {
	SubbranchName     string
	ClientID          string
	SavingAccountID   mo.Option[string]
	CheckingAccountID mo.Option[string]
}

// slot returns a pointer to the index slot matching the account kind, so the
// same create-or-fill path serves both variants.
func (r *ManagementRow) slot(kind AccountKind) (*mo.Option[string], error) {
	switch kind {
	case KindSaving:
		return &r.SavingAccountID, nil
	case KindChecking:
		return &r.CheckingAccountID, nil
	default:
		return nil, &ConstraintError{Msg: fmt.Sprintf("unrecognized account kind %d", kind)}
	}
}

func optFromNull(ns sql.NullString) mo.Option[string] {
	if !ns.Valid {
		return mo.None[string]()
	}
	return mo.Some(ns.String)
}

// getManagementRow fetches the index row for (subbranch, client).
// It returns (nil, nil) when no row exists.
func getManagementRow(ctx context.Context, q db.Querier, subbranchName, clientID string) (*ManagementRow, error) {
	query := `
		SELECT subbranchName, clientID, savingAccountID, checkingAccountID
		FROM accountmanagement
		WHERE subbranchName = ? AND clientID = ?
	`

	var row ManagementRow
	var saving, checking sql.NullString

	err := q.QueryRowContext(ctx, query, subbranchName, clientID).Scan(
		&row.SubbranchName,
		&row.ClientID,
		&saving,
		&checking,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get accountmanagement row", err)
	}

	row.SavingAccountID = optFromNull(saving)
	row.CheckingAccountID = optFromNull(checking)
	return &row, nil
}

func insertManagementRow(ctx context.Context, q db.Querier, row ManagementRow) error {
	query := `
		INSERT INTO accountmanagement (subbranchName, clientID, savingAccountID, checkingAccountID)
		VALUES (?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		row.SubbranchName,
		row.ClientID,
		row.SavingAccountID.ToPointer(),
		row.CheckingAccountID.ToPointer(),
	)
	if err != nil {
		return storageErr("insert accountmanagement row", err)
	}
	return nil
}

func updateManagementRow(ctx context.Context, q db.Querier, row ManagementRow) error {
	query := `
		UPDATE accountmanagement
		SET savingAccountID = ?, checkingAccountID = ?
		WHERE subbranchName = ? AND clientID = ?
	`

	_, err := q.ExecContext(ctx, query,
		row.SavingAccountID.ToPointer(),
		row.CheckingAccountID.ToPointer(),
		row.SubbranchName,
		row.ClientID,
	)
	if err != nil {
		return storageErr("update accountmanagement row", err)
	}
	return nil
}

// subbranchesReferencing returns the distinct subbranch names whose index rows
// hold the given account id in the slot for kind. Normally at most one.
func subbranchesReferencing(ctx context.Context, q db.Querier, kind AccountKind, accountID string) ([]string, error) {
	column, err := slotColumn(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT DISTINCT subbranchName FROM accountmanagement WHERE %s = ?`, column)
	rows, err := q.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, storageErr("query referencing subbranches", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageErr("scan referencing subbranch", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate referencing subbranches", err)
	}
	return names, nil
}

// clearManagementSlot empties the slot for kind in every index row that
// references the account id.
func clearManagementSlot(ctx context.Context, q db.Querier, kind AccountKind, accountID string) error {
	column, err := slotColumn(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE accountmanagement SET %s = NULL WHERE %s = ?`, column, column)
	if _, err := q.ExecContext(ctx, query, accountID); err != nil {
		return storageErr("clear accountmanagement slot", err)
	}
	return nil
}

func slotColumn(kind AccountKind) (string, error) {
	switch kind {
	case KindSaving:
		return "savingAccountID", nil
	case KindChecking:
		return "checkingAccountID", nil
	default:
		return "", &ConstraintError{Msg: fmt.Sprintf("unrecognized account kind %d", kind)}
	}
}
