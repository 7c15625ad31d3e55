package bank

import (
	"context"
	"database/sql"
	"time"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
)

// QueryAccountByID fetches an account with its variant data. The subtype tables
// are probed in a fixed order; an id present in neither is a NotFoundError.
func QueryAccountByID(ctx context.Context, q db.Querier, accountID string) (SpecificAccount, error) {
	var acct SpecificAccount
	var balance, openDate string

	var details SavingDetails
	err := q.QueryRowContext(ctx,
		`SELECT accountID, balance, openDate, interest, currencyType FROM savingaccount WHERE accountID = ?`,
		accountID,
	).Scan(&acct.ID, &balance, &openDate, &details.Interest, &details.CurrencyType)
	switch {
	case err == nil:
		acct.Kind = KindSaving
		acct.Saving = mo.Some(details)
		return finishAccount(acct, balance, openDate)
	case err != sql.ErrNoRows:
		return SpecificAccount{}, storageErr("query savingaccount", err)
	}

	var checking CheckingDetails
	var overdraft string
	err = q.QueryRowContext(ctx,
		`SELECT accountID, balance, openDate, overdraft FROM checkingaccount WHERE accountID = ?`,
		accountID,
	).Scan(&acct.ID, &balance, &openDate, &overdraft)
	switch {
	case err == sql.ErrNoRows:
		return SpecificAccount{}, &NotFoundError{Entity: "account", Key: accountID}
	case err != nil:
		return SpecificAccount{}, storageErr("query checkingaccount", err)
	}

	od, err := decimal.NewFromString(overdraft)
	if err != nil {
		return SpecificAccount{}, storageErr("parse overdraft", err)
	}
	checking.Overdraft = od
	acct.Kind = KindChecking
	acct.Checking = mo.Some(checking)
	return finishAccount(acct, balance, openDate)
}

func finishAccount(acct SpecificAccount, balance, openDate string) (SpecificAccount, error) {
	b, err := decimal.NewFromString(balance)
	if err != nil {
		return SpecificAccount{}, storageErr("parse balance", err)
	}
	d, err := time.Parse(dateLayout, openDate)
	if err != nil {
		return SpecificAccount{}, storageErr("parse open date", err)
	}
	acct.Balance = b
	acct.OpenDate = d
	return acct, nil
}

// QueryAssociatedClients returns the ids of clients owning the account.
func QueryAssociatedClients(ctx context.Context, q db.Querier, accountID string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT clientID FROM own WHERE accountID = ? ORDER BY clientID`,
		accountID,
	)
	if err != nil {
		return nil, storageErr("query associated clients", err)
	}
	defer rows.Close()

	var clients []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("scan associated client", err)
		}
		clients = append(clients, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate associated clients", err)
	}
	return clients, nil
}

// ManagedAccountIDs are the account ids a subbranch manages, split by kind,
// gathered from its account-management index rows.
type ManagedAccountIDs struct {
	Saving   []string
	Checking []string
}

// QueryManagedAccountIDs collects the distinct saving and checking account ids
// referenced by a subbranch's index rows.
func QueryManagedAccountIDs(ctx context.Context, q db.Querier, subbranchName string) (ManagedAccountIDs, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT savingAccountID, checkingAccountID FROM accountmanagement WHERE subbranchName = ?`,
		subbranchName,
	)
	if err != nil {
		return ManagedAccountIDs{}, storageErr("query managed accounts", err)
	}
	defer rows.Close()

	seenSaving := map[string]bool{}
	seenChecking := map[string]bool{}
	var ids ManagedAccountIDs
	for rows.Next() {
		var saving, checking sql.NullString
		if err := rows.Scan(&saving, &checking); err != nil {
			return ManagedAccountIDs{}, storageErr("scan managed accounts", err)
		}
		if saving.Valid && !seenSaving[saving.String] {
			seenSaving[saving.String] = true
			ids.Saving = append(ids.Saving, saving.String)
		}
		if checking.Valid && !seenChecking[checking.String] {
			seenChecking[checking.String] = true
			ids.Checking = append(ids.Checking, checking.String)
		}
	}
	if err := rows.Err(); err != nil {
		return ManagedAccountIDs{}, storageErr("iterate managed accounts", err)
	}
	return ids, nil
}
