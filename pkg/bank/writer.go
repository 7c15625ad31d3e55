package bank

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
)

// LedgerWriter performs the account-side mutations: entity creation, ownership
// fan-out and the account-management index updates. The clock and id generator
// are injectable for tests.
type LedgerWriter struct {
	now   func() time.Time
	newID func() string
}

// NewLedgerWriter returns a writer using the wall clock and uuid v4 ids.
func NewLedgerWriter() *LedgerWriter {
	return &LedgerWriter{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// CreateAccount parses the submission, generates a fresh account id, records
// today as the open date and inserts the base row plus the subtype row.
// It returns the new id. Nothing is visible outside the caller's unit-of-work.
func (w *LedgerWriter) CreateAccount(ctx context.Context, q db.Querier, sub AccountSubmission, rules Restriction) (string, error) {
	acct, err := sub.Parse(rules)
	if err != nil {
		return "", err
	}
	return w.createAccount(ctx, q, acct)
}

func (w *LedgerWriter) createAccount(ctx context.Context, q db.Querier, acct NewAccount) (string, error) {
	accountID := w.newID()
	openDate := w.now().Format(dateLayout)
	balance := acct.Balance.String()

	_, err := q.ExecContext(ctx,
		`INSERT INTO account (accountID, balance, openDate) VALUES (?, ?, ?)`,
		accountID, balance, openDate,
	)
	if err != nil {
		return "", storageErr("insert account", err)
	}

	switch acct.Kind {
	case KindSaving:
		_, err = q.ExecContext(ctx,
			`INSERT INTO savingaccount (accountID, balance, openDate, interest, currencyType) VALUES (?, ?, ?, ?, ?)`,
			accountID, balance, openDate, acct.Saving.Interest, acct.Saving.CurrencyType,
		)
		if err != nil {
			return "", storageErr("insert savingaccount", err)
		}
	case KindChecking:
		_, err = q.ExecContext(ctx,
			`INSERT INTO checkingaccount (accountID, balance, openDate, overdraft) VALUES (?, ?, ?, ?)`,
			accountID, balance, openDate, acct.Checking.Overdraft.String(),
		)
		if err != nil {
			return "", storageErr("insert checkingaccount", err)
		}
	default:
		return "", &ConstraintError{Msg: fmt.Sprintf("unrecognized account kind %d", acct.Kind)}
	}

	return accountID, nil
}

// AttachOwner inserts an ownership edge with the current timestamp, then
// updates the account-management index for (subbranch, client):
//
//   - no index row: create one with the new account in the slot for kind
//   - slot already occupied: ConstraintError, row untouched; a client holds at
//     most one account of each kind per subbranch
//   - slot empty: fill it, leaving the other slot as is
func (w *LedgerWriter) AttachOwner(ctx context.Context, q db.Querier, accountID, clientID string, kind AccountKind, subbranchName string) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO own (accountID, clientID, lastVisitTime) VALUES (?, ?, ?)`,
		accountID, clientID, w.now().Format(dateTimeLayout),
	)
	if err != nil {
		return storageErr("insert own edge", err)
	}

	row, err := getManagementRow(ctx, q, subbranchName, clientID)
	if err != nil {
		return err
	}

	if row == nil {
		fresh := ManagementRow{SubbranchName: subbranchName, ClientID: clientID}
		slot, err := fresh.slot(kind)
		if err != nil {
			return err
		}
		*slot = mo.Some(accountID)
		return insertManagementRow(ctx, q, fresh)
	}

	slot, err := row.slot(kind)
	if err != nil {
		return err
	}
	if slot.IsPresent() {
		return &ConstraintError{Msg: fmt.Sprintf(
			"client %s already holds a %s at subbranch %s", clientID, kind, subbranchName)}
	}
	*slot = mo.Some(accountID)
	return updateManagementRow(ctx, q, *row)
}

// CreateAccountWithOwners creates the account, attaches every submitted client
// as an owner and adds the opening balance to the subbranch asset total. The
// caller must run it inside one unit-of-work: a failure at any step aborts the
// whole operation.
//
// Duplicate ids in the client list are not deduplicated; the second attach for
// the same client fails on the occupied index slot and the operation aborts.
// An empty client list is allowed and still updates the subbranch asset.
func (w *LedgerWriter) CreateAccountWithOwners(ctx context.Context, q db.Querier, sub AccountSubmission, rules Restriction) (string, error) {
	acct, err := sub.Parse(rules)
	if err != nil {
		return "", err
	}

	accountID, err := w.createAccount(ctx, q, acct)
	if err != nil {
		return "", err
	}

	for _, clientID := range acct.ClientIDs {
		if err := w.AttachOwner(ctx, q, accountID, clientID, acct.Kind, acct.SubbranchName); err != nil {
			return "", err
		}
	}

	if _, err := AdjustAsset(ctx, q, acct.SubbranchName, acct.Balance); err != nil {
		return "", err
	}

	return accountID, nil
}
