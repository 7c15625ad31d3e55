package bank

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
)

// SavingAccountUpdate carries the raw string fields of a saving-account edit
// form. ClientIDs is the full replacement owner set.
type SavingAccountUpdate struct {
	ClientIDs    string
	Balance      string
	CurrencyType string
	Interest     string
}

// CheckingAccountUpdate carries the raw string fields of a checking-account
// edit form.
type CheckingAccountUpdate struct {
	ClientIDs string
	Balance   string
	Overdraft string
}

// DeleteAccount removes the subtype row, the base row and all ownership edges,
// clears the account's slot in every index row referencing it, and subtracts
// the last-known balance from each referencing subbranch's asset total. Must
// run inside one unit-of-work.
//
// An account that never had owners leaves no index row, so no subbranch can be
// resolved and the asset subtraction is skipped.
func (w *LedgerWriter) DeleteAccount(ctx context.Context, q db.Querier, accountID string) error {
	acct, err := QueryAccountByID(ctx, q, accountID)
	if err != nil {
		return err
	}

	subbranches, err := subbranchesReferencing(ctx, q, acct.Kind, accountID)
	if err != nil {
		return err
	}

	switch acct.Kind {
	case KindSaving:
		_, err = q.ExecContext(ctx, `DELETE FROM savingaccount WHERE accountID = ?`, accountID)
	case KindChecking:
		_, err = q.ExecContext(ctx, `DELETE FROM checkingaccount WHERE accountID = ?`, accountID)
	default:
		return &ConstraintError{Msg: fmt.Sprintf("unrecognized account kind %d", acct.Kind)}
	}
	if err != nil {
		return storageErr("delete subtype row", err)
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM own WHERE accountID = ?`, accountID); err != nil {
		return storageErr("delete own edges", err)
	}

	if err := clearManagementSlot(ctx, q, acct.Kind, accountID); err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM account WHERE accountID = ?`, accountID); err != nil {
		return storageErr("delete account row", err)
	}

	for _, name := range subbranches {
		if _, err := AdjustAsset(ctx, q, name, acct.Balance.Neg()); err != nil {
			return err
		}
	}
	return nil
}

// UpdateSavingAccount rewrites a saving account's fields and reconciles its
// owner set against the submitted client-id list. A balance change adjusts the
// subbranch asset by the delta. Must run inside one unit-of-work.
func (w *LedgerWriter) UpdateSavingAccount(ctx context.Context, q db.Querier, accountID string, sub SavingAccountUpdate, rules Restriction) error {
	existing, err := QueryAccountByID(ctx, q, accountID)
	if err != nil {
		return err
	}
	if existing.Kind != KindSaving {
		return &ConstraintError{Msg: fmt.Sprintf("account %s is not a saving account", accountID)}
	}

	balance, err := decimal.NewFromString(sub.Balance)
	if err != nil {
		return &ValidationError{Field: "balance", Value: sub.Balance, Err: err}
	}
	if err := rules.Balance.check("balance", balance); err != nil {
		return err
	}
	interest, err := strconv.ParseFloat(sub.Interest, 64)
	if err != nil {
		return &ValidationError{Field: "interest", Value: sub.Interest, Err: err}
	}
	if err := rules.Interest.check("interest", interest); err != nil {
		return err
	}
	if err := rules.checkCurrency(sub.CurrencyType); err != nil {
		return err
	}

	if err := w.applyBalanceDelta(ctx, q, existing, balance); err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx,
		`UPDATE account SET balance = ? WHERE accountID = ?`,
		balance.String(), accountID,
	); err != nil {
		return storageErr("update account row", err)
	}
	if _, err := q.ExecContext(ctx,
		`UPDATE savingaccount SET balance = ?, interest = ?, currencyType = ? WHERE accountID = ?`,
		balance.String(), interest, sub.CurrencyType, accountID,
	); err != nil {
		return storageErr("update savingaccount row", err)
	}

	return w.reconcileOwners(ctx, q, existing, SplitClientIDs(sub.ClientIDs))
}

// UpdateCheckingAccount is the checking-account counterpart of
// UpdateSavingAccount.
func (w *LedgerWriter) UpdateCheckingAccount(ctx context.Context, q db.Querier, accountID string, sub CheckingAccountUpdate, rules Restriction) error {
	existing, err := QueryAccountByID(ctx, q, accountID)
	if err != nil {
		return err
	}
	if existing.Kind != KindChecking {
		return &ConstraintError{Msg: fmt.Sprintf("account %s is not a checking account", accountID)}
	}

	balance, err := decimal.NewFromString(sub.Balance)
	if err != nil {
		return &ValidationError{Field: "balance", Value: sub.Balance, Err: err}
	}
	if err := rules.Balance.check("balance", balance); err != nil {
		return err
	}
	overdraft, err := decimal.NewFromString(sub.Overdraft)
	if err != nil {
		return &ValidationError{Field: "overdraft", Value: sub.Overdraft, Err: err}
	}
	if err := rules.Overdraft.check("overdraft", overdraft); err != nil {
		return err
	}

	if err := w.applyBalanceDelta(ctx, q, existing, balance); err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx,
		`UPDATE account SET balance = ? WHERE accountID = ?`,
		balance.String(), accountID,
	); err != nil {
		return storageErr("update account row", err)
	}
	if _, err := q.ExecContext(ctx,
		`UPDATE checkingaccount SET balance = ?, overdraft = ? WHERE accountID = ?`,
		balance.String(), overdraft.String(), accountID,
	); err != nil {
		return storageErr("update checkingaccount row", err)
	}

	return w.reconcileOwners(ctx, q, existing, SplitClientIDs(sub.ClientIDs))
}

func (w *LedgerWriter) applyBalanceDelta(ctx context.Context, q db.Querier, existing SpecificAccount, newBalance decimal.Decimal) error {
	delta := newBalance.Sub(existing.Balance)
	if delta.IsZero() {
		return nil
	}

	subbranches, err := subbranchesReferencing(ctx, q, existing.Kind, existing.ID)
	if err != nil {
		return err
	}
	for _, name := range subbranches {
		if _, err := AdjustAsset(ctx, q, name, delta); err != nil {
			return err
		}
	}
	return nil
}

// reconcileOwners replaces the account's owner set with the submitted one:
// new clients are attached under the usual one-per-kind constraint, clients no
// longer listed are detached and their index slot cleared. The submitted list
// is treated as a set.
func (w *LedgerWriter) reconcileOwners(ctx context.Context, q db.Querier, acct SpecificAccount, clientIDs []string) error {
	current, err := QueryAssociatedClients(ctx, q, acct.ID)
	if err != nil {
		return err
	}

	updated := lo.Uniq(clientIDs)
	toAdd := lo.Without(updated, current...)
	toRemove := lo.Without(current, updated...)

	if len(toAdd) > 0 {
		subbranches, err := subbranchesReferencing(ctx, q, acct.Kind, acct.ID)
		if err != nil {
			return err
		}
		if len(subbranches) == 0 {
			return &NotFoundError{Entity: "managing subbranch for account", Key: acct.ID}
		}
		for _, clientID := range toAdd {
			if err := w.AttachOwner(ctx, q, acct.ID, clientID, acct.Kind, subbranches[0]); err != nil {
				return err
			}
		}
	}

	column, err := slotColumn(acct.Kind)
	if err != nil {
		return err
	}
	for _, clientID := range toRemove {
		if _, err := q.ExecContext(ctx,
			`DELETE FROM own WHERE accountID = ? AND clientID = ?`,
			acct.ID, clientID,
		); err != nil {
			return storageErr("delete own edge", err)
		}
		query := fmt.Sprintf(`UPDATE accountmanagement SET %s = NULL WHERE clientID = ? AND %s = ?`, column, column)
		if _, err := q.ExecContext(ctx, query, clientID, acct.ID); err != nil {
			return storageErr("clear accountmanagement slot", err)
		}
	}
	return nil
}
