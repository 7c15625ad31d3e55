package bank

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// AccountSubmission carries the raw string fields of an account form. The core
// owns all type coercion; a field that fails to parse surfaces as a
// ValidationError, never a silent default.
type AccountSubmission struct {
	ClientIDs     string
	AccountType   string
	Balance       string
	CurrencyType  string
	SubbranchName string
	Overdraft     string
	Interest      string
}

// SplitClientIDs splits a delimiter-separated client id list. Duplicates are
// kept: a duplicated id is a caller error and is caught later by the
// account-management index constraint.
func SplitClientIDs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';'
	})
}

// Parse validates and coerces a submission against the given rule set.
func (s AccountSubmission) Parse(rules Restriction) (NewAccount, error) {
	kind, err := ParseAccountKind(s.AccountType)
	if err != nil {
		return NewAccount{}, err
	}

	balance, err := decimal.NewFromString(s.Balance)
	if err != nil {
		return NewAccount{}, &ValidationError{Field: "balance", Value: s.Balance, Err: err}
	}
	if err := rules.Balance.check("balance", balance); err != nil {
		return NewAccount{}, err
	}

	acct := NewAccount{
		Kind:          kind,
		Balance:       balance,
		SubbranchName: s.SubbranchName,
		ClientIDs:     SplitClientIDs(s.ClientIDs),
	}

	switch kind {
	case KindSaving:
		interest, err := strconv.ParseFloat(s.Interest, 64)
		if err != nil {
			return NewAccount{}, &ValidationError{Field: "interest", Value: s.Interest, Err: err}
		}
		if err := rules.Interest.check("interest", interest); err != nil {
			return NewAccount{}, err
		}
		if err := rules.checkCurrency(s.CurrencyType); err != nil {
			return NewAccount{}, err
		}
		acct.Saving = SavingDetails{Interest: interest, CurrencyType: s.CurrencyType}
	case KindChecking:
		overdraft, err := decimal.NewFromString(s.Overdraft)
		if err != nil {
			return NewAccount{}, &ValidationError{Field: "overdraft", Value: s.Overdraft, Err: err}
		}
		if err := rules.Overdraft.check("overdraft", overdraft); err != nil {
			return NewAccount{}, err
		}
		acct.Checking = CheckingDetails{Overdraft: overdraft}
	}

	return acct, nil
}
