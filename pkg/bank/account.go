package bank

import (
	"time"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

// AccountKind is the closed set of account variants. The kind is chosen once at
// creation from the submitted type string and is immutable afterwards; all
// downstream logic switches on the tag, never on the raw string.
type AccountKind int

const (
	KindSaving AccountKind = iota
	KindChecking
)

// Submitted type strings, as the form layer sends them.
const (
	TypeSaving   = "savingAccount"
	TypeChecking = "checkingAccount"
)

// ParseAccountKind maps a submitted type string to its kind tag.
func ParseAccountKind(s string) (AccountKind, error) {
	switch s {
	case TypeSaving:
		return KindSaving, nil
	case TypeChecking:
		return KindChecking, nil
	default:
		return 0, &ValidationError{Field: "accountType", Value: s}
	}
}

func (k AccountKind) String() string {
	switch k {
	case KindSaving:
		return TypeSaving
	case KindChecking:
		return TypeChecking
	default:
		return "unknown"
	}
}

// Account holds the fields shared by both variants.
type Account struct {
	ID       string
	Balance  decimal.Decimal
	OpenDate time.Time
}

// SavingDetails are the saving-account specific fields.
type SavingDetails struct {
	Interest     float64
	CurrencyType string
}

// CheckingDetails are the checking-account specific fields.
type CheckingDetails struct {
	Overdraft decimal.Decimal
}

// SpecificAccount is an account together with its variant data. Exactly one of
// Saving/Checking is present, matching Kind.
type SpecificAccount struct {
	Account
	Kind     AccountKind
	Saving   mo.Option[SavingDetails]
	Checking mo.Option[CheckingDetails]
}

// NewAccount is a fully parsed account submission, ready to persist.
type NewAccount struct {
	Kind          AccountKind
	Balance       decimal.Decimal
	SubbranchName string
	ClientIDs     []string
	Saving        SavingDetails
	Checking      CheckingDetails
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)
