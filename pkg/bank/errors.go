// Package bank implements the transactional core of the back office: account
// creation with ownership fan-out, the per-client account-management index, and
// the subbranch asset ledger. Every operation takes a db.Querier so it runs
// inside whatever unit-of-work the caller owns; nothing here begins or commits
// transactions.
package bank

import "fmt"

// ValidationError reports malformed user input: an unrecognized account type or
// a numeric field that failed to parse.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ConstraintError reports a violation of the one-saving/one-checking account
// per client per subbranch invariant, or an unrecognized account kind reaching
// a persistence step.
type ConstraintError struct {
	Msg string
}

func (e *ConstraintError) Error() string { return e.Msg }

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// StorageError wraps a failed statement execution.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
