package bank

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
)

// Subbranch is a branch office with its running managed-asset total. The total
// is maintained incrementally by the ledger operations, never recomputed from
// scratch.
type Subbranch struct {
	Name  string
	City  string
	Asset decimal.Decimal
}

// CreateSubbranch inserts a subbranch with a zero asset total.
func CreateSubbranch(ctx context.Context, q db.Querier, name, city string) error {
	query := `INSERT INTO subbranch (subbranchName, city, subbranchAsset) VALUES (?, ?, '0')`
	if _, err := q.ExecContext(ctx, query, name, city); err != nil {
		return storageErr("insert subbranch", err)
	}
	return nil
}

// QuerySubbranch fetches a subbranch by name.
func QuerySubbranch(ctx context.Context, q db.Querier, name string) (Subbranch, error) {
	query := `SELECT subbranchName, city, subbranchAsset FROM subbranch WHERE subbranchName = ?`

	var sb Subbranch
	var asset string
	err := q.QueryRowContext(ctx, query, name).Scan(&sb.Name, &sb.City, &asset)
	if err == sql.ErrNoRows {
		return Subbranch{}, &NotFoundError{Entity: "subbranch", Key: name}
	}
	if err != nil {
		return Subbranch{}, storageErr("query subbranch", err)
	}

	sb.Asset, err = decimal.NewFromString(asset)
	if err != nil {
		return Subbranch{}, storageErr("parse subbranch asset", err)
	}
	return sb, nil
}

// GetAsset returns the subbranch's current asset total.
func GetAsset(ctx context.Context, q db.Querier, name string) (decimal.Decimal, error) {
	sb, err := QuerySubbranch(ctx, q, name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return sb.Asset, nil
}

// SetAsset overwrites the subbranch's asset total. The ledger performs no
// arithmetic here; callers compute the new value.
func SetAsset(ctx context.Context, q db.Querier, name string, value decimal.Decimal) error {
	query := `UPDATE subbranch SET subbranchAsset = ? WHERE subbranchName = ?`

	res, err := q.ExecContext(ctx, query, value.String(), name)
	if err != nil {
		return storageErr("set subbranch asset", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("set subbranch asset", err)
	}
	if n == 0 {
		return &NotFoundError{Entity: "subbranch", Key: name}
	}
	return nil
}

// AdjustAsset adds delta to the subbranch's asset total and returns the new
// value. The read-modify-write uses exact decimal arithmetic and must run
// inside the caller's unit-of-work, which serializes it against concurrent
// adjustments of the same subbranch.
func AdjustAsset(ctx context.Context, q db.Querier, name string, delta decimal.Decimal) (decimal.Decimal, error) {
	current, err := GetAsset(ctx, q, name)
	if err != nil {
		return decimal.Decimal{}, err
	}

	updated := current.Add(delta)
	if err := SetAsset(ctx, q, name, updated); err != nil {
		return decimal.Decimal{}, err
	}
	return updated, nil
}
