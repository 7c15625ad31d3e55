package bank

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
)

// Loan is a loan principal record. Loans and payments are read-only inputs for
// the reporting side; this core never mutates them.
type Loan struct {
	ID            string
	Amount        decimal.Decimal
	SubbranchName string
}

// Payment is a per-date repayment record for a loan.
type Payment struct {
	LoanID string
	Date   time.Time
	Amount decimal.Decimal
}

// QueryLoansBySubbranch returns the loans issued by a subbranch.
func QueryLoansBySubbranch(ctx context.Context, q db.Querier, subbranchName string) ([]Loan, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT loanID, amount, subbranchName FROM loan WHERE subbranchName = ? ORDER BY loanID`,
		subbranchName,
	)
	if err != nil {
		return nil, storageErr("query loans", err)
	}
	defer rows.Close()

	var loans []Loan
	for rows.Next() {
		var loan Loan
		var amount string
		if err := rows.Scan(&loan.ID, &amount, &loan.SubbranchName); err != nil {
			return nil, storageErr("scan loan", err)
		}
		loan.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, storageErr("parse loan amount", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate loans", err)
	}
	return loans, nil
}

// QueryPaymentsByLoan returns the payment records for a loan, oldest first.
func QueryPaymentsByLoan(ctx context.Context, q db.Querier, loanID string) ([]Payment, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT loanID, date, amount FROM payment WHERE loanID = ? ORDER BY date`,
		loanID,
	)
	if err != nil {
		return nil, storageErr("query payments", err)
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		var date, amount string
		if err := rows.Scan(&p.LoanID, &date, &amount); err != nil {
			return nil, storageErr("scan payment", err)
		}
		p.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, storageErr("parse payment date", err)
		}
		p.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, storageErr("parse payment amount", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate payments", err)
	}
	return payments, nil
}
