package deduction

import (
	"context"

	"github.com/shopspring/decimal"
)

type LoanRepository interface {
	Create(ctx context.Context, l Loan) (Loan, error)
	// List returns one page ordered newest first and the total row count
	List(ctx context.Context, filter ListFilter) ([]Loan, int64, error)
	// TotalsForMonth sums every loan row of the month per employee
	TotalsForMonth(ctx context.Context, month string) (map[int64]decimal.Decimal, error)
	// SumForEmployee reports false when the employee has no loan in the month
	SumForEmployee(ctx context.Context, employeeID int64, month string) (decimal.Decimal, bool, error)
}

type TelephoneBillRepository interface {
	// Create fails with ErrTelephoneBillExists on a second bill for the same month
	Create(ctx context.Context, b TelephoneBill) (TelephoneBill, error)
	List(ctx context.Context, filter ListFilter) ([]TelephoneBill, int64, error)
	TotalsForMonth(ctx context.Context, month string) (map[int64]decimal.Decimal, error)
}
