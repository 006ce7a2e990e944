package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is one monthly loan installment. Several rows for the same employee
// and month are all deducted.
type Loan struct {
	ID                int64
	EmployeeID        int64
	MonthlyLoanAmount decimal.Decimal
	LoanMonth         string // YYYY-MM
	CreatedAt         time.Time

	// Joined fields
	EmpNo        string
	EmployeeName string
}

// TelephoneBill is unique per employee and month.
type TelephoneBill struct {
	ID                int64
	EmployeeID        int64
	MonthlyBillAmount decimal.Decimal
	BillMonth         string // YYYY-MM
	CreatedAt         time.Time

	// Joined fields
	EmpNo        string
	EmployeeName string
}
