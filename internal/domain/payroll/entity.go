package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
)

// SalaryInput is one employee's joined payroll inputs for a month: the
// approved final attendance plus the month's loan and bill totals.
type SalaryInput struct {
	EmployeeID    int64
	EmpNo         string
	EmployeeName  string
	UserType      employee.UserType
	BasicSalary   decimal.Decimal
	NoPayDays     int
	LeaveDays     int
	HolidayClaims int
	OTHours       decimal.Decimal
	DOTHours      decimal.Decimal
	SalaryArrears decimal.Decimal
	LoanAmount    decimal.Decimal
	BillAmount    decimal.Decimal

	BankCode      *string
	BranchCode    *string
	AccountNumber *string
	NICNo         *string
	MobileNo      *string
}

// Salary is a computed payslip. Persisted rows in salaries are write-once per
// employee and salary month.
type Salary struct {
	ID                     int64
	EmployeeID             int64
	EmpNo                  string
	EmployeeName           string
	UserType               employee.UserType
	SalaryMonth            string // YYYY-MM
	BasicSalary            decimal.Decimal
	EPFDeduction           decimal.Decimal
	EmployerEPF            decimal.Decimal
	ETF                    decimal.Decimal
	TaxDeduction           decimal.Decimal
	LoanDeduction          decimal.Decimal
	TelephoneBillDeduction decimal.Decimal
	StampDeduction         decimal.Decimal
	WelfareDeduction       decimal.Decimal
	InsuranceDeduction     decimal.Decimal
	NoPayDays              int
	NoPayDeduction         decimal.Decimal
	LeaveDays              int
	HolidayClaims          int
	HolidayClaimAmount     decimal.Decimal
	OTHours                decimal.Decimal
	OTAmount               decimal.Decimal
	DOTHours               decimal.Decimal
	DOTAmount              decimal.Decimal
	SalaryArrears          decimal.Decimal
	GrossSalary            decimal.Decimal
	TotalDeductions        decimal.Decimal
	NetPay                 decimal.Decimal
	CreatedAt              time.Time

	BankCode      *string
	BranchCode    *string
	AccountNumber *string
	NICNo         *string
	MobileNo      *string
}
