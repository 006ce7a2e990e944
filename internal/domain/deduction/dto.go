package deduction

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

// Excel column sets accepted by the deduction uploads
var (
	LoanImportColumns          = []string{"employee_no", "monthly_loan_amount", "loan_month"}
	TelephoneBillImportColumns = []string{"employee_no", "monthly_bill_amount", "bill_month"}
)

type ImportRowResult struct {
	Row        int             `json:"row"`
	EmployeeNo string          `json:"employee_no"`
	EmployeeID int64           `json:"employee_id"`
	ID         int64           `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"`
}

type ImportResponse struct {
	BatchID string            `json:"batch_id"`
	Results []ImportRowResult `json:"results"`
	Errors  []string          `json:"errors,omitempty"`
}

// MaxPage bounds the offset a list query can ask for.
const MaxPage = 100000

type ListFilter struct {
	EmployeeNo *string
	Page       int
	Limit      int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must not exceed " + strconv.Itoa(MaxPage)})
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must not exceed 100"})
	}
	if f.EmployeeNo != nil && validator.IsEmpty(*f.EmployeeNo) {
		f.EmployeeNo = nil
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type LoanResponse struct {
	ID                int64           `json:"id"`
	EmployeeID        int64           `json:"employee_id"`
	EmpNo             string          `json:"emp_no"`
	EmployeeName      string          `json:"employee_name"`
	MonthlyLoanAmount decimal.Decimal `json:"monthly_loan_amount"`
	LoanMonth         string          `json:"loan_month"`
	CreatedAt         time.Time       `json:"created_at"`
}

func NewLoanResponse(l Loan) LoanResponse {
	return LoanResponse{
		ID:                l.ID,
		EmployeeID:        l.EmployeeID,
		EmpNo:             l.EmpNo,
		EmployeeName:      l.EmployeeName,
		MonthlyLoanAmount: l.MonthlyLoanAmount,
		LoanMonth:         l.LoanMonth,
		CreatedAt:         l.CreatedAt,
	}
}

type TelephoneBillResponse struct {
	ID                int64           `json:"id"`
	EmployeeID        int64           `json:"employee_id"`
	EmpNo             string          `json:"emp_no"`
	EmployeeName      string          `json:"employee_name"`
	MonthlyBillAmount decimal.Decimal `json:"monthly_bill_amount"`
	BillMonth         string          `json:"bill_month"`
	CreatedAt         time.Time       `json:"created_at"`
}

func NewTelephoneBillResponse(b TelephoneBill) TelephoneBillResponse {
	return TelephoneBillResponse{
		ID:                b.ID,
		EmployeeID:        b.EmployeeID,
		EmpNo:             b.EmpNo,
		EmployeeName:      b.EmployeeName,
		MonthlyBillAmount: b.MonthlyBillAmount,
		BillMonth:         b.BillMonth,
		CreatedAt:         b.CreatedAt,
	}
}

// Page is the position of one list page; the HTTP layer reports it as meta.
type Page struct {
	Page       int
	Limit      int
	TotalItems int64
	TotalPages int
}

type ListLoansResponse struct {
	Loans []LoanResponse
	Page  Page
}

type ListTelephoneBillsResponse struct {
	Bills []TelephoneBillResponse
	Page  Page
}
