package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

// MonthRequest selects a YYYY-MM salary month.
type MonthRequest struct {
	Month string
}

func (r *MonthRequest) Validate() error {
	r.Month = strings.TrimSpace(r.Month)
	if !validator.IsValidYearMonth(r.Month) {
		return validator.ValidationErrors{
			{Field: "month", Message: "invalid or missing month parameter (YYYY-MM required)"},
		}
	}
	return nil
}

// SalaryApproval names one employee month to freeze. Amounts are always
// recomputed from the approved inputs, never taken from the request.
type SalaryApproval struct {
	EmployeeID  int64  `json:"employee_id"`
	SalaryMonth string `json:"salary_month"`
}

type ApproveSalariesRequest struct {
	Salaries []SalaryApproval `json:"salaries"`

	// Set by the HTTP layer from the verified token
	ApprovedByID    int64  `json:"-"`
	ApprovedByEmail string `json:"-"`
}

func (r *ApproveSalariesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Salaries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "salaries", Message: "must contain at least one salary"})
	}
	for i, s := range r.Salaries {
		if s.EmployeeID <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("salaries[%d].employee_id", i),
				Message: "is required",
			})
		}
		if !validator.IsValidYearMonth(s.SalaryMonth) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("salaries[%d].salary_month", i),
				Message: "invalid or missing salary_month (YYYY-MM required)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveSalariesResponse struct {
	Approved int `json:"approved"`
}

type EmployeeLoanRequest struct {
	EmployeeID int64
	Month      string
}

func (r *EmployeeLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidYearMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeLoanResponse struct {
	EmployeeID        int64  `json:"employee_id"`
	Month             string `json:"month"`
	MonthlyLoanAmount string `json:"monthly_loan_amount"`
}

// SalaryResponse renders every amount with exactly two decimals. OT and DOT
// hours are null for Executives.
type SalaryResponse struct {
	EmployeeID             int64   `json:"employee_id"`
	EmpNo                  string  `json:"emp_no"`
	EmployeeName           string  `json:"employee_name"`
	UserType               string  `json:"user_type"`
	SalaryMonth            string  `json:"salary_month"`
	BasicSalary            string  `json:"basic_salary"`
	EPFDeduction           string  `json:"epf_deduction"`
	EmployerEPF            string  `json:"employer_epf"`
	ETF                    string  `json:"etf"`
	TaxDeduction           string  `json:"tax_deduction"`
	LoanDeduction          string  `json:"loan_deduction"`
	TelephoneBillDeduction string  `json:"telephone_bill_deduction"`
	StampDeduction         string  `json:"stamp_deduction"`
	WelfareDeduction       string  `json:"welfare_deduction"`
	InsuranceDeduction     string  `json:"insurance_deduction"`
	NoPayDays              string  `json:"no_pay_days"`
	NoPayDeduction         string  `json:"no_pay_deduction"`
	LeaveDays              string  `json:"leave_days"`
	HolidayClaims          string  `json:"holiday_claims"`
	HolidayClaimAmount     string  `json:"holiday_claim_amount"`
	OTHours                *string `json:"ot_hours"`
	OTAmount               string  `json:"ot_amount"`
	DOTHours               *string `json:"dot_hours"`
	DOTAmount              string  `json:"dot_amount"`
	SalaryArrears          string  `json:"salary_arrears"`
	GrossSalary            string  `json:"gross_salary"`
	TotalDeductions        string  `json:"total_deductions"`
	NetPay                 string  `json:"net_pay"`
	BankCode               *string `json:"bank_code"`
	BranchCode             *string `json:"branch_code"`
	AccountNumber          *string `json:"account_number"`
	NICNo                  *string `json:"nic_no"`
	MobileNo               *string `json:"mobile_no"`
}

func NewSalaryResponse(s Salary) SalaryResponse {
	resp := SalaryResponse{
		EmployeeID:             s.EmployeeID,
		EmpNo:                  s.EmpNo,
		EmployeeName:           s.EmployeeName,
		UserType:               string(s.UserType),
		SalaryMonth:            s.SalaryMonth,
		BasicSalary:            money(s.BasicSalary),
		EPFDeduction:           money(s.EPFDeduction),
		EmployerEPF:            money(s.EmployerEPF),
		ETF:                    money(s.ETF),
		TaxDeduction:           money(s.TaxDeduction),
		LoanDeduction:          money(s.LoanDeduction),
		TelephoneBillDeduction: money(s.TelephoneBillDeduction),
		StampDeduction:         money(s.StampDeduction),
		WelfareDeduction:       money(s.WelfareDeduction),
		InsuranceDeduction:     money(s.InsuranceDeduction),
		NoPayDays:              money(decimal.NewFromInt(int64(s.NoPayDays))),
		NoPayDeduction:         money(s.NoPayDeduction),
		LeaveDays:              money(decimal.NewFromInt(int64(s.LeaveDays))),
		HolidayClaims:          money(decimal.NewFromInt(int64(s.HolidayClaims))),
		HolidayClaimAmount:     money(s.HolidayClaimAmount),
		OTAmount:               money(s.OTAmount),
		DOTAmount:              money(s.DOTAmount),
		SalaryArrears:          money(s.SalaryArrears),
		GrossSalary:            money(s.GrossSalary),
		TotalDeductions:        money(s.TotalDeductions),
		NetPay:                 money(s.NetPay),
		BankCode:               s.BankCode,
		BranchCode:             s.BranchCode,
		AccountNumber:          s.AccountNumber,
		NICNo:                  s.NICNo,
		MobileNo:               s.MobileNo,
	}
	if s.UserType == employee.UserTypeNonExecutive {
		ot := money(s.OTHours)
		dot := money(s.DOTHours)
		resp.OTHours = &ot
		resp.DOTHours = &dot
	}
	return resp
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
