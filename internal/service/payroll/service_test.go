package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/deduction"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/payroll"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

type payrollFixture struct {
	salaries *fakeSalaryRepo
	loans    *fakeLoanRepo
	bills    *fakeBillRepo
	service  payroll.PayrollService
}

func newPayrollFixture() payrollFixture {
	salaries := newFakeSalaryRepo()
	salaries.inputs["2024-03"] = []payroll.SalaryInput{
		{EmployeeID: 1, EmpNo: "E001", EmployeeName: "Nimal", UserType: employee.UserTypeNonExecutive, BasicSalary: dec("60000"), OTHours: dec("10")},
		{EmployeeID: 3, EmpNo: "X001", EmployeeName: "Sunil", UserType: employee.UserTypeExecutive, BasicSalary: dec("250000"), HolidayClaims: 2},
	}
	loans := &fakeLoanRepo{loans: []deduction.Loan{
		{EmployeeID: 1, LoanMonth: "2024-03", MonthlyLoanAmount: dec("2000")},
		{EmployeeID: 1, LoanMonth: "2024-03", MonthlyLoanAmount: dec("3000")},
		{EmployeeID: 1, LoanMonth: "2024-04", MonthlyLoanAmount: dec("9999")},
	}}
	bills := &fakeBillRepo{bills: []deduction.TelephoneBill{
		{EmployeeID: 3, BillMonth: "2024-03", MonthlyBillAmount: dec("1200.50")},
	}}
	employees := &fakeEmployeeRepo{employees: []employee.Employee{{ID: 1}, {ID: 2}, {ID: 3}}}

	return payrollFixture{
		salaries: salaries,
		loans:    loans,
		bills:    bills,
		service:  NewPayrollService(&fakeTx{repo: salaries}, salaries, loans, bills, employees, EngineOptions{}),
	}
}

func TestPayrollService_ComputeSalaries_SumsDeductions(t *testing.T) {
	f := newPayrollFixture()

	rows, err := f.service.ComputeSalaries(context.Background(), payroll.MonthRequest{Month: " 2024-03 "})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	nimal := rows[0]
	assert.Equal(t, "5000.00", nimal.LoanDeduction)
	assert.Equal(t, "0.00", nimal.TelephoneBillDeduction)
	assert.Equal(t, "3750.00", nimal.OTAmount)
	require.NotNil(t, nimal.OTHours)
	assert.Equal(t, "10.00", *nimal.OTHours)

	sunil := rows[1]
	assert.Equal(t, "1200.50", sunil.TelephoneBillDeduction)
	assert.Equal(t, "25000.00", sunil.HolidayClaimAmount)
	assert.Nil(t, sunil.OTHours)
	assert.Nil(t, sunil.DOTHours)
	assert.Empty(t, f.salaries.salaries)
}

func TestPayrollService_ComputeSalaries_Errors(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()

	_, err := f.service.ComputeSalaries(ctx, payroll.MonthRequest{Month: "2024-13"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "invalid or missing month parameter (YYYY-MM required)", verrs.ToMap()["month"])

	_, err = f.service.ComputeSalaries(ctx, payroll.MonthRequest{Month: "2024-05"})
	assert.ErrorIs(t, err, payroll.ErrNoSalaryInputs)

	f.salaries.inputsErr = errStoreDown
	_, err = f.service.ComputeSalaries(ctx, payroll.MonthRequest{Month: "2024-03"})
	assert.ErrorIs(t, err, errStoreDown)
}

func TestPayrollService_ApproveSalaries_WriteOnce(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()

	resp, err := f.service.ApproveSalaries(ctx, payroll.ApproveSalariesRequest{Salaries: []payroll.SalaryApproval{
		{EmployeeID: 1, SalaryMonth: "2024-03"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Approved)
	original := f.salaries.salaries[salaryKey{1, "2024-03"}].NetPay

	// a later loan must not change the frozen salary
	f.loans.loans = append(f.loans.loans, deduction.Loan{EmployeeID: 1, LoanMonth: "2024-03", MonthlyLoanAmount: dec("10000")})

	_, err = f.service.ApproveSalaries(ctx, payroll.ApproveSalariesRequest{Salaries: []payroll.SalaryApproval{
		{EmployeeID: 3, SalaryMonth: "2024-03"},
		{EmployeeID: 1, SalaryMonth: "2024-03"},
	}})
	assert.ErrorIs(t, err, payroll.ErrSalaryAlreadyApproved)
	assert.Contains(t, err.Error(), "E001")

	require.Len(t, f.salaries.salaries, 1)
	assert.True(t, original.Equal(f.salaries.salaries[salaryKey{1, "2024-03"}].NetPay))

	approved, err := f.service.ListApproved(ctx, payroll.MonthRequest{Month: "2024-03"})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "51325.00", approved[0].NetPay)
}

func TestPayrollService_ApproveSalaries_UnknownEmployeeAbortsBatch(t *testing.T) {
	f := newPayrollFixture()

	_, err := f.service.ApproveSalaries(context.Background(), payroll.ApproveSalariesRequest{Salaries: []payroll.SalaryApproval{
		{EmployeeID: 1, SalaryMonth: "2024-03"},
		{EmployeeID: 2, SalaryMonth: "2024-03"},
	}})
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotInPayroll)
	assert.Empty(t, f.salaries.salaries)
}

func TestPayrollService_ApproveSalaries_Validation(t *testing.T) {
	f := newPayrollFixture()

	_, err := f.service.ApproveSalaries(context.Background(), payroll.ApproveSalariesRequest{Salaries: []payroll.SalaryApproval{
		{EmployeeID: 1, SalaryMonth: "03-2024"},
	}})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "salaries[0].salary_month")

	_, err = f.service.ApproveSalaries(context.Background(), payroll.ApproveSalariesRequest{})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "salaries")
}

func TestPayrollService_ListApproved_Empty(t *testing.T) {
	f := newPayrollFixture()
	rows, err := f.service.ListApproved(context.Background(), payroll.MonthRequest{Month: "2024-03"})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestPayrollService_GetEmployeeLoan(t *testing.T) {
	f := newPayrollFixture()
	ctx := context.Background()

	resp, err := f.service.GetEmployeeLoan(ctx, payroll.EmployeeLoanRequest{EmployeeID: 1, Month: "2024-03"})
	require.NoError(t, err)
	assert.Equal(t, payroll.EmployeeLoanResponse{EmployeeID: 1, Month: "2024-03", MonthlyLoanAmount: "5000.00"}, resp)

	_, err = f.service.GetEmployeeLoan(ctx, payroll.EmployeeLoanRequest{EmployeeID: 3, Month: "2024-03"})
	assert.ErrorIs(t, err, deduction.ErrLoanNotFound)

	_, err = f.service.GetEmployeeLoan(ctx, payroll.EmployeeLoanRequest{EmployeeID: 42, Month: "2024-03"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
