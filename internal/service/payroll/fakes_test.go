package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/deduction"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/payroll"
)

var errStoreDown = errors.New("store unavailable")

type salaryKey struct {
	employeeID int64
	month      string
}

type fakeSalaryRepo struct {
	inputs    map[string][]payroll.SalaryInput
	salaries  map[salaryKey]payroll.Salary
	order     []salaryKey
	inputsErr error
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{
		inputs:   map[string][]payroll.SalaryInput{},
		salaries: map[salaryKey]payroll.Salary{},
	}
}

func (f *fakeSalaryRepo) ListInputs(ctx context.Context, year, month int) ([]payroll.SalaryInput, error) {
	if f.inputsErr != nil {
		return nil, f.inputsErr
	}
	key := fmt.Sprintf("%d-%02d", year, month)
	out := make([]payroll.SalaryInput, len(f.inputs[key]))
	copy(out, f.inputs[key])
	return out, nil
}

func (f *fakeSalaryRepo) ExistsForMonth(ctx context.Context, employeeID int64, salaryMonth string) (bool, error) {
	_, ok := f.salaries[salaryKey{employeeID, salaryMonth}]
	return ok, nil
}

func (f *fakeSalaryRepo) Create(ctx context.Context, s payroll.Salary) (payroll.Salary, error) {
	key := salaryKey{s.EmployeeID, s.SalaryMonth}
	if _, ok := f.salaries[key]; ok {
		return payroll.Salary{}, payroll.ErrSalaryAlreadyApproved
	}
	s.ID = int64(len(f.salaries) + 1)
	f.salaries[key] = s
	f.order = append(f.order, key)
	return s, nil
}

func (f *fakeSalaryRepo) ListByMonth(ctx context.Context, salaryMonth string) ([]payroll.Salary, error) {
	var out []payroll.Salary
	for _, k := range f.order {
		if k.month == salaryMonth {
			out = append(out, f.salaries[k])
		}
	}
	return out, nil
}

// fakeTx restores the salary ledger when fn fails.
type fakeTx struct {
	repo *fakeSalaryRepo
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	salaries := make(map[salaryKey]payroll.Salary, len(t.repo.salaries))
	for k, v := range t.repo.salaries {
		salaries[k] = v
	}
	order := append([]salaryKey(nil), t.repo.order...)

	if err := fn(ctx); err != nil {
		t.repo.salaries = salaries
		t.repo.order = order
		return err
	}
	return nil
}

type fakeLoanRepo struct {
	loans []deduction.Loan
}

func (f *fakeLoanRepo) Create(ctx context.Context, l deduction.Loan) (deduction.Loan, error) {
	f.loans = append(f.loans, l)
	return l, nil
}

func (f *fakeLoanRepo) List(ctx context.Context, filter deduction.ListFilter) ([]deduction.Loan, int64, error) {
	return f.loans, int64(len(f.loans)), nil
}

func (f *fakeLoanRepo) TotalsForMonth(ctx context.Context, month string) (map[int64]decimal.Decimal, error) {
	totals := map[int64]decimal.Decimal{}
	for _, l := range f.loans {
		if l.LoanMonth == month {
			totals[l.EmployeeID] = totals[l.EmployeeID].Add(l.MonthlyLoanAmount)
		}
	}
	return totals, nil
}

func (f *fakeLoanRepo) SumForEmployee(ctx context.Context, employeeID int64, month string) (decimal.Decimal, bool, error) {
	total, found := decimal.Zero, false
	for _, l := range f.loans {
		if l.EmployeeID == employeeID && l.LoanMonth == month {
			total = total.Add(l.MonthlyLoanAmount)
			found = true
		}
	}
	return total, found, nil
}

type fakeBillRepo struct {
	bills []deduction.TelephoneBill
}

func (f *fakeBillRepo) Create(ctx context.Context, b deduction.TelephoneBill) (deduction.TelephoneBill, error) {
	f.bills = append(f.bills, b)
	return b, nil
}

func (f *fakeBillRepo) List(ctx context.Context, filter deduction.ListFilter) ([]deduction.TelephoneBill, int64, error) {
	return f.bills, int64(len(f.bills)), nil
}

func (f *fakeBillRepo) TotalsForMonth(ctx context.Context, month string) (map[int64]decimal.Decimal, error) {
	totals := map[int64]decimal.Decimal{}
	for _, b := range f.bills {
		if b.BillMonth == month {
			totals[b.EmployeeID] = totals[b.EmployeeID].Add(b.MonthlyBillAmount)
		}
	}
	return totals, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmpNo(ctx context.Context, empNo string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetInPlant(ctx context.Context, id int64, plantID int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotInPlant
}

func (f *fakeEmployeeRepo) GetByEmpNoInPlant(ctx context.Context, empNo string, plantID int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotInPlant
}

func (f *fakeEmployeeRepo) ListByPlantAndType(ctx context.Context, plantID int64, userType employee.UserType) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListRosterStaff(ctx context.Context, plantID int64) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) CountInPlantWithDesignation(ctx context.Context, ids []int64, plantID int64, designations []string) (int, error) {
	return 0, nil
}
