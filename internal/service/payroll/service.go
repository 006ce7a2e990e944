package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/deduction"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/payroll"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	txManager    database.TxManager
	salaryRepo   payroll.SalaryRepository
	loanRepo     deduction.LoanRepository
	billRepo     deduction.TelephoneBillRepository
	employeeRepo employee.EmployeeRepository
	opts         EngineOptions
}

func NewPayrollService(
	txManager database.TxManager,
	salaryRepo payroll.SalaryRepository,
	loanRepo deduction.LoanRepository,
	billRepo deduction.TelephoneBillRepository,
	employeeRepo employee.EmployeeRepository,
	opts EngineOptions,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		txManager:    txManager,
		salaryRepo:   salaryRepo,
		loanRepo:     loanRepo,
		billRepo:     billRepo,
		employeeRepo: employeeRepo,
		opts:         opts,
	}
}

// loadInputs joins the approved attendance of the month with its loan and
// bill totals. The three reads run in parallel, so it must not be called
// with a transaction bound context.
func (s *PayrollServiceImpl) loadInputs(ctx context.Context, salaryMonth string) ([]payroll.SalaryInput, error) {
	year, month, ok := validator.ParseYearMonth(salaryMonth)
	if !ok {
		return nil, deduction.ErrInvalidDeductionMonth
	}

	var (
		inputs []payroll.SalaryInput
		loans  map[int64]decimal.Decimal
		bills  map[int64]decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inputs, err = s.salaryRepo.ListInputs(gctx, year, int(month))
		if err != nil {
			return fmt.Errorf("failed to list salary inputs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		loans, err = s.loanRepo.TotalsForMonth(gctx, salaryMonth)
		if err != nil {
			return fmt.Errorf("failed to sum loans: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bills, err = s.billRepo.TotalsForMonth(gctx, salaryMonth)
		if err != nil {
			return fmt.Errorf("failed to sum telephone bills: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range inputs {
		inputs[i].LoanAmount = loans[inputs[i].EmployeeID]
		inputs[i].BillAmount = bills[inputs[i].EmployeeID]
	}
	return inputs, nil
}

// ComputeSalaries implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputeSalaries(ctx context.Context, req payroll.MonthRequest) ([]payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inputs, err := s.loadInputs(ctx, req.Month)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, payroll.ErrNoSalaryInputs
	}

	out := make([]payroll.SalaryResponse, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, payroll.NewSalaryResponse(Compute(in, req.Month, s.opts)))
	}
	return out, nil
}

// ApproveSalaries implements payroll.PayrollService. The batch is stored in
// one transaction and fails as a whole when any employee month already has
// a salary.
func (s *PayrollServiceImpl) ApproveSalaries(ctx context.Context, req payroll.ApproveSalariesRequest) (payroll.ApproveSalariesResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ApproveSalariesResponse{}, err
	}

	byMonth := make(map[string]map[int64]payroll.SalaryInput)
	for _, a := range req.Salaries {
		if _, ok := byMonth[a.SalaryMonth]; ok {
			continue
		}
		inputs, err := s.loadInputs(ctx, a.SalaryMonth)
		if err != nil {
			return payroll.ApproveSalariesResponse{}, err
		}
		m := make(map[int64]payroll.SalaryInput, len(inputs))
		for _, in := range inputs {
			m[in.EmployeeID] = in
		}
		byMonth[a.SalaryMonth] = m
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		for _, a := range req.Salaries {
			in, ok := byMonth[a.SalaryMonth][a.EmployeeID]
			if !ok {
				return fmt.Errorf("%w: employee %d for %s", payroll.ErrEmployeeNotInPayroll, a.EmployeeID, a.SalaryMonth)
			}

			exists, err := s.salaryRepo.ExistsForMonth(ctx, a.EmployeeID, a.SalaryMonth)
			if err != nil {
				return fmt.Errorf("failed to check salary of employee %d: %w", a.EmployeeID, err)
			}
			if exists {
				return fmt.Errorf("%w: employee %s for %s", payroll.ErrSalaryAlreadyApproved, in.EmpNo, a.SalaryMonth)
			}

			if _, err := s.salaryRepo.Create(ctx, Compute(in, a.SalaryMonth, s.opts)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return payroll.ApproveSalariesResponse{}, err
	}

	slog.Info("Salary batch committed", "records", len(req.Salaries), "approved_by_id", req.ApprovedByID, "approved_by_email", req.ApprovedByEmail)
	return payroll.ApproveSalariesResponse{Approved: len(req.Salaries)}, nil
}

// ListApproved implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListApproved(ctx context.Context, req payroll.MonthRequest) ([]payroll.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	salaries, err := s.salaryRepo.ListByMonth(ctx, req.Month)
	if err != nil {
		return nil, err
	}

	out := make([]payroll.SalaryResponse, 0, len(salaries))
	for _, sal := range salaries {
		out = append(out, payroll.NewSalaryResponse(sal))
	}
	return out, nil
}

// GetEmployeeLoan implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeLoan(ctx context.Context, req payroll.EmployeeLoanRequest) (payroll.EmployeeLoanResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EmployeeLoanResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.EmployeeLoanResponse{}, err
	}

	total, found, err := s.loanRepo.SumForEmployee(ctx, req.EmployeeID, req.Month)
	if err != nil {
		return payroll.EmployeeLoanResponse{}, err
	}
	if !found {
		return payroll.EmployeeLoanResponse{}, deduction.ErrLoanNotFound
	}

	return payroll.EmployeeLoanResponse{
		EmployeeID:        req.EmployeeID,
		Month:             req.Month,
		MonthlyLoanAmount: total.StringFixed(2),
	}, nil
}
