package payroll

import "context"

type PayrollService interface {
	ComputeSalaries(ctx context.Context, req MonthRequest) ([]SalaryResponse, error)
	ApproveSalaries(ctx context.Context, req ApproveSalariesRequest) (ApproveSalariesResponse, error)
	ListApproved(ctx context.Context, req MonthRequest) ([]SalaryResponse, error)
	GetEmployeeLoan(ctx context.Context, req EmployeeLoanRequest) (EmployeeLoanResponse, error)
}
