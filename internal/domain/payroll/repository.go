package payroll

import "context"

type SalaryRepository interface {
	// ListInputs joins every employee with the final attendance of year/month, ordered by id.
	// Loan and bill amounts are left zero for the caller to fill in.
	ListInputs(ctx context.Context, year, month int) ([]SalaryInput, error)
	ExistsForMonth(ctx context.Context, employeeID int64, salaryMonth string) (bool, error)
	// Create fails with ErrSalaryAlreadyApproved when the employee month already has a row
	Create(ctx context.Context, s Salary) (Salary, error)
	ListByMonth(ctx context.Context, salaryMonth string) ([]Salary, error)
}
