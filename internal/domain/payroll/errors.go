package payroll

import "errors"

var (
	ErrSalaryAlreadyApproved = errors.New("salary already approved")
	ErrNoSalaryInputs        = errors.New("no employees found for this salary month")
	ErrEmployeeNotInPayroll  = errors.New("employee has no payroll inputs for this month")
)
