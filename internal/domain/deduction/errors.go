package deduction

import "errors"

var (
	ErrLoanNotFound          = errors.New("no loan found for this employee and month")
	ErrTelephoneBillExists   = errors.New("telephone bill already exists for this employee and month")
	ErrInvalidDeductionMonth = errors.New("month must be in YYYY-MM format with a month between 01 and 12")
)
