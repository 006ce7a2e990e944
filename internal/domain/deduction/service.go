package deduction

import (
	"context"
	"io"
)

type DeductionService interface {
	ImportLoans(ctx context.Context, file io.Reader) (ImportResponse, error)
	ListLoans(ctx context.Context, filter ListFilter) (ListLoansResponse, error)
	ImportTelephoneBills(ctx context.Context, file io.Reader) (ImportResponse, error)
	ListTelephoneBills(ctx context.Context, filter ListFilter) (ListTelephoneBillsResponse, error)
}
