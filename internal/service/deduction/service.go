package deduction

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/deduction"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/excel"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

type DeductionServiceImpl struct {
	loanRepo     deduction.LoanRepository
	billRepo     deduction.TelephoneBillRepository
	employeeRepo employee.EmployeeRepository
}

func NewDeductionService(
	loanRepo deduction.LoanRepository,
	billRepo deduction.TelephoneBillRepository,
	employeeRepo employee.EmployeeRepository,
) deduction.DeductionService {
	return &DeductionServiceImpl{
		loanRepo:     loanRepo,
		billRepo:     billRepo,
		employeeRepo: employeeRepo,
	}
}

// importSpec names the columns of one upload kind.
type importSpec struct {
	kind         string
	amountColumn string
	monthColumn  string
	columns      []string
}

var (
	loanImport = importSpec{kind: "loan", amountColumn: "monthly_loan_amount", monthColumn: "loan_month", columns: deduction.LoanImportColumns}
	billImport = importSpec{kind: "telephone bill", amountColumn: "monthly_bill_amount", monthColumn: "bill_month", columns: deduction.TelephoneBillImportColumns}
)

type deductionRow struct {
	employee employee.Employee
	amount   decimal.Decimal
	month    string
}

// parseRow validates one spreadsheet row; the returned message is the row
// error shown to the uploader.
func (s *DeductionServiceImpl) parseRow(ctx context.Context, spec importSpec, row excel.Row) (deductionRow, string, error) {
	empNo := row.Get("employee_no")
	if empNo == "" {
		return deductionRow{}, "employee_no is required", nil
	}

	amount, err := decimal.NewFromString(row.Get(spec.amountColumn))
	if err != nil || !amount.IsPositive() {
		return deductionRow{}, fmt.Sprintf("Invalid %s for employee %s: must be a positive number", spec.amountColumn, empNo), nil
	}

	month, ok := parseMonth(row.Get(spec.monthColumn))
	if !ok {
		return deductionRow{}, fmt.Sprintf("Invalid %s for employee %s: %v", spec.monthColumn, empNo, deduction.ErrInvalidDeductionMonth), nil
	}

	emp, err := s.employeeRepo.GetByEmpNo(ctx, empNo)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return deductionRow{}, fmt.Sprintf("Employee not found for employee_no %s", empNo), nil
		}
		return deductionRow{}, "", err
	}

	return deductionRow{employee: emp, amount: amount, month: month}, "", nil
}

// parseMonth accepts YYYY-MM text or a date cell, which arrives as a serial.
func parseMonth(value string) (string, bool) {
	if validator.IsValidYearMonth(value) {
		return value, true
	}
	if !validator.IsNumeric(value) {
		return "", false
	}
	date, err := excel.ParseDate(value)
	if err != nil {
		return "", false
	}
	return date.Format("2006-01"), true
}

// importSheet stores every valid row. store returns a row message instead of
// an error for failures that belong to the row.
func (s *DeductionServiceImpl) importSheet(ctx context.Context, file io.Reader, spec importSpec, store func(context.Context, deductionRow) (int64, string, error)) (deduction.ImportResponse, error) {
	sheet, err := excel.ReadFirstSheet(file)
	if err != nil {
		return deduction.ImportResponse{}, err
	}
	if err := sheet.Require(spec.columns...); err != nil {
		return deduction.ImportResponse{}, err
	}

	resp := deduction.ImportResponse{BatchID: uuid.NewString(), Results: []deduction.ImportRowResult{}}
	for _, row := range sheet.Rows {
		parsed, rowErr, err := s.parseRow(ctx, spec, row)
		if err != nil {
			return deduction.ImportResponse{}, err
		}
		var id int64
		if rowErr == "" {
			id, rowErr, err = store(ctx, parsed)
			if err != nil {
				return deduction.ImportResponse{}, err
			}
		}
		if rowErr != "" {
			slog.Debug("Skipping deduction row", "batch_id", resp.BatchID, "kind", spec.kind, "row", row.Number, "reason", rowErr)
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d: %s", row.Number, rowErr))
			continue
		}

		resp.Results = append(resp.Results, deduction.ImportRowResult{
			Row:        row.Number,
			EmployeeNo: parsed.employee.EmpNo,
			EmployeeID: parsed.employee.ID,
			ID:         id,
			Amount:     parsed.amount,
			Month:      parsed.month,
		})
	}

	slog.Info("Deduction import finished",
		"batch_id", resp.BatchID, "kind", spec.kind, "stored", len(resp.Results), "failed", len(resp.Errors))
	return resp, nil
}

// ImportLoans implements deduction.DeductionService.
func (s *DeductionServiceImpl) ImportLoans(ctx context.Context, file io.Reader) (deduction.ImportResponse, error) {
	return s.importSheet(ctx, file, loanImport, func(ctx context.Context, r deductionRow) (int64, string, error) {
		loan, err := s.loanRepo.Create(ctx, deduction.Loan{
			EmployeeID:        r.employee.ID,
			MonthlyLoanAmount: r.amount,
			LoanMonth:         r.month,
		})
		if err != nil {
			return 0, "", fmt.Errorf("failed to store loan for employee %s: %w", r.employee.EmpNo, err)
		}
		return loan.ID, "", nil
	})
}

// ImportTelephoneBills implements deduction.DeductionService.
func (s *DeductionServiceImpl) ImportTelephoneBills(ctx context.Context, file io.Reader) (deduction.ImportResponse, error) {
	return s.importSheet(ctx, file, billImport, func(ctx context.Context, r deductionRow) (int64, string, error) {
		bill, err := s.billRepo.Create(ctx, deduction.TelephoneBill{
			EmployeeID:        r.employee.ID,
			MonthlyBillAmount: r.amount,
			BillMonth:         r.month,
		})
		if errors.Is(err, deduction.ErrTelephoneBillExists) {
			return 0, fmt.Sprintf("Telephone bill for employee %s and month %s already exists", r.employee.EmpNo, r.month), nil
		}
		if err != nil {
			return 0, "", fmt.Errorf("failed to store telephone bill for employee %s: %w", r.employee.EmpNo, err)
		}
		return bill.ID, "", nil
	})
}

func page(filter deduction.ListFilter, total int64) deduction.Page {
	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return deduction.Page{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: pages,
	}
}

// ListLoans implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListLoans(ctx context.Context, filter deduction.ListFilter) (deduction.ListLoansResponse, error) {
	if err := filter.Validate(); err != nil {
		return deduction.ListLoansResponse{}, err
	}

	loans, total, err := s.loanRepo.List(ctx, filter)
	if err != nil {
		return deduction.ListLoansResponse{}, err
	}

	resp := deduction.ListLoansResponse{
		Loans: make([]deduction.LoanResponse, 0, len(loans)),
		Page:  page(filter, total),
	}
	for _, l := range loans {
		resp.Loans = append(resp.Loans, deduction.NewLoanResponse(l))
	}
	return resp, nil
}

// ListTelephoneBills implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListTelephoneBills(ctx context.Context, filter deduction.ListFilter) (deduction.ListTelephoneBillsResponse, error) {
	if err := filter.Validate(); err != nil {
		return deduction.ListTelephoneBillsResponse{}, err
	}

	bills, total, err := s.billRepo.List(ctx, filter)
	if err != nil {
		return deduction.ListTelephoneBillsResponse{}, err
	}

	resp := deduction.ListTelephoneBillsResponse{
		Bills: make([]deduction.TelephoneBillResponse, 0, len(bills)),
		Page:  page(filter, total),
	}
	for _, b := range bills {
		resp.Bills = append(resp.Bills, deduction.NewTelephoneBillResponse(b))
	}
	return resp, nil
}
