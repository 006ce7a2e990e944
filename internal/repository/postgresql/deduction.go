package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/deduction"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) deduction.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

// Create implements deduction.LoanRepository.
func (r *loanRepositoryImpl) Create(ctx context.Context, l deduction.Loan) (deduction.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (employee_id, monthly_loan_amount, loan_month)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := q.QueryRow(ctx, query, l.EmployeeID, l.MonthlyLoanAmount, l.LoanMonth).Scan(&l.ID, &l.CreatedAt); err != nil {
		return deduction.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}
	return l, nil
}

// List implements deduction.LoanRepository.
func (r *loanRepositoryImpl) List(ctx context.Context, filter deduction.ListFilter) ([]deduction.Loan, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM loans l
		JOIN employees e ON e.id = l.employee_id
		WHERE ($1::text IS NULL OR e.emp_no = $1)
	`
	if err := q.QueryRow(ctx, countQuery, filter.EmployeeNo).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	query := `
		SELECT l.id, l.employee_id, l.monthly_loan_amount, l.loan_month, l.created_at, e.emp_no, e.name
		FROM loans l
		JOIN employees e ON e.id = l.employee_id
		WHERE ($1::text IS NULL OR e.emp_no = $1)
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, filter.EmployeeNo, filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []deduction.Loan
	for rows.Next() {
		var l deduction.Loan
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.MonthlyLoanAmount, &l.LoanMonth, &l.CreatedAt, &l.EmpNo, &l.EmployeeName); err != nil {
			return nil, 0, err
		}
		loans = append(loans, l)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return loans, total, nil
}

// TotalsForMonth implements deduction.LoanRepository.
func (r *loanRepositoryImpl) TotalsForMonth(ctx context.Context, month string) (map[int64]decimal.Decimal, error) {
	return monthTotals(ctx, GetQuerier(ctx, r.db), `
		SELECT employee_id, SUM(monthly_loan_amount)
		FROM loans
		WHERE loan_month = $1
		GROUP BY employee_id
	`, month)
}

// SumForEmployee implements deduction.LoanRepository.
func (r *loanRepositoryImpl) SumForEmployee(ctx context.Context, employeeID int64, month string) (decimal.Decimal, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT SUM(monthly_loan_amount)
		FROM loans
		WHERE employee_id = $1 AND loan_month = $2
		GROUP BY employee_id
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, month).Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to sum loans of employee %d: %w", employeeID, err)
	}
	return total, true, nil
}

type telephoneBillRepositoryImpl struct {
	db *database.DB
}

func NewTelephoneBillRepository(db *database.DB) deduction.TelephoneBillRepository {
	return &telephoneBillRepositoryImpl{db: db}
}

// Create implements deduction.TelephoneBillRepository.
func (r *telephoneBillRepositoryImpl) Create(ctx context.Context, b deduction.TelephoneBill) (deduction.TelephoneBill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO telephone_bills (employee_id, monthly_bill_amount, bill_month)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	if err := q.QueryRow(ctx, query, b.EmployeeID, b.MonthlyBillAmount, b.BillMonth).Scan(&b.ID, &b.CreatedAt); err != nil {
		if isUniqueViolation(err, "uk_telephone_bills_employee_month") {
			return deduction.TelephoneBill{}, deduction.ErrTelephoneBillExists
		}
		return deduction.TelephoneBill{}, fmt.Errorf("failed to create telephone bill: %w", err)
	}
	return b, nil
}

// List implements deduction.TelephoneBillRepository.
func (r *telephoneBillRepositoryImpl) List(ctx context.Context, filter deduction.ListFilter) ([]deduction.TelephoneBill, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM telephone_bills tb
		JOIN employees e ON e.id = tb.employee_id
		WHERE ($1::text IS NULL OR e.emp_no = $1)
	`
	if err := q.QueryRow(ctx, countQuery, filter.EmployeeNo).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count telephone bills: %w", err)
	}

	query := `
		SELECT tb.id, tb.employee_id, tb.monthly_bill_amount, tb.bill_month, tb.created_at, e.emp_no, e.name
		FROM telephone_bills tb
		JOIN employees e ON e.id = tb.employee_id
		WHERE ($1::text IS NULL OR e.emp_no = $1)
		ORDER BY tb.created_at DESC, tb.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, filter.EmployeeNo, filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list telephone bills: %w", err)
	}
	defer rows.Close()

	var bills []deduction.TelephoneBill
	for rows.Next() {
		var b deduction.TelephoneBill
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.MonthlyBillAmount, &b.BillMonth, &b.CreatedAt, &b.EmpNo, &b.EmployeeName); err != nil {
			return nil, 0, err
		}
		bills = append(bills, b)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// TotalsForMonth implements deduction.TelephoneBillRepository.
func (r *telephoneBillRepositoryImpl) TotalsForMonth(ctx context.Context, month string) (map[int64]decimal.Decimal, error) {
	return monthTotals(ctx, GetQuerier(ctx, r.db), `
		SELECT employee_id, SUM(monthly_bill_amount)
		FROM telephone_bills
		WHERE bill_month = $1
		GROUP BY employee_id
	`, month)
}

func monthTotals(ctx context.Context, q database.Querier, query string, month string) (map[int64]decimal.Decimal, error) {
	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to sum deductions for %s: %w", month, err)
	}
	defer rows.Close()

	totals := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var (
			employeeID int64
			total      decimal.Decimal
		)
		if err := rows.Scan(&employeeID, &total); err != nil {
			return nil, err
		}
		totals[employeeID] = total
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
