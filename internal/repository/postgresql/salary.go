package postgresql

import (
	"context"
	"fmt"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/payroll"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// ListInputs implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) ListInputs(ctx context.Context, year, month int) ([]payroll.SalaryInput, error) {
	q := GetQuerier(ctx, r.db)

	// NonExecutive finals only count for NonExecutive employees
	query := `
		SELECT e.id, e.emp_no, e.name, e.user_type, e.monthly_salary,
			   COALESCE(far.no_pay_days, nar.no_pay_days, 0),
			   COALESCE(far.leave_days, nar.leave_days, 0),
			   COALESCE(far.holiday_claims, 0),
			   COALESCE(nar.ot, 0),
			   COALESCE(nar.dot, 0)::numeric,
			   COALESCE(far.salary_arrears, nar.salary_arrears, 0),
			   e.bank_code, e.branch_code, e.account_number, e.nic_no, e.mobile_no
		FROM employees e
		LEFT JOIN LATERAL (
			SELECT no_pay_days, leave_days, holiday_claims, salary_arrears
			FROM final_attendance_records
			WHERE employee_id = e.id AND year = $1 AND month = $2
			ORDER BY approved_at DESC
			LIMIT 1
		) far ON TRUE
		LEFT JOIN LATERAL (
			SELECT no_pay_days, leave_days, ot, dot, salary_arrears
			FROM non_executive_attendance_records
			WHERE employee_id = e.id AND year = $1 AND month = $2 AND e.user_type = 'NonExecutive'
			ORDER BY approved_at DESC
			LIMIT 1
		) nar ON TRUE
		ORDER BY e.id
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary inputs: %w", err)
	}
	defer rows.Close()

	var inputs []payroll.SalaryInput
	for rows.Next() {
		var in payroll.SalaryInput
		err := rows.Scan(
			&in.EmployeeID, &in.EmpNo, &in.EmployeeName, &in.UserType, &in.BasicSalary,
			&in.NoPayDays, &in.LeaveDays, &in.HolidayClaims, &in.OTHours, &in.DOTHours, &in.SalaryArrears,
			&in.BankCode, &in.BranchCode, &in.AccountNumber, &in.NICNo, &in.MobileNo,
		)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return inputs, nil
}

// ExistsForMonth implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) ExistsForMonth(ctx context.Context, employeeID int64, salaryMonth string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM salaries WHERE employee_id = $1 AND salary_month = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, salaryMonth).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check salary: %w", err)
	}
	return exists, nil
}

// Create implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, s payroll.Salary) (payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (
			employee_id, emp_no, employee_name, user_type, salary_month, basic_salary,
			epf_deduction, employer_epf, etf, tax_deduction, loan_deduction,
			telephone_bill_deduction, stamp_deduction, welfare_deduction, insurance_deduction,
			no_pay_days, no_pay_deduction, leave_days, holiday_claims, holiday_claim_amount,
			ot_hours, ot_amount, dot_hours, dot_amount, salary_arrears,
			gross_salary, total_deductions, net_pay,
			bank_code, branch_code, account_number, nic_no, mobile_no
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25,
			$26, $27, $28,
			$29, $30, $31, $32, $33
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.EmpNo, s.EmployeeName, s.UserType, s.SalaryMonth, s.BasicSalary,
		s.EPFDeduction, s.EmployerEPF, s.ETF, s.TaxDeduction, s.LoanDeduction,
		s.TelephoneBillDeduction, s.StampDeduction, s.WelfareDeduction, s.InsuranceDeduction,
		s.NoPayDays, s.NoPayDeduction, s.LeaveDays, s.HolidayClaims, s.HolidayClaimAmount,
		s.OTHours, s.OTAmount, s.DOTHours, s.DOTAmount, s.SalaryArrears,
		s.GrossSalary, s.TotalDeductions, s.NetPay,
		s.BankCode, s.BranchCode, s.AccountNumber, s.NICNo, s.MobileNo,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "uk_salaries_employee_month") {
			return payroll.Salary{}, fmt.Errorf("%w: employee %s for %s", payroll.ErrSalaryAlreadyApproved, s.EmpNo, s.SalaryMonth)
		}
		return payroll.Salary{}, fmt.Errorf("failed to save salary of employee %s: %w", s.EmpNo, err)
	}

	return s, nil
}

// ListByMonth implements payroll.SalaryRepository.
func (r *salaryRepositoryImpl) ListByMonth(ctx context.Context, salaryMonth string) ([]payroll.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, emp_no, employee_name, user_type, salary_month, basic_salary,
			   epf_deduction, employer_epf, etf, tax_deduction, loan_deduction,
			   telephone_bill_deduction, stamp_deduction, welfare_deduction, insurance_deduction,
			   no_pay_days, no_pay_deduction, leave_days, holiday_claims, holiday_claim_amount,
			   ot_hours, ot_amount, dot_hours, dot_amount, salary_arrears,
			   gross_salary, total_deductions, net_pay,
			   bank_code, branch_code, account_number, nic_no, mobile_no, created_at
		FROM salaries
		WHERE salary_month = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, salaryMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var salaries []payroll.Salary
	for rows.Next() {
		var s payroll.Salary
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.EmpNo, &s.EmployeeName, &s.UserType, &s.SalaryMonth, &s.BasicSalary,
			&s.EPFDeduction, &s.EmployerEPF, &s.ETF, &s.TaxDeduction, &s.LoanDeduction,
			&s.TelephoneBillDeduction, &s.StampDeduction, &s.WelfareDeduction, &s.InsuranceDeduction,
			&s.NoPayDays, &s.NoPayDeduction, &s.LeaveDays, &s.HolidayClaims, &s.HolidayClaimAmount,
			&s.OTHours, &s.OTAmount, &s.DOTHours, &s.DOTAmount, &s.SalaryArrears,
			&s.GrossSalary, &s.TotalDeductions, &s.NetPay,
			&s.BankCode, &s.BranchCode, &s.AccountNumber, &s.NICNo, &s.MobileNo, &s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		salaries = append(salaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return salaries, nil
}
