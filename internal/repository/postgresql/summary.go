package postgresql

import (
	"context"
	"fmt"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/summary"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepositoryImpl{db: db}
}

// UpsertExecutiveDraft implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) UpsertExecutiveDraft(ctx context.Context, s summary.ExecutiveSummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO executive_summary_records (
			plant_id, employee_id, year, month, total_days_worked, no_pay_days,
			holiday_claims, leave_days, approved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT ON CONSTRAINT uk_executive_summary_key DO UPDATE SET
			total_days_worked = EXCLUDED.total_days_worked,
			no_pay_days = EXCLUDED.no_pay_days,
			holiday_claims = EXCLUDED.holiday_claims,
			leave_days = EXCLUDED.leave_days,
			approved_at = EXCLUDED.approved_at
	`

	_, err := q.Exec(ctx, query,
		s.PlantID, s.EmployeeID, s.Year, s.Month, s.TotalDaysWorked, s.NoPayDays,
		s.HolidayClaims, s.LeaveDays, s.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save executive summary of employee %d: %w", s.EmployeeID, err)
	}
	return nil
}

// UpsertNonExecutiveDraft implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) UpsertNonExecutiveDraft(ctx context.Context, s summary.NonExecutiveSummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO non_executive_summary_records (
			plant_id, employee_id, year, month, total_days_worked, no_pay_days,
			ot_hours, dot_hours, leave_days, approved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT ON CONSTRAINT uk_non_executive_summary_key DO UPDATE SET
			total_days_worked = EXCLUDED.total_days_worked,
			no_pay_days = EXCLUDED.no_pay_days,
			ot_hours = EXCLUDED.ot_hours,
			dot_hours = EXCLUDED.dot_hours,
			leave_days = EXCLUDED.leave_days,
			approved_at = EXCLUDED.approved_at
	`

	_, err := q.Exec(ctx, query,
		s.PlantID, s.EmployeeID, s.Year, s.Month, s.TotalDaysWorked, s.NoPayDays,
		s.OTHours, s.DOTHours, s.LeaveDays, s.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save non-executive summary of employee %d: %w", s.EmployeeID, err)
	}
	return nil
}

// UpsertFinalExecutive implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) UpsertFinalExecutive(ctx context.Context, rec summary.FinalExecutiveRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO final_attendance_records (
			plant_id, employee_id, year, month, salary_month, total_days_worked,
			no_pay_days, holiday_claims, leave_days, salary_arrears, approved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT ON CONSTRAINT uk_final_attendance_key DO UPDATE SET
			salary_month = EXCLUDED.salary_month,
			total_days_worked = EXCLUDED.total_days_worked,
			no_pay_days = EXCLUDED.no_pay_days,
			holiday_claims = EXCLUDED.holiday_claims,
			leave_days = EXCLUDED.leave_days,
			salary_arrears = EXCLUDED.salary_arrears,
			approved_at = EXCLUDED.approved_at
	`

	_, err := q.Exec(ctx, query,
		rec.PlantID, rec.EmployeeID, rec.Year, rec.Month, rec.SalaryMonth, rec.TotalDaysWorked,
		rec.NoPayDays, rec.HolidayClaims, rec.LeaveDays, rec.SalaryArrears, rec.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to approve attendance of employee %d: %w", rec.EmployeeID, err)
	}
	return nil
}

// UpsertFinalNonExecutive implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) UpsertFinalNonExecutive(ctx context.Context, rec summary.FinalNonExecutiveRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO non_executive_attendance_records (
			plant_id, employee_id, year, month, salary_month, shift_1, shift_2, shift_3,
			ot, dot, no_pay_days, leave_days, salary_arrears, approved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT ON CONSTRAINT uk_non_executive_final_key DO UPDATE SET
			salary_month = EXCLUDED.salary_month,
			shift_1 = EXCLUDED.shift_1,
			shift_2 = EXCLUDED.shift_2,
			shift_3 = EXCLUDED.shift_3,
			ot = EXCLUDED.ot,
			dot = EXCLUDED.dot,
			no_pay_days = EXCLUDED.no_pay_days,
			leave_days = EXCLUDED.leave_days,
			salary_arrears = EXCLUDED.salary_arrears,
			approved_at = EXCLUDED.approved_at
	`

	_, err := q.Exec(ctx, query,
		rec.PlantID, rec.EmployeeID, rec.Year, rec.Month, rec.SalaryMonth, rec.Shift1, rec.Shift2, rec.Shift3,
		rec.OT, rec.DOT, rec.NoPayDays, rec.LeaveDays, rec.SalaryArrears, rec.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to approve attendance of employee %d: %w", rec.EmployeeID, err)
	}
	return nil
}

// ListFinalExecutive implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) ListFinalExecutive(ctx context.Context, plantID int64, year, month int) ([]summary.FinalExecutiveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT far.plant_id, far.employee_id, far.year, far.month, far.salary_month, far.total_days_worked,
			   far.no_pay_days, far.holiday_claims, far.leave_days, far.salary_arrears, far.approved_at,
			   e.name, p.name
		FROM final_attendance_records far
		JOIN employees e ON e.id = far.employee_id
		JOIN power_plants p ON p.id = far.plant_id
		WHERE far.plant_id = $1 AND far.year = $2 AND far.month = $3
		ORDER BY far.employee_id
	`

	rows, err := q.Query(ctx, query, plantID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list final executive attendance: %w", err)
	}
	defer rows.Close()

	var records []summary.FinalExecutiveRecord
	for rows.Next() {
		var rec summary.FinalExecutiveRecord
		err := rows.Scan(
			&rec.PlantID, &rec.EmployeeID, &rec.Year, &rec.Month, &rec.SalaryMonth, &rec.TotalDaysWorked,
			&rec.NoPayDays, &rec.HolidayClaims, &rec.LeaveDays, &rec.SalaryArrears, &rec.ApprovedAt,
			&rec.EmployeeName, &rec.PlantName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListFinalNonExecutive implements summary.SummaryRepository.
func (r *summaryRepositoryImpl) ListFinalNonExecutive(ctx context.Context, plantID int64, year, month int) ([]summary.FinalNonExecutiveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT nar.plant_id, nar.employee_id, nar.year, nar.month, nar.salary_month,
			   nar.shift_1, nar.shift_2, nar.shift_3, nar.ot, nar.dot,
			   nar.no_pay_days, nar.leave_days, nar.salary_arrears, nar.approved_at,
			   e.name, p.name
		FROM non_executive_attendance_records nar
		JOIN employees e ON e.id = nar.employee_id
		JOIN power_plants p ON p.id = nar.plant_id
		WHERE nar.plant_id = $1 AND nar.year = $2 AND nar.month = $3
		ORDER BY nar.employee_id
	`

	rows, err := q.Query(ctx, query, plantID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list final non-executive attendance: %w", err)
	}
	defer rows.Close()

	var records []summary.FinalNonExecutiveRecord
	for rows.Next() {
		var rec summary.FinalNonExecutiveRecord
		err := rows.Scan(
			&rec.PlantID, &rec.EmployeeID, &rec.Year, &rec.Month, &rec.SalaryMonth,
			&rec.Shift1, &rec.Shift2, &rec.Shift3, &rec.OT, &rec.DOT,
			&rec.NoPayDays, &rec.LeaveDays, &rec.SalaryArrears, &rec.ApprovedAt,
			&rec.EmployeeName, &rec.PlantName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
