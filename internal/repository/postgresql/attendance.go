package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			plant_id, employee_id, date, shift, in_time, out_time,
			total_hours, regular_hours, ot_hours, dot_hours, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		r.PlantID, r.EmployeeID, r.Date, r.Shift, r.InTime, r.OutTime,
		r.TotalHours, r.RegularHours, r.OTHours, r.DOTHours, r.Status,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "uk_attendance_employee_date_shift") {
			return attendance.Record{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return r, nil
}

// CreateExecutive implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateExecutive(ctx context.Context, r attendance.ExecutiveRecord) (attendance.ExecutiveRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO executive_attendance_records (
			plant_id, employee_id, date, shift, in_time, out_time,
			total_hours, regular_hours, holiday_pay, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		r.PlantID, r.EmployeeID, r.Date, r.Shift, r.InTime, r.OutTime,
		r.TotalHours, r.RegularHours, r.HolidayPay, r.Status,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "uk_executive_attendance_employee_date_shift") {
			return attendance.ExecutiveRecord{}, attendance.ErrDuplicateAttendance
		}
		return attendance.ExecutiveRecord{}, fmt.Errorf("failed to create executive attendance record: %w", err)
	}

	return r, nil
}

// ListByPlantBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByPlantBetween(ctx context.Context, plantID int64, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.plant_id, ar.employee_id, e.name, ar.date, ar.shift, ar.in_time, ar.out_time,
			   ar.total_hours, ar.regular_hours, ar.ot_hours, ar.dot_hours, ar.status, ar.created_at,
			   p.name
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		JOIN power_plants p ON p.id = ar.plant_id
		WHERE ar.plant_id = $1 AND ar.date BETWEEN $2 AND $3
		ORDER BY e.name, ar.employee_id, ar.date
	`

	rows, err := q.Query(ctx, query, plantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var r attendance.Record
		err := rows.Scan(
			&r.ID, &r.PlantID, &r.EmployeeID, &r.EmployeeName, &r.Date, &r.Shift, &r.InTime, &r.OutTime,
			&r.TotalHours, &r.RegularHours, &r.OTHours, &r.DOTHours, &r.Status, &r.CreatedAt,
			&r.PlantName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListExecutiveByPlantBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListExecutiveByPlantBetween(ctx context.Context, plantID int64, from, to time.Time) ([]attendance.ExecutiveRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ear.id, ear.plant_id, ear.employee_id, e.name, ear.date, ear.shift, ear.in_time, ear.out_time,
			   ear.total_hours, ear.regular_hours, ear.holiday_pay, ear.status, ear.created_at,
			   p.name
		FROM executive_attendance_records ear
		JOIN employees e ON e.id = ear.employee_id
		JOIN power_plants p ON p.id = ear.plant_id
		WHERE ear.plant_id = $1 AND ear.date BETWEEN $2 AND $3
		ORDER BY e.name, ear.employee_id, ear.date
	`

	rows, err := q.Query(ctx, query, plantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list executive attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.ExecutiveRecord
	for rows.Next() {
		var r attendance.ExecutiveRecord
		err := rows.Scan(
			&r.ID, &r.PlantID, &r.EmployeeID, &r.EmployeeName, &r.Date, &r.Shift, &r.InTime, &r.OutTime,
			&r.TotalHours, &r.RegularHours, &r.HolidayPay, &r.Status, &r.CreatedAt,
			&r.PlantName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListWorkedDates implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListWorkedDates(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error) {
	return a.workedDates(ctx, "attendance_records", employeeID, from, to)
}

// ListExecutiveWorkedDates implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListExecutiveWorkedDates(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error) {
	return a.workedDates(ctx, "executive_attendance_records", employeeID, from, to)
}

// table is one of the two attendance tables, never caller input
func (a *attendanceRepository) workedDates(ctx context.Context, table string, employeeID int64, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT DISTINCT date
		FROM %s
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`, table)

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list worked dates: %w", err)
	}
	defer rows.Close()

	return scanDates(rows)
}

func scanDates(rows pgx.Rows) ([]time.Time, error) {
	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}
