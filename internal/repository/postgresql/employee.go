package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

const employeeColumns = `
	e.id, e.emp_no, e.name, e.email, e.user_type, e.designation, e.plant_id,
	e.monthly_salary, e.bank_code, e.branch_code, e.account_number, e.nic_no, e.mobile_no,
	p.name
`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmpNo, &emp.Name, &emp.Email, &emp.UserType, &emp.Designation, &emp.PlantID,
		&emp.MonthlySalary, &emp.BankCode, &emp.BranchCode, &emp.AccountNumber, &emp.NICNo, &emp.MobileNo,
		&emp.PlantName,
	)
	return emp, err
}

func (e *employeeRepositoryImpl) getOne(ctx context.Context, where string, args ...interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN power_plants p ON p.id = e.plant_id
		WHERE ` + where

	emp, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (e *employeeRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return e.getOne(ctx, "e.id = $1", id)
}

// GetByEmpNo implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmpNo(ctx context.Context, empNo string) (employee.Employee, error) {
	return e.getOne(ctx, "e.emp_no = $1", empNo)
}

// GetInPlant implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetInPlant(ctx context.Context, id int64, plantID int64) (employee.Employee, error) {
	emp, err := e.getOne(ctx, "e.id = $1 AND e.plant_id = $2", id, plantID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, employee.ErrEmployeeNotInPlant
	}
	return emp, err
}

// GetByEmpNoInPlant implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmpNoInPlant(ctx context.Context, empNo string, plantID int64) (employee.Employee, error) {
	emp, err := e.getOne(ctx, "e.emp_no = $1 AND e.plant_id = $2", empNo, plantID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, employee.ErrEmployeeNotInPlant
	}
	return emp, err
}

// ListByPlantAndType implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByPlantAndType(ctx context.Context, plantID int64, userType employee.UserType) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN power_plants p ON p.id = e.plant_id
		WHERE e.plant_id = $1 AND e.user_type = $2
		ORDER BY e.id
	`
	return e.list(ctx, query, plantID, userType)
}

// ListRosterStaff implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListRosterStaff(ctx context.Context, plantID int64) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN power_plants p ON p.id = e.plant_id
		WHERE e.plant_id = $1 AND e.designation = ANY($2)
		ORDER BY e.name, e.id
	`
	designations := append([]string{employee.DesignationLaborer}, employee.SupervisorDesignations...)
	return e.list(ctx, query, plantID, designations)
}

// CountInPlantWithDesignation implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountInPlantWithDesignation(ctx context.Context, ids []int64, plantID int64, designations []string) (int, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COUNT(DISTINCT id)
		FROM employees
		WHERE id = ANY($1) AND plant_id = $2 AND designation = ANY($3)
	`

	var count int
	if err := q.QueryRow(ctx, query, ids, plantID, designations).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count plant staff: %w", err)
	}
	return count, nil
}
