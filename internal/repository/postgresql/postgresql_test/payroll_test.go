package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/deduction"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/holiday"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/payroll"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/summary"
	"github.com/vilochanaudantha15/hris-backend/internal/repository/postgresql"
)

func createPlant(t *testing.T, ctx context.Context, setup *TestDatabaseSetup, name string) int64 {
	var id int64
	err := setup.DB.QueryRow(ctx, `INSERT INTO power_plants (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func createEmployee(t *testing.T, ctx context.Context, setup *TestDatabaseSetup, plantID int64, empNo string, userType employee.UserType, designation string) int64 {
	var id int64
	err := setup.DB.QueryRow(ctx, `
		INSERT INTO employees (emp_no, name, user_type, designation, plant_id, monthly_salary)
		VALUES ($1, $2, $3, $4, $5, 100000)
		RETURNING id
	`, empNo, "Employee "+empNo, userType, designation, plantID).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestHolidayRepository_Create_DuplicateDate(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewHolidayRepository(setup.DB)

	date := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	first, err := repo.Create(ctx, holiday.Holiday{Date: date, Name: "May Day", Type: holiday.HolidayTypePublic})
	require.NoError(t, err)

	_, err = repo.Create(ctx, holiday.Holiday{Date: date, Name: "Other", Type: holiday.HolidayTypeCustom})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)

	year := 2024
	list, err := repo.List(ctx, &year)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "May Day", list[0].Name)

	public, err := repo.IsPublicHoliday(ctx, date)
	require.NoError(t, err)
	assert.True(t, public)
}

func TestSummaryRepository_UpsertFinalExecutive_Overwrites(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewSummaryRepository(setup.DB)

	plantID := createPlant(t, ctx, setup, "Kelanitissa")
	empID := createEmployee(t, ctx, setup, plantID, "E100", employee.UserTypeExecutive, "se")

	rec := summary.FinalExecutiveRecord{
		PlantID: plantID, EmployeeID: empID, Year: 2024, Month: 3, SalaryMonth: 3,
		TotalDaysWorked: 18, NoPayDays: 1, LeaveDays: 2, SalaryArrears: decimal.Zero,
		ApprovedAt: time.Now(),
	}
	require.NoError(t, repo.UpsertFinalExecutive(ctx, rec))

	rec.TotalDaysWorked = 20
	rec.NoPayDays = 0
	require.NoError(t, repo.UpsertFinalExecutive(ctx, rec))

	list, err := repo.ListFinalExecutive(ctx, plantID, 2024, 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 20, list[0].TotalDaysWorked)
	assert.Equal(t, 0, list[0].NoPayDays)
	assert.Equal(t, "Kelanitissa", list[0].PlantName)
}

func TestSalaryRepository_Create_WriteOnce(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewSalaryRepository(setup.DB)
	txManager := postgresql.NewTxManager(setup.DB)

	plantID := createPlant(t, ctx, setup, "Sapugaskanda")
	first := createEmployee(t, ctx, setup, plantID, "E200", employee.UserTypeNonExecutive, "laborer")
	second := createEmployee(t, ctx, setup, plantID, "E201", employee.UserTypeNonExecutive, "laborer")

	salary := func(id int64, empNo string, net int64) payroll.Salary {
		return payroll.Salary{
			EmployeeID: id, EmpNo: empNo, EmployeeName: "Employee " + empNo,
			UserType: employee.UserTypeNonExecutive, SalaryMonth: "2024-03",
			BasicSalary: decimal.NewFromInt(100000), NetPay: decimal.NewFromInt(net),
		}
	}

	_, err := repo.Create(ctx, salary(first, "E200", 80000))
	require.NoError(t, err)

	err = txManager.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, salary(second, "E201", 70000)); err != nil {
			return err
		}
		_, err := repo.Create(ctx, salary(first, "E200", 1))
		return err
	})
	assert.ErrorIs(t, err, payroll.ErrSalaryAlreadyApproved)

	list, err := repo.ListByMonth(ctx, "2024-03")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "80000.00", list[0].NetPay.StringFixed(2))

	exists, err := repo.ExistsForMonth(ctx, second, "2024-03")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSalaryRepository_ListInputs_JoinsFinalAttendance(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	salaryRepo := postgresql.NewSalaryRepository(setup.DB)
	summaryRepo := postgresql.NewSummaryRepository(setup.DB)
	loanRepo := postgresql.NewLoanRepository(setup.DB)

	plantID := createPlant(t, ctx, setup, "Norochcholai")
	exec := createEmployee(t, ctx, setup, plantID, "E300", employee.UserTypeExecutive, "se")
	nonExec := createEmployee(t, ctx, setup, plantID, "E301", employee.UserTypeNonExecutive, "laborer")

	require.NoError(t, summaryRepo.UpsertFinalExecutive(ctx, summary.FinalExecutiveRecord{
		PlantID: plantID, EmployeeID: exec, Year: 2024, Month: 3, SalaryMonth: 3,
		NoPayDays: 2, HolidayClaims: 1, SalaryArrears: decimal.NewFromInt(500), ApprovedAt: time.Now(),
	}))
	require.NoError(t, summaryRepo.UpsertFinalNonExecutive(ctx, summary.FinalNonExecutiveRecord{
		PlantID: plantID, EmployeeID: nonExec, Year: 2024, Month: 3, SalaryMonth: 3,
		OT: decimal.RequireFromString("12.5"), DOT: 2, SalaryArrears: decimal.Zero, ApprovedAt: time.Now(),
	}))
	for _, amount := range []int64{1000, 1500} {
		_, err := loanRepo.Create(ctx, deduction.Loan{EmployeeID: exec, MonthlyLoanAmount: decimal.NewFromInt(amount), LoanMonth: "2024-03"})
		require.NoError(t, err)
	}

	inputs, err := salaryRepo.ListInputs(ctx, 2024, 3)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, 2, inputs[0].NoPayDays)
	assert.Equal(t, 1, inputs[0].HolidayClaims)
	assert.Equal(t, "500.00", inputs[0].SalaryArrears.StringFixed(2))
	assert.Equal(t, "12.50", inputs[1].OTHours.StringFixed(2))
	assert.Equal(t, "2", inputs[1].DOTHours.String())

	totals, err := loanRepo.TotalsForMonth(ctx, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2500.00", totals[exec].StringFixed(2))

	_, found, err := loanRepo.SumForEmployee(ctx, nonExec, "2024-03")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTelephoneBillRepository_Create_Duplicate(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewTelephoneBillRepository(setup.DB)

	plantID := createPlant(t, ctx, setup, "Kotmale")
	empID := createEmployee(t, ctx, setup, plantID, "E400", employee.UserTypeExecutive, "se")

	bill := deduction.TelephoneBill{EmployeeID: empID, MonthlyBillAmount: decimal.NewFromInt(1200), BillMonth: "2024-03"}
	_, err := repo.Create(ctx, bill)
	require.NoError(t, err)

	_, err = repo.Create(ctx, bill)
	assert.True(t, errors.Is(err, deduction.ErrTelephoneBillExists))

	bills, total, err := repo.List(ctx, deduction.ListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bills, 1)
	assert.Equal(t, "E400", bills[0].EmpNo)
}

func TestAttendanceRepository_Create_DuplicateShift(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(setup.DB)

	plantID := createPlant(t, ctx, setup, "Norochcholai")
	empID := createEmployee(t, ctx, setup, plantID, "E500", employee.UserTypeNonExecutive, "operator")
	rec := attendance.Record{
		PlantID:      plantID,
		EmployeeID:   empID,
		Date:         time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		Shift:        attendance.ShiftDay,
		InTime:       "07:00",
		OutTime:      "16:00",
		TotalHours:   decimal.NewFromInt(9),
		RegularHours: decimal.NewFromInt(8),
		OTHours:      decimal.NewFromInt(1),
		Status:       attendance.StatusPending,
	}

	_, err := repo.Create(ctx, rec)
	require.NoError(t, err)
	_, err = repo.Create(ctx, rec)
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)

	rec.Shift = attendance.ShiftNight
	_, err = repo.Create(ctx, rec)
	require.NoError(t, err)

	exec := attendance.ExecutiveRecord{
		PlantID:      plantID,
		EmployeeID:   empID,
		Date:         rec.Date,
		Shift:        attendance.ShiftDay,
		InTime:       "07:00",
		OutTime:      "16:00",
		TotalHours:   decimal.NewFromInt(9),
		RegularHours: decimal.NewFromInt(8),
		Status:       attendance.StatusPending,
	}
	_, err = repo.CreateExecutive(ctx, exec)
	require.NoError(t, err)
	_, err = repo.CreateExecutive(ctx, exec)
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
}
