package summary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

// PeriodRequest selects one plant month.
type PeriodRequest struct {
	PlantID int64
	Year    int
	Month   int
}

func (r *PeriodRequest) Validate() error {
	errs := validatePeriod(r.PlantID, r.Year, r.Month)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(plantID int64, year, month int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if plantID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "plant_id", Message: "is required"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is required"})
	}
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	return errs
}

type ReconcileRequest struct {
	EmployeeID int64
	Year       int
	Month      int
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReconciliationResponse struct {
	EmployeeID    int64 `json:"employee_id"`
	Year          int   `json:"year"`
	Month         int   `json:"month"`
	TotalWorkdays int   `json:"total_workdays"`
	DaysWorked    int   `json:"days_worked"`
	LeaveDays     int   `json:"leave_days"`
	NoPayDays     int   `json:"no_pay_days"`
}

// ExecutiveSummaryResponse is one computed row of the Executive review screen
type ExecutiveSummaryResponse struct {
	EmployeeID      int64  `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	PlantName       string `json:"plant_name"`
	TotalDaysWorked int    `json:"total_days_worked"`
	NoPayDays       int    `json:"no_pay_days"`
	HolidayClaims   int    `json:"holiday_claims"`
	LeaveDays       int    `json:"leave_days"`
}

// NonExecutiveSummaryResponse is one computed row of the NonExecutive review screen
type NonExecutiveSummaryResponse struct {
	EmployeeID      int64           `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	PlantName       string          `json:"plant_name"`
	TotalDaysWorked int             `json:"total_days_worked"`
	NoPayDays       int             `json:"no_pay_days"`
	Shift1          int             `json:"shift1"`
	Shift2          int             `json:"shift2"`
	Shift3          int             `json:"shift3"`
	OTHours         decimal.Decimal `json:"ot_hours"`
	DOTHours        int             `json:"dot_hours"`
	LeaveDays       int             `json:"leave_days"`
}

type ExecutiveSummaryRecord struct {
	EmployeeID      int64 `json:"employee_id"`
	TotalDaysWorked int   `json:"total_days_worked"`
	NoPayDays       int   `json:"no_pay_days"`
	HolidayClaims   int   `json:"holiday_claims"`
	LeaveDays       int   `json:"leave_days"`
}

type SaveExecutiveSummaryRequest struct {
	PlantID int64                    `json:"plant_id"`
	Year    int                      `json:"year"`
	Month   int                      `json:"month"`
	Records []ExecutiveSummaryRecord `json:"records"`
	// Set by the HTTP layer from the verified token
	ApprovedByID    int64  `json:"-"`
	ApprovedByEmail string `json:"-"`
}

func (r *SaveExecutiveSummaryRequest) Validate() error {
	errs := validatePeriod(r.PlantID, r.Year, r.Month)
	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "must contain at least one record"})
	}
	for i, rec := range r.Records {
		errs = append(errs, validateCounts(i, rec.EmployeeID, rec.TotalDaysWorked, rec.LeaveDays)...)
		if rec.HolidayClaims < 0 {
			errs = append(errs, recordError(i, "holiday_claims", "must not be negative"))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NonExecutiveSummaryRecord struct {
	EmployeeID      int64           `json:"employee_id"`
	TotalDaysWorked int             `json:"total_days_worked"`
	NoPayDays       int             `json:"no_pay_days"`
	OTHours         decimal.Decimal `json:"ot_hours"`
	DOTHours        int             `json:"dot_hours"`
	LeaveDays       int             `json:"leave_days"`
}

type SaveNonExecutiveSummaryRequest struct {
	PlantID int64                       `json:"plant_id"`
	Year    int                         `json:"year"`
	Month   int                         `json:"month"`
	Records []NonExecutiveSummaryRecord `json:"records"`
	// Set by the HTTP layer from the verified token
	ApprovedByID    int64  `json:"-"`
	ApprovedByEmail string `json:"-"`
}

func (r *SaveNonExecutiveSummaryRequest) Validate() error {
	errs := validatePeriod(r.PlantID, r.Year, r.Month)
	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "must contain at least one record"})
	}
	for i, rec := range r.Records {
		errs = append(errs, validateCounts(i, rec.EmployeeID, rec.TotalDaysWorked, rec.LeaveDays)...)
		if rec.OTHours.IsNegative() {
			errs = append(errs, recordError(i, "ot_hours", "must not be negative"))
		}
		if rec.DOTHours < 0 {
			errs = append(errs, recordError(i, "dot_hours", "must not be negative"))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FinalExecutiveInput struct {
	EmployeeID      int64           `json:"employee_id"`
	SalaryMonth     int             `json:"salary_month"`
	TotalDaysWorked int             `json:"total_days_worked"`
	NoPayDays       int             `json:"no_pay_days"`
	HolidayClaims   int             `json:"holiday_claims"`
	LeaveDays       int             `json:"leave_days"`
	SalaryArrears   decimal.Decimal `json:"salary_arrears"`
}

type ApproveFinalExecutiveRequest struct {
	PlantID int64                 `json:"plant_id"`
	Year    int                   `json:"year"`
	Month   int                   `json:"month"`
	Records []FinalExecutiveInput `json:"attendance_data"`
	// Set by the HTTP layer from the verified token
	ApprovedByID    int64  `json:"-"`
	ApprovedByEmail string `json:"-"`
}

func (r *ApproveFinalExecutiveRequest) Validate() error {
	errs := validatePeriod(r.PlantID, r.Year, r.Month)
	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "attendance_data", Message: "must contain at least one record"})
	}
	for i, rec := range r.Records {
		errs = append(errs, validateCounts(i, rec.EmployeeID, rec.TotalDaysWorked, rec.LeaveDays)...)
		errs = append(errs, validateFinal(i, rec.SalaryMonth, rec.SalaryArrears)...)
		if rec.HolidayClaims < 0 {
			errs = append(errs, recordError(i, "holiday_claims", "must not be negative"))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FinalNonExecutiveInput struct {
	EmployeeID    int64           `json:"employee_id"`
	SalaryMonth   int             `json:"salary_month"`
	Shift1        int             `json:"shift1"`
	Shift2        int             `json:"shift2"`
	Shift3        int             `json:"shift3"`
	OT            decimal.Decimal `json:"ot"`
	DOT           int             `json:"dot"`
	NoPayDays     int             `json:"no_pay_days"`
	LeaveDays     int             `json:"leave_days"`
	SalaryArrears decimal.Decimal `json:"salary_arrears"`
}

type ApproveFinalNonExecutiveRequest struct {
	PlantID int64                    `json:"plant_id"`
	Year    int                      `json:"year"`
	Month   int                      `json:"month"`
	Records []FinalNonExecutiveInput `json:"attendance_data"`
	// Set by the HTTP layer from the verified token
	ApprovedByID    int64  `json:"-"`
	ApprovedByEmail string `json:"-"`
}

func (r *ApproveFinalNonExecutiveRequest) Validate() error {
	errs := validatePeriod(r.PlantID, r.Year, r.Month)
	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "attendance_data", Message: "must contain at least one record"})
	}
	for i, rec := range r.Records {
		errs = append(errs, validateCounts(i, rec.EmployeeID, 0, rec.LeaveDays)...)
		errs = append(errs, validateFinal(i, rec.SalaryMonth, rec.SalaryArrears)...)
		if rec.Shift1 < 0 || rec.Shift2 < 0 || rec.Shift3 < 0 {
			errs = append(errs, recordError(i, "shifts", "must not be negative"))
		}
		if rec.OT.IsNegative() || rec.DOT < 0 {
			errs = append(errs, recordError(i, "ot", "must not be negative"))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateCounts(i int, employeeID int64, daysWorked, leaveDays int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if employeeID <= 0 {
		errs = append(errs, recordError(i, "employee_id", "is required"))
	}
	if daysWorked < 0 {
		errs = append(errs, recordError(i, "total_days_worked", "must not be negative"))
	}
	if leaveDays < 0 {
		errs = append(errs, recordError(i, "leave_days", "must not be negative"))
	}
	return errs
}

func validateFinal(i int, salaryMonth int, arrears decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(salaryMonth) {
		errs = append(errs, recordError(i, "salary_month", "valid salary month (1-12) is required"))
	}
	if arrears.IsNegative() {
		errs = append(errs, recordError(i, "salary_arrears", "must not be negative"))
	}
	return errs
}

func recordError(i int, field, message string) validator.ValidationError {
	return validator.ValidationError{Field: fmt.Sprintf("records[%d].%s", i, field), Message: message}
}

type FinalExecutiveResponse struct {
	EmployeeID      int64           `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	PlantName       string          `json:"plant_name"`
	TotalDaysWorked int             `json:"total_days_worked"`
	NoPayDays       int             `json:"no_pay_days"`
	HolidayClaims   int             `json:"holiday_claims"`
	LeaveDays       int             `json:"leave_days"`
	SalaryMonth     int             `json:"salary_month"`
	SalaryArrears   decimal.Decimal `json:"salary_arrears"`
	ApprovedAt      time.Time       `json:"approved_at"`
}

func NewFinalExecutiveResponse(r FinalExecutiveRecord) FinalExecutiveResponse {
	return FinalExecutiveResponse{
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		PlantName:       r.PlantName,
		TotalDaysWorked: r.TotalDaysWorked,
		NoPayDays:       r.NoPayDays,
		HolidayClaims:   r.HolidayClaims,
		LeaveDays:       r.LeaveDays,
		SalaryMonth:     r.SalaryMonth,
		SalaryArrears:   r.SalaryArrears,
		ApprovedAt:      r.ApprovedAt,
	}
}

type FinalNonExecutiveResponse struct {
	EmployeeID    int64           `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	PlantName     string          `json:"plant_name"`
	Shift1        int             `json:"shift1"`
	Shift2        int             `json:"shift2"`
	Shift3        int             `json:"shift3"`
	OT            decimal.Decimal `json:"ot"`
	DOT           int             `json:"dot"`
	NoPayDays     int             `json:"no_pay_days"`
	LeaveDays     int             `json:"leave_days"`
	SalaryMonth   int             `json:"salary_month"`
	SalaryArrears decimal.Decimal `json:"salary_arrears"`
	ApprovedAt    time.Time       `json:"approved_at"`
}

func NewFinalNonExecutiveResponse(r FinalNonExecutiveRecord) FinalNonExecutiveResponse {
	return FinalNonExecutiveResponse{
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		PlantName:     r.PlantName,
		Shift1:        r.Shift1,
		Shift2:        r.Shift2,
		Shift3:        r.Shift3,
		OT:            r.OT,
		DOT:           r.DOT,
		NoPayDays:     r.NoPayDays,
		LeaveDays:     r.LeaveDays,
		SalaryMonth:   r.SalaryMonth,
		SalaryArrears: r.SalaryArrears,
		ApprovedAt:    r.ApprovedAt,
	}
}
