package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

// Excel column sets accepted by the attendance uploads
var ImportColumns = []string{"emp_no", "name", "plant", "shift", "in_time", "out_time", "date"}

type CreateAttendanceRequest struct {
	PlantID    int64  `json:"plant_id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Shift      string `json:"shift"`
	InTime     string `json:"in_time"`
	OutTime    string `json:"out_time"`
	Status     string `json:"status,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PlantID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "plant_id", Message: "is required"})
	}
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !Shift(r.Shift).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be one of Morning, Day, Night"})
	}
	if !validator.IsValidClock(r.InTime) {
		errs = append(errs, validator.ValidationError{Field: "in_time", Message: "must be in HH:MM format"})
	}
	if !validator.IsValidClock(r.OutTime) {
		errs = append(errs, validator.ValidationError{Field: "out_time", Message: "must be in HH:MM format"})
	}
	if r.Status != "" && !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of Pending, Approved, Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	if r.Status == "" {
		r.Status = string(StatusPending)
	}
	return nil
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

// ImportRowResult reports one stored row of a bulk or Excel import
type ImportRowResult struct {
	Row          int    `json:"row,omitempty"`
	EmpNo        string `json:"emp_no,omitempty"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	AttendanceID int64  `json:"attendance_id"`
	Message      string `json:"message"`
}

// ImportResponse carries both the stored rows and the per-row failures
type ImportResponse struct {
	BatchID string            `json:"batch_id"`
	Results []ImportRowResult `json:"results"`
	Errors  []string          `json:"errors,omitempty"`
}

type SummaryRequest struct {
	PlantID int64
	Year    int
	Month   int
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PlantID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "plant_id", Message: "is required"})
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

// SummaryResponse aggregates one NonExecutive employee's shift rows for a month
type SummaryResponse struct {
	EmployeeID        int64           `json:"employee_id"`
	EmployeeName      string          `json:"employee_name"`
	PlantName         string          `json:"plant_name"`
	TotalShifts       int             `json:"total_shifts"`
	TotalHours        decimal.Decimal `json:"total_hours"`
	TotalOTHours      decimal.Decimal `json:"total_ot_hours"`
	TotalDOT          int             `json:"total_dot"`
	MorningShifts     int             `json:"morning_shifts"`
	DayShifts         int             `json:"day_shifts"`
	NightShifts       int             `json:"night_shifts"`
	TotalPayableHours decimal.Decimal `json:"total_payable_hours"`
	HolidayHours      decimal.Decimal `json:"holiday_hours"`
	Status            string          `json:"status"`
}

// ExecutiveSummaryResponse aggregates one Executive's shift rows for a month
type ExecutiveSummaryResponse struct {
	EmployeeID          int64           `json:"employee_id"`
	EmployeeName        string          `json:"employee_name"`
	PlantName           string          `json:"plant_name"`
	TotalShifts         int             `json:"total_shifts"`
	TotalHours          decimal.Decimal `json:"total_hours"`
	TotalHolidayPayDays int             `json:"total_holiday_pay_days"`
	MorningShifts       int             `json:"morning_shifts"`
	DayShifts           int             `json:"day_shifts"`
	NightShifts         int             `json:"night_shifts"`
	TotalPayableHours   decimal.Decimal `json:"total_payable_hours"`
	HolidayHours        decimal.Decimal `json:"holiday_hours"`
	Status              string          `json:"status"`
}
