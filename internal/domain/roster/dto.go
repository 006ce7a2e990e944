package roster

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

// ShiftAll disables the shift filter of the estimate.
const ShiftAll = "all"

type ListRosterRequest struct {
	Plant string
	Year  int
	Month int
}

func (r *ListRosterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Plant = strings.TrimSpace(r.Plant)
	if r.Plant == "" {
		errs = append(errs, validator.ValidationError{Field: "plant", Message: "is required"})
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

type UpsertRosterRequest struct {
	Plant      string  `json:"plant"`
	Date       string  `json:"date"`
	Shift      string  `json:"shift"`
	Supervisor *int64  `json:"supervisor"`
	Laborers   []int64 `json:"laborers"`
}

func (r *UpsertRosterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Plant = strings.TrimSpace(r.Plant)
	r.Shift = strings.TrimSpace(r.Shift)
	if r.Plant == "" {
		errs = append(errs, validator.ValidationError{Field: "plant", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !attendance.Shift(r.Shift).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be one of Morning, Day, Night"})
	}
	if r.Supervisor != nil && *r.Supervisor <= 0 {
		errs = append(errs, validator.ValidationError{Field: "supervisor", Message: "must be a valid employee id"})
	}
	seen := make(map[int64]bool, len(r.Laborers))
	for _, id := range r.Laborers {
		if id <= 0 {
			errs = append(errs, validator.ValidationError{Field: "laborers", Message: "must contain valid employee ids"})
			break
		}
		if seen[id] {
			errs = append(errs, validator.ValidationError{Field: "laborers", Message: "must not repeat an employee"})
			break
		}
		seen[id] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EstimateRequest struct {
	PlantID   int64
	StartDate string
	EndDate   string
	Shift     string
}

func (r *EstimateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PlantID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "plant_id", Message: "is required"})
	}
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.EndDate != "" {
		end, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
		} else if ok && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be on or after start date"})
		}
	}
	if r.Shift != "" && r.Shift != ShiftAll && !attendance.Shift(r.Shift).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be one of Morning, Day, Night, all"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter converts a validated request into repository bounds.
func (r EstimateRequest) Filter() AssignmentFilter {
	f := AssignmentFilter{PlantID: r.PlantID}
	f.From, _ = validator.IsValidDate(r.StartDate)
	if end, ok := validator.IsValidDate(r.EndDate); ok {
		f.To = &end
	}
	if r.Shift != "" && r.Shift != ShiftAll {
		s := attendance.Shift(r.Shift)
		f.Shift = &s
	}
	return f
}

type RosterResponse struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	Shift      string  `json:"shift"`
	Supervisor *int64  `json:"supervisor"`
	Laborers   []int64 `json:"laborers"`
}

func NewRosterResponse(r Roster) RosterResponse {
	laborers := r.LaborerIDs
	if laborers == nil {
		laborers = []int64{}
	}
	return RosterResponse{
		ID:         r.ID,
		Date:       r.Date.Format("2006-01-02"),
		Shift:      string(r.Shift),
		Supervisor: r.SupervisorID,
		Laborers:   laborers,
	}
}

type StaffResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	EmpNo string `json:"emp_no"`
	Role  string `json:"role"`
}

// EstimateResponse is one employee's roster-based attendance estimate
type EstimateResponse struct {
	EmployeeID        int64           `json:"employee_id"`
	EmployeeName      string          `json:"employee_name"`
	PlantName         string          `json:"plant_name"`
	Role              string          `json:"role"`
	SupervisorID      int64           `json:"supervisor_id"`
	TotalShifts       int             `json:"total_shifts"`
	TotalHours        decimal.Decimal `json:"total_hours"`
	TotalOTHours      decimal.Decimal `json:"total_ot_hours"`
	TotalDOT          int             `json:"total_dot"`
	MorningShifts     int             `json:"morning_shifts"`
	DayShifts         int             `json:"day_shifts"`
	NightShifts       int             `json:"night_shifts"`
	TotalPayableHours decimal.Decimal `json:"total_payable_hours"`
}

type LaborerHoursResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	EmpNo      string `json:"emp_no"`
	TotalHours int    `json:"total_hours"`
}
