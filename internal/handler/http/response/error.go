package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/auth"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/deduction"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/holiday"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/payroll"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/roster"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/excel"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPlantNotFound):
		NotFound(w, "Power plant not found")
	case errors.Is(err, employee.ErrEmployeeNotInPlant):
		NotFound(w, "Employee not found or not assigned to this plant")
	case errors.Is(err, employee.ErrNoExecutives):
		NotFound(w, "No executives found for this plant")
	case errors.Is(err, employee.ErrNoNonExecutives):
		NotFound(w, "No non-executives found for this plant")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "No holidays found")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, "A holiday already exists on this date")

	// Attendance and Excel upload errors
	case errors.Is(err, attendance.ErrNoRecordsProvided):
		BadRequest(w, "No attendance records provided", nil)
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance already recorded for this employee, date and shift")
	case errors.Is(err, excel.ErrInvalidWorkbook),
		errors.Is(err, excel.ErrEmptyWorkbook),
		errors.Is(err, excel.ErrMissingColumns):
		BadRequest(w, err.Error(), nil)

	// Deduction domain errors
	case errors.Is(err, deduction.ErrLoanNotFound):
		NotFound(w, "No loan found for this employee and month")
	case errors.Is(err, deduction.ErrTelephoneBillExists):
		Conflict(w, "Telephone bill already exists for this employee and month")
	case errors.Is(err, deduction.ErrInvalidDeductionMonth):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryAlreadyApproved):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrNoSalaryInputs):
		NotFound(w, "No employees found for this salary month")
	case errors.Is(err, payroll.ErrEmployeeNotInPayroll):
		BadRequest(w, err.Error(), nil)

	// Roster domain errors
	case errors.Is(err, roster.ErrRosterNotFound):
		NotFound(w, "Roster entry not found")
	case errors.Is(err, roster.ErrInvalidSupervisor):
		NotFound(w, "Supervisor not found or not assigned to this plant")
	case errors.Is(err, roster.ErrInvalidLaborers):
		NotFound(w, "One or more laborers not found or not assigned to this plant")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
