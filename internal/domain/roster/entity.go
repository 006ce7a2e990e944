package roster

import (
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
)

// Roster is the planned staffing of one plant shift, unique per
// (plant, date, shift).
type Roster struct {
	ID           int64
	PlantID      int64
	Date         time.Time
	Shift        attendance.Shift
	SupervisorID *int64
	LaborerIDs   []int64
}

// Assignment is one staffed slot of a roster row. Role is
// employee.RoleSupervisor or employee.RoleLaborer.
type Assignment struct {
	PlantName       string
	Date            time.Time
	Shift           attendance.Shift
	SupervisorID    *int64
	EmployeeID      int64
	EmployeeName    string
	Role            string
	IsPublicHoliday bool
}

// LaborerShift is one rostered shift of a laborer.
type LaborerShift struct {
	EmployeeID int64
	Name       string
	EmpNo      string
	Shift      attendance.Shift
}
