package summary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reconciliation is one employee's month split into worked, leave and
// no-pay workdays. NoPayDays may be negative when the employee worked on
// days that are not workdays.
type Reconciliation struct {
	TotalWorkdays int
	DaysWorked    int
	LeaveDays     int
	NoPayDays     int
}

// ExecutiveSummary is a draft row of executive_summary_records.
type ExecutiveSummary struct {
	PlantID         int64
	EmployeeID      int64
	Year            int
	Month           int
	TotalDaysWorked int
	NoPayDays       int
	HolidayClaims   int
	LeaveDays       int
	ApprovedAt      time.Time
}

// NonExecutiveSummary is a draft row of non_executive_summary_records.
type NonExecutiveSummary struct {
	PlantID         int64
	EmployeeID      int64
	Year            int
	Month           int
	TotalDaysWorked int
	NoPayDays       int
	OTHours         decimal.Decimal
	DOTHours        int
	LeaveDays       int
	ApprovedAt      time.Time
}

// FinalExecutiveRecord is the approved month of an Executive that feeds the
// salary engine (final_attendance_records).
type FinalExecutiveRecord struct {
	PlantID         int64
	EmployeeID      int64
	Year            int
	Month           int
	SalaryMonth     int
	TotalDaysWorked int
	NoPayDays       int
	HolidayClaims   int
	LeaveDays       int
	SalaryArrears   decimal.Decimal
	ApprovedAt      time.Time

	// Joined fields
	EmployeeName string
	PlantName    string
}

// FinalNonExecutiveRecord is the approved month of a NonExecutive
// (non_executive_attendance_records). Shift1..Shift3 count Morning, Day and
// Night shifts.
type FinalNonExecutiveRecord struct {
	PlantID       int64
	EmployeeID    int64
	Year          int
	Month         int
	SalaryMonth   int
	Shift1        int
	Shift2        int
	Shift3        int
	OT            decimal.Decimal
	DOT           int
	NoPayDays     int
	LeaveDays     int
	SalaryArrears decimal.Decimal
	ApprovedAt    time.Time

	// Joined fields
	EmployeeName string
	PlantName    string
}
