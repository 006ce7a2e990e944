package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftDay     Shift = "Day"
	ShiftNight   Shift = "Night"
)

func (s Shift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftDay, ShiftNight:
		return true
	}
	return false
}

// Window returns the nominal in and out clock times of the shift.
// Night ends at midnight of the following day.
func (s Shift) Window() (in, out string) {
	switch s {
	case ShiftMorning:
		return "00:00", "07:00"
	case ShiftDay:
		return "07:00", "16:00"
	case ShiftNight:
		return "16:00", "00:00"
	}
	return "", ""
}

// NominalHours is the rostered length used for laborer hour estimates.
func (s Shift) NominalHours() int {
	switch s {
	case ShiftMorning:
		return 7
	case ShiftDay:
		return 9
	case ShiftNight:
		return 8
	}
	return 0
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Hours is the breakdown of one shift instance.
type Hours struct {
	Total   decimal.Decimal
	Regular decimal.Decimal
	OT      decimal.Decimal
}

// Record is a NonExecutive or laborer shift row (attendance_records).
// OTHours already carries the public-holiday doubling and DOTHours is 1 on
// a public holiday.
type Record struct {
	ID           int64
	PlantID      int64
	EmployeeID   int64
	EmployeeName string
	Date         time.Time
	Shift        Shift
	InTime       string
	OutTime      string
	TotalHours   decimal.Decimal
	RegularHours decimal.Decimal
	OTHours      decimal.Decimal
	DOTHours     int
	Status       Status
	CreatedAt    time.Time

	// Joined fields
	PlantName *string
}

// ExecutiveRecord is an Executive shift row (executive_attendance_records).
// Only regular hours are paid; HolidayPay marks a public holiday or Sunday.
type ExecutiveRecord struct {
	ID           int64
	PlantID      int64
	EmployeeID   int64
	EmployeeName string
	Date         time.Time
	Shift        Shift
	InTime       string
	OutTime      string
	TotalHours   decimal.Decimal
	RegularHours decimal.Decimal
	HolidayPay   bool
	Status       Status
	CreatedAt    time.Time

	// Joined fields
	PlantName *string
}
