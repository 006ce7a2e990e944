package leave

import "time"

type LeaveType string

const (
	LeaveTypeCasual  LeaveType = "Casual"
	LeaveTypeAnnual  LeaveType = "Annual"
	LeaveTypeMedical LeaveType = "Medical"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeCasual, LeaveTypeAnnual, LeaveTypeMedical:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// Leave is an inclusive date interval; a nil EndDate means a single day.
type Leave struct {
	ID         int64
	EmployeeID int64
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    *time.Time
	Status     LeaveStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LastDay returns the inclusive end of the interval.
func (l Leave) LastDay() time.Time {
	if l.EndDate == nil {
		return l.StartDate
	}
	return *l.EndDate
}
