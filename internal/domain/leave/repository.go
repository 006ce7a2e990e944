package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Leave, error)
	// ListApprovedOverlapping returns Approved leaves of the employees that touch [from, to]
	ListApprovedOverlapping(ctx context.Context, employeeIDs []int64, from, to time.Time) ([]Leave, error)
}
