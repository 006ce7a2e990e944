package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveResponse, error)
}
