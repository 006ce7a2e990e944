package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/leave"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	txManager    database.TxManager
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(txManager database.TxManager, leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		txManager:    txManager,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements leave.LeaveService. Leaves entered here are already
// approved and count toward reconciliation immediately.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	l := leave.Leave{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		Status:     leave.LeaveStatusApproved,
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ := validator.IsValidDate(*req.EndDate)
		l.EndDate = &end
	}

	var created leave.Leave
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		var err error
		created, err = s.leaveRepo.Create(ctx, l)
		if err != nil {
			return fmt.Errorf("failed to create leave: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave recorded", "leave_id", created.ID, "employee_id", created.EmployeeID, "start_date", start.Format(time.DateOnly))
	return leave.NewLeaveResponse(created), nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, leave.NewLeaveResponse(l))
	}
	return out, nil
}
