package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/leave"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

type fakeLeaveRepo struct {
	leaves []leave.Leave
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = int64(len(f.leaves) + 1)
	f.leaves = append(f.leaves, l)
	return l, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, employeeIDs []int64, from, to time.Time) ([]leave.Leave, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	ids map[int64]bool
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if !f.ids[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

type passthroughTx struct {
	calls int
}

func (t *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func TestLeaveService_Create(t *testing.T) {
	repo := &fakeLeaveRepo{}
	tx := &passthroughTx{}
	svc := NewLeaveService(tx, repo, &fakeEmployeeRepo{ids: map[int64]bool{3: true}})
	ctx := context.Background()
	end := "2024-03-28"

	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{EmployeeID: 3, LeaveType: "Annual", StartDate: "2024-03-27", EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, "Approved", resp.Status)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, "2024-03-28", *resp.EndDate)
	assert.Equal(t, 1, tx.calls)

	single, err := svc.Create(ctx, leave.CreateLeaveRequest{EmployeeID: 3, LeaveType: "Medical", StartDate: "2024-04-02"})
	require.NoError(t, err)
	assert.Nil(t, single.EndDate)

	list, err := svc.ListByEmployee(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLeaveService_Create_Errors(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(&passthroughTx{}, repo, &fakeEmployeeRepo{ids: map[int64]bool{3: true}})
	ctx := context.Background()

	_, err := svc.Create(ctx, leave.CreateLeaveRequest{EmployeeID: 42, LeaveType: "Casual", StartDate: "2024-03-27"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	before := "2024-03-20"
	_, err = svc.Create(ctx, leave.CreateLeaveRequest{EmployeeID: 3, LeaveType: "Sick", StartDate: "2024-03-27", EndDate: &before})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "leave_type")
	assert.Equal(t, "must be on or after start date", verrs.ToMap()["end_date"])

	assert.Empty(t, repo.leaves)

	_, err = svc.ListByEmployee(ctx, 42)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
