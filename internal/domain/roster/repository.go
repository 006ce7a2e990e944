package roster

import (
	"context"
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
)

// AssignmentFilter bounds the roster estimate; nil fields are open.
type AssignmentFilter struct {
	PlantID int64
	From    time.Time
	To      *time.Time
	Shift   *attendance.Shift
}

type RosterRepository interface {
	ListByPlantMonth(ctx context.Context, plantID int64, year, month int) ([]Roster, error)
	// FindID returns ErrRosterNotFound when the slot has no entry yet
	FindID(ctx context.Context, plantID int64, date time.Time, shift attendance.Shift) (int64, error)
	// Create inserts the roster row only; laborers are written by ReplaceLaborers
	Create(ctx context.Context, r Roster) (int64, error)
	UpdateSupervisor(ctx context.Context, rosterID int64, supervisorID *int64) error
	ReplaceLaborers(ctx context.Context, rosterID int64, laborerIDs []int64) error
	ListAssignments(ctx context.Context, filter AssignmentFilter) ([]Assignment, error)
	// ListLaborerShifts returns laborer slots of the month ordered by laborer name
	ListLaborerShifts(ctx context.Context, plantID int64, year, month int) ([]LaborerShift, error)
}
