package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, r Record) (Record, error)
	CreateExecutive(ctx context.Context, r ExecutiveRecord) (ExecutiveRecord, error)
	// ListByPlantBetween returns rows in [from, to] ordered by employee name, employee id and date
	ListByPlantBetween(ctx context.Context, plantID int64, from, to time.Time) ([]Record, error)
	ListExecutiveByPlantBetween(ctx context.Context, plantID int64, from, to time.Time) ([]ExecutiveRecord, error)
	// ListWorkedDates returns the distinct dates an employee has a shift row in [from, to]
	ListWorkedDates(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error)
	ListExecutiveWorkedDates(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error)
}
