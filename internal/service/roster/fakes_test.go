package roster

import (
	"context"
	"errors"
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/roster"
)

var errStoreDown = errors.New("store unavailable")

type fakeRosterRepo struct {
	rosters     []roster.Roster
	assignments []roster.Assignment
	shifts      []roster.LaborerShift
	lastFilter  roster.AssignmentFilter
	replaceErr  error
}

func (f *fakeRosterRepo) ListByPlantMonth(ctx context.Context, plantID int64, year, month int) ([]roster.Roster, error) {
	var out []roster.Roster
	for _, r := range f.rosters {
		if r.PlantID == plantID && r.Date.Year() == year && int(r.Date.Month()) == month {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRosterRepo) FindID(ctx context.Context, plantID int64, date time.Time, shift attendance.Shift) (int64, error) {
	for _, r := range f.rosters {
		if r.PlantID == plantID && r.Date.Equal(date) && r.Shift == shift {
			return r.ID, nil
		}
	}
	return 0, roster.ErrRosterNotFound
}

func (f *fakeRosterRepo) Create(ctx context.Context, r roster.Roster) (int64, error) {
	r.ID = int64(len(f.rosters) + 1)
	r.LaborerIDs = nil
	f.rosters = append(f.rosters, r)
	return r.ID, nil
}

func (f *fakeRosterRepo) find(id int64) *roster.Roster {
	for i := range f.rosters {
		if f.rosters[i].ID == id {
			return &f.rosters[i]
		}
	}
	return nil
}

func (f *fakeRosterRepo) UpdateSupervisor(ctx context.Context, rosterID int64, supervisorID *int64) error {
	f.find(rosterID).SupervisorID = supervisorID
	return nil
}

func (f *fakeRosterRepo) ReplaceLaborers(ctx context.Context, rosterID int64, laborerIDs []int64) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.find(rosterID).LaborerIDs = append([]int64(nil), laborerIDs...)
	return nil
}

func (f *fakeRosterRepo) ListAssignments(ctx context.Context, filter roster.AssignmentFilter) ([]roster.Assignment, error) {
	f.lastFilter = filter
	return f.assignments, nil
}

func (f *fakeRosterRepo) ListLaborerShifts(ctx context.Context, plantID int64, year, month int) ([]roster.LaborerShift, error) {
	return f.shifts, nil
}

// fakeTx restores the roster store when fn fails.
type fakeTx struct {
	repo *fakeRosterRepo
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := make([]roster.Roster, len(t.repo.rosters))
	copy(snapshot, t.repo.rosters)
	if err := fn(ctx); err != nil {
		t.repo.rosters = snapshot
		return err
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmpNo(ctx context.Context, empNo string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetInPlant(ctx context.Context, id int64, plantID int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotInPlant
}

func (f *fakeEmployeeRepo) GetByEmpNoInPlant(ctx context.Context, empNo string, plantID int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotInPlant
}

func (f *fakeEmployeeRepo) ListByPlantAndType(ctx context.Context, plantID int64, userType employee.UserType) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListRosterStaff(ctx context.Context, plantID int64) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.PlantID != nil && *e.PlantID == plantID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) CountInPlantWithDesignation(ctx context.Context, ids []int64, plantID int64, designations []string) (int, error) {
	n := 0
	for _, id := range ids {
		for _, e := range f.employees {
			if e.ID != id || e.PlantID == nil || *e.PlantID != plantID || e.Designation == nil {
				continue
			}
			for _, d := range designations {
				if *e.Designation == d {
					n++
				}
			}
		}
	}
	return n, nil
}

type fakePlantRepo struct {
	plants []employee.Plant
}

func (f *fakePlantRepo) List(ctx context.Context) ([]employee.Plant, error) {
	return f.plants, nil
}

func (f *fakePlantRepo) GetByID(ctx context.Context, id int64) (employee.Plant, error) {
	for _, p := range f.plants {
		if p.ID == id {
			return p, nil
		}
	}
	return employee.Plant{}, employee.ErrPlantNotFound
}

func (f *fakePlantRepo) GetByName(ctx context.Context, name string) (employee.Plant, error) {
	for _, p := range f.plants {
		if p.Name == name {
			return p, nil
		}
	}
	return employee.Plant{}, employee.ErrPlantNotFound
}
