package summary

import (
	"context"
	"errors"
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/holiday"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/leave"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/summary"
)

var errStoreDown = errors.New("store unavailable")

type draftKey struct {
	plantID, employeeID int64
	year, month         int
}

type fakeSummaryRepo struct {
	executiveDrafts    map[draftKey]summary.ExecutiveSummary
	nonExecutiveDrafts map[draftKey]summary.NonExecutiveSummary
	finalExecutive     map[draftKey]summary.FinalExecutiveRecord
	finalNonExecutive  map[draftKey]summary.FinalNonExecutiveRecord
	failOnEmployee     int64
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{
		executiveDrafts:    map[draftKey]summary.ExecutiveSummary{},
		nonExecutiveDrafts: map[draftKey]summary.NonExecutiveSummary{},
		finalExecutive:     map[draftKey]summary.FinalExecutiveRecord{},
		finalNonExecutive:  map[draftKey]summary.FinalNonExecutiveRecord{},
	}
}

func (f *fakeSummaryRepo) clone() *fakeSummaryRepo {
	c := newFakeSummaryRepo()
	c.failOnEmployee = f.failOnEmployee
	for k, v := range f.executiveDrafts {
		c.executiveDrafts[k] = v
	}
	for k, v := range f.nonExecutiveDrafts {
		c.nonExecutiveDrafts[k] = v
	}
	for k, v := range f.finalExecutive {
		c.finalExecutive[k] = v
	}
	for k, v := range f.finalNonExecutive {
		c.finalNonExecutive[k] = v
	}
	return c
}

func (f *fakeSummaryRepo) UpsertExecutiveDraft(ctx context.Context, s summary.ExecutiveSummary) error {
	if s.EmployeeID == f.failOnEmployee {
		return errStoreDown
	}
	f.executiveDrafts[draftKey{s.PlantID, s.EmployeeID, s.Year, s.Month}] = s
	return nil
}

func (f *fakeSummaryRepo) UpsertNonExecutiveDraft(ctx context.Context, s summary.NonExecutiveSummary) error {
	if s.EmployeeID == f.failOnEmployee {
		return errStoreDown
	}
	f.nonExecutiveDrafts[draftKey{s.PlantID, s.EmployeeID, s.Year, s.Month}] = s
	return nil
}

func (f *fakeSummaryRepo) UpsertFinalExecutive(ctx context.Context, r summary.FinalExecutiveRecord) error {
	if r.EmployeeID == f.failOnEmployee {
		return errStoreDown
	}
	f.finalExecutive[draftKey{r.PlantID, r.EmployeeID, r.Year, r.Month}] = r
	return nil
}

func (f *fakeSummaryRepo) UpsertFinalNonExecutive(ctx context.Context, r summary.FinalNonExecutiveRecord) error {
	if r.EmployeeID == f.failOnEmployee {
		return errStoreDown
	}
	f.finalNonExecutive[draftKey{r.PlantID, r.EmployeeID, r.Year, r.Month}] = r
	return nil
}

func (f *fakeSummaryRepo) ListFinalExecutive(ctx context.Context, plantID int64, year, month int) ([]summary.FinalExecutiveRecord, error) {
	var out []summary.FinalExecutiveRecord
	for k, v := range f.finalExecutive {
		if k.plantID == plantID && k.year == year && k.month == month {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeSummaryRepo) ListFinalNonExecutive(ctx context.Context, plantID int64, year, month int) ([]summary.FinalNonExecutiveRecord, error) {
	var out []summary.FinalNonExecutiveRecord
	for k, v := range f.finalNonExecutive {
		if k.plantID == plantID && k.year == year && k.month == month {
			out = append(out, v)
		}
	}
	return out, nil
}

// fakeTx restores the summary store when fn fails, like a rolled back transaction.
type fakeTx struct {
	repo *fakeSummaryRepo
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := t.repo.clone()
	if err := fn(ctx); err != nil {
		*t.repo = *snapshot
		return err
	}
	return nil
}

type fakeAttendanceRepo struct {
	records   []attendance.Record
	executive []attendance.ExecutiveRecord
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeAttendanceRepo) CreateExecutive(ctx context.Context, r attendance.ExecutiveRecord) (attendance.ExecutiveRecord, error) {
	f.executive = append(f.executive, r)
	return r, nil
}

func (f *fakeAttendanceRepo) ListByPlantBetween(ctx context.Context, plantID int64, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.PlantID == plantID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListExecutiveByPlantBetween(ctx context.Context, plantID int64, from, to time.Time) ([]attendance.ExecutiveRecord, error) {
	var out []attendance.ExecutiveRecord
	for _, r := range f.executive {
		if r.PlantID == plantID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListWorkedDates(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r.Date)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListExecutiveWorkedDates(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, r := range f.executive {
		if r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r.Date)
		}
	}
	return out, nil
}

type fakeLeaveRepo struct {
	leaves []leave.Leave
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	f.leaves = append(f.leaves, l)
	return l, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, employeeIDs []int64, from, to time.Time) ([]leave.Leave, error) {
	wanted := make(map[int64]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		wanted[id] = true
	}
	var out []leave.Leave
	for _, l := range f.leaves {
		if wanted[l.EmployeeID] && l.Status == leave.LeaveStatusApproved &&
			!l.StartDate.After(to) && !l.LastDay().Before(from) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
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
	var out []employee.Employee
	for _, e := range f.employees {
		if e.PlantID != nil && *e.PlantID == plantID && e.UserType == userType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListRosterStaff(ctx context.Context, plantID int64) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) CountInPlantWithDesignation(ctx context.Context, ids []int64, plantID int64, designations []string) (int, error) {
	return 0, nil
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
	return employee.Plant{}, employee.ErrPlantNotFound
}

type fakeHolidayRepo struct {
	public []time.Time
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *fakeHolidayRepo) List(ctx context.Context, year *int) ([]holiday.Holiday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) ListPublicBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, d := range f.public {
		if !d.Before(from) && !d.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) IsPublicHoliday(ctx context.Context, date time.Time) (bool, error) {
	for _, d := range f.public {
		if d.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}
