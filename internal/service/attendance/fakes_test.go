package attendance

import (
	"context"
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/holiday"
)

type fakeAttendanceRepo struct {
	records   []attendance.Record
	executive []attendance.ExecutiveRecord
	createErr error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	if f.createErr != nil {
		return attendance.Record{}, f.createErr
	}
	for _, e := range f.records {
		if e.EmployeeID == r.EmployeeID && e.Date.Equal(r.Date) && e.Shift == r.Shift {
			return attendance.Record{}, attendance.ErrDuplicateAttendance
		}
	}
	r.ID = int64(len(f.records) + 1)
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeAttendanceRepo) CreateExecutive(ctx context.Context, r attendance.ExecutiveRecord) (attendance.ExecutiveRecord, error) {
	if f.createErr != nil {
		return attendance.ExecutiveRecord{}, f.createErr
	}
	for _, e := range f.executive {
		if e.EmployeeID == r.EmployeeID && e.Date.Equal(r.Date) && e.Shift == r.Shift {
			return attendance.ExecutiveRecord{}, attendance.ErrDuplicateAttendance
		}
	}
	r.ID = int64(len(f.executive) + 1)
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
	return nil, nil
}

func (f *fakeAttendanceRepo) ListExecutiveWorkedDates(ctx context.Context, employeeID int64, from, to time.Time) ([]time.Time, error) {
	return nil, nil
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
	for _, e := range f.employees {
		if e.EmpNo == empNo {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetInPlant(ctx context.Context, id int64, plantID int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.PlantID != nil && *e.PlantID == plantID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotInPlant
}

func (f *fakeEmployeeRepo) GetByEmpNoInPlant(ctx context.Context, empNo string, plantID int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmpNo == empNo && e.PlantID != nil && *e.PlantID == plantID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotInPlant
}

func (f *fakeEmployeeRepo) ListByPlantAndType(ctx context.Context, plantID int64, userType employee.UserType) ([]employee.Employee, error) {
	return nil, nil
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
	for _, p := range f.plants {
		if p.Name == name {
			return p, nil
		}
	}
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
	return f.public, nil
}

func (f *fakeHolidayRepo) IsPublicHoliday(ctx context.Context, date time.Time) (bool, error) {
	for _, d := range f.public {
		if d.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}
