package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/roster"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
	attendancesvc "github.com/vilochanaudantha15/hris-backend/internal/service/attendance"
)

type RosterServiceImpl struct {
	txManager    database.TxManager
	rosterRepo   roster.RosterRepository
	employeeRepo employee.EmployeeRepository
	plantRepo    employee.PlantRepository
}

func NewRosterService(
	txManager database.TxManager,
	rosterRepo roster.RosterRepository,
	employeeRepo employee.EmployeeRepository,
	plantRepo employee.PlantRepository,
) roster.RosterService {
	return &RosterServiceImpl{
		txManager:    txManager,
		rosterRepo:   rosterRepo,
		employeeRepo: employeeRepo,
		plantRepo:    plantRepo,
	}
}

// ListPlantNames implements roster.RosterService.
func (s *RosterServiceImpl) ListPlantNames(ctx context.Context) ([]string, error) {
	plants, err := s.plantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(plants))
	for _, p := range plants {
		names = append(names, p.Name)
	}
	return names, nil
}

// ListStaff implements roster.RosterService.
func (s *RosterServiceImpl) ListStaff(ctx context.Context, plantName string) ([]roster.StaffResponse, error) {
	if validator.IsEmpty(plantName) {
		return nil, validator.ValidationErrors{{Field: "plant", Message: "is required"}}
	}
	plant, err := s.plantRepo.GetByName(ctx, plantName)
	if err != nil {
		return nil, err
	}

	staff, err := s.employeeRepo.ListRosterStaff(ctx, plant.ID)
	if err != nil {
		return nil, err
	}
	out := make([]roster.StaffResponse, 0, len(staff))
	for _, e := range staff {
		out = append(out, roster.StaffResponse{ID: e.ID, Name: e.Name, EmpNo: e.EmpNo, Role: e.RosterRole()})
	}
	return out, nil
}

// List implements roster.RosterService.
func (s *RosterServiceImpl) List(ctx context.Context, req roster.ListRosterRequest) ([]roster.RosterResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	plant, err := s.plantRepo.GetByName(ctx, req.Plant)
	if err != nil {
		return nil, err
	}

	rosters, err := s.rosterRepo.ListByPlantMonth(ctx, plant.ID, req.Year, req.Month)
	if err != nil {
		return nil, err
	}
	out := make([]roster.RosterResponse, 0, len(rosters))
	for _, r := range rosters {
		out = append(out, roster.NewRosterResponse(r))
	}
	return out, nil
}

// Upsert implements roster.RosterService. The supervisor is replaced and the
// laborer set rewritten when the slot already has an entry.
func (s *RosterServiceImpl) Upsert(ctx context.Context, req roster.UpsertRosterRequest) (roster.RosterResponse, error) {
	if err := req.Validate(); err != nil {
		return roster.RosterResponse{}, err
	}
	plant, err := s.plantRepo.GetByName(ctx, req.Plant)
	if err != nil {
		return roster.RosterResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	if req.Supervisor != nil {
		n, err := s.employeeRepo.CountInPlantWithDesignation(ctx, []int64{*req.Supervisor}, plant.ID, employee.SupervisorDesignations)
		if err != nil {
			return roster.RosterResponse{}, err
		}
		if n != 1 {
			return roster.RosterResponse{}, roster.ErrInvalidSupervisor
		}
	}
	if len(req.Laborers) > 0 {
		n, err := s.employeeRepo.CountInPlantWithDesignation(ctx, req.Laborers, plant.ID, []string{employee.DesignationLaborer})
		if err != nil {
			return roster.RosterResponse{}, err
		}
		if n != len(req.Laborers) {
			return roster.RosterResponse{}, roster.ErrInvalidLaborers
		}
	}

	entry := roster.Roster{
		PlantID:      plant.ID,
		Date:         date,
		Shift:        attendance.Shift(req.Shift),
		SupervisorID: req.Supervisor,
		LaborerIDs:   req.Laborers,
	}
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		id, err := s.rosterRepo.FindID(ctx, entry.PlantID, entry.Date, entry.Shift)
		switch {
		case errors.Is(err, roster.ErrRosterNotFound):
			if id, err = s.rosterRepo.Create(ctx, entry); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := s.rosterRepo.UpdateSupervisor(ctx, id, entry.SupervisorID); err != nil {
				return err
			}
		}
		entry.ID = id
		return s.rosterRepo.ReplaceLaborers(ctx, id, entry.LaborerIDs)
	})
	if err != nil {
		return roster.RosterResponse{}, fmt.Errorf("failed to save roster: %w", err)
	}

	slog.Info("Roster saved", "roster_id", entry.ID, "plant", plant.Name, "date", req.Date, "shift", req.Shift, "laborers", len(req.Laborers))
	return roster.NewRosterResponse(entry), nil
}

type estimateTally struct {
	resp    roster.EstimateResponse
	regular decimal.Decimal
}

// Estimate implements roster.RosterService. Every rostered slot is paid the
// nominal hours of its shift.
func (s *RosterServiceImpl) Estimate(ctx context.Context, req roster.EstimateRequest) ([]roster.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.plantRepo.GetByID(ctx, req.PlantID); err != nil {
		return nil, err
	}

	assignments, err := s.rosterRepo.ListAssignments(ctx, req.Filter())
	if err != nil {
		return nil, err
	}

	var order []int64
	tallies := make(map[int64]*estimateTally)
	for _, a := range assignments {
		t, ok := tallies[a.EmployeeID]
		if !ok {
			t = &estimateTally{resp: roster.EstimateResponse{
				EmployeeID:   a.EmployeeID,
				EmployeeName: a.EmployeeName,
				PlantName:    a.PlantName,
				Role:         a.Role,
				TotalHours:   decimal.Zero,
				TotalOTHours: decimal.Zero,
			}}
			if a.SupervisorID != nil {
				t.resp.SupervisorID = *a.SupervisorID
			}
			tallies[a.EmployeeID] = t
			order = append(order, a.EmployeeID)
		}

		h := attendancesvc.ShiftHours(a.Shift)
		ot, dot := attendancesvc.PremiumOT(h, a.IsPublicHoliday)

		t.resp.TotalShifts++
		t.resp.TotalHours = t.resp.TotalHours.Add(h.Total)
		t.resp.TotalOTHours = t.resp.TotalOTHours.Add(ot)
		t.resp.TotalDOT += dot
		t.regular = t.regular.Add(h.Regular)
		switch a.Shift {
		case attendance.ShiftMorning:
			t.resp.MorningShifts++
		case attendance.ShiftDay:
			t.resp.DayShifts++
		case attendance.ShiftNight:
			t.resp.NightShifts++
		}
	}

	out := make([]roster.EstimateResponse, 0, len(order))
	for _, id := range order {
		t := tallies[id]
		t.resp.TotalPayableHours = t.regular.Add(t.resp.TotalOTHours)
		out = append(out, t.resp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].Role == employee.RoleSupervisor, out[j].Role == employee.RoleSupervisor
		if si != sj {
			return si
		}
		return out[i].SupervisorID < out[j].SupervisorID
	})
	return out, nil
}

// LaborerHours implements roster.RosterService.
func (s *RosterServiceImpl) LaborerHours(ctx context.Context, req roster.ListRosterRequest) ([]roster.LaborerHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	plant, err := s.plantRepo.GetByName(ctx, req.Plant)
	if err != nil {
		return nil, err
	}

	shifts, err := s.rosterRepo.ListLaborerShifts(ctx, plant.ID, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	out := []roster.LaborerHoursResponse{}
	index := make(map[int64]int)
	for _, sh := range shifts {
		i, ok := index[sh.EmployeeID]
		if !ok {
			i = len(out)
			index[sh.EmployeeID] = i
			out = append(out, roster.LaborerHoursResponse{ID: sh.EmployeeID, Name: sh.Name, EmpNo: sh.EmpNo})
		}
		out[i].TotalHours += sh.Shift.NominalHours()
	}
	return out, nil
}
