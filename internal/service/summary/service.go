package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/leave"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/summary"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
	"github.com/vilochanaudantha15/hris-backend/internal/service/calendar"
)

type SummaryServiceImpl struct {
	txManager      database.TxManager
	summaryRepo    summary.SummaryRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	employeeRepo   employee.EmployeeRepository
	plantRepo      employee.PlantRepository
	calendar       *calendar.Resolver
	clampNoPay     bool
	now            func() time.Time
}

func NewSummaryService(
	txManager database.TxManager,
	summaryRepo summary.SummaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	plantRepo employee.PlantRepository,
	resolver *calendar.Resolver,
	clampNegativeNoPay bool,
) summary.SummaryService {
	return &SummaryServiceImpl{
		txManager:      txManager,
		summaryRepo:    summaryRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		plantRepo:      plantRepo,
		calendar:       resolver,
		clampNoPay:     clampNegativeNoPay,
		now:            time.Now,
	}
}

// period loads what every review of a plant month needs: the plant, the
// calendar, the employees of one user type and their approved leaves.
type period struct {
	plant     employee.Plant
	month     calendar.Month
	employees []employee.Employee
	leaves    map[int64][]leave.Leave
}

func (s *SummaryServiceImpl) loadPeriod(ctx context.Context, req summary.PeriodRequest, userType employee.UserType) (period, error) {
	var p period

	plant, err := s.plantRepo.GetByID(ctx, req.PlantID)
	if err != nil {
		return p, err
	}
	p.plant = plant

	p.month, err = s.calendar.Month(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return p, err
	}

	p.employees, err = s.employeeRepo.ListByPlantAndType(ctx, plant.ID, userType)
	if err != nil {
		return p, fmt.Errorf("failed to list %s employees: %w", userType, err)
	}

	p.leaves = make(map[int64][]leave.Leave)
	if len(p.employees) == 0 {
		return p, nil
	}
	ids := make([]int64, len(p.employees))
	for i, e := range p.employees {
		ids[i] = e.ID
	}
	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, ids, p.month.Start, p.month.End)
	if err != nil {
		return p, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	for _, l := range leaves {
		p.leaves[l.EmployeeID] = append(p.leaves[l.EmployeeID], l)
	}
	return p, nil
}

// ExecutiveSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) ExecutiveSummary(ctx context.Context, req summary.PeriodRequest) ([]summary.ExecutiveSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.loadPeriod(ctx, req, employee.UserTypeExecutive)
	if err != nil {
		return nil, err
	}

	rows, err := s.attendanceRepo.ListExecutiveByPlantBetween(ctx, p.plant.ID, p.month.Start, p.month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list executive attendance: %w", err)
	}
	worked := make(map[int64][]time.Time)
	for _, r := range rows {
		worked[r.EmployeeID] = append(worked[r.EmployeeID], r.Date)
	}

	out := make([]summary.ExecutiveSummaryResponse, 0, len(p.employees))
	for _, e := range p.employees {
		rec := Reconcile(p.month, worked[e.ID], p.leaves[e.ID], s.clampNoPay)
		out = append(out, summary.ExecutiveSummaryResponse{
			EmployeeID:      e.ID,
			EmployeeName:    e.Name,
			PlantName:       p.plant.Name,
			TotalDaysWorked: rec.DaysWorked,
			NoPayDays:       rec.NoPayDays,
			HolidayClaims:   HolidayClaims(p.month, worked[e.ID]),
			LeaveDays:       rec.LeaveDays,
		})
	}
	return out, nil
}

// nonExecutiveTally accumulates the shift rows of one employee.
type nonExecutiveTally struct {
	dates   []time.Time
	shifts  map[attendance.Shift]int
	otHours decimal.Decimal
	dot     int
}

// NonExecutiveSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) NonExecutiveSummary(ctx context.Context, req summary.PeriodRequest) ([]summary.NonExecutiveSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.loadPeriod(ctx, req, employee.UserTypeNonExecutive)
	if err != nil {
		return nil, err
	}

	rows, err := s.attendanceRepo.ListByPlantBetween(ctx, p.plant.ID, p.month.Start, p.month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	tallies := make(map[int64]*nonExecutiveTally)
	for _, r := range rows {
		t, ok := tallies[r.EmployeeID]
		if !ok {
			t = &nonExecutiveTally{shifts: make(map[attendance.Shift]int)}
			tallies[r.EmployeeID] = t
		}
		t.dates = append(t.dates, r.Date)
		t.shifts[r.Shift]++
		t.otHours = t.otHours.Add(r.OTHours)
		t.dot += r.DOTHours
	}

	out := make([]summary.NonExecutiveSummaryResponse, 0, len(p.employees))
	for _, e := range p.employees {
		t, ok := tallies[e.ID]
		if !ok {
			t = &nonExecutiveTally{shifts: map[attendance.Shift]int{}}
		}
		rec := Reconcile(p.month, t.dates, p.leaves[e.ID], s.clampNoPay)
		out = append(out, summary.NonExecutiveSummaryResponse{
			EmployeeID:      e.ID,
			EmployeeName:    e.Name,
			PlantName:       p.plant.Name,
			TotalDaysWorked: rec.DaysWorked,
			NoPayDays:       rec.NoPayDays,
			Shift1:          t.shifts[attendance.ShiftMorning],
			Shift2:          t.shifts[attendance.ShiftDay],
			Shift3:          t.shifts[attendance.ShiftNight],
			OTHours:         t.otHours.Round(2),
			DOTHours:        t.dot,
			LeaveDays:       rec.LeaveDays,
		})
	}
	return out, nil
}

// Reconcile implements summary.SummaryService.
func (s *SummaryServiceImpl) Reconcile(ctx context.Context, req summary.ReconcileRequest) (summary.ReconciliationResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.ReconciliationResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return summary.ReconciliationResponse{}, err
	}

	month, err := s.calendar.Month(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return summary.ReconciliationResponse{}, err
	}

	var worked []time.Time
	if emp.UserType == employee.UserTypeExecutive {
		worked, err = s.attendanceRepo.ListExecutiveWorkedDates(ctx, emp.ID, month.Start, month.End)
	} else {
		worked, err = s.attendanceRepo.ListWorkedDates(ctx, emp.ID, month.Start, month.End)
	}
	if err != nil {
		return summary.ReconciliationResponse{}, fmt.Errorf("failed to list worked dates: %w", err)
	}

	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, []int64{emp.ID}, month.Start, month.End)
	if err != nil {
		return summary.ReconciliationResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	rec := Reconcile(month, worked, leaves, s.clampNoPay)
	return summary.ReconciliationResponse{
		EmployeeID:    emp.ID,
		Year:          req.Year,
		Month:         req.Month,
		TotalWorkdays: rec.TotalWorkdays,
		DaysWorked:    rec.DaysWorked,
		LeaveDays:     rec.LeaveDays,
		NoPayDays:     rec.NoPayDays,
	}, nil
}

// SaveExecutiveSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) SaveExecutiveSummary(ctx context.Context, req summary.SaveExecutiveSummaryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.plantRepo.GetByID(ctx, req.PlantID); err != nil {
		return err
	}

	approvedAt := s.now()
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		for _, rec := range req.Records {
			row := summary.ExecutiveSummary{
				PlantID:         req.PlantID,
				EmployeeID:      rec.EmployeeID,
				Year:            req.Year,
				Month:           req.Month,
				TotalDaysWorked: rec.TotalDaysWorked,
				NoPayDays:       rec.NoPayDays,
				HolidayClaims:   rec.HolidayClaims,
				LeaveDays:       rec.LeaveDays,
				ApprovedAt:      approvedAt,
			}
			if err := s.summaryRepo.UpsertExecutiveDraft(ctx, row); err != nil {
				return fmt.Errorf("failed to save summary for employee %d: %w", rec.EmployeeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Approval batch committed", "stage", "executive_draft", "plant_id", req.PlantID, "year", req.Year, "month", req.Month, "records", len(req.Records), "approved_by_id", req.ApprovedByID, "approved_by_email", req.ApprovedByEmail)
	return nil
}

// SaveNonExecutiveSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) SaveNonExecutiveSummary(ctx context.Context, req summary.SaveNonExecutiveSummaryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.plantRepo.GetByID(ctx, req.PlantID); err != nil {
		return err
	}

	approvedAt := s.now()
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		for _, rec := range req.Records {
			row := summary.NonExecutiveSummary{
				PlantID:         req.PlantID,
				EmployeeID:      rec.EmployeeID,
				Year:            req.Year,
				Month:           req.Month,
				TotalDaysWorked: rec.TotalDaysWorked,
				NoPayDays:       rec.NoPayDays,
				OTHours:         rec.OTHours,
				DOTHours:        rec.DOTHours,
				LeaveDays:       rec.LeaveDays,
				ApprovedAt:      approvedAt,
			}
			if err := s.summaryRepo.UpsertNonExecutiveDraft(ctx, row); err != nil {
				return fmt.Errorf("failed to save summary for employee %d: %w", rec.EmployeeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Approval batch committed", "stage", "non_executive_draft", "plant_id", req.PlantID, "year", req.Year, "month", req.Month, "records", len(req.Records), "approved_by_id", req.ApprovedByID, "approved_by_email", req.ApprovedByEmail)
	return nil
}

// ListFinalExecutive implements summary.SummaryService.
func (s *SummaryServiceImpl) ListFinalExecutive(ctx context.Context, req summary.PeriodRequest) ([]summary.FinalExecutiveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	records, err := s.summaryRepo.ListFinalExecutive(ctx, req.PlantID, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	out := make([]summary.FinalExecutiveResponse, 0, len(records))
	for _, r := range records {
		out = append(out, summary.NewFinalExecutiveResponse(r))
	}
	return out, nil
}

// ApproveFinalExecutive implements summary.SummaryService. Either every
// record of the batch is stored or none is.
func (s *SummaryServiceImpl) ApproveFinalExecutive(ctx context.Context, req summary.ApproveFinalExecutiveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.plantRepo.GetByID(ctx, req.PlantID); err != nil {
		return err
	}

	approvedAt := s.now()
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		for _, rec := range req.Records {
			row := summary.FinalExecutiveRecord{
				PlantID:         req.PlantID,
				EmployeeID:      rec.EmployeeID,
				Year:            req.Year,
				Month:           req.Month,
				SalaryMonth:     rec.SalaryMonth,
				TotalDaysWorked: rec.TotalDaysWorked,
				NoPayDays:       rec.NoPayDays,
				HolidayClaims:   rec.HolidayClaims,
				LeaveDays:       rec.LeaveDays,
				SalaryArrears:   rec.SalaryArrears,
				ApprovedAt:      approvedAt,
			}
			if err := s.summaryRepo.UpsertFinalExecutive(ctx, row); err != nil {
				return fmt.Errorf("failed to approve attendance for employee %d: %w", rec.EmployeeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Approval batch committed", "stage", "executive_final", "plant_id", req.PlantID, "year", req.Year, "month", req.Month, "records", len(req.Records), "approved_by_id", req.ApprovedByID, "approved_by_email", req.ApprovedByEmail)
	return nil
}

// ListFinalNonExecutive implements summary.SummaryService.
func (s *SummaryServiceImpl) ListFinalNonExecutive(ctx context.Context, req summary.PeriodRequest) ([]summary.FinalNonExecutiveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	records, err := s.summaryRepo.ListFinalNonExecutive(ctx, req.PlantID, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	out := make([]summary.FinalNonExecutiveResponse, 0, len(records))
	for _, r := range records {
		out = append(out, summary.NewFinalNonExecutiveResponse(r))
	}
	return out, nil
}

// ApproveFinalNonExecutive implements summary.SummaryService.
func (s *SummaryServiceImpl) ApproveFinalNonExecutive(ctx context.Context, req summary.ApproveFinalNonExecutiveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.plantRepo.GetByID(ctx, req.PlantID); err != nil {
		return err
	}

	approvedAt := s.now()
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		for _, rec := range req.Records {
			row := summary.FinalNonExecutiveRecord{
				PlantID:       req.PlantID,
				EmployeeID:    rec.EmployeeID,
				Year:          req.Year,
				Month:         req.Month,
				SalaryMonth:   rec.SalaryMonth,
				Shift1:        rec.Shift1,
				Shift2:        rec.Shift2,
				Shift3:        rec.Shift3,
				OT:            rec.OT,
				DOT:           rec.DOT,
				NoPayDays:     rec.NoPayDays,
				LeaveDays:     rec.LeaveDays,
				SalaryArrears: rec.SalaryArrears,
				ApprovedAt:    approvedAt,
			}
			if err := s.summaryRepo.UpsertFinalNonExecutive(ctx, row); err != nil {
				return fmt.Errorf("failed to approve attendance for employee %d: %w", rec.EmployeeID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Approval batch committed", "stage", "non_executive_final", "plant_id", req.PlantID, "year", req.Year, "month", req.Month, "records", len(req.Records), "approved_by_id", req.ApprovedByID, "approved_by_email", req.ApprovedByEmail)
	return nil
}
