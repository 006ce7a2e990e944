package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/excel"
	"github.com/vilochanaudantha15/hris-backend/internal/service/calendar"
)

const recordedMessage = "Attendance recorded successfully"

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	plantRepo      employee.PlantRepository
	calendar       *calendar.Resolver
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	plantRepo employee.PlantRepository,
	resolver *calendar.Resolver,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		plantRepo:      plantRepo,
		calendar:       resolver,
	}
}

// shiftEntry is a validated attendance row ready to be stored.
type shiftEntry struct {
	plantID  int64
	employee employee.Employee
	date     time.Time
	shift    attendance.Shift
	inTime   string
	outTime  string
	status   attendance.Status
}

// isRowError reports failures that belong to one input row rather than to
// the whole batch.
func isRowError(err error) bool {
	return errors.Is(err, employee.ErrPlantNotFound) ||
		errors.Is(err, employee.ErrEmployeeNotInPlant) ||
		errors.Is(err, employee.ErrEmployeeNotFound) ||
		errors.Is(err, attendance.ErrDuplicateAttendance)
}

func (a *AttendanceServiceImpl) resolveEntry(ctx context.Context, req attendance.CreateAttendanceRequest) (shiftEntry, error) {
	date, _ := time.Parse("2006-01-02", req.Date)

	if _, err := a.plantRepo.GetByID(ctx, req.PlantID); err != nil {
		return shiftEntry{}, err
	}
	emp, err := a.employeeRepo.GetInPlant(ctx, req.EmployeeID, req.PlantID)
	if err != nil {
		return shiftEntry{}, err
	}

	return shiftEntry{
		plantID:  req.PlantID,
		employee: emp,
		date:     date,
		shift:    attendance.Shift(req.Shift),
		inTime:   req.InTime,
		outTime:  req.OutTime,
		status:   attendance.Status(req.Status),
	}, nil
}

func (a *AttendanceServiceImpl) storeRecord(ctx context.Context, e shiftEntry) (attendance.Record, error) {
	public, err := a.calendar.IsPublicHoliday(ctx, e.date)
	if err != nil {
		return attendance.Record{}, err
	}
	h := CalculateHours(e.inTime, e.outTime)
	ot, dot := PremiumOT(h, public)

	rec, err := a.attendanceRepo.Create(ctx, attendance.Record{
		PlantID:      e.plantID,
		EmployeeID:   e.employee.ID,
		EmployeeName: e.employee.Name,
		Date:         e.date,
		Shift:        e.shift,
		InTime:       e.inTime,
		OutTime:      e.outTime,
		TotalHours:   h.Total,
		RegularHours: h.Regular,
		OTHours:      ot,
		DOTHours:     dot,
		Status:       e.status,
	})
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to store attendance for employee %d: %w", e.employee.ID, err)
	}
	return rec, nil
}

func (a *AttendanceServiceImpl) storeExecutiveRecord(ctx context.Context, e shiftEntry) (attendance.ExecutiveRecord, error) {
	premium, err := a.calendar.IsPremiumDay(ctx, e.date)
	if err != nil {
		return attendance.ExecutiveRecord{}, err
	}
	h := CalculateHours(e.inTime, e.outTime)

	rec, err := a.attendanceRepo.CreateExecutive(ctx, attendance.ExecutiveRecord{
		PlantID:      e.plantID,
		EmployeeID:   e.employee.ID,
		EmployeeName: e.employee.Name,
		Date:         e.date,
		Shift:        e.shift,
		InTime:       e.inTime,
		OutTime:      e.outTime,
		TotalHours:   h.Total,
		RegularHours: h.Regular,
		HolidayPay:   premium,
		Status:       e.status,
	})
	if err != nil {
		return attendance.ExecutiveRecord{}, fmt.Errorf("failed to store executive attendance for employee %d: %w", e.employee.ID, err)
	}
	return rec, nil
}

// Create implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.CreatedResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CreatedResponse{}, err
	}
	entry, err := a.resolveEntry(ctx, req)
	if err != nil {
		return attendance.CreatedResponse{}, err
	}
	rec, err := a.storeRecord(ctx, entry)
	if err != nil {
		return attendance.CreatedResponse{}, err
	}
	return attendance.CreatedResponse{ID: rec.ID}, nil
}

// CreateBulk implements attendance.AttendanceService. Invalid records are
// reported and skipped; the rest are stored.
func (a *AttendanceServiceImpl) CreateBulk(ctx context.Context, reqs []attendance.CreateAttendanceRequest) (attendance.ImportResponse, error) {
	if len(reqs) == 0 {
		return attendance.ImportResponse{}, attendance.ErrNoRecordsProvided
	}

	resp := attendance.ImportResponse{BatchID: uuid.NewString(), Results: []attendance.ImportRowResult{}}
	for i := range reqs {
		req := reqs[i]
		if err := req.Validate(); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("Record %d for employee %d: %v", i+1, req.EmployeeID, err))
			continue
		}
		entry, err := a.resolveEntry(ctx, req)
		if err != nil {
			if !isRowError(err) {
				return attendance.ImportResponse{}, err
			}
			resp.Errors = append(resp.Errors, fmt.Sprintf("Record %d for employee %d: %v", i+1, req.EmployeeID, err))
			continue
		}
		rec, err := a.storeRecord(ctx, entry)
		if err != nil {
			if !isRowError(err) {
				return attendance.ImportResponse{}, err
			}
			resp.Errors = append(resp.Errors, fmt.Sprintf("Record %d for employee %d: %v", i+1, req.EmployeeID, err))
			continue
		}
		resp.Results = append(resp.Results, attendance.ImportRowResult{
			EmployeeID:   rec.EmployeeID,
			EmployeeName: rec.EmployeeName,
			AttendanceID: rec.ID,
			Message:      recordedMessage,
		})
	}

	slog.Info("Bulk attendance processed", "batch_id", resp.BatchID, "stored", len(resp.Results), "failed", len(resp.Errors))
	return resp, nil
}

// parseImportRow converts one spreadsheet row; the returned message is the
// row error shown to the uploader.
func (a *AttendanceServiceImpl) parseImportRow(ctx context.Context, row excel.Row) (shiftEntry, string, error) {
	empNo := row.Get("emp_no")

	shift := attendance.Shift(row.Get("shift"))
	if !shift.IsValid() {
		return shiftEntry{}, fmt.Sprintf("Invalid shift for employee %s: %s. Expected 'Morning', 'Day', or 'Night'", empNo, row.Get("shift")), nil
	}
	date, err := excel.ParseDate(row.Get("date"))
	if err != nil {
		return shiftEntry{}, fmt.Sprintf("Invalid date for employee %s: %v", empNo, err), nil
	}
	in, err := excel.ParseClock(row.Get("in_time"))
	if err != nil {
		return shiftEntry{}, fmt.Sprintf("Invalid in_time for employee %s: %v", empNo, err), nil
	}
	out, err := excel.ParseClock(row.Get("out_time"))
	if err != nil {
		return shiftEntry{}, fmt.Sprintf("Invalid out_time for employee %s: %v", empNo, err), nil
	}

	plantName := row.Get("plant")
	plant, err := a.plantRepo.GetByName(ctx, plantName)
	if err != nil {
		if isRowError(err) {
			return shiftEntry{}, fmt.Sprintf("Plant not found for employee %s: %s", empNo, plantName), nil
		}
		return shiftEntry{}, "", err
	}
	emp, err := a.employeeRepo.GetByEmpNoInPlant(ctx, empNo, plant.ID)
	if err != nil {
		if isRowError(err) {
			return shiftEntry{}, fmt.Sprintf("Employee not found or not assigned to plant for emp_no %s", empNo), nil
		}
		return shiftEntry{}, "", err
	}

	return shiftEntry{
		plantID:  plant.ID,
		employee: emp,
		date:     date,
		shift:    shift,
		inTime:   in,
		outTime:  out,
		status:   attendance.StatusPending,
	}, "", nil
}

func (a *AttendanceServiceImpl) importSheet(ctx context.Context, file io.Reader, store func(context.Context, shiftEntry) (int64, error)) (attendance.ImportResponse, error) {
	sheet, err := excel.ReadFirstSheet(file)
	if err != nil {
		return attendance.ImportResponse{}, err
	}
	if err := sheet.Require(attendance.ImportColumns...); err != nil {
		return attendance.ImportResponse{}, err
	}

	resp := attendance.ImportResponse{BatchID: uuid.NewString(), Results: []attendance.ImportRowResult{}}
	for _, row := range sheet.Rows {
		entry, rowErr, err := a.parseImportRow(ctx, row)
		if err != nil {
			return attendance.ImportResponse{}, err
		}
		if rowErr != "" {
			slog.Debug("Skipping attendance row", "batch_id", resp.BatchID, "row", row.Number, "reason", rowErr)
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d: %s", row.Number, rowErr))
			continue
		}
		id, err := store(ctx, entry)
		if errors.Is(err, attendance.ErrDuplicateAttendance) {
			resp.Errors = append(resp.Errors, fmt.Sprintf("Row %d: Attendance already recorded for employee %s on %s (%s shift)",
				row.Number, row.Get("emp_no"), entry.date.Format("2006-01-02"), entry.shift))
			continue
		}
		if err != nil {
			return attendance.ImportResponse{}, err
		}
		resp.Results = append(resp.Results, attendance.ImportRowResult{
			Row:          row.Number,
			EmpNo:        row.Get("emp_no"),
			EmployeeID:   entry.employee.ID,
			EmployeeName: entry.employee.Name,
			AttendanceID: id,
			Message:      recordedMessage,
		})
	}

	slog.Info("Attendance import finished",
		"batch_id", resp.BatchID, "sheet", sheet.Name, "stored", len(resp.Results), "failed", len(resp.Errors))
	return resp, nil
}

// ImportExcel implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ImportExcel(ctx context.Context, file io.Reader) (attendance.ImportResponse, error) {
	return a.importSheet(ctx, file, func(ctx context.Context, e shiftEntry) (int64, error) {
		rec, err := a.storeRecord(ctx, e)
		return rec.ID, err
	})
}

// ImportExecutiveExcel implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ImportExecutiveExcel(ctx context.Context, file io.Reader) (attendance.ImportResponse, error) {
	return a.importSheet(ctx, file, func(ctx context.Context, e shiftEntry) (int64, error) {
		rec, err := a.storeExecutiveRecord(ctx, e)
		return rec.ID, err
	})
}

// CreateExecutive implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateExecutive(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.CreatedResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CreatedResponse{}, err
	}
	entry, err := a.resolveEntry(ctx, req)
	if err != nil {
		return attendance.CreatedResponse{}, err
	}
	rec, err := a.storeExecutiveRecord(ctx, entry)
	if err != nil {
		return attendance.CreatedResponse{}, err
	}
	return attendance.CreatedResponse{ID: rec.ID}, nil
}

// Summary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Summary(ctx context.Context, req attendance.SummaryRequest) ([]attendance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, end := calendar.MonthRange(req.Year, time.Month(req.Month))

	records, err := a.attendanceRepo.ListByPlantBetween(ctx, req.PlantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for plant %d: %w", req.PlantID, err)
	}
	summary := SummarizeNonExecutive(records)
	if summary == nil {
		summary = []attendance.SummaryResponse{}
	}
	return summary, nil
}

// ExecutiveSummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ExecutiveSummary(ctx context.Context, req attendance.SummaryRequest) ([]attendance.ExecutiveSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, end := calendar.MonthRange(req.Year, time.Month(req.Month))

	records, err := a.attendanceRepo.ListExecutiveByPlantBetween(ctx, req.PlantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list executive attendance for plant %d: %w", req.PlantID, err)
	}
	summary := SummarizeExecutive(records)
	if summary == nil {
		summary = []attendance.ExecutiveSummaryResponse{}
	}
	return summary, nil
}
