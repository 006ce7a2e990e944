package attendance

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
)

// statusSet keeps distinct statuses in first-seen order.
type statusSet struct {
	seen  map[attendance.Status]bool
	order []string
}

func (s *statusSet) add(st attendance.Status) {
	if s.seen == nil {
		s.seen = make(map[attendance.Status]bool, 3)
	}
	if !s.seen[st] {
		s.seen[st] = true
		s.order = append(s.order, string(st))
	}
}

func (s *statusSet) String() string {
	return strings.Join(s.order, ",")
}

func countShift(shift attendance.Shift, morning, day, night *int) {
	switch shift {
	case attendance.ShiftMorning:
		*morning++
	case attendance.ShiftDay:
		*day++
	case attendance.ShiftNight:
		*night++
	}
}

func plantName(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// SummarizeNonExecutive folds shift rows into one entry per employee,
// ordered by employee name. Employees without rows are not listed.
func SummarizeNonExecutive(records []attendance.Record) []attendance.SummaryResponse {
	index := make(map[int64]int)
	var out []attendance.SummaryResponse
	statuses := make(map[int64]*statusSet)

	for _, r := range records {
		i, ok := index[r.EmployeeID]
		if !ok {
			i = len(out)
			index[r.EmployeeID] = i
			out = append(out, attendance.SummaryResponse{
				EmployeeID:        r.EmployeeID,
				EmployeeName:      r.EmployeeName,
				PlantName:         plantName(r.PlantName),
				TotalHours:        decimal.Zero,
				TotalOTHours:      decimal.Zero,
				TotalPayableHours: decimal.Zero,
				HolidayHours:      decimal.Zero,
			})
			statuses[r.EmployeeID] = &statusSet{}
		}
		s := &out[i]
		s.TotalShifts++
		s.TotalHours = s.TotalHours.Add(r.TotalHours)
		s.TotalOTHours = s.TotalOTHours.Add(r.OTHours)
		s.TotalDOT += r.DOTHours
		countShift(r.Shift, &s.MorningShifts, &s.DayShifts, &s.NightShifts)
		s.TotalPayableHours = s.TotalPayableHours.Add(r.RegularHours).Add(r.OTHours)
		if r.DOTHours == 1 {
			s.HolidayHours = s.HolidayHours.Add(r.TotalHours)
		}
		statuses[r.EmployeeID].add(r.Status)
	}

	for i := range out {
		out[i].Status = statuses[out[i].EmployeeID].String()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EmployeeName < out[j].EmployeeName })
	return out
}

// SummarizeExecutive folds Executive shift rows. Only regular hours are
// payable; holiday hours are the total hours of holiday-pay shifts.
func SummarizeExecutive(records []attendance.ExecutiveRecord) []attendance.ExecutiveSummaryResponse {
	index := make(map[int64]int)
	var out []attendance.ExecutiveSummaryResponse
	statuses := make(map[int64]*statusSet)

	for _, r := range records {
		i, ok := index[r.EmployeeID]
		if !ok {
			i = len(out)
			index[r.EmployeeID] = i
			out = append(out, attendance.ExecutiveSummaryResponse{
				EmployeeID:        r.EmployeeID,
				EmployeeName:      r.EmployeeName,
				PlantName:         plantName(r.PlantName),
				TotalHours:        decimal.Zero,
				TotalPayableHours: decimal.Zero,
				HolidayHours:      decimal.Zero,
			})
			statuses[r.EmployeeID] = &statusSet{}
		}
		s := &out[i]
		s.TotalShifts++
		s.TotalHours = s.TotalHours.Add(r.TotalHours)
		countShift(r.Shift, &s.MorningShifts, &s.DayShifts, &s.NightShifts)
		s.TotalPayableHours = s.TotalPayableHours.Add(r.RegularHours)
		if r.HolidayPay {
			s.TotalHolidayPayDays++
			s.HolidayHours = s.HolidayHours.Add(r.TotalHours)
		}
		statuses[r.EmployeeID].add(r.Status)
	}

	for i := range out {
		out[i].Status = statuses[out[i].EmployeeID].String()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EmployeeName < out[j].EmployeeName })
	return out
}
