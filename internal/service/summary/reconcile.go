package summary

import (
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/leave"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/summary"
	"github.com/vilochanaudantha15/hris-backend/internal/service/calendar"
)

// distinctDays keeps the dates of the month, one entry per calendar day.
func distinctDays(month calendar.Month, dates []time.Time) map[string]time.Time {
	days := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		if d.Before(month.Start) || d.After(month.End) {
			continue
		}
		days[calendar.DateKey(d)] = d
	}
	return days
}

// Reconcile splits the month's workdays into worked, leave and no-pay days.
// A workday counts as leave only when it was not worked, and overlapping
// leaves count a day once. NoPayDays goes negative when the employee worked
// non-workdays, unless clampNegative is set.
func Reconcile(month calendar.Month, worked []time.Time, leaves []leave.Leave, clampNegative bool) summary.Reconciliation {
	workedDays := distinctDays(month, worked)

	onLeave := make(map[string]bool)
	for _, l := range leaves {
		if l.Status != leave.LeaveStatusApproved {
			continue
		}
		start, end := l.StartDate, l.StartDate
		if l.EndDate != nil {
			end = *l.EndDate
		}
		if start.Before(month.Start) {
			start = month.Start
		}
		if end.After(month.End) {
			end = month.End
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !month.IsWorkday(d) {
				continue
			}
			key := calendar.DateKey(d)
			if _, ok := workedDays[key]; !ok {
				onLeave[key] = true
			}
		}
	}

	r := summary.Reconciliation{
		TotalWorkdays: month.TotalWorkdays(),
		DaysWorked:    len(workedDays),
		LeaveDays:     len(onLeave),
	}
	r.NoPayDays = r.TotalWorkdays - r.DaysWorked - r.LeaveDays
	if clampNegative && r.NoPayDays < 0 {
		r.NoPayDays = 0
	}
	return r
}

// HolidayClaims counts worked days that fall on a public holiday or a Sunday.
func HolidayClaims(month calendar.Month, worked []time.Time) int {
	claims := 0
	for _, d := range distinctDays(month, worked) {
		if month.IsPremium(d) {
			claims++
		}
	}
	return claims
}
