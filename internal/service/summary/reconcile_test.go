package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/leave"
	"github.com/vilochanaudantha15/hris-backend/internal/service/calendar"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func approved(start time.Time, end *time.Time) leave.Leave {
	return leave.Leave{StartDate: start, EndDate: end, Status: leave.LeaveStatusApproved}
}

// firstWorkdays returns the first n workdays of the month.
func firstWorkdays(m calendar.Month, n int) []time.Time {
	out := make([]time.Time, n)
	copy(out, m.Workdays[:n])
	return out
}

func TestReconcile_WorkedLeaveAndNoPayAddUp(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	worked := firstWorkdays(march, 18) // through 2024-03-26
	leaves := []leave.Leave{approved(day(2024, time.March, 27), datePtr(day(2024, time.March, 28)))}

	r := Reconcile(march, worked, leaves, false)

	assert.Equal(t, 21, r.TotalWorkdays)
	assert.Equal(t, 18, r.DaysWorked)
	assert.Equal(t, 2, r.LeaveDays)
	assert.Equal(t, 1, r.NoPayDays)
	assert.Equal(t, r.TotalWorkdays, r.DaysWorked+r.LeaveDays+r.NoPayDays)
}

func TestReconcile_LeaveOnWorkedDayIsNotCounted(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	worked := []time.Time{day(2024, time.March, 4)}
	leaves := []leave.Leave{approved(day(2024, time.March, 4), datePtr(day(2024, time.March, 5)))}

	r := Reconcile(march, worked, leaves, false)
	assert.Equal(t, 1, r.LeaveDays)
	assert.Equal(t, 19, r.NoPayDays)
}

func TestReconcile_LeaveClippedToMonthAndWeekendsSkipped(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	// Feb 26 to Mar 5: only Mar 1, 4 and 5 are March workdays
	leaves := []leave.Leave{approved(day(2024, time.February, 26), datePtr(day(2024, time.March, 5)))}

	r := Reconcile(march, nil, leaves, false)
	assert.Equal(t, 3, r.LeaveDays)

	// Mar 29 to Apr 3: only Mar 29
	leaves = []leave.Leave{approved(day(2024, time.March, 29), datePtr(day(2024, time.April, 3)))}
	r = Reconcile(march, nil, leaves, false)
	assert.Equal(t, 1, r.LeaveDays)
}

func TestReconcile_NullEndIsSingleDay(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	r := Reconcile(march, nil, []leave.Leave{approved(day(2024, time.March, 12), nil)}, false)
	assert.Equal(t, 1, r.LeaveDays)
	assert.Equal(t, 20, r.NoPayDays)
}

func TestReconcile_OverlappingLeavesCountOnce(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	leaves := []leave.Leave{
		approved(day(2024, time.March, 11), datePtr(day(2024, time.March, 13))),
		approved(day(2024, time.March, 12), datePtr(day(2024, time.March, 14))),
	}
	r := Reconcile(march, nil, leaves, false)
	assert.Equal(t, 4, r.LeaveDays)
}

func TestReconcile_IgnoresUnapprovedLeave(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	pending := leave.Leave{StartDate: day(2024, time.March, 12), Status: leave.LeaveStatusPending}
	r := Reconcile(march, nil, []leave.Leave{pending}, false)
	assert.Equal(t, 0, r.LeaveDays)
}

func TestReconcile_PublicHolidayIsNeitherWorkdayNorLeave(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, []time.Time{day(2024, time.March, 25)})
	leaves := []leave.Leave{approved(day(2024, time.March, 25), datePtr(day(2024, time.March, 26)))}

	r := Reconcile(march, nil, leaves, false)
	assert.Equal(t, 20, r.TotalWorkdays)
	assert.Equal(t, 1, r.LeaveDays)
}

func TestReconcile_NegativeNoPay(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	worked := append(firstWorkdays(march, 21), day(2024, time.March, 2), day(2024, time.March, 3))
	// duplicate rows for one day count once
	worked = append(worked, day(2024, time.March, 4))

	r := Reconcile(march, worked, nil, false)
	assert.Equal(t, 23, r.DaysWorked)
	assert.Equal(t, -2, r.NoPayDays)

	r = Reconcile(march, worked, nil, true)
	assert.Equal(t, 0, r.NoPayDays)
}

func TestReconcile_DatesOutsideMonthIgnored(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	r := Reconcile(march, []time.Time{day(2024, time.April, 1)}, nil, false)
	assert.Equal(t, 0, r.DaysWorked)
}

func TestHolidayClaims(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, []time.Time{day(2024, time.March, 25)})
	worked := []time.Time{
		day(2024, time.March, 3),  // Sunday
		day(2024, time.March, 9),  // Saturday
		day(2024, time.March, 25), // public holiday
		day(2024, time.March, 26),
		day(2024, time.March, 25),
	}
	assert.Equal(t, 2, HolidayClaims(march, worked))
}

func TestReconcile_SingleDayLeaveBeforeMonthIgnored(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	r := Reconcile(march, nil, []leave.Leave{approved(day(2024, time.February, 28), nil)}, false)

	assert.Equal(t, 0, r.LeaveDays)
	assert.Equal(t, 21, r.NoPayDays)
	assert.Equal(t, 21, r.TotalWorkdays)
}

func TestReconcile_LeaveEndingBeforeMonthIgnored(t *testing.T) {
	march := calendar.NewMonth(2024, time.March, nil)
	leaves := []leave.Leave{approved(day(2024, time.February, 20), datePtr(day(2024, time.February, 29)))}

	r := Reconcile(march, nil, leaves, false)
	assert.Equal(t, 0, r.LeaveDays)
}
