// Package calendar resolves payroll workdays and premium days from the
// public holiday calendar.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/holiday"
)

const dateLayout = "2006-01-02"

// DateKey normalizes a date to its calendar day.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// MonthRange returns the first and last day of the month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// Month is the resolved calendar of one payroll month.
type Month struct {
	Start    time.Time
	End      time.Time
	Workdays []time.Time

	public   map[string]bool
	workdays map[string]bool
}

// NewMonth builds the month from its public holiday dates. A workday is a
// Monday to Friday that is not a public holiday.
func NewMonth(year int, month time.Month, publicHolidays []time.Time) Month {
	start, end := MonthRange(year, month)
	m := Month{
		Start:    start,
		End:      end,
		public:   make(map[string]bool, len(publicHolidays)),
		workdays: make(map[string]bool, 23),
	}
	for _, h := range publicHolidays {
		m.public[DateKey(h)] = true
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday || m.public[DateKey(d)] {
			continue
		}
		m.Workdays = append(m.Workdays, d)
		m.workdays[DateKey(d)] = true
	}
	return m
}

func (m Month) TotalWorkdays() int {
	return len(m.Workdays)
}

func (m Month) IsWorkday(d time.Time) bool {
	return m.workdays[DateKey(d)]
}

func (m Month) IsPublicHoliday(d time.Time) bool {
	return m.public[DateKey(d)]
}

// IsPremium reports a public holiday or a Sunday. Only Executive holiday
// claims count Sundays.
func (m Month) IsPremium(d time.Time) bool {
	return d.Weekday() == time.Sunday || m.IsPublicHoliday(d)
}

// PremiumDates lists the month's public holidays and Sundays in order.
func (m Month) PremiumDates() []time.Time {
	var dates []time.Time
	for d := m.Start; !d.After(m.End); d = d.AddDate(0, 0, 1) {
		if m.IsPremium(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// Resolver reads the holiday table on every call.
type Resolver struct {
	holidays holiday.HolidayRepository
}

func NewResolver(holidays holiday.HolidayRepository) *Resolver {
	return &Resolver{holidays: holidays}
}

func (r *Resolver) Month(ctx context.Context, year int, month time.Month) (Month, error) {
	start, end := MonthRange(year, month)
	public, err := r.holidays.ListPublicBetween(ctx, start, end)
	if err != nil {
		return Month{}, fmt.Errorf("failed to load public holidays for %d-%02d: %w", year, month, err)
	}
	return NewMonth(year, month, public), nil
}

func (r *Resolver) IsPublicHoliday(ctx context.Context, date time.Time) (bool, error) {
	ok, err := r.holidays.IsPublicHoliday(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check public holiday %s: %w", DateKey(date), err)
	}
	return ok, nil
}

// IsPremiumDay reports whether an Executive shift on date earns holiday pay.
func (r *Resolver) IsPremiumDay(ctx context.Context, date time.Time) (bool, error) {
	if date.Weekday() == time.Sunday {
		return true, nil
	}
	return r.IsPublicHoliday(ctx, date)
}
