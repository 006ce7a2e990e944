package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context, year *int) ([]Holiday, error)
	// ListPublicBetween returns the dates of Public holidays in [from, to]
	ListPublicBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)
	IsPublicHoliday(ctx context.Context, date time.Time) (bool, error)
}
