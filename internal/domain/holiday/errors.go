package holiday

import "errors"

var (
	ErrHolidayNotFound   = errors.New("no holidays found")
	ErrHolidayDateExists = errors.New("a holiday already exists on this date")
)
