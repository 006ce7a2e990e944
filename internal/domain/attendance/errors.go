package attendance

import "errors"

var (
	ErrNoRecordsProvided   = errors.New("no attendance records provided")
	ErrDuplicateAttendance = errors.New("attendance already recorded for this employee, date and shift")
)
