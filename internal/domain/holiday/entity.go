package holiday

import "time"

type HolidayType string

const (
	HolidayTypePoya   HolidayType = "Poya"
	HolidayTypePublic HolidayType = "Public"
	HolidayTypeCustom HolidayType = "Custom"
)

func (t HolidayType) IsValid() bool {
	switch t {
	case HolidayTypePoya, HolidayTypePublic, HolidayTypeCustom:
		return true
	}
	return false
}

// Holiday is one calendar entry; only Public entries affect workdays.
type Holiday struct {
	ID        int64
	Date      time.Time
	Name      string
	Type      HolidayType
	CreatedAt time.Time
}
