package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
)

var (
	regularHoursCap = decimal.NewFromInt(8)
	minutesPerHour  = decimal.NewFromInt(60)
	premiumFactor   = decimal.NewFromInt(2)
)

const midnight = "00:00"

// CalculateHours turns an in/out wall-clock pair into total, regular and OT
// hours. An out time of 00:00 after a non-midnight in time ends at the next
// midnight. Unparseable or non-positive spans yield zero hours.
func CalculateHours(inTime, outTime string) attendance.Hours {
	zero := attendance.Hours{Total: decimal.Zero, Regular: decimal.Zero, OT: decimal.Zero}

	in, err := time.Parse("15:04", inTime)
	if err != nil {
		return zero
	}
	out, err := time.Parse("15:04", outTime)
	if err != nil {
		return zero
	}
	if outTime == midnight && inTime != midnight {
		out = out.Add(24 * time.Hour)
	}

	minutes := int64(out.Sub(in) / time.Minute)
	if minutes <= 0 {
		return zero
	}

	total := decimal.NewFromInt(minutes).Div(minutesPerHour).Round(2)
	h := attendance.Hours{Total: total, Regular: decimal.Min(total, regularHoursCap), OT: decimal.Zero}
	if total.GreaterThan(regularHoursCap) {
		h.OT = total.Sub(regularHoursCap)
	}
	return h
}

// PremiumOT applies the NonExecutive public holiday rule: OT is doubled and
// the shift counts one DOT.
func PremiumOT(h attendance.Hours, publicHoliday bool) (decimal.Decimal, int) {
	if !publicHoliday {
		return h.OT, 0
	}
	return h.OT.Mul(premiumFactor).Round(2), 1
}

// ShiftHours runs the nominal window of a shift through CalculateHours.
func ShiftHours(s attendance.Shift) attendance.Hours {
	in, out := s.Window()
	return CalculateHours(in, out)
}
