package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/attendance"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertHours(t *testing.T, got attendance.Hours, total, regular, ot string) {
	t.Helper()
	assert.True(t, dec(total).Equal(got.Total), "total: want %s, got %s", total, got.Total)
	assert.True(t, dec(regular).Equal(got.Regular), "regular: want %s, got %s", regular, got.Regular)
	assert.True(t, dec(ot).Equal(got.OT), "ot: want %s, got %s", ot, got.OT)
}

func TestCalculateHours(t *testing.T) {
	cases := []struct {
		name             string
		in, out          string
		total, reg, over string
	}{
		{"day shift", "07:00", "16:00", "9", "8", "1"},
		{"short shift", "08:00", "12:30", "4.5", "4.5", "0"},
		{"exactly eight", "08:00", "16:00", "8", "8", "0"},
		{"long shift", "06:00", "20:45", "14.75", "8", "6.75"},
		{"fractional minutes round to two places", "08:00", "08:20", "0.33", "0.33", "0"},
		{"night shift ends at midnight", "16:00", "00:00", "8", "8", "0"},
		{"late start ends at midnight", "13:00", "00:00", "11", "8", "3"},
		{"morning shift from midnight", "00:00", "07:00", "7", "7", "0"},
		{"out before in", "16:00", "08:00", "0", "0", "0"},
		{"equal times", "09:00", "09:00", "0", "0", "0"},
		{"midnight to midnight", "00:00", "00:00", "0", "0", "0"},
		{"garbage", "nine", "17:00", "0", "0", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertHours(t, CalculateHours(c.in, c.out), c.total, c.reg, c.over)
		})
	}
}

func TestCalculateHours_RegularPlusOTEqualsTotal(t *testing.T) {
	for _, pair := range [][2]string{{"00:00", "23:59"}, {"05:10", "18:05"}, {"10:00", "11:00"}} {
		h := CalculateHours(pair[0], pair[1])
		assert.True(t, h.Regular.Add(h.OT).Equal(h.Total), pair)
		assert.True(t, h.Regular.LessThanOrEqual(dec("8")), pair)
	}
}

func TestPremiumOT(t *testing.T) {
	h := CalculateHours("06:00", "20:45")

	ot, dot := PremiumOT(h, false)
	assert.True(t, dec("6.75").Equal(ot))
	assert.Equal(t, 0, dot)

	ot, dot = PremiumOT(h, true)
	assert.True(t, dec("13.5").Equal(ot))
	assert.Equal(t, 1, dot)

	// No OT still counts the DOT shift
	ot, dot = PremiumOT(CalculateHours("08:00", "12:00"), true)
	assert.True(t, ot.IsZero())
	assert.Equal(t, 1, dot)
}

func TestShiftHours(t *testing.T) {
	assertHours(t, ShiftHours(attendance.ShiftMorning), "7", "7", "0")
	assertHours(t, ShiftHours(attendance.ShiftDay), "9", "8", "1")
	assertHours(t, ShiftHours(attendance.ShiftNight), "8", "8", "0")
}
