// Package excel reads the first worksheet of an uploaded workbook into
// header-keyed rows and converts spreadsheet date and time cells.
package excel

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	ErrInvalidWorkbook = errors.New("file is not a readable excel workbook")
	ErrEmptyWorkbook   = errors.New("excel file is empty")
	ErrMissingColumns  = errors.New("missing required column")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
)

// Spreadsheet serial dates count days from 1899-12-30.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	dateLayouts  = []string{"1/2/2006", "1/2/06"}
	clockLayouts = []string{"15:04", "3:04 PM", "3.04 PM"}
)

type Row struct {
	Number int
	cells  map[string]string
}

// Get returns the trimmed cell under the given header, or "" when absent.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.cells[column])
}

type Sheet struct {
	Name    string
	Columns []string
	Rows    []Row
}

// MissingColumns lists the required headers the sheet does not carry.
func (s *Sheet) MissingColumns(required ...string) []string {
	present := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		present[c] = true
	}
	var missing []string
	for _, c := range required {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// Require fails with ErrMissingColumns naming every absent header.
func (s *Sheet) Require(columns ...string) error {
	if missing := s.MissingColumns(columns...); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// ReadFirstSheet parses the first worksheet. Cells are read raw, so date and
// time cells arrive as spreadsheet serial numbers.
func ReadFirstSheet(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return buildSheet(sheets[0], rows)
}

func buildSheet(name string, rows [][]string) (*Sheet, error) {
	if len(rows) < 2 {
		return nil, ErrEmptyWorkbook
	}

	sheet := &Sheet{Name: name}
	for _, h := range rows[0] {
		sheet.Columns = append(sheet.Columns, strings.TrimSpace(h))
	}

	for i, raw := range rows[1:] {
		if isBlank(raw) {
			continue
		}
		cells := make(map[string]string, len(sheet.Columns))
		for j, col := range sheet.Columns {
			if col == "" || j >= len(raw) {
				continue
			}
			cells[col] = raw[j]
		}
		// +2: one for the header row, one for 1-based numbering
		sheet.Rows = append(sheet.Rows, Row{Number: i + 2, cells: cells})
	}

	if len(sheet.Rows) == 0 {
		return nil, ErrEmptyWorkbook
	}
	return sheet, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseDate accepts a serial day number, M/D/YYYY or M/D/YY.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 1 {
			return time.Time{}, fmt.Errorf("%w: serial %s", ErrInvalidDate, value)
		}
		return serialEpoch.AddDate(0, 0, int(math.Floor(serial))), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected M/D/YYYY or M/D/YY", ErrInvalidDate, value)
}

// ParseClock accepts a fraction-of-day serial, HH:mm, h:mm A or h.mm A, and
// returns the time as 24h "HH:MM".
func ParseClock(value string) (string, error) {
	value = strings.TrimSpace(value)
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 0 || serial >= 1 {
			return "", fmt.Errorf("%w: serial %s", ErrInvalidTime, value)
		}
		minutes := int(math.Round(serial*24*60)) % (24 * 60)
		return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
	}
	upper := strings.ToUpper(value)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("%w: %q, expected HH:mm, h:mm A or h.mm A", ErrInvalidTime, value)
}
