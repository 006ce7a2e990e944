package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/holiday"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO holidays (date, name, type)
		VALUES ($1, $2, $3)
		RETURNING id, date, name, type, created_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query, newHoliday.Date, newHoliday.Name, newHoliday.Type).Scan(
		&created.ID, &created.Date, &created.Name, &created.Type, &created.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "uk_holidays_date") {
			return holiday.Holiday{}, holiday.ErrHolidayDateExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

// List implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) List(ctx context.Context, year *int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, name, type, created_at
		FROM holidays
		WHERE ($1::int IS NULL OR EXTRACT(YEAR FROM date) = $1)
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.ID, &hol.Date, &hol.Name, &hol.Type, &hol.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, hol)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// ListPublicBetween implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListPublicBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT date
		FROM holidays
		WHERE type = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, holiday.HolidayTypePublic, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	defer rows.Close()

	return scanDates(rows)
}

// IsPublicHoliday implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) IsPublicHoliday(ctx context.Context, date time.Time) (bool, error) {
	q := GetQuerier(ctx, h.db)

	query := `SELECT EXISTS (SELECT 1 FROM holidays WHERE date = $1 AND type = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, date, holiday.HolidayTypePublic).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check public holiday: %w", err)
	}
	return exists, nil
}
