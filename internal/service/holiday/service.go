package holiday

import (
	"context"
	"log/slog"

	"github.com/vilochanaudantha15/hris-backend/internal/domain/holiday"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date)

	h, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date: date,
		Name: req.Name,
		Type: holiday.HolidayType(req.Type),
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	slog.Info("Holiday added", "date", req.Date, "type", req.Type)
	return holiday.NewHolidayResponse(h), nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, req holiday.ListHolidaysRequest) ([]holiday.HolidayResponse, error) {
	if req.Year != nil && !validator.IsValidYear(*req.Year) {
		return nil, validator.ValidationErrors{{Field: "year", Message: "must be a valid year"}}
	}

	holidays, err := s.holidayRepo.List(ctx, req.Year)
	if err != nil {
		return nil, err
	}
	if len(holidays) == 0 {
		return nil, holiday.ErrHolidayNotFound
	}

	out := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, holiday.NewHolidayResponse(h))
	}
	return out, nil
}
