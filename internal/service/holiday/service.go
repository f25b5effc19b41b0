package holiday

import (
	"context"
	"log/slog"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
)

type HolidayService struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) *HolidayService {
	return &HolidayService{holidayRepo: holidayRepo}
}

// Create adds a holiday after checking that its date range does not intersect
// any existing holiday. Role scope is ignored for the check: one holiday per
// date, full stop.
func (s *HolidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := req.ToHoliday()

	if err := s.rejectOverlap(ctx, h, nil); err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.holidayRepo.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(created), nil
}

// BulkCreate loads a batch of holidays in one call. Every entry goes through
// the same validation and overlap check as a single create; failures are
// itemized per entry and do not abort the rest of the batch, so entries
// created earlier in the batch already count for later overlap checks.
func (s *HolidayService) BulkCreate(ctx context.Context, req holiday.BulkCreateRequest) (holiday.BulkCreateResult, error) {
	result := holiday.BulkCreateResult{
		Created: make([]holiday.HolidayResponse, 0, len(req.Holidays)),
	}

	for i, item := range req.Holidays {
		created, err := s.Create(ctx, item)
		if err != nil {
			result.Errors = append(result.Errors, holiday.BulkItemError{
				Index:   i,
				Name:    item.Name,
				Message: err.Error(),
			})
			continue
		}
		result.Created = append(result.Created, created)
	}

	slog.Info("Bulk created holidays", "created", len(result.Created), "errors", len(result.Errors))
	return result, nil
}

// Get returns one holiday by id.
func (s *HolidayService) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(h), nil
}

// Update replaces a holiday. The overlap check runs here too, excluding the
// holiday's own row, so an update cannot move a holiday onto an occupied date.
func (s *HolidayService) Update(ctx context.Context, id string, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := req.ToHoliday()
	h.ID = existing.ID

	if err := s.rejectOverlap(ctx, h, &existing.ID); err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := s.holidayRepo.Update(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(updated), nil
}

// Delete removes a holiday.
func (s *HolidayService) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

// List returns all holidays ordered by start date.
func (s *HolidayService) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}

// IsHoliday resolves one date for one role against the stored calendar.
func (s *HolidayService) IsHoliday(ctx context.Context, date time.Time, role employee.Role) (holiday.IsHolidayResponse, error) {
	holidays, err := s.holidayRepo.ListInRange(ctx, date, date)
	if err != nil {
		return holiday.IsHolidayResponse{}, err
	}

	for _, h := range holidays {
		if h.Contains(date) && h.AppliesToRole(role) {
			resp := holiday.ToResponse(h)
			return holiday.IsHolidayResponse{IsHoliday: true, Holiday: &resp}, nil
		}
	}

	return holiday.IsHolidayResponse{}, nil
}

// ListYearDates expands every holiday touching the given year into individual
// calendar dates; a period contributes one entry per day with its position in
// the period.
func (s *HolidayService) ListYearDates(ctx context.Context, year int) ([]holiday.HolidayDateResponse, error) {
	holidays, err := s.holidayRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	return expandDates(holidays, yearStart, yearEnd), nil
}

// ListRangeDates expands every active holiday overlapping [start, end] into
// individual calendar dates, clipped to the window. An optional role narrows
// the result to holidays that apply to it.
func (s *HolidayService) ListRangeDates(ctx context.Context, start, end time.Time, role *employee.Role) ([]holiday.HolidayDateResponse, error) {
	holidays, err := s.holidayRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if role != nil {
		filtered := holidays[:0]
		for _, h := range holidays {
			if h.AppliesToRole(*role) {
				filtered = append(filtered, h)
			}
		}
		holidays = filtered
	}

	return expandDates(holidays, holiday.CivilDate(start), holiday.CivilDate(end)), nil
}

// expandDates flattens holidays into per-date entries within [windowStart,
// windowEnd]. Period days outside the window are dropped but keep their
// position within the full period.
func expandDates(holidays []holiday.Holiday, windowStart, windowEnd time.Time) []holiday.HolidayDateResponse {
	var dates []holiday.HolidayDateResponse
	for _, h := range holidays {
		multiplier, _ := h.SalaryMultiplier.Float64()

		if h.Type == holiday.TypeSingleDay || h.EndDate == nil {
			d := holiday.CivilDate(h.StartDate)
			if d.Before(windowStart) || d.After(windowEnd) {
				continue
			}
			dates = append(dates, holiday.HolidayDateResponse{
				Date:             d.Format("2006-01-02"),
				Name:             h.Name,
				Category:         string(h.Category),
				SalaryMultiplier: multiplier,
			})
			continue
		}

		start := holiday.CivilDate(h.StartDate)
		end := holiday.CivilDate(*h.EndDate)
		total := int(end.Sub(start).Hours()/24) + 1

		day := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			day++
			if d.Before(windowStart) || d.After(windowEnd) {
				continue
			}
			dates = append(dates, holiday.HolidayDateResponse{
				Date:             d.Format("2006-01-02"),
				Name:             h.Name,
				Category:         string(h.Category),
				SalaryMultiplier: multiplier,
				IsPeriodPart:     true,
				PeriodDay:        day,
				TotalPeriodDays:  total,
			})
		}
	}

	return dates
}

func (s *HolidayService) rejectOverlap(ctx context.Context, h holiday.Holiday, excludeID *string) error {
	end := h.StartDate
	if h.Type == holiday.TypePeriod && h.EndDate != nil {
		end = *h.EndDate
	}

	overlapping, err := s.holidayRepo.ListOverlapping(ctx, h.StartDate, end, excludeID)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		return holiday.ErrHolidayOverlap
	}
	return nil
}
