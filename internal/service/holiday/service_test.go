package holiday

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHolidayRepo is an in-memory HolidayRepository for service tests.
type fakeHolidayRepo struct {
	holidays []holiday.Holiday
	nextID   int
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.nextID++
	h.ID = fmt.Sprintf("hol-%d", f.nextID)
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, id string) (holiday.Holiday, error) {
	for _, h := range f.holidays {
		if h.ID == id {
			return h, nil
		}
	}
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) Update(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	for i, existing := range f.holidays {
		if existing.ID == h.ID {
			h.CreatedAt = existing.CreatedAt
			h.UpdatedAt = time.Now()
			f.holidays[i] = h
			return h, nil
		}
	}
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) Delete(_ context.Context, id string) error {
	for i, h := range f.holidays {
		if h.ID == id {
			f.holidays = append(f.holidays[:i], f.holidays[i+1:]...)
			return nil
		}
	}
	return holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) List(_ context.Context) ([]holiday.Holiday, error) {
	return append([]holiday.Holiday(nil), f.holidays...), nil
}

func (f *fakeHolidayRepo) ListOverlapping(_ context.Context, start, end time.Time, excludeID *string) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if excludeID != nil && h.ID == *excludeID {
			continue
		}
		if h.OverlapsRange(start, end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListInRange(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.IsActive && h.OverlapsRange(start, end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListByYear(_ context.Context, year int) ([]holiday.Holiday, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return f.ListInRange(context.Background(), start, end)
}

func strPtr(s string) *string { return &s }

func newYearRequest() holiday.CreateHolidayRequest {
	return holiday.CreateHolidayRequest{
		Name:      "New Year",
		StartDate: "2025-01-01",
		Type:      "single_day",
		LeaveType: "paid_holiday",
		AppliesTo: "all",
	}
}

func TestHolidayServiceCreate(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	created, err := service.Create(ctx, newYearRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New Year", created.Name)
	assert.Equal(t, "2025-01-01", created.StartDate)
	assert.Equal(t, "paid_holiday", created.LeaveType)
	// Defaults fill in for omitted fields.
	assert.True(t, created.IsActive)
	assert.False(t, created.AllowWork)
	assert.Equal(t, "all", created.AppliesTo)
}

func TestHolidayServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	_, err := service.Create(ctx, holiday.CreateHolidayRequest{StartDate: "not-a-date"})
	require.Error(t, err)

	_, err = service.Create(ctx, holiday.CreateHolidayRequest{
		Name:      "Break",
		StartDate: "2025-06-01",
		Type:      "period",
		// period without end_date
	})
	require.Error(t, err)

	_, err = service.Create(ctx, holiday.CreateHolidayRequest{
		Name:      "Backwards",
		StartDate: "2025-06-10",
		EndDate:   strPtr("2025-06-01"),
		Type:      "period",
	})
	require.Error(t, err)
}

func TestHolidayServiceCreateRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	_, err := service.Create(ctx, newYearRequest())
	require.NoError(t, err)

	// A period reaching across the existing single day is rejected.
	_, err = service.Create(ctx, holiday.CreateHolidayRequest{
		Name:      "Year-end break",
		StartDate: "2024-12-30",
		EndDate:   strPtr("2025-01-02"),
		Type:      "period",
	})
	assert.ErrorIs(t, err, holiday.ErrHolidayOverlap)

	// Overlap ignores role scope: a lecturer-only holiday on the same day
	// still conflicts.
	req := newYearRequest()
	req.Name = "Lecturer day"
	req.AppliesTo = "lecturer_only"
	_, err = service.Create(ctx, req)
	assert.ErrorIs(t, err, holiday.ErrHolidayOverlap)

	// An adjacent date is fine.
	req = newYearRequest()
	req.Name = "Day after"
	req.StartDate = "2025-01-02"
	_, err = service.Create(ctx, req)
	assert.NoError(t, err)
}

func TestHolidayServiceUpdateRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	first, err := service.Create(ctx, newYearRequest())
	require.NoError(t, err)

	secondReq := newYearRequest()
	secondReq.Name = "Staff day"
	secondReq.StartDate = "2025-01-10"
	second, err := service.Create(ctx, secondReq)
	require.NoError(t, err)

	// Moving the second holiday onto the first is rejected.
	moveReq := newYearRequest()
	moveReq.Name = "Staff day"
	moveReq.StartDate = "2025-01-01"
	_, err = service.Update(ctx, second.ID, moveReq)
	assert.ErrorIs(t, err, holiday.ErrHolidayOverlap)

	// Updating a holiday in place does not conflict with itself.
	renameReq := newYearRequest()
	renameReq.Name = "New Year's Day"
	updated, err := service.Update(ctx, first.ID, renameReq)
	require.NoError(t, err)
	assert.Equal(t, "New Year's Day", updated.Name)
}

func TestHolidayServiceUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	_, err := service.Update(ctx, "missing", newYearRequest())
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestHolidayServiceIsHoliday(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	req := newYearRequest()
	req.AppliesTo = "employee_only"
	_, err := service.Create(ctx, req)
	require.NoError(t, err)

	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	res, err := service.IsHoliday(ctx, jan1, employee.RoleEmployee)
	require.NoError(t, err)
	assert.True(t, res.IsHoliday)
	require.NotNil(t, res.Holiday)
	assert.Equal(t, "New Year", res.Holiday.Name)

	// Scoped to employees only.
	res, err = service.IsHoliday(ctx, jan1, employee.RoleLecturer)
	require.NoError(t, err)
	assert.False(t, res.IsHoliday)

	res, err = service.IsHoliday(ctx, jan1.AddDate(0, 0, 1), employee.RoleEmployee)
	require.NoError(t, err)
	assert.False(t, res.IsHoliday)
}

func TestHolidayServiceListYearDates(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	_, err := service.Create(ctx, newYearRequest())
	require.NoError(t, err)

	periodReq := holiday.CreateHolidayRequest{
		Name:      "Spring break",
		StartDate: "2025-04-14",
		EndDate:   strPtr("2025-04-18"),
		Type:      "period",
		Category:  "company",
	}
	_, err = service.Create(ctx, periodReq)
	require.NoError(t, err)

	dates, err := service.ListYearDates(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, dates, 6)

	assert.Equal(t, "2025-01-01", dates[0].Date)
	assert.False(t, dates[0].IsPeriodPart)

	for i, d := range dates[1:] {
		assert.True(t, d.IsPeriodPart)
		assert.Equal(t, i+1, d.PeriodDay)
		assert.Equal(t, 5, d.TotalPeriodDays)
	}
	assert.Equal(t, "2025-04-14", dates[1].Date)
	assert.Equal(t, "2025-04-18", dates[5].Date)
}

func TestHolidayServiceBulkCreate(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	independence := newYearRequest()
	independence.Name = "Independence Day"
	independence.StartDate = "2025-08-17"

	onNewYear := newYearRequest()
	onNewYear.Name = "Duplicate New Year"

	invalid := holiday.CreateHolidayRequest{StartDate: "not-a-date"}

	result, err := service.BulkCreate(ctx, holiday.BulkCreateRequest{
		Holidays: []holiday.CreateHolidayRequest{newYearRequest(), independence, onNewYear, invalid},
	})
	require.NoError(t, err)

	// Good entries land, bad entries are itemized without aborting the batch.
	require.Len(t, result.Created, 2)
	assert.Equal(t, "New Year", result.Created[0].Name)
	assert.Equal(t, "Independence Day", result.Created[1].Name)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].Index)
	assert.Equal(t, "Duplicate New Year", result.Errors[0].Name)
	assert.Contains(t, result.Errors[0].Message, "overlap")
	assert.Equal(t, 3, result.Errors[1].Index)
}

func TestHolidayServiceBulkCreateChecksWithinBatch(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	period := holiday.CreateHolidayRequest{
		Name:      "Year-end break",
		StartDate: "2025-12-29",
		EndDate:   strPtr("2025-12-31"),
		Type:      "period",
	}
	inside := newYearRequest()
	inside.Name = "Inside the break"
	inside.StartDate = "2025-12-30"

	result, err := service.BulkCreate(ctx, holiday.BulkCreateRequest{
		Holidays: []holiday.CreateHolidayRequest{period, inside},
	})
	require.NoError(t, err)

	require.Len(t, result.Created, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Index)
}

func TestHolidayServiceListRangeDates(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	_, err := service.Create(ctx, newYearRequest())
	require.NoError(t, err)

	_, err = service.Create(ctx, holiday.CreateHolidayRequest{
		Name:      "Spring break",
		StartDate: "2025-04-14",
		EndDate:   strPtr("2025-04-18"),
		Type:      "period",
	})
	require.NoError(t, err)

	lecturerReq := newYearRequest()
	lecturerReq.Name = "Lecturer day"
	lecturerReq.StartDate = "2025-04-21"
	lecturerReq.AppliesTo = "lecturer_only"
	_, err = service.Create(ctx, lecturerReq)
	require.NoError(t, err)

	// The window clips the period but keeps each day's position in it.
	start := time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	dates, err := service.ListRangeDates(ctx, start, end, nil)
	require.NoError(t, err)
	require.Len(t, dates, 4)
	assert.Equal(t, "2025-04-16", dates[0].Date)
	assert.Equal(t, 3, dates[0].PeriodDay)
	assert.Equal(t, 5, dates[0].TotalPeriodDays)
	assert.Equal(t, "2025-04-21", dates[3].Date)

	// An employee role filters out the lecturer-only holiday.
	role := employee.RoleEmployee
	dates, err = service.ListRangeDates(ctx, start, end, &role)
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.Equal(t, "2025-04-18", dates[2].Date)
}

func TestHolidayServiceDelete(t *testing.T) {
	ctx := context.Background()
	service := NewHolidayService(&fakeHolidayRepo{})

	created, err := service.Create(ctx, newYearRequest())
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.ErrorIs(t, service.Delete(ctx, created.ID), holiday.ErrHolidayNotFound)
}
