package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo mirrors the storage upsert protocol in memory: the first
// event of a day inserts with last_time = first_time, later events only move
// last_time.
type fakeAttendanceRepo struct {
	records map[string]attendance.Record // key employee_id|day
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func recordKey(employeeID string, day time.Time) string {
	return employeeID + "|" + day.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, bool, error) {
	key := recordKey(rec.EmployeeID, rec.Day)
	if existing, ok := f.records[key]; ok {
		existing.LastTime = rec.FirstTime
		existing.Name = rec.Name
		existing.UpdatedAt = time.Now()
		f.records[key] = existing
		return existing, false, nil
	}

	f.nextID++
	rec.ID = fmt.Sprintf("rec-%d", f.nextID)
	rec.LastTime = rec.FirstTime
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.records[key] = rec
	return rec, true, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, day time.Time) (attendance.Record, error) {
	if rec, ok := f.records[recordKey(employeeID, day)]; ok {
		return rec, nil
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListAll(_ context.Context) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDay(_ context.Context, day time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Day.Equal(day) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListInRange(_ context.Context, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if !rec.Day.Before(start) && !rec.Day.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) DeleteByEmployee(_ context.Context, employeeID string) error {
	for key, rec := range f.records {
		if rec.EmployeeID == employeeID {
			delete(f.records, key)
		}
	}
	return nil
}

func TestMarkFirstEventCreates(t *testing.T) {
	ctx := context.Background()
	service := NewAttendanceService(newFakeAttendanceRepo())

	result, err := service.Mark(ctx, attendance.MarkRequest{
		EmployeeID: "EMP001",
		Name:       "Jane Doe",
		Time:       "2025-03-03T08:02:15Z",
	})
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, "2025-03-03", result.Record.Day)
	assert.Equal(t, "08:02:15", result.Record.FirstTime)
	assert.Equal(t, "08:02:15", result.Record.LastTime)
}

func TestMarkLaterEventMovesLastTime(t *testing.T) {
	ctx := context.Background()
	service := NewAttendanceService(newFakeAttendanceRepo())

	_, err := service.Mark(ctx, attendance.MarkRequest{
		EmployeeID: "EMP001", Name: "Jane Doe", Time: "2025-03-03T08:02:15Z",
	})
	require.NoError(t, err)

	result, err := service.Mark(ctx, attendance.MarkRequest{
		EmployeeID: "EMP001", Name: "Jane Doe", Time: "2025-03-03T17:01:40Z",
	})
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, "08:02:15", result.Record.FirstTime)
	assert.Equal(t, "17:01:40", result.Record.LastTime)
}

func TestMarkSeparateDaysSeparateRecords(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	service := NewAttendanceService(repo)

	first, err := service.Mark(ctx, attendance.MarkRequest{
		EmployeeID: "EMP001", Name: "Jane Doe", Time: "2025-03-03T08:00:00Z",
	})
	require.NoError(t, err)

	second, err := service.Mark(ctx, attendance.MarkRequest{
		EmployeeID: "EMP001", Name: "Jane Doe", Time: "2025-03-04T08:00:00Z",
	})
	require.NoError(t, err)

	assert.True(t, first.Created)
	assert.True(t, second.Created)

	records, err := service.ListByEmployee(ctx, "EMP001")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMarkValidation(t *testing.T) {
	ctx := context.Background()
	service := NewAttendanceService(newFakeAttendanceRepo())

	cases := []struct {
		name string
		req  attendance.MarkRequest
	}{
		{"missing employee id", attendance.MarkRequest{Name: "Jane", Time: "2025-03-03T08:00:00Z"}},
		{"missing name", attendance.MarkRequest{EmployeeID: "EMP001", Time: "2025-03-03T08:00:00Z"}},
		{"missing time", attendance.MarkRequest{EmployeeID: "EMP001", Name: "Jane"}},
		{"malformed time", attendance.MarkRequest{EmployeeID: "EMP001", Name: "Jane", Time: "yesterday"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := service.Mark(ctx, c.req)
			assert.Error(t, err)
		})
	}
}

func TestGetByEmployeeAndDayNotFound(t *testing.T) {
	ctx := context.Background()
	service := NewAttendanceService(newFakeAttendanceRepo())

	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	_, err := service.GetByEmployeeAndDay(ctx, "EMP404", day)
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestListByDay(t *testing.T) {
	ctx := context.Background()
	service := NewAttendanceService(newFakeAttendanceRepo())

	for _, req := range []attendance.MarkRequest{
		{EmployeeID: "EMP001", Name: "Jane", Time: "2025-03-03T08:00:00Z"},
		{EmployeeID: "EMP002", Name: "John", Time: "2025-03-03T08:05:00Z"},
		{EmployeeID: "EMP001", Name: "Jane", Time: "2025-03-04T08:00:00Z"},
	} {
		_, err := service.Mark(ctx, req)
		require.NoError(t, err)
	}

	records, err := service.ListByDay(ctx, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	service := NewAttendanceService(newFakeAttendanceRepo())

	for _, req := range []attendance.MarkRequest{
		{EmployeeID: "EMP001", Name: "Jane", Time: "2025-03-03T08:00:00Z"},
		{EmployeeID: "EMP002", Name: "John", Time: "2025-03-03T08:05:00Z"},
		{EmployeeID: "EMP001", Name: "Jane", Time: "2025-03-04T08:00:00Z"},
	} {
		_, err := service.Mark(ctx, req)
		require.NoError(t, err)
	}

	records, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
