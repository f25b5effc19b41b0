package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/schedule"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
)

type AttendanceService struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// MarkResult reports the outcome of one clock event.
type MarkResult struct {
	Record  attendance.RecordResponse `json:"record"`
	Created bool                      `json:"created"`
}

// Mark ingests one clock event from a recognition device. The timestamp is
// split into a calendar day and a wall-clock time of day; the first event of
// the day creates the record, later events only move last_time. Marks are
// accepted for employee ids not yet in the roster - devices can be ahead of
// the directory, and payroll skips unknown ids.
func (s *AttendanceService) Mark(ctx context.Context, req attendance.MarkRequest) (MarkResult, error) {
	if err := req.Validate(); err != nil {
		return MarkResult{}, err
	}

	t, _ := validator.IsValidDateTime(req.Time)

	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Day:        holiday.CivilDate(t),
		FirstTime:  schedule.TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second()),
	}

	saved, created, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return MarkResult{}, fmt.Errorf("mark attendance: %w", err)
	}

	return MarkResult{
		Record:  attendance.ToResponse(saved),
		Created: created,
	}, nil
}

// GetByEmployeeAndDay returns one employee's record for one day.
func (s *AttendanceService) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (attendance.RecordResponse, error) {
	rec, err := s.attendanceRepo.GetByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(rec), nil
}

// ListAll returns the complete attendance log, newest day first.
func (s *AttendanceService) ListAll(ctx context.Context) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ListByDay returns every record of one calendar day.
func (s *AttendanceService) ListByDay(ctx context.Context, day time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// ListByEmployee returns an employee's full attendance history, newest first.
func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func toResponses(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses
}
