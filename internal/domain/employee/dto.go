package employee

import (
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/schedule"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	EmployeeID        string   `json:"employee_id"`
	FullName          string   `json:"full_name"`
	Role              string   `json:"role"`
	HourlyRate        float64  `json:"hourly_rate"`
	StandardWorkHours *float64 `json:"standard_work_hours,omitempty"`
	ScheduleType      string   `json:"schedule_type,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, lecturer",
		})
	}

	if r.HourlyRate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be greater than zero",
		})
	}

	if r.StandardWorkHours != nil && (*r.StandardWorkHours <= 0 || *r.StandardWorkHours > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_work_hours",
			Message: "standard_work_hours must be between 0 and 12",
		})
	}

	if r.ScheduleType == "" {
		r.ScheduleType = string(ScheduleTypeFixed)
	}
	if !validator.IsInSlice(r.ScheduleType, ScheduleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_type",
			Message: "schedule_type must be one of: fixed, flexible, shift",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEmployee builds the entity from a validated request, synthesizing the
// default weekly schedule.
func (r *CreateEmployeeRequest) ToEmployee() Employee {
	hours := DefaultStandardWorkHours
	if r.StandardWorkHours != nil {
		hours = *r.StandardWorkHours
	}
	return Employee{
		EmployeeID:        r.EmployeeID,
		FullName:          r.FullName,
		Role:              Role(r.Role),
		HourlyRate:        decimal.NewFromFloat(r.HourlyRate),
		StandardWorkHours: hours,
		ScheduleType:      ScheduleType(r.ScheduleType),
		WorkSchedule:      schedule.Default(),
	}
}

type UpdateEmployeeRequest struct {
	FullName          *string  `json:"full_name,omitempty"`
	Role              *string  `json:"role,omitempty"`
	HourlyRate        *float64 `json:"hourly_rate,omitempty"`
	StandardWorkHours *float64 `json:"standard_work_hours,omitempty"`
	ScheduleType      *string  `json:"schedule_type,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, lecturer",
		})
	}

	if r.HourlyRate != nil && *r.HourlyRate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be greater than zero",
		})
	}

	if r.StandardWorkHours != nil && (*r.StandardWorkHours <= 0 || *r.StandardWorkHours > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_work_hours",
			Message: "standard_work_hours must be between 0 and 12",
		})
	}

	if r.ScheduleType != nil && !validator.IsInSlice(*r.ScheduleType, ScheduleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_type",
			Message: "schedule_type must be one of: fixed, flexible, shift",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	WorkSchedule      schedule.WeeklySchedule `json:"work_schedule"`
	StandardWorkHours *float64                `json:"standard_work_hours,omitempty"`
	ScheduleType      *string                 `json:"schedule_type,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := r.WorkSchedule.Validate(); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "work_schedule",
			Message: err.Error(),
		})
	}

	if r.StandardWorkHours != nil && (*r.StandardWorkHours <= 0 || *r.StandardWorkHours > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_work_hours",
			Message: "standard_work_hours must be between 0 and 12",
		})
	}

	if r.ScheduleType != nil && !validator.IsInSlice(*r.ScheduleType, ScheduleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_type",
			Message: "schedule_type must be one of: fixed, flexible, shift",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                string                  `json:"id"`
	EmployeeID        string                  `json:"employee_id"`
	FullName          string                  `json:"full_name"`
	Role              string                  `json:"role"`
	HourlyRate        float64                 `json:"hourly_rate"`
	StandardWorkHours float64                 `json:"standard_work_hours"`
	ScheduleType      string                  `json:"schedule_type"`
	WorkSchedule      schedule.WeeklySchedule `json:"work_schedule"`
	CreatedAt         string                  `json:"created_at"`
	UpdatedAt         string                  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	rate, _ := e.HourlyRate.Float64()
	return EmployeeResponse{
		ID:                e.ID,
		EmployeeID:        e.EmployeeID,
		FullName:          e.FullName,
		Role:              string(e.Role),
		HourlyRate:        rate,
		StandardWorkHours: e.StandardWorkHours,
		ScheduleType:      string(e.ScheduleType),
		WorkSchedule:      e.WorkSchedule,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         e.UpdatedAt.Format(time.RFC3339),
	}
}

// ImportRowError reports a single rejected row of a CSV import.
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type ImportResult struct {
	TotalRows    int              `json:"total_rows"`
	Imported     int              `json:"imported"`
	Duplicates   int              `json:"duplicates"`
	DuplicateIDs []string         `json:"duplicate_ids,omitempty"`
	Errors       []ImportRowError `json:"errors,omitempty"`
}
