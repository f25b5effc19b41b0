package attendance

import (
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MarkRequest is one clock event from a recognition device. Time is a full
// ISO-8601 timestamp; the service splits it into calendar day and wall-clock
// time of day.
type MarkRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Time       string `json:"time"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.Time); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be an ISO-8601 timestamp",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Day        string `json:"day"`
	FirstTime  string `json:"first_time"`
	LastTime   string `json:"last_time"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Name:       rec.Name,
		Day:        rec.Day.Format("2006-01-02"),
		FirstTime:  rec.FirstTime.String(),
		LastTime:   rec.LastTime.String(),
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rec.UpdatedAt.Format(time.RFC3339),
	}
}
