package response

import (
	"errors"
	"net/http"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/payroll"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/user"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayOverlap):
		Conflict(w, "Holiday dates overlap an existing holiday")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Report errors
	case errors.Is(err, payroll.ErrReportNotFound):
		NotFound(w, "No salary reports generated for this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
