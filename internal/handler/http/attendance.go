package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/handler/http/response"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
	attendanceService "github.com/facetrack-hrm/attendance-backend-go/internal/service/attendance"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListByDay(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceService.AttendanceService
}

func NewAttendanceHandler(service *attendanceService.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: service}
}

// Mark handles POST /attendance - one clock event from a device.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Created {
		response.Created(w, "Attendance recorded", result)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated", result)
}

// ListAll handles GET /attendance/all - the complete log, newest day first.
func (h *attendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByDay handles GET /attendance?date=YYYY-MM-DD (defaults to today).
func (h *attendanceHandlerImpl) ListByDay(w http.ResponseWriter, r *http.Request) {
	day, ok := dateParamOrToday(r)
	if !ok {
		response.BadRequest(w, "invalid date parameter, expected YYYY-MM-DD", nil)
		return
	}

	records, err := h.attendanceService.ListByDay(r.Context(), day)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByEmployee handles GET /attendance/{employeeID}.
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	records, err := h.attendanceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// dateParamOrToday reads the optional ?date=YYYY-MM-DD query parameter,
// falling back to the current day.
func dateParamOrToday(r *http.Request) (time.Time, bool) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now(), true
	}
	return validator.IsValidDate(dateStr)
}
