package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/facetrack-hrm/attendance-backend-go/internal/handler/http/response"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
	holidayService "github.com/facetrack-hrm/attendance-backend-go/internal/service/holiday"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	IsHoliday(w http.ResponseWriter, r *http.Request)
	ListYearDates(w http.ResponseWriter, r *http.Request)
	ListRangeDates(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService *holidayService.HolidayService
}

func NewHolidayHandler(service *holidayService.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: service}
}

// Create handles POST /holidays
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created)
}

// BulkCreate handles POST /holidays/bulk - loads a batch of holidays,
// reporting per-entry errors without aborting the rest.
func (h *holidayHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req holiday.BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	if len(req.Holidays) == 0 {
		response.BadRequest(w, "holidays must be a non-empty array", nil)
		return
	}

	result, err := h.holidayService.BulkCreate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	msg := fmt.Sprintf("Created %d of %d holidays", len(result.Created), len(req.Holidays))
	response.Created(w, msg, result)
}

// Get handles GET /holidays/{holidayID}
func (h *holidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "holidayID")

	hol, err := h.holidayService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hol)
}

// List handles GET /holidays
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Update handles PUT /holidays/{holidayID}
func (h *holidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "holidayID")

	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	updated, err := h.holidayService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday updated", updated)
}

// Delete handles DELETE /holidays/{holidayID}
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "holidayID")

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// IsHoliday handles GET /holidays/check?date=YYYY-MM-DD&role=employee
func (h *holidayHandlerImpl) IsHoliday(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, ok := validator.IsValidDate(dateStr)
	if dateStr == "" {
		date, ok = time.Now(), true
	}
	if !ok {
		response.BadRequest(w, "invalid date parameter, expected YYYY-MM-DD", nil)
		return
	}

	role := employee.Role(r.URL.Query().Get("role"))
	if role == "" {
		role = employee.RoleEmployee
	}
	if !validator.IsInSlice(string(role), employee.RoleValues) {
		response.BadRequest(w, "role must be one of: employee, lecturer", nil)
		return
	}

	result, err := h.holidayService.IsHoliday(r.Context(), date, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRangeDates handles GET /holidays/range?start_date=...&end_date=...&role=employee
func (h *holidayHandlerImpl) ListRangeDates(w http.ResponseWriter, r *http.Request) {
	start, startOK := validator.IsValidDate(r.URL.Query().Get("start_date"))
	end, endOK := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !startOK || !endOK {
		response.BadRequest(w, "start_date and end_date are required (YYYY-MM-DD)", nil)
		return
	}
	if end.Before(start) {
		response.BadRequest(w, "end_date must not be before start_date", nil)
		return
	}

	var role *employee.Role
	if roleStr := r.URL.Query().Get("role"); roleStr != "" {
		if !validator.IsInSlice(roleStr, employee.RoleValues) {
			response.BadRequest(w, "role must be one of: employee, lecturer", nil)
			return
		}
		rl := employee.Role(roleStr)
		role = &rl
	}

	dates, err := h.holidayService.ListRangeDates(r.Context(), start, end, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dates)
}

// ListYearDates handles GET /holidays/year/{year}
func (h *holidayHandlerImpl) ListYearDates(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || !validator.IsValidYear(year) {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	dates, err := h.holidayService.ListYearDates(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dates)
}
