package http

import (
	"encoding/json"
	"net/http"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/handler/http/response"
	employeeService "github.com/facetrack-hrm/attendance-backend-go/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ImportCSV(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportTemplate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService *employeeService.EmployeeService
}

func NewEmployeeHandler(service *employeeService.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: service}
}

// Create handles POST /employees
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

// Get handles GET /employees/{employeeID}
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Update handles PUT /employees/{employeeID}
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", updated)
}

// UpdateSchedule handles PUT /employees/{employeeID}/schedule
func (h *employeeHandlerImpl) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req employee.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	updated, err := h.employeeService.UpdateSchedule(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated", updated)
}

// Delete handles DELETE /employees/{employeeID}
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.employeeService.Delete(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// ImportCSV handles POST /employees/import (multipart form, field "file")
func (h *employeeHandlerImpl) ImportCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "missing file upload field \"file\"", nil)
		return
	}
	defer file.Close()

	result, err := h.employeeService.ImportCSV(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import finished", result)
}

// ExportCSV handles GET /employees/export
func (h *employeeHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.csv"`)

	if err := h.employeeService.ExportCSV(r.Context(), w); err != nil {
		response.HandleError(w, err)
	}
}

// ExportTemplate handles GET /employees/import/template
func (h *employeeHandlerImpl) ExportTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="employees_template.csv"`)

	if err := h.employeeService.ExportTemplate(w); err != nil {
		response.HandleError(w, err)
	}
}
