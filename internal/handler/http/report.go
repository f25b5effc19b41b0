package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/payroll"
	"github.com/facetrack-hrm/attendance-backend-go/internal/handler/http/response"
	reportService "github.com/facetrack-hrm/attendance-backend-go/internal/service/report"
)

type ReportHandler interface {
	GetDailyReport(w http.ResponseWriter, r *http.Request)
	GenerateMonthlyReport(w http.ResponseWriter, r *http.Request)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
	ExportMonthlyCSV(w http.ResponseWriter, r *http.Request)
	ExportMonthlyPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportService.ReportService
}

func NewReportHandler(service *reportService.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: service}
}

// GetDailyReport handles GET /reports/daily?date=YYYY-MM-DD
func (h *reportHandlerImpl) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	date, ok := dateParamOrToday(r)
	if !ok {
		response.BadRequest(w, "invalid date parameter, expected YYYY-MM-DD", nil)
		return
	}

	report, err := h.reportService.Daily(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// GenerateMonthlyReport handles POST /reports/monthly/generate
func (h *reportHandlerImpl) GenerateMonthlyReport(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateMonthlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	reports, err := h.reportService.GenerateMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly report generated", reports)
}

// GetMonthlyReport handles GET /reports/monthly?month=M&year=Y
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(r)
	if !ok {
		response.BadRequest(w, "invalid month or year parameter", nil)
		return
	}

	reports, err := h.reportService.GetMonthly(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// ExportMonthlyCSV handles GET /reports/monthly/export/csv?month=M&year=Y
func (h *reportHandlerImpl) ExportMonthlyCSV(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(r)
	if !ok {
		response.BadRequest(w, "invalid month or year parameter", nil)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="salary_report_%04d_%02d.csv"`, year, month))

	if err := h.reportService.ExportMonthlyCSV(r.Context(), w, month, year); err != nil {
		response.HandleError(w, err)
	}
}

// ExportMonthlyPDF handles GET /reports/monthly/export/pdf?month=M&year=Y
func (h *reportHandlerImpl) ExportMonthlyPDF(w http.ResponseWriter, r *http.Request) {
	month, year, ok := monthYearParams(r)
	if !ok {
		response.BadRequest(w, "invalid month or year parameter", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="salary_report_%04d_%02d.pdf"`, year, month))

	if err := h.reportService.ExportMonthlyPDF(r.Context(), w, month, year); err != nil {
		response.HandleError(w, err)
	}
}

func monthYearParams(r *http.Request) (month, year int, ok bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	return month, year, true
}
