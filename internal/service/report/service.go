package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/payroll"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/export"
	"github.com/facetrack-hrm/attendance-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type ReportService struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	holidayRepo    holiday.HolidayRepository
	reportRepo     payroll.SalaryReportRepository
}

func NewReportService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	reportRepo payroll.SalaryReportRepository,
) *ReportService {
	return &ReportService{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		holidayRepo:    holidayRepo,
		reportRepo:     reportRepo,
	}
}

// Daily derives the attendance report for one calendar day: one row per
// roster employee, present or not, plus a status breakdown.
func (s *ReportService) Daily(ctx context.Context, date time.Time) (payroll.DailyReportResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.DailyReportResponse{}, err
	}

	records, err := s.attendanceRepo.ListByDay(ctx, date)
	if err != nil {
		return payroll.DailyReportResponse{}, err
	}
	recordsByEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		recordsByEmployee[rec.EmployeeID] = rec
	}

	cal, err := s.loadCalendar(ctx, date, date)
	if err != nil {
		return payroll.DailyReportResponse{}, err
	}

	report := payroll.DailyReportResponse{
		Date: holiday.CivilDate(date).Format("2006-01-02"),
		Rows: make([]payroll.DailyRowResponse, 0, len(employees)),
	}

	for _, emp := range employees {
		var rec *attendance.Record
		if r, ok := recordsByEmployee[emp.EmployeeID]; ok {
			rec = &r
		}

		result := payroll.DeriveDaily(emp, date, rec, cal.Resolve(date, emp.Role))
		report.Rows = append(report.Rows, payroll.ToDailyRowResponse(result))

		report.Summary.Total++
		switch result.Status {
		case payroll.StatusPresent:
			report.Summary.Present++
		case payroll.StatusAbsent:
			report.Summary.Absent++
		case payroll.StatusPaidLeave:
			report.Summary.PaidLeave++
		case payroll.StatusHolidayWork:
			report.Summary.HolidayWork++
		}
	}

	return report, nil
}

// GenerateMonthly folds the month's attendance into per-employee salary
// summaries and persists them. The upserts run in one transaction, so a
// failed generation leaves the previous run intact; re-running replaces the
// stored figures row for row.
func (s *ReportService) GenerateMonthly(ctx context.Context, req payroll.GenerateMonthlyRequest) ([]payroll.SalaryReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	month := time.Month(req.Month)
	monthStart := time.Date(req.Year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListInRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	cal, err := s.loadCalendar(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	summaries := payroll.AggregateMonth(employees, records, cal, req.Year, month)

	reports := make([]payroll.SalaryReport, 0, len(summaries))
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, summary := range summaries {
			saved, err := s.reportRepo.Upsert(txCtx, payroll.FromSummary(summary))
			if err != nil {
				return fmt.Errorf("persist report for %s: %w", summary.EmployeeID, err)
			}
			saved.EmployeeName = &summary.Name
			role := string(summary.Role)
			saved.EmployeeRole = &role
			rate := summary.HourlyRate
			saved.HourlyRate = &rate
			reports = append(reports, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Generated monthly salary reports", "year", req.Year, "month", req.Month, "employees", len(reports))

	responses := make([]payroll.SalaryReportResponse, 0, len(reports))
	for _, rep := range reports {
		responses = append(responses, payroll.ToSalaryReportResponse(rep))
	}
	return responses, nil
}

// GetMonthly returns the stored reports of one period.
func (s *ReportService) GetMonthly(ctx context.Context, month, year int) ([]payroll.SalaryReportResponse, error) {
	req := payroll.GenerateMonthlyRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reports, err := s.reportRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, payroll.ErrReportNotFound
	}

	responses := make([]payroll.SalaryReportResponse, 0, len(reports))
	for _, rep := range reports {
		responses = append(responses, payroll.ToSalaryReportResponse(rep))
	}
	return responses, nil
}

var monthlyCSVHeader = []string{
	"employee_id", "employee_name", "role", "month", "year",
	"total_hours", "days_worked", "late_days", "late_minutes",
	"overtime_hours", "holiday_hours", "paid_leave_hours",
	"base_salary", "holiday_bonus", "paid_leave_salary", "total_salary",
}

// ExportMonthlyCSV writes the stored reports of one period as CSV.
func (s *ReportService) ExportMonthlyCSV(ctx context.Context, w io.Writer, month, year int) error {
	reports, err := s.reportRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return payroll.ErrReportNotFound
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.EmployeeID,
			strDeref(r.EmployeeName),
			strDeref(r.EmployeeRole),
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Year),
			formatHours(r.TotalHours),
			strconv.Itoa(r.TotalDaysWorked),
			strconv.Itoa(r.LateDays),
			strconv.Itoa(r.TotalLateMinutes),
			formatHours(r.OvertimeHours),
			formatHours(r.HolidayHours),
			formatHours(r.PaidLeaveHours),
			r.BaseSalary.StringFixed(2),
			r.HolidayBonus.StringFixed(2),
			r.PaidLeaveSalary.StringFixed(2),
			r.TotalSalary.StringFixed(2),
		})
	}

	return export.WriteCSV(w, monthlyCSVHeader, rows)
}

// ExportMonthlyPDF renders the stored reports of one period as a landscape
// table with a grand total footer.
func (s *ReportService) ExportMonthlyPDF(ctx context.Context, w io.Writer, month, year int) error {
	reports, err := s.reportRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		return payroll.ErrReportNotFound
	}

	table := export.PDFTable{
		Title:    "Monthly Salary Report",
		Subtitle: fmt.Sprintf("Period: %s %d", time.Month(month), year),
		Header:   []string{"ID", "Name", "Role", "Hours", "Days", "Late", "Overtime", "Holiday h", "Leave h", "Base", "Bonus", "Leave Pay", "Total"},
		Widths:   []float64{20, 48, 18, 16, 12, 12, 18, 18, 16, 24, 22, 22, 26},
	}

	grandTotal := decimal.Zero
	for _, r := range reports {
		table.Rows = append(table.Rows, []string{
			r.EmployeeID,
			strDeref(r.EmployeeName),
			strDeref(r.EmployeeRole),
			formatHours(r.TotalHours),
			strconv.Itoa(r.TotalDaysWorked),
			strconv.Itoa(r.LateDays),
			formatHours(r.OvertimeHours),
			formatHours(r.HolidayHours),
			formatHours(r.PaidLeaveHours),
			r.BaseSalary.StringFixed(2),
			r.HolidayBonus.StringFixed(2),
			r.PaidLeaveSalary.StringFixed(2),
			r.TotalSalary.StringFixed(2),
		})
		grandTotal = grandTotal.Add(r.TotalSalary)
	}
	table.Footer = []string{
		fmt.Sprintf("Employees: %d", len(reports)),
		fmt.Sprintf("Grand total: %s", grandTotal.StringFixed(2)),
	}

	return export.WritePDF(w, table)
}

// loadCalendar builds the in-memory holiday index for [start, end].
func (s *ReportService) loadCalendar(ctx context.Context, start, end time.Time) (*holiday.Calendar, error) {
	holidays, err := s.holidayRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return holiday.NewCalendar(holidays), nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
