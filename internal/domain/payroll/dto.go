package payroll

import (
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type GenerateMonthlyRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DailyRowResponse is one employee's derived outcome in a daily report.
type DailyRowResponse struct {
	EmployeeID        string  `json:"employee_id"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Date              string  `json:"date"`
	FirstTime         *string `json:"first_time,omitempty"`
	LastTime          *string `json:"last_time,omitempty"`
	WorkHours         float64 `json:"work_hours"`
	LateMinutes       int     `json:"late_minutes"`
	OvertimeHours     float64 `json:"overtime_hours"`
	Status            string  `json:"status"`
	IsWorkDay         bool    `json:"is_work_day"`
	IsHoliday         bool    `json:"is_holiday"`
	HolidayName       *string `json:"holiday_name,omitempty"`
	LeaveType         *string `json:"leave_type,omitempty"`
	SalaryPolicy      *string `json:"salary_policy,omitempty"`
	MultiplierApplied float64 `json:"multiplier_applied"`
	HourlyRate        float64 `json:"hourly_rate"`
	DailySalary       float64 `json:"daily_salary"`
}

func ToDailyRowResponse(r DailyResult) DailyRowResponse {
	multiplier, _ := r.MultiplierApplied.Float64()
	rate, _ := r.HourlyRate.Float64()
	salary, _ := r.DailySalary.Float64()

	resp := DailyRowResponse{
		EmployeeID:        r.EmployeeID,
		Name:              r.Name,
		Role:              string(r.Role),
		Date:              r.Date.Format("2006-01-02"),
		WorkHours:         r.WorkHours,
		LateMinutes:       r.LateMinutes,
		OvertimeHours:     r.OvertimeHours,
		Status:            string(r.Status),
		IsWorkDay:         r.IsWorkDay,
		IsHoliday:         r.IsHoliday,
		HolidayName:       r.HolidayName,
		MultiplierApplied: multiplier,
		HourlyRate:        rate,
		DailySalary:       salary,
	}
	if r.FirstTime != nil {
		s := r.FirstTime.String()
		resp.FirstTime = &s
	}
	if r.LastTime != nil {
		s := r.LastTime.String()
		resp.LastTime = &s
	}
	if r.LeaveType != nil {
		s := string(*r.LeaveType)
		resp.LeaveType = &s
	}
	if r.SalaryPolicy != nil {
		s := string(*r.SalaryPolicy)
		resp.SalaryPolicy = &s
	}
	return resp
}

// DailyCounts summarizes the status distribution of one daily report.
type DailyCounts struct {
	Total       int `json:"total"`
	Present     int `json:"present"`
	Absent      int `json:"absent"`
	PaidLeave   int `json:"paid_leave"`
	HolidayWork int `json:"holiday_work"`
}

type DailyReportResponse struct {
	Date    string             `json:"date"`
	Rows    []DailyRowResponse `json:"rows"`
	Summary DailyCounts        `json:"summary"`
}

// SalaryReportResponse is one persisted monthly report row for the API.
type SalaryReportResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     *string  `json:"employee_name,omitempty"`
	EmployeeRole     *string  `json:"employee_role,omitempty"`
	Month            int      `json:"month"`
	Year             int      `json:"year"`
	TotalHours       float64  `json:"total_hours"`
	TotalDaysWorked  int      `json:"total_days_worked"`
	LateDays         int      `json:"late_days"`
	TotalLateMinutes int      `json:"total_late_minutes"`
	OvertimeHours    float64  `json:"overtime_hours"`
	HolidayHours     float64  `json:"holiday_hours"`
	PaidLeaveHours   float64  `json:"paid_leave_hours"`
	HourlyRate       *float64 `json:"hourly_rate,omitempty"`
	BaseSalary       float64  `json:"base_salary"`
	HolidayBonus     float64  `json:"holiday_bonus"`
	PaidLeaveSalary  float64  `json:"paid_leave_salary"`
	TotalSalary      float64  `json:"total_salary"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

func ToSalaryReportResponse(r SalaryReport) SalaryReportResponse {
	base, _ := r.BaseSalary.Float64()
	bonus, _ := r.HolidayBonus.Float64()
	paidLeave, _ := r.PaidLeaveSalary.Float64()
	total, _ := r.TotalSalary.Float64()

	resp := SalaryReportResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		EmployeeRole:     r.EmployeeRole,
		Month:            r.Month,
		Year:             r.Year,
		TotalHours:       r.TotalHours,
		TotalDaysWorked:  r.TotalDaysWorked,
		LateDays:         r.LateDays,
		TotalLateMinutes: r.TotalLateMinutes,
		OvertimeHours:    r.OvertimeHours,
		HolidayHours:     r.HolidayHours,
		PaidLeaveHours:   r.PaidLeaveHours,
		BaseSalary:       base,
		HolidayBonus:     bonus,
		PaidLeaveSalary:  paidLeave,
		TotalSalary:      total,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}
	if r.HourlyRate != nil {
		rate, _ := r.HourlyRate.Float64()
		resp.HourlyRate = &rate
	}
	return resp
}
