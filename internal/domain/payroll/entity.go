package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryReport is the persisted monthly aggregate, unique per
// (employee_id, month, year) and overwritten on every generation run.
type SalaryReport struct {
	ID               string
	EmployeeID       string
	Month            int
	Year             int
	TotalHours       float64
	TotalDaysWorked  int
	LateDays         int
	TotalLateMinutes int
	OvertimeHours    float64
	HolidayHours     float64
	PaidLeaveHours   float64
	BaseSalary       decimal.Decimal
	HolidayBonus     decimal.Decimal
	PaidLeaveSalary  decimal.Decimal
	TotalSalary      decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
	EmployeeRole *string
	HourlyRate   *decimal.Decimal
}

// FromSummary maps an engine summary onto the persisted row.
func FromSummary(s MonthlySummary) SalaryReport {
	return SalaryReport{
		EmployeeID:       s.EmployeeID,
		Month:            s.Month,
		Year:             s.Year,
		TotalHours:       s.TotalHours,
		TotalDaysWorked:  s.TotalDaysWorked,
		LateDays:         s.LateDays,
		TotalLateMinutes: s.TotalLateMinutes,
		OvertimeHours:    s.OvertimeHours,
		HolidayHours:     s.HolidayHours,
		PaidLeaveHours:   s.PaidLeaveHours,
		BaseSalary:       s.BaseSalary,
		HolidayBonus:     s.HolidayBonus,
		PaidLeaveSalary:  s.PaidLeaveSalary,
		TotalSalary:      s.TotalSalary,
	}
}
