package payroll

import (
	"math"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

type DayStatus string

const (
	StatusPresent     DayStatus = "present"
	StatusAbsent      DayStatus = "absent"
	StatusPaidLeave   DayStatus = "paid_leave"
	StatusHolidayWork DayStatus = "holiday_work"
)

// DailyResult is the derived attendance/payroll outcome for one employee on
// one calendar day. It is computed, never persisted.
type DailyResult struct {
	EmployeeID        string
	Name              string
	Role              employee.Role
	Date              time.Time
	FirstTime         *schedule.TimeOfDay
	LastTime          *schedule.TimeOfDay
	WorkHours         float64
	LateMinutes       int
	OvertimeHours     float64
	Status            DayStatus
	IsWorkDay         bool
	IsHoliday         bool
	HolidayName       *string
	LeaveType         *holiday.LeaveType
	SalaryPolicy      *holiday.SalaryPolicy
	MultiplierApplied decimal.Decimal
	HourlyRate        decimal.Decimal
	DailySalary       decimal.Decimal // rounded to 2 decimal places
}

// DeriveDaily composes the schedule, the holiday resolution, and the hours
// calculator into one day's result.
//
// Priority order: a missing attendance record is either paid leave (on a
// paid-leave holiday) or an absence. An attended holiday where work is
// allowed pays clocked hours at the holiday multiplier. An attended
// paid-leave holiday where work is not allowed (or nothing was effectively
// worked) still pays the full standard-hours leave amount; the stray clock
// events do not reduce it. Any other attended day pays clocked hours at the
// normal rate.
func DeriveDaily(emp employee.Employee, date time.Time, rec *attendance.Record, res holiday.Resolution) DailyResult {
	day := emp.WorkSchedule.ForDate(date)
	stdHours := emp.StandardWorkHours
	if stdHours <= 0 {
		stdHours = employee.DefaultStandardWorkHours
	}

	result := DailyResult{
		EmployeeID:        emp.EmployeeID,
		Name:              emp.FullName,
		Role:              emp.Role,
		Date:              holiday.CivilDate(date),
		IsWorkDay:         day.Active,
		IsHoliday:         res.IsHoliday,
		HolidayName:       res.Name,
		LeaveType:         res.LeaveType,
		SalaryPolicy:      res.SalaryPolicy,
		MultiplierApplied: decimal.NewFromInt(1),
		HourlyRate:        emp.HourlyRate,
		DailySalary:       decimal.Zero,
	}

	if rec == nil {
		if res.IsHoliday && res.IsPaidLeave {
			result.Status = StatusPaidLeave
			result.MultiplierApplied = res.SalaryMultiplier
			result.DailySalary = leavePay(stdHours, emp.HourlyRate, res.SalaryMultiplier)
		} else {
			result.Status = StatusAbsent
		}
		return result
	}

	first, last := rec.FirstTime, rec.LastTime
	result.FirstTime = &first
	result.LastTime = &last

	hours := WorkedHours(first, last, day)
	result.WorkHours = round2(hours)
	result.LateMinutes = LateMinutes(first, day, emp.Role)
	result.OvertimeHours = round2(math.Max(0, hours-stdHours))

	if res.IsHoliday {
		result.Status = StatusHolidayWork
		switch {
		case res.AllowWork && hours > 0:
			result.MultiplierApplied = res.SalaryMultiplier
			result.DailySalary = hoursPay(hours, emp.HourlyRate, res.SalaryMultiplier)
		case res.IsPaidLeave:
			// Paid leave is honored even with a stray attendance row.
			result.MultiplierApplied = res.SalaryMultiplier
			result.DailySalary = leavePay(stdHours, emp.HourlyRate, res.SalaryMultiplier)
		default:
			result.DailySalary = hoursPay(hours, emp.HourlyRate, decimal.NewFromInt(1))
		}
		return result
	}

	result.Status = StatusPresent
	result.DailySalary = hoursPay(hours, emp.HourlyRate, decimal.NewFromInt(1))
	return result
}

func hoursPay(hours float64, rate, multiplier decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(hours).Mul(rate).Mul(multiplier).Round(2)
}

func leavePay(stdHours float64, rate, multiplier decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(stdHours).Mul(rate).Mul(multiplier).Round(2)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
