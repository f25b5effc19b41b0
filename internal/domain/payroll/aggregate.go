package payroll

import (
	"math"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/shopspring/decimal"
)

// MonthlySummary is the per-employee fold of one month of daily derivations.
// Money fields are rounded to 2 decimal places; TotalSalary is the exact sum
// of the three rounded components, so the identity
// total = base + holiday_bonus + paid_leave_salary always holds on output.
type MonthlySummary struct {
	EmployeeID       string
	Name             string
	Role             employee.Role
	Month            int
	Year             int
	TotalHours       float64
	TotalDaysWorked  int
	LateDays         int
	TotalLateMinutes int
	OvertimeHours    float64
	HolidayHours     float64
	PaidLeaveHours   float64
	HourlyRate       decimal.Decimal
	BaseSalary       decimal.Decimal
	HolidayBonus     decimal.Decimal
	PaidLeaveSalary  decimal.Decimal
	TotalSalary      decimal.Decimal
}

// monthlyAccumulator carries the running totals for one employee while the
// month's records are folded. Totals stay unrounded until finalize.
type monthlyAccumulator struct {
	emp              employee.Employee
	totalHours       float64
	daysWorked       int
	lateDays         int
	totalLateMinutes int
	overtimeHours    float64
	holidayHours     float64
	holidayBonus     decimal.Decimal
	paidLeaveHours   float64
	paidLeaveSalary  decimal.Decimal
	attended         map[time.Time]bool
}

func newMonthlyAccumulator(emp employee.Employee) *monthlyAccumulator {
	return &monthlyAccumulator{
		emp:             emp,
		holidayBonus:    decimal.Zero,
		paidLeaveSalary: decimal.Zero,
		attended:        make(map[time.Time]bool),
	}
}

// addRecord folds one attendance record into the running totals.
// Day counts, lateness and overtime only accrue when net hours are positive;
// a record on an inactive schedule day contributes nothing.
func (a *monthlyAccumulator) addRecord(rec attendance.Record, res holiday.Resolution) {
	day := holiday.CivilDate(rec.Day)
	a.attended[day] = true

	daySched := a.emp.WorkSchedule.ForDate(day)
	hours := WorkedHours(rec.FirstTime, rec.LastTime, daySched)
	if hours <= 0 {
		return
	}

	if res.IsHoliday && res.AllowWork {
		a.holidayHours += hours
		if res.SalaryPolicy != nil &&
			(*res.SalaryPolicy == holiday.PolicyMultiplierPay || *res.SalaryPolicy == holiday.PolicyFullPay) {
			premium := res.SalaryMultiplier.Sub(decimal.NewFromInt(1))
			a.holidayBonus = a.holidayBonus.Add(decimal.NewFromFloat(hours).Mul(a.emp.HourlyRate).Mul(premium))
		}
	}

	a.totalHours += hours
	a.daysWorked++
	a.overtimeHours += math.Max(0, hours-a.standardHours())

	if late := LateMinutes(rec.FirstTime, daySched, a.emp.Role); late > 0 {
		a.lateDays++
		a.totalLateMinutes += late
	}
}

// addPaidLeave credits one schedule-active paid-leave holiday without an
// attendance record.
func (a *monthlyAccumulator) addPaidLeave(res holiday.Resolution) {
	std := a.standardHours()
	a.paidLeaveHours += std
	a.paidLeaveSalary = a.paidLeaveSalary.Add(
		decimal.NewFromFloat(std).Mul(a.emp.HourlyRate).Mul(res.SalaryMultiplier))
}

func (a *monthlyAccumulator) standardHours() float64 {
	if a.emp.StandardWorkHours > 0 {
		return a.emp.StandardWorkHours
	}
	return employee.DefaultStandardWorkHours
}

// finalize rounds once and closes the identity between the salary components.
func (a *monthlyAccumulator) finalize(year int, month time.Month) MonthlySummary {
	base := decimal.NewFromFloat(a.totalHours).Mul(a.emp.HourlyRate).Round(2)
	bonus := a.holidayBonus.Round(2)
	paidLeave := a.paidLeaveSalary.Round(2)

	return MonthlySummary{
		EmployeeID:       a.emp.EmployeeID,
		Name:             a.emp.FullName,
		Role:             a.emp.Role,
		Month:            int(month),
		Year:             year,
		TotalHours:       round2(a.totalHours),
		TotalDaysWorked:  a.daysWorked,
		LateDays:         a.lateDays,
		TotalLateMinutes: a.totalLateMinutes,
		OvertimeHours:    round2(a.overtimeHours),
		HolidayHours:     round2(a.holidayHours),
		PaidLeaveHours:   round2(a.paidLeaveHours),
		HourlyRate:       a.emp.HourlyRate,
		BaseSalary:       base,
		HolidayBonus:     bonus,
		PaidLeaveSalary:  paidLeave,
		TotalSalary:      base.Add(bonus).Add(paidLeave),
	}
}

// AggregateMonth folds a month of attendance records into per-employee
// summaries. Every employee in the roster gets a summary even without a
// single record; base salary covers holiday-worked hours at the normal rate
// and the multiplier premium lands in the holiday bonus, so nothing is
// counted twice.
//
// The fold is pure: callers load the roster, the month's records and the
// holiday calendar up front, and re-running over the same inputs yields
// identical summaries.
func AggregateMonth(
	employees []employee.Employee,
	records []attendance.Record,
	cal *holiday.Calendar,
	year int,
	month time.Month,
) []MonthlySummary {
	accs := make(map[string]*monthlyAccumulator, len(employees))
	order := make([]string, 0, len(employees))
	for _, emp := range employees {
		accs[emp.EmployeeID] = newMonthlyAccumulator(emp)
		order = append(order, emp.EmployeeID)
	}

	for _, rec := range records {
		acc, ok := accs[rec.EmployeeID]
		if !ok {
			// Record for an unknown employee; payroll covers the roster only.
			continue
		}
		acc.addRecord(rec, cal.Resolve(rec.Day, acc.emp.Role))
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	for _, id := range order {
		acc := accs[id]
		for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
			if acc.attended[d] {
				continue
			}
			res := cal.Resolve(d, acc.emp.Role)
			if res.IsHoliday && res.IsPaidLeave && acc.emp.WorkSchedule.ForDate(d).Active {
				acc.addPaidLeave(res)
			}
		}
	}

	summaries := make([]MonthlySummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, accs[id].finalize(year, month))
	}
	return summaries
}
