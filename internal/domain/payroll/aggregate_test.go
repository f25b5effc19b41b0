package payroll

import (
	"testing"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthRecord(t *testing.T, employeeID string, d time.Time, first, last string) attendance.Record {
	t.Helper()
	return attendance.Record{
		EmployeeID: employeeID,
		Name:       employeeID,
		Day:        d,
		FirstTime:  tod(t, first),
		LastTime:   tod(t, last),
	}
}

func januaryCalendar() *holiday.Calendar {
	return holiday.NewCalendar([]holiday.Holiday{
		{
			// 2025-01-01 is a Wednesday.
			ID:               "h-newyear",
			Name:             "New Year",
			StartDate:        day(2025, 1, 1),
			Type:             holiday.TypeSingleDay,
			LeaveType:        holiday.LeavePaidHoliday,
			SalaryPolicy:     holiday.PolicyMultiplierPay,
			SalaryMultiplier: decimal.NewFromInt(2),
			AllowWork:        false,
			IsActive:         true,
			AppliesTo:        holiday.AppliesToAll,
		},
		{
			// 2025-01-06 is a Monday.
			ID:               "h-inventory",
			Name:             "Inventory day",
			StartDate:        day(2025, 1, 6),
			Type:             holiday.TypeSingleDay,
			LeaveType:        holiday.LeaveOvertimeHoliday,
			SalaryPolicy:     holiday.PolicyMultiplierPay,
			SalaryMultiplier: decimal.NewFromFloat(1.5),
			AllowWork:        true,
			IsActive:         true,
			AppliesTo:        holiday.AppliesToAll,
		},
	})
}

func TestAggregateMonth(t *testing.T) {
	emp := testEmployee(employee.RoleEmployee)
	records := []attendance.Record{
		// Holiday with work allowed, multiplier 1.5: 8h worked.
		monthRecord(t, "EMP001", day(2025, 1, 6), "08:00:00", "17:00:00"),
		// Normal Tuesday, 15 minutes late: 7.75h worked.
		monthRecord(t, "EMP001", day(2025, 1, 7), "08:15:00", "17:00:00"),
		// Saturday is inactive: contributes nothing.
		monthRecord(t, "EMP001", day(2025, 1, 11), "08:00:00", "17:00:00"),
	}

	summaries := AggregateMonth([]employee.Employee{emp}, records, januaryCalendar(), 2025, time.January)
	require.Len(t, summaries, 1)
	s := summaries[0]

	assert.Equal(t, "EMP001", s.EmployeeID)
	assert.Equal(t, 1, s.Month)
	assert.Equal(t, 2025, s.Year)

	assert.InDelta(t, 15.75, s.TotalHours, 0.001)
	assert.Equal(t, 2, s.TotalDaysWorked)
	assert.Equal(t, 1, s.LateDays)
	assert.Equal(t, 15, s.TotalLateMinutes)
	assert.InDelta(t, 8.0, s.HolidayHours, 0.001)

	// New Year is a schedule-active paid holiday with no record.
	assert.InDelta(t, 8.0, s.PaidLeaveHours, 0.001)

	// 15.75h x 50000
	assert.True(t, s.BaseSalary.Equal(decimal.NewFromInt(787500)), "base = %s", s.BaseSalary)
	// (1.5 - 1) x 8h x 50000
	assert.True(t, s.HolidayBonus.Equal(decimal.NewFromInt(200000)), "bonus = %s", s.HolidayBonus)
	// 8h x 50000 x 2.0
	assert.True(t, s.PaidLeaveSalary.Equal(decimal.NewFromInt(800000)), "paid leave = %s", s.PaidLeaveSalary)
	assert.True(t, s.TotalSalary.Equal(decimal.NewFromInt(1787500)), "total = %s", s.TotalSalary)
}

func TestAggregateMonthSalaryIdentity(t *testing.T) {
	emp := testEmployee(employee.RoleEmployee)
	records := []attendance.Record{
		monthRecord(t, "EMP001", day(2025, 1, 2), "08:07:00", "16:43:00"),
		monthRecord(t, "EMP001", day(2025, 1, 3), "08:00:00", "17:21:00"),
		monthRecord(t, "EMP001", day(2025, 1, 6), "09:02:00", "17:00:00"),
	}

	summaries := AggregateMonth([]employee.Employee{emp}, records, januaryCalendar(), 2025, time.January)
	require.Len(t, summaries, 1)
	s := summaries[0]

	want := s.BaseSalary.Add(s.HolidayBonus).Add(s.PaidLeaveSalary)
	assert.True(t, s.TotalSalary.Equal(want), "total %s != %s", s.TotalSalary, want)
}

func TestAggregateMonthIdempotent(t *testing.T) {
	emp := testEmployee(employee.RoleEmployee)
	lecturer := testEmployee(employee.RoleLecturer)
	lecturer.EmployeeID = "LEC001"
	records := []attendance.Record{
		monthRecord(t, "EMP001", day(2025, 1, 6), "08:00:00", "17:00:00"),
		monthRecord(t, "LEC001", day(2025, 1, 7), "10:00:00", "15:00:00"),
	}

	first := AggregateMonth([]employee.Employee{emp, lecturer}, records, januaryCalendar(), 2025, time.January)
	second := AggregateMonth([]employee.Employee{emp, lecturer}, records, januaryCalendar(), 2025, time.January)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].EmployeeID, second[i].EmployeeID)
		assert.Equal(t, first[i].TotalHours, second[i].TotalHours)
		assert.True(t, first[i].TotalSalary.Equal(second[i].TotalSalary))
	}
}

func TestAggregateMonthLecturerNeverLate(t *testing.T) {
	lecturer := testEmployee(employee.RoleLecturer)
	lecturer.EmployeeID = "LEC001"
	records := []attendance.Record{
		monthRecord(t, "LEC001", day(2025, 1, 7), "10:30:00", "17:00:00"),
	}

	summaries := AggregateMonth([]employee.Employee{lecturer}, records, januaryCalendar(), 2025, time.January)
	require.Len(t, summaries, 1)

	assert.Equal(t, 0, summaries[0].LateDays)
	assert.Equal(t, 0, summaries[0].TotalLateMinutes)
}

func TestAggregateMonthRosterWithoutRecords(t *testing.T) {
	emp := testEmployee(employee.RoleEmployee)

	summaries := AggregateMonth([]employee.Employee{emp}, nil, januaryCalendar(), 2025, time.January)
	require.Len(t, summaries, 1)
	s := summaries[0]

	// Nothing clocked: only the paid New Year holiday pays out.
	assert.Zero(t, s.TotalDaysWorked)
	assert.True(t, s.BaseSalary.IsZero())
	assert.True(t, s.PaidLeaveSalary.Equal(decimal.NewFromInt(800000)))
	assert.True(t, s.TotalSalary.Equal(decimal.NewFromInt(800000)))
}

func TestAggregateMonthSkipsUnknownEmployees(t *testing.T) {
	emp := testEmployee(employee.RoleEmployee)
	records := []attendance.Record{
		monthRecord(t, "GHOST", day(2025, 1, 7), "08:00:00", "17:00:00"),
	}

	summaries := AggregateMonth([]employee.Employee{emp}, records, januaryCalendar(), 2025, time.January)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].TotalDaysWorked)
	assert.True(t, summaries[0].BaseSalary.IsZero())
}

func TestAggregateMonthNoPaidLeaveOnInactiveDay(t *testing.T) {
	emp := testEmployee(employee.RoleEmployee)
	// Paid holiday on a Saturday; the default schedule is inactive that day.
	cal := holiday.NewCalendar([]holiday.Holiday{{
		ID:               "h-sat",
		Name:             "Saturday holiday",
		StartDate:        day(2025, 1, 4),
		Type:             holiday.TypeSingleDay,
		LeaveType:        holiday.LeavePaidHoliday,
		SalaryPolicy:     holiday.PolicyMultiplierPay,
		SalaryMultiplier: decimal.NewFromInt(2),
		IsActive:         true,
		AppliesTo:        holiday.AppliesToAll,
	}})

	summaries := AggregateMonth([]employee.Employee{emp}, nil, cal, 2025, time.January)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].PaidLeaveHours)
	assert.True(t, summaries[0].PaidLeaveSalary.IsZero())
}

func TestAggregateMonthPeriodHolidayBackfill(t *testing.T) {
	emp := testEmployee(employee.RoleEmployee)
	end := day(2025, 1, 17)
	// Mon 13th through Fri 17th, all schedule-active.
	cal := holiday.NewCalendar([]holiday.Holiday{{
		ID:               "h-break",
		Name:             "Winter break",
		StartDate:        day(2025, 1, 13),
		EndDate:          &end,
		Type:             holiday.TypePeriod,
		Category:         holiday.CategoryWinterBreak,
		LeaveType:        holiday.LeavePaidHoliday,
		SalaryPolicy:     holiday.PolicyFullPay,
		SalaryMultiplier: decimal.NewFromInt(1),
		IsActive:         true,
		AppliesTo:        holiday.AppliesToAll,
	}})

	summaries := AggregateMonth([]employee.Employee{emp}, nil, cal, 2025, time.January)
	require.Len(t, summaries, 1)
	s := summaries[0]

	assert.InDelta(t, 40.0, s.PaidLeaveHours, 0.001)
	// 5 days x 8h x 50000
	assert.True(t, s.PaidLeaveSalary.Equal(decimal.NewFromInt(2000000)), "paid leave = %s", s.PaidLeaveSalary)
}
