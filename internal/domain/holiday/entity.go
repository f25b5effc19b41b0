package holiday

import (
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type Holiday struct {
	ID               string
	Name             string
	StartDate        time.Time
	EndDate          *time.Time // required iff Type == TypePeriod
	Type             Type
	Category         Category
	LeaveType        LeaveType
	SalaryPolicy     SalaryPolicy
	SalaryMultiplier decimal.Decimal
	AllowWork        bool
	Description      *string
	IsActive         bool
	AppliesTo        AppliesTo
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Type string

const (
	TypeSingleDay Type = "single_day"
	TypePeriod    Type = "period"
)

type Category string

const (
	CategoryNational       Category = "national"
	CategoryCompany        Category = "company"
	CategoryReligious      Category = "religious"
	CategorySummerBreak    Category = "summer_break"
	CategoryWinterBreak    Category = "winter_break"
	CategorySickLeave      Category = "sick_leave"
	CategoryAnnualLeave    Category = "annual_leave"
	CategoryMaternityLeave Category = "maternity_leave"
)

var CategoryValues = []string{
	string(CategoryNational),
	string(CategoryCompany),
	string(CategoryReligious),
	string(CategorySummerBreak),
	string(CategoryWinterBreak),
	string(CategorySickLeave),
	string(CategoryAnnualLeave),
	string(CategoryMaternityLeave),
}

type LeaveType string

const (
	LeavePaidHoliday     LeaveType = "paid_holiday"
	LeaveUnpaid          LeaveType = "unpaid_leave"
	LeaveOvertimeHoliday LeaveType = "overtime_holiday"
)

var LeaveTypeValues = []string{
	string(LeavePaidHoliday),
	string(LeaveUnpaid),
	string(LeaveOvertimeHoliday),
}

type SalaryPolicy string

const (
	PolicyFullPay       SalaryPolicy = "full_pay"
	PolicyNoPay         SalaryPolicy = "no_pay"
	PolicyMultiplierPay SalaryPolicy = "multiplier_pay"
	PolicyPartialPay    SalaryPolicy = "partial_pay"
)

var SalaryPolicyValues = []string{
	string(PolicyFullPay),
	string(PolicyNoPay),
	string(PolicyMultiplierPay),
	string(PolicyPartialPay),
}

type AppliesTo string

const (
	AppliesToAll          AppliesTo = "all"
	AppliesToEmployeeOnly AppliesTo = "employee_only"
	AppliesToLecturerOnly AppliesTo = "lecturer_only"
)

var AppliesToValues = []string{
	string(AppliesToAll),
	string(AppliesToEmployeeOnly),
	string(AppliesToLecturerOnly),
}

// effectiveEnd returns the inclusive last date covered by the holiday.
// A single-day holiday covers only its start date.
func (h Holiday) effectiveEnd() time.Time {
	if h.Type == TypePeriod && h.EndDate != nil {
		return *h.EndDate
	}
	return h.StartDate
}

// Contains reports whether the date falls within the holiday's range.
// The range is inclusive on both ends; dates are compared by calendar day.
func (h Holiday) Contains(date time.Time) bool {
	d := CivilDate(date)
	return !d.Before(CivilDate(h.StartDate)) && !d.After(CivilDate(h.effectiveEnd()))
}

// AppliesToRole reports whether the holiday covers the given employee role.
func (h Holiday) AppliesToRole(role employee.Role) bool {
	return h.AppliesTo == AppliesToAll || string(h.AppliesTo) == string(role)+"_only"
}

// OverlapsRange reports whether the holiday's date range intersects the
// inclusive range [start, end]. Role scope is deliberately ignored: two
// holidays on the same date are rejected even when scoped to different roles,
// so the resolver can rely on at most one match per date.
func (h Holiday) OverlapsRange(start, end time.Time) bool {
	s, e := CivilDate(start), CivilDate(end)
	return !CivilDate(h.StartDate).After(e) && !CivilDate(h.effectiveEnd()).Before(s)
}

// CivilDate strips the clock and location from a timestamp, yielding a
// normalized calendar date safe for day-level comparison.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
