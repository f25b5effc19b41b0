package holiday

import (
	"sort"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Resolution is the answer to "is this date a holiday for this role, and how
// is it paid". The zero-match defaults (multiplier 1.0, work allowed, no paid
// leave) let callers apply it unconditionally.
type Resolution struct {
	IsHoliday        bool
	Name             *string
	LeaveType        *LeaveType
	SalaryPolicy     *SalaryPolicy
	SalaryMultiplier decimal.Decimal
	AllowWork        bool
	IsPaidLeave      bool
}

// NoHoliday is the resolution for a plain working day.
func NoHoliday() Resolution {
	return Resolution{
		SalaryMultiplier: decimal.NewFromInt(1),
		AllowWork:        true,
	}
}

// Calendar is an in-memory interval index over a set of holidays, built once
// per report generation so the per-date lookup inside the day x employee loop
// costs O(log n) instead of a table scan.
//
// It relies on the creation-path invariant that holiday date ranges never
// overlap: sorted by start date the ranges are disjoint, so a binary search
// for the last range starting on or before the date finds the only candidate.
type Calendar struct {
	holidays []Holiday // sorted by start date
}

// NewCalendar indexes the given holidays. The slice is copied; inactive
// holidays are kept so they still occupy their slot and resolve to no match.
func NewCalendar(holidays []Holiday) *Calendar {
	sorted := make([]Holiday, len(holidays))
	copy(sorted, holidays)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return &Calendar{holidays: sorted}
}

// Resolve looks up the holiday covering date for the given role.
func (c *Calendar) Resolve(date time.Time, role employee.Role) Resolution {
	d := CivilDate(date)

	// First holiday starting strictly after d; the candidate is the one before.
	idx := sort.Search(len(c.holidays), func(i int) bool {
		return CivilDate(c.holidays[i].StartDate).After(d)
	})
	if idx == 0 {
		return NoHoliday()
	}

	h := c.holidays[idx-1]
	if !h.Contains(d) || !h.IsActive || !h.AppliesToRole(role) {
		return NoHoliday()
	}

	name := h.Name
	leaveType := h.LeaveType
	policy := h.SalaryPolicy
	return Resolution{
		IsHoliday:        true,
		Name:             &name,
		LeaveType:        &leaveType,
		SalaryPolicy:     &policy,
		SalaryMultiplier: h.SalaryMultiplier,
		AllowWork:        h.AllowWork,
		IsPaidLeave:      h.LeaveType == LeavePaidHoliday,
	}
}
