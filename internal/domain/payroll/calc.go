package payroll

import (
	"math"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/schedule"
)

// WorkedHours computes net worked hours for one day from the first and last
// clock events, subtracting whatever part of the lunch break falls inside the
// attended span.
//
// The schedule takes precedence over raw attendance: a day that is inactive
// in the weekly schedule yields zero hours no matter what was clocked. Spans
// with last before first also yield zero; overnight shifts are not supported.
func WorkedHours(first, last schedule.TimeOfDay, day schedule.DaySchedule) float64 {
	if !day.Active {
		return 0
	}
	if last < first {
		return 0
	}

	hours := last.Hours() - first.Hours()

	if day.LunchStart != nil && day.LunchEnd != nil {
		overlapStart := math.Max(first.Hours(), day.LunchStart.Hours())
		overlapEnd := math.Min(last.Hours(), day.LunchEnd.Hours())
		if overlapEnd > overlapStart {
			hours -= overlapEnd - overlapStart
		}
	}

	return math.Max(0, hours)
}

// LateMinutes computes whole minutes of lateness against the scheduled start.
// Lecturers are exempt, and inactive schedule days are never late.
func LateMinutes(first schedule.TimeOfDay, day schedule.DaySchedule, role employee.Role) int {
	if role != employee.RoleEmployee {
		return 0
	}
	if !day.Active || day.Start == nil {
		return 0
	}

	diff := first.Minutes() - day.Start.Minutes()
	if diff <= 0 {
		return 0
	}
	return int(math.Floor(diff))
}
