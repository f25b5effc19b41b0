package employee

import (
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string // surrogate uuid
	EmployeeID        string // business key, unique (badge / face id)
	FullName          string
	Role              Role
	HourlyRate        decimal.Decimal
	StandardWorkHours float64
	ScheduleType      ScheduleType
	WorkSchedule      schedule.WeeklySchedule
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleLecturer Role = "lecturer"
)

var RoleValues = []string{
	string(RoleEmployee),
	string(RoleLecturer),
}

type ScheduleType string

const (
	ScheduleTypeFixed    ScheduleType = "fixed"
	ScheduleTypeFlexible ScheduleType = "flexible"
	ScheduleTypeShift    ScheduleType = "shift"
)

var ScheduleTypeValues = []string{
	string(ScheduleTypeFixed),
	string(ScheduleTypeFlexible),
	string(ScheduleTypeShift),
}

// DefaultStandardWorkHours is the contractual daily hours assumed when an
// employee record does not specify one. Paid-leave pay is computed from this
// figure, not from clocked hours.
const DefaultStandardWorkHours = 8.0
