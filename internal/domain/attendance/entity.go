package attendance

import (
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/schedule"
)

// Record is the single attendance row per employee per calendar day.
// FirstTime is written once by the first clock event; LastTime is replaced by
// every subsequent event of the same day.
type Record struct {
	ID         string
	EmployeeID string
	Name       string
	Day        time.Time // normalized calendar date
	FirstTime  schedule.TimeOfDay
	LastTime   schedule.TimeOfDay
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
