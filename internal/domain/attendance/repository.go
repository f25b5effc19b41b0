package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert performs the create-or-update protocol as a single statement:
	// the first event of the day inserts the row with first_time=last_time;
	// later events only move last_time. The storage-level uniqueness on
	// (employee_id, day) makes concurrent clock events safe. Returns the
	// resulting row and whether it was newly created.
	Upsert(ctx context.Context, rec Record) (Record, bool, error)

	// GetByEmployeeAndDay retrieves the record for one employee on one day
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (Record, error)

	// ListAll retrieves every record, newest day first
	ListAll(ctx context.Context) ([]Record, error)

	// ListByDay retrieves all records for a calendar day
	ListByDay(ctx context.Context, day time.Time) ([]Record, error)

	// ListByEmployee retrieves all records for an employee, newest day first
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListInRange retrieves all records with day in [start, end] inclusive
	ListInRange(ctx context.Context, start, end time.Time) ([]Record, error)

	// DeleteByEmployee removes every record of one employee. Used when the
	// employee is removed from the roster.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
