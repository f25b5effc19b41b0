package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	// Create creates a new holiday
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// GetByID retrieves a holiday by ID
	GetByID(ctx context.Context, id string) (Holiday, error)

	// Update replaces an existing holiday
	Update(ctx context.Context, h Holiday) (Holiday, error)

	// Delete removes a holiday
	Delete(ctx context.Context, id string) error

	// List retrieves all holidays ordered by start date
	List(ctx context.Context) ([]Holiday, error)

	// ListOverlapping retrieves holidays whose date range intersects
	// [start, end] inclusive, optionally excluding one id (for updates).
	// Overlap checking ignores active status and role scope.
	ListOverlapping(ctx context.Context, start, end time.Time, excludeID *string) ([]Holiday, error)

	// ListInRange retrieves active holidays intersecting [start, end],
	// ordered by start date. Used to build the in-memory Calendar.
	ListInRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// ListByYear retrieves holidays intersecting the given calendar year
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
}
