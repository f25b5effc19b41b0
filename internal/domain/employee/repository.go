package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByEmployeeID retrieves an employee by business key
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// List retrieves all employees ordered by business key
	List(ctx context.Context) ([]Employee, error)

	// Update replaces the mutable fields of an existing employee
	Update(ctx context.Context, e Employee) (Employee, error)

	// Delete removes an employee row only; callers clean up attendance and
	// salary report rows in the same transaction
	Delete(ctx context.Context, employeeID string) error
}
