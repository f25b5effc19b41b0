package payroll

import "context"

// SalaryReportRepository persists monthly aggregates.
type SalaryReportRepository interface {
	// Upsert writes one report row keyed by (employee_id, month, year),
	// replacing any previous run's figures.
	Upsert(ctx context.Context, report SalaryReport) (SalaryReport, error)

	// ListByPeriod retrieves all report rows for one month, joined with
	// employee name, role and rate, ordered by employee id.
	ListByPeriod(ctx context.Context, month, year int) ([]SalaryReport, error)

	// DeleteByEmployee removes every report row of one employee. Used when
	// the employee is removed from the roster.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
