package postgresql

import (
	"context"
	"fmt"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/payroll"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type salaryReportRepository struct {
	db *database.DB
}

func NewSalaryReportRepository(db *database.DB) payroll.SalaryReportRepository {
	return &salaryReportRepository{db: db}
}

// Upsert implements payroll.SalaryReportRepository. Re-running a month's
// generation overwrites the previous figures in place.
func (r *salaryReportRepository) Upsert(ctx context.Context, report payroll.SalaryReport) (payroll.SalaryReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_reports (
			id, employee_id, month, year, total_hours, total_days_worked,
			late_days, total_late_minutes, overtime_hours, holiday_hours,
			paid_leave_hours, base_salary, holiday_bonus, paid_leave_salary,
			total_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			total_hours = EXCLUDED.total_hours,
			total_days_worked = EXCLUDED.total_days_worked,
			late_days = EXCLUDED.late_days,
			total_late_minutes = EXCLUDED.total_late_minutes,
			overtime_hours = EXCLUDED.overtime_hours,
			holiday_hours = EXCLUDED.holiday_hours,
			paid_leave_hours = EXCLUDED.paid_leave_hours,
			base_salary = EXCLUDED.base_salary,
			holiday_bonus = EXCLUDED.holiday_bonus,
			paid_leave_salary = EXCLUDED.paid_leave_salary,
			total_salary = EXCLUDED.total_salary,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		uuid.NewString(), report.EmployeeID, report.Month, report.Year,
		report.TotalHours, report.TotalDaysWorked, report.LateDays,
		report.TotalLateMinutes, report.OvertimeHours, report.HolidayHours,
		report.PaidLeaveHours, report.BaseSalary, report.HolidayBonus,
		report.PaidLeaveSalary, report.TotalSalary,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)

	if err != nil {
		return payroll.SalaryReport{}, fmt.Errorf("failed to upsert salary report: %w", err)
	}

	return report, nil
}

// ListByPeriod implements payroll.SalaryReportRepository.
func (r *salaryReportRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.SalaryReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			s.id, s.employee_id, s.month, s.year, s.total_hours,
			s.total_days_worked, s.late_days, s.total_late_minutes,
			s.overtime_hours, s.holiday_hours, s.paid_leave_hours,
			s.base_salary, s.holiday_bonus, s.paid_leave_salary,
			s.total_salary, s.created_at, s.updated_at,
			e.full_name AS employee_name,
			e.role AS employee_role,
			e.hourly_rate
		FROM salary_reports s
		LEFT JOIN employees e ON e.employee_id = s.employee_id
		WHERE s.month = $1 AND s.year = $2
		ORDER BY s.employee_id
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary reports: %w", err)
	}
	defer rows.Close()

	var reports []payroll.SalaryReport
	for rows.Next() {
		var rep payroll.SalaryReport
		err := rows.Scan(
			&rep.ID, &rep.EmployeeID, &rep.Month, &rep.Year, &rep.TotalHours,
			&rep.TotalDaysWorked, &rep.LateDays, &rep.TotalLateMinutes,
			&rep.OvertimeHours, &rep.HolidayHours, &rep.PaidLeaveHours,
			&rep.BaseSalary, &rep.HolidayBonus, &rep.PaidLeaveSalary,
			&rep.TotalSalary, &rep.CreatedAt, &rep.UpdatedAt,
			&rep.EmployeeName, &rep.EmployeeRole, &rep.HourlyRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary report: %w", err)
		}
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

// DeleteByEmployee implements payroll.SalaryReportRepository.
func (r *salaryReportRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM salary_reports WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete salary reports: %w", err)
	}
	return nil
}
