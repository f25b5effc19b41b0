package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_id, full_name, role, hourly_rate, standard_work_hours,
	schedule_type, work_schedule, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var scheduleJSON []byte
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.FullName, &e.Role, &e.HourlyRate,
		&e.StandardWorkHours, &e.ScheduleType, &scheduleJSON,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if err := json.Unmarshal(scheduleJSON, &e.WorkSchedule); err != nil {
		return employee.Employee{}, fmt.Errorf("decode work schedule: %w", err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	scheduleJSON, err := json.Marshal(e.WorkSchedule)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("encode work schedule: %w", err)
	}

	e.ID = uuid.NewString()

	query := `
		INSERT INTO employees (
			id, employee_id, full_name, role, hourly_rate,
			standard_work_hours, schedule_type, work_schedule
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		e.ID, e.EmployeeID, e.FullName, e.Role, e.HourlyRate,
		e.StandardWorkHours, e.ScheduleType, scheduleJSON,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	scheduleJSON, err := json.Marshal(e.WorkSchedule)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("encode work schedule: %w", err)
	}

	query := `
		UPDATE employees
		SET full_name = $2, role = $3, hourly_rate = $4,
			standard_work_hours = $5, schedule_type = $6, work_schedule = $7,
			updated_at = NOW()
		WHERE employee_id = $1
		RETURNING id, created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		e.EmployeeID, e.FullName, e.Role, e.HourlyRate,
		e.StandardWorkHours, e.ScheduleType, scheduleJSON,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}

// Delete implements employee.EmployeeRepository. The service removes the
// employee's attendance and salary report rows in the same transaction.
func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
