package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, name, day, first_time, last_time, created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Name, &rec.Day,
		&rec.FirstTime, &rec.LastTime, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements attendance.AttendanceRepository.
//
// A single statement covers both halves of the protocol: the first clock
// event of the day inserts the row with first_time = last_time, every later
// event only moves last_time forward. The unique index on (employee_id, day)
// serializes concurrent events for the same employee.
func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, name, day, first_time, last_time)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (employee_id, day) DO UPDATE
		SET last_time = EXCLUDED.last_time,
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING ` + attendanceColumns + `, (xmax = 0) AS inserted
	`

	var created bool
	err := q.QueryRow(ctx, query,
		uuid.NewString(), rec.EmployeeID, rec.Name, holiday.CivilDate(rec.Day), rec.FirstTime,
	).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Name, &rec.Day,
		&rec.FirstTime, &rec.LastTime, &rec.CreatedAt, &rec.UpdatedAt,
		&created,
	)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return rec, created, nil
}

// GetByEmployeeAndDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records WHERE employee_id = $1 AND day = $2`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, holiday.CivilDate(day)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return rec, nil
}

// ListAll implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Record, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records ORDER BY day DESC, employee_id`
	return r.list(ctx, query)
}

// ListByDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDay(ctx context.Context, day time.Time) ([]attendance.Record, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records WHERE day = $1 ORDER BY employee_id`
	return r.list(ctx, query, holiday.CivilDate(day))
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records WHERE employee_id = $1 ORDER BY day DESC`
	return r.list(ctx, query, employeeID)
}

// ListInRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records WHERE day >= $1 AND day <= $2
		ORDER BY employee_id, day`
	return r.list(ctx, query, holiday.CivilDate(start), holiday.CivilDate(end))
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance records: %w", err)
	}
	return nil
}

func (r *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
